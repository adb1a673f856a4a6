package core

import (
	"context"
	"testing"

	"prospector/internal/limits"
)

func TestBatchMatchesScalarStepping(t *testing.T) {
	const n = 6
	cfgs := make([]Config, n)
	seeds := make([]uint64, n)
	for i := range cfgs {
		cfg, err := NewConfig()
		if err != nil {
			t.Fatalf("NewConfig: %v", err)
		}
		cfgs[i] = cfg
		seeds[i] = uint64(i * 1000)
	}

	batch := NewBatch(cfgs)
	obsOut := make([][limits.ObsDim]float32, n)
	if err := batch.ResetMany(context.Background(), seeds, obsOut); err != nil {
		t.Fatalf("ResetMany: %v", err)
	}

	scalars := make([]*Episode, n)
	scalarObs := make([][limits.ObsDim]float32, n)
	for i := range scalars {
		scalars[i] = NewEpisode(cfgs[i])
		scalars[i].Reset(seeds[i], &scalarObs[i])
	}

	for i := range obsOut {
		if obsOut[i] != scalarObs[i] {
			t.Fatalf("episode %d: batch reset obs diverges from scalar reset obs", i)
		}
	}

	actions := make([]uint8, n)
	for step := 0; step < 50; step++ {
		for i := range actions {
			actions[i] = uint8((step*7 + i*13) % NumActions)
		}

		out := make([]StepResult, n)
		if err := batch.StepMany(context.Background(), actions, out); err != nil {
			t.Fatalf("StepMany: %v", err)
		}

		for i := range scalars {
			want := scalars[i].Step(actions[i])
			if out[i] != want {
				t.Fatalf("episode %d step %d: batch result diverges from scalar result", i, step)
			}
		}
	}
}

func TestBatchLengthMismatchErrors(t *testing.T) {
	cfg, _ := NewConfig()
	batch := NewBatch([]Config{cfg, cfg})

	err := batch.ResetMany(context.Background(), []uint64{1}, make([][limits.ObsDim]float32, 2))
	if err == nil {
		t.Fatalf("expected an error on mismatched slice lengths")
	}
}
