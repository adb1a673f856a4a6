package reference

import (
	"testing"

	"prospector/core"
)

func newTestEpisode(t testing.TB) *Episode {
	cfg, err := core.NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	return NewEpisode(cfg)
}

func TestResetIsDeterministic(t *testing.T) {
	a := newTestEpisode(t)
	a.Reset(5)
	obsA := a.Obs()

	b := newTestEpisode(t)
	b.Reset(5)
	obsB := b.Obs()

	if obsA != obsB {
		t.Fatalf("expected identical initial observation for the same seed")
	}
}

func TestCashOutTerminatesImmediately(t *testing.T) {
	e := newTestEpisode(t)
	e.Reset(0)

	_, _, terminated, truncated, invalid, _, _, _ := e.Step(68)
	if !terminated {
		t.Fatalf("expected terminated after cash-out")
	}
	if truncated {
		t.Fatalf("expected not truncated")
	}
	if invalid {
		t.Fatalf("cash-out should always be valid")
	}
}

func TestNeedsResetAfterDoneIsSticky(t *testing.T) {
	e := newTestEpisode(t)
	e.Reset(0)
	e.Step(68)

	_, _, terminated, _, invalid, dt, _, _ := e.Step(6)
	if !terminated || !invalid || dt != 0 {
		t.Fatalf("expected sticky terminal result after done")
	}
}

// TestTruncationStillPaysTheCleanDoneBonus mirrors the equivalent core
// test: a time-truncated ending earns the +0.002*credits/1000 terminal
// bonus the same as an explicit cash-out, since both are a "clean done".
func TestTruncationStillPaysTheCleanDoneBonus(t *testing.T) {
	cfg, err := core.NewConfig(core.WithTimeMax(5))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	e := NewEpisode(cfg)
	e.Reset(0)
	e.ship.Credits = 5000

	var reward float32
	var terminated, truncated bool
	for i := 0; i < 5; i++ {
		_, reward, terminated, truncated, _, _, _, _ = e.Step(6)
	}
	if !truncated || terminated {
		t.Fatalf("expected a pure time-truncation ending")
	}

	want := float32(-0.001 + 0.002*5000.0/1000.0)
	if diff := reward - want; diff > 1e-4 || diff < -1e-4 {
		t.Fatalf("expected the clean-done bonus on truncation: reward=%v, want=%v", reward, want)
	}
}
