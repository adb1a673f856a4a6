package core

import (
	"context"
	"fmt"
	"runtime"

	channerics "github.com/niceyeti/channerics/channels"

	"prospector/internal/limits"
)

// Batch owns a fixed set of independently-steppable episodes and drives
// reset/step over all of them concurrently (spec.md §4.9, §5). Episodes
// never touch each other's state; workers claim contiguous index ranges so
// no two goroutines ever write the same slot.
type Batch struct {
	episodes []*Episode
}

// NewBatch allocates one Episode per cfg. Every episode needs its own
// Reset before stepping, same as a lone Episode.
func NewBatch(cfgs []Config) *Batch {
	episodes := make([]*Episode, len(cfgs))
	for i, cfg := range cfgs {
		episodes[i] = NewEpisode(cfg)
	}
	return &Batch{episodes: episodes}
}

// Len returns the number of episodes owned by the batch.
func (b *Batch) Len() int { return len(b.episodes) }

// workerCount returns how many goroutines to split n items across, capped
// by GOMAXPROCS so batches smaller than the machine's parallelism don't
// oversubscribe.
func workerCount(n int) int {
	w := runtime.GOMAXPROCS(0)
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// splitRanges divides [0,n) into at most w contiguous chunks of
// ceil(n/w) items each; the last chunk may be shorter.
func splitRanges(n, w int) [][2]int {
	ranges := make([][2]int, 0, w)
	chunk := (n + w - 1) / w
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		ranges = append(ranges, [2]int{lo, hi})
	}
	return ranges
}

// ResetMany resets every episode in the batch with the corresponding seed
// and writes its initial observation into obsOut, fanning work out across
// GOMAXPROCS goroutines and fanning completion back in via
// channerics.Merge (spec.md §4.9, SPEC_FULL.md §5.1).
func (b *Batch) ResetMany(ctx context.Context, seeds []uint64, obsOut [][limits.ObsDim]float32) error {
	n := len(b.episodes)
	if len(seeds) != n || len(obsOut) != n {
		return fmt.Errorf("core: ResetMany length mismatch: episodes=%d seeds=%d obsOut=%d", n, len(seeds), len(obsOut))
	}
	if n == 0 {
		return nil
	}

	workers := workerCount(n)
	finished := make([]<-chan struct{}, 0, workers)

	for _, rng := range splitRanges(n, workers) {
		lo, hi := rng[0], rng[1]
		ch := make(chan struct{})
		go func(lo, hi int) {
			defer close(ch)
			for i := lo; i < hi; i++ {
				if ctx.Err() != nil {
					return
				}
				b.episodes[i].Reset(seeds[i], &obsOut[i])
			}
		}(lo, hi)
		finished = append(finished, ch)
	}

	// A nil done channel never closes, so this drains until every worker
	// has exited, even after ctx is cancelled.
	for range channerics.Merge(nil, finished...) {
	}
	return ctx.Err()
}

// StepMany steps every episode in the batch with the corresponding action,
// writing its StepResult into out, using the same worker/fan-in shape as
// ResetMany.
func (b *Batch) StepMany(ctx context.Context, actions []uint8, out []StepResult) error {
	n := len(b.episodes)
	if len(actions) != n || len(out) != n {
		return fmt.Errorf("core: StepMany length mismatch: episodes=%d actions=%d out=%d", n, len(actions), len(out))
	}
	if n == 0 {
		return nil
	}

	workers := workerCount(n)
	finished := make([]<-chan struct{}, 0, workers)

	for _, rng := range splitRanges(n, workers) {
		lo, hi := rng[0], rng[1]
		ch := make(chan struct{})
		go func(lo, hi int) {
			defer close(ch)
			for i := lo; i < hi; i++ {
				if ctx.Err() != nil {
					return
				}
				out[i] = b.episodes[i].Step(actions[i])
			}
		}(lo, hi)
		finished = append(finished, ch)
	}

	for range channerics.Merge(nil, finished...) {
	}
	return ctx.Err()
}
