// Package parity runs two implementations of the episode state machine
// over identical seed/action sequences and diffs their traces within
// tolerance, per spec.md §4.10.
package parity

import (
	"prospector/core"
	"prospector/internal/limits"
	"prospector/reference"
)

// Trace is one step's comparable record: everything the harness diffs
// between implementations (spec.md §4.10, §9.1 capability interface).
type Trace struct {
	Step       int
	Action     int16
	Dt         uint16
	Reward     float32
	Terminated bool
	Truncated  bool
	Obs        [limits.ObsDim]float32
	Metrics    core.StepMetrics
}

// Engine is "something that can reset(seed) and step(action) and emit a
// trace record" (spec.md §9): the capability the harness depends on
// instead of a concrete core/reference type.
type Engine interface {
	Reset(seed uint64)
	Step(action uint8) Trace
}

// FastEngine adapts *core.Episode to Engine.
type FastEngine struct {
	Episode *core.Episode
}

func NewFastEngine(cfg core.Config) *FastEngine {
	return &FastEngine{Episode: core.NewEpisode(cfg)}
}

func (f *FastEngine) Reset(seed uint64) {
	f.Episode.Reset(seed, nil)
}

func (f *FastEngine) Step(action uint8) Trace {
	r := f.Episode.Step(action)
	return Trace{
		Action:     r.Action,
		Dt:         r.Dt,
		Reward:     r.Reward,
		Terminated: r.Terminated,
		Truncated:  r.Truncated,
		Obs:        r.Obs,
		Metrics:    r.Metrics,
	}
}

// ReferenceEngine adapts *reference.Episode to Engine.
type ReferenceEngine struct {
	Episode *reference.Episode
}

func NewReferenceEngine(cfg core.Config) *ReferenceEngine {
	return &ReferenceEngine{Episode: reference.NewEpisode(cfg)}
}

func (r *ReferenceEngine) Reset(seed uint64) {
	r.Episode.Reset(seed)
}

func (r *ReferenceEngine) Step(action uint8) Trace {
	obs, reward, terminated, truncated, _, dt, resolved, metrics := r.Episode.Step(action)
	return Trace{
		Action:     resolved,
		Dt:         dt,
		Reward:     reward,
		Terminated: terminated,
		Truncated:  truncated,
		Obs:        obs,
		Metrics:    metrics,
	}
}
