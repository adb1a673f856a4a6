// Package reference is a deliberately simple, allocation-permitting
// reimplementation of the episode dynamics, built on rng and worldgen plus
// core's plain data types (Config, Ship, Counters, StepMetrics) but never on
// core's dynamics, so that the parity harness has two independent
// implementations to diff against each other.
package reference

import (
	"math"

	"prospector/core"
	"prospector/internal/limits"
	"prospector/rng"
	"prospector/worldgen"
)

// Episode is the reference implementation's state machine. Unlike
// core.Episode it favors straightforward, directly-readable code over
// zero-allocation hot paths.
type Episode struct {
	cfg core.Config

	rng   rng.Rng
	world worldgen.World
	ship  core.Ship

	counters      core.Counters
	timeRemaining float64
	ticksElapsed  float64

	terminated bool
	truncated  bool
	needsReset bool

	obs [limits.ObsDim]float32
}

// NewEpisode allocates a reference episode with the given configuration.
func NewEpisode(cfg core.Config) *Episode {
	return &Episode{cfg: cfg, needsReset: true}
}

// Reset seeds a fresh episode, matching core.Episode.Reset's semantics.
func (e *Episode) Reset(seed uint64) {
	e.rng.Seed(seed, limits.RngStream)
	e.world = worldgen.Generate(&e.rng)

	e.ship = core.Ship{
		Fuel:        limits.FuelMax,
		Hull:        limits.HullMax,
		Tool:        limits.ToolMax,
		Node:        0,
		SelectedAst: -1,
	}
	e.counters = core.Counters{
		FuelStart: limits.FuelMax,
		HullStart: limits.HullMax,
		ToolStart: limits.ToolMax,
	}
	e.timeRemaining = e.cfg.TimeMax
	e.ticksElapsed = 0
	e.terminated = false
	e.truncated = false
	e.needsReset = false

	e.packObs()
}

// Obs returns a copy of the current observation vector.
func (e *Episode) Obs() [limits.ObsDim]float32 { return e.obs }

// Step advances the reference episode by one action and returns the same
// trace fields the fast core produces, for comparison by the parity
// harness.
func (e *Episode) Step(action uint8) (obs [limits.ObsDim]float32, reward float32, terminated, truncated, invalidAction bool, dt uint16, resolvedAction int16, metrics core.StepMetrics) {
	if e.needsReset {
		return e.obs, 0, e.terminated, e.truncated, true, 0, normalizeAction(int(action)), e.metrics(true, false)
	}

	resolved := normalizeAction(int(action))
	preCredits := e.ship.Credits
	preFuel := e.ship.Fuel
	preHull := e.ship.Hull
	preTool := e.ship.Tool
	preCargoValue := e.cargoValue()
	preValueLost := e.counters.ValueLostToPirates

	tickCost, edgeThreat, wasTravel, ok := e.applyPrimary(resolved)
	invalid := !ok || int(action) >= numActions
	if invalid {
		tickCost, _, _, _ = e.applyPrimary(actHold)
		edgeThreat = 0
		wasTravel = false
	}

	e.applyPassive(tickCost)
	e.applyHazards(tickCost, edgeThreat, wasTravel)
	e.tickMarket(tickCost)
	e.clamp(tickCost)

	destroyed := e.ship.Hull <= 0
	stranded := e.ship.Fuel <= 0 && e.ship.Node != 0
	if destroyed || stranded || resolved == actCashOut {
		e.terminated = true
	}
	if !e.terminated && e.timeRemaining <= 0 {
		e.truncated = true
	}

	isScan := resolved == actScanWide || resolved == actScanFocused || resolved == actScanDeep
	r := e.reward(preCredits, preFuel, preHull, preTool, preCargoValue, preValueLost, tickCost, invalid, isScan, destroyed, stranded)

	e.packObs()
	m := e.metrics(destroyed, stranded)

	if e.terminated || e.truncated {
		e.needsReset = true
	}

	return e.obs, float32(r), e.terminated, e.truncated, invalid, uint16(tickCost), resolved, m
}

func (e *Episode) cargoValue() float64 {
	total := 0.0
	for c := 0; c < limits.NumCommodities; c++ {
		total += e.ship.Cargo[c] * e.world.Market.Price[c]
	}
	return total
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 { return clampf(v, 0, 1) }

func logistic(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) }
