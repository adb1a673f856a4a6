package core

import (
	"prospector/internal/limits"
	"prospector/rng"
	"prospector/worldgen"
)

// StepResult is the fixed-shape return value of Step (spec.md §6).
type StepResult struct {
	Obs           [limits.ObsDim]float32
	Reward        float32
	Terminated    bool
	Truncated     bool
	InvalidAction bool
	Dt            uint16
	Action        int16
	Metrics       StepMetrics
	TimeRemaining float32
}

// Episode is one deterministic state machine: one Rng, one World, one Ship,
// running counters, and a preallocated observation buffer (spec.md §3).
// It owns everything it touches; nothing aliases into it and nothing
// aliases out except the read-only obs buffer between steps.
type Episode struct {
	cfg Config

	rng   rng.Rng
	world worldgen.World
	ship  Ship

	counters      Counters
	timeRemaining float64
	ticksElapsed  float64

	terminated bool
	truncated  bool
	needsReset bool

	obs    [limits.ObsDim]float32
	events eventRing
}

// NewEpisode allocates an episode handle. The episode has no valid state
// until Reset is called; Step before the first Reset changes nothing and
// returns an invalid result with dt=0 that is flagged neither terminated
// nor truncated.
func NewEpisode(cfg Config) *Episode {
	e := &Episode{cfg: cfg}
	e.needsReset = true
	return e
}

// Reset seeds a fresh episode and, if obsOut is non-nil, copies the initial
// observation into it (spec.md §6 reset).
func (e *Episode) Reset(seed uint64, obsOut *[limits.ObsDim]float32) {
	e.rng.Seed(seed, limits.RngStream)
	e.world = worldgen.Generate(&e.rng)

	e.ship = Ship{
		Fuel:        limits.FuelMax,
		Hull:        limits.HullMax,
		Heat:        0,
		Tool:        limits.ToolMax,
		Alert:       0,
		Credits:     0,
		Node:        0,
		SelectedAst: -1,
	}
	e.counters = Counters{
		FuelStart: limits.FuelMax,
		HullStart: limits.HullMax,
		ToolStart: limits.ToolMax,
	}
	e.timeRemaining = e.cfg.TimeMax
	e.ticksElapsed = 0
	e.terminated = false
	e.truncated = false
	e.needsReset = false
	e.events = eventRing{}

	e.packObs()
	if obsOut != nil {
		*obsOut = e.obs
	}
}

// Close releases the episode. The episode owns no external resources, so
// this only marks it unusable; it exists to give callers a symmetric
// create/destroy pair (spec.md §6 destroy).
func (e *Episode) Close() {
	*e = Episode{needsReset: true}
}

// Step advances the episode by one action, following the normative order
// of spec.md §4.5. It performs zero dynamic allocation.
func (e *Episode) Step(action uint8) StepResult {
	if e.needsReset {
		return StepResult{
			Obs:           e.obs,
			Terminated:    e.terminated,
			Truncated:     e.truncated,
			InvalidAction: true,
			Dt:            0,
			Action:        normalizeActionID(int(action)),
			Metrics:       e.computeMetrics(true, false),
			TimeRemaining: float32(e.timeRemaining),
		}
	}

	resolved := normalizeActionID(int(action))
	decoded := decodeAction(resolved)

	pre := e.takeSnapshot()

	dt, edgeThreat, ok := e.applyPrimary(decoded)
	// An id outside [0, NumActions) runs as hold but still counts as invalid.
	invalid := !ok || int(action) >= NumActions
	wasTravel := ok && decoded.Kind == KindTravel
	if invalid {
		dt, _, _ = e.applyPrimary(DecodedAction{Kind: KindHold})
		edgeThreat = 0
		wasTravel = false
	}

	e.applyPassive(dt)
	e.applyNodeHazards(dt, edgeThreat, wasTravel)
	tickMarket(&e.world.Market, &e.rng, e.ticksElapsed, dt)
	e.clampAndAccumulate(dt)

	destroyed, stranded := e.detectTerminal(resolved)

	isScanAction := resolved == actScanWide || resolved == actScanFocused || resolved == actScanDeep
	reward := e.computeReward(pre, dt, invalid, isScanAction, stranded, destroyed)

	e.packObs()
	metrics := e.computeMetrics(destroyed, stranded)

	if e.terminated || e.truncated {
		e.needsReset = true
	}

	return StepResult{
		Obs:           e.obs,
		Reward:        float32(reward),
		Terminated:    e.terminated,
		Truncated:     e.truncated,
		InvalidAction: invalid,
		Dt:            uint16(dt),
		Action:        resolved,
		Metrics:       metrics,
		TimeRemaining: float32(e.timeRemaining),
	}
}
