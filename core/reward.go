package core

import "prospector/internal/limits"

// snapshot captures the pre-step scalars reward needs deltas against
// (spec.md §4.5 step 1 / §4.6).
type snapshot struct {
	credits        float64
	fuel           float64
	hull           float64
	heat           float64
	tool           float64
	cargoValue     float64
	valueLostTotal float64
}

func (e *Episode) takeSnapshot() snapshot {
	return snapshot{
		credits:        e.ship.Credits,
		fuel:           e.ship.Fuel,
		hull:           e.ship.Hull,
		heat:           e.ship.Heat,
		tool:           e.ship.Tool,
		cargoValue:     e.estimatedCargoValue(),
		valueLostTotal: e.counters.ValueLostToPirates,
	}
}

func (e *Episode) estimatedCargoValue() float64 {
	total := 0.0
	for c := 0; c < limits.NumCommodities; c++ {
		total += e.ship.Cargo[c] * e.world.Market.Price[c]
	}
	return total
}

// computeReward implements the closed-form shaped reward of spec.md §4.6.
// isScanAction tells whether the resolved action id is a scan; the scan
// cost applies only when the step was not invalid (i.e. not overridden by
// the invalid-action hold fallback).
func (e *Episode) computeReward(pre snapshot, dt int, invalid, isScanAction, stranded, destroyed bool) float64 {
	credits := e.ship.Credits
	fuel := e.ship.Fuel
	hull := e.ship.Hull
	heat := e.ship.Heat
	tool := e.ship.Tool

	rSell := (credits - pre.credits) / 1000.0

	dCargoValue := e.estimatedCargoValue() - pre.cargoValue
	rExtract := 0.02 * maxf(0, dCargoValue) / 1000.0

	dFuel := pre.fuel - fuel
	rFuel := -0.10 * maxf(0, dFuel) / 100.0

	rTime := -0.001 * float64(dt)

	dTool := pre.tool - tool
	rWear := -0.05 * maxf(0, dTool) / 10.0

	dHull := pre.hull - hull
	rDamage := -1.00 * maxf(0, dHull) / 10.0

	heatExcess := maxf(0, heat-0.7*limits.HeatMax) / limits.HeatMax
	rHeat := -0.20 * heatExcess * heatExcess

	rScan := 0.0
	if !invalid && isScanAction {
		rScan = -0.005
	}

	rInvalid := 0.0
	if invalid {
		rInvalid = -e.cfg.InvalidActionPenalty
	}

	dValueLost := e.counters.ValueLostToPirates - pre.valueLostTotal
	rPirate := -1.00 * dValueLost / 1000.0

	rTerminal := 0.0
	done := destroyed || stranded || e.terminated || e.truncated
	switch {
	case destroyed:
		rTerminal = -100
	case stranded:
		rTerminal = -50
	case done:
		// Clean done: cash-out or running out the time budget without
		// being destroyed or stranded.
		rTerminal = 0.002 * credits / 1000.0
	}

	return rSell + rExtract + rFuel + rTime + rWear + rHeat + rDamage + rScan + rInvalid + rPirate + rTerminal
}
