package core

import (
	"math"

	"prospector/internal/limits"
	"prospector/rng"
	"prospector/worldgen"
)

// effTool and effHeat scale extraction yield down as tool wear and heat
// rise (spec.md §4.5 Mining semantics).
func effTool(tool float64) float64 {
	return 0.4 + 0.6*(tool/limits.ToolMax)
}

func effHeat(heatFrac float64) float64 {
	if heatFrac <= 0.7 {
		return 1.0
	}
	return 1.0 - (heatFrac-0.7)/0.3*0.9
}

// mineAsteroid extracts resources from slot into cargo, respecting the
// ship's remaining capacity, and returns the total mass actually added.
func mineAsteroid(ship *Ship, slot *worldgen.AsteroidSlot, r *rng.Rng, mode MineMode) float64 {
	prof := miningProfiles[mode]

	heatFrac := ship.Heat / limits.HeatMax
	base := slot.Richness * (1 - slot.Depletion) * effTool(ship.Tool) * effHeat(heatFrac) * prof.yield
	noise := math.Exp(r.Normal(0, 0.15*prof.noise))

	var extracted [limits.NumCommodities]float64
	total := 0.0
	for c := 0; c < limits.NumCommodities; c++ {
		v := base * noise * slot.TrueComp[c]
		if v < 0 {
			v = 0
		}
		extracted[c] = v
		total += v
	}

	room := limits.CargoMax - ship.CargoTotal()
	if room < 0 {
		room = 0
	}
	if total > room && total > 0 {
		scale := room / total
		for c := range extracted {
			extracted[c] *= scale
		}
		total = room
	}

	for c := 0; c < limits.NumCommodities; c++ {
		ship.Cargo[c] += extracted[c]
	}
	slot.Depletion = clamp01(slot.Depletion + 0.01*total)

	ship.Heat += 6.0 * prof.heat
	ship.Tool -= 2.0 * prof.wear
	ship.Alert += 0.8 * prof.alert

	return total
}

// fractureRoll decides whether the asteroid fractures this mining tick and
// applies the resulting hull damage and node-hazard bump (spec.md §4.5).
func fractureRoll(w *worldgen.World, ship *Ship, node, asteroid int, r *rng.Rng, mode MineMode) {
	slot := &w.Asteroids[node][asteroid]
	prof := miningProfiles[mode]

	aggression := prof.yield - 1.0
	heatExcess := maxf(0, ship.Heat/limits.HeatMax-0.7)
	toolFrac := ship.Tool / limits.ToolMax
	stabilizeBuff := 0.0
	if ship.StabilizeBuffTicks[asteroid] > 0 {
		stabilizeBuff = 1.0
	}

	logit := 1.4*aggression + 1.6*(1-slot.StabilityTrue) + 2.0*heatExcess + 0.8*(1-toolFrac) - 2.2*stabilizeBuff - 2.5
	p := logistic(logit)

	if r.Uniform(0, 1) >= p {
		return
	}

	severity := clampf(r.Uniform(0.3, 1.0), 0, 1)
	ship.Hull -= 12.0 * severity
	slot.Depletion = 1.0
	w.NodeHazard[node] = clamp01(w.NodeHazard[node] + 0.1)
}
