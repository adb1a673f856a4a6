package reference

import (
	"math"

	"prospector/internal/limits"
	"prospector/worldgen"
)

const (
	creditsCap    = 1e7
	travelTimeCap = 8.0
	fuelCostCap   = 160.0
	inventoryCap  = 500.0
)

// packObs fills e.obs from the current state, following the same frozen
// layout as the fast core (spec.md §4.7). It is written as a sequence of
// straight-line field assignments rather than the core's tight loops,
// trading a few extra lines for obviousness.
func (e *Episode) packObs() {
	for i := range e.obs {
		e.obs[i] = 0
	}

	s := &e.ship
	w := &e.world

	e.obs[0] = float32(s.Fuel / fuelMax)
	e.obs[1] = float32(s.Hull / hullMax)
	e.obs[2] = float32(s.Heat / heatMax)
	e.obs[3] = float32(s.Tool / toolMax)
	e.obs[4] = float32(clamp01(s.CargoTotal() / cargoMax))
	e.obs[5] = float32(s.Alert / alertMax)
	e.obs[6] = float32(clamp01(e.timeRemaining / e.cfg.TimeMax))
	e.obs[7] = float32(clamp01(math.Log1p(maxf(0, s.Credits)) / math.Log1p(creditsCap)))

	for c := 0; c < limits.NumCommodities; c++ {
		e.obs[8+c] = float32(clamp01(s.Cargo[c] / cargoMax))
	}

	e.obs[14] = float32(clamp01(float64(s.RepairKits) / repairKitCap))
	e.obs[15] = float32(clamp01(float64(s.Stabilizers) / stabilizerCap))
	e.obs[16] = float32(clamp01(float64(s.Decoys) / decoyCap))

	if s.Node == 0 {
		e.obs[17] = 1
	}
	if s.MiningActive {
		e.obs[18] = 1
	}
	e.obs[19+w.NodeType[s.Node]] = 1
	e.obs[22] = float32(float64(s.Node) / float64(limits.MaxNodes-1))
	e.obs[23] = float32(float64(w.StepsToStation[s.Node]) / float64(limits.MaxNodes-1))

	for k := 0; k < limits.MaxNeighbors; k++ {
		base := 24 + 7*k
		slot := w.Neighbors[s.Node][k]
		if !slot.Valid {
			continue
		}
		e.obs[base] = 1
		e.obs[base+1+w.NodeType[slot.Neighbor]] = 1
		e.obs[base+4] = float32(clamp01(float64(slot.TravelTime) / travelTimeCap))
		e.obs[base+5] = float32(clamp01(slot.FuelCost / fuelCostCap))
		e.obs[base+6] = float32(slot.ThreatEst)
	}

	for a := 0; a < limits.MaxAsteroidsPerCluster; a++ {
		base := 68 + 11*a
		slot := &w.Asteroids[s.Node][a]
		if !slot.Valid {
			continue
		}
		e.obs[base] = 1
		renormComp(e.obs[base+1:base+7], slot)
		e.obs[base+7] = float32(slot.StabilityEst)
		e.obs[base+8] = float32(slot.Depletion)
		e.obs[base+9] = float32(slot.ScanConf)
		if s.SelectedAst == a {
			e.obs[base+10] = 1
		}
	}

	for c := 0; c < limits.NumCommodities; c++ {
		e.obs[244+c] = float32(clamp01(w.Market.Price[c] / worldgen.BasePrice[c]))
		e.obs[250+c] = float32(clampf((w.Market.Price[c]-w.Market.PrevPrice[c])/100.0, -1, 1))
	}

	frozenOrder := [4]int{limits.Iron, limits.WaterIce, limits.Pge, limits.RareIsotopes}
	for i, c := range frozenOrder {
		e.obs[256+i] = float32(clamp01(w.Market.StationInventory[c] / inventoryCap))
	}
}

func renormComp(dst []float32, slot *worldgen.AsteroidSlot) {
	tmp := make([]float64, limits.NumCommodities)
	sum := 0.0
	for c := range tmp {
		v := slot.CompEst[c]
		if v < 1e-8 {
			v = 1e-8
		}
		tmp[c] = v
		sum += v
	}
	for c := range tmp {
		dst[c] = float32(tmp[c] / sum)
	}
}
