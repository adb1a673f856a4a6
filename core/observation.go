package core

import (
	"math"

	"prospector/internal/limits"
	"prospector/worldgen"
)

const (
	obsCreditsCap    = 1e7
	obsTravelTimeCap = 8.0
	obsFuelCostCap   = 160.0
	obsInventoryCap  = 500.0
)

// packObs writes the frozen 260-float observation layout from the current
// state into e.obs. It performs no RNG draws and no dynamic allocation
// (spec.md §4.7, §5).
func (e *Episode) packObs() {
	obs := &e.obs
	for i := range obs {
		obs[i] = 0
	}

	s := &e.ship
	w := &e.world

	obs[0] = float32(s.Fuel / limits.FuelMax)
	obs[1] = float32(s.Hull / limits.HullMax)
	obs[2] = float32(s.Heat / limits.HeatMax)
	obs[3] = float32(s.Tool / limits.ToolMax)
	obs[4] = float32(clamp01(s.CargoTotal() / limits.CargoMax))
	obs[5] = float32(s.Alert / limits.AlertMax)
	obs[6] = float32(clamp01(e.timeRemaining / e.cfg.TimeMax))
	obs[7] = float32(clamp01(math.Log1p(maxf(0, s.Credits)) / math.Log1p(obsCreditsCap)))

	for c := 0; c < limits.NumCommodities; c++ {
		obs[8+c] = float32(clamp01(s.Cargo[c] / limits.CargoMax))
	}

	obs[14] = float32(clamp01(float64(s.RepairKits) / repairKitCap))
	obs[15] = float32(clamp01(float64(s.Stabilizers) / stabilizerCap))
	obs[16] = float32(clamp01(float64(s.Decoys) / decoyCap))

	if s.Node == 0 {
		obs[17] = 1
	}
	if s.MiningActive {
		obs[18] = 1
	}

	obs[19+int(w.NodeType[s.Node])] = 1

	obs[22] = float32(float64(s.Node) / float64(limits.MaxNodes-1))
	obs[23] = float32(float64(w.StepsToStation[s.Node]) / float64(limits.MaxNodes-1))

	for k := 0; k < limits.MaxNeighbors; k++ {
		base := 24 + 7*k
		slot := w.Neighbors[s.Node][k]
		if !slot.Valid {
			continue
		}
		obs[base] = 1
		obs[base+1+int(w.NodeType[slot.Neighbor])] = 1
		obs[base+4] = float32(clamp01(float64(slot.TravelTime) / obsTravelTimeCap))
		obs[base+5] = float32(clamp01(slot.FuelCost / obsFuelCostCap))
		obs[base+6] = float32(slot.ThreatEst)
	}

	for a := 0; a < limits.MaxAsteroidsPerCluster; a++ {
		base := 68 + 11*a
		slot := &w.Asteroids[s.Node][a]
		if !slot.Valid {
			continue
		}
		obs[base] = 1
		packComp(obs[base+1:base+7], slot)
		obs[base+7] = float32(slot.StabilityEst)
		obs[base+8] = float32(slot.Depletion)
		obs[base+9] = float32(slot.ScanConf)
		if s.SelectedAst == a {
			obs[base+10] = 1
		}
	}

	for c := 0; c < limits.NumCommodities; c++ {
		obs[244+c] = float32(clamp01(w.Market.Price[c] / worldgen.BasePrice[c]))
		obs[250+c] = float32(clampf((w.Market.Price[c]-w.Market.PrevPrice[c])/100.0, -1, 1))
	}

	frozenOrder := [4]int{limits.Iron, limits.WaterIce, limits.Pge, limits.RareIsotopes}
	for i, c := range frozenOrder {
		obs[256+i] = float32(clamp01(w.Market.StationInventory[c] / obsInventoryCap))
	}
}

// packComp renormalizes comp_est with a 1e-8 floor into dst (6 entries),
// spec.md §4.7.
func packComp(dst []float32, slot *worldgen.AsteroidSlot) {
	var tmp [limits.NumCommodities]float64
	sum := 0.0
	for c := 0; c < limits.NumCommodities; c++ {
		v := slot.CompEst[c]
		if v < 1e-8 {
			v = 1e-8
		}
		tmp[c] = v
		sum += v
	}
	for c := 0; c < limits.NumCommodities; c++ {
		dst[c] = float32(tmp[c] / sum)
	}
}
