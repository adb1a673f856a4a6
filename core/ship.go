package core

import "prospector/internal/limits"

// Ship holds every scalar and array belonging to the player's vessel.
// Bounds (FuelMax, HullMax, ...) live in internal/limits; Step clamps every
// field to its bound after each step (spec.md §3 Ship invariant).
type Ship struct {
	Fuel    float64
	Hull    float64
	Heat    float64
	Tool    float64
	Alert   float64
	Credits float64

	Cargo [limits.NumCommodities]float64

	RepairKits  int
	Stabilizers int
	Decoys      int

	EscapeBuffTicks    int
	StabilizeBuffTicks [limits.MaxAsteroidsPerCluster]int

	Node         int
	SelectedAst  int // -1 = none selected
	MiningActive bool
}

// CargoTotal returns the summed cargo across all commodities.
func (s *Ship) CargoTotal() float64 {
	total := 0.0
	for _, v := range s.Cargo {
		total += v
	}
	return total
}

// Counters are the episode's monotonically-increasing running tallies
// (spec.md §3 Counters). FuelStart/HullStart/ToolStart are frozen at reset.
type Counters struct {
	TotalSpend         float64
	OverheatTicks      float64
	PirateEncounters   float64
	ValueLostToPirates float64
	ScanCount          float64
	MiningTicks        float64

	FuelStart float64
	HullStart float64
	ToolStart float64

	CargoUtilSum   float64
	CargoUtilCount float64
}
