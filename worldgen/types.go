// Package worldgen builds the per-episode graph of nodes, asteroid fields,
// and market regime. Generation draws exclusively from a caller-supplied
// rng.Rng in a fixed order (see Generate) so that any two implementations
// sharing the rng package produce byte-identical worlds for the same seed.
package worldgen

import "prospector/internal/limits"

// NeighborSlot is one of a node's fixed MaxNeighbors adjacency slots.
type NeighborSlot struct {
	Valid      bool
	Neighbor   int
	TravelTime int
	FuelCost   float64
	ThreatTrue float64
	ThreatEst  float64
}

// AsteroidSlot is one of a cluster node's fixed MaxAsteroidsPerCluster
// asteroid slots. TrueComp/Richness/StabilityTrue/NoiseProfile are hidden
// ground truth; CompEst/StabilityEst/ScanConf/Depletion are the player's
// visible, updatable estimates.
type AsteroidSlot struct {
	Valid bool

	TrueComp      [limits.NumCommodities]float64
	Richness      float64
	StabilityTrue float64
	NoiseProfile  float64

	CompEst      [limits.NumCommodities]float64
	StabilityEst float64
	ScanConf     float64
	Depletion    float64
}

// Mineable reports whether the asteroid can still be mined: valid and not
// fully depleted.
func (a *AsteroidSlot) Mineable() bool {
	return a.Valid && a.Depletion < 1.0
}

// MarketRegime holds the per-episode, per-commodity price dynamics.
type MarketRegime struct {
	Phase     [limits.NumCommodities]float64
	Period    [limits.NumCommodities]float64
	Amplitude [limits.NumCommodities]float64

	Price            [limits.NumCommodities]float64
	PrevPrice        [limits.NumCommodities]float64
	StationInventory [limits.NumCommodities]float64
	RecentSales      [limits.NumCommodities]float64
}

// World is the full per-episode graph, asteroid population, and market
// regime generated by Generate. All arrays are sized by the frozen maxima in
// internal/limits and padded; only indices [0,N) are active nodes.
type World struct {
	N int

	NodeType   [limits.MaxNodes]int
	NodeHazard [limits.MaxNodes]float64
	NodePirate [limits.MaxNodes]float64

	Neighbors      [limits.MaxNodes][limits.MaxNeighbors]NeighborSlot
	StepsToStation [limits.MaxNodes]int

	Asteroids [limits.MaxNodes][limits.MaxAsteroidsPerCluster]AsteroidSlot

	Market MarketRegime
}
