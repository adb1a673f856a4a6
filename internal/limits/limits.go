// Package limits holds the frozen sizing constants shared by world
// generation, the core episode, and the reference implementation. These are
// the concrete values chosen within the ranges the contract leaves open
// (e.g. node count is in [8,32]; MaxNodes=32 is the array capacity that
// bounds it) plus the genuinely frozen contract numbers (ObsDim, NumActions).
package limits

const (
	MinNodes     = 8
	MaxNodes     = 32
	MaxNeighbors = 6

	MaxAsteroidsPerCluster = 16

	// NumCommodities is the full tradeable commodity set. Only the first
	// four (iron, water_ice, pge, rare_isotopes) participate in the frozen
	// station-inventory observation slice.
	NumCommodities = 6

	ObsDim     = 260
	NumActions = 69

	FuelMax  = 1000.0
	HullMax  = 100.0
	HeatMax  = 100.0
	ToolMax  = 100.0
	CargoMax = 200.0
	AlertMax = 100.0

	// RngStream is the fixed PCG32 stream every episode seeds with.
	RngStream = 54
)

// Commodity indices, in frozen order.
const (
	Iron = iota
	WaterIce
	Pge
	RareIsotopes
	Volatiles
	Exotics
)

// Node types.
const (
	NodeStation = iota
	NodeCluster
	NodeHazard
)
