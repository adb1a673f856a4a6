package worldgen

import (
	"math"

	"prospector/internal/limits"
	"prospector/rng"
)

const hazardProbability = 0.25

// Generate builds a new World from r. The draw order is the frozen contract
// named in spec.md §4.3 and must not be reordered: node count, then per-node
// type/hazard/pirate loading, then the spanning tree, then extra edges (with
// their travel-time/fuel/threat draws interleaved as each edge is created),
// then BFS distances, then per-cluster asteroid populations, then the market
// regime.
func Generate(r *rng.Rng) World {
	var w World

	w.N = r.IntRange(limits.MinNodes, limits.MaxNodes+1)
	w.NodeType[0] = limits.NodeStation

	for i := 1; i < w.N; i++ {
		if r.Uniform(0, 1) < hazardProbability {
			w.NodeType[i] = limits.NodeHazard
		} else {
			w.NodeType[i] = limits.NodeCluster
		}
	}

	for i := 1; i < w.N; i++ {
		hazardLoad := 1.0
		if w.NodeType[i] == limits.NodeHazard {
			hazardLoad = 2.0
		}
		w.NodeHazard[i] = clamp01(r.Uniform(0, 1) * hazardLoad)
		w.NodePirate[i] = clamp01(r.Uniform(0, 1) * hazardLoad)
	}

	// Spanning tree: each new node connects to a uniformly chosen
	// already-present parent. If that parent has no free neighbor slot, the
	// node attaches to the lowest-indexed earlier node that still has one.
	for i := 1; i < w.N; i++ {
		parent := r.IntRange(0, i)
		if !addEdge(&w, r, parent, i) {
			for p := 0; p < i; p++ {
				if addEdge(&w, r, p, i) {
					break
				}
			}
		}
	}

	// N extra random edge attempts, skipping self-loops and duplicates.
	for attempt := 0; attempt < w.N; attempt++ {
		a := r.IntRange(0, w.N)
		b := r.IntRange(0, w.N)
		if a == b {
			continue
		}
		if hasEdge(&w, a, b) {
			continue
		}
		addEdge(&w, r, a, b)
	}

	computeStepsToStation(&w)

	for i := 0; i < w.N; i++ {
		if w.NodeType[i] == limits.NodeCluster {
			generateAsteroids(&w, r, i)
		}
	}

	generateMarket(&w, r)

	return w
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// addEdge adds an undirected edge between a and b if both have a free
// neighbor slot, drawing its travel_time/fuel_cost/edge_threat_true in that
// order. edge_threat_est is initialized to 0.5 without a draw.
func addEdge(w *World, r *rng.Rng, a, b int) bool {
	if a == b {
		return false
	}
	slotA := freeSlot(w, a)
	slotB := freeSlot(w, b)
	if slotA < 0 || slotB < 0 {
		return false
	}

	travelTime := r.IntRange(1, 9)
	fuelCost := r.Uniform(20, 112)
	threatTrue := r.Uniform(0, 1)

	w.Neighbors[a][slotA] = NeighborSlot{
		Valid:      true,
		Neighbor:   b,
		TravelTime: travelTime,
		FuelCost:   fuelCost,
		ThreatTrue: threatTrue,
		ThreatEst:  0.5,
	}
	w.Neighbors[b][slotB] = NeighborSlot{
		Valid:      true,
		Neighbor:   a,
		TravelTime: travelTime,
		FuelCost:   fuelCost,
		ThreatTrue: threatTrue,
		ThreatEst:  0.5,
	}
	return true
}

func freeSlot(w *World, node int) int {
	for i := 0; i < limits.MaxNeighbors; i++ {
		if !w.Neighbors[node][i].Valid {
			return i
		}
	}
	return -1
}

func hasEdge(w *World, a, b int) bool {
	for i := 0; i < limits.MaxNeighbors; i++ {
		if w.Neighbors[a][i].Valid && w.Neighbors[a][i].Neighbor == b {
			return true
		}
	}
	return false
}

// computeStepsToStation runs a BFS from node 0 over the adjacency built by
// addEdge, capping unreachable nodes at N-1 (unreachable should not occur
// once the graph is connected by construction, but the cap keeps the
// invariant total regardless).
func computeStepsToStation(w *World) {
	const unset = -1
	for i := 0; i < w.N; i++ {
		w.StepsToStation[i] = unset
	}
	w.StepsToStation[0] = 0

	queue := make([]int, 0, w.N)
	queue = append(queue, 0)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for i := 0; i < limits.MaxNeighbors; i++ {
			slot := w.Neighbors[cur][i]
			if !slot.Valid {
				continue
			}
			if w.StepsToStation[slot.Neighbor] != unset {
				continue
			}
			w.StepsToStation[slot.Neighbor] = w.StepsToStation[cur] + 1
			queue = append(queue, slot.Neighbor)
		}
	}
	for i := 0; i < w.N; i++ {
		if w.StepsToStation[i] == unset {
			w.StepsToStation[i] = w.N - 1
		}
	}
}

const (
	minAsteroidsPerCluster = 4
	maxAsteroidsPerCluster = limits.MaxAsteroidsPerCluster

	richnessMu    = 0.0
	richnessSigma = 0.5
	richnessMin   = 0.2
	richnessMax   = 4.0

	noiseProfileMin = 0.04
	noiseProfileMax = 0.22
)

func generateAsteroids(w *World, r *rng.Rng, node int) {
	count := r.IntRange(minAsteroidsPerCluster, maxAsteroidsPerCluster+1)
	for a := 0; a < count; a++ {
		slot := &w.Asteroids[node][a]
		slot.Valid = true

		r.DirichletOnesInto(slot.TrueComp[:])
		slot.Richness = clampf(r.Lognormal(richnessMu, richnessSigma), richnessMin, richnessMax)
		slot.StabilityTrue = r.Beta32()
		slot.NoiseProfile = r.Uniform(noiseProfileMin, noiseProfileMax)

		r.DirichletOnesInto(slot.CompEst[:])
		slot.StabilityEst = 0.5
		slot.ScanConf = 0.1
		slot.Depletion = 0
	}
}

const (
	periodMin          = 180.0
	periodMax          = 380.0
	amplitudeFracMin   = 0.10
	amplitudeFracMax   = 0.30
	initialInventoryLo = 20.0
	initialInventoryHi = 120.0
)

func generateMarket(w *World, r *rng.Rng) {
	for c := 0; c < limits.NumCommodities; c++ {
		w.Market.Phase[c] = r.Uniform(0, 2*math.Pi)
		w.Market.Period[c] = r.Uniform(periodMin, periodMax)
		w.Market.Amplitude[c] = BasePrice[c] * r.Uniform(amplitudeFracMin, amplitudeFracMax)
		w.Market.StationInventory[c] = r.Uniform(initialInventoryLo, initialInventoryHi)
		w.Market.RecentSales[c] = 0

		initial := BasePrice[c] + w.Market.Amplitude[c]*math.Sin(w.Market.Phase[c]) - 0.04*w.Market.StationInventory[c]
		initial = clampf(initial, MinPrice[c], MaxPrice[c])
		w.Market.Price[c] = initial
		w.Market.PrevPrice[c] = initial
	}
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
