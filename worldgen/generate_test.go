package worldgen

import (
	"testing"

	"prospector/internal/limits"
	"prospector/rng"

	. "github.com/smartystreets/goconvey/convey"
)

func newGen(seed uint64) World {
	var r rng.Rng
	r.Seed(seed, limits.RngStream)
	return Generate(&r)
}

func TestGenerateDeterministic(t *testing.T) {
	a := newGen(123)
	b := newGen(123)
	if a != b {
		t.Fatalf("Generate(123) produced different worlds across calls")
	}
}

func TestGenerateInvariants(t *testing.T) {
	Convey("Given worlds generated from a range of seeds", t, func() {
		for _, seed := range []uint64{0, 1, 2, 42, 123, 99999} {
			w := newGen(seed)

			Convey("node count is in [MinNodes, MaxNodes]", func() {
				So(w.N, ShouldBeGreaterThanOrEqualTo, limits.MinNodes)
				So(w.N, ShouldBeLessThanOrEqualTo, limits.MaxNodes)
			})

			Convey("node 0 is always a station", func() {
				So(w.NodeType[0], ShouldEqual, limits.NodeStation)
			})

			Convey("the graph is connected", func() {
				reached := map[int]bool{0: true}
				queue := []int{0}
				for len(queue) > 0 {
					cur := queue[0]
					queue = queue[1:]
					for k := 0; k < limits.MaxNeighbors; k++ {
						slot := w.Neighbors[cur][k]
						if slot.Valid && !reached[slot.Neighbor] {
							reached[slot.Neighbor] = true
							queue = append(queue, slot.Neighbor)
						}
					}
				}
				So(len(reached), ShouldEqual, w.N)
				for i := 0; i < w.N; i++ {
					So(w.StepsToStation[i], ShouldBeLessThan, w.N)
				}
			})

			Convey("station nodes have no asteroids", func() {
				for i := 0; i < w.N; i++ {
					if w.NodeType[i] != limits.NodeStation {
						continue
					}
					for a := 0; a < limits.MaxAsteroidsPerCluster; a++ {
						So(w.Asteroids[i][a].Valid, ShouldBeFalse)
					}
				}
			})

			Convey("every valid asteroid's true composition sums to 1", func() {
				for i := 0; i < w.N; i++ {
					for a := 0; a < limits.MaxAsteroidsPerCluster; a++ {
						slot := w.Asteroids[i][a]
						if !slot.Valid {
							continue
						}
						sum := 0.0
						for _, v := range slot.TrueComp {
							sum += v
						}
						So(sum, ShouldAlmostEqual, 1.0, 1e-9)
						So(slot.Richness, ShouldBeBetween, 0.2-1e-9, 4.0+1e-9)
						So(slot.StabilityTrue, ShouldBeBetween, 0, 1)
						So(slot.NoiseProfile, ShouldBeBetween, 0.04, 0.22)
					}
				}
			})

			Convey("every neighbor slot's travel time and fuel cost are in range", func() {
				for i := 0; i < w.N; i++ {
					for k := 0; k < limits.MaxNeighbors; k++ {
						slot := w.Neighbors[i][k]
						if !slot.Valid {
							continue
						}
						So(slot.TravelTime, ShouldBeBetween, 0, 9)
						So(slot.FuelCost, ShouldBeBetween, 20.0, 112.0)
						So(slot.ThreatEst, ShouldEqual, 0.5)
					}
				}
			})

			Convey("market prices start within their commodity bounds", func() {
				for c := 0; c < limits.NumCommodities; c++ {
					So(w.Market.Price[c], ShouldBeGreaterThanOrEqualTo, MinPrice[c])
					So(w.Market.Price[c], ShouldBeLessThanOrEqualTo, MaxPrice[c])
					So(w.Market.Price[c], ShouldEqual, w.Market.PrevPrice[c])
				}
			})
		}
	})
}
