package rng

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDistributions(t *testing.T) {
	Convey("Given a seeded Rng", t, func() {
		var r Rng
		r.Seed(7, 54)

		Convey("IntRange stays within [lo, hiExcl)", func() {
			for i := 0; i < 10000; i++ {
				v := r.IntRange(3, 11)
				So(v, ShouldBeGreaterThanOrEqualTo, 3)
				So(v, ShouldBeLessThan, 11)
			}
		})

		Convey("Uniform stays within [a, b)", func() {
			for i := 0; i < 10000; i++ {
				v := r.Uniform(-2.0, 5.0)
				So(v, ShouldBeGreaterThanOrEqualTo, -2.0)
				So(v, ShouldBeLessThan, 5.0)
			}
		})

		Convey("ExpUnit is always positive and finite", func() {
			for i := 0; i < 10000; i++ {
				v := r.ExpUnit()
				So(v, ShouldBeGreaterThan, 0)
				So(math.IsInf(v, 0), ShouldBeFalse)
				So(math.IsNaN(v), ShouldBeFalse)
			}
		})

		Convey("Normal draws are finite", func() {
			for i := 0; i < 10000; i++ {
				v := r.Normal(0, 1)
				So(math.IsNaN(v), ShouldBeFalse)
				So(math.IsInf(v, 0), ShouldBeFalse)
			}
		})

		Convey("Lognormal draws are positive and finite", func() {
			for i := 0; i < 10000; i++ {
				v := r.Lognormal(0, 0.5)
				So(v, ShouldBeGreaterThan, 0)
				So(math.IsInf(v, 0), ShouldBeFalse)
			}
		})

		Convey("Beta32 draws stay within [0,1]", func() {
			for i := 0; i < 10000; i++ {
				v := r.Beta32()
				So(v, ShouldBeGreaterThanOrEqualTo, 0)
				So(v, ShouldBeLessThanOrEqualTo, 1)
			}
		})

		Convey("DirichletOnesInto sums to 1 and allocates nothing new per-call", func() {
			dst := make([]float64, 6)
			for i := 0; i < 1000; i++ {
				r.DirichletOnesInto(dst)
				sum := 0.0
				for _, v := range dst {
					So(v, ShouldBeGreaterThanOrEqualTo, 0)
					sum += v
				}
				So(sum, ShouldAlmostEqual, 1.0, 1e-9)
			}
			So(testing.AllocsPerRun(100, func() { r.DirichletOnesInto(dst) }), ShouldEqual, 0.0)
		})
	})
}

func TestNormalUnderflowClampsRatherThanRedraws(t *testing.T) {
	// Clamping an underflowing u1 to 1e-8 instead of redrawing means every
	// Normal() call consumes exactly two draws, never more. Seed 0's first
	// f32 draw does not underflow (it is about 0.72), so this checks the
	// fixed two-draw count the clamp rule guarantees, not the clamp itself.
	var r Rng
	r.Seed(0, 54)
	before := r
	_ = r.Normal(0, 1)
	drawsConsumed := 0
	probe := before
	for i := 0; i < 2; i++ {
		probe.NextU32()
		drawsConsumed++
	}
	// Re-derive from the same seed and confirm exactly two NextU32 calls
	// reproduce the state Normal() leaves behind.
	after := before
	after.NextU32()
	after.NextU32()
	if after != r {
		t.Fatalf("Normal() did not consume exactly two draws")
	}
}
