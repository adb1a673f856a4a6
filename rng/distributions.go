package rng

import "math"

// IntRange returns a uniform integer in [lo, hiExcl). Biased (next_u32 mod
// span) rather than unbiased-rejection-sampled: both implementations must
// agree on the same biased formula for parity, so the bias itself is part of
// the frozen contract rather than a defect to fix.
func (r *Rng) IntRange(lo, hiExcl int) int {
	span := uint32(hiExcl - lo)
	return lo + int(r.NextU32()%span)
}

// Uniform returns a uniform float64 in [a,b).
func (r *Rng) Uniform(a, b float64) float64 {
	return a + (b-a)*float64(r.NextF32())
}

// ExpUnit returns an Exp(1)-distributed draw.
func (r *Rng) ExpUnit() float64 {
	u := float64(r.NextF32())
	if u < 1e-8 {
		u = 1e-8
	}
	return -math.Log(u)
}

// Normal returns a Normal(mu, sigma) draw via Box-Muller, consuming exactly
// two consecutive f32 draws in a fixed order: u1 then u2. If u1 underflows to
// <= 0 it is clamped to 1e-8 rather than redrawn, so every call consumes
// exactly two draws regardless of the values sampled.
func (r *Rng) Normal(mu, sigma float64) float64 {
	u1 := float64(r.NextF32())
	u2 := float64(r.NextF32())
	if u1 <= 0 {
		u1 = 1e-8
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mu + sigma*z
}

// Lognormal returns exp(Normal(mu, sigma)).
func (r *Rng) Lognormal(mu, sigma float64) float64 {
	return math.Exp(r.Normal(mu, sigma))
}

// Beta32 returns a Beta(3,2) draw via the sum-of-exponentials construction:
// A is the sum of 3 Exp(1) draws, B the sum of 2. Returns 0.5 (rather than
// dividing by zero) if A+B is non-positive.
func (r *Rng) Beta32() float64 {
	a := r.ExpUnit() + r.ExpUnit() + r.ExpUnit()
	b := r.ExpUnit() + r.ExpUnit()
	if a+b <= 0 {
		return 0.5
	}
	return a / (a + b)
}

// DirichletOnesInto fills dst with a Dirichlet(1,...,1) draw over len(dst)
// components, normalizing a vector of Exp(1) draws. It writes in place and
// allocates nothing, for use in the core's allocation-free hot path. On a
// degenerate (non-positive) sum every component is set to 1/len(dst).
func (r *Rng) DirichletOnesInto(dst []float64) {
	k := len(dst)
	sum := 0.0
	for i := 0; i < k; i++ {
		dst[i] = r.ExpUnit()
		sum += dst[i]
	}
	if sum <= 0 {
		for i := 0; i < k; i++ {
			dst[i] = 1.0 / float64(k)
		}
		return
	}
	for i := 0; i < k; i++ {
		dst[i] /= sum
	}
}

// DirichletOnes is the allocating convenience form of DirichletOnesInto, for
// callers outside the hot path (world generation, the reference
// implementation).
func (r *Rng) DirichletOnes(k int) []float64 {
	dst := make([]float64, k)
	r.DirichletOnesInto(dst)
	return dst
}
