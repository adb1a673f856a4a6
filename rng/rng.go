// Package rng implements the episode's sole source of randomness: a 64-bit
// PCG32 stream (PCG-XSH-RR) and the sampling helpers built on it.
//
// Every method here is part of a frozen bit contract: two independent
// implementations (the fast core and the readable reference) must produce
// identical u32/f32 sequences for the same (seed, stream), on any platform,
// forever. That is what makes the parity harness meaningful. Do not "clean
// up" the arithmetic here without checking both implementations still agree
// — wrapping multiplication, shift amounts, and rotation direction are all
// load-bearing.
package rng

import "math/bits"

// Rng is a PCG32 generator: two 64-bit words, state and inc.
type Rng struct {
	state uint64
	inc   uint64
}

// Seed initializes the generator for a given (seed, stream) pair. The
// sequence of u32 outputs this produces is the frozen contract: state=0,
// inc=(stream<<1)|1, draw once (discarded), add seed to state, draw once
// more (discarded).
func (r *Rng) Seed(seed, stream uint64) {
	r.state = 0
	r.inc = (stream << 1) | 1
	r.NextU32()
	r.state += seed
	r.NextU32()
}

// NextU32 advances the generator and returns the next raw 32-bit output.
func (r *Rng) NextU32() uint32 {
	r.state = r.state*6364136223846793005 + r.inc
	xorshifted := uint32(((r.state >> 18) ^ r.state) >> 27)
	rot := uint32(r.state >> 59)
	return bits.RotateLeft32(xorshifted, -int(rot))
}

// NextF32 returns a float32 in [0,1).
func (r *Rng) NextF32() float32 {
	return float32(float64(r.NextU32()) / 4294967296.0)
}
