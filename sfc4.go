package rngbench

import "math/bits"

// Sfc4Warmup is the number of values NewSfc4 discards after seeding.
const Sfc4Warmup = 12

// Sfc4 is Chris Doty-Humphrey's Small Fast Chaotic generator (64 bit variant, as in PractRand).
// Its state consists of three chaotic words and a counter, which guarantees a minimum period of 2^64.
// The memory footprint is 32 bytes.
// This random number generator is deterministic in the sequence of numbers it generates and in its runtime.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
type Sfc4 struct {
	a, b, c uint64
	counter uint64
}

// NewSfc4 returns a Sfc4 with a, b and c set to seed and the counter set to 1.
// The first Sfc4Warmup values are discarded before the generator is returned.
func NewSfc4(seed uint64) Sfc4 {
	r := Sfc4{a: seed, b: seed, c: seed, counter: 1}
	r.Discard(Sfc4Warmup)
	return r
}

// Min returns the smallest value Uint64 can return.
func (Sfc4) Min() uint64 { return Min }

// Max returns the largest value Uint64 can return.
func (Sfc4) Max() uint64 { return Max }

// Uint64 returns the next pseudo-random number in the sequence.
func (r *Sfc4) Uint64() (out uint64) {
	out = r.a + r.b + r.counter
	r.counter++
	r.a, r.b, r.c = r.b^(r.b>>11), r.c+(r.c<<3), bits.RotateLeft64(r.c, 24)+out
	return
}

// Discard advances the state by n steps.
func (r *Sfc4) Discard(n int) {
	for range n {
		r.Uint64()
	}
}
