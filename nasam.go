package rngbench

import "math/bits"

// NasamRng is a counter based generator that runs the counter through Pelle Evensen's
// NASAM mixer ("Not Another Strange Acronym Mixer").
// It has a period of 2^64 and a memory footprint of 8 bytes.
// This random number generator is deterministic in the sequence of numbers it generates and in its runtime.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
type NasamRng struct {
	state uint64
}

// NewNasamRng returns a NasamRng seeded with seed. Every seed, including 0, is valid.
// Note that seed 0 yields 0 as first value, as the mixer maps 0 onto itself.
func NewNasamRng(seed uint64) NasamRng {
	return NasamRng{state: seed}
}

// Min returns the smallest value Uint64 can return.
func (NasamRng) Min() uint64 { return Min }

// Max returns the largest value Uint64 can return.
func (NasamRng) Max() uint64 { return Max }

// Uint64 returns the next pseudo-random number in the sequence.
func (r *NasamRng) Uint64() uint64 {
	x := r.state
	r.state++

	x ^= bits.RotateLeft64(x, -25) ^ bits.RotateLeft64(x, -47)
	x *= nasamMul1
	x ^= x>>23 ^ x>>51
	x *= nasamMul2
	x ^= x>>23 ^ x>>51
	return x
}

// Discard advances the state by n steps.
func (r *NasamRng) Discard(n int) {
	for range n {
		r.Uint64()
	}
}
