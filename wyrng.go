package rngbench

import "math/bits"

// WyRng is a counter based generator that uses a single 64x64->128 bit multiplication
// as its only mixing primitive (see https://github.com/wangyi-fudan/wyhash).
// It has a period of 2^64 and a memory footprint of 8 bytes.
// This random number generator is deterministic in the sequence of numbers it generates and in its runtime.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
type WyRng struct {
	state uint64
}

// NewWyRng returns a WyRng seeded with seed. Every seed, including 0, is valid.
func NewWyRng(seed uint64) WyRng {
	return WyRng{state: seed}
}

// Min returns the smallest value Uint64 can return.
func (WyRng) Min() uint64 { return Min }

// Max returns the largest value Uint64 can return.
func (WyRng) Max() uint64 { return Max }

// Uint64 returns the next pseudo-random number in the sequence.
func (r *WyRng) Uint64() uint64 {
	r.state++
	return mumx(r.state^wyP1, r.state)
}

// Discard advances the state by n steps.
func (r *WyRng) Discard(n int) {
	for range n {
		r.Uint64()
	}
}

// mumx multiplies a and b to a 128 bit product and folds the high and low halves with xor.
func mumx(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}
