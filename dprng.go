package rngbench

import (
	"math/rand/v2"
)

// DPRNG is a small xorshift* generator (https://en.wikipedia.org/wiki/Xorshift#xorshift*) used
// where the statistics need cheap randomness with constant runtime, e.g. to draw bootstrap
// samples. It has a period of 2^64-1 and is not safe for concurrent use. A zero State is a fixed
// point and must be avoided, see NewDPRNG.
type DPRNG struct {
	State uint64
	Round uint64 // number of values drawn so far
}

// NewDPRNG returns a DPRNG with the given seed as state.
// If no seed or a zero seed is given, a random non-zero state is drawn from math/rand/v2.
func NewDPRNG(seed ...uint64) DPRNG {
	var s uint64
	if len(seed) > 0 {
		s = seed[0]
	}
	for s == 0 {
		s = rand.Uint64()
	}
	return DPRNG{State: s}
}

// Min returns the smallest value Uint64 can return.
func (DPRNG) Min() uint64 { return Min }

// Max returns the largest value Uint64 can return.
func (DPRNG) Max() uint64 { return Max }

// Uint64 advances the state and returns the next value.
func (d *DPRNG) Uint64() uint64 {
	x := d.State
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	d.State = x
	d.Round++
	return x * 0x2545F4914F6CDD1D
}

// UInt32N returns a value in [0,n) without modulo bias, using Lemire's multiply and reject
// method (https://lemire.me/blog/2016/06/30/fast-random-shuffling). It returns 0 for n <= 1.
func (d *DPRNG) UInt32N(n uint32) uint32 {
	prod := uint64(uint32(d.Uint64()>>32)) * uint64(n)
	if low := uint32(prod); low < n {
		thresh := -n % n
		for low < thresh {
			prod = uint64(uint32(d.Uint64()>>32)) * uint64(n)
			low = uint32(prod)
		}
	}
	return uint32(prod >> 32)
}
