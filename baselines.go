package rngbench

import (
	"encoding/binary"
	mrand "math/rand"
	"math/rand/v2"
)

// MathRand wraps the additive lagged Fibonacci source of math/rand.
// It is the comparison baseline of the benchmark, like std::default_random_engine is for C++.
type MathRand struct {
	src mrand.Source64
}

// NewMathRand returns a MathRand seeded with seed.
func NewMathRand(seed uint64) MathRand {
	return MathRand{src: mrand.NewSource(int64(seed)).(mrand.Source64)}
}

// Min returns the smallest value Uint64 can return.
func (MathRand) Min() uint64 { return Min }

// Max returns the largest value Uint64 can return.
func (MathRand) Max() uint64 { return Max }

// Uint64 returns the next value of the math/rand source.
func (r *MathRand) Uint64() uint64 { return r.src.Uint64() }

// PCG wraps the 128 bit PCG-DXSM generator of math/rand/v2.
type PCG struct {
	pcg rand.PCG
}

// NewPCG returns a PCG seeded with seed and the SplitMix64 successor of seed.
func NewPCG(seed uint64) PCG {
	sm := seed
	var r PCG
	r.pcg.Seed(seed, splitMix64(&sm))
	return r
}

// Min returns the smallest value Uint64 can return.
func (PCG) Min() uint64 { return Min }

// Max returns the largest value Uint64 can return.
func (PCG) Max() uint64 { return Max }

// Uint64 returns the next value of the PCG.
func (r *PCG) Uint64() uint64 { return r.pcg.Uint64() }

// ChaCha8 wraps the ChaCha8 based generator of math/rand/v2 (the default source of the Go runtime).
type ChaCha8 struct {
	c *rand.ChaCha8
}

// NewChaCha8 returns a ChaCha8 keyed with four SplitMix64 outputs derived from seed.
func NewChaCha8(seed uint64) ChaCha8 {
	var key [32]byte
	sm := seed
	for i := 0; i < len(key); i += 8 {
		binary.LittleEndian.PutUint64(key[i:], splitMix64(&sm))
	}
	return ChaCha8{c: rand.NewChaCha8(key)}
}

// Min returns the smallest value Uint64 can return.
func (ChaCha8) Min() uint64 { return Min }

// Max returns the largest value Uint64 can return.
func (ChaCha8) Max() uint64 { return Max }

// Uint64 returns the next value of the ChaCha8 stream.
func (r *ChaCha8) Uint64() uint64 { return r.c.Uint64() }

// splitMix64 advances *state and returns the next SplitMix64 value.
// It expands a single seed into several well mixed words.
func splitMix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
