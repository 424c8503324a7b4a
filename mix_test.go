package rngbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMix64(t *testing.T) {
	testCases := []struct {
		in, out uint64
	}{
		{0, 0},
		{1, 0xb456bcfc34c2cb2c},
		{0x0123456789abcdef, 0x87cbfbfe89022cea},
		{0xffffffffffffffff, 0x64b5720b4b825f21},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.out, Mix64(tc.in), "Mix64(%#x)", tc.in)
		assert.Equal(t, tc.out, Mix64(tc.in), "Mix64(%#x) is not deterministic", tc.in)
	}
}

func TestMix64IsNotAnInvolution(t *testing.T) {
	for _, v := range []uint64{1, 2, 0xDEADBEEF, 0x0123456789abcdef} {
		assert.NotEqual(t, v, Mix64(Mix64(v)), "Mix64(Mix64(%#x))", v)
	}
}

func TestMix64Avalanche(t *testing.T) {
	// flipping a single input bit flips about half of the output bits
	rng := NewDPRNG(0x1234567890ABCDEF)
	const rounds = 10_000
	var flipped uint64
	for range rounds {
		v := rng.Uint64()
		bit := uint64(1) << (rng.Uint64() % 64)
		d := Mix64(v) ^ Mix64(v^bit)
		for ; d != 0; d &= d - 1 {
			flipped++
		}
	}
	avg := float64(flipped) / rounds
	assert.InDelta(t, 32.0, avg, 0.5)
}
