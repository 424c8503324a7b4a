package rngbench

import "math/bits"

// Number of values discarded by the Romu constructors after seeding.
const (
	RomuTrioWarmup  = 1
	RomuDuoWarmup   = 1
	RomuDuoJrWarmup = 10
)

// Initial value of the y word of all Romu generators, z of RomuTrio starts at wyP1.
const romuInitY uint64 = 0x9E6C63D0676A9A99

// The Romu generators by Mark A. Overton (see https://www.romu-random.org) use few,
// mutually independent multiply and rotate operations on small states, so the CPU can
// overlap the update of each state word with the consumption of the previous output.
// The period depends on the seed and is not guaranteed, but is practically unbounded for
// the state sizes used here.
// These random number generators are deterministic in the sequence of numbers they generate and in their runtime.
// These random number generators are not cryptographically secure.
// These random number generators are not thread-safe.

// RomuTrio has 192 bits of state and is the highest quality member of the family.
type RomuTrio struct {
	x, y, z uint64
}

// NewRomuTrio returns a RomuTrio seeded with seed. The first RomuTrioWarmup values are discarded.
func NewRomuTrio(seed uint64) RomuTrio {
	r := RomuTrio{x: seed, y: romuInitY, z: wyP1}
	r.Discard(RomuTrioWarmup)
	return r
}

// Min returns the smallest value Uint64 can return.
func (RomuTrio) Min() uint64 { return Min }

// Max returns the largest value Uint64 can return.
func (RomuTrio) Max() uint64 { return Max }

// Uint64 returns the next pseudo-random number in the sequence.
// All three new words are computed from the old words, so they are read before any is written.
func (r *RomuTrio) Uint64() uint64 {
	x, y, z := r.x, r.y, r.z
	r.x = romuMul * z
	r.y = bits.RotateLeft64(y-x, 12)
	r.z = bits.RotateLeft64(z-y, 44)
	return x
}

// Discard advances the state by n steps.
func (r *RomuTrio) Discard(n int) {
	for range n {
		r.Uint64()
	}
}

// RomuDuo has 128 bits of state.
type RomuDuo struct {
	x, y uint64
}

// NewRomuDuo returns a RomuDuo seeded with seed. The first RomuDuoWarmup values are discarded.
func NewRomuDuo(seed uint64) RomuDuo {
	r := RomuDuo{x: seed, y: romuInitY}
	r.Discard(RomuDuoWarmup)
	return r
}

// Min returns the smallest value Uint64 can return.
func (RomuDuo) Min() uint64 { return Min }

// Max returns the largest value Uint64 can return.
func (RomuDuo) Max() uint64 { return Max }

// Uint64 returns the next pseudo-random number in the sequence.
func (r *RomuDuo) Uint64() uint64 {
	x := r.x
	r.x = romuMul * r.y
	r.y = bits.RotateLeft64(r.y, 36) + bits.RotateLeft64(r.y, 15) - x
	return x
}

// Discard advances the state by n steps.
func (r *RomuDuo) Discard(n int) {
	for range n {
		r.Uint64()
	}
}

// RomuDuoJr is the fastest member of the family with 128 bits of state.
// It is suited for workloads that need fewer than about 2^51 values.
type RomuDuoJr struct {
	x, y uint64
}

// NewRomuDuoJr returns a RomuDuoJr seeded with seed. The first RomuDuoJrWarmup values are discarded.
func NewRomuDuoJr(seed uint64) RomuDuoJr {
	r := RomuDuoJr{x: seed, y: romuInitY}
	r.Discard(RomuDuoJrWarmup)
	return r
}

// Min returns the smallest value Uint64 can return.
func (RomuDuoJr) Min() uint64 { return Min }

// Max returns the largest value Uint64 can return.
func (RomuDuoJr) Max() uint64 { return Max }

// Uint64 returns the next pseudo-random number in the sequence.
func (r *RomuDuoJr) Uint64() uint64 {
	x := r.x
	r.x = romuMul * r.y
	r.y = bits.RotateLeft64(r.y-x, 27)
	return x
}

// Discard advances the state by n steps.
func (r *RomuDuoJr) Discard(n int) {
	for range n {
		r.Uint64()
	}
}
