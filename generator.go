package rngbench

import "math"

const (
	// Min is the smallest value any Generator in this package returns.
	Min uint64 = 0
	// Max is the largest value any Generator in this package returns.
	Max uint64 = math.MaxUint64
)

// Generator is the uniform surface shared by all random number generators of this package.
// Uint64 advances the state by exactly one step and returns one value from the inclusive range [Min(), Max()].
// Min and Max are constant and do not depend on the state, so they may be called on the zero value.
//
// None of the generators are cryptographically secure (except CPRNG) and none are thread-safe.
// Each instance owns its state exclusively; use one instance per goroutine.
type Generator interface {
	Uint64() uint64
	Min() uint64
	Max() uint64
}

// Some constants shared by several algorithms.
const (
	romuMul   uint64 = 15241094284759029579
	nasamMul1 uint64 = 0x9E6C63D0676A9A99
	nasamMul2 uint64 = 0x9E6D62D06F6A9A9B
	wyP1      uint64 = 0xe7037ed1a0b428db
)
