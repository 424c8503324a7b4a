package rngbench

import (
	"context"
	"encoding/binary"
)

// CPRNG hands out cryptographically secure random numbers read from the entropy source. It reads
// a whole buffer at a time so that the cost of the system call is spread over many values. In
// the generator benchmark it is the baseline for "real" randomness.
//
// Neither its sequence nor its runtime is deterministic: every len(buf)/8 calls it refills the
// buffer. A CPRNG must not be shared between goroutines.
type CPRNG struct {
	bufPos uint32
	buf    []byte
}

// NewCPRNG creates a CPRNG with a buffer of capBytes bytes, at least 8.
// It panics if the entropy source stays unavailable (see ErrEntropyUnavailable).
func NewCPRNG(capBytes uint32) *CPRNG {
	if capBytes < 8 {
		capBytes = 8
	}
	c := &CPRNG{buf: make([]byte, capBytes)}
	c.refill()
	return c
}

// Min returns the smallest value Uint64 can return.
func (CPRNG) Min() uint64 { return Min }

// Max returns the largest value Uint64 can return.
func (CPRNG) Max() uint64 { return Max }

func (c *CPRNG) refill() {
	if err := readEntropy(context.Background(), entropySource, c.buf); err != nil {
		panic(err)
	}
	c.bufPos = 0
}

// Uint64 returns the next 8 buffered bytes as a little endian uint64, refilling the buffer first
// if fewer are left.
func (c *CPRNG) Uint64() uint64 {
	if c.bufPos+8 > uint32(len(c.buf)) {
		c.refill()
	}
	v := binary.LittleEndian.Uint64(c.buf[c.bufPos:])
	c.bufPos += 8
	return v
}
