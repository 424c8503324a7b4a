package rngbench

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ErrEntropyUnavailable is returned when no seed can be drawn from the entropy source.
var ErrEntropyUnavailable = errors.New("entropy source unavailable")

var (
	// entropySource is the true-entropy source for seeds and the CPRNG.
	entropySource io.Reader = rand.Reader

	// entropyBackOff returns the retry policy for transient read errors of the entropy source.
	entropyBackOff = func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = 10 * time.Millisecond
		b.MaxElapsedTime = 2 * time.Second
		return b
	}
)

// Seed draws a 64 bit seed from the operating system's entropy source (crypto/rand).
func Seed() (uint64, error) {
	return SeedFrom(context.Background(), entropySource)
}

// SeedFrom draws a 64 bit seed from r. Transient read errors are retried with exponential backoff
// until ctx is done or the retry budget is exhausted. A source that delivers fewer than 8 bytes is
// considered exhausted and is not retried. Any failure wraps ErrEntropyUnavailable.
func SeedFrom(ctx context.Context, r io.Reader) (uint64, error) {
	var buf [8]byte
	if err := readEntropy(ctx, r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func readEntropy(ctx context.Context, r io.Reader, buf []byte) error {
	op := func() error {
		n, err := io.ReadFull(r, buf)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return backoff.Permanent(fmt.Errorf("short read (%d of %d bytes): %w", n, len(buf), err))
		default:
			return err
		}
	}
	if err := backoff.Retry(op, backoff.WithContext(entropyBackOff(), ctx)); err != nil {
		return fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}
	return nil
}
