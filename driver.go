package rngbench

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownGenerator is returned for generator names that are not registered.
var ErrUnknownGenerator = errors.New("unknown generator")

const cprngBufferSize = 16384

// Case is a named generator benchmark.
type Case struct {
	Name string
	run  func(b *Bench, seed uint64) error
}

// Run seeds the generator of c from the entropy source and measures it on b.
func (c Case) Run(ctx context.Context, b *Bench) error {
	seed, err := SeedFrom(ctx, entropySource)
	if err != nil {
		return fmt.Errorf("could not seed %s: %w", c.Name, err)
	}
	return c.run(b, seed)
}

func newCase[T any, P interface {
	*T
	Generator
}](name string, newFn func(seed uint64) T) Case {
	return Case{
		Name: name,
		run: func(b *Bench, seed uint64) error {
			return Benchmark[T, P](b, name, seed, newFn)
		},
	}
}

// cases lists the library baselines first; math/rand is the baseline of relative runs.
var cases = []Case{
	newCase("math/rand", NewMathRand),
	newCase("math/rand/v2.PCG", NewPCG),
	newCase("math/rand/v2.ChaCha8", NewChaCha8),
	newCase("DPRNG", func(seed uint64) DPRNG { return NewDPRNG(seed) }),
	newCase("CPRNG", func(uint64) CPRNG { return *NewCPRNG(cprngBufferSize) }),
	newCase("WyRng", NewWyRng),
	newCase("NasamRng", NewNasamRng),
	newCase("Sfc4", NewSfc4),
	newCase("RomuTrio", NewRomuTrio),
	newCase("RomuDuo", NewRomuDuo),
	newCase("RomuDuoJr", NewRomuDuoJr),
}

// Cases returns all registered generator benchmarks in their default order.
func Cases() []Case {
	return slices.Clone(cases)
}

func lookupCase(name string) (Case, bool) {
	i := slices.IndexFunc(cases, func(c Case) bool { return c.Name == name })
	if i < 0 {
		return Case{}, false
	}
	return cases[i], true
}

// Benchmark constructs one generator from seed and measures the time per generated and consumed value.
// Every value is passed through Mix64 and folded into an accumulator, which is handed to
// DoNotOptimizeAway after the measurement.
func Benchmark[T any, P interface {
	*T
	Generator
}](b *Bench, name string, seed uint64, newFn func(seed uint64) T) error {
	g := newFn(seed)
	rng := P(&g)
	var x uint64
	if err := b.Run(name, func() {
		x ^= Mix64(rng.Uint64())
	}); err != nil {
		return err
	}
	b.DoNotOptimizeAway(x)
	return nil
}

// RunAll measures the named generators in the given order, or all generators if no names are given.
// Unknown names are reported before anything is measured.
func RunAll(ctx context.Context, b *Bench, names ...string) error {
	selected := cases
	if len(names) > 0 {
		selected = make([]Case, 0, len(names))
		for _, name := range names {
			c, ok := lookupCase(name)
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
			}
			selected = append(selected, c)
		}
	}
	for _, c := range selected {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Run(ctx, b); err != nil {
			return err
		}
	}
	return nil
}
