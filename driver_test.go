package rngbench

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCasesOrder(t *testing.T) {
	var names []string
	for _, c := range Cases() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"math/rand", "math/rand/v2.PCG", "math/rand/v2.ChaCha8", "DPRNG", "CPRNG",
		"WyRng", "NasamRng", "Sfc4", "RomuTrio", "RomuDuo", "RomuDuoJr",
	}, names)
}

func TestCasesReturnsCopy(t *testing.T) {
	cs := Cases()
	cs[0].Name = "changed"
	assert.Equal(t, "math/rand", Cases()[0].Name)
}

func TestBenchmarkFoldsMixedValues(t *testing.T) {
	cfg := fastConfig()
	cfg.Warmup = 0
	cfg.Epochs = 1
	cfg.EpochIterations = 8
	b, err := NewBench(cfg)
	require.NoError(t, err)

	require.NoError(t, Benchmark(b, "Sfc4", 1, NewSfc4))

	var want uint64
	for _, v := range goldenSeed1["Sfc4"] {
		want ^= Mix64(v)
	}
	assert.Equal(t, want, sink.Load())
	assert.Equal(t, "Sfc4", b.Results()[0].Name)
}

func TestBenchmarkPropagatesRunErrors(t *testing.T) {
	b, err := NewBench(fastConfig())
	require.NoError(t, err)
	require.NoError(t, Benchmark(b, "WyRng", 1, NewWyRng))
	assert.Error(t, Benchmark(b, "WyRng", 2, NewWyRng))
}

func TestRunAll(t *testing.T) {
	cfg := fastConfig()
	cfg.Epochs = 2
	b, err := NewBench(cfg)
	require.NoError(t, err)

	require.NoError(t, RunAll(context.Background(), b))
	results := b.Results()
	require.Len(t, results, len(Cases()))
	for i, c := range Cases() {
		assert.Equal(t, c.Name, results[i].Name)
	}
	assert.Equal(t, 100.0, results[0].Relative)
}

func TestRunAllSelection(t *testing.T) {
	b, err := NewBench(fastConfig())
	require.NoError(t, err)

	require.NoError(t, RunAll(context.Background(), b, "RomuDuoJr", "Sfc4"))
	results := b.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "RomuDuoJr", results[0].Name)
	assert.Equal(t, "Sfc4", results[1].Name)
}

func TestRunAllUnknownGenerator(t *testing.T) {
	b, err := NewBench(fastConfig())
	require.NoError(t, err)

	err = RunAll(context.Background(), b, "Sfc4", "Mersenne")
	assert.ErrorIs(t, err, ErrUnknownGenerator)
	assert.Empty(t, b.Results(), "nothing is measured if a name is unknown")
}

func TestRunAllCanceled(t *testing.T) {
	b, err := NewBench(fastConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, RunAll(ctx, b), context.Canceled)
	assert.Empty(t, b.Results())
}

func TestRunAllWithoutEntropy(t *testing.T) {
	withEntropy(t, &flakyReader{src: bytes.NewReader(nil)})
	b, err := NewBench(fastConfig())
	require.NoError(t, err)

	err = RunAll(context.Background(), b, "WyRng")
	assert.ErrorIs(t, err, ErrEntropyUnavailable)
	assert.ErrorContains(t, err, "WyRng")
}
