package rngbench

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Result holds the measurements of one workload. All times are nanoseconds per call.
type Result struct {
	Name                  string    `json:"name"`
	Unit                  string    `json:"unit"`
	Epochs                uint64    `json:"epochs"`
	EpochIterations       uint64    `json:"epoch_iterations"`
	Samples               []float64 `json:"samples_ns"`
	Median                float64   `json:"median_ns"`
	Mean                  float64   `json:"mean_ns"`
	StdDev                float64   `json:"stddev_ns"`
	MedianAbsPercentError float64   `json:"mdape"`
	OpsPerSecond          float64   `json:"ops_per_second"`
	// Relative is the speed in percent of the baseline (the first workload). It is 0 if the Bench
	// does not run in relative mode.
	Relative float64 `json:"relative,omitempty"`
	// Confidence is the bootstrap confidence that this workload is faster than the baseline by at
	// least Config.Threshold(). It is nil for the baseline, outside relative mode, and if
	// there are fewer than MinimumDataPoints epochs.
	Confidence *float64 `json:"confidence,omitempty"`
}

// sink is the target of DoNotOptimizeAway.
var sink atomic.Uint64

// Bench measures the time per call of named workloads.
// A Bench is not safe for concurrent use.
type Bench struct {
	cfg     Config
	log     zerolog.Logger
	results []Result
	names   map[string]struct{}
}

// Option configures a Bench.
type Option func(b *Bench)

// WithLogger makes the Bench log its progress to l.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Bench) {
		b.log = l
	}
}

// NewBench returns a Bench for cfg. It fails if cfg is invalid.
func NewBench(cfg Config, opts ...Option) (*Bench, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	b := &Bench{
		cfg:   cfg,
		log:   zerolog.Nop(),
		names: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Config returns the configuration of b.
func (b *Bench) Config() Config { return b.cfg }

// DoNotOptimizeAway marks v as observed, so the computation of v can not be eliminated by the compiler.
func (b *Bench) DoNotOptimizeAway(v uint64) {
	sink.Store(v)
}

// Run measures op under the given name and appends the result to Results.
// op is called Warmup times untimed, then Epochs times EpochIterations times timed.
// In relative mode the first workload run is the baseline of all later ones.
func (b *Bench) Run(name string, op func()) error {
	if name == "" {
		return errors.New("workload name must not be empty")
	}
	if _, dup := b.names[name]; dup {
		return fmt.Errorf("workload %q already measured", name)
	}
	b.names[name] = struct{}{}

	for range b.cfg.Warmup {
		op()
	}

	iters := b.cfg.EpochIterations
	if iters == 0 {
		iters = b.calibrate(op)
	}
	b.log.Debug().Str("name", name).Uint64("iterations", iters).Uint64("epochs", b.cfg.Epochs).Msg("measuring")

	samples := make([]float64, 0, b.cfg.Epochs)
	for range b.cfg.Epochs {
		t1 := SampleTime()
		for range iters {
			op()
		}
		t2 := SampleTime()
		samples = append(samples, float64(DiffTimeStamps(t1, t2))/float64(iters))
	}

	res := b.newResult(name, iters, samples)
	b.results = append(b.results, res)

	ev := b.log.Info().Str("name", name).Float64("median_ns", res.Median).Float64("mdape", res.MedianAbsPercentError)
	if b.cfg.Relative {
		ev = ev.Float64("relative", res.Relative)
	}
	ev.Msg("workload measured")
	return nil
}

func (b *Bench) newResult(name string, iters uint64, samples []float64) Result {
	mean, _, stddev := Statistics(samples)
	res := Result{
		Name:                  name,
		Unit:                  b.cfg.Unit,
		Epochs:                uint64(len(samples)),
		EpochIterations:       iters,
		Samples:               samples,
		Median:                Median(samples),
		Mean:                  mean,
		StdDev:                stddev,
		MedianAbsPercentError: MedianAbsolutePercentError(samples),
	}
	if res.Median > 0 {
		res.OpsPerSecond = 1e9 / res.Median
	}
	if !b.cfg.Relative {
		return res
	}
	if len(b.results) == 0 {
		res.Relative = 100
		return res
	}
	baseline := b.results[0]
	if res.Median > 0 {
		res.Relative = baseline.Median / res.Median * 100
	}
	cmp, err := CompareSamples(samples, baseline.Samples, []float64{b.cfg.Threshold()}, b.cfg.Precision)
	if err != nil {
		b.log.Debug().Err(err).Str("name", name).Msg("no confidence against baseline")
		return res
	}
	conf := cmp[0].Confidence
	res.Confidence = &conf
	return res
}

// epochTarget returns the minimum duration of a calibrated epoch in nanoseconds: MinEpochTime,
// but never less than 1000 times the precision of the timer.
func (b *Bench) epochTarget() int64 {
	target := b.cfg.MinEpochTime.Nanoseconds()
	if floor := 1000 * GetSampleTimePrecision(); floor > target {
		target = floor
	}
	return target
}

// calibrate doubles the number of iterations until one epoch takes at least epochTarget.
func (b *Bench) calibrate(op func()) uint64 {
	target := b.epochTarget()
	iters := uint64(1)
	for {
		t1 := SampleTime()
		for range iters {
			op()
		}
		t2 := SampleTime()
		if DiffTimeStamps(t1, t2) >= target {
			return iters
		}
		iters *= 2
	}
}

// Results returns the results of all workloads in the order they were run.
func (b *Bench) Results() []Result {
	out := make([]Result, len(b.results))
	copy(out, b.results)
	return out
}
