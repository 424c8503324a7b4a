package rngbench

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Config controls how a Bench measures its workloads.
type Config struct {
	// Title and Unit are only used for reporting.
	Title string `yaml:"title"`
	Unit  string `yaml:"unit"`

	// Warmup is the number of untimed calls before the first epoch.
	Warmup uint64 `yaml:"warmup"`
	// Epochs is the number of timed samples per workload.
	Epochs uint64 `yaml:"epochs"`
	// EpochIterations is the number of calls per epoch. Zero lets the harness calibrate it
	// so that each epoch takes at least MinEpochTime.
	EpochIterations uint64        `yaml:"epoch_iterations"`
	MinEpochTime    time.Duration `yaml:"min_epoch_time"`

	// Relative enables comparison against the first workload run on the Bench.
	Relative bool `yaml:"relative"`
	// SpeedupThreshold is the relative speedup over the baseline whose confidence is reported.
	SpeedupThreshold float64 `yaml:"speedup_threshold"`
	// SpeedupFactor states the same threshold as a "times faster" factor, e.g. 1.25. If set it
	// takes the place of SpeedupThreshold.
	SpeedupFactor float64 `yaml:"speedup_factor"`
	// Precision is the number of bootstrap repetitions of the comparison.
	Precision uint64 `yaml:"precision"`

	// Generators restricts a run to the named generators. Empty means all.
	Generators []string `yaml:"generators"`
}

// DefaultConfig returns the configuration used if nothing else is specified.
func DefaultConfig() Config {
	return Config{
		Title:        "Random Number Generators",
		Unit:         "uint64_t",
		Warmup:       100,
		Epochs:       MinimumDataPoints,
		MinEpochTime: time.Millisecond,
		Relative:     true,
		Precision:    10_000,
	}
}

// LoadConfig reads a YAML configuration from r. Fields not present in the document keep their
// default values, unknown fields are rejected. The result is not validated, callers may still
// override fields before calling Validate.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("could not parse config: %w", err)
	}
	return cfg, nil
}

// Threshold returns the relative speedup whose confidence is reported, derived from
// SpeedupFactor if that is set.
func (cfg Config) Threshold() float64 {
	if cfg.SpeedupFactor != 0 {
		return F2T(cfg.SpeedupFactor)
	}
	return cfg.SpeedupThreshold
}

// Validate reports all problems of cfg at once.
func (cfg Config) Validate() error {
	var result *multierror.Error
	if cfg.Epochs == 0 {
		result = multierror.Append(result, errors.New("epochs must be at least 1"))
	}
	if cfg.EpochIterations == 0 && cfg.MinEpochTime <= 0 {
		result = multierror.Append(result, errors.New("min_epoch_time must be positive if epoch_iterations is 0"))
	}
	if cfg.MinEpochTime < 0 {
		result = multierror.Append(result, fmt.Errorf("min_epoch_time must not be negative, got %v", cfg.MinEpochTime))
	}
	if cfg.SpeedupThreshold < 0 || cfg.SpeedupThreshold >= 1 {
		result = multierror.Append(result, fmt.Errorf("speedup_threshold must be in [0,1), got %v", cfg.SpeedupThreshold))
	}
	if cfg.SpeedupFactor != 0 {
		if !(cfg.SpeedupFactor >= 1) || math.IsInf(cfg.SpeedupFactor, 1) {
			result = multierror.Append(result, fmt.Errorf("speedup_factor must be at least 1, got %v", cfg.SpeedupFactor))
		}
		if cfg.SpeedupThreshold != 0 {
			result = multierror.Append(result, errors.New("speedup_factor and speedup_threshold are mutually exclusive"))
		}
	}
	if cfg.Relative && cfg.Precision == 0 {
		result = multierror.Append(result, errors.New("precision must be at least 1 in relative mode"))
	}
	for _, name := range cfg.Generators {
		if _, ok := lookupCase(name); !ok {
			result = multierror.Append(result, fmt.Errorf("%w: %q", ErrUnknownGenerator, name))
		}
	}
	return result.ErrorOrNil()
}
