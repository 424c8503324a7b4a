// Command rngbench measures and ranks the throughput of the random number generators of package rngbench.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/TomTonic/rngbench"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

type options struct {
	configPath string
	format     string
	outputs    []string
	warmup     uint64
	epochs     uint64
	iterations uint64
	relative   bool
	faster     float64
	only       []string
	list       bool
	jsonLog    bool
	verbose    bool
}

func parseFlags(args []string) (*options, *pflag.FlagSet, error) {
	o := &options{}
	fs := pflag.NewFlagSet("rngbench", pflag.ContinueOnError)
	fs.StringVarP(&o.configPath, "config", "c", "", "YAML configuration file")
	fs.StringVarP(&o.format, "format", "f", string(rngbench.FormatText), "format of the report on stdout (text, markdown, csv, json, html)")
	fs.StringArrayVarP(&o.outputs, "out", "o", nil, "additionally write a report as format=path, e.g. json=results.json (repeatable)")
	fs.Uint64Var(&o.warmup, "warmup", 0, "untimed calls before the first epoch")
	fs.Uint64Var(&o.epochs, "epochs", 0, "timed epochs per generator")
	fs.Uint64Var(&o.iterations, "iterations", 0, "calls per epoch, 0 to calibrate")
	fs.BoolVar(&o.relative, "relative", true, "compare all generators against the first one")
	fs.Float64Var(&o.faster, "faster", 0, "report the confidence that a generator is at least this many times faster than the baseline")
	fs.StringSliceVar(&o.only, "only", nil, "comma separated list of generators to run, in this order")
	fs.BoolVar(&o.list, "list", false, "list the available generators and exit")
	fs.BoolVar(&o.jsonLog, "json-log", false, "log as JSON instead of human readable text")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log debug messages")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return o, fs, nil
}

// loadConfig reads the config file, if any, and applies the flags that were set explicitly.
// The merged configuration is validated once, after all overrides.
func loadConfig(o *options, fs *pflag.FlagSet) (rngbench.Config, error) {
	cfg := rngbench.DefaultConfig()
	if o.configPath != "" {
		f, err := os.Open(o.configPath)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		if cfg, err = rngbench.LoadConfig(f); err != nil {
			return cfg, fmt.Errorf("%s: %w", o.configPath, err)
		}
	}
	if fs.Changed("warmup") {
		cfg.Warmup = o.warmup
	}
	if fs.Changed("epochs") {
		cfg.Epochs = o.epochs
	}
	if fs.Changed("iterations") {
		cfg.EpochIterations = o.iterations
	}
	if fs.Changed("relative") {
		cfg.Relative = o.relative
	}
	if fs.Changed("faster") {
		cfg.SpeedupFactor = o.faster
		cfg.SpeedupThreshold = 0
	}
	if fs.Changed("only") {
		cfg.Generators = o.only
	}
	return cfg, cfg.Validate()
}

type output struct {
	format rngbench.Format
	path   string
}

func parseOutputs(specs []string) ([]output, error) {
	var outs []output
	for _, spec := range specs {
		name, path, ok := strings.Cut(spec, "=")
		if !ok || path == "" {
			return nil, fmt.Errorf("invalid output %q, expected format=path", spec)
		}
		format, err := rngbench.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		outs = append(outs, output{format: format, path: path})
	}
	return outs, nil
}

func writeReport(out output, results []rngbench.Result) (err error) {
	f, err := os.Create(out.path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return rngbench.Render(f, out.format, results)
}

func run(ctx context.Context, args []string, stdout io.Writer, log zerolog.Logger) error {
	o, fs, err := parseFlags(args)
	if err != nil {
		return err
	}
	if o.jsonLog {
		log = newJSONLogger(os.Stderr)
	}
	if o.verbose {
		log = log.Level(zerolog.DebugLevel)
	}

	if o.list {
		for _, c := range rngbench.Cases() {
			fmt.Fprintln(stdout, c.Name)
		}
		return nil
	}

	cfg, err := loadConfig(o, fs)
	if err != nil {
		return err
	}
	format, err := rngbench.ParseFormat(o.format)
	if err != nil {
		return err
	}
	outs, err := parseOutputs(o.outputs)
	if err != nil {
		return err
	}

	b, err := rngbench.NewBench(cfg, rngbench.WithLogger(log))
	if err != nil {
		return err
	}
	bcfg := b.Config()
	log.Info().Str("title", bcfg.Title).Uint64("epochs", bcfg.Epochs).Bool("relative", bcfg.Relative).Float64("threshold", bcfg.Threshold()).Msg("starting benchmark")
	if err := rngbench.RunAll(ctx, b, cfg.Generators...); err != nil {
		return err
	}

	results := b.Results()
	if err := rngbench.Render(stdout, format, results); err != nil {
		return err
	}
	if format == rngbench.FormatText {
		fmt.Fprintln(stdout)
		if err := rngbench.RenderTemplate(stdout, rngbench.SummaryTemplate, results); err != nil {
			return err
		}
	}
	for _, out := range outs {
		if err := writeReport(out, results); err != nil {
			return fmt.Errorf("could not write %s report: %w", out.format, err)
		}
		log.Info().Str("format", string(out.format)).Str("path", out.path).Msg("report written")
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := newConsoleLogger(os.Stderr)
	if err := run(ctx, os.Args[1:], os.Stdout, log); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Error().Err(err).Msg("benchmark failed")
		stop()
		os.Exit(1)
	}
}
