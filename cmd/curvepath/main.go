// Command curvepath samples a motion path and prints positions and tangents.
//
// Usage:
//
//	curvepath [-config file] [-points file] [-scale f] [-kind bezier|cubic]
//	          [-samples n] [-arclen] [-json] [-watch]
//
// Flags given on the command line override the config file.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"os/signal"

	"github.com/rtrproject/curve"
	"github.com/rtrproject/curve/config"
	"github.com/rtrproject/curve/library"
)

type options struct {
	configPath string
	points     string
	scale      float64
	kind       string
	samples    int
	arclen     bool
	json       bool
	watch      bool

	// names of the flags that were set
	set map[string]bool
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", "", "Config file (.toml, .yaml or .yml).")
	flag.StringVar(&o.points, "points", "", "Point file, one \"x, y, z\" per line.")
	flag.Float64Var(&o.scale, "scale", 0, "Factor applied to all coordinates.")
	flag.StringVar(&o.kind, "kind", "", "Curve kind: bezier or cubic.")
	flag.IntVar(&o.samples, "samples", 0, "Number of pieces to sample the curve in.")
	flag.BoolVar(&o.arclen, "arclen", false, "Space samples evenly by arc length.")
	flag.BoolVar(&o.json, "json", false, "Print JSON lines instead of text.")
	flag.BoolVar(&o.watch, "watch", false, "Print again whenever the point file changes.")
	flag.Parse()

	o.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, o, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig(o options) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		cfg, err = config.Read(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
	}
	if o.set["points"] {
		cfg.Points = o.points
	}
	if o.set["scale"] {
		cfg.Scale = o.scale
	}
	if o.set["kind"] {
		cfg.Kind = o.kind
	}
	if o.set["samples"] {
		cfg.Samples = o.samples
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(ctx context.Context, o options, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	lib := library.New(
		library.WithScale(cfg.Scale),
		library.WithBuilder(cfg.Build),
		library.WithLogger(logger),
	)
	e, err := lib.Get(cfg.Points)
	if err != nil {
		return err
	}
	logger.Info("loaded path", "file", e.Path, "points", len(e.Points), "kind", cfg.Kind,
		"length", curve.Arclen(e.Curve, curve.DefaultAccuracy))

	p := printer{w: stdout, json: o.json}
	if err := p.print(samples(e.Curve, cfg.Samples, o.arclen)); err != nil {
		return err
	}
	if !o.watch {
		return nil
	}

	var printErr error
	err = lib.Watch(ctx, func(e *library.Entry) {
		if printErr != nil {
			return
		}
		printErr = p.print(samples(e.Curve, cfg.Samples, o.arclen))
	})
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return errors.Join(err, printErr)
}

func samples(c curve.Interpolation, n int, byArclen bool) iter.Seq[curve.Sample] {
	if byArclen {
		return curve.SamplesByArclen(c, n, curve.DefaultAccuracy)
	}
	return curve.Samples(c, n)
}

type printer struct {
	w    io.Writer
	json bool
}

type jsonSample struct {
	T       float64    `json:"t"`
	Point   [3]float64 `json:"point"`
	Tangent [3]float64 `json:"tangent"`
}

func (p printer) print(seq iter.Seq[curve.Sample]) error {
	enc := json.NewEncoder(p.w)
	for s := range seq {
		var err error
		if p.json {
			err = enc.Encode(jsonSample{
				T:       s.T,
				Point:   [3]float64{s.Point.X, s.Point.Y, s.Point.Z},
				Tangent: [3]float64{s.Tangent.X, s.Tangent.Y, s.Tangent.Z},
			})
		} else {
			_, err = fmt.Fprintf(p.w, "%.6f\t%.6f %.6f %.6f\t%.6f %.6f %.6f\n",
				s.T, s.Point.X, s.Point.Y, s.Point.Z, s.Tangent.X, s.Tangent.Y, s.Tangent.Z)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
