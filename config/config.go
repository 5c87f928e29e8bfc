// Package config loads the settings for playing back a motion path.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rtrproject/curve"
	"github.com/rtrproject/curve/animate"
	"github.com/rtrproject/curve/pointfile"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoPoints      = errors.New("no point file configured")
	ErrUnknownFormat = errors.New("unknown config format")
)

// Curve kinds.
const (
	// KindBezier makes one Bézier curve of all points.
	KindBezier = "bezier"
	// KindCubic joins the points into a path of cubic Béziers.
	KindCubic = "cubic"
)

// Config describes a motion path and how to play it back.
type Config struct {
	// Points is the point file. Relative paths are resolved against the
	// directory of the config file.
	Points string `toml:"points" yaml:"points"`
	// Scale multiplies every coordinate read from Points.
	Scale float64 `toml:"scale" yaml:"scale"`
	// Kind is either KindBezier or KindCubic.
	Kind string `toml:"kind" yaml:"kind"`
	// Duration is the time it takes to traverse the path once.
	Duration Duration `toml:"duration" yaml:"duration"`
	// Mode is what happens at the end of the path.
	Mode animate.Mode `toml:"mode" yaml:"mode"`
	// ConstantSpeed moves along the path at constant speed instead of
	// constant parameter rate.
	ConstantSpeed bool `toml:"constant_speed" yaml:"constant_speed"`
	// Samples is the number of pieces the path is sampled in.
	Samples int `toml:"samples" yaml:"samples"`
	// Forward is the model space axis that faces along the path.
	Forward [3]float64 `toml:"forward" yaml:"forward"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the default configuration. It has no point file.
func Default() Config {
	return Config{
		Scale:    pointfile.DefaultScale,
		Kind:     KindBezier,
		Duration: Duration(5 * time.Second),
		Mode:     animate.Loop,
		Samples:  16,
		Forward:  [3]float64{0, 0, 1},
		LogLevel: "info",
	}
}

// Load reads the file at path with [Read] and validates the result.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Read reads the file at path on top of [Default], without validating it.
// The format is chosen by extension: .toml, or .yaml and .yml. A relative
// Points path is resolved against the directory of the file.
func Read(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := decode(path, data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Points != "" && !filepath.IsAbs(cfg.Points) {
		cfg.Points = filepath.Join(filepath.Dir(path), cfg.Points)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err := dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			// empty document
			return nil
		}
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Save writes cfg to path in the format chosen by its extension.
func Save(path string, cfg Config) error {
	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		data, err = toml.Marshal(cfg)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports the first problem with cfg.
func (cfg Config) Validate() error {
	if cfg.Points == "" {
		return ErrNoPoints
	}
	if !(cfg.Scale > 0) {
		return fmt.Errorf("scale must be positive, got %v", cfg.Scale)
	}
	switch cfg.Kind {
	case KindBezier, KindCubic:
	default:
		return fmt.Errorf("unknown curve kind %q", cfg.Kind)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %s", cfg.Duration)
	}
	if cfg.Mode < animate.Once || cfg.Mode > animate.PingPong {
		return fmt.Errorf("unknown mode %s", cfg.Mode)
	}
	if cfg.Samples < 1 {
		return fmt.Errorf("samples must be at least 1, got %d", cfg.Samples)
	}
	if cfg.ForwardVec().Hypot2() == 0 {
		return errors.New("forward axis must not be zero")
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (cfg Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

// ForwardVec returns Forward as a vector.
func (cfg Config) ForwardVec() curve.Vec3 {
	return curve.Vec(cfg.Forward[0], cfg.Forward[1], cfg.Forward[2])
}

// Build constructs the curve described by Kind from points.
func (cfg Config) Build(points []curve.Point) curve.Interpolation {
	if cfg.Kind == KindCubic {
		return curve.CubicPath(points...)
	}
	return curve.NewBezierCurve(points...)
}

// Follower returns a follower for c using the playback settings.
func (cfg Config) Follower(c curve.Interpolation) *animate.Follower {
	opts := []animate.Option{
		animate.WithMode(cfg.Mode),
		animate.WithForward(cfg.ForwardVec().Vec3f()),
	}
	if cfg.ConstantSpeed {
		opts = append(opts, animate.WithConstantSpeed(curve.DefaultAccuracy))
	}
	return animate.NewFollower(c, time.Duration(cfg.Duration), opts...)
}
