// Package config loads hand layout settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/cardonline/curve"
	"github.com/cardonline/curve/hand"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel string   `yaml:"log_level"`
	Curve    Curve    `yaml:"curve"`
	Layout   Layout   `yaml:"layout"`
	Card     Card     `yaml:"card"`
	Hand     []string `yaml:"hand"`
}

type Curve struct {
	// Preset reshapes the curve between its anchors after the control points
	// have been read.
	Preset string `yaml:"preset"`
	// ControlPoints are start, control 1, control 2 and end, in that order.
	// Each is [x, y] or [x, y, z]. Missing points take their default
	// position.
	ControlPoints [][]float64 `yaml:"control_points"`
}

type Layout struct {
	Mode              string   `yaml:"mode"`
	Spacing           *float64 `yaml:"spacing"`
	Rotate            *bool    `yaml:"rotate"`
	RotationOffsetDeg float64  `yaml:"rotation_offset_deg"`
	Segments          int      `yaml:"segments"`
}

type Card struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Default returns the configuration used for an empty file.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads and validates the configuration file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads and validates a configuration. Unknown keys are errors.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Validate checks semantic constraints and reports all violations at once.
func (c Config) Validate() error {
	var errs []string

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, "log_level must be one of: debug, info, warn, error")
	}

	if c.Curve.Preset != "" {
		if _, err := curve.ParsePreset(c.Curve.Preset); err != nil {
			names := []string{}
			for _, p := range curve.Presets() {
				names = append(names, p.String())
			}
			errs = append(errs, "curve.preset must be one of: "+strings.Join(names, ", "))
		}
	}
	if len(c.Curve.ControlPoints) > 4 {
		errs = append(errs, "curve.control_points holds at most 4 points")
	}
	for i, p := range c.Curve.ControlPoints {
		if len(p) != 2 && len(p) != 3 {
			errs = append(errs, fmt.Sprintf("curve.control_points[%d] must be [x, y] or [x, y, z]", i))
		} else if !finite(p...) {
			errs = append(errs, fmt.Sprintf("curve.control_points[%d] must be finite", i))
		}
	}

	if _, err := curve.ParseSpacingMode(c.Layout.Mode); err != nil {
		errs = append(errs, "layout.mode must be one of: uniform, centered, arclength")
	}
	if s := c.Layout.Spacing; s != nil && (!finite(*s) || *s <= 0) {
		errs = append(errs, "layout.spacing must be > 0")
	}
	if !finite(c.Layout.RotationOffsetDeg) {
		errs = append(errs, "layout.rotation_offset_deg must be finite")
	}
	if c.Layout.Segments < 0 {
		errs = append(errs, "layout.segments must be >= 0 (0 means default)")
	}

	if c.Card.Width < 0 || !finite(c.Card.Width) {
		errs = append(errs, "card.width must be >= 0 (0 means default)")
	}
	if c.Card.Height < 0 || !finite(c.Card.Height) {
		errs = append(errs, "card.height must be >= 0 (0 means default)")
	}

	for i, name := range c.Hand {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Sprintf("hand[%d] must not be empty", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Handles returns the configured control points, with missing ones set to
// their defaults.
func (c Config) Handles() curve.Handles {
	var h curve.Handles
	slots := []**curve.Point{&h.Start, &h.Control1, &h.Control2, &h.End}
	for i, p := range c.Curve.ControlPoints {
		if i >= len(slots) || len(p) < 2 {
			break
		}
		pt := curve.Pt(p[0], p[1], 0)
		if len(p) > 2 {
			pt.Z = p[2]
		}
		*slots[i] = &pt
	}
	h.EnsureDefaults()
	return h
}

// CubicBez returns the configured curve, reshaped by the preset if one is
// set.
func (c Config) CubicBez() curve.CubicBez {
	h := c.Handles()
	if p, err := curve.ParsePreset(c.Curve.Preset); c.Curve.Preset != "" && err == nil {
		h.FitPreset(p)
	}
	bez, _ := h.Cubic()
	return bez
}

// LayoutConfig returns the layout for count cards.
func (c Config) LayoutConfig(count int) curve.LayoutConfig {
	mode, _ := curve.ParseSpacingMode(c.Layout.Mode)
	cfg := curve.LayoutConfig{
		Count:          count,
		Mode:           mode,
		Spacing:        curve.DefaultSpacing,
		Rotate:         true,
		RotationOffset: c.Layout.RotationOffsetDeg * math.Pi / 180,
		Segments:       c.Layout.Segments,
	}
	if c.Layout.Spacing != nil {
		cfg.Spacing = *c.Layout.Spacing
	}
	if c.Layout.Rotate != nil {
		cfg.Rotate = *c.Layout.Rotate
	}
	return cfg
}

// HandOptions returns the options that set up a hand as configured.
func (c Config) HandOptions() []hand.Option {
	return []hand.Option{
		hand.WithCurve(c.CubicBez()),
		hand.WithLayout(c.LayoutConfig(0)),
		hand.WithCardSize(c.Card.Width, c.Card.Height),
	}
}

// Logger builds a JSON logger writing to stderr at the configured level.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return zc.Build()
}
