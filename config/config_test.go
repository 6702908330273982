package config

import (
	"math"
	"strings"
	"testing"

	"github.com/cardonline/curve"
	"github.com/cardonline/curve/hand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad(t *testing.T) {
	cfg, err := Load("testdata/hand.yaml")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"Fireball", "Frost Nova", "Arcane Shield"}, cfg.Hand)

	t.Run("curve", func(t *testing.T) {
		c := cfg.CubicBez()
		assert.Equal(t, curve.Pt(-3, 0, 0), c.P0)
		assert.Equal(t, curve.Pt(3, 0, 0.5), c.P3)
		assert.InDelta(t, -3, c.P1.X, 1e-12)
		assert.InDelta(t, 3.75, c.P1.Y, 1e-12)
		assert.InDelta(t, 3, c.P2.X, 1e-12)
		assert.InDelta(t, 3.75, c.P2.Y, 1e-12)
		assert.Equal(t, 0.5, c.P2.Z)
	})

	t.Run("layout", func(t *testing.T) {
		lc := cfg.LayoutConfig(3)
		assert.Equal(t, 3, lc.Count)
		assert.Equal(t, curve.CenteredWithSpacing, lc.Mode)
		assert.Equal(t, 0.15, lc.Spacing)
		assert.True(t, lc.Rotate)
		assert.InDelta(t, math.Pi/2, lc.RotationOffset, 1e-12)
	})

	t.Run("hand", func(t *testing.T) {
		h := hand.New(cfg.HandOptions()...)
		w, hh := h.CardSize()
		assert.Equal(t, 0.6, w)
		assert.Equal(t, 0.9, hh)
		assert.Equal(t, cfg.CubicBez(), h.Curve())
		assert.Equal(t, curve.CenteredWithSpacing, h.LayoutConfig().Mode)
	})

	t.Run("logger", func(t *testing.T) {
		log, err := cfg.Logger()
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	require.Error(t, err)
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	assert.Equal(t, curve.PresetDefault.Template(), cfg.CubicBez())

	lc := cfg.LayoutConfig(5)
	assert.Equal(t, curve.Uniform, lc.Mode)
	assert.Equal(t, curve.DefaultSpacing, lc.Spacing)
	assert.True(t, lc.Rotate)
	assert.Zero(t, lc.RotationOffset)

	log, err := cfg.Logger()
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestPartialControlPoints(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
curve:
  control_points:
    - [-4, 1]
    - [-2, 3, 1]
layout:
  rotate: false
`))
	require.NoError(t, err)

	h := cfg.Handles()
	c, ok := h.Cubic()
	require.True(t, ok)
	assert.Equal(t, curve.CubicBez{
		P0: curve.Pt(-4, 1, 0),
		P1: curve.Pt(-2, 3, 1),
		P2: curve.Pt(1, 2, 0),
		P3: curve.Pt(2, 0, 0),
	}, c)
	assert.False(t, cfg.LayoutConfig(2).Rotate)
}

func TestValidate(t *testing.T) {
	_, err := Parse(strings.NewReader(`
log_level: loud
curve:
  preset: spiral
  control_points: [[1], [0, 0], [0, 0], [0, 0], [0, 0]]
layout:
  mode: zigzag
  spacing: -1
  segments: -5
card:
  width: -1
hand: ["Fireball", " "]
`))
	require.Error(t, err)
	for _, want := range []string{
		"log_level",
		"curve.preset",
		"curve.control_points holds at most 4",
		"curve.control_points[0]",
		"layout.mode",
		"layout.spacing",
		"layout.segments",
		"card.width",
		"hand[1]",
	} {
		assert.Contains(t, err.Error(), want)
	}
	assert.NotContains(t, err.Error(), "card.height")
	assert.NotContains(t, err.Error(), "hand[0]")
}

func TestUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("layuot:\n  mode: uniform\n"))
	require.Error(t, err)
}
