package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/curveart"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "curveart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2000, cfg.Canvas.Width)
	assert.Equal(t, 2000, cfg.Canvas.Height)
	assert.Equal(t, 1000, cfg.Curves.Count)
	assert.Equal(t, 5, cfg.Curves.ControlPoints)
	assert.Equal(t, 1000, cfg.Curves.Precision)
	assert.Equal(t, "bezier.png", cfg.Output.Path)
	assert.Equal(t, "#000064", cfg.Canvas.Background.HexString())
	assert.Equal(t, "#ff6464", cfg.Curves.Color.HexString())
}

func TestLoad_EmptyPathAndMissingFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
seed: 42
canvas:
  width: 640
  height: 480
  background: "#102030"
curves:
  count: 3
  stroke_width: 6
lines:
  enabled: false
output:
  path: " art.png "
logging:
  level: DEBUG
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 640, cfg.Canvas.Width)
	assert.Equal(t, 480, cfg.Canvas.Height)
	assert.Equal(t, "#102030", cfg.Canvas.Background.HexString())
	assert.Equal(t, 3, cfg.Curves.Count)
	assert.Equal(t, 6, cfg.Curves.StrokeWidth)
	assert.False(t, cfg.Lines.Enabled)
	assert.Equal(t, "art.png", cfg.Output.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Untouched fields keep their defaults.
	assert.Equal(t, 5, cfg.Curves.ControlPoints)
	assert.Equal(t, 1000, cfg.Curves.Precision)
}

func TestLoad_BadColor(t *testing.T) {
	path := writeFile(t, "canvas:\n  background: \"#zz\"\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, curveart.ErrInvalidInput)
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeFile(t, "canvas: [1, 2\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeFile(t, "curves:\n  precision: 0\n  stroke_width: -1\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "precision")
	assert.Contains(t, err.Error(), "stroke_width")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvOutput, "env.png")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "JSON")
	t.Setenv(EnvLogFile, "/tmp/curveart.log")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, "env.png", cfg.Output.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/curveart.log", cfg.Logging.File)
}

func TestEnvOverrides_BadSeed(t *testing.T) {
	t.Setenv(EnvSeed, "minus one")
	_, err := Load("")
	assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }},
		{"negative curves", func(c *Config) { c.Curves.Count = -1 }},
		{"no control points", func(c *Config) { c.Curves.ControlPoints = 0 }},
		{"fraction above one", func(c *Config) { c.Lines.Fraction = 1.5 }},
		{"empty output", func(c *Config) { c.Output.Path = "" }},
		{"negative preview", func(c *Config) { c.Output.PreviewSize = -3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Defaults()
	cfg.Seed = 99
	cfg.Lines.Color = HexColor("#01020304")
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), got.Seed)
	assert.Equal(t, "#01020304", got.Lines.Color.HexString())
	assert.Equal(t, cfg.Curves, got.Curves)
}

func TestHexColorPanics(t *testing.T) {
	assert.Panics(t, func() { HexColor("not a color") })
}
