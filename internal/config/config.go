// Package config holds the user-editable configuration of the curveart
// command. The configuration is a YAML file; environment variables are
// read-only overrides applied on top of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/curveart"
)

// CurrentVersion is the config_version written by Save.
const CurrentVersion = 1

// Env var names used as overrides.
const (
	EnvSeed   = "CURVEART_SEED"
	EnvOutput = "CURVEART_OUTPUT"

	EnvLogLevel  = "CURVEART_LOG_LEVEL"
	EnvLogFormat = "CURVEART_LOG_FORMAT"
	EnvLogFile   = "CURVEART_LOG_FILE"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Color is a curveart.RGBA stored in YAML as a hex string.
type Color struct {
	curveart.RGBA
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	rgba, err := curveart.ParseHex(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	c.RGBA = rgba
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return c.HexString(), nil
}

// HexColor parses s and panics on failure. It is meant for defaults.
func HexColor(s string) Color {
	c, err := curveart.ParseHex(s)
	if err != nil {
		panic(err)
	}
	return Color{RGBA: c}
}

// CanvasConfig sets the image size and background.
type CanvasConfig struct {
	Width      int   `yaml:"width"`
	Height     int   `yaml:"height"`
	Background Color `yaml:"background"`
}

// CurveConfig controls how many curves are drawn and how they are sampled
// and stroked.
type CurveConfig struct {
	Count         int   `yaml:"count"`
	ControlPoints int   `yaml:"control_points"`
	Precision     int   `yaml:"precision"`
	StrokeWidth   int   `yaml:"stroke_width"`
	Color         Color `yaml:"color"`
}

// LineConfig controls the thin connecting lines drawn through a random
// subset of every curve's points.
type LineConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Fraction float64 `yaml:"fraction"` // share of the sampled points to connect
	Color    Color   `yaml:"color"`
}

// OutputConfig names the files a run writes.
type OutputConfig struct {
	Path        string `yaml:"path"`
	PreviewPath string `yaml:"preview_path"` // empty disables the preview
	PreviewSize int    `yaml:"preview_size"`
}

// LoggingConfig selects the log level, console format and optional log file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Config is the complete configuration of one run.
type Config struct {
	ConfigVersion int           `yaml:"config_version"`
	Seed          uint64        `yaml:"seed"` // 0 seeds from the clock
	Canvas        CanvasConfig  `yaml:"canvas"`
	Curves        CurveConfig   `yaml:"curves"`
	Lines         LineConfig    `yaml:"lines"`
	Output        OutputConfig  `yaml:"output"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the configuration used when no file is given.
func Defaults() Config {
	return Config{
		ConfigVersion: CurrentVersion,
		Canvas:        CanvasConfig{Width: 2000, Height: 2000, Background: HexColor("#000064")},
		Curves: CurveConfig{
			Count:         1000,
			ControlPoints: 5,
			Precision:     1000,
			StrokeWidth:   4,
			Color:         HexColor("#ff6464"),
		},
		Lines:   LineConfig{Enabled: true, Fraction: 0.02, Color: HexColor("#ffc8c880")},
		Output:  OutputConfig{Path: "bezier.png", PreviewSize: 512},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads the YAML file at path on top of Defaults and applies
// environment overrides. An empty path or a missing file yields the
// defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	normalize(&cfg)
	return cfg, cfg.Validate()
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644) //nolint:gosec // config is not secret
}

// Validate checks that the configuration can drive a render.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
		}
	}
	check(c.Canvas.Width > 0 && c.Canvas.Height > 0,
		"canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	check(c.Curves.Count >= 0, "curves.count %d must not be negative", c.Curves.Count)
	check(c.Curves.ControlPoints >= 1, "curves.control_points %d must be at least 1", c.Curves.ControlPoints)
	check(c.Curves.Precision >= 1, "curves.precision %d must be at least 1", c.Curves.Precision)
	check(c.Curves.StrokeWidth >= 1, "curves.stroke_width %d must be at least 1", c.Curves.StrokeWidth)
	check(c.Lines.Fraction >= 0 && c.Lines.Fraction <= 1, "lines.fraction %v must be in [0, 1]", c.Lines.Fraction)
	check(strings.TrimSpace(c.Output.Path) != "", "output.path must not be empty")
	check(c.Output.PreviewSize >= 0, "output.preview_size %d must not be negative", c.Output.PreviewSize)
	return errors.Join(errs...)
}

func normalize(cfg *Config) {
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Logging.File = strings.TrimSpace(cfg.Logging.File)
	cfg.Output.Path = strings.TrimSpace(cfg.Output.Path)
	cfg.Output.PreviewPath = strings.TrimSpace(cfg.Output.PreviewPath)
}

func applyEnvOverrides(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvSeed)); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSeed, v, err)
		}
		cfg.Seed = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		cfg.Output.Path = v
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
	return nil
}
