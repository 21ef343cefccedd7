// SPDX-License-Identifier: MIT

package sim

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/smoglab/airquality"
	"github.com/katalvlaran/smoglab/field"
)

// Defaults for a classroom-sized run.
const (
	DefaultRows        = 50
	DefaultCols        = 50
	DefaultSteps       = 100
	DefaultInjectEvery = 10
	DefaultRandomCount = 1
	DefaultFPS         = 10
	DefaultScale       = 8

	maxConfigSize = 1 << 20
)

// SourceConfig is one fixed pollution source placed when the run starts.
// Intensity 0 means Config.DefaultIntensity.
type SourceConfig struct {
	X         int     `yaml:"x"`
	Y         int     `yaml:"y"`
	Intensity float64 `yaml:"intensity"`
}

// OutputConfig names the artifacts a headless run writes. Empty paths are
// skipped.
type OutputConfig struct {
	PNG   string `yaml:"png"`   // final frame, gonum/plot heatmap
	HTML  string `yaml:"html"`  // final frame, go-echarts heatmap
	Video string `yaml:"video"` // every frame, MJPEG AVI
	Text  string `yaml:"text"`  // final frame, ASCII
	FPS   int    `yaml:"fps"`
	Scale int    `yaml:"scale"` // pixels per cell in raster outputs
}

// Config is the full description of a run.
type Config struct {
	Rows             int               `yaml:"rows"`
	Cols             int               `yaml:"cols"`
	Rate             float64           `yaml:"rate"`
	DefaultIntensity float64           `yaml:"default_intensity"`
	Steps            int               `yaml:"steps"`
	Interval         string            `yaml:"interval"`     // wall-clock delay between steps, e.g. "100ms"
	InjectEvery      int               `yaml:"inject_every"` // inject from samplers every N steps; 0 disables
	RandomCount      int               `yaml:"random_count"` // random emissions per injection; 0 disables
	Seed             int64             `yaml:"seed"`
	CenterSource     bool              `yaml:"center_source"` // place one default source in the middle at start
	Sources          []SourceConfig    `yaml:"sources"`
	AirQuality       airquality.Config `yaml:"air_quality"`
	Output           OutputConfig      `yaml:"output"`
}

// DefaultConfig returns the documented defaults: a 50×50 grid, rate
// field.DefaultRate, one source of field.DefaultIntensity in the middle, and
// one random source every 10 steps for 100 steps.
func DefaultConfig() Config {
	return Config{
		Rows:             DefaultRows,
		Cols:             DefaultCols,
		Rate:             field.DefaultRate,
		DefaultIntensity: field.DefaultIntensity,
		Steps:            DefaultSteps,
		InjectEvery:      DefaultInjectEvery,
		RandomCount:      DefaultRandomCount,
		CenterSource:     true,
		Output:           OutputConfig{FPS: DefaultFPS, Scale: DefaultScale},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig, so omitted keys keep
// their defaults. Unknown keys are rejected. The result is validated.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return cfg, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}
	info, err := os.Stat(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigSize {
		return cfg, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks every field, failing on the first problem.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("sim: rows=%d cols=%d: %w", c.Rows, c.Cols, field.ErrInvalidDimensions)
	}
	if err := field.ValidateRate(c.Rate); err != nil {
		return fmt.Errorf("sim: rate=%g: %w", c.Rate, err)
	}
	if err := field.ValidateIntensity(c.DefaultIntensity); err != nil {
		return fmt.Errorf("sim: default_intensity: %w", err)
	}
	if c.Steps < 0 {
		return fmt.Errorf("sim: steps=%d: %w", c.Steps, ErrInvalidConfig)
	}
	if c.InjectEvery < 0 || c.RandomCount < 0 {
		return fmt.Errorf("sim: inject_every=%d random_count=%d: %w", c.InjectEvery, c.RandomCount, ErrInvalidConfig)
	}
	if _, err := c.IntervalDuration(); err != nil {
		return err
	}
	for i, s := range c.Sources {
		if s.X < 0 || s.X >= c.Rows || s.Y < 0 || s.Y >= c.Cols {
			return fmt.Errorf("sim: sources[%d] (%d,%d): %w", i, s.X, s.Y, field.ErrOutOfBounds)
		}
		if math.IsNaN(s.Intensity) || math.IsInf(s.Intensity, 0) {
			return fmt.Errorf("sim: sources[%d]: %w", i, field.ErrNonFinite)
		}
	}
	if err := c.AirQuality.Validate(); err != nil {
		return fmt.Errorf("sim: air_quality: %w", err)
	}
	if c.Output.Video != "" && c.Output.FPS <= 0 {
		return fmt.Errorf("sim: output.fps=%d: %w", c.Output.FPS, ErrInvalidConfig)
	}
	if c.Output.Scale < 0 {
		return fmt.Errorf("sim: output.scale=%d: %w", c.Output.Scale, ErrInvalidConfig)
	}

	return nil
}

// IntervalDuration parses Interval; empty means zero (run flat out).
func (c Config) IntervalDuration() (time.Duration, error) {
	if c.Interval == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Interval)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("sim: interval %q: %w", c.Interval, ErrInvalidConfig)
	}

	return d, nil
}

// initialSources lists the fixed sources placed at start, center first.
func (c Config) initialSources() []SourceConfig {
	out := make([]SourceConfig, 0, len(c.Sources)+1)
	if c.CenterSource {
		out = append(out, SourceConfig{X: c.Rows / 2, Y: c.Cols / 2})
	}
	return append(out, c.Sources...)
}

// sourceIntensity resolves the zero-means-default rule for fixed sources.
func (c Config) sourceIntensity(s SourceConfig) float64 {
	if s.Intensity == 0 {
		return c.DefaultIntensity
	}
	return s.Intensity
}
