// SPDX-License-Identifier: MIT

// Package config loads geoentropy job files: a raster, the metrics to compute
// over it, and where to write results. A job file is YAML overlaid on the
// embedded defaults.yaml; every metric entry is overlaid on metric_defaults.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"math"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geoentropy/grid"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Metric names accepted in a job file.
const (
	MetricShannon   = "shannon"
	MetricShannonZ  = "shannon_z"
	MetricBatty     = "batty"
	MetricKarlstrom = "karlstrom"
	MetricONeill    = "oneill"
	MetricLeibovici = "leibovici"
)

// MetricNames lists every accepted metric name.
var MetricNames = []string{
	MetricShannon, MetricShannonZ, MetricBatty,
	MetricKarlstrom, MetricONeill, MetricLeibovici,
}

// Karlström neighbourhood methods.
const (
	MethodNumber   = "number"
	MethodDistance = "distance"
)

// Config is a fully resolved job.
type Config struct {
	Grid           GridConfig     `yaml:"grid"`
	MetricDefaults MetricConfig   `yaml:"metric_defaults"`
	Metrics        []MetricConfig `yaml:"-"`
	Output         OutputConfig   `yaml:"output"`
	Log            LogConfig      `yaml:"log"`
}

// GridConfig describes the raster.
type GridConfig struct {
	CellSize []float64    `yaml:"cell_size"`
	Window   []float64    `yaml:"window"`
	Values   [][]*float64 `yaml:"values"` // nil (~) = missing
}

// MetricConfig is one metric run. Fields a metric does not use are ignored.
type MetricConfig struct {
	Name             string      `yaml:"name"`
	Category         *float64    `yaml:"category,omitempty"`
	Partitions       int         `yaml:"partitions"`
	Centers          [][]float64 `yaml:"centers,omitempty"`
	Seed             int64       `yaml:"seed"`
	Rescale          bool        `yaml:"rescale"`
	Method           string      `yaml:"method"`
	Neighbors        int         `yaml:"neighbors"`
	Radius           float64     `yaml:"radius"`
	CriticalDistance float64     `yaml:"critical_distance"`
	SkipMissing      bool        `yaml:"skip_missing"`
}

// OutputConfig controls CSV export.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	Assignments bool   `yaml:"assignments"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// fileConfig is the on-disk shape: metrics stay raw until metric_defaults is known.
type fileConfig struct {
	Config  `yaml:",inline"`
	Metrics []yaml.Node `yaml:"metrics"`
}

// Load reads the embedded defaults, overlays the job file at path (if any),
// resolves every metric against metric_defaults and validates the result.
func Load(path string) (*Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(defaultsYAML, &fc); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg := fc.Config
	cfg.Metrics = make([]MetricConfig, 0, len(fc.Metrics))
	for i := range fc.Metrics {
		m := cfg.MetricDefaults
		m.Centers = nil
		m.Category = nil
		if err := fc.Metrics[i].Decode(&m); err != nil {
			return nil, fmt.Errorf("parsing metric %d: %w", i, err)
		}
		cfg.Metrics = append(cfg.Metrics, m)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks names and geometry. Numeric metric parameters are left to
// the entropy package, which reports them with its own sentinels.
func (c *Config) Validate() error {
	if n := len(c.Grid.CellSize); n > 2 {
		return fmt.Errorf("%w: cell_size has %d values", ErrBadGeometry, n)
	}
	if n := len(c.Grid.Window); n != 0 && n != 4 {
		return fmt.Errorf("%w: window has %d values", ErrBadGeometry, n)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	for i, m := range c.Metrics {
		if err := m.validate(); err != nil {
			return fmt.Errorf("metric %d (%s): %w", i, m.Name, err)
		}
	}
	return nil
}

func (m MetricConfig) validate() error {
	if !slices.Contains(MetricNames, m.Name) {
		return ErrUnknownMetric
	}
	if m.NeedsCategory() && m.Category == nil {
		return ErrMissingCategory
	}
	if m.Name == MetricKarlstrom && m.Method != MethodNumber && m.Method != MethodDistance {
		return ErrBadMethod
	}
	for _, p := range m.Centers {
		if len(p) != 2 {
			return fmt.Errorf("%w: center %v", ErrBadGeometry, p)
		}
	}
	return nil
}

// NeedsCategory reports whether the metric dichotomizes on a category.
func (m MetricConfig) NeedsCategory() bool {
	return m.Name == MetricBatty || m.Name == MetricKarlstrom
}

// Build converts the grid section into a float raster; nil values become NaN.
func (g GridConfig) Build() (*grid.Grid[float64], error) {
	values := make([][]float64, len(g.Values))
	for r, row := range g.Values {
		values[r] = make([]float64, len(row))
		for c, v := range row {
			if v == nil {
				values[r][c] = math.NaN()
				continue
			}
			values[r][c] = *v
		}
	}

	var opts []grid.Option
	switch len(g.CellSize) {
	case 1:
		opts = append(opts, grid.WithCellSize(g.CellSize[0]))
	case 2:
		opts = append(opts, grid.WithCellSizeXY(g.CellSize[0], g.CellSize[1]))
	}
	if len(g.Window) == 4 {
		opts = append(opts, grid.WithWindow(g.Window[0], g.Window[1], g.Window[2], g.Window[3]))
	}
	return grid.FromFloat64(values, opts...)
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadLogLevel, s)
}

// WriteYAML saves the resolved job, metrics included, to path.
func (c *Config) WriteYAML(path string) error {
	out := struct {
		Config  `yaml:",inline"`
		Metrics []MetricConfig `yaml:"metrics"`
	}{Config: *c, Metrics: c.Metrics}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
