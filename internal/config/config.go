// Package config provides YAML-based configuration loading for the solver
// command line tool.
package config

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
)

// Config contains all configuration for skewcube.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Output  OutputConfig  `yaml:"output"`
	Storage StorageConfig `yaml:"storage"`
	Export  ExportConfig  `yaml:"export"`
}

// LogConfig defines logger parameters.
type LogConfig struct {
	Level      string `yaml:"level"`
	Timestamps bool   `yaml:"timestamps"`
}

// OutputConfig defines how grids are printed.
type OutputConfig struct {
	Color string   `yaml:"color"` // auto, always, never
	Grids []string `yaml:"grids"` // subset of direction, position, occupancy
}

// StorageConfig defines run persistence.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// ExportConfig defines where exported files go by default.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Grid names.
const (
	GridDirection = "direction"
	GridPosition  = "position"
	GridOccupancy = "occupancy"
)

var (
	colorModes = []string{ColorAuto, ColorAlways, ColorNever}
	gridNames  = []string{GridDirection, GridPosition, GridOccupancy}
)

// Validate checks that every enumerated field holds a known value.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if !slices.Contains(colorModes, c.Output.Color) {
		return fmt.Errorf("config: output.color %q must be one of %v", c.Output.Color, colorModes)
	}
	for _, g := range c.Output.Grids {
		if !slices.Contains(gridNames, g) {
			return fmt.Errorf("config: output.grids: unknown grid %q", g)
		}
	}
	if c.Storage.Enabled && c.Storage.Path == "" {
		return fmt.Errorf("config: storage.path is required when storage is enabled")
	}
	return nil
}

// ShowGrid reports whether the named grid should be printed.
func (c Config) ShowGrid(name string) bool {
	return slices.Contains(c.Output.Grids, name)
}

// Logger builds a logger writing to w from the log section.
// Unknown levels fall back to info; Validate reports them.
func (c Config) Logger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: c.Log.Timestamps,
		Prefix:          "skewcube",
	})
}
