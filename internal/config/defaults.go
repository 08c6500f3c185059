package config

import (
	_ "embed"
)

//go:embed defaults/skewcube.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:      "info",
			Timestamps: false,
		},
		Output: OutputConfig{
			Color: ColorAuto,
			Grids: []string{GridDirection, GridPosition, GridOccupancy},
		},
		Storage: StorageConfig{
			Enabled: true,
			Path:    "~/.skewcube/runs.db",
		},
		Export: ExportConfig{
			Dir: ".",
		},
	}
}
