// Package config loads lvtile settings from defaults, an optional YAML
// file and LVTILE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtile/internal/logger"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete lvtile configuration.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	Tiling  TilingConfig  `koanf:"tiling"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `koanf:"level"`  // debug, info, warn, error
	Format     string `koanf:"format"` // json, text
	Output     string `koanf:"output"` // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"` // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

// TilingConfig holds checker settings.
type TilingConfig struct {
	ComponentPrecheck bool `koanf:"component_precheck"`
}

// MetricsConfig holds metrics settings. When Textfile is set the command
// writes the registry there in the Prometheus text format on exit.
type MetricsConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Textfile string `koanf:"textfile"`
}

// Logger converts the log section into a logger.Config.
func (c LogConfig) Logger() logger.Config {
	return logger.Config{
		Level:      c.Level,
		Format:     c.Format,
		Output:     c.Output,
		FilePath:   c.FilePath,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
	}
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"json", "text"}
	validOutputs = []string{"stdout", "stderr", "file"}
)

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// Validate checks the enumerated settings and collects every problem
// into one error.
func (c *Config) Validate() error {
	var errs []string

	if !oneOf(c.Log.Level, validLevels) {
		errs = append(errs, fmt.Sprintf("log.level must be one of %v, got %q", validLevels, c.Log.Level))
	}
	if !oneOf(c.Log.Format, validFormats) {
		errs = append(errs, fmt.Sprintf("log.format must be one of %v, got %q", validFormats, c.Log.Format))
	}
	if !oneOf(c.Log.Output, validOutputs) {
		errs = append(errs, fmt.Sprintf("log.output must be one of %v, got %q", validOutputs, c.Log.Output))
	}
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		errs = append(errs, "log rotation limits must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}
