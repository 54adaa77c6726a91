package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix    = "LVTILE_"
	configEnvVar = "LVTILE_CONFIG"
)

// ErrConfigFile is returned when an explicitly requested file cannot be read.
var ErrConfigFile = errors.New("config: cannot load config file")

// Loader assembles a Config from several sources.
type Loader struct {
	k           *koanf.Koanf
	file        string
	source      string
	configPaths []string
	envPrefix   string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// NewLoader returns a Loader with the default search paths and prefix.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k: koanf.New("."),
		configPaths: []string{
			"lvtile.yaml",
			"config/lvtile.yaml",
		},
		envPrefix: envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithFile names a config file that must exist. It takes precedence over
// LVTILE_CONFIG and the search paths.
func WithFile(path string) LoaderOption {
	return func(l *Loader) {
		l.file = path
	}
}

// WithConfigPaths replaces the optional search paths.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.configPaths = paths
	}
}

// WithEnvPrefix replaces the environment prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// Load merges, lowest priority first:
//  1. defaults
//  2. the config file, if any
//  3. environment variables
//
// and validates the result.
func (l *Loader) Load() (*Config, error) {
	// 1. Defaults
	if err := l.loadDefaults(); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. File
	if err := l.loadConfigFile(); err != nil {
		return nil, err
	}

	// 3. Environment overrides the file
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	// 4. Unmarshal
	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Source returns the path of the file that was loaded, or "".
func (l *Loader) Source() string { return l.source }

func (l *Loader) loadDefaults() error {
	defaults := map[string]any{
		// Log
		"log.level":       "info",
		"log.format":      "text",
		"log.output":      "stderr",
		"log.file_path":   "",
		"log.max_size":    10,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    false,

		// Tiling
		"tiling.component_precheck": false,

		// Metrics
		"metrics.enabled":  false,
		"metrics.textfile": "",
	}

	return l.k.Load(confmap.Provider(defaults, "."), nil)
}

// loadConfigFile loads the explicit file, then LVTILE_CONFIG, then the
// first existing search path. Only the explicit file is mandatory.
func (l *Loader) loadConfigFile() error {
	if l.file != "" {
		if err := l.k.Load(file.Provider(l.file), yaml.Parser()); err != nil {
			return fmt.Errorf("%w %s: %w", ErrConfigFile, l.file, err)
		}
		l.source = l.file
		return nil
	}

	if configPath := os.Getenv(configEnvVar); configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := l.k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return fmt.Errorf("%w %s: %w", ErrConfigFile, configPath, err)
			}
			l.source = configPath
			return nil
		}
	}

	for _, path := range l.configPaths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		if _, err := os.Stat(absPath); err == nil {
			if err := l.k.Load(file.Provider(absPath), yaml.Parser()); err != nil {
				return fmt.Errorf("%w %s: %w", ErrConfigFile, absPath, err)
			}
			l.source = absPath
			return nil
		}
	}

	return nil
}

// loadEnv maps LVTILE_LOG_FILE_PATH style variables onto dotted keys.
// Keys whose names contain underscores go through envKeyMappings.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey string, value string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		if key == "config" {
			// file selector, not a setting
			return "", nil
		}

		if mappedKey, ok := envKeyMappings[key]; ok {
			key = mappedKey
		} else {
			key = strings.ReplaceAll(key, "_", ".")
		}

		return key, value
	}), nil)
}

// envKeyMappings lists settings whose last segment contains an underscore.
var envKeyMappings = map[string]string{
	"log_file_path":             "log.file_path",
	"log_max_size":              "log.max_size",
	"log_max_backups":           "log.max_backups",
	"log_max_age":               "log.max_age",
	"tiling_component_precheck": "tiling.component_precheck",
}
