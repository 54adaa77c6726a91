package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolated returns a loader that never sees files from the working directory.
func isolated(opts ...LoaderOption) *Loader {
	return NewLoader(append([]LoaderOption{WithConfigPaths()}, opts...)...)
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvtile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_LoadDefaults(t *testing.T) {
	t.Setenv(configEnvVar, "")
	cfg, err := isolated().Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, 10, cfg.Log.MaxSize)
	assert.False(t, cfg.Tiling.ComponentPrecheck)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestLoader_LoadFromFile(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
  format: json
  file_path: /tmp/lvtile.log
tiling:
  component_precheck: true
metrics:
  enabled: true
  textfile: /tmp/lvtile.prom
`)
	l := isolated(WithFile(path))
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, path, l.Source())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output, "unset keys keep defaults")
	assert.Equal(t, "/tmp/lvtile.log", cfg.Log.FilePath)
	assert.True(t, cfg.Tiling.ComponentPrecheck)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/tmp/lvtile.prom", cfg.Metrics.Textfile)
}

func TestLoader_MissingExplicitFile(t *testing.T) {
	_, err := isolated(WithFile(filepath.Join(t.TempDir(), "absent.yaml"))).Load()
	require.ErrorIs(t, err, ErrConfigFile)
}

func TestLoader_SearchPaths(t *testing.T) {
	t.Setenv(configEnvVar, "")
	path := writeFile(t, "log:\n  level: warn\n")
	l := NewLoader(WithConfigPaths(filepath.Join(t.TempDir(), "nope.yaml"), path))
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, path, l.Source())
}

func TestLoader_ConfigEnvVar(t *testing.T) {
	path := writeFile(t, "log:\n  level: error\n")
	t.Setenv(configEnvVar, path)
	cfg, err := isolated().Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "log:\n  level: debug\n  max_size: 5\n")
	t.Setenv("LVTILE_LOG_LEVEL", "warn")
	t.Setenv("LVTILE_LOG_MAX_SIZE", "50")
	t.Setenv("LVTILE_LOG_FILE_PATH", "/var/log/lvtile.log")
	t.Setenv("LVTILE_TILING_COMPONENT_PRECHECK", "true")
	t.Setenv("LVTILE_METRICS_TEXTFILE", "/tmp/m.prom")

	cfg, err := isolated(WithFile(path)).Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 50, cfg.Log.MaxSize)
	assert.Equal(t, "/var/log/lvtile.log", cfg.Log.FilePath)
	assert.True(t, cfg.Tiling.ComponentPrecheck)
	assert.Equal(t, "/tmp/m.prom", cfg.Metrics.Textfile)
}

func TestLoader_CustomPrefix(t *testing.T) {
	t.Setenv(configEnvVar, "")
	t.Setenv("TILES_LOG_FORMAT", "json")
	cfg, err := isolated(WithEnvPrefix("TILES_")).Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoader_InvalidValue(t *testing.T) {
	t.Setenv(configEnvVar, "")
	t.Setenv("LVTILE_LOG_LEVEL", "verbose")
	_, err := isolated().Load()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "log.level")
}
