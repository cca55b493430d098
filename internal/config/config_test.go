package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "Productivity", cfg.Defaults.Space)
	assert.Equal(t, "Solo Builder", cfg.Defaults.Vibe)
	assert.Equal(t, "A Weekend", cfg.Defaults.Time)
	assert.Equal(t, "markdown", cfg.Output.Format)
	assert.Equal(t, "dark", cfg.TUI.Style)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 20.0, cfg.Server.RateLimit)
	assert.Equal(t, 40, cfg.Server.Burst)
	assert.Equal(t, 30*time.Minute, cfg.Server.SessionTTL.Duration)
}

func TestLoadFromFile(t *testing.T) {
	tomlContent := `
[defaults]
space = "Fintech"
time = "24 hours"

[output]
format = "json"

[server]
addr = "127.0.0.1:9000"
session_ttl = "5m"
`
	tmpFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(tomlContent), 0644))

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "Fintech", cfg.Defaults.Space)
	assert.Equal(t, "24 hours", cfg.Defaults.Time)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Server.SessionTTL.Duration)

	// Fields not in the file keep their defaults.
	assert.Equal(t, "Solo Builder", cfg.Defaults.Vibe)
	assert.Equal(t, 40, cfg.Server.Burst)
	assert.Equal(t, "dark", cfg.TUI.Style)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadInvalidTOML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("[invalid toml..."), 0644))

	_, err := Load(tmpFile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoadInvalidDuration(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("[server]\nsession_ttl = \"forever\"\n"), 0644))

	_, err := Load(tmpFile)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Defaults.Space = "Health"
	cfg.Server.SessionTTL = Duration{time.Hour}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvAddr, ":9999")
	t.Setenv(EnvOutput, "yaml")
	t.Setenv(EnvRateLimit, "2.5")

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(cfg))
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 2.5, cfg.Server.RateLimit)
}

func TestApplyEnvBadRateLimit(t *testing.T) {
	t.Setenv(EnvRateLimit, "fast")
	err := ApplyEnv(DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvRateLimit)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("BUILDGEN_OUTPUT=json\n"), 0644))
	t.Setenv(EnvOutput, "")
	require.NoError(t, os.Unsetenv(EnvOutput))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), envFile))
	assert.Equal(t, "json", os.Getenv(EnvOutput))
}
