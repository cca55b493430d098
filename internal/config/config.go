package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the top-level application configuration.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Output   OutputConfig   `toml:"output"`
	TUI      TUIConfig      `toml:"tui"`
	Server   ServerConfig   `toml:"server"`
}

// DefaultsConfig holds the selection used by headless generation when a
// flag is omitted.
type DefaultsConfig struct {
	Space string `toml:"space"`
	Vibe  string `toml:"vibe"`
	Time  string `toml:"time"`
}

// OutputConfig holds settings for rendered output.
type OutputConfig struct {
	Format string `toml:"format"`
}

// TUIConfig holds settings for the interactive terminal UI.
type TUIConfig struct {
	Style string `toml:"style"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	Addr       string   `toml:"addr"`
	RateLimit  float64  `toml:"rate_limit"`
	Burst      int      `toml:"burst"`
	SessionTTL Duration `toml:"session_ttl"`
}

// Duration is a time.Duration written as a string such as "30m".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig returns a Config populated with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Space: "Productivity",
			Vibe:  "Solo Builder",
			Time:  "A Weekend",
		},
		Output: OutputConfig{
			Format: "markdown",
		},
		TUI: TUIConfig{
			Style: "dark",
		},
		Server: ServerConfig{
			Addr:       ":8080",
			RateLimit:  20,
			Burst:      40,
			SessionTTL: Duration{30 * time.Minute},
		},
	}
}

// DefaultPath returns ~/.config/buildgen/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "buildgen", "config.toml"), nil
}

// Load reads the config file at path over the defaults. A missing file is
// not an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
