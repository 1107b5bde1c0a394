// Package config loads picker settings from a JSON file and the environment.
package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ironsheep/color-picker-mcp/internal/surface"
)

// AppName names the per-user config directory.
const AppName = "colorpicker"

// Environment variables consulted by Load.
const (
	EnvPath     = "COLORPICKER_CONFIG"
	EnvLogLevel = "COLORPICKER_LOG_LEVEL"
	EnvExtent   = "COLORPICKER_EXTENT"
)

// Config holds picker settings.
type Config struct {
	LogLevel      string  `json:"log_level"`
	Extent        int     `json:"extent"`
	MarkerRadius  float64 `json:"marker_radius"`
	SnapshotScale float64 `json:"snapshot_scale"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		Extent:        100,
		MarkerRadius:  5,
		SnapshotScale: 1,
	}
}

// Path returns the config file location: $COLORPICKER_CONFIG if set,
// otherwise config.json under the user config directory.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locate config dir")
	}
	return filepath.Join(dir, AppName, "config.json"), nil
}

// Load reads the config file, applies environment overrides and validates
// the result. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes path over the defaults. Fields absent from the file keep
// their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvExtent); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "%s", EnvExtent)
		}
		c.Extent = n
	}
	return nil
}

// Validate rejects settings the picker cannot run with.
func (c *Config) Validate() error {
	if c.Extent <= 0 {
		return errors.Errorf("extent must be positive, got %d", c.Extent)
	}
	if c.MarkerRadius <= 0 {
		return errors.Errorf("marker_radius must be positive, got %v", c.MarkerRadius)
	}
	if c.SnapshotScale <= 0 || c.SnapshotScale > surface.MaxSnapshotScale {
		return errors.Errorf("snapshot_scale must be in (0, %d], got %v", surface.MaxSnapshotScale, c.SnapshotScale)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty level means info.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, errors.Wrapf(err, "log_level %q", c.LogLevel)
	}
	return lvl, nil
}

// Save writes the config as indented JSON, creating the directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return errors.Wrap(err, "write config")
	}
	return nil
}
