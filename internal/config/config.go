package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/gies-analytics/sustaindash/internal/errors"
)

// EnvPrefix marks environment overrides. A double underscore separates
// nesting levels: SUSTAINDASH_STORE__BACKEND sets store.backend.
const EnvPrefix = "SUSTAINDASH_"

// Config holds the application configuration
type Config struct {
	Store  StoreConfig  `yaml:"store" koanf:"store"`
	Years  YearsConfig  `yaml:"years" koanf:"years"`
	Scroll ScrollConfig `yaml:"scroll" koanf:"scroll"`
	Layout LayoutConfig `yaml:"layout" koanf:"layout"`
	Ticker TickerConfig `yaml:"ticker" koanf:"ticker"`
	Log    LogConfig    `yaml:"log" koanf:"log"`
}

// StoreConfig selects the preference store backend.
type StoreConfig struct {
	Backend string `yaml:"backend" koanf:"backend"` // file, sqlite or memory
	Path    string `yaml:"path,omitempty" koanf:"path"`
}

// YearsConfig is the publication year domain of the filter panel.
type YearsConfig struct {
	Min           int `yaml:"min" koanf:"min"`
	Max           int `yaml:"max" koanf:"max"`
	SingleDefault int `yaml:"single_default" koanf:"single_default"`
}

// ScrollConfig controls the scroll-to-top affordance.
type ScrollConfig struct {
	Threshold int `yaml:"threshold" koanf:"threshold"`   // offset in scroll units
	LineUnits int `yaml:"line_units" koanf:"line_units"` // scroll units per body row
}

// LayoutConfig holds the responsive breakpoint.
type LayoutConfig struct {
	CompactWidth int `yaml:"compact_width" koanf:"compact_width"`
}

// TickerConfig controls the data ticker animation.
type TickerConfig struct {
	Interval string `yaml:"interval" koanf:"interval"` // Go duration, e.g. "150ms"
	Enabled  bool   `yaml:"enabled" koanf:"enabled"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	Path  string `yaml:"path,omitempty" koanf:"path"`
	Debug bool   `yaml:"debug" koanf:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Store:  StoreConfig{Backend: "file"},
		Years:  YearsConfig{Min: 1966, Max: 2025, SingleDefault: 2024},
		Scroll: ScrollConfig{Threshold: 300, LineUnits: 20},
		Layout: LayoutConfig{CompactWidth: 100},
		Ticker: TickerConfig{Interval: "150ms", Enabled: true},
	}
}

// Dir returns the path to the config directory
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sustaindash"), nil
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load layers the YAML file at path (DefaultPath when empty) and
// SUSTAINDASH_* environment variables over the defaults, then validates the
// result. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, errors.ConfigLoadFailed("~/.sustaindash", err)
		}
		path = p
	}

	k := koanf.New(".")
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.ConfigLoadFailed(path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.ConfigLoadFailed("environment", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps SUSTAINDASH_SCROLL__LINE_UNITS to scroll.line_units.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

var validBackends = map[string]bool{
	"file":   true,
	"sqlite": true,
	"memory": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validBackends[c.Store.Backend] {
		return errors.ConfigInvalid(fmt.Sprintf("store.backend %q must be one of file, sqlite, memory", c.Store.Backend))
	}
	if c.Years.Min >= c.Years.Max {
		return errors.ConfigInvalid(fmt.Sprintf("years.min (%d) must be below years.max (%d)", c.Years.Min, c.Years.Max))
	}
	if c.Years.SingleDefault < c.Years.Min || c.Years.SingleDefault > c.Years.Max {
		return errors.ConfigInvalid(fmt.Sprintf("years.single_default (%d) must be within %d-%d", c.Years.SingleDefault, c.Years.Min, c.Years.Max))
	}
	if c.Scroll.Threshold <= 0 {
		return errors.ConfigInvalid("scroll.threshold must be positive")
	}
	if c.Scroll.LineUnits <= 0 {
		return errors.ConfigInvalid("scroll.line_units must be positive")
	}
	if c.Layout.CompactWidth <= 0 {
		return errors.ConfigInvalid("layout.compact_width must be positive")
	}
	d, err := time.ParseDuration(c.Ticker.Interval)
	if err != nil {
		return errors.ConfigInvalid(fmt.Sprintf("ticker.interval %q is not a duration", c.Ticker.Interval))
	}
	if d <= 0 {
		return errors.ConfigInvalid("ticker.interval must be positive")
	}
	return nil
}

// TickerInterval returns the parsed ticker interval. Call after Validate.
func (c *Config) TickerInterval() time.Duration {
	d, err := time.ParseDuration(c.Ticker.Interval)
	if err != nil || d <= 0 {
		return 150 * time.Millisecond
	}
	return d
}

// StorePath returns the preference store location, defaulting to
// prefs.json or prefs.db in Dir() depending on the backend. A leading "~/" is
// expanded.
func (c *Config) StorePath() (string, error) {
	if c.Store.Path != "" {
		return expandHome(c.Store.Path)
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if c.Store.Backend == "sqlite" {
		return filepath.Join(dir, "prefs.db"), nil
	}
	return filepath.Join(dir, "prefs.json"), nil
}

func expandHome(p string) (string, error) {
	if !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, p[2:]), nil
}

// Save writes the configuration as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	return nil
}
