package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gies-analytics/sustaindash/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
store:
  backend: sqlite
  path: /var/lib/sustaindash/prefs.db
years:
  single_default: 2010
scroll:
  threshold: 120
ticker:
  interval: 80ms
log:
  debug: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Store.Backend != "sqlite" || cfg.Store.Path != "/var/lib/sustaindash/prefs.db" {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.Years.SingleDefault != 2010 || cfg.Years.Min != 1966 {
		t.Errorf("years = %+v, want file value merged over defaults", cfg.Years)
	}
	if cfg.Scroll.Threshold != 120 || cfg.Scroll.LineUnits != 20 {
		t.Errorf("scroll = %+v", cfg.Scroll)
	}
	if cfg.TickerInterval() != 80*time.Millisecond {
		t.Errorf("TickerInterval() = %v", cfg.TickerInterval())
	}
	if !cfg.Log.Debug {
		t.Error("log.debug should be true")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "store:\n  backend: sqlite\n")
	t.Setenv("SUSTAINDASH_STORE__BACKEND", "memory")
	t.Setenv("SUSTAINDASH_LAYOUT__COMPACT_WIDTH", "80")
	t.Setenv("SUSTAINDASH_TICKER__ENABLED", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Store.Backend != "memory" {
		t.Errorf("store.backend = %q, want memory", cfg.Store.Backend)
	}
	if cfg.Layout.CompactWidth != 80 {
		t.Errorf("layout.compact_width = %d, want 80", cfg.Layout.CompactWidth)
	}
	if cfg.Ticker.Enabled {
		t.Error("ticker.enabled should be false")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "store: [unterminated")

	_, err := Load(path)
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("Load() err = %v, want config error", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, "years:\n  min: 2000\n  max: 1990\n")

	_, err := Load(path)
	if !errors.Is(err, errors.KindInvalid) {
		t.Errorf("Load() err = %v, want invalid", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"unknown backend", func(c *Config) { c.Store.Backend = "redis" }, true},
		{"empty backend", func(c *Config) { c.Store.Backend = "" }, true},
		{"min equals max", func(c *Config) { c.Years.Max = c.Years.Min }, true},
		{"single below min", func(c *Config) { c.Years.SingleDefault = 1900 }, true},
		{"single at max", func(c *Config) { c.Years.SingleDefault = 2025 }, false},
		{"zero threshold", func(c *Config) { c.Scroll.Threshold = 0 }, true},
		{"negative line units", func(c *Config) { c.Scroll.LineUnits = -1 }, true},
		{"zero compact width", func(c *Config) { c.Layout.CompactWidth = 0 }, true},
		{"bad interval", func(c *Config) { c.Ticker.Interval = "soon" }, true},
		{"negative interval", func(c *Config) { c.Ticker.Interval = "-1s" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_StorePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	got, err := cfg.StorePath()
	if err != nil || got != filepath.Join(home, ".sustaindash", "prefs.json") {
		t.Errorf("file StorePath() = %q, %v", got, err)
	}

	cfg.Store.Backend = "sqlite"
	got, _ = cfg.StorePath()
	if got != filepath.Join(home, ".sustaindash", "prefs.db") {
		t.Errorf("sqlite StorePath() = %q", got)
	}

	cfg.Store.Path = "~/prefs/custom.db"
	got, _ = cfg.StorePath()
	if got != filepath.Join(home, "prefs", "custom.db") {
		t.Errorf("expanded StorePath() = %q", got)
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Store.Backend = "sqlite"
	cfg.Scroll.Threshold = 450
	cfg.Ticker.Interval = "250ms"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
