package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/gies-analytics/sustaindash/internal/app"
	"github.com/gies-analytics/sustaindash/internal/config"
	"github.com/gies-analytics/sustaindash/internal/errors"
	"github.com/gies-analytics/sustaindash/internal/logger"
	"github.com/gies-analytics/sustaindash/internal/store"
)

var (
	configPath            string
	debugMode             bool
	quietMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "sustaindash",
	Short: "Terminal dashboard for Gies sustainability research",
	Long: `sustaindash shows the Gies College of Business sustainability research
dashboard in the terminal: mission overview, live research ticker, spotlight
articles and a filter panel over journal categories, years and UN goals.

The light/dark theme choice is saved between runs.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.sustaindash/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("sustaindash %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("sustaindash %s\n", version)
}

// loadConfig reads --config (or the default path) and applies its log
// settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if cfg.Log.Path != "" {
		if err := logger.Init(cfg.Log.Path); err != nil {
			return nil, fmt.Errorf("error opening log file: %w", err)
		}
	}
	if cfg.Log.Debug && !quietMode {
		logger.SetDebug(true)
	}
	return cfg, nil
}

// openStore opens the configured preference store.
func openStore(cfg *config.Config) (store.Store, error) {
	path, err := cfg.StorePath()
	if err != nil {
		return nil, err
	}
	return store.New(cfg.Store.Backend, path)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	// The dashboard still runs without a store; the theme just won't persist.
	s, err := openStore(cfg)
	if err != nil {
		logger.Warn("Preference store unavailable (%s), theme changes will not be saved: %v", errors.GetKind(err), err)
		s = nil
	} else {
		defer s.Close()
	}

	m := app.New(app.Options{Config: cfg, Store: s})
	defer m.Close()
	logger.Info("Starting dashboard: version=%s run=%s", version, m.RunID())

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
