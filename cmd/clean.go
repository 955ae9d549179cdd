package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gies-analytics/sustaindash/internal/config"
	"github.com/gies-analytics/sustaindash/internal/errors"
	"github.com/gies-analytics/sustaindash/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the saved preferences and the debug log",
	Long: `Deletes the preference store (which holds the saved theme) and the debug
log file. The configuration file is kept.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(cmd.OutOrStdout(), os.Stdin)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(out io.Writer, input io.Reader) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var stores []string
	if cfg.Store.Backend != "memory" {
		path, err := cfg.StorePath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			stores = append(stores, path)
		}
	}
	var logs []string
	for _, path := range logPaths(cfg) {
		if _, err := os.Stat(path); err == nil {
			logs = append(logs, path)
		}
	}

	if len(stores)+len(logs) == 0 {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will remove:")
	for _, t := range append(stores, logs...) {
		fmt.Fprintf(out, "  - %s\n", t)
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(out, input, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	removed := 0
	for _, t := range stores {
		if err := os.Remove(t); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", errors.RemoveFailed(t, err))
			continue
		}
		removed++
	}
	if len(logs) > 0 {
		n, err := logger.ClearLogs(logs...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", errors.E(errors.Op("clean.Remove"), errors.KindIO, err))
		}
		removed += n
	}
	fmt.Fprintf(out, "Removed %d file(s).\n", removed)
	return nil
}

// logPaths lists the default debug log and the configured one, if different.
func logPaths(cfg *config.Config) []string {
	paths := []string{logger.DefaultLogPath}
	if cfg.Log.Path != "" && cfg.Log.Path != logger.DefaultLogPath {
		paths = append(paths, cfg.Log.Path)
	}
	return paths
}

// confirm prompts the user for y/n confirmation
func confirm(out io.Writer, input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
