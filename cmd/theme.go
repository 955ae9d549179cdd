package cmd

import (
	stderrors "errors"
	"fmt"
	"io"

	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/gies-analytics/sustaindash/internal/errors"
	"github.com/gies-analytics/sustaindash/internal/theme"
	"github.com/gies-analytics/sustaindash/internal/ui"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the saved color theme",
	Long: `Reads and writes the same light/dark preference the dashboard uses.

Examples:
  sustaindash theme get
  sustaindash theme set dark
  sustaindash theme toggle
  sustaindash theme reset   # follow the terminal background again
  sustaindash theme pick    # choose interactively`,
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the active theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withPreference(func(p *theme.Preference) error {
			return themeGet(cmd.OutOrStdout(), p)
		})
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set <light|dark>",
	Short:     "Save a theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"light", "dark"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPreference(func(p *theme.Preference) error {
			return themeSet(cmd.OutOrStdout(), p, args[0])
		})
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withPreference(func(p *theme.Preference) error {
			return themeToggle(cmd.OutOrStdout(), p)
		})
	},
}

var themeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withPreference(func(p *theme.Preference) error {
			return themeReset(cmd.OutOrStdout(), p)
		})
	},
}

var themePickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a theme interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withPreference(func(p *theme.Preference) error {
			return themePick(cmd.OutOrStdout(), p, chooseTheme)
		})
	},
}

func init() {
	themeCmd.AddCommand(themeGetCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeResetCmd)
	themeCmd.AddCommand(themePickCmd)
	rootCmd.AddCommand(themeCmd)
}

// withPreference opens the configured store and hands fn an initialized
// preference. Headless commands have no terminal background to consult.
func withPreference(fn func(p *theme.Preference) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("error opening preference store: %w", err)
	}
	defer s.Close()

	p := theme.New(s, ui.SetMode)
	p.Initialize(nil)
	return fn(p)
}

// saved reports a change that only reached memory.
func saved(p *theme.Preference) error {
	if !p.Persistent() {
		return errors.StoreWriteFailed(theme.StorageKey, stderrors.New("preference store unavailable, change not saved"))
	}
	return nil
}

func themeGet(out io.Writer, p *theme.Preference) error {
	if p.Stored() {
		fmt.Fprintln(out, p.Mode())
	} else {
		fmt.Fprintf(out, "%s (not set, follows the terminal background)\n", p.Mode())
	}
	return nil
}

func themeSet(out io.Writer, p *theme.Preference, value string) error {
	m, err := theme.ParseMode(value)
	if err != nil {
		return err
	}
	p.Set(m)
	if err := saved(p); err != nil {
		return err
	}
	fmt.Fprintf(out, "Theme set to %s\n", m)
	return nil
}

func themeToggle(out io.Writer, p *theme.Preference) error {
	m := p.Toggle()
	if err := saved(p); err != nil {
		return err
	}
	fmt.Fprintf(out, "Theme set to %s\n", m)
	return nil
}

func themeReset(out io.Writer, p *theme.Preference) error {
	p.Reset(nil)
	if err := saved(p); err != nil {
		return err
	}
	fmt.Fprintln(out, "Saved theme cleared")
	return nil
}

// themePick asks choose for a mode, starting from the active one.
func themePick(out io.Writer, p *theme.Preference, choose func(selected *string) error) error {
	selected := p.Mode().String()
	if err := choose(&selected); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
		return err
	}
	return themeSet(out, p, selected)
}

func chooseTheme(selected *string) error {
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Color theme").
			Description("Saved for the next dashboard run").
			Options(
				huh.NewOption("Light", theme.Light.String()),
				huh.NewOption("Dark", theme.Dark.String()),
			).
			Value(selected),
	)).WithTheme(pickerTheme())
	return form.Run()
}

// pickerTheme styles the picker with the dashboard palette.
func pickerTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ui.ColorAccent)
		t.Focused.Title = lipgloss.NewStyle().Foreground(ui.ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ui.ColorTextMuted).Italic(true)
		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ui.ColorAccent).SetString("> ")
		t.Focused.Option = lipgloss.NewStyle().Foreground(ui.ColorText)
		t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ui.ColorAccentStrong)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		return t
	})
}
