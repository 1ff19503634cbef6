package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chromastudio/internal/config"
)

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the editor theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeShow(cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeShow(cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between dark and light",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeToggle(cmd, rootFlags)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:       "set <dark|light>",
		Short:     "Store a theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(config.ThemeDark), string(config.ThemeLight)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeSet(cmd, rootFlags, args[0])
		},
	})

	return cmd
}

func loadPreferences(operation string) (*config.Preferences, error) {
	path, err := config.DefaultPreferencesPath()
	if err != nil {
		return nil, newCommandError(operation, "determining preferences path", err, "Ensure your HOME directory is set correctly.")
	}
	prefs, err := config.LoadPreferences(path)
	if err != nil {
		return nil, newCommandError(operation, "loading preferences", err, fmt.Sprintf("Fix or delete %s and try again.", path))
	}
	return prefs, nil
}

func runThemeShow(cmd *cobra.Command) error {
	prefs, err := loadPreferences("show theme")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), prefs.Theme())
	return nil
}

func runThemeToggle(cmd *cobra.Command, rootFlags *rootFlags) error {
	prefs, err := loadPreferences("toggle theme")
	if err != nil {
		return err
	}
	next, err := prefs.ToggleTheme()
	if err != nil {
		return newCommandError("toggle theme", "saving preferences", err, fmt.Sprintf("Check permissions on %s.", prefs.Path()))
	}
	rootFlags.log.With("theme", string(next)).Info("theme toggled")
	fmt.Fprintln(cmd.OutOrStdout(), next)
	return nil
}

func runThemeSet(cmd *cobra.Command, rootFlags *rootFlags, raw string) error {
	theme, err := config.ParseTheme(raw)
	if err != nil {
		return newCommandError("set theme", fmt.Sprintf("reading theme %q", raw), err, "Use 'dark' or 'light'.")
	}
	prefs, err := loadPreferences("set theme")
	if err != nil {
		return err
	}
	if err := prefs.SetTheme(theme); err != nil {
		return newCommandError("set theme", "saving preferences", err, fmt.Sprintf("Check permissions on %s.", prefs.Path()))
	}
	rootFlags.log.With("theme", string(theme)).Info("theme set")
	fmt.Fprintln(cmd.OutOrStdout(), theme)
	return nil
}
