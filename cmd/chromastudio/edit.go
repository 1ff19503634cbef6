package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chromastudio/internal/app/session"
	"github.com/alexisbeaulieu97/chromastudio/internal/config"
	"github.com/alexisbeaulieu97/chromastudio/internal/logger"
	"github.com/alexisbeaulieu97/chromastudio/internal/tui"
)

func newEditCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Launch the interactive colour editor",
		Long: `Launch the terminal colour editor. Pick a flat colour or build a
gradient, preview it on common UI elements and copy the CSS.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(rootFlags)
		},
	}

	return cmd
}

func runEditor(rootFlags *rootFlags) error {
	log := rootFlags.log
	prefs := editorPreferences(log)

	sess := session.New(session.WithLogger(log))
	m := tui.NewModel(sess,
		tui.WithPreferences(prefs),
		tui.WithLogger(log),
	)
	defer m.Close()

	log.Info("launching editor")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error(err, "editor execution failed")
		return newCommandError("launch editor", "running terminal UI", err, "Run chromastudio from an interactive terminal.")
	}
	log.Info("editor closed")

	return nil
}

// editorPreferences loads the stored preferences for the editor. A file that
// cannot be read is not fatal: the editor starts with the default theme and
// theme changes stay in memory so the broken file is left untouched.
func editorPreferences(log *logger.Logger) *config.Preferences {
	prefs, err := loadPreferences("launch editor")
	if err != nil {
		log.With("error", err.Error()).Warn("preferences unavailable; theme changes will not be saved")
		return nil
	}
	log.With("theme", string(prefs.Theme())).Debug("preferences loaded")
	return prefs
}
