package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/chromastudio/internal/logger"
)

// stdoutIsTerminal decides whether the bare root command opens the editor.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

type rootFlags struct {
	verbose   bool
	logFormat string
	log       *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{log: logger.Nop()}

	cmd := &cobra.Command{
		Use:           "chromastudio",
		Short:         "ChromaStudio composes colours and gradients into ready-to-paste CSS",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.setupLogger(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// With no subcommand, open the editor when attached to a terminal
			if len(args) == 0 && stdoutIsTerminal() {
				return runEditor(flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "console", "Log output format: console or json")

	cmd.AddCommand(newSingleCmd(flags))
	cmd.AddCommand(newGradientCmd(flags))
	cmd.AddCommand(newInterpolateCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) setupLogger(cmd *cobra.Command) error {
	if f.logFormat != "console" && f.logFormat != "json" {
		return newCommandError("configure logging", fmt.Sprintf("reading --log-format %q", f.logFormat), fmt.Errorf("unsupported log format"), "Use --log-format console or --log-format json.")
	}

	level := "warn"
	if f.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: f.logFormat == "console",
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return newCommandError("configure logging", "creating logger", err, "Check the --verbose and --log-format flags.")
	}
	f.log = log.With("command", cmd.Name())
	return nil
}
