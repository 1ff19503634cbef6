package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

type interpolateOptions struct {
	stops      []string
	jsonOutput bool
}

func newInterpolateCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &interpolateOptions{}

	cmd := &cobra.Command{
		Use:   "interpolate <position>",
		Short: "Print the gradient colour at a position",
		Long: `Print the hex colour a gradient produces at a position between 0 and
100. Stop opacity is ignored.`,
		Example: `  chromastudio interpolate 50 --stop "#000000@0" --stop "#ffffff@100"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInterpolate(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.stops, "stop", nil, "Gradient stop as HEX@POSITION[:OPACITY] (repeatable, at least two)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the result as JSON")

	return cmd
}

func runInterpolate(cmd *cobra.Command, rootFlags *rootFlags, rawPosition string, opts *interpolateOptions) error {
	const operation = "interpolate gradient"

	position, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(rawPosition), "%"))
	if err != nil {
		return newCommandError(operation, fmt.Sprintf("parsing position %q", rawPosition), err, "Use a whole number between 0 and 100.")
	}

	store, err := storeFromFlags(operation, opts.stops)
	if err != nil {
		return err
	}

	hex, err := store.ColorAt(position)
	if err != nil {
		return newCommandError(operation, fmt.Sprintf("sampling position %d", position), err, "Check the stop values and try again.")
	}
	rootFlags.log.WithFields(map[string]any{"position": position, "color": hex}).Debug("interpolated")

	if opts.jsonOutput {
		data, err := json.MarshalIndent(map[string]any{"position": position, "color": hex}, "", "  ")
		if err != nil {
			return newCommandError(operation, "encoding JSON output", err, "Retry without --json.")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex)
	return nil
}
