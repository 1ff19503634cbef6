package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chromastudio/internal/app/session"
	"github.com/alexisbeaulieu97/chromastudio/internal/config"
	"github.com/alexisbeaulieu97/chromastudio/internal/domain/gradient"
)

type gradientOptions struct {
	renderOptions
	stops        []string
	gradientType string
	angle        int
}

func newGradientCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &gradientOptions{}

	cmd := &cobra.Command{
		Use:   "gradient",
		Short: "Render a multi-stop gradient as CSS",
		Long: `Render a linear or radial gradient as CSS. Stops are given as
HEX@POSITION[:OPACITY]. Without --stop the default indigo to purple
gradient is used.`,
		Example: `  chromastudio gradient --stop "#6366f1@0" --stop "#a855f7@100"
  chromastudio gradient --stop 000000@0 --stop ffffff@100:50 --type radial --snippet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGradient(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.stops, "stop", nil, "Gradient stop as HEX@POSITION[:OPACITY] (repeatable, at least two)")
	cmd.Flags().StringVar(&opts.gradientType, "type", string(gradient.TypeLinear), "Gradient type: linear or radial")
	cmd.Flags().IntVar(&opts.angle, "angle", 90, "Linear gradient angle in degrees")
	addRenderFlags(cmd, &opts.renderOptions)

	return cmd
}

func runGradient(cmd *cobra.Command, rootFlags *rootFlags, opts *gradientOptions) error {
	const operation = "render gradient"

	store, err := storeFromFlags(operation, opts.stops)
	if err != nil {
		return err
	}

	typ, err := gradient.ParseType(opts.gradientType)
	if err != nil {
		return newCommandError(operation, fmt.Sprintf("reading --type %q", opts.gradientType), err, "Use --type linear or --type radial.")
	}

	sess := session.New(session.WithLogger(rootFlags.log), session.WithStore(store))
	if err := sess.SetMode(session.ModeGradient); err != nil {
		return newCommandError(operation, "switching to gradient mode", err, "Check the stop values and try again.")
	}
	if err := sess.SetGradientType(typ); err != nil {
		return newCommandError(operation, "applying gradient type", err, "Use --type linear or --type radial.")
	}
	if err := sess.SetAngle(opts.angle); err != nil {
		return newCommandError(operation, "applying angle", err, "Use a whole number of degrees.")
	}
	if err := applyPreview(sess, operation, opts.preview); err != nil {
		return err
	}

	return renderOutput(cmd, operation, sess.Output(), &opts.renderOptions)
}

// storeFromFlags builds a stop store from --stop values, falling back to the
// default two-stop gradient when none were given.
func storeFromFlags(operation string, raw []string) (*gradient.Store, error) {
	if len(raw) == 0 {
		return gradient.NewStore(), nil
	}

	specs, err := config.ParseStopSpecs(raw)
	if err != nil {
		return nil, newCommandError(operation, "parsing --stop flags", err, "Write each stop as HEX@POSITION[:OPACITY], for example --stop \"#6366f1@0\".")
	}
	store, err := gradient.NewStoreFromStops(config.StopsFromSpecs(specs))
	if err != nil {
		return nil, newCommandError(operation, "building gradient", err, fmt.Sprintf("Pass at least %d --stop flags.", gradient.MinStops))
	}
	return store, nil
}
