package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chromastudio/internal/app/session"
)

type singleOptions struct {
	renderOptions
	opacity int
}

func newSingleCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &singleOptions{}

	cmd := &cobra.Command{
		Use:   "single <hex>",
		Short: "Render a flat colour as CSS",
		Long: `Render a flat colour as CSS. The colour is printed unchanged at full
opacity and as rgba() otherwise.`,
		Example: `  chromastudio single "#6366f1"
  chromastudio single 6366f1 --opacity 50 --preview text --snippet`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSingle(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.opacity, "opacity", 100, "Opacity percentage, clamped to 0-100")
	addRenderFlags(cmd, &opts.renderOptions)

	return cmd
}

func runSingle(cmd *cobra.Command, rootFlags *rootFlags, hex string, opts *singleOptions) error {
	const operation = "render single colour"

	sess := session.New(session.WithLogger(rootFlags.log))
	if err := sess.SetSingleHex(hex); err != nil {
		return newCommandError(operation, fmt.Sprintf("parsing colour %q", hex), err, "Use a six digit hex colour such as #6366f1.")
	}
	if err := sess.SetSingleOpacity(opts.opacity); err != nil {
		return newCommandError(operation, "applying opacity", err, "Use an opacity between 0 and 100.")
	}
	if err := applyPreview(sess, operation, opts.preview); err != nil {
		return err
	}

	return renderOutput(cmd, operation, sess.Output(), &opts.renderOptions)
}
