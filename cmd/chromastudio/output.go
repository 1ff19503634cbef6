package main

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chromastudio/internal/app/session"
	"github.com/alexisbeaulieu97/chromastudio/internal/css"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

type renderOptions struct {
	preview    string
	snippet    bool
	copy       bool
	jsonOutput bool
}

type renderedOutput struct {
	Value       string `json:"value"`
	Snippet     string `json:"snippet"`
	Summary     string `json:"summary"`
	IsGradient  bool   `json:"is_gradient"`
	PreviewMode string `json:"preview_mode"`
	Label       string `json:"label"`
}

func addRenderFlags(cmd *cobra.Command, opts *renderOptions) {
	cmd.Flags().StringVar(&opts.preview, "preview", string(css.PreviewBackground), "Preview context: bg, button-bg, text, border or card")
	cmd.Flags().BoolVar(&opts.snippet, "snippet", false, "Print the CSS declaration block instead of the bare value")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the CSS declaration block to the clipboard")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the result as JSON")
}

func applyPreview(sess *session.Session, operation, raw string) error {
	mode, err := css.ParsePreviewMode(raw)
	if err != nil {
		return newCommandError(operation, fmt.Sprintf("reading --preview %q", raw), err, "Use one of bg, button-bg, text, border or card.")
	}
	if err := sess.SetPreviewMode(mode); err != nil {
		return newCommandError(operation, "selecting preview mode", err, "Use one of bg, button-bg, text, border or card.")
	}
	return nil
}

func renderOutput(cmd *cobra.Command, operation string, out session.Output, opts *renderOptions) error {
	if opts.copy {
		if err := copyToClipboard(out.Snippet); err != nil {
			return newCommandError(operation, "copying to clipboard", err, "Install xclip, xsel or wl-clipboard, or drop --copy and pipe the output instead.")
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied!")
	}

	if opts.jsonOutput {
		payload := renderedOutput{
			Value:       out.Value,
			Snippet:     out.Snippet,
			Summary:     out.Summary,
			IsGradient:  out.IsGradient,
			PreviewMode: string(out.PreviewMode),
			Label:       out.Label,
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return newCommandError(operation, "encoding JSON output", err, "Retry without --json.")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if opts.snippet {
		fmt.Fprintln(cmd.OutOrStdout(), out.Snippet)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), out.Value)
	return nil
}
