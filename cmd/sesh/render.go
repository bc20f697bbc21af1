package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sesh/internal/diag"
	"sesh/internal/diagfmt"
	"sesh/internal/source"
)

// renderDiagnostics writes bag to stderr in the --diag-format style.
func renderDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag.Len() == 0 {
		return nil
	}
	format, err := cmd.Flags().GetString("diag-format")
	if err != nil {
		return fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	useColor, err := colorEnabled(cmd)
	if err != nil {
		return err
	}
	out := cmd.ErrOrStderr()
	bag.Sort()

	switch strings.ToLower(format) {
	case "pretty":
		diagfmt.Pretty(out, bag, fs, diagfmt.PrettyOpts{
			Color:    useColor,
			Context:  1,
			PathMode: diagfmt.PathModeRelative,
		})
		return nil
	case "short":
		if _, err := fmt.Fprintln(out, diag.FormatShortDiagnostics(bag.Items(), fs, false)); err != nil {
			return err
		}
		if n := bag.Dropped(); n > 0 {
			_, err := fmt.Fprintf(out, "... %s\n", diagfmt.DroppedNote(n))
			return err
		}
		return nil
	case "json":
		return diagfmt.JSON(out, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
		})
	default:
		return fmt.Errorf("unknown diagnostic format %q (expected pretty|short|json)", format)
	}
}

func colorEnabled(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.ToLower(colorFlag) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return cmd.ErrOrStderr() == os.Stderr && isTerminal(os.Stderr), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}
}
