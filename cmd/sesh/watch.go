package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sesh/internal/driver"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [flags] FILE",
		Short: "Re-run a Selene file every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	w, err := driver.NewWatcher(path)
	if err != nil {
		return err
	}
	defer w.Close() //nolint:errcheck

	runOnce := func(ctx context.Context) {
		if err := watchStep(ctx, cmd, path); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}
	runOnce(cmd.Context())
	return w.Run(cmd.Context(), runOnce)
}

// watchStep runs path once and prints a status line on stdout.
// Lexical errors are rendered, not returned.
func watchStep(ctx context.Context, cmd *cobra.Command, path string) error {
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	res, err := driver.Execute(ctx, path, maxDiagnostics)
	if err != nil {
		return err
	}
	if res.Err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
		return nil
	}
	if err := renderDiagnostics(cmd, res.Bag, res.FileSet); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, res.Err)
	return nil
}
