package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sesh/internal/driver"
)

// runFile is the root command: `sesh FILE`.
func runFile(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	res, err := driver.Execute(cmd.Context(), args[0], maxDiagnostics)
	if err != nil {
		return err
	}
	if res.Err == nil {
		return nil
	}
	if err := renderDiagnostics(cmd, res.Bag, res.FileSet); err != nil {
		return err
	}
	return res.Err
}
