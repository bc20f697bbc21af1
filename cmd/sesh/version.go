package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"sesh/internal/version"
)

const versionTagline = "a small shell with typed literals"

type versionPayload struct {
	Tool    string `json:"tool"`
	Tagline string `json:"tagline"`
	version.Info
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show sesh build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to get format flag: %w", err)
			}
			info := version.Current()
			switch strings.ToLower(format) {
			case "pretty":
				useColor, err := colorEnabled(cmd)
				if err != nil {
					return err
				}
				renderVersionPretty(cmd.OutOrStdout(), info, useColor)
				return nil
			case "json":
				return renderVersionJSON(cmd.OutOrStdout(), info)
			default:
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func renderVersionPretty(out io.Writer, info version.Info, useColor bool) {
	v := info.Version
	if useColor {
		v = version.Colored()
	}
	fmt.Fprintf(out, "sesh %s: %s\n", v, versionTagline)
	fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(info.GitCommit))
	fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(info.BuildDate))
}

func renderVersionJSON(out io.Writer, info version.Info) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(versionPayload{Tool: "sesh", Tagline: versionTagline, Info: info})
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
