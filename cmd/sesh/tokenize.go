package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sesh/internal/diag"
	"sesh/internal/diagfmt"
	"sesh/internal/driver"
	"sesh/internal/source"
	"sesh/internal/token"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] FILE|DIR",
		Short: "Print the tokens of a Selene file or directory",
		Long: `Tokenize lexes a Selene source file, or every .sel file under a directory,
and prints the tokens. Lexical errors are reported on stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: runTokenize,
	}
	cmd.Flags().String("format", "pretty", "token output format (pretty|plain|json)")
	cmd.Flags().Int("jobs", 0, "parallel files for directories (0 = GOMAXPROCS)")
	cmd.Flags().Bool("cache", false, "reuse cached tokens for unchanged files")
	cmd.Flags().String("ui", "auto", "progress view for directories (auto|on|off)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	switch format {
	case "pretty", "plain", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	if st.IsDir() {
		return runTokenizeDir(cmd, path, format, maxDiagnostics)
	}

	result, err := driver.Tokenize(cmd.Context(), path, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if err := renderDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}
	if err := writeTokens(cmd.OutOrStdout(), format, result.Tokens, result.File); err != nil {
		return err
	}
	return lexicalErrors(result.Sink.Len())
}

func runTokenizeDir(cmd *cobra.Command, dir, format string, maxDiagnostics int) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	opts := driver.TokenizeDirOptions{MaxDiagnostics: maxDiagnostics, Jobs: jobs}
	if useCache {
		cacheDir, err := driver.DefaultCacheDir()
		if err != nil {
			return err
		}
		if opts.Cache, err = driver.OpenTokenCache(cacheDir); err != nil {
			return err
		}
	}

	var (
		fileSet *source.FileSet
		results []driver.TokenizeDirResult
	)
	if mode.enabled(isTerminal(os.Stderr)) {
		fileSet, results, err = tokenizeDirWithUI(cmd.Context(), dir, opts)
	} else {
		fileSet, results, err = driver.TokenizeDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	all := diag.NewBag(maxDiagnostics)
	for _, r := range results {
		all.Merge(r.Bag)
	}
	if err := renderDiagnostics(cmd, all, fileSet); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range results {
		if r.Bag.HasErrors() {
			failed++
		}
		file := fileSet.Get(r.FileID)
		if file == nil {
			continue
		}
		if format != "json" {
			fmt.Fprintf(out, "== %s\n", file.FormatPath("relative", fileSet.BaseDir()))
		}
		if err := writeTokens(out, format, r.Tokens, file); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files have lexical errors", failed, len(results))
	}
	return nil
}

func lexicalErrors(n int) error {
	switch n {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("1 lexical error")
	default:
		return fmt.Errorf("%d lexical errors", n)
	}
}

func writeTokens(w io.Writer, format string, tokens []token.Token, file *source.File) error {
	switch format {
	case "plain":
		return diagfmt.FormatTokens(w, tokens)
	case "json":
		return diagfmt.FormatTokensJSON(w, tokens, file)
	default:
		return diagfmt.FormatTokensPretty(w, tokens, file)
	}
}
