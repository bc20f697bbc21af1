package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sesh/internal/observ"
	"sesh/internal/prof"
	"sesh/internal/trace"
	"sesh/internal/version"
)

// session holds what the persistent pre-run sets up and main tears down.
type session struct {
	tracer trace.Tracer
	timer  *observ.Timer
	prof   *prof.Session
	stderr io.Writer
}

func newRootCmd(s *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sesh [flags] FILE",
		Short: "Selene shell",
		Long: `sesh runs Selene scripts. Today running a script means checking that it
lexes cleanly; every lexical error is reported with its location.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.Current().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runFile,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
	}

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.String("diag-format", "pretty", "diagnostic format (pretty|short|json)")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show (0 = all)")
	pf.Bool("timings", false, "print phase timings to stderr")
	pf.String("config", "", "path to sesh.toml (default: search upwards from the working directory)")
	pf.String("trace", "", "write trace events to PATH (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "events kept in ring mode")
	pf.String("cpu-profile", "", "write a CPU profile to PATH")
	pf.String("mem-profile", "", "write a heap profile to PATH on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to PATH")

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// setup applies sesh.toml and starts tracing and timing for cmd.
func (s *session) setup(cmd *cobra.Command) error {
	if err := applySettings(cmd); err != nil {
		return err
	}
	tracer, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	s.tracer = tracer
	ctx := trace.WithTracer(cmd.Context(), tracer)

	if timings, _ := cmd.Flags().GetBool("timings"); timings {
		s.timer = observ.NewTimer()
		ctx = observ.WithTimer(ctx, s.timer)
	}
	cmd.SetContext(ctx)

	var opts prof.Options
	opts.CPU, _ = cmd.Flags().GetString("cpu-profile")
	opts.Mem, _ = cmd.Flags().GetString("mem-profile")
	opts.Trace, _ = cmd.Flags().GetString("runtime-trace")
	s.prof, err = prof.Start(opts)
	return err
}

// finish stops profiling, reports timings, dumps recent trace history on
// failure and closes the tracer.
func (s *session) finish(runErr error) {
	if err := s.prof.Stop(); err != nil {
		fmt.Fprintf(s.stderr, "profile: %v\n", err)
	}
	if s.timer != nil {
		fmt.Fprint(s.stderr, s.timer.Summary())
	}
	if s.tracer == nil {
		return
	}
	if runErr != nil {
		dumpRing(s.stderr, s.tracer)
	}
	if err := s.tracer.Close(); err != nil {
		fmt.Fprintf(s.stderr, "trace: close error: %v\n", err)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	s := &session{stderr: os.Stderr}
	rootCmd := newRootCmd(s)

	err := rootCmd.ExecuteContext(ctx)
	s.finish(err)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
