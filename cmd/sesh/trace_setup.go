package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"sesh/internal/trace"
)

// setupTracing inspects trace-related flags and builds the tracer.
// Passing --trace without --trace-level traces at phase level.
func setupTracing(cmd *cobra.Command) (trace.Tracer, error) {
	flags := cmd.Flags()

	traceOutput, err := flags.GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	if traceOutput != "" && !flags.Changed("trace-level") {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		return trace.Nop, nil
	}

	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     trace.FormatAuto,
		Output:     streamOutput(cmd, traceOutput),
		OutputPath: traceOutput,
		RingSize:   ringSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	return tracer, nil
}

// streamOutput maps "-" and the empty path to the command's stderr.
func streamOutput(cmd *cobra.Command, path string) io.Writer {
	if path == "" || path == "-" {
		return cmd.ErrOrStderr()
	}
	return nil
}

// dumpRing prints the events held in memory, if the tracer keeps any.
func dumpRing(w io.Writer, tracer trace.Tracer) {
	var ring *trace.RingTracer
	switch t := tracer.(type) {
	case *trace.RingTracer:
		ring = t
	case *trace.Tee:
		ring = t.Ring()
	}
	if ring == nil {
		return
	}
	fmt.Fprintln(w, "trace: recent events")
	if err := ring.Dump(w, trace.FormatText); err != nil {
		fmt.Fprintf(w, "trace: dump error: %v\n", err)
	}
}
