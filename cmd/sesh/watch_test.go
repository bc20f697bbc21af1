package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"sesh/internal/observ"
)

func TestWatchStepRunsUnderGivenContext(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "w.sel", "let x = 1\n")

	root := newRootCmd(&session{stderr: io.Discard})
	cmd, _, err := root.Find([]string{"watch", path})
	if err != nil {
		t.Fatalf("find watch: %v", err)
	}
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	// cmd.Context() is nil here: only ctx may reach the driver
	timer := observ.NewTimer()
	ctx := observ.WithTimer(context.Background(), timer)
	if err := watchStep(ctx, cmd, path); err != nil {
		t.Fatalf("watchStep: %v", err)
	}
	if stdout.String() != path+": ok\n" {
		t.Fatalf("unexpected output %q", stdout.String())
	}
	if summary := timer.Summary(); !strings.Contains(summary, "load") || !strings.Contains(summary, "execute") {
		t.Fatalf("phases were not recorded on ctx's timer:\n%s", summary)
	}
}
