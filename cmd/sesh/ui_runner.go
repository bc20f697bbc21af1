package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sesh/internal/driver"
	"sesh/internal/source"
	"sesh/internal/ui"
)

type tokenizeOutcome struct {
	fileSet *source.FileSet
	results []driver.TokenizeDirResult
	err     error
}

// tokenizeDirWithUI runs driver.TokenizeDir while a progress view renders
// its events on stderr.
func tokenizeDirWithUI(ctx context.Context, dir string, opts driver.TokenizeDirOptions) (*source.FileSet, []driver.TokenizeDirResult, error) {
	files, err := driver.ListSources(dir)
	if err != nil {
		return nil, nil, err
	}
	events := make(chan driver.Event, 256)
	opts.Events = events
	outcomeCh := make(chan tokenizeOutcome, 1)

	go func() {
		fs, results, err := driver.TokenizeDir(ctx, dir, opts)
		outcomeCh <- tokenizeOutcome{fileSet: fs, results: results, err: err}
	}()

	model := ui.NewProgressModel("tokenize "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// the view may quit early (Ctrl+C); keep the driver from blocking on it
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
