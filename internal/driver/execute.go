package driver

import (
	"context"
	"errors"
	"fmt"

	"sesh/internal/diag"
	"sesh/internal/observ"
	"sesh/internal/selene"
	"sesh/internal/source"
	"sesh/internal/trace"
)

// ExecResult is the outcome of running one file.
type ExecResult struct {
	FileSet *source.FileSet
	File    *source.File
	// Err is the execution error (nil on success), an *selene.ExecError
	// for lexical failures.
	Err error
	Bag *diag.Bag
}

// Execute loads path and runs it through selene.ExecuteFile.
// The returned error is only for I/O failures.
func Execute(ctx context.Context, path string, maxDiagnostics int) (*ExecResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopePass, "execute")
	defer span.End("")
	timer := observ.TimerFrom(ctx)

	done := timer.Track("load")
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	done(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	file := fs.Get(fileID)

	done = timer.Track("execute")
	execErr := selene.ExecuteFile(file)
	done("")

	bag := diag.NewBag(maxDiagnostics)
	var ee *selene.ExecError
	if errors.As(execErr, &ee) {
		ee.Report(diag.BagReporter{Bag: bag})
		span.Set("errors", fmt.Sprint(len(ee.Errors())))
	}
	return &ExecResult{FileSet: fs, File: file, Err: execErr, Bag: bag}, nil
}
