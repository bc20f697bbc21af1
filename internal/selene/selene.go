// Package selene is the entry point for running Selene source.
// Today execution means lexing; later phases plug in here.
package selene

import (
	"fmt"

	"sesh/internal/diag"
	"sesh/internal/lexer"
	"sesh/internal/source"
)

// ExecError aggregates every error found while executing a source.
type ExecError struct {
	Sink *lexer.Sink
}

func (e *ExecError) Error() string {
	n := e.Sink.Len()
	if n == 1 {
		return "execution failed with 1 error"
	}
	return fmt.Sprintf("execution failed with %d errors", n)
}

// Errors returns the individual errors in discovery order.
func (e *ExecError) Errors() []lexer.Error {
	return e.Sink.Errors()
}

// Unwrap exposes each error to errors.Is and errors.As.
func (e *ExecError) Unwrap() []error {
	errs := e.Sink.Errors()
	out := make([]error, len(errs))
	for i, err := range errs {
		out[i] = err
	}
	return out
}

// Report feeds every error to r as its own diagnostic.
func (e *ExecError) Report(r diag.Reporter) {
	e.Sink.Report(r)
}

// Execute runs src. It returns nil on success or an *ExecError.
func Execute(src string) error {
	return ExecuteFile(source.NewFile("<input>", []byte(src)))
}

// ExecuteFile runs file; error spans carry file.ID.
func ExecuteFile(file *source.File) error {
	_, sink := lexer.LexFile(file)
	if sink.HasErrors() {
		return &ExecError{Sink: sink}
	}
	return nil
}
