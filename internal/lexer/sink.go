package lexer

import "sesh/internal/diag"

// Sink collects lexical errors in the order they are found.
type Sink struct {
	errs []Error
}

// NewSink returns an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Push appends err.
func (s *Sink) Push(err Error) {
	s.errs = append(s.errs, err)
}

// HasErrors reports whether anything was pushed.
func (s *Sink) HasErrors() bool {
	return s != nil && len(s.errs) > 0
}

// Len returns the number of collected errors.
func (s *Sink) Len() int {
	if s == nil {
		return 0
	}
	return len(s.errs)
}

// Errors returns the collected errors. Do not modify the slice.
func (s *Sink) Errors() []Error {
	if s == nil {
		return nil
	}
	return s.errs
}

// Report forwards every error to r as a diagnostic, in order.
func (s *Sink) Report(r diag.Reporter) {
	if s == nil || r == nil {
		return
	}
	for _, err := range s.errs {
		r.Report(err.Diagnostic())
	}
}
