package diag

import (
	"sesh/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one finding anchored to a primary span.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	// Label is printed next to the underline of Primary.
	Label string
	// Help is an optional remediation hint.
	Help  string
	Notes []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithLabel(label string) Diagnostic {
	d.Label = label
	return d
}

func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
