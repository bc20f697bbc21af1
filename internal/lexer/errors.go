package lexer

import (
	"fmt"

	"sesh/internal/diag"
	"sesh/internal/source"
)

// Error is a recoverable lexical error. The set of implementations is
// closed: *UnterminatedString, *FloatWithoutFractional and
// *UnknownNumericSuffix.
type Error interface {
	error
	// Primary is the span the error points at.
	Primary() source.Span
	Code() diag.Code
	// Label is the text printed under the offending span.
	Label() string
	// Help is a remediation hint, possibly empty.
	Help() string
	// Diagnostic converts the error for rendering.
	Diagnostic() diag.Diagnostic

	lexError()
}

// UnterminatedString: input ended inside a string literal.
// Span covers only the opening quote.
type UnterminatedString struct {
	Span source.Span
}

func (e *UnterminatedString) Error() string        { return "unterminated string literal" }
func (e *UnterminatedString) Primary() source.Span { return e.Span }
func (e *UnterminatedString) Code() diag.Code      { return diag.LexUnterminatedString }
func (e *UnterminatedString) Label() string        { return "string starts here" }
func (e *UnterminatedString) Help() string         { return "add a closing `\"` to end the string" }
func (e *UnterminatedString) Diagnostic() diag.Diagnostic {
	return toDiagnostic(e)
}
func (*UnterminatedString) lexError() {}

// FloatWithoutFractional: a number ends in '.' with no digit after it.
// Span covers the whole number including the dot.
type FloatWithoutFractional struct {
	Span source.Span
}

func (e *FloatWithoutFractional) Error() string {
	return "float literal is missing its fractional part"
}
func (e *FloatWithoutFractional) Primary() source.Span { return e.Span }
func (e *FloatWithoutFractional) Code() diag.Code      { return diag.LexFloatWithoutFractional }
func (e *FloatWithoutFractional) Label() string        { return "expected a digit after `.`" }
func (e *FloatWithoutFractional) Help() string         { return "add a digit after the `.`, e.g. `1.0`" }
func (e *FloatWithoutFractional) Diagnostic() diag.Diagnostic {
	return toDiagnostic(e)
}
func (*FloatWithoutFractional) lexError() {}

// UnknownNumericSuffix: a number is followed by letters that name no unit.
// Span covers exactly the suffix, not the digits before it.
type UnknownNumericSuffix struct {
	Suffix string
	Span   source.Span
}

func (e *UnknownNumericSuffix) Error() string {
	return fmt.Sprintf("unknown numeric suffix `%s`", e.Suffix)
}
func (e *UnknownNumericSuffix) Primary() source.Span { return e.Span }
func (e *UnknownNumericSuffix) Code() diag.Code      { return diag.LexUnknownNumericSuffix }
func (e *UnknownNumericSuffix) Label() string        { return "unknown suffix" }
func (e *UnknownNumericSuffix) Help() string         { return suffixHelp() }
func (e *UnknownNumericSuffix) Diagnostic() diag.Diagnostic {
	return toDiagnostic(e)
}
func (*UnknownNumericSuffix) lexError() {}

func toDiagnostic(e Error) diag.Diagnostic {
	return diag.NewError(e.Code(), e.Primary(), e.Error()).
		WithLabel(e.Label()).
		WithHelp(e.Help())
}
