package lexer

import (
	"sesh/internal/source"
	"sesh/internal/token"
)

// scanString consumes a string literal whose opening quote is already
// consumed. Only `\\` and `\"` are escapes; any other backslash pair is two
// plain characters. At EOF the token runs to the end of input and the error
// points at the opening quote only.
func (lx *Lexer) scanString(start Mark) (token.Kind, Error) {
	for !lx.cursor.EOF() {
		switch lx.cursor.Bump() {
		case '"':
			return token.String, nil
		case '\\':
			if next := lx.cursor.First(); next == '\\' || next == '"' {
				lx.cursor.Bump()
			}
		}
	}
	quote := source.Span{File: lx.file.ID, Start: start.off, End: start.off + 1}
	return token.String, &UnterminatedString{Span: quote}
}
