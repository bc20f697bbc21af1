package lexer

import "sesh/internal/token"

// scanComment consumes the rest of a `//` comment; the newline is left for
// the next token.
func (lx *Lexer) scanComment() token.Kind {
	lx.cursor.EatWhile(notNewline)
	return token.Comment
}

// scanWhitespace coalesces a run of white space. '\n' always stands alone.
func (lx *Lexer) scanWhitespace() token.Kind {
	lx.cursor.EatWhile(isInlineWhitespace)
	return token.Whitespace
}
