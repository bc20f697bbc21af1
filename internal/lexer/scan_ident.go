package lexer

import (
	"sesh/internal/symbol"
	"sesh/internal/token"
)

// scanIdentOrKeyword finishes an identifier whose first character is already
// consumed and checks it against the reserved words (case-sensitive).
// Plain identifiers are interned.
func (lx *Lexer) scanIdentOrKeyword(start Mark) (token.Kind, symbol.Symbol) {
	lx.cursor.EatWhile(isIdentContinue)
	text := string(lx.cursor.TextFrom(start))
	if k, ok := token.LookupKeyword(text); ok {
		return k, symbol.None
	}
	return token.Ident, symbol.Intern(text)
}
