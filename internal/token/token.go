package token

import (
	"sesh/internal/source"
	"sesh/internal/symbol"
)

// Token is a classified fragment of source text.
type Token struct {
	Kind Kind
	Span source.Span
	// Sym is the interned identifier text; set only for Ident.
	Sym symbol.Symbol
}

// IsTrivia reports whether the token is whitespace, a newline or a comment.
func (t Token) IsTrivia() bool { return t.Kind.IsTrivia() }

// IsLiteral reports whether the token is a string, numeric or boolean literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsReserved reports whether the token is a keyword or a built-in type name.
func (t Token) IsReserved() bool { return t.Kind.IsKeyword() || t.Kind.IsTypeName() }
