package lexer

import "sesh/internal/token"

// scanPunctOrOp classifies a punctuation or operator character that has
// already been consumed. Two-character operators (`||`, `&&`) consume their
// second character here. Anything unrecognised is Unknown.
func (lx *Lexer) scanPunctOrOp(first rune) token.Kind {
	switch first {
	case '(':
		return token.OpenParen
	case ')':
		return token.CloseParen
	case '[':
		return token.OpenBracket
	case ']':
		return token.CloseBracket
	case ':':
		return token.Colon
	case ',':
		return token.Comma
	case '=':
		return token.Equals
	case '|':
		if lx.cursor.Eat('|') {
			return token.Or
		}
		return token.Pipe
	case '+':
		return token.Add
	case '-':
		return token.Sub
	case '*':
		return token.Mul
	case '/':
		// `//` was taken by scanComment
		return token.Div
	case '^':
		return token.Pow
	case '%':
		return token.Rem
	case '&':
		if lx.cursor.Eat('&') {
			return token.And
		}
		// одиночный '&' не оператор
		return token.Unknown
	case '!':
		return token.Not
	default:
		return token.Unknown
	}
}
