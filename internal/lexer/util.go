package lexer

import "unicode"

// Классификаторы. Все возвращают false для eof.

func notNewline(r rune) bool { return r != eof && r != '\n' }

// isWhitespace follows the Unicode White_Space property.
func isWhitespace(r rune) bool {
	return r >= 0 && unicode.Is(unicode.White_Space, r)
}

func isInlineWhitespace(r rune) bool {
	return r != '\n' && isWhitespace(r)
}

func isDec(r rune) bool { return r >= '0' && r <= '9' }

func isDecOrUnderscore(r rune) bool { return isDec(r) || r == '_' }

// isAlphabetic follows the Unicode Alphabetic property:
// letters, letter numbers and Other_Alphabetic.
func isAlphabetic(r rune) bool {
	if r < 0 {
		return false
	}
	if r < utf8RuneSelf {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_Alphabetic, r)
}

// isIdentStart approximates XID_Start plus '_'.
func isIdentStart(r rune) bool {
	if r < 0 {
		return false
	}
	if r < utf8RuneSelf {
		return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_ID_Start, r)
}

// isIdentContinue approximates XID_Continue.
func isIdentContinue(r rune) bool {
	if r < 0 {
		return false
	}
	if r < utf8RuneSelf {
		return r == '_' || isDec(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	return isIdentStart(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}

const utf8RuneSelf = 0x80
