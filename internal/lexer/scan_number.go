package lexer

import (
	"slices"
	"strings"

	"sesh/internal/token"
)

// Suffix tables. Order is the order shown in help text.
var (
	sizeSuffixes     = []string{"b", "kb", "mb", "gb", "kib", "mib", "gib"}
	durationSuffixes = []string{"day", "hr", "min", "s", "ms", "us", "ns"}
)

// scanNumber finishes a numeric literal whose first digit is already
// consumed. It runs in three stages, each with its own error span:
//
//  1. integer body: [0-9_]*
//  2. fraction: '.' [0-9] [0-9_]*; a '.' without a digit after it is
//     consumed and reported as FloatWithoutFractional over the whole token
//  3. unit suffix: an alphabetic run classified as a size or duration;
//     anything else is UnknownNumericSuffix over just the suffix
func (lx *Lexer) scanNumber(start Mark) (token.Kind, Error) {
	kind := token.Int
	lx.cursor.EatWhile(isDecOrUnderscore)

	if lx.cursor.First() == '.' {
		if !isDec(lx.cursor.Second()) {
			lx.cursor.Bump() // '.'
			return token.Float, &FloatWithoutFractional{Span: lx.cursor.SpanFrom(start)}
		}
		lx.cursor.Bump() // '.'
		lx.cursor.Bump() // первая цифра дробной части
		lx.cursor.EatWhile(isDecOrUnderscore)
		kind = token.Float
	}

	if !isAlphabetic(lx.cursor.First()) {
		return kind, nil
	}

	suffixStart := lx.cursor.Mark()
	lx.cursor.EatWhile(isAlphabetic)
	suffix := string(lx.cursor.TextFrom(suffixStart))
	switch {
	case slices.Contains(sizeSuffixes, suffix):
		return token.Size, nil
	case slices.Contains(durationSuffixes, suffix):
		return token.Duration, nil
	default:
		return kind, &UnknownNumericSuffix{Suffix: suffix, Span: lx.cursor.SpanFrom(suffixStart)}
	}
}

// SizeSuffixes returns the accepted size units.
func SizeSuffixes() []string { return slices.Clone(sizeSuffixes) }

// DurationSuffixes returns the accepted duration units.
func DurationSuffixes() []string { return slices.Clone(durationSuffixes) }

func suffixHelp() string {
	return "valid size suffixes are " + strings.Join(sizeSuffixes, ", ") +
		"; valid duration suffixes are " + strings.Join(durationSuffixes, ", ")
}
