package token

// reserved maps every reserved word to its kind.
// `true` and `false` are literals rather than keywords but live here so the
// lexer needs a single lookup.
var reserved = map[string]Kind{
	"true":  Bool,
	"false": Bool,

	"let":   LetKw,
	"fn":    FnKw,
	"if":    IfKw,
	"else":  ElseKw,
	"for":   ForKw,
	"in":    InKw,
	"while": WhileKw,

	"String":   StringTy,
	"Int":      IntTy,
	"Float":    FloatTy,
	"Bool":     BoolTy,
	"Size":     SizeTy,
	"Duration": DurationTy,
	"Date":     DateTy,
	"Time":     TimeTy,
	"DateTime": DateTimeTy,
}

// LookupKeyword returns the kind for a reserved word.
// Matching is exact and case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := reserved[ident]
	return k, ok
}

// Keywords returns the reserved words, keyword and type names only.
func Keywords() []string {
	out := make([]string, 0, len(reserved))
	for w, k := range reserved {
		if k != Bool {
			out = append(out, w)
		}
	}
	return out
}
