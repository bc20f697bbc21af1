package token

import "strconv"

// Kind represents the category of a source token.
// The set is closed; TestEveryKindHasName guards additions.
type Kind uint8

const (
	// Comment is a `//` comment up to, not including, the newline.
	Comment Kind = iota
	// Whitespace is a run of white space other than '\n'.
	Whitespace
	// Newline is a single '\n'.
	Newline

	OpenParen    // (
	CloseParen   // )
	OpenBracket  // [
	CloseBracket // ]
	Colon        // :
	Equals       // =
	Comma        // ,
	Pipe         // |

	Add // +
	Sub // -
	Mul // *
	Div // /
	Pow // ^
	Rem // %
	And // &&
	Or  // ||
	Not // !

	// Ident is any identifier that is not a keyword or type name.
	Ident
	LetKw   // let
	FnKw    // fn
	IfKw    // if
	ElseKw  // else
	ForKw   // for
	InKw    // in
	WhileKw // while

	StringTy   // String
	IntTy      // Int
	FloatTy    // Float
	BoolTy     // Bool
	SizeTy     // Size
	DurationTy // Duration
	DateTy     // Date
	TimeTy     // Time
	DateTimeTy // DateTime

	// String is a double-quoted string literal.
	String
	// Int is an integer literal, e.g. 1_000.
	Int
	// Float is a float literal, e.g. 3.14.
	Float
	// Bool is `true` or `false`.
	Bool
	// Size is a number with a size suffix, e.g. 42kb.
	Size
	// Duration is a number with a duration suffix, e.g. 10ms.
	Duration

	// Unknown is any character the lexer does not recognise.
	Unknown

	// NumKinds is the number of kinds; not a real kind.
	NumKinds
)

var kindNames = [...]string{
	Comment:    "Comment",
	Whitespace: "Whitespace",
	Newline:    "Newline",

	OpenParen:    "OpenParen",
	CloseParen:   "CloseParen",
	OpenBracket:  "OpenBracket",
	CloseBracket: "CloseBracket",
	Colon:        "Colon",
	Equals:       "Equals",
	Comma:        "Comma",
	Pipe:         "Pipe",

	Add: "Add",
	Sub: "Sub",
	Mul: "Mul",
	Div: "Div",
	Pow: "Pow",
	Rem: "Rem",
	And: "And",
	Or:  "Or",
	Not: "Not",

	Ident:   "Ident",
	LetKw:   "LetKw",
	FnKw:    "FnKw",
	IfKw:    "IfKw",
	ElseKw:  "ElseKw",
	ForKw:   "ForKw",
	InKw:    "InKw",
	WhileKw: "WhileKw",

	StringTy:   "StringTy",
	IntTy:      "IntTy",
	FloatTy:    "FloatTy",
	BoolTy:     "BoolTy",
	SizeTy:     "SizeTy",
	DurationTy: "DurationTy",
	DateTy:     "DateTy",
	TimeTy:     "TimeTy",
	DateTimeTy: "DateTimeTy",

	String:   "String",
	Int:      "Int",
	Float:    "Float",
	Bool:     "Bool",
	Size:     "Size",
	Duration: "Duration",

	Unknown: "Unknown",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind returns the kind with the given String() name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// IsTrivia reports whether the kind carries no meaning for a parser.
func (k Kind) IsTrivia() bool {
	return k == Comment || k == Whitespace || k == Newline
}

// IsPunct reports whether the kind is a delimiter or separator.
func (k Kind) IsPunct() bool {
	return k >= OpenParen && k <= Pipe
}

// IsOperator reports whether the kind is an arithmetic or logical operator.
func (k Kind) IsOperator() bool {
	return k >= Add && k <= Not
}

// IsKeyword reports whether the kind is a statement keyword.
func (k Kind) IsKeyword() bool {
	return k >= LetKw && k <= WhileKw
}

// IsTypeName reports whether the kind is a built-in type name.
func (k Kind) IsTypeName() bool {
	return k >= StringTy && k <= DateTimeTy
}

// IsLiteral reports whether the kind is a literal value.
func (k Kind) IsLiteral() bool {
	return k >= String && k <= Duration
}
