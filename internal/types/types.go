package types

import (
	"fmt"

	"sesh/internal/token"
)

// Kind enumerates the built-in Selene types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindUnit
	KindString
	KindInt
	KindFloat
	KindBool
	KindSize
	KindDuration
	KindDate
	KindTime
	KindDateTime
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindUnit:
		return "Unit"
	case KindString:
		return "String"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	case KindSize:
		return "Size"
	case KindDuration:
		return "Duration"
	case KindDate:
		return "Date"
	case KindTime:
		return "Time"
	case KindDateTime:
		return "DateTime"
	case KindList:
		return "List"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Type describes a value type. Elem is set only for lists.
type Type struct {
	Kind Kind
	Elem *Type
}

// Predeclared scalar types.
var (
	Unit     = Type{Kind: KindUnit}
	String   = Type{Kind: KindString}
	Int      = Type{Kind: KindInt}
	Float    = Type{Kind: KindFloat}
	Bool     = Type{Kind: KindBool}
	Size     = Type{Kind: KindSize}
	Duration = Type{Kind: KindDuration}
	Date     = Type{Kind: KindDate}
	Time     = Type{Kind: KindTime}
	DateTime = Type{Kind: KindDateTime}
)

// List returns the list type with element elem.
func List(elem Type) Type {
	return Type{Kind: KindList, Elem: &elem}
}

// IsValid reports whether t is a known type.
func (t Type) IsValid() bool {
	return t.Kind != KindInvalid && (t.Kind != KindList || t.Elem != nil && t.Elem.IsValid())
}

// Equal compares types structurally.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind != KindList {
		return true
	}
	if t.Elem == nil || other.Elem == nil {
		return t.Elem == other.Elem
	}
	return t.Elem.Equal(*other.Elem)
}

// String renders scalars by name and lists in Selene syntax, e.g. [Int].
func (t Type) String() string {
	if t.Kind == KindList && t.Elem != nil {
		return "[" + t.Elem.String() + "]"
	}
	return t.Kind.String()
}

var byKeyword = map[token.Kind]Type{
	token.StringTy:   String,
	token.IntTy:      Int,
	token.FloatTy:    Float,
	token.BoolTy:     Bool,
	token.SizeTy:     Size,
	token.DurationTy: Duration,
	token.DateTy:     Date,
	token.TimeTy:     Time,
	token.DateTimeTy: DateTime,
}

// FromKeyword maps a type-name token kind to its type.
func FromKeyword(k token.Kind) (Type, bool) {
	t, ok := byKeyword[k]
	return t, ok
}

// OfLiteral returns the type a literal token evaluates to.
func OfLiteral(k token.Kind) (Type, bool) {
	switch k {
	case token.String:
		return String, true
	case token.Int:
		return Int, true
	case token.Float:
		return Float, true
	case token.Bool:
		return Bool, true
	case token.Size:
		return Size, true
	case token.Duration:
		return Duration, true
	default:
		return Type{}, false
	}
}
