package source

import (
	"fmt"
)

// Span is a half-open [Start, End) range inside one file.
// Offsets count runes consumed by the lexer, not bytes.
type Span struct {
	File  FileID
	Start uint32 // включительно
	End   uint32 // не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

// String renders the span as file:start-end.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Range renders only the offsets, as start..end.
func (s Span) Range() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
// Spans from different files are not merged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Contains reports whether the offset lies inside the span.
func (s Span) Contains(off uint32) bool {
	return off >= s.Start && off < s.End
}
