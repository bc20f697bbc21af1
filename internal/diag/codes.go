package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                   Code = 1000
	LexUnterminatedString     Code = 1001
	LexFloatWithoutFractional Code = 1002
	LexUnknownNumericSuffix   Code = 1003

	// Ввод-вывод
	IOInfo      Code = 4000
	IOReadError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:               "Unknown error",
	LexInfo:                   "Lexical information",
	LexUnterminatedString:     "Unterminated string",
	LexFloatWithoutFractional: "Float without fractional part",
	LexUnknownNumericSuffix:   "Unknown numeric suffix",
	IOInfo:                    "I/O information",
	IOReadError:               "Cannot read source",
}

// ID returns the stable short identifier, e.g. LEX1001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable name of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
