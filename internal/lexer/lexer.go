package lexer

import (
	"sesh/internal/source"
	"sesh/internal/symbol"
	"sesh/internal/token"
)

// Lexer turns a source file into tokens, one call to Next at a time.
// It keeps every character: whitespace, newlines and comments are tokens too,
// so the spans of all tokens tile the input exactly.
type Lexer struct {
	file   *source.File
	cursor Cursor
}

// New creates a lexer positioned at the start of file.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Next scans one token. It returns ok == false once input is exhausted.
// err is non-nil when the token is malformed; the token is still valid and
// scanning may continue.
func (lx *Lexer) Next() (tok token.Token, err Error, ok bool) {
	if lx.cursor.EOF() {
		return token.Token{}, nil, false
	}

	start := lx.cursor.Mark()
	first := lx.cursor.Bump()
	var (
		kind token.Kind
		sym  symbol.Symbol
	)

	switch {
	case first == '\n':
		kind = token.Newline
	case first == '/' && lx.cursor.First() == '/':
		kind = lx.scanComment()
	case isWhitespace(first):
		kind = lx.scanWhitespace()
	case first == '"':
		kind, err = lx.scanString(start)
	case isDec(first):
		kind, err = lx.scanNumber(start)
	case isIdentStart(first):
		kind, sym = lx.scanIdentOrKeyword(start)
	default:
		kind = lx.scanPunctOrOp(first)
	}

	tok = token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start), Sym: sym}
	return tok, err, true
}

// Lex scans src to the end and returns every token together with the
// errors found along the way. Spans use file ID 0.
func Lex(src string) ([]token.Token, *Sink) {
	return LexFile(source.NewFile("<input>", []byte(src)))
}

// LexFile scans a whole file. Scanning never stops early: all errors are
// collected in the returned sink in the order they were found.
func LexFile(file *source.File) ([]token.Token, *Sink) {
	lx := New(file)
	sink := NewSink()
	tokens := make([]token.Token, 0, len(file.Content)/3+1)
	for {
		tok, err, ok := lx.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
		if err != nil {
			sink.Push(err)
		}
	}
	return tokens, sink
}
