package lexer

import (
	"fmt"
	"unicode/utf8"

	"sesh/internal/source"

	"fortio.org/safecast"
)

// eof is returned by the peek helpers past the end of input.
const eof rune = -1

// Cursor walks a file rune by rune. Off counts runes consumed; pos is the
// matching byte position in File.Content.
type Cursor struct {
	File *source.File
	Off  uint32
	pos  int
}

// NewCursor creates a cursor at the start of f.
func NewCursor(f *source.File) Cursor {
	if _, err := safecast.Conv[uint32](len(f.Content)); err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f}
}

// EOF reports whether all input has been consumed.
func (c *Cursor) EOF() bool {
	return c.pos >= len(c.File.Content)
}

func (c *Cursor) decodeAt(pos int) (rune, int) {
	if pos >= len(c.File.Content) {
		return eof, 0
	}
	if b := c.File.Content[pos]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.File.Content[pos:])
}

// First returns the next rune without consuming it, or eof.
func (c *Cursor) First() rune {
	r, _ := c.decodeAt(c.pos)
	return r
}

// Second returns the rune after First without consuming anything, or eof.
func (c *Cursor) Second() rune {
	_, sz := c.decodeAt(c.pos)
	if sz == 0 {
		return eof
	}
	r, _ := c.decodeAt(c.pos + sz)
	return r
}

// Bump consumes and returns the next rune, or eof at the end of input.
// Invalid UTF-8 is consumed one byte at a time as utf8.RuneError.
func (c *Cursor) Bump() rune {
	r, sz := c.decodeAt(c.pos)
	if sz == 0 {
		return eof
	}
	c.pos += sz
	c.Off++
	return r
}

// Eat consumes the next rune if it equals r.
func (c *Cursor) Eat(r rune) bool {
	if c.First() == r && r != eof {
		c.Bump()
		return true
	}
	return false
}

// EatWhile consumes runes while pred holds.
func (c *Cursor) EatWhile(pred func(rune) bool) {
	for !c.EOF() && pred(c.First()) {
		c.Bump()
	}
}

// Mark is a saved cursor position.
type Mark struct {
	off uint32
	pos int
}

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, pos: c.pos}
}

// SpanFrom returns the span from m to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: m.off,
		End:   c.Off,
	}
}

// TextFrom returns the bytes consumed since m.
func (c *Cursor) TextFrom(m Mark) []byte {
	return c.File.Content[m.pos:c.pos]
}

// Reset moves the cursor back to m.
func (c *Cursor) Reset(m Mark) {
	c.Off = m.off
	c.pos = m.pos
}
