// Package symbol interns short, frequently repeated strings such as
// identifiers and numeric suffixes.
//
// The table is process-wide: it is built on first use, only ever grows and
// is never torn down. Symbols are small value handles that compare by
// equality and are safe to copy between goroutines.
package symbol

import (
	"fmt"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// Symbol is an opaque handle for an interned string.
// The zero Symbol stands for the empty string.
type Symbol uint32

// None is the handle of the empty string.
const None Symbol = 0

// Table maps strings to Symbols. The zero value is not usable; call NewTable.
type Table struct {
	mu    sync.RWMutex
	byID  []string          // byID[0] = "" для None
	index map[string]Symbol // строка -> ID
}

// NewTable returns an empty table with None pre-registered.
func NewTable() *Table {
	return &Table{
		byID:  []string{""},
		index: map[string]Symbol{"": None},
	}
}

// Intern returns the symbol for s, inserting it when missing.
// Strings are NFC-normalised first so canonically equivalent spellings of
// an identifier share one handle.
func (t *Table) Intern(s string) Symbol {
	s = norm.NFC.String(s)

	t.mu.RLock()
	id, ok := t.index[s]
	t.mu.RUnlock()
	if ok {
		return id
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.index[s]; ok {
		return id
	}
	// собственная копия, чтобы не держать исходный буфер
	cpy := string([]byte(s))
	id = Symbol(len(t.byID))
	t.byID = append(t.byID, cpy)
	t.index[cpy] = id
	return id
}

// Lookup returns the string for id. Unknown ids yield "", false.
func (t *Table) Lookup(id Symbol) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(id) >= len(t.byID) {
		return "", false
	}
	return t.byID[id], true
}

// MustLookup is Lookup that panics on unknown ids.
func (t *Table) MustLookup(id Symbol) string {
	s, ok := t.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("symbol: invalid id %d", id))
	}
	return s
}

// Len returns the number of stored strings, None included.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byID)
}

var global = sync.OnceValue(NewTable)

// Intern interns s in the process-wide table.
func Intern(s string) Symbol {
	return global().Intern(s)
}

// Len reports the size of the process-wide table.
func Len() int {
	return global().Len()
}

// String resolves the symbol through the process-wide table.
func (s Symbol) String() string {
	str, _ := global().Lookup(s)
	return str
}

// GoString quotes the resolved text, for %#v.
func (s Symbol) GoString() string {
	return fmt.Sprintf("%q", s.String())
}
