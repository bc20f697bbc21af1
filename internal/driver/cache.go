package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"sesh/internal/diag"
	"sesh/internal/lexer"
	"sesh/internal/source"
	"sesh/internal/symbol"
	"sesh/internal/token"
)

// Current schema version - increment when the lexer or the entry format
// changes in a way that alters output for the same input.
const tokenCacheSchema uint16 = 1

// TokenCache stores lexer output on disk keyed by the sha256 of the file
// content. Entries are msgpack encoded. Thread-safe.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

type cachedToken struct {
	Kind  uint8  `msgpack:"k"`
	Start uint32 `msgpack:"s"`
	End   uint32 `msgpack:"e"`
}

type cachedError struct {
	Code   uint16 `msgpack:"c"`
	Start  uint32 `msgpack:"s"`
	End    uint32 `msgpack:"e"`
	Suffix string `msgpack:"x,omitempty"`
}

type cacheEntry struct {
	Schema uint16        `msgpack:"v"`
	Tokens []cachedToken `msgpack:"t"`
	Errors []cachedError `msgpack:"r"`
}

// DefaultCacheDir returns $XDG_CACHE_HOME/sesh/tokens (or ~/.cache/...).
func DefaultCacheDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "sesh", "tokens"), nil
}

// OpenTokenCache creates dir if needed and returns a cache rooted there.
func OpenTokenCache(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("open token cache: %w", err)
	}
	return &TokenCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *TokenCache) Dir() string { return c.dir }

func (c *TokenCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, hexKey[:2], hexKey+".mp")
}

// Put stores the lexer output for file.
func (c *TokenCache) Put(file *source.File, tokens []token.Token, sink *lexer.Sink) error {
	if c == nil {
		return nil
	}
	entry := cacheEntry{
		Schema: tokenCacheSchema,
		Tokens: make([]cachedToken, len(tokens)),
		Errors: make([]cachedError, 0, sink.Len()),
	}
	for i, tok := range tokens {
		entry.Tokens[i] = cachedToken{Kind: uint8(tok.Kind), Start: tok.Span.Start, End: tok.Span.End}
	}
	for _, err := range sink.Errors() {
		ce := cachedError{Code: uint16(err.Code()), Start: err.Primary().Start, End: err.Primary().End}
		if se, ok := err.(*lexer.UnknownNumericSuffix); ok {
			ce.Suffix = se.Suffix
		}
		entry.Errors = append(entry.Errors, ce)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(file.Hash)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name()) //nolint:errcheck

	if err := msgpack.NewEncoder(f).Encode(&entry); err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get returns the cached output for file. ok is false on a miss; entries
// from an older schema or that do not fit the file count as misses.
func (c *TokenCache) Get(file *source.File) (tokens []token.Token, sink *lexer.Sink, ok bool, err error) {
	if c == nil {
		return nil, nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(file.Hash))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, false, nil
		}
		return nil, nil, false, err
	}
	var entry cacheEntry
	if err := msgpack.Unmarshal(data, &entry); err != nil {
		return nil, nil, false, fmt.Errorf("decode cache entry: %w", err)
	}
	if entry.Schema != tokenCacheSchema {
		return nil, nil, false, nil
	}

	tokens = make([]token.Token, len(entry.Tokens))
	for i, ct := range entry.Tokens {
		if ct.Kind >= uint8(token.NumKinds) || ct.End > file.RuneLen {
			return nil, nil, false, nil
		}
		tok := token.Token{
			Kind: token.Kind(ct.Kind),
			Span: source.Span{File: file.ID, Start: ct.Start, End: ct.End},
		}
		if tok.Kind == token.Ident {
			tok.Sym = symbol.Intern(file.Text(tok.Span))
		}
		tokens[i] = tok
	}

	sink = lexer.NewSink()
	for _, ce := range entry.Errors {
		lerr := restoreError(ce, file.ID)
		if lerr == nil {
			return nil, nil, false, nil
		}
		sink.Push(lerr)
	}
	return tokens, sink, true, nil
}

func restoreError(ce cachedError, id source.FileID) lexer.Error {
	sp := source.Span{File: id, Start: ce.Start, End: ce.End}
	switch diag.Code(ce.Code) {
	case diag.LexUnterminatedString:
		return &lexer.UnterminatedString{Span: sp}
	case diag.LexFloatWithoutFractional:
		return &lexer.FloatWithoutFractional{Span: sp}
	case diag.LexUnknownNumericSuffix:
		return &lexer.UnknownNumericSuffix{Suffix: ce.Suffix, Span: sp}
	default:
		return nil
	}
}

// DropAll removes every entry.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.RemoveAll(c.dir); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
