package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // record into the ring only, dump on failure
	LevelPhase               // commands and passes
	LevelDetail              // plus files
	LevelDebug               // plus tokens and errors
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a string to a Level (case-insensitive).
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// Scope indicates the granularity of an event. Lower values are coarser.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // CLI command
	ScopePass                    // lex, execute, tokenize-dir
	ScopeFile                    // one source file
	ScopeToken                   // individual tokens and errors
)

var scopeNames = [...]string{"", "driver", "pass", "file", "token"}

func (s Scope) String() string {
	if s > 0 && int(s) < len(scopeNames) {
		return scopeNames[s]
	}
	return "unknown"
}

// Includes reports whether events of scope are written at this level.
func (l Level) Includes(scope Scope) bool {
	switch l {
	case LevelPhase:
		return scope <= ScopePass
	case LevelDetail:
		return scope <= ScopeFile
	case LevelDebug:
		return true
	default:
		return false
	}
}

// keeps is Includes for the ring: at LevelError the ring still collects
// everything so a failure has history to dump.
func (l Level) keeps(scope Scope) bool {
	return l == LevelError || l.Includes(scope)
}
