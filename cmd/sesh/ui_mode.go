package main

import (
	"fmt"
	"strings"
)

// uiMode selects the progress view for `tokenize DIR`.
type uiMode uint8

const (
	uiAuto uiMode = iota // on when stderr is a terminal
	uiOn
	uiOff
)

var uiModes = map[string]uiMode{"": uiAuto, "auto": uiAuto, "on": uiOn, "off": uiOff}

func readUIMode(value string) (uiMode, error) {
	m, ok := uiModes[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return uiAuto, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
	return m, nil
}

// enabled resolves the mode; the view draws on stderr, so auto follows
// whether stderr is a terminal.
func (m uiMode) enabled(stderrIsTerminal bool) bool {
	switch m {
	case uiOn:
		return true
	case uiOff:
		return false
	}
	return stderrIsTerminal
}
