package trace

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format is the encoding of streamed and dumped events.
type Format uint8

const (
	FormatAuto   Format = iota // chosen from the output path
	FormatText                 // one indented line per event
	FormatNDJSON               // one JSON object per line
)

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	}
	return FormatAuto, fmt.Errorf("invalid trace format: %q (expected: auto|text|ndjson)", s)
}

// processStart anchors the elapsed time shown in text output.
var processStart = time.Now()

// FormatEvent encodes ev as a single newline-terminated line.
func FormatEvent(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		return encodeJSON(ev)
	}
	return encodeText(ev)
}

type jsonEvent struct {
	Time     time.Time `json:"time"`
	Seq      uint64    `json:"seq"`
	Kind     string    `json:"kind"`
	Scope    string    `json:"scope"`
	SpanID   uint64    `json:"span_id,omitempty"`
	ParentID uint64    `json:"parent_id,omitempty"`
	Name     string    `json:"name"`
	Detail   string    `json:"detail,omitempty"`
	Attrs    []Attr    `json:"attrs,omitempty"`
}

func encodeJSON(ev *Event) []byte {
	data, err := json.Marshal(jsonEvent{
		Time:     ev.Time,
		Seq:      ev.Seq,
		Kind:     ev.Kind.String(),
		Scope:    ev.Scope.String(),
		SpanID:   ev.SpanID,
		ParentID: ev.ParentID,
		Name:     ev.Name,
		Detail:   ev.Detail,
		Attrs:    ev.Attrs,
	})
	if err != nil {
		return nil
	}
	return append(data, '\n')
}

var kindMarks = [...]string{"?", "→", "←", "•"}

// encodeText renders "[elapsed] mark name (detail) k=v k=v". Child events
// are indented by one step.
func encodeText(ev *Event) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "[%9.3fms] ", float64(ev.Time.Sub(processStart))/float64(time.Millisecond))
	if ev.ParentID != 0 {
		b.WriteString("  ")
	}
	mark := kindMarks[0]
	if int(ev.Kind) < len(kindMarks) {
		mark = kindMarks[ev.Kind]
	}
	b.WriteString(mark + " " + ev.Name)
	if ev.Detail != "" {
		fmt.Fprintf(&b, " (%s)", ev.Detail)
	}
	for _, a := range ev.Attrs {
		fmt.Fprintf(&b, " %s=%s", a.Key, a.Value)
	}
	b.WriteByte('\n')
	return []byte(b.String())
}
