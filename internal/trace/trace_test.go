package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseLevelRoundTrip(t *testing.T) {
	for l := LevelOff; l <= LevelDebug; l++ {
		got, err := ParseLevel(strings.ToUpper(l.String()))
		if err != nil || got != l {
			t.Fatalf("ParseLevel(%q) = %v, %v", l.String(), got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLevelIncludes(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeToken, false},
		{LevelDebug, ScopeToken, true},
	}
	for _, tt := range tests {
		if got := tt.level.Includes(tt.scope); got != tt.want {
			t.Errorf("%v.Includes(%v) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	ctx := WithTracer(context.Background(), tr)

	ctx, outer := Start(ctx, ScopePass, "lex")
	_, inner := Start(ctx, ScopeFile, "file:a.sel")
	inner.Set("tokens", "12").End("")
	_, tok := Start(ctx, ScopeToken, "token") // не пишется на detail
	tok.End("")
	outer.End("done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d events:\n%s", len(lines), buf.String())
	}
	var ev jsonEvent
	if err := json.Unmarshal([]byte(lines[2]), &ev); err != nil {
		t.Fatal(err)
	}
	if ev.Kind != "end" || ev.Name != "file:a.sel" || ev.ParentID != outer.ID() {
		t.Fatalf("unexpected event %+v", ev)
	}
	if len(ev.Attrs) != 2 || ev.Attrs[0] != (Attr{Key: "tokens", Value: "12"}) || ev.Attrs[1].Key != "dur" {
		t.Fatalf("unexpected attrs %+v", ev.Attrs)
	}
	var last jsonEvent
	if err := json.Unmarshal([]byte(lines[3]), &last); err != nil {
		t.Fatal(err)
	}
	if last.Detail != "done" || last.Scope != "pass" || last.Seq <= ev.Seq {
		t.Fatalf("unexpected last event %+v", last)
	}
}

func TestTextFormat(t *testing.T) {
	ev := &Event{
		Time:     processStart.Add(1500 * time.Microsecond),
		Kind:     KindSpanEnd,
		Name:     "lex",
		Detail:   "ok",
		ParentID: 1,
		Attrs:    []Attr{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}},
	}
	got := string(FormatEvent(ev, FormatText))
	want := "[    1.500ms]   ← lex (ok) b=2 a=1\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRingTracerWraps(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(r, ScopeToken, name, "", 0)
	}
	snap := r.Snapshot()
	if len(snap) != 3 || snap[0].Name != "c" || snap[2].Name != "e" {
		t.Fatalf("snapshot = %+v", snap)
	}
	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Fatalf("dump:\n%s", buf.String())
	}
}

func TestRingTracerPartial(t *testing.T) {
	r := NewRingTracer(4, LevelDebug)
	Point(r, ScopeFile, "only", "", 0)
	if snap := r.Snapshot(); len(snap) != 1 || snap[0].Name != "only" {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestErrorLevelFeedsRingOnly(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelError, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Begin(tr, ScopeFile, "file:x.sel", 0).End("")
	if buf.Len() != 0 {
		t.Fatalf("stream wrote at error level: %q", buf.String())
	}
	ring := tr.(*Tee).Ring()
	if ring == nil || len(ring.Snapshot()) != 2 {
		t.Fatal("ring should keep begin and end")
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff, Mode: ModeStream})
	if err != nil || tr != Nop {
		t.Fatalf("New(off) = %v, %v", tr, err)
	}
	if FromContext(context.Background()) != Nop {
		t.Fatal("empty context should yield Nop")
	}
	ctx, s := Start(context.Background(), ScopeDriver, "x")
	if s.ID() != 0 || CurrentSpan(ctx) != 0 {
		t.Fatal("inert span should have no ID")
	}
	if s.Set("k", "v").End("") < 0 {
		t.Fatal("negative duration")
	}
}

func TestNewStreamFormatFromPath(t *testing.T) {
	path := t.TempDir() + "/trace.ndjson"
	tr, err := New(Config{Level: LevelPhase, Mode: ModeStream, OutputPath: path})
	if err != nil {
		t.Fatal(err)
	}
	defer tr.Close() //nolint:errcheck
	if st, ok := tr.(*StreamTracer); !ok || st.format != FormatNDJSON {
		t.Fatalf("expected NDJSON stream tracer, got %#v", tr)
	}
}

func TestParseFormatAndMode(t *testing.T) {
	if f, err := ParseFormat("ndjson"); err != nil || f != FormatNDJSON {
		t.Fatalf("ParseFormat = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("expected error")
	}
	if m, err := ParseMode("BOTH"); err != nil || m != ModeBoth {
		t.Fatalf("ParseMode = %v, %v", m, err)
	}
	if _, err := ParseMode("disk"); err == nil {
		t.Fatal("expected error")
	}
}
