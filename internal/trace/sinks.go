package trace

import (
	"errors"
	"io"
	"os"
	"sync"
)

type nopTracer struct{}

func (nopTracer) Emit(*Event)  {}
func (nopTracer) Flush() error { return nil }
func (nopTracer) Close() error { return nil }
func (nopTracer) Level() Level { return LevelOff }

// Nop discards everything.
var Nop Tracer = nopTracer{}

// StreamTracer writes each event to w as it arrives.
type StreamTracer struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	format Format
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	return &StreamTracer{w: w, level: level, format: format}
}

func (t *StreamTracer) Emit(ev *Event) {
	if !t.level.Includes(ev.Scope) {
		return
	}
	line := FormatEvent(ev, t.format)
	t.mu.Lock()
	_, _ = t.w.Write(line)
	t.mu.Unlock()
}

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if f, ok := t.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes and closes the writer unless it is stdout or stderr.
func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if t.w == os.Stdout || t.w == os.Stderr {
		return nil
	}
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (t *StreamTracer) Level() Level { return t.level }

// RingTracer keeps the last N events in memory.
type RingTracer struct {
	mu     sync.Mutex
	events []Event
	next   int // write position
	n      int // stored events, at most len(events)
	level  Level
}

func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingTracer{events: make([]Event, capacity), level: level}
}

func (t *RingTracer) Emit(ev *Event) {
	if !t.level.keeps(ev.Scope) {
		return
	}
	t.mu.Lock()
	t.events[t.next] = *ev
	t.next = (t.next + 1) % len(t.events)
	t.n = min(t.n+1, len(t.events))
	t.mu.Unlock()
}

// Snapshot returns the stored events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, 0, t.n)
	start := (t.next - t.n + len(t.events)) % len(t.events)
	for i := range t.n {
		out = append(out, t.events[(start+i)%len(t.events)])
	}
	return out
}

// Dump writes the stored events to w.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error { return nil }
func (t *RingTracer) Close() error { return nil }
func (t *RingTracer) Level() Level { return t.level }

// Tee sends every event to several tracers.
type Tee struct {
	tracers []Tracer
	level   Level
}

func NewTee(level Level, tracers ...Tracer) *Tee {
	return &Tee{tracers: tracers, level: level}
}

// Emit hands each tracer its own copy of ev.
func (t *Tee) Emit(ev *Event) {
	for _, tr := range t.tracers {
		cp := *ev
		tr.Emit(&cp)
	}
}

// Ring returns the first RingTracer among the children, if any.
func (t *Tee) Ring() *RingTracer {
	for _, tr := range t.tracers {
		if r, ok := tr.(*RingTracer); ok {
			return r
		}
	}
	return nil
}

func (t *Tee) Flush() error {
	var errs []error
	for _, tr := range t.tracers {
		errs = append(errs, tr.Flush())
	}
	return errors.Join(errs...)
}

func (t *Tee) Close() error {
	var errs []error
	for _, tr := range t.tracers {
		errs = append(errs, tr.Close())
	}
	return errors.Join(errs...)
}

func (t *Tee) Level() Level { return t.level }
