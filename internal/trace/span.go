package trace

import "time"

// Span tracks one logical operation from Begin to End. A span whose scope
// is not recorded is inert but still measures its duration.
type Span struct {
	tracer  Tracer
	id      uint64
	parent  uint64
	scope   Scope
	name    string
	started time.Time
	attrs   []Attr
}

// Begin starts a span under parent (0 for a root span).
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	s := &Span{started: time.Now()}
	if !records(t, scope) {
		return s
	}
	s.tracer, s.id, s.parent, s.scope, s.name = t, spanCounter.Add(1), parent, scope, name

	ev := newEvent(KindSpanBegin, scope, name)
	ev.SpanID, ev.ParentID = s.id, parent
	t.Emit(ev)
	return s
}

// Set attaches an attribute to the end event.
func (s *Span) Set(key, value string) *Span {
	if s != nil && s.tracer != nil {
		s.attrs = append(s.attrs, Attr{Key: key, Value: value})
	}
	return s
}

// End records the end event and returns how long the span ran.
func (s *Span) End(detail string) time.Duration {
	if s == nil {
		return 0
	}
	dur := time.Since(s.started)
	if s.tracer == nil {
		return dur
	}
	ev := newEvent(KindSpanEnd, s.scope, s.name)
	ev.SpanID, ev.ParentID = s.id, s.parent
	ev.Detail = detail
	ev.Attrs = append(s.attrs, Attr{Key: "dur", Value: dur.Round(time.Microsecond).String()})
	s.tracer.Emit(ev)
	return dur
}

// ID returns the span ID, 0 for inert spans.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}
