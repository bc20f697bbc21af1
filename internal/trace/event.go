package trace

import (
	"sync/atomic"
	"time"
)

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
)

var kindNames = [...]string{"", "begin", "end", "point"}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Attr is a key-value pair attached to an event.
type Attr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event is a single trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // process-wide, monotonic
	Kind     Kind
	Scope    Scope
	SpanID   uint64 // 0 for points
	ParentID uint64 // 0 at the root
	Name     string // e.g. "execute", "file:main.sel", "LEX1001"
	Detail   string
	Attrs    []Attr
}

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

func newEvent(kind Kind, scope Scope, name string) *Event {
	return &Event{Time: time.Now(), Seq: seqCounter.Add(1), Kind: kind, Scope: scope, Name: name}
}

// Point records an instant event under parent.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if !records(t, scope) {
		return
	}
	ev := newEvent(KindPoint, scope, name)
	ev.ParentID = parent
	ev.Detail = detail
	t.Emit(ev)
}

func records(t Tracer, scope Scope) bool {
	return t != nil && t.Level().keeps(scope)
}
