package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Timer accumulates wall time per named phase (load, lex, execute). Phases
// tracked more than once under the same name are summed. Safe for
// concurrent use; a nil *Timer ignores every call.
type Timer struct {
	mu     sync.Mutex
	order  []string
	phases map[string]*phase
}

type phase struct {
	count int
	dur   time.Duration
	note  string
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make(map[string]*phase)} }

// Track starts timing name and returns the function that stops it. The
// note, when non-empty, replaces the phase's previous note.
//
//	defer timer.Track("lex")("")
func (t *Timer) Track(name string) func(note string) {
	if t == nil {
		return func(string) {}
	}
	t.mu.Lock()
	if _, ok := t.phases[name]; !ok {
		t.phases[name] = &phase{}
		t.order = append(t.order, name)
	}
	t.mu.Unlock()

	start := time.Now()
	var once sync.Once
	return func(note string) {
		once.Do(func() {
			elapsed := time.Since(start)
			t.mu.Lock()
			defer t.mu.Unlock()
			p := t.phases[name]
			p.count++
			p.dur += elapsed
			if note != "" {
				p.note = note
			}
		})
	}
}

// PhaseReport представляет сжатую информацию о фазе таймера для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report lists phases in the order they were first tracked.
func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	var r Report
	for _, name := range t.order {
		p := t.phases[name]
		ms := millis(p.dur)
		r.Phases = append(r.Phases, PhaseReport{Name: name, Count: p.count, DurationMS: ms, Note: p.note})
		r.TotalMS += ms
	}
	return r
}

// Summary renders the report as an aligned table for stderr.
func (t *Timer) Summary() string {
	r := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range r.Phases {
		name := p.Name
		if p.Count > 1 {
			name = fmt.Sprintf("%s x%d", p.Name, p.Count)
		}
		fmt.Fprintf(&b, "  %-20s %7.2f ms", name, p.DurationMS)
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-20s %7.2f ms\n", "total", r.TotalMS)
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
