package trace

import "context"

type (
	tracerKey struct{}
	spanKey   struct{}
)

// FromContext returns the tracer carried by ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx != nil {
		if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
			return t
		}
	}
	return Nop
}

// WithTracer returns a copy of ctx carrying t (Nop when t is nil).
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// CurrentSpan returns the ID of the innermost span started via Start, or 0.
func CurrentSpan(ctx context.Context) uint64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(spanKey{}).(uint64)
	return id
}

// Start begins a span under the current one and returns a context in which
// it is current.
func Start(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	s := Begin(FromContext(ctx), scope, name, CurrentSpan(ctx))
	if s.ID() == 0 {
		return ctx, s
	}
	return context.WithValue(ctx, spanKey{}, s.ID()), s
}
