package observability

import "context"

type spanContextKey struct{}

// ContextWithSpan returns a copy of ctx carrying span.
func ContextWithSpan(ctx context.Context, span Span) context.Context {
	return context.WithValue(ctx, spanContextKey{}, span)
}

// SpanFromContext returns the span stored in ctx, or nil when none is present.
func SpanFromContext(ctx context.Context) Span {
	span, _ := ctx.Value(spanContextKey{}).(Span)
	return span
}
