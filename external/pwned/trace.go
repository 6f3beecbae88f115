package pwned

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/riskibarqy/pwned-go/external/pwned")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan opens a child span only when the caller is already tracing, so
// untraced callers pay nothing.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopSpan
	}
	return tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindClient))
}
