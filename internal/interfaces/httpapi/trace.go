package httpapi

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/hoopsight/gameplan-gateway/internal/interfaces/httpapi"

// startSpan opens a child span named "httpapi.<op>" under the request span
// created by the otelhttp middleware. Filtered routes such as /healthz carry
// no recording parent, in which case the context comes back untouched and
// the returned span is a no-op.
func startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return otel.Tracer(tracerName).Start(ctx, "httpapi."+op)
}
