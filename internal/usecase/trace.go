package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/hoopsight/gameplan-gateway/internal/usecase"

// startUsecaseSpan opens a child span named "usecase.<op>" when the caller
// already carries a recording span. Without a valid parent the context comes
// back untouched so service calls outside a traced request stay span-free.
func startUsecaseSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return otel.Tracer(tracerName).Start(ctx, "usecase."+op)
}
