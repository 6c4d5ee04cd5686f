// Package tracing provides the OpenTelemetry tracer for the application.
// Installing a tracer provider is the embedding process's responsibility;
// without one, spans are no-ops.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the newsstand catalog.
var tracer = otel.Tracer("newsstand")

// GetTracer returns the global tracer for creating spans.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "magazine.top_publisher")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
