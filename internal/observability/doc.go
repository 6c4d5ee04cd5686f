// Package observability provides the observability infrastructure for the
// catalog: structured logging, Prometheus metrics, and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracer accessor
//
// Example usage:
//
//	import (
//	    "newsstand/internal/observability/logging"
//	    "newsstand/internal/observability/metrics"
//	)
//
//	logger := logging.NewLogger()
//	logger.Info("catalog ready")
//	metrics.RecordArticlePublished("Tech Today")
package observability
