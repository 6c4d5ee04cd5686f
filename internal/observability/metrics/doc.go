// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - Catalog size gauges (authors, magazines, articles)
//   - Business metrics (articles published, validation failures)
//
// All metrics are automatically registered with the Prometheus default registry.
// Exposing them is the embedding process's responsibility.
//
// Example usage:
//
//	import "newsstand/internal/observability/metrics"
//
//	func register(magazineName string) {
//	    // ... register the article ...
//	    metrics.RecordArticlePublished(magazineName)
//	}
package metrics
