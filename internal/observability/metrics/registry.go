// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Catalog metrics track the size of the entity stores
var (
	// AuthorsTotal tracks the total number of registered authors
	AuthorsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "authors_total",
			Help: "Total number of registered authors",
		},
	)

	// MagazinesTotal tracks the total number of registered magazines
	MagazinesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "magazines_total",
			Help: "Total number of registered magazines",
		},
	)

	// ArticlesTotal tracks the total number of articles in the registry
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Total number of articles in the registry",
		},
	)
)

// Business metrics track catalog operations
var (
	// ArticlesPublishedTotal counts articles registered per magazine
	ArticlesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_published_total",
			Help: "Total number of articles registered, by magazine",
		},
		[]string{"magazine"},
	)

	// ValidationFailuresTotal counts validation failures by field
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_failures_total",
			Help: "Total number of entity validation failures, by field",
		},
		[]string{"field"},
	)
)
