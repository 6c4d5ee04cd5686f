package metrics

import (
	"errors"

	"newsstand/internal/domain/entity"
)

// RecordArticlePublished records a successful article registration.
// The magazine label carries the magazine name at publication time.
func RecordArticlePublished(magazineName string) {
	ArticlesPublishedTotal.WithLabelValues(magazineName).Inc()
}

// RecordValidationFailure records a validation failure.
// If err wraps an entity.ValidationError, the failing field is used as the
// label; otherwise the failure is recorded under "unknown".
func RecordValidationFailure(err error) {
	field := "unknown"
	var vErr *entity.ValidationError
	if errors.As(err, &vErr) {
		field = vErr.Field
	}
	ValidationFailuresTotal.WithLabelValues(field).Inc()
}

// UpdateAuthorsTotal updates the registered-author gauge.
func UpdateAuthorsTotal(count int) {
	AuthorsTotal.Set(float64(count))
}

// UpdateMagazinesTotal updates the registered-magazine gauge.
func UpdateMagazinesTotal(count int) {
	MagazinesTotal.Set(float64(count))
}

// UpdateArticlesTotal updates the article-registry gauge.
// This gauge reflects the registry size after every registration and Clear.
func UpdateArticlesTotal(count int64) {
	ArticlesTotal.Set(float64(count))
}
