// Package repository defines the persistence interfaces for the domain entities.
// Implementations live under internal/infra/adapter/persistence; use cases
// depend only on these interfaces so the backing store stays injectable.
package repository

import (
	"context"

	"newsstand/internal/domain/entity"
)

// ArticleRepository is the append-only registry of all created articles.
// Articles are never deleted; List returns entries in insertion order.
type ArticleRepository interface {
	// Add registers a new article and assigns its ID.
	Add(ctx context.Context, article *entity.Article) error
	// Get retrieves an article by ID.
	// Returns (nil, nil) if the article is not found.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// List retrieves the full registry contents in insertion order.
	// The returned slice is a copy; mutating it does not affect the registry.
	List(ctx context.Context) ([]*entity.Article, error)
	// ListByAuthor retrieves the articles written by the given author,
	// in registry order.
	ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Article, error)
	// ListByMagazine retrieves the articles published in the given magazine,
	// in registry order.
	ListByMagazine(ctx context.Context, magazineID int64) ([]*entity.Article, error)
	// Count returns the total number of registered articles.
	Count(ctx context.Context) (int64, error)
	// Clear empties the registry. Provided for test isolation only.
	Clear(ctx context.Context) error
}
