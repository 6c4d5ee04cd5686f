package repository

import (
	"context"

	"newsstand/internal/domain/entity"
)

// AuthorRepository stores registered authors.
type AuthorRepository interface {
	// Add registers a new author and assigns its ID.
	Add(ctx context.Context, author *entity.Author) error
	// Get retrieves an author by ID.
	// Returns (nil, nil) if the author is not found.
	Get(ctx context.Context, id int64) (*entity.Author, error)
	// List retrieves all authors in registration order.
	List(ctx context.Context) ([]*entity.Author, error)
	// Clear empties the store. Provided for test isolation only.
	Clear(ctx context.Context) error
}
