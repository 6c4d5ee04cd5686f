package repository

import (
	"context"

	"newsstand/internal/domain/entity"
)

// MagazineRepository stores registered magazines.
// List order is registration order; aggregate queries such as TopPublisher
// rely on it as their fixed iteration order.
type MagazineRepository interface {
	// Add registers a new magazine and assigns its ID.
	Add(ctx context.Context, magazine *entity.Magazine) error
	// Get retrieves a magazine by ID.
	// Returns (nil, nil) if the magazine is not found.
	Get(ctx context.Context, id int64) (*entity.Magazine, error)
	// List retrieves all magazines in registration order.
	List(ctx context.Context) ([]*entity.Magazine, error)
	// Update persists changes to an existing magazine.
	Update(ctx context.Context, magazine *entity.Magazine) error
	// Clear empties the store. Provided for test isolation only.
	Clear(ctx context.Context) error
}
