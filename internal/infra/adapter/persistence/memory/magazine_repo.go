package memory

import (
	"context"
	"sync"

	"newsstand/internal/domain/entity"
	"newsstand/internal/repository"
)

// MagazineRepo implements the MagazineRepository interface with an in-memory slice.
// List order is registration order, which aggregate queries use as their fixed
// iteration order.
type MagazineRepo struct {
	mu        sync.RWMutex
	magazines []*entity.Magazine
	nextID    int64
}

// NewMagazineRepo creates a new in-memory magazine repository.
func NewMagazineRepo() *MagazineRepo {
	return &MagazineRepo{nextID: 1}
}

var _ repository.MagazineRepository = (*MagazineRepo)(nil)

// Add registers a new magazine and assigns its ID.
func (repo *MagazineRepo) Add(_ context.Context, magazine *entity.Magazine) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	magazine.ID = repo.nextID
	repo.nextID++
	repo.magazines = append(repo.magazines, magazine)
	return nil
}

// Get retrieves a magazine by ID. Returns (nil, nil) when not found.
func (repo *MagazineRepo) Get(_ context.Context, id int64) (*entity.Magazine, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, magazine := range repo.magazines {
		if magazine.ID == id {
			return magazine, nil
		}
	}
	return nil, nil
}

// List retrieves all magazines in registration order.
func (repo *MagazineRepo) List(_ context.Context) ([]*entity.Magazine, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Magazine, len(repo.magazines))
	copy(out, repo.magazines)
	return out, nil
}

// Update persists changes to an existing magazine.
// Entities are held by pointer, so a magazine mutated through its setters is
// already visible; Update exists so the interface does not depend on that.
func (repo *MagazineRepo) Update(_ context.Context, magazine *entity.Magazine) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i, m := range repo.magazines {
		if m.ID == magazine.ID {
			repo.magazines[i] = magazine
			return nil
		}
	}
	return nil
}

// Clear empties the store. Test isolation only.
func (repo *MagazineRepo) Clear(_ context.Context) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.magazines = nil
	repo.nextID = 1
	return nil
}
