package memory

import (
	"context"
	"sync"

	"newsstand/internal/domain/entity"
	"newsstand/internal/repository"
)

// AuthorRepo implements the AuthorRepository interface with an in-memory slice.
type AuthorRepo struct {
	mu      sync.RWMutex
	authors []*entity.Author
	nextID  int64
}

// NewAuthorRepo creates a new in-memory author repository.
func NewAuthorRepo() *AuthorRepo {
	return &AuthorRepo{nextID: 1}
}

var _ repository.AuthorRepository = (*AuthorRepo)(nil)

// Add registers a new author and assigns its ID.
func (repo *AuthorRepo) Add(_ context.Context, author *entity.Author) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	author.ID = repo.nextID
	repo.nextID++
	repo.authors = append(repo.authors, author)
	return nil
}

// Get retrieves an author by ID. Returns (nil, nil) when not found.
func (repo *AuthorRepo) Get(_ context.Context, id int64) (*entity.Author, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, author := range repo.authors {
		if author.ID == id {
			return author, nil
		}
	}
	return nil, nil
}

// List retrieves all authors in registration order.
func (repo *AuthorRepo) List(_ context.Context) ([]*entity.Author, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Author, len(repo.authors))
	copy(out, repo.authors)
	return out, nil
}

// Clear empties the store. Test isolation only.
func (repo *AuthorRepo) Clear(_ context.Context) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.authors = nil
	repo.nextID = 1
	return nil
}
