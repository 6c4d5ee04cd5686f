// Package memory provides in-memory implementations of the repository interfaces.
// Stores are insertion-ordered and guarded by a sync.RWMutex so tests can run
// under the race detector; the system itself performs no concurrent access.
package memory

import (
	"context"
	"sync"

	"newsstand/internal/domain/entity"
	"newsstand/internal/repository"
)

// ArticleRepo implements the ArticleRepository interface with an in-memory,
// append-only slice. Insertion order is the registry order.
type ArticleRepo struct {
	mu       sync.RWMutex
	articles []*entity.Article
	nextID   int64
}

// NewArticleRepo creates a new in-memory article repository.
func NewArticleRepo() *ArticleRepo {
	return &ArticleRepo{nextID: 1}
}

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// Add registers a new article at the end of the registry and assigns its ID.
func (repo *ArticleRepo) Add(_ context.Context, article *entity.Article) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	article.ID = repo.nextID
	repo.nextID++
	repo.articles = append(repo.articles, article)
	return nil
}

// Get retrieves an article by ID. Returns (nil, nil) when not found.
func (repo *ArticleRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, article := range repo.articles {
		if article.ID == id {
			return article, nil
		}
	}
	return nil, nil
}

// List retrieves the full registry contents in insertion order.
// A copy of the backing slice is returned so callers cannot remove entries.
func (repo *ArticleRepo) List(_ context.Context) ([]*entity.Article, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Article, len(repo.articles))
	copy(out, repo.articles)
	return out, nil
}

// ListByAuthor retrieves the articles with the given author ID, in registry order.
func (repo *ArticleRepo) ListByAuthor(_ context.Context, authorID int64) ([]*entity.Article, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var out []*entity.Article
	for _, article := range repo.articles {
		if article.AuthorID == authorID {
			out = append(out, article)
		}
	}
	return out, nil
}

// ListByMagazine retrieves the articles with the given magazine ID, in registry order.
func (repo *ArticleRepo) ListByMagazine(_ context.Context, magazineID int64) ([]*entity.Article, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var out []*entity.Article
	for _, article := range repo.articles {
		if article.MagazineID == magazineID {
			out = append(out, article)
		}
	}
	return out, nil
}

// Count returns the total number of registered articles.
func (repo *ArticleRepo) Count(_ context.Context) (int64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return int64(len(repo.articles)), nil
}

// Clear empties the registry. Test isolation only; ID assignment restarts.
func (repo *ArticleRepo) Clear(_ context.Context) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.articles = nil
	repo.nextID = 1
	return nil
}
