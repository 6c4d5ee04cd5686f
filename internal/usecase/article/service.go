package article

import (
	"context"
	"fmt"

	"newsstand/internal/domain/entity"
	"newsstand/internal/observability/logging"
	"newsstand/internal/observability/metrics"
	"newsstand/internal/observability/tracing"
	"newsstand/internal/repository"
)

// CreateInput represents the input parameters for registering a new article.
type CreateInput struct {
	AuthorID   int64
	MagazineID int64
	Title      string
}

// Service provides article registry use cases.
// It validates new articles against the author and magazine stores before
// appending them to the registry.
type Service struct {
	ArticleRepo  repository.ArticleRepository
	AuthorRepo   repository.AuthorRepository
	MagazineRepo repository.MagazineRepository
}

// Create validates the input and appends a new article to the registry.
// Returns a ValidationError unless the title is 5-50 characters long and both
// the author ID and the magazine ID resolve to registered entities.
// A failed creation registers nothing; on success the stored article is
// returned with its assigned ID.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "article.create")
	defer span.End()

	art, err := entity.NewArticle(in.AuthorID, in.MagazineID, in.Title)
	if err != nil {
		metrics.RecordValidationFailure(err)
		return nil, err
	}

	author, err := s.AuthorRepo.Get(ctx, in.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		vErr := &entity.ValidationError{Field: "authorID", Message: "unknown author"}
		metrics.RecordValidationFailure(vErr)
		return nil, vErr
	}

	magazine, err := s.MagazineRepo.Get(ctx, in.MagazineID)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	if magazine == nil {
		vErr := &entity.ValidationError{Field: "magazineID", Message: "unknown magazine"}
		metrics.RecordValidationFailure(vErr)
		return nil, vErr
	}

	if err := s.ArticleRepo.Add(ctx, art); err != nil {
		return nil, fmt.Errorf("add article: %w", err)
	}

	metrics.RecordArticlePublished(magazine.Name())
	if count, err := s.ArticleRepo.Count(ctx); err == nil {
		metrics.UpdateArticlesTotal(count)
	}

	logging.FromContext(ctx).Debug("article registered",
		"article_id", art.ID,
		"author", author.Name,
		"magazine", magazine.Name(),
	)

	return art, nil
}

// List retrieves the full registry contents in insertion order.
// Returns an error if the repository operation fails.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.ArticleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.ArticleRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}
