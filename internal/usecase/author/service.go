package author

import (
	"context"
	"fmt"

	"newsstand/internal/domain/entity"
	"newsstand/internal/observability/logging"
	"newsstand/internal/observability/metrics"
	"newsstand/internal/observability/tracing"
	"newsstand/internal/repository"
	articleUC "newsstand/internal/usecase/article"
)

// CreateInput represents the input parameters for registering a new author.
type CreateInput struct {
	Name string
}

// ArticlePublisher registers new articles on behalf of an author.
// It is satisfied by the article use case service.
type ArticlePublisher interface {
	Create(ctx context.Context, in articleUC.CreateInput) (*entity.Article, error)
}

// Service provides author management and derived-query use cases.
// Derived queries scan the article registry; nothing is stored on the author.
type Service struct {
	AuthorRepo   repository.AuthorRepository
	ArticleRepo  repository.ArticleRepository
	MagazineRepo repository.MagazineRepository

	// Publisher handles AddArticle registration. Typically the article
	// use case service sharing the same repositories.
	Publisher ArticlePublisher
}

// Create registers a new author with the provided input.
// Returns a ValidationError if the name is empty.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Author, error) {
	author, err := entity.NewAuthor(in.Name)
	if err != nil {
		metrics.RecordValidationFailure(err)
		return nil, err
	}

	if err := s.AuthorRepo.Add(ctx, author); err != nil {
		return nil, fmt.Errorf("add author: %w", err)
	}

	if all, err := s.AuthorRepo.List(ctx); err == nil {
		metrics.UpdateAuthorsTotal(len(all))
	}

	logging.FromContext(ctx).Debug("author registered", "author_id", author.ID, "name", author.Name)
	return author, nil
}

// Get retrieves a single author by ID.
// Returns ErrInvalidAuthorID if the ID is not positive.
// Returns ErrAuthorNotFound if the author does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Author, error) {
	if id <= 0 {
		return nil, ErrInvalidAuthorID
	}

	author, err := s.AuthorRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}
	return author, nil
}

// Articles retrieves the author's articles in registry order.
// Returns ErrAuthorNotFound if the author does not exist.
func (s *Service) Articles(ctx context.Context, authorID int64) ([]*entity.Article, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "author.articles")
	defer span.End()

	if _, err := s.Get(ctx, authorID); err != nil {
		return nil, err
	}

	articles, err := s.ArticleRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("list articles by author: %w", err)
	}
	return articles, nil
}

// Magazines retrieves the distinct magazines the author has written for,
// in first-encounter registry order. Duplicates are collapsed by magazine ID.
// Returns ErrAuthorNotFound if the author does not exist.
func (s *Service) Magazines(ctx context.Context, authorID int64) ([]*entity.Magazine, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "author.magazines")
	defer span.End()

	articles, err := s.Articles(ctx, authorID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool)
	var magazines []*entity.Magazine
	for _, art := range articles {
		if seen[art.MagazineID] {
			continue
		}
		seen[art.MagazineID] = true

		magazine, err := s.MagazineRepo.Get(ctx, art.MagazineID)
		if err != nil {
			return nil, fmt.Errorf("get magazine: %w", err)
		}
		if magazine != nil {
			magazines = append(magazines, magazine)
		}
	}
	return magazines, nil
}

// AddArticle registers a new article with this author as its writer.
// It is a convenience wrapper over article creation; the same validation
// applies, including the 5-50 character title bound.
func (s *Service) AddArticle(ctx context.Context, authorID, magazineID int64, title string) (*entity.Article, error) {
	return s.Publisher.Create(ctx, articleUC.CreateInput{
		AuthorID:   authorID,
		MagazineID: magazineID,
		Title:      title,
	})
}

// TopicAreas retrieves the distinct categories across the author's magazines,
// in first-encounter order. Returns (nil, nil) when the author has no
// articles. Returns ErrAuthorNotFound if the author does not exist.
func (s *Service) TopicAreas(ctx context.Context, authorID int64) ([]string, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "author.topic_areas")
	defer span.End()

	magazines, err := s.Magazines(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if len(magazines) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool)
	var areas []string
	for _, magazine := range magazines {
		category := magazine.Category()
		if seen[category] {
			continue
		}
		seen[category] = true
		areas = append(areas, category)
	}
	return areas, nil
}
