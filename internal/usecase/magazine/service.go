package magazine

import (
	"context"
	"fmt"

	"newsstand/internal/domain/entity"
	"newsstand/internal/observability/logging"
	"newsstand/internal/observability/metrics"
	"newsstand/internal/observability/tracing"
	"newsstand/internal/repository"
)

// contributingAuthorsThreshold is the minimum article count, exclusive, for an
// author to qualify as a contributing author of a magazine.
const contributingAuthorsThreshold = 2

// CreateInput represents the input parameters for registering a new magazine.
type CreateInput struct {
	Name     string
	Category string
}

// Service provides magazine management and derived-query use cases.
// Derived queries scan the article registry filtered by magazine ID.
type Service struct {
	MagazineRepo repository.MagazineRepository
	ArticleRepo  repository.ArticleRepository
	AuthorRepo   repository.AuthorRepository
}

// Create registers a new magazine with the provided input.
// Returns a ValidationError if the name is not 2-16 characters long or the
// category is empty.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Magazine, error) {
	magazine, err := entity.NewMagazine(in.Name, in.Category)
	if err != nil {
		metrics.RecordValidationFailure(err)
		return nil, err
	}

	if err := s.MagazineRepo.Add(ctx, magazine); err != nil {
		return nil, fmt.Errorf("add magazine: %w", err)
	}

	if all, err := s.MagazineRepo.List(ctx); err == nil {
		metrics.UpdateMagazinesTotal(len(all))
	}

	logging.FromContext(ctx).Debug("magazine registered",
		"magazine_id", magazine.ID,
		"name", magazine.Name(),
		"category", magazine.Category(),
	)
	return magazine, nil
}

// Get retrieves a single magazine by ID.
// Returns ErrInvalidMagazineID if the ID is not positive.
// Returns ErrMagazineNotFound if the magazine does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Magazine, error) {
	if id <= 0 {
		return nil, ErrInvalidMagazineID
	}

	magazine, err := s.MagazineRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	if magazine == nil {
		return nil, ErrMagazineNotFound
	}
	return magazine, nil
}

// Rename assigns a new name to an existing magazine.
// The name is re-validated on write; an invalid value fails with a
// ValidationError and leaves the stored name unchanged.
func (s *Service) Rename(ctx context.Context, id int64, name string) error {
	magazine, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := magazine.SetName(name); err != nil {
		metrics.RecordValidationFailure(err)
		return err
	}

	if err := s.MagazineRepo.Update(ctx, magazine); err != nil {
		return fmt.Errorf("update magazine: %w", err)
	}
	return nil
}

// Recategorize assigns a new category to an existing magazine.
// The category is re-validated on write; an empty value fails with a
// ValidationError and leaves the stored category unchanged.
func (s *Service) Recategorize(ctx context.Context, id int64, category string) error {
	magazine, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := magazine.SetCategory(category); err != nil {
		metrics.RecordValidationFailure(err)
		return err
	}

	if err := s.MagazineRepo.Update(ctx, magazine); err != nil {
		return fmt.Errorf("update magazine: %w", err)
	}
	return nil
}

// Articles retrieves the magazine's articles in registry order.
// Returns ErrMagazineNotFound if the magazine does not exist.
func (s *Service) Articles(ctx context.Context, magazineID int64) ([]*entity.Article, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "magazine.articles")
	defer span.End()

	if _, err := s.Get(ctx, magazineID); err != nil {
		return nil, err
	}

	articles, err := s.ArticleRepo.ListByMagazine(ctx, magazineID)
	if err != nil {
		return nil, fmt.Errorf("list articles by magazine: %w", err)
	}
	return articles, nil
}

// Contributors retrieves the distinct authors of the magazine's articles,
// in first-encounter registry order. Duplicates are collapsed by author ID.
// Returns ErrMagazineNotFound if the magazine does not exist.
func (s *Service) Contributors(ctx context.Context, magazineID int64) ([]*entity.Author, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "magazine.contributors")
	defer span.End()

	articles, err := s.Articles(ctx, magazineID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool)
	var authors []*entity.Author
	for _, art := range articles {
		if seen[art.AuthorID] {
			continue
		}
		seen[art.AuthorID] = true

		author, err := s.AuthorRepo.Get(ctx, art.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("get author: %w", err)
		}
		if author != nil {
			authors = append(authors, author)
		}
	}
	return authors, nil
}

// ArticleTitles retrieves the magazine's article titles in registry order.
// Returns (nil, nil) when the magazine has no articles.
// Returns ErrMagazineNotFound if the magazine does not exist.
func (s *Service) ArticleTitles(ctx context.Context, magazineID int64) ([]string, error) {
	articles, err := s.Articles(ctx, magazineID)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, nil
	}

	titles := make([]string, 0, len(articles))
	for _, art := range articles {
		titles = append(titles, art.Title)
	}
	return titles, nil
}

// ContributingAuthors retrieves the authors who have written more than two
// articles for this magazine, in first-encounter registry order.
// Returns (nil, nil) when the magazine has no contributors at all, and also
// when no contributor clears the threshold.
// Returns ErrMagazineNotFound if the magazine does not exist.
func (s *Service) ContributingAuthors(ctx context.Context, magazineID int64) ([]*entity.Author, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "magazine.contributing_authors")
	defer span.End()

	articles, err := s.Articles(ctx, magazineID)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, nil
	}

	counts := make(map[int64]int)
	var order []int64
	for _, art := range articles {
		if counts[art.AuthorID] == 0 {
			order = append(order, art.AuthorID)
		}
		counts[art.AuthorID]++
	}

	var authors []*entity.Author
	for _, authorID := range order {
		if counts[authorID] <= contributingAuthorsThreshold {
			continue
		}
		author, err := s.AuthorRepo.Get(ctx, authorID)
		if err != nil {
			return nil, fmt.Errorf("get author: %w", err)
		}
		if author != nil {
			authors = append(authors, author)
		}
	}
	if len(authors) == 0 {
		return nil, nil
	}
	return authors, nil
}

// TopPublisher retrieves the magazine with the most registered articles.
// Returns (nil, nil) when the registry is empty, and also when every
// magazine's count is zero. Ties are broken by magazine registration order:
// the first maximal magazine in the fixed iteration order wins.
func (s *Service) TopPublisher(ctx context.Context) (*entity.Magazine, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "magazine.top_publisher")
	defer span.End()

	total, err := s.ArticleRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}
	if total == 0 {
		return nil, nil
	}

	articles, err := s.ArticleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	counts := make(map[int64]int)
	for _, art := range articles {
		counts[art.MagazineID]++
	}

	magazines, err := s.MagazineRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}

	var top *entity.Magazine
	topCount := 0
	for _, magazine := range magazines {
		// 厳密な > 比較により、同数なら先に登録された方が勝つ
		if c := counts[magazine.ID]; c > topCount {
			top = magazine
			topCount = c
		}
	}
	if top == nil {
		// registry has articles but none belong to a registered magazine
		return nil, nil
	}

	logging.FromContext(ctx).Debug("top publisher computed",
		"magazine", top.Name(),
		"articles", topCount,
	)
	return top, nil
}
