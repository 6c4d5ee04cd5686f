package entity

import "time"

// Article represents a single published piece in the catalog.
// It references exactly one author and one magazine by ID and carries a
// validated title. Once registered, an article is never removed; the registry
// is append-only and preserves insertion order.
type Article struct {
	ID         int64
	AuthorID   int64
	MagazineID int64
	Title      string
	CreatedAt  time.Time
}

// NewArticle creates a new Article referencing the given author and magazine.
// Returns a ValidationError if either reference is not a positive ID or the
// title is not 5-50 characters long. Whether the referenced entities actually
// exist is checked at registration time by the article use case.
func NewArticle(authorID, magazineID int64, title string) (*Article, error) {
	if authorID <= 0 {
		return nil, &ValidationError{Field: "authorID", Message: "must be positive"}
	}
	if magazineID <= 0 {
		return nil, &ValidationError{Field: "magazineID", Message: "must be positive"}
	}
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	return &Article{
		AuthorID:   authorID,
		MagazineID: magazineID,
		Title:      title,
		CreatedAt:  time.Now(),
	}, nil
}
