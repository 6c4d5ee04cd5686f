// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Author, Magazine, and Article,
// along with their validation rules and domain-specific errors.
package entity

// Author represents a writer registered in the catalog.
// It holds only the display name; relationships to articles and magazines are
// derived by scanning the article registry, never stored on the entity.
type Author struct {
	ID   int64
	Name string
}

// NewAuthor creates a new Author with the given display name.
// Returns a ValidationError if the name is empty.
// The ID is assigned by the repository when the author is registered.
func NewAuthor(name string) (*Author, error) {
	if err := ValidateAuthorName(name); err != nil {
		return nil, err
	}
	return &Author{Name: name}, nil
}
