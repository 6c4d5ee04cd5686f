package entity

import (
	"fmt"
	"unicode/utf8"
)

// Field length bounds, counted in characters (not bytes).
const (
	// MinMagazineNameLen and MaxMagazineNameLen bound the magazine name length.
	MinMagazineNameLen = 2
	MaxMagazineNameLen = 16

	// MinTitleLen and MaxTitleLen bound the article title length.
	MinTitleLen = 5
	MaxTitleLen = 50
)

// ValidateAuthorName validates an author display name.
// Returns a ValidationError if the name is empty.
func ValidateAuthorName(name string) error {
	if name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	return nil
}

// ValidateMagazineName validates a magazine name.
// Returns a ValidationError unless the name is 2-16 characters long inclusive.
func ValidateMagazineName(name string) error {
	if n := utf8.RuneCountInString(name); n < MinMagazineNameLen || n > MaxMagazineNameLen {
		return &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("must be between %d and %d characters", MinMagazineNameLen, MaxMagazineNameLen),
		}
	}
	return nil
}

// ValidateCategory validates a magazine category.
// Returns a ValidationError if the category is empty.
func ValidateCategory(category string) error {
	if category == "" {
		return &ValidationError{Field: "category", Message: "is required"}
	}
	return nil
}

// ValidateTitle validates an article title.
// Returns a ValidationError unless the title is 5-50 characters long inclusive.
func ValidateTitle(title string) error {
	if n := utf8.RuneCountInString(title); n < MinTitleLen || n > MaxTitleLen {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must be between %d and %d characters", MinTitleLen, MaxTitleLen),
		}
	}
	return nil
}
