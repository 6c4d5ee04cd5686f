// Package author provides use cases for managing authors and their derived
// relationship queries. Relationships are never stored; every query scans the
// article registry filtered by author ID.
package author

import "errors"

// Sentinel errors for author use case operations.
var (
	// ErrAuthorNotFound indicates that the requested author was not found.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrInvalidAuthorID indicates that the provided author ID is invalid.
	// Author IDs must be positive integers.
	ErrInvalidAuthorID = errors.New("invalid author ID")
)
