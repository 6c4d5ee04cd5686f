// Package magazine provides use cases for managing magazines and their derived
// relationship queries, including the top-publisher aggregate over the whole
// article registry.
package magazine

import "errors"

// Sentinel errors for magazine use case operations.
var (
	// ErrMagazineNotFound indicates that the requested magazine was not found.
	ErrMagazineNotFound = errors.New("magazine not found")

	// ErrInvalidMagazineID indicates that the provided magazine ID is invalid.
	// Magazine IDs must be positive integers.
	ErrInvalidMagazineID = errors.New("invalid magazine ID")
)
