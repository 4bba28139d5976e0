package sqlite

import "errors"

var (
	// ErrCatalogNotFound indicates that no catalog has been imported yet.
	ErrCatalogNotFound = errors.New("catalog not found")
	// ErrEmptyPath indicates an empty database path.
	ErrEmptyPath = errors.New("db path cannot be empty")
)
