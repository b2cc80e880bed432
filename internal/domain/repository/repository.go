package repository

import "errors"

var (
	// ErrNotFound is returned by all repositories when the referenced
	// document does not exist. A malformed identifier is treated the same
	// way.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique index rejects an insert.
	ErrDuplicate = errors.New("duplicate key")
)
