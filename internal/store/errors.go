package store

import "errors"

var (
	// ErrProjectNotFound indicates the requested sync project ID is not in
	// the table.
	ErrProjectNotFound = errors.New("sync project not found")
)
