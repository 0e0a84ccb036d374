package repository

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when nothing has been stored under a key.
	ErrNotFound = errors.New("not found")

	// ErrMalformedDocument is returned when a stored document cannot be
	// decoded into an inventory.
	ErrMalformedDocument = errors.New("malformed wardrobe document")
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
