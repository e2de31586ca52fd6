package domain

import "errors"

// Sentinel errors shared across services and repositories. Controllers map
// these to HTTP statuses and response error codes; nothing collapses to an
// undifferentiated failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDuplicateArtistName carries the exact user-facing message the web
	// client displays next to the name field.
	ErrDuplicateArtistName = errors.New("Artist name is already taken. Choose a different name.")
	ErrMissingFile         = errors.New("image file is required")
	ErrStorageFailure      = errors.New("object storage write failed")
	ErrPersistence         = errors.New("persistence failed")
)
