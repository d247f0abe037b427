package model

import "errors"

var (
	// ErrNotFound indicates a link was not found.
	ErrNotFound = errors.New("link not found")

	// ErrInvalidLink indicates a record failed validation.
	ErrInvalidLink = errors.New("invalid link")
)
