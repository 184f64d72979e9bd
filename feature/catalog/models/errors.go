package models

import "errors"

var (
	// ErrNotFound is returned when an item does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when a request is missing required fields or is malformed.
	ErrValidation = errors.New("validation failed")
)
