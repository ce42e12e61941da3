package models

import "errors"

// Sentinel errors shared across layers. Repositories and services wrap
// them with fmt.Errorf("%w: ...") and handlers map them to HTTP status
// codes with errors.Is.
var (
	// ErrValidation marks a payload that failed the schedule validation rules.
	ErrValidation = errors.New("validation error")

	// ErrInvalidID marks an identifier that is not a well-formed ObjectID hex.
	ErrInvalidID = errors.New("invalid id")

	// ErrNotFound marks an identifier that resolves to no stored record.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedMediaType marks an upload whose extension or declared
	// MIME type is outside the image allow-list.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrFileTooLarge marks an upload exceeding the size ceiling.
	ErrFileTooLarge = errors.New("file too large")
)
