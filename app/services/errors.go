package services

import "errors"

// Sentinel errors forming the service error taxonomy. Controllers map these
// to HTTP statuses with errors.Is; anything else is a storage failure and
// surfaces as a generic 500 with the detail logged server-side.
var (
	// ErrNotFound signals that the referenced order does not exist.
	ErrNotFound = errors.New("order not found")

	// ErrInvalidArgument signals a malformed id or missing required field.
	ErrInvalidArgument = errors.New("invalid argument")
)
