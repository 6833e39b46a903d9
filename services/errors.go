package services

import "errors"

// Error kinds the controllers map onto HTTP statuses. ErrNotFound is
// deliberately also the answer for "exists but not yours" on listings,
// so callers cannot probe for other sellers' rows.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUpstream     = errors.New("upstream failure")
)
