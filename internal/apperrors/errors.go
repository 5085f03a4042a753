// Package apperrors holds the sentinel errors shared across layers so that
// handlers can map failures to HTTP status codes with errors.Is.
package apperrors

import "errors"

// ErrNotFound marks a missing report or incident (404).
var ErrNotFound = errors.New("not found")
