// Package apperr holds the error kinds shared by the domain packages.
// Domain errors wrap one of these sentinels so the HTTP boundary can map
// them to a status code with errors.Is.
package apperr

import "errors"

var (
	ErrInvalid  = errors.New("invalid input")
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
	ErrUpstream = errors.New("upstream failure")
)

// Is reports whether err carries one of the client-facing kinds
// (invalid, not found, conflict) whose message may be shown to callers.
func Is(err error) bool {
	return errors.Is(err, ErrInvalid) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict)
}
