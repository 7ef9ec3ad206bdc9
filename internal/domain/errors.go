package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrConstraint is returned when the database rejects a write because it
// violates a schema constraint: a missing parent row, a null in a required
// column, or a malformed value.
var ErrConstraint = errors.New("constraint violation")
