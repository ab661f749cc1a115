package domain

import "errors"

// ErrNotFound is returned when an operation targets an id or scope key
// that has no record. It is the only failure mode the service layer
// signals for well-typed input.
var ErrNotFound = errors.New("record not found")
