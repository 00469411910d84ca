package repository

import "errors"

// ErrNotFound is returned by lookups that miss; services translate it
// into the matching domain error.
var ErrNotFound = errors.New("not found")
