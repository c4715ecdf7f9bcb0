package models

import "errors"

// ErrNotFound reports that a lookup had no matching record. It is distinct
// from transport failures so callers can surface the two differently.
var ErrNotFound = errors.New("not found")
