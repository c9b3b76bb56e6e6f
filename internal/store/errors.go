package store

import "errors"

var (
	// ErrNotFound means the requested entry id is absent from the store.
	ErrNotFound = errors.New("entry not found")

	// ErrStorage replaces any serialization or storage-access fault.
	// Callers never see the underlying driver error; the detail is logged.
	ErrStorage = errors.New("local storage failure")
)
