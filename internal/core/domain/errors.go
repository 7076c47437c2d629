package domain

import "errors"

var (
	// ErrNotFound is returned by single-entity lookups with no match.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable signals that the backing store could not serve
	// the request (no connection, query failure, timeout). The listing
	// read path recovers from it by switching to the fallback provider.
	ErrStoreUnavailable = errors.New("store unavailable")
)
