package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record exists for an id or slug.
	ErrNotFound = errors.New("store: not found")

	// ErrInvalidArgument is returned for malformed input: missing
	// required fields, duplicate slugs, or bad pagination bounds.
	ErrInvalidArgument = errors.New("store: invalid argument")

	// ErrIndexCorrupted is returned when a slug index entry points to a
	// missing primary record. It signals a prior atomicity violation and
	// is never masked as ErrNotFound.
	ErrIndexCorrupted = errors.New("store: slug index references missing record")

	// ErrStoreUnavailable wraps backend failures. Transient; callers may
	// retry, the store itself does not.
	ErrStoreUnavailable = errors.New("store: backend unavailable")
)

// txErr normalizes a transaction result: application-level sentinels
// pass through untouched, anything else is a backend fault.
func txErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrIndexCorrupted) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
