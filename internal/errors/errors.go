package errors

import (
	"errors"
	"fmt"
)

// Shared error values used across the service packages. Feature packages
// declare their own domain errors and wrap or accompany these where a
// common classification is useful (e.g. HTTP status mapping in server).
var (
	// ErrNotFound marks lookups of records that are not in the store.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable marks failures of the underlying key-value store.
	// These are unexpected and fatal for the operation; they are never the
	// result of normal user input.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrRemoteService marks vendor HTTP failures (non-success status or
	// exhausted poll budget).
	ErrRemoteService = errors.New("remote service error")

	// ErrInternal is the catch-all for unexpected conditions.
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
