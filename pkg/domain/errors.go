// Package domain holds errors and types shared across the domain layer.
package domain

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when an insert violates a uniqueness constraint.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrConflict is returned on transient contention. The whole call may be
	// retried safely because Apply is idempotent on the transaction ID.
	ErrConflict = errors.New("conflicting concurrent update")

	// ErrStoreUnavailable is returned when the underlying store cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)
