// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist or is not visible to the caller.
	ErrNotFound = errors.New("not found")

	// ErrForbidden indicates the caller is known but lacks the capability for the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTransition indicates a status change outside the lifecycle table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrValidation indicates rejected input; see ValidationError for field details.
	ErrValidation = errors.New("validation failed")

	// ErrVersionConflict indicates optimistic concurrency failure (aggregate version mismatch).
	ErrVersionConflict = errors.New("version conflict")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., wiki for project exists).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnknownKind indicates an event discriminator missing from the registry.
	ErrUnknownKind = errors.New("unknown event kind")
)
