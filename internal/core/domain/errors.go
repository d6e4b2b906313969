package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingCursor indicates the local cursor state is absent. The
	// operator must re-bootstrap before notifications can be handled.
	ErrMissingCursor = errors.New("cursor state missing, run bootstrap")

	// ErrNoDecoder indicates an allow-listed MIME type with no decoder.
	ErrNoDecoder = errors.New("no decoder available")

	// ErrCorruptContainer indicates a document container failed to parse.
	ErrCorruptContainer = errors.New("corrupt container")

	// ErrAuthRequired indicates no usable credentials are configured.
	// Fatal at startup; no processing is possible without a session.
	ErrAuthRequired = errors.New("authentication required")

	// ErrStoreUnavailable indicates the vector store rejected or never
	// received a record.
	ErrStoreUnavailable = errors.New("vector store unavailable")
)
