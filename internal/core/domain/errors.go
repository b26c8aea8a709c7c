package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrMalformedInput indicates the input document is missing, unreadable,
	// or not valid JSON of the expected shape. Fatal: the run aborts before
	// any output is written.
	ErrMalformedInput = errors.New("malformed input")

	// ErrOutputWrite indicates one of the output documents could not be
	// created or written. Both outputs are attempted before failures are
	// reported jointly.
	ErrOutputWrite = errors.New("output write failed")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input to an operation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates an unknown input/output encoding.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
