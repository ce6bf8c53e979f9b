// Package errs defines the sentinel errors returned by jflat packages.
//
// Errors are compared with errors.Is. Packages wrap them with fmt.Errorf("...: %w")
// when additional context is useful, so callers should never compare error strings.
package errs

import "errors"

// Container errors.
var (
	// ErrNotInitialized is returned when a container is used before Init or after Destroy.
	ErrNotInitialized = errors.New("container is not initialized")
	// ErrAlreadyInitialized is returned when Init is called on an initialized container.
	ErrAlreadyInitialized = errors.New("container is already initialized")
	// ErrInvalidCapacity is returned when a container is created with zero capacity.
	ErrInvalidCapacity = errors.New("invalid capacity")
	// ErrOutOfRange is returned when a logical position is outside the container.
	ErrOutOfRange = errors.New("position out of range")
	// ErrFull is returned when inserting into a full fixed-capacity container.
	ErrFull = errors.New("container is full")
	// ErrEmpty is returned when reading or removing from an empty container.
	ErrEmpty = errors.New("container is empty")
	// ErrCapacityExceeded is returned when a growable container cannot grow past its limit.
	ErrCapacityExceeded = errors.New("container capacity limit exceeded")
)

// Scalar extraction errors.
var (
	// ErrTypeMismatch is returned when a token kind does not match the requested scalar type.
	ErrTypeMismatch = errors.New("token kind does not match requested type")
	// ErrInvalidNumber is returned when a number token is not fully consumed by the conversion.
	ErrInvalidNumber = errors.New("invalid number")
)

// Traversal errors.
var (
	// ErrMalformedDocument is reported when a span could not be tokenized.
	ErrMalformedDocument = errors.New("malformed JSON document")
	// ErrDepthExceeded is reported when nesting exceeds the configured maximum depth.
	ErrDepthExceeded = errors.New("maximum nesting depth exceeded")
)

// Index and payload errors.
var (
	// ErrInvalidPath is returned when an empty leaf path is tracked.
	ErrInvalidPath = errors.New("invalid leaf path")
	// ErrDuplicatePath is returned when the same leaf path is tracked twice.
	ErrDuplicatePath = errors.New("duplicate leaf path")
	// ErrInvalidCompression is returned for an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
	// ErrPayloadTooLarge is returned when a decoded payload exceeds the configured limit.
	ErrPayloadTooLarge = errors.New("payload too large")
	// ErrPayloadReleased is returned when a payload is used after Release.
	ErrPayloadReleased = errors.New("payload already released")
)
