package tegenome

import "errors"

// Argument errors
var (
	// ErrOutOfRange indicates an insertion position outside [0, Length()).
	ErrOutOfRange = errors.New("position out of range")

	// ErrInvalidLength indicates a non-positive length: a genome size or
	// element length of zero or less.
	ErrInvalidLength = errors.New("length must be positive")
)

// Element errors
var (
	// ErrElementNotActive indicates that the requested element id is
	// unknown, already disabled, or was collision-killed, and therefore
	// cannot be copied.
	ErrElementNotActive = errors.New("element is not active")
)

// Consistency errors
var (
	// ErrIntegrity indicates that an internal invariant check failed.
	// It is only returned by CheckIntegrity and signals a bug in this
	// package, not a caller mistake.
	ErrIntegrity = errors.New("genome integrity violation")
)
