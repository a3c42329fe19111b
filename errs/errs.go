// Package errs defines the sentinel errors returned by bbse.
//
// Errors are always wrapped with call-site context, so callers should match them
// with errors.Is:
//
//	path, err := encoding.Encode(0, 5, 5)
//	if errors.Is(err, errs.ErrTargetOutOfBounds) {
//	    // handle
//	}
package errs

import "errors"

var (
	// ErrInvalidRange is returned when a range [start, end) is empty, i.e. start >= end.
	ErrInvalidRange = errors.New("invalid range")

	// ErrTargetOutOfBounds is returned when a value to encode lies outside [start, end).
	ErrTargetOutOfBounds = errors.New("target out of bounds")

	// ErrMidpointOutOfBounds is returned when a custom midpoint is not strictly inside (start, end).
	ErrMidpointOutOfBounds = errors.New("midpoint out of bounds")

	// ErrIncompletePath is returned when a path does not resolve the range to the
	// single value the encoder would have produced it for.
	ErrIncompletePath = errors.New("incomplete path")

	// ErrPathTooLong is returned when a bit sequence exceeds bitpath.MaxLen bits.
	ErrPathTooLong = errors.New("path too long")

	// ErrInvalidPathString is returned when a textual path contains runes other than '0' and '1'.
	ErrInvalidPathString = errors.New("invalid path string")

	// ErrRangeTooLarge is returned when an exhaustive operation is asked to walk more values than allowed.
	ErrRangeTooLarge = errors.New("range too large")

	// ErrDuplicatePath is returned by verification when two values share the same path.
	ErrDuplicatePath = errors.New("duplicate path")

	// ErrRoundTripMismatch is returned by verification when decode does not invert encode.
	ErrRoundTripMismatch = errors.New("round-trip mismatch")

	// ErrInvalidPackedData is returned when a packed bit sequence does not match its path lengths.
	ErrInvalidPackedData = errors.New("invalid packed data")
)
