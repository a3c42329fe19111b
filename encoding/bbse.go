package encoding

import (
	"fmt"

	"github.com/arloliu/bbse/bitpath"
	"github.com/arloliu/bbse/errs"
	"github.com/arloliu/bbse/format"
)

// Encode returns the binary search path that locates target in [start, end).
//
// At every step the midpoint of the current bounds is probed. The search stops as
// soon as the probed midpoint equals target, or once the bounds narrow to a single
// value. As a consequence the path is empty for a singleton range and for a target
// that equals the first midpoint.
//
// Parameters:
//   - start: First value of the range (inclusive)
//   - end: End of the range (exclusive)
//   - target: Value to encode
//
// Returns:
//   - bitpath.Path: Decisions in root-to-leaf order, at most bits.Len64(end-start-1) long
//   - error: ErrInvalidRange when start >= end, ErrTargetOutOfBounds when target is not in [start, end)
func Encode(start, end, target uint64) (bitpath.Path, error) {
	rng := format.Range{Start: start, End: end}
	if err := checkTarget(rng, target); err != nil {
		return bitpath.Path{}, err
	}

	return search(rng, target, rng.Mid()), nil
}

// EncodeFrom is like Encode but probes the caller-supplied midpoint at the first step.
//
// Later steps use the arithmetic midpoint of the narrowed bounds. Choosing a
// midpoint close to the values that occur most often shortens their paths.
//
// A singleton range returns the empty path without consulting midpoint. Otherwise
// midpoint must lie strictly inside (start, end).
//
// Returns:
//   - bitpath.Path: Decisions in root-to-leaf order
//   - error: ErrInvalidRange, ErrTargetOutOfBounds or ErrMidpointOutOfBounds
func EncodeFrom(start, end, target, midpoint uint64) (bitpath.Path, error) {
	rng := format.Range{Start: start, End: end}
	if err := checkTarget(rng, target); err != nil {
		return bitpath.Path{}, err
	}

	if rng.IsSingleton() {
		return bitpath.Path{}, nil
	}

	if err := checkMidpoint(rng, midpoint); err != nil {
		return bitpath.Path{}, err
	}

	return search(rng, target, midpoint), nil
}

// Decode returns the value whose Encode path over [start, end) is path.
//
// The range must be the one used at encode time; paths carry no range metadata.
//
// An empty range is rejected up front with ErrInvalidRange, never ErrIncompletePath,
// even though no path could resolve it.
//
// Returns:
//   - uint64: The decoded value
//   - error: ErrInvalidRange when start >= end, ErrIncompletePath when path is not
//     an encoder output for the range (trailing bits, or a value the encoder would
//     have reached with a shorter path)
func Decode(start, end uint64, path bitpath.Path) (uint64, error) {
	rng := format.Range{Start: start, End: end}
	if err := rng.Validate(); err != nil {
		return 0, err
	}

	return resolve(rng, path, rng.Mid())
}

// DecodeFrom is the inverse of EncodeFrom for the same range and midpoint.
//
// An empty path decodes to midpoint, or to start for a singleton range. The range
// and midpoint are validated as in EncodeFrom before the path is read, so an empty
// path with an out-of-bounds midpoint fails with ErrMidpointOutOfBounds rather
// than echoing the midpoint back.
func DecodeFrom(start, end uint64, path bitpath.Path, midpoint uint64) (uint64, error) {
	rng := format.Range{Start: start, End: end}
	if err := rng.Validate(); err != nil {
		return 0, err
	}

	if rng.IsSingleton() {
		return resolve(rng, path, rng.Start)
	}

	if err := checkMidpoint(rng, midpoint); err != nil {
		return 0, err
	}

	return resolve(rng, path, midpoint)
}

func checkTarget(rng format.Range, target uint64) error {
	if err := rng.Validate(); err != nil {
		return err
	}

	if !rng.Contains(target) {
		return fmt.Errorf("%w: target (%d) not in %s", errs.ErrTargetOutOfBounds, target, rng)
	}

	return nil
}

func checkMidpoint(rng format.Range, midpoint uint64) error {
	if !rng.ContainsMidpoint(midpoint) {
		return fmt.Errorf("%w: midpoint (%d) must be within (start=%d, end=%d)",
			errs.ErrMidpointOutOfBounds, midpoint, rng.Start, rng.End)
	}

	return nil
}

// search records the decisions of a binary search for target, probing mid first.
// target must lie in rng; mid must lie in rng, strictly above Start unless rng is a singleton.
func search(rng format.Range, target, mid uint64) bitpath.Path {
	var path bitpath.Path

	lo, hi := rng.Start, rng.End
	for target != mid {
		if target < mid {
			path.Push(false)
			hi = mid
		} else {
			path.Push(true)
			lo = mid
		}

		if hi-lo == 1 {
			break
		}

		mid = format.Midpoint(lo, hi)
	}

	return path
}

// resolve replays path over rng, probing mid first, and returns the located value.
//
// It accepts exactly the paths search can produce:
//   - no decision may follow the bounds narrowing to one value
//   - the located value may not equal a midpoint probed on the way, which is only
//     possible when it equals lo after a right turn
func resolve(rng format.Range, path bitpath.Path, mid uint64) (uint64, error) {
	lo, hi := rng.Start, rng.End
	turnedRight := false

	for i := range path.Len() {
		if hi-lo == 1 {
			return 0, fmt.Errorf("%w: %d trailing bits after %s narrowed to %d",
				errs.ErrIncompletePath, path.Len()-i, rng, lo)
		}

		if path.Bit(i) {
			lo = mid
			turnedRight = true
		} else {
			hi = mid
		}

		mid = format.Midpoint(lo, hi)
	}

	if turnedRight && mid == lo {
		return 0, fmt.Errorf("%w: path %q over %s overshoots value %d", errs.ErrIncompletePath, path, rng, lo)
	}

	return mid, nil
}
