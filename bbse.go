// Package bbse implements Backward Binary Search Encoding: a value known to lie in a
// half-open range [start, end) is stored as the left/right decisions a binary search
// takes to find it.
//
// BBSE needs no statistical model and no header. A path is decoded with nothing
// but the range it was encoded against, values near the middle of the range get
// the shortest paths, and no path exceeds ceil(log2(end-start)) bits.
//
// # Core Features
//
//   - Deterministic, reversible encoding of any uint64 value in a known range
//   - Early termination on midpoint hits (the middle value encodes to an empty path)
//   - Custom first split point to favor a skewed distribution (EncodeFrom)
//   - Allocation-free Path values, packable into bytes or a bit stream
//   - Stack containers for storing many paths
//
// # Basic Usage
//
//	path, err := bbse.Encode(0, 256, 200)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(path) // "1100"
//
//	v, err := bbse.Decode(0, 256, path) // 200
//
// Storing several values that share a range:
//
//	s := bbse.NewStack()
//	for _, v := range []uint64{3, 1, 4} {
//	    _ = s.PushValue(0, 8, v)
//	}
//	values, _ := s.DecodeAll(0, 8) // [3 1 4]
//
// # Package Structure
//
// This package provides convenient top-level wrappers. For finer control use the
// sub-packages directly:
//
//   - encoding: the algorithm, Codec and Verify
//   - bitpath: the Path type and its byte and bit-stream forms
//   - stack: Stack and RangedStack
//   - errs: sentinel errors
package bbse

import (
	"github.com/arloliu/bbse/bitpath"
	"github.com/arloliu/bbse/encoding"
	"github.com/arloliu/bbse/stack"
)

// Path is the sequence of binary search decisions produced by Encode.
type Path = bitpath.Path

// Encode returns the path that locates target in [start, end).
//
// Returns an error wrapping errs.ErrInvalidRange or errs.ErrTargetOutOfBounds.
func Encode(start, end, target uint64) (Path, error) {
	return encoding.Encode(start, end, target)
}

// EncodeFrom is like Encode but splits at midpoint first.
//
// Returns an error wrapping errs.ErrInvalidRange, errs.ErrTargetOutOfBounds or
// errs.ErrMidpointOutOfBounds.
func EncodeFrom(start, end, target, midpoint uint64) (Path, error) {
	return encoding.EncodeFrom(start, end, target, midpoint)
}

// Decode returns the value located by path in [start, end).
//
// Returns an error wrapping errs.ErrInvalidRange or errs.ErrIncompletePath.
func Decode(start, end uint64, path Path) (uint64, error) {
	return encoding.Decode(start, end, path)
}

// DecodeFrom is the inverse of EncodeFrom for the same range and midpoint.
func DecodeFrom(start, end uint64, path Path, midpoint uint64) (uint64, error) {
	return encoding.DecodeFrom(start, end, path, midpoint)
}

// NewCodec creates a codec bound to [start, end). See encoding.NewCodec.
func NewCodec(start, end uint64, opts ...encoding.CodecOption) (*encoding.Codec, error) {
	return encoding.NewCodec(start, end, opts...)
}

// NewStack creates an empty path stack.
func NewStack() *stack.Stack {
	return stack.New()
}

// ParsePath parses a path written as '0' and '1' characters.
func ParsePath(s string) (Path, error) {
	return bitpath.Parse(s)
}
