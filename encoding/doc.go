// Package encoding implements Backward Binary Search Encoding (BBSE).
//
// BBSE represents a value known to lie in a half-open range [start, end) as the
// left/right decisions a binary search takes while locating it. The encoding is
// deterministic, needs no statistical model, and is decoded with nothing but the
// range it was produced against.
//
// # Encoding
//
// Encode probes the floor midpoint of the current bounds at every step. A value
// equal to the probed midpoint ends the search early, so values close to the middle
// of the range get the shortest paths:
//
//	path, _ := encoding.Encode(0, 8, 4) // ""
//	path, _ = encoding.Encode(0, 8, 5)  // "10"
//	path, _ = encoding.Encode(0, 8, 0)  // "000"
//
// EncodeFrom replaces the first probe with a caller-chosen split point, which
// biases the encoding toward values near that point:
//
//	path, _ := encoding.EncodeFrom(0, 256, 8, 8) // ""
//
// # Decoding
//
// Decode and DecodeFrom replay the decisions over the same range (and midpoint).
// They accept exactly the paths the matching encoder can produce and report
// ErrIncompletePath for anything else.
//
// # Codec
//
// Codec binds a range and an optional first midpoint once, and adds bit-stream
// helpers (WriteValue, ReadValue) for packing many paths into a caller-owned buffer.
// Verify walks a whole range to check round-trip and uniqueness and to summarize
// path lengths.
//
// # Errors
//
// All failures wrap a sentinel from github.com/arloliu/bbse/errs:
//   - ErrInvalidRange: start >= end
//   - ErrTargetOutOfBounds: value outside [start, end)
//   - ErrMidpointOutOfBounds: custom midpoint not strictly inside (start, end)
//   - ErrIncompletePath: path is not an encoder output for the range
package encoding
