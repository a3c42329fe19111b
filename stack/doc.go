// Package stack stores sequences of bbse paths.
//
// Stack is the minimal container: paths are pushed and popped in LIFO order and
// decoded together against one shared range. Because BBSE paths carry no range
// metadata, a Stack cannot tell when an entry came from another range; decoding
// such an entry yields a wrong value or an ErrIncompletePath error.
//
// RangedStack pairs every path with the encoding.Codec that produced it, so
// entries from different ranges, or with different first midpoints, can share one
// container.
//
// A Stack packs into one bit sequence with AppendPacked. The sequence carries no
// lengths, so Unpack needs the slice returned by Lengths to split it again.
//
// Example:
//
//	s := stack.New()
//	for v := range uint64(8) {
//	    _ = s.PushValue(0, 8, v)
//	}
//	values, _ := s.DecodeAll(0, 8) // [0 1 2 3 4 5 6 7]
package stack
