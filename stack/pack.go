package stack

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"

	"github.com/arloliu/bbse/bitpath"
	"github.com/arloliu/bbse/errs"
	"github.com/arloliu/bbse/internal/pool"
)

// Lengths returns the bit length of every path, oldest first.
//
// Packed paths are not self-delimiting; the lengths are what Unpack needs to
// split the bit sequence again.
func (s *Stack) Lengths() []int {
	lengths := make([]int, len(s.entries))
	for i, p := range s.entries {
		lengths[i] = p.Len()
	}

	return lengths
}

// AppendPacked appends every path, oldest first, to dst as one MSB-first bit
// sequence zero padded to a byte boundary.
//
// Example:
//
//	// paths 000, 00, 0, 01 pack into 0b00000001
//	packed, _ := s.AppendPacked(nil)
func (s *Stack) AppendPacked(dst []byte) ([]byte, error) {
	bb := pool.GetStackBuffer()
	defer pool.PutStackBuffer(bb)

	bb.Grow((s.Bits() + 7) / 8)
	w := bitio.NewWriter(bb)
	for i, p := range s.entries {
		if err := p.Write(w); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush paths: %w", err)
	}

	return append(dst, bb.Bytes()...), nil
}

// Unpack splits a bit sequence produced by AppendPacked back into a stack.
//
// Parameters:
//   - data: Packed paths; must hold exactly the bytes the lengths call for
//   - lengths: Bit length of every path, oldest first
//
// Returns:
//   - *Stack: Stack holding the unpacked paths in order
//   - error: ErrPathTooLong for a length outside [0, bitpath.MaxLen], or ErrInvalidPackedData
func Unpack(data []byte, lengths []int) (*Stack, error) {
	totalBits := 0
	for i, n := range lengths {
		if n < 0 || n > bitpath.MaxLen {
			return nil, fmt.Errorf("entry %d: %w: %d bits, max %d", i, errs.ErrPathTooLong, n, bitpath.MaxLen)
		}
		totalBits += n
	}

	if want := (totalBits + 7) / 8; len(data) != want {
		return nil, fmt.Errorf("%w: %d bytes for %d bits, want %d", errs.ErrInvalidPackedData, len(data), totalBits, want)
	}

	s := NewWithCapacity(len(lengths))
	r := bitio.NewReader(bytes.NewReader(data))
	for i, n := range lengths {
		p, err := bitpath.Read(r, n)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		s.Push(p)
	}

	return s, nil
}
