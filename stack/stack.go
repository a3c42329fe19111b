package stack

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/arloliu/bbse/bitpath"
	"github.com/arloliu/bbse/encoding"
)

// Stack stores encoded paths in insertion order.
//
// Entries carry no range: every path is assumed to have been produced against the
// range later passed to DecodeAll. Use RangedStack when entries come from
// different ranges.
//
// Stack is not safe for concurrent use.
type Stack struct {
	entries []bitpath.Path
}

// New creates an empty stack.
func New() *Stack {
	return &Stack{}
}

// NewWithCapacity creates an empty stack with room for n paths.
func NewWithCapacity(n int) *Stack {
	return &Stack{entries: make([]bitpath.Path, 0, n)}
}

// Push appends a path.
func (s *Stack) Push(p bitpath.Path) {
	s.entries = append(s.entries, p)
}

// PushValue encodes v over [start, end) and pushes the result.
func (s *Stack) PushValue(start, end, v uint64) error {
	p, err := encoding.Encode(start, end, v)
	if err != nil {
		return err
	}
	s.Push(p)

	return nil
}

// Pop removes and returns the most recently pushed path.
// It returns false when the stack is empty.
func (s *Stack) Pop() (bitpath.Path, bool) {
	n := len(s.entries)
	if n == 0 {
		return bitpath.Path{}, false
	}

	p := s.entries[n-1]
	s.entries = s.entries[:n-1]

	return p, true
}

// Peek returns the most recently pushed path without removing it.
func (s *Stack) Peek() (bitpath.Path, bool) {
	if len(s.entries) == 0 {
		return bitpath.Path{}, false
	}

	return s.entries[len(s.entries)-1], true
}

// Len returns the number of stored paths.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Bits returns the total number of decisions stored.
func (s *Stack) Bits() int {
	total := 0
	for _, p := range s.entries {
		total += p.Len()
	}

	return total
}

// All iterates over the stored paths in storage order, oldest first.
func (s *Stack) All() iter.Seq2[int, bitpath.Path] {
	return func(yield func(int, bitpath.Path) bool) {
		for i, p := range s.entries {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Reset removes all paths, keeping the allocated storage.
func (s *Stack) Reset() {
	s.entries = s.entries[:0]
}

// DecodeAll decodes every stored path over [start, end), in storage order.
//
// The stack is not modified. The first path that does not decode aborts the
// call; the error names its index.
func (s *Stack) DecodeAll(start, end uint64) ([]uint64, error) {
	c, err := encoding.NewCodec(start, end)
	if err != nil {
		return nil, err
	}

	return s.DecodeAllWith(c)
}

// DecodeAllFrom is like DecodeAll for paths produced by EncodeFrom with midpoint.
func (s *Stack) DecodeAllFrom(start, end, midpoint uint64) ([]uint64, error) {
	c, err := encoding.NewCodec(start, end, encoding.WithMidpoint(midpoint))
	if err != nil {
		return nil, err
	}

	return s.DecodeAllWith(c)
}

// DecodeAllWith decodes every stored path with c, in storage order.
func (s *Stack) DecodeAllWith(c *encoding.Codec) ([]uint64, error) {
	values := make([]uint64, 0, len(s.entries))
	for i, p := range s.entries {
		v, err := c.Decode(p)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		values = append(values, v)
	}

	return values, nil
}

// Format writes one "encoded: <path>" line per entry, oldest first.
// Empty paths are written as "[]".
func (s *Stack) Format(w io.Writer) error {
	for _, p := range s.entries {
		if _, err := fmt.Fprintf(w, "encoded: %s\n", display(p)); err != nil {
			return err
		}
	}

	return nil
}

func (s *Stack) String() string {
	var sb strings.Builder
	_ = s.Format(&sb)

	return sb.String()
}

func display(p bitpath.Path) string {
	if p.IsEmpty() {
		return "[]"
	}

	return p.String()
}
