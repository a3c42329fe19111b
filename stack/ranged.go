package stack

import (
	"fmt"
	"io"
	"iter"

	"github.com/arloliu/bbse/bitpath"
	"github.com/arloliu/bbse/encoding"
	"github.com/arloliu/bbse/format"
)

// Entry is a path paired with the codec it was encoded with.
type Entry struct {
	Codec *encoding.Codec
	Path  bitpath.Path
}

// Range returns the range the entry was encoded against.
func (e Entry) Range() format.Range {
	return e.Codec.Range()
}

// Decode decodes the entry with its own codec.
func (e Entry) Decode() (uint64, error) {
	return e.Codec.Decode(e.Path)
}

// RangedStack stores paths together with their originating range and midpoint,
// so entries encoded against different ranges decode correctly.
//
// RangedStack is not safe for concurrent use.
type RangedStack struct {
	entries []Entry
}

// NewRanged creates an empty ranged stack.
func NewRanged() *RangedStack {
	return &RangedStack{}
}

// Push appends a path encoded with c.
//
// Push panics when c is nil.
func (s *RangedStack) Push(c *encoding.Codec, p bitpath.Path) {
	if c == nil {
		panic("stack: push with a nil codec")
	}

	s.entries = append(s.entries, Entry{Codec: c, Path: p})
}

// PushValue encodes v with c and pushes the result.
// Like Push, it panics when c is nil.
func (s *RangedStack) PushValue(c *encoding.Codec, v uint64) error {
	if c == nil {
		panic("stack: push with a nil codec")
	}

	p, err := c.Encode(v)
	if err != nil {
		return err
	}
	s.Push(c, p)

	return nil
}

// Pop removes and returns the most recently pushed entry.
func (s *RangedStack) Pop() (Entry, bool) {
	n := len(s.entries)
	if n == 0 {
		return Entry{}, false
	}

	e := s.entries[n-1]
	s.entries[n-1] = Entry{}
	s.entries = s.entries[:n-1]

	return e, true
}

// Len returns the number of stored entries.
func (s *RangedStack) Len() int {
	return len(s.entries)
}

// All iterates over the stored entries in storage order.
func (s *RangedStack) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range s.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// DecodeAll decodes every entry against its own range, in storage order.
func (s *RangedStack) DecodeAll() ([]uint64, error) {
	values := make([]uint64, 0, len(s.entries))
	for i, e := range s.entries {
		v, err := e.Decode()
		if err != nil {
			return nil, fmt.Errorf("entry %d over %s: %w", i, e.Range(), err)
		}
		values = append(values, v)
	}

	return values, nil
}

// Format writes one "encoded: <path> <range>" line per entry, oldest first.
func (s *RangedStack) Format(w io.Writer) error {
	for _, e := range s.entries {
		if _, err := fmt.Fprintf(w, "encoded: %s %s\n", display(e.Path), e.Range()); err != nil {
			return err
		}
	}

	return nil
}
