package format

import (
	"fmt"

	"github.com/arloliu/bbse/errs"
)

// Range is the half-open interval [Start, End) a value is encoded against.
//
// A Range is never stored inside a path; encoder and decoder must agree on it
// out of band.
type Range struct {
	Start uint64
	End   uint64
}

// NewRange returns a validated range.
func NewRange(start, end uint64) (Range, error) {
	r := Range{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}

	return r, nil
}

// Validate reports ErrInvalidRange when the range is empty.
func (r Range) Validate() error {
	if r.Start >= r.End {
		return fmt.Errorf("%w: start (%d) >= end (%d)", errs.ErrInvalidRange, r.Start, r.End)
	}

	return nil
}

// Len returns the number of values in the range. Zero for an invalid range.
func (r Range) Len() uint64 {
	if r.Start >= r.End {
		return 0
	}

	return r.End - r.Start
}

// Contains reports whether v lies in [Start, End).
func (r Range) Contains(v uint64) bool {
	return r.Start <= v && v < r.End
}

// IsSingleton reports whether the range holds exactly one value.
func (r Range) IsSingleton() bool {
	return r.Len() == 1
}

// Mid returns the floor midpoint of the range.
func (r Range) Mid() uint64 {
	return Midpoint(r.Start, r.End)
}

// ContainsMidpoint reports whether m is strictly inside (Start, End), the only
// positions usable as a first split point.
func (r Range) ContainsMidpoint(m uint64) bool {
	return r.Start < m && m < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Midpoint returns floor((lo+hi)/2) without overflowing. It requires lo <= hi.
func Midpoint(lo, hi uint64) uint64 {
	return lo + (hi-lo)/2
}
