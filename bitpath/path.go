package bitpath

import (
	"fmt"
	"iter"
	"strings"

	"github.com/arloliu/bbse/errs"
)

// MaxLen is the maximum number of decisions a path can hold.
//
// Each decision at least halves a uint64 range, so no encoder output is longer.
const MaxLen = 64

// Path is an ordered sequence of binary search decisions, stored MSB-first in a
// single 64-bit word.
//
// Bit i of the path lives at bit position 63-i of the word, and every bit at or
// beyond Len() is zero. Two paths are therefore equal exactly when they compare
// equal with ==, and a Path can be used as a map key.
//
// The zero value is the empty path. Path is a value type: building, copying and
// comparing paths never allocates.
type Path struct {
	word uint64
	n    uint8
}

// Len returns the number of decisions in the path.
func (p Path) Len() int {
	return int(p.n)
}

// IsEmpty reports whether the path holds no decisions.
func (p Path) IsEmpty() bool {
	return p.n == 0
}

// Push appends a decision to the path.
//
// Push panics when the path already holds MaxLen decisions; encoder output never does.
func (p *Path) Push(bit bool) {
	if p.n >= MaxLen {
		panic("bitpath: push on a full path")
	}

	if bit {
		p.word |= 1 << (MaxLen - 1 - uint(p.n))
	}
	p.n++
}

// Bit returns the i-th decision, counting from the root.
//
// Bit panics when i is outside [0, Len()).
func (p Path) Bit(i int) bool {
	if i < 0 || i >= int(p.n) {
		panic(fmt.Sprintf("bitpath: bit index %d out of range [0, %d)", i, p.n))
	}

	return p.word&(1<<(MaxLen-1-uint(i))) != 0
}

// All returns an iterator over the decisions in root-to-leaf order.
func (p Path) All() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		word := p.word
		for range int(p.n) {
			if !yield(word&(1<<(MaxLen-1)) != 0) {
				return
			}
			word <<= 1
		}
	}
}

// Prefix returns the first n decisions of the path.
// n is clamped to [0, Len()].
func (p Path) Prefix(n int) Path {
	if n <= 0 {
		return Path{}
	}
	if n >= int(p.n) {
		return p
	}

	return Path{word: p.word &^ (^uint64(0) >> uint(n)), n: uint8(n)}
}

// Uint64 returns the decisions as an unsigned integer whose lowest Len() bits hold
// the path, first decision in the most significant of those bits.
func (p Path) Uint64() uint64 {
	if p.n == 0 {
		return 0
	}

	return p.word >> (MaxLen - uint(p.n))
}

// FromUint64 builds a path of n decisions from the lowest n bits of v.
//
// Returns ErrPathTooLong when n exceeds MaxLen.
func FromUint64(v uint64, n int) (Path, error) {
	if n < 0 || n > MaxLen {
		return Path{}, fmt.Errorf("%w: %d bits, max %d", errs.ErrPathTooLong, n, MaxLen)
	}
	if n == 0 {
		return Path{}, nil
	}

	return Path{word: v << (MaxLen - uint(n)), n: uint8(n)}, nil
}

// String renders the path as a string of '0' and '1', root first.
// The empty path renders as "".
func (p Path) String() string {
	if p.n == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(int(p.n))
	for bit := range p.All() {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// Parse parses a string of '0' and '1' into a path.
//
// Underscores and spaces are ignored so long paths can be grouped, e.g. "0110_1001".
func Parse(s string) (Path, error) {
	var p Path
	for i, r := range s {
		switch r {
		case '0', '1':
			if p.n >= MaxLen {
				return Path{}, fmt.Errorf("%w: %q exceeds %d bits", errs.ErrPathTooLong, s, MaxLen)
			}
			p.Push(r == '1')
		case '_', ' ':
		default:
			return Path{}, fmt.Errorf("%w: unexpected %q at offset %d", errs.ErrInvalidPathString, r, i)
		}
	}

	return p, nil
}

// MustParse is like Parse but panics on error. It is intended for tests and
// package-level variables.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return p
}
