package bitpath

import (
	"fmt"

	"github.com/icza/bitio"

	"github.com/arloliu/bbse/errs"
)

// ByteLen returns the number of bytes needed to pack the path.
func (p Path) ByteLen() int {
	return (int(p.n) + 7) / 8
}

// Bytes packs the path MSB-first into a new byte slice of ByteLen() bytes.
// Padding bits in the last byte are zero.
//
// The packed form carries no length; callers must keep Len() alongside it.
func (p Path) Bytes() []byte {
	return p.AppendBytes(make([]byte, 0, p.ByteLen()))
}

// AppendBytes appends the packed path to dst and returns the extended slice.
func (p Path) AppendBytes(dst []byte) []byte {
	word := p.word
	for range p.ByteLen() {
		dst = append(dst, byte(word>>56))
		word <<= 8
	}

	return dst
}

// FromBytes unpacks n decisions from b, MSB-first.
//
// Bits of b beyond the first n are ignored.
//
// Returns:
//   - ErrPathTooLong when n exceeds MaxLen
//   - ErrIncompletePath when b holds fewer than n bits
func FromBytes(b []byte, n int) (Path, error) {
	if n < 0 || n > MaxLen {
		return Path{}, fmt.Errorf("%w: %d bits, max %d", errs.ErrPathTooLong, n, MaxLen)
	}

	need := (n + 7) / 8
	if len(b) < need {
		return Path{}, fmt.Errorf("%w: need %d bytes for %d bits, have %d", errs.ErrIncompletePath, need, n, len(b))
	}

	if n == 0 {
		return Path{}, nil
	}

	var word uint64
	for i := range need {
		word |= uint64(b[i]) << (56 - 8*uint(i))
	}
	word &= ^uint64(0) << (MaxLen - uint(n))

	return Path{word: word, n: uint8(n)}, nil
}

// Write writes the decisions to a caller-owned bit stream, first decision first.
//
// Nothing is written for an empty path. The stream is not flushed; callers
// close or align the writer when they are done.
func (p Path) Write(w *bitio.Writer) error {
	if p.n == 0 {
		return nil
	}

	return w.WriteBits(p.Uint64(), p.n)
}

// Read reads n decisions from a bit stream.
func Read(r *bitio.Reader, n int) (Path, error) {
	if n < 0 || n > MaxLen {
		return Path{}, fmt.Errorf("%w: %d bits, max %d", errs.ErrPathTooLong, n, MaxLen)
	}
	if n == 0 {
		return Path{}, nil
	}

	v, err := r.ReadBits(uint8(n))
	if err != nil {
		return Path{}, fmt.Errorf("failed to read %d path bits: %w", n, err)
	}

	return FromUint64(v, n)
}
