package hash

import (
	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/bbse/bitpath"
)

// PathID computes the xxHash64 of a single path.
//
// The length is hashed together with the packed bits, so "0" and "00" differ.
func PathID(p bitpath.Path) uint64 {
	var scratch [1 + bitpath.MaxLen/8]byte

	return xxhash.Sum64(appendPath(scratch[:0], p))
}

// Digest accumulates an order-sensitive xxHash64 over a sequence of paths.
//
// It fingerprints a whole encoding table, e.g. every path of a range in value
// order, so two tables can be compared without keeping either in memory.
type Digest struct {
	d       *xxhash.Digest
	scratch [1 + bitpath.MaxLen/8]byte
	count   uint64
}

// NewDigest creates an empty digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Add appends p to the digested sequence.
func (d *Digest) Add(p bitpath.Path) {
	// xxhash.Digest.Write never fails
	_, _ = d.d.Write(appendPath(d.scratch[:0], p))
	d.count++
}

// Count returns the number of paths added since creation or the last Reset.
func (d *Digest) Count() uint64 {
	return d.count
}

// Sum64 returns the digest of the sequence added so far.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}

// Reset clears the digest for reuse.
func (d *Digest) Reset() {
	d.d.Reset()
	d.count = 0
}

func appendPath(dst []byte, p bitpath.Path) []byte {
	dst = append(dst, byte(p.Len()))

	return p.AppendBytes(dst)
}
