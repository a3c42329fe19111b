// Package bitpath provides Path, the compact bit sequence produced by the bbse encoder.
//
// A Path records the left/right decisions of a binary search in root-to-leaf order:
// false means the value lies below the probed midpoint, true means it lies at or
// above it. Paths carry no header, length prefix or range metadata; the range must
// be agreed on out of band.
//
// # Representation
//
// Paths are stored most-significant-bit first in a single uint64, so they are
// comparable values that never allocate. Three interchange forms are offered:
//
//   - Text: String and Parse ("0110")
//   - Bytes: Bytes, AppendBytes and FromBytes (MSB-first, zero padded)
//   - Bit streams: Write and Read on github.com/icza/bitio writers and readers,
//     for packing many paths into a caller-owned buffer
//
// Example:
//
//	var buf bytes.Buffer
//	w := bitio.NewWriter(&buf)
//	_ = p.Write(w)
//	_ = w.Close()
//
//	r := bitio.NewReader(&buf)
//	q, _ := bitpath.Read(r, p.Len())
package bitpath
