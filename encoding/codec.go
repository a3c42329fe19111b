package encoding

import (
	"fmt"

	"github.com/icza/bitio"

	"github.com/arloliu/bbse/bitpath"
	"github.com/arloliu/bbse/format"
	"github.com/arloliu/bbse/internal/options"
)

// Codec binds a range, and optionally a custom first midpoint, so that many values
// can be encoded and decoded without repeating and revalidating them.
//
// A Codec is immutable after NewCodec returns and is safe for concurrent use.
type Codec struct {
	rng      format.Range
	midpoint uint64
	biased   bool
}

// CodecOption configures a Codec.
type CodecOption = options.Option[*Codec]

// WithMidpoint makes the codec probe m at the first step instead of the arithmetic
// midpoint, as EncodeFrom and DecodeFrom do.
//
// m must lie strictly inside (start, end) unless the range is a singleton, in which
// case it is ignored.
func WithMidpoint(m uint64) CodecOption {
	return options.NoError(func(c *Codec) {
		c.midpoint = m
		c.biased = true
	})
}

// NewCodec creates a codec for [start, end).
//
// Parameters:
//   - start: First value of the range (inclusive)
//   - end: End of the range (exclusive)
//   - opts: Optional configuration (see WithMidpoint)
//
// Returns:
//   - *Codec: The configured codec
//   - error: ErrInvalidRange or ErrMidpointOutOfBounds
//
// Example:
//
//	codec, err := encoding.NewCodec(0, 256, encoding.WithMidpoint(16))
//	if err != nil {
//	    return err
//	}
//	path, _ := codec.Encode(3) // short path, values near 16 are cheap
func NewCodec(start, end uint64, opts ...CodecOption) (*Codec, error) {
	rng, err := format.NewRange(start, end)
	if err != nil {
		return nil, err
	}

	c := &Codec{rng: rng, midpoint: rng.Mid()}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	switch {
	case rng.IsSingleton():
		c.midpoint = rng.Start
		c.biased = false
	case c.biased:
		if err := checkMidpoint(rng, c.midpoint); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Range returns the codec's range.
func (c *Codec) Range() format.Range {
	return c.rng
}

// Midpoint returns the split point probed at the first step.
func (c *Codec) Midpoint() uint64 {
	return c.midpoint
}

// IsBiased reports whether the first split point was supplied with WithMidpoint.
func (c *Codec) IsBiased() bool {
	return c.biased
}

// Encode returns the path of v. See Encode and EncodeFrom.
func (c *Codec) Encode(v uint64) (bitpath.Path, error) {
	if err := checkTarget(c.rng, v); err != nil {
		return bitpath.Path{}, err
	}

	return search(c.rng, v, c.midpoint), nil
}

// Decode returns the value located by path. See Decode and DecodeFrom.
func (c *Codec) Decode(path bitpath.Path) (uint64, error) {
	return resolve(c.rng, path, c.midpoint)
}

// WriteValue encodes v straight into a caller-owned bit stream and returns the
// number of bits written.
//
// The stream holds no length information; the caller keeps the returned count to
// read the value back with ReadValue.
func (c *Codec) WriteValue(w *bitio.Writer, v uint64) (int, error) {
	path, err := c.Encode(v)
	if err != nil {
		return 0, err
	}

	if err := path.Write(w); err != nil {
		return 0, fmt.Errorf("failed to write path of %d: %w", v, err)
	}

	return path.Len(), nil
}

// ReadValue reads an n-bit path from r and decodes it.
func (c *Codec) ReadValue(r *bitio.Reader, n int) (uint64, error) {
	path, err := bitpath.Read(r, n)
	if err != nil {
		return 0, err
	}

	return c.Decode(path)
}
