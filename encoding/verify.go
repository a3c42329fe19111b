package encoding

import (
	"fmt"

	"github.com/arloliu/bbse/bitpath"
	"github.com/arloliu/bbse/errs"
	"github.com/arloliu/bbse/format"
	"github.com/arloliu/bbse/internal/collision"
	"github.com/arloliu/bbse/internal/hash"
)

// DefaultVerifyLimit is the largest range Verify walks when no limit is given.
const DefaultVerifyLimit = 1 << 20

// Report summarizes an exhaustive walk over a codec's range.
type Report struct {
	Range     format.Range
	Midpoint  uint64
	Values    uint64 // number of values encoded
	TotalBits uint64 // sum of all path lengths
	Empty     uint64 // number of values with an empty path
	MinBits   int
	MaxBits   int
	// Digest is an order-sensitive xxHash64 of every path in value order.
	// Equal digests mean identical encoding tables.
	Digest uint64
}

// MeanBits returns the average path length.
func (r Report) MeanBits() float64 {
	if r.Values == 0 {
		return 0
	}

	return float64(r.TotalBits) / float64(r.Values)
}

// Verify encodes every value of the codec's range, decodes it back and checks
// that no two values share a path.
//
// Parameters:
//   - c: Codec to verify
//   - limit: Maximum range length to walk; 0 means DefaultVerifyLimit
//
// Returns:
//   - Report: Path length statistics and the table digest
//   - error: ErrRangeTooLarge, ErrRoundTripMismatch or ErrDuplicatePath
func Verify(c *Codec, limit uint64) (Report, error) {
	if limit == 0 {
		limit = DefaultVerifyLimit
	}

	rng := c.Range()
	if rng.Len() > limit {
		return Report{}, fmt.Errorf("%w: %s holds %d values, limit %d", errs.ErrRangeTooLarge, rng, rng.Len(), limit)
	}

	report := Report{
		Range:    rng,
		Midpoint: c.Midpoint(),
		MinBits:  bitpath.MaxLen,
	}

	digest := hash.NewDigest()
	tracker := collision.NewTracker(int(rng.Len()))

	for v := rng.Start; v < rng.End; v++ {
		path, err := c.Encode(v)
		if err != nil {
			return Report{}, err
		}

		got, err := c.Decode(path)
		if err != nil {
			return Report{}, fmt.Errorf("%w: value %d path %q: %w", errs.ErrRoundTripMismatch, v, path, err)
		}
		if got != v {
			return Report{}, fmt.Errorf("%w: value %d path %q decodes to %d", errs.ErrRoundTripMismatch, v, path, got)
		}

		if err := tracker.Track(path, v); err != nil {
			return Report{}, err
		}

		digest.Add(path)

		n := path.Len()
		report.Values++
		report.TotalBits += uint64(n)
		if n == 0 {
			report.Empty++
		}
		report.MinBits = min(report.MinBits, n)
		report.MaxBits = max(report.MaxBits, n)
	}

	report.Digest = digest.Sum64()

	return report, nil
}
