package collision

import (
	"fmt"

	"github.com/arloliu/bbse/bitpath"
	"github.com/arloliu/bbse/errs"
)

// Tracker records which value owns each path and detects two values sharing one.
type Tracker struct {
	owners     map[bitpath.Path]uint64 // Path → value mapping for collision detection
	collisions int
}

// NewTracker creates a new tracker sized for n paths.
func NewTracker(n int) *Tracker {
	return &Tracker{
		owners: make(map[bitpath.Path]uint64, n),
	}
}

// Track records that value v encodes to p.
//
// Returns an error wrapping ErrDuplicatePath if another value already owns p.
// Tracking the same value and path twice is not a collision.
func (t *Tracker) Track(p bitpath.Path, v uint64) error {
	if prev, exists := t.owners[p]; exists {
		if prev == v {
			return nil
		}
		t.collisions++

		return fmt.Errorf("%w: values %d and %d both encode to %q", errs.ErrDuplicatePath, prev, v, p)
	}

	t.owners[p] = v

	return nil
}

// Owner returns the value that owns p, if any.
func (t *Tracker) Owner(p bitpath.Path) (uint64, bool) {
	v, ok := t.owners[p]
	return v, ok
}

// Count returns the number of distinct paths tracked.
func (t *Tracker) Count() int {
	return len(t.owners)
}

// HasCollision returns whether Track ever rejected a path.
func (t *Tracker) HasCollision() bool {
	return t.collisions > 0
}

// Reset clears all tracked paths while keeping the allocated map.
func (t *Tracker) Reset() {
	clear(t.owners)
	t.collisions = 0
}
