package collision

import (
	"github.com/arloliu/jflat/errs"
)

// Tracker tracks leaf paths by hash and detects hash collisions while an
// index is built. It keeps the first path seen for every hash, the set of
// paths whose hash was already taken, and the paths in tracking order.
type Tracker struct {
	paths        map[uint64]string   // hash → first path with that hash
	colliding    map[string]struct{} // paths sharing a hash with an earlier path
	order        []string            // tracking order
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		paths:     make(map[uint64]string),
		colliding: make(map[string]struct{}),
		order:     make([]string, 0),
	}
}

// Track records path under hash.
//
// A path whose hash is already owned by a different path is still tracked:
// collided is true and the collision flag is set, so the caller can store it
// by exact path instead of by hash.
//
// Returns error if:
// - The path is empty (ErrInvalidPath)
// - The same path is tracked twice (ErrDuplicatePath)
func (t *Tracker) Track(path string, hash uint64) (collided bool, err error) {
	if path == "" {
		return false, errs.ErrInvalidPath
	}

	existing, exists := t.paths[hash]
	if !exists {
		t.paths[hash] = path
		t.order = append(t.order, path)

		return false, nil
	}

	if existing == path {
		return false, errs.ErrDuplicatePath
	}
	if _, dup := t.colliding[path]; dup {
		return true, errs.ErrDuplicatePath
	}

	t.colliding[path] = struct{}{}
	t.order = append(t.order, path)
	t.hasCollision = true

	return true, nil
}

// Owner returns the first path tracked under hash.
func (t *Tracker) Owner(hash uint64) (string, bool) {
	path, ok := t.paths[hash]
	return path, ok
}

// HasCollision returns true if a collision has been detected.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Paths returns the tracked paths in tracking order.
func (t *Tracker) Paths() []string {
	return t.order
}

// Count returns the number of tracked paths.
func (t *Tracker) Count() int {
	return len(t.order)
}

// Reset clears all tracked paths and collision state, keeping allocated capacity.
func (t *Tracker) Reset() {
	clear(t.paths)
	clear(t.colliding)
	t.order = t.order[:0]
	t.hasCollision = false
}
