// Package index builds a hash-keyed lookup table over the leaves of a document.
//
// A document is flattened once; afterwards every leaf is reachable by its
// dotted path in O(1). Paths are keyed by their xxHash64. When two distinct
// paths share a hash, the later one is kept in an exact-path table so lookups
// stay correct.
package index

import (
	"errors"

	"github.com/arloliu/jflat/document"
	"github.com/arloliu/jflat/errs"
	"github.com/arloliu/jflat/flatten"
	"github.com/arloliu/jflat/internal/collision"
	"github.com/arloliu/jflat/internal/hash"
	"github.com/arloliu/jflat/internal/options"
)

// Index maps leaf paths to values. An Index borrows the document buffer it was
// built from and is safe for concurrent reads once built.
type Index struct {
	leaves    []flatten.Leaf
	byHash    map[uint64]int
	overflow  map[string]int
	tracker   *collision.Tracker
	hash      func(string) uint64
	traversal error
}

// Build flattens the object held by v and indexes every leaf.
//
// When the same path occurs twice (duplicate keys, or keys truncated to the same
// path) the last value wins while the path keeps its first position in Paths.
//
// Parameters:
//   - v: The document to index
//   - opts: Optional configuration (WithHashFunc, WithFlattenOptions)
//
// Returns:
//   - *Index: The index, also returned when the traversal was cut short
//   - error: The iterator's traversal error (errs.ErrMalformedDocument,
//     errs.ErrDepthExceeded), or an option error with a nil index
func Build(v document.View, opts ...Option) (*Index, error) {
	cfg := config{hash: hash.ID}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	it, err := flatten.New(v, cfg.flatten...)
	if err != nil {
		return nil, err
	}

	idx := &Index{
		byHash:   make(map[uint64]int),
		overflow: make(map[string]int),
		tracker:  collision.NewTracker(),
		hash:     cfg.hash,
	}

	for it.Next() {
		if err := idx.add(it.Leaf()); err != nil {
			return nil, err
		}
	}
	idx.traversal = it.Err()

	return idx, idx.traversal
}

func (idx *Index) add(leaf flatten.Leaf) error {
	h := idx.hash(leaf.Path)

	collided, err := idx.tracker.Track(leaf.Path, h)
	switch {
	case errors.Is(err, errs.ErrDuplicatePath):
		idx.leaves[idx.slot(leaf.Path, h, collided)] = leaf
		return nil
	case err != nil:
		return err
	}

	if collided {
		idx.overflow[leaf.Path] = len(idx.leaves)
	} else {
		idx.byHash[h] = len(idx.leaves)
	}
	idx.leaves = append(idx.leaves, leaf)

	return nil
}

func (idx *Index) slot(path string, h uint64, collided bool) int {
	if collided {
		return idx.overflow[path]
	}

	return idx.byHash[h]
}

// Get returns the leaf stored under path, such as ".cfg.led.on".
func (idx *Index) Get(path string) (flatten.Leaf, bool) {
	h := idx.hash(path)

	if i, ok := idx.byHash[h]; ok && idx.leaves[i].Path == path {
		return idx.leaves[i], true
	}
	if i, ok := idx.overflow[path]; ok {
		return idx.leaves[i], true
	}

	return flatten.Leaf{}, false
}

// Value returns the value stored under path.
func (idx *Index) Value(path string) (document.Value, bool) {
	leaf, ok := idx.Get(path)
	return leaf.Value, ok
}

// GetByID returns the leaf whose path hashes to id. When several paths share
// id, the first one indexed is returned.
func (idx *Index) GetByID(id uint64) (flatten.Leaf, bool) {
	i, ok := idx.byHash[id]
	if !ok {
		return flatten.Leaf{}, false
	}

	return idx.leaves[i], true
}

// Len returns the number of distinct paths.
func (idx *Index) Len() int {
	return len(idx.leaves)
}

// Paths returns the indexed paths in document order.
func (idx *Index) Paths() []string {
	return append([]string(nil), idx.tracker.Paths()...)
}

// Leaves returns the indexed leaves in document order.
func (idx *Index) Leaves() []flatten.Leaf {
	return append([]flatten.Leaf(nil), idx.leaves...)
}

// HasCollision reports whether two distinct paths produced the same hash.
func (idx *Index) HasCollision() bool {
	return idx.tracker.HasCollision()
}

// Err returns the traversal error recorded by Build.
func (idx *Index) Err() error {
	return idx.traversal
}
