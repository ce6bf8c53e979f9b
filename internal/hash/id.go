package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a leaf path.
func ID(path string) uint64 {
	return xxhash.Sum64String(path)
}

// IDBytes computes the xxHash64 of a leaf path held in a byte slice, such as
// the buffer returned by flatten.Iterator.PathBytes. IDBytes(b) == ID(string(b)).
func IDBytes(path []byte) uint64 {
	return xxhash.Sum64(path)
}
