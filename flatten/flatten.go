package flatten

import "github.com/arloliu/jflat/document"

// Leaf is one flattened (path, value) pair.
type Leaf struct {
	// Path is the dotted path of the leaf, each segment prefixed by ".".
	Path string
	// Value borrows the document buffer.
	Value document.Value
	// Truncated is set when Path was cut at MaxPathLength.
	Truncated bool
}

// Kind returns the JSON type of the leaf value.
func (l Leaf) Kind() document.Kind {
	return l.Value.Kind()
}

// Raw returns the raw text of the leaf value.
func (l Leaf) Raw() []byte {
	return l.Value.Raw()
}

// Flatten collects every leaf of the object held by v.
//
// The leaves collected before a malformed span or an over-deep object are
// returned together with the error reported by Iterator.Err.
func Flatten(v document.View, opts ...Option) ([]Leaf, error) {
	it, err := New(v, opts...)
	if err != nil {
		return nil, err
	}

	var leaves []Leaf
	for it.Next() {
		leaves = append(leaves, it.Leaf())
	}

	return leaves, it.Err()
}
