package flatten

import (
	"iter"

	"github.com/arloliu/jflat/document"
	"github.com/arloliu/jflat/errs"
	"github.com/arloliu/jflat/internal/options"
)

// MaxPathLength is the capacity in bytes of the accumulated path buffer.
// Longer paths are truncated and reported by Iterator.Truncated.
const MaxPathLength = 100

// State is the phase of an Iterator.
type State uint8

const (
	// StateScanning means the iterator is positioned on a leaf, or ready to start.
	StateScanning State = iota
	// StateDescending means the last step entered a nested object.
	StateDescending
	// StateAscending means the last step returned to a parent object.
	StateAscending
	// StateExhausted is terminal: every leaf has been produced.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateScanning:
		return "scanning"
	case StateDescending:
		return "descending"
	case StateAscending:
		return "ascending"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Cursor identifies the scan position of an Iterator: the object span being
// scanned and the offset inside it.
type Cursor struct {
	span   document.View
	offset int
}

// EndCursor returns the cursor of an exhausted iterator.
func EndCursor() Cursor {
	return Cursor{}
}

// Equal reports whether both cursors denote the same span of the same buffer
// and the same scan offset.
func (c Cursor) Equal(other Cursor) bool {
	return c.offset == other.offset && c.span.Same(other.span)
}

// Iterator flattens a JSON object into (path, value) leaves, in document order,
// depth first.
//
// Nested objects are entered through an explicit descent stack rather than
// recursion, so the native call stack does not grow with the nesting depth.
// Arrays and scalars are leaves; arrays are reported with their raw text.
//
// An Iterator must not be copied and is not safe for concurrent use.
//
// Usage:
//
//	it, _ := flatten.New(document.FromString(`{"a":{"b":1},"c":true}`))
//	for it.Next() {
//	    fmt.Printf("%s = %s\n", it.PathBytes(), it.Raw())
//	}
//	if err := it.Err(); err != nil {
//	    // the document was malformed or too deep; the sequence was short
//	}
type Iterator struct {
	cfg config

	root   document.View
	span   document.View
	offset int
	prefix int // path length of the object being scanned

	path      [MaxPathLength]byte
	pathLen   int
	truncated bool

	value document.Value
	stack descentStack
	state State
	err   error
}

// New creates an iterator over the object held by v. Call Next to move to the
// first leaf.
func New(v document.View, opts ...Option) (*Iterator, error) {
	it := &Iterator{cfg: defaultConfig()}
	if err := options.Apply(&it.cfg, opts...); err != nil {
		return nil, err
	}
	it.stack.onSpill = it.logSpill
	if err := it.Reset(v); err != nil {
		return nil, err
	}

	return it, nil
}

// Reset re-arms the iterator over v, keeping its configuration and storage.
func (it *Iterator) Reset(v document.View) error {
	if err := it.stack.init(it.cfg.maxDepth); err != nil {
		return err
	}

	it.root = v
	it.span = v
	it.offset = 0
	it.prefix = 0
	it.pathLen = 0
	it.truncated = false
	it.value = document.Value{}
	it.state = StateScanning
	it.err = nil

	return nil
}

// Next advances to the next leaf. It returns false once the document is
// exhausted; Err then tells whether the traversal ended early.
func (it *Iterator) Next() bool {
	if it.state == StateExhausted {
		return false
	}

	for {
		m, status := it.span.NextMember(it.offset)

		switch status {
		case document.StatusMember:
			it.offset = m.Next
			it.setKey(it.span.Name(m))

			if m.Value.Kind == document.KindObject {
				it.descend(it.span.Slice(m.Value), m.Next)
				continue
			}

			it.value = it.span.Value(m.Value)
			it.state = StateScanning

			return true

		case document.StatusMalformed:
			it.fail(errs.ErrMalformedDocument)
			it.cfg.logger.Debugf("flatten: malformed object at offset %d (depth %d, path %q)",
				it.span.Offset()+it.offset, it.stack.len(), it.path[:it.prefix])
			if it.cfg.strict {
				it.finish()
				return false
			}
			if !it.ascend() {
				it.finish()
				return false
			}

		default:
			if !it.ascend() {
				it.finish()
				return false
			}
		}
	}
}

// setKey rebuilds the path as the current prefix followed by "." and key,
// truncating at MaxPathLength.
func (it *Iterator) setKey(key []byte) {
	it.pathLen = it.prefix
	it.truncated = false

	room := MaxPathLength - it.pathLen
	if room <= len(key) {
		it.truncated = true
	}
	if room > 0 {
		it.path[it.pathLen] = document.PathSeparator
		it.pathLen++
		it.pathLen += copy(it.path[it.pathLen:], key)
	}

	if it.truncated {
		it.cfg.logger.Debugf("flatten: path truncated to %d bytes: %q", MaxPathLength, it.path[:it.pathLen])
	}
}

// descend saves the scan state of the current object and moves into sub.
func (it *Iterator) descend(sub document.View, resume int) {
	frame := Frame{Span: it.span, PathLen: it.prefix, Resume: resume}
	if err := it.stack.push(frame); err != nil {
		it.fail(errs.ErrDepthExceeded)
		it.cfg.logger.Debugf("flatten: skipping object %q at depth %d: %v",
			it.path[:it.pathLen], it.stack.len(), err)
		return
	}

	it.span = sub
	it.offset = 0
	it.prefix = it.pathLen
	it.state = StateDescending
}

// ascend restores the innermost saved parent. It returns false when the root
// object is complete.
func (it *Iterator) ascend() bool {
	frame, ok := it.stack.pop()
	if !ok {
		return false
	}

	it.span = frame.Span
	it.offset = frame.Resume
	it.prefix = frame.PathLen
	it.pathLen = frame.PathLen
	it.state = StateAscending

	return true
}

func (it *Iterator) finish() {
	it.state = StateExhausted
	it.span = document.View{}
	it.offset = 0
	it.pathLen = 0
	it.truncated = false
	it.value = document.Value{}
	_ = it.stack.reset()
}

// fail records the first traversal error.
func (it *Iterator) fail(err error) {
	if it.err == nil {
		it.err = err
	}
}

func (it *Iterator) logSpill(depth int) {
	it.cfg.logger.Debugf("flatten: descent stack spilled to dynamic storage at depth %d", depth)
}

// Err returns errs.ErrMalformedDocument or errs.ErrDepthExceeded when part of
// the document was skipped, or nil.
func (it *Iterator) Err() error {
	return it.err
}

// Root returns the view the iterator was created or last reset with.
func (it *Iterator) Root() document.View {
	return it.root
}

// State returns the phase of the iterator.
func (it *Iterator) State() State {
	return it.state
}

// Done reports whether the iterator is exhausted.
func (it *Iterator) Done() bool {
	return it.state == StateExhausted
}

// Depth returns the number of saved parent frames, which is the nesting level
// of the current leaf.
func (it *Iterator) Depth() int {
	return it.stack.len()
}

// Cursor returns the current scan position.
func (it *Iterator) Cursor() Cursor {
	return Cursor{span: it.span, offset: it.offset}
}

// PathBytes returns the path of the current leaf, such as ".a.b". The slice is
// only valid until the next call to Next.
func (it *Iterator) PathBytes() []byte {
	return it.path[:it.pathLen]
}

// Path returns a copy of the path of the current leaf.
func (it *Iterator) Path() string {
	return string(it.path[:it.pathLen])
}

// Truncated reports whether the current path was cut at MaxPathLength.
func (it *Iterator) Truncated() bool {
	return it.truncated
}

// Value returns the current leaf value.
func (it *Iterator) Value() document.Value {
	return it.value
}

// Kind returns the JSON type of the current leaf.
func (it *Iterator) Kind() document.Kind {
	return it.value.Kind()
}

// Raw returns the raw text of the current leaf.
func (it *Iterator) Raw() []byte {
	return it.value.Raw()
}

// Leaf returns a snapshot of the current leaf that stays valid after Next.
func (it *Iterator) Leaf() Leaf {
	return Leaf{
		Path:      it.Path(),
		Value:     it.value,
		Truncated: it.truncated,
	}
}

// All yields every remaining leaf as (path, value).
func (it *Iterator) All() iter.Seq2[string, document.Value] {
	return func(yield func(string, document.Value) bool) {
		for it.Next() {
			if !yield(it.Path(), it.value) {
				return
			}
		}
	}
}
