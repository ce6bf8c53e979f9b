package document

import (
	"bytes"
	"unsafe"
)

// View is an immutable window over a caller-owned byte buffer holding JSON text.
//
// A View never copies nor owns its bytes: the buffer must stay valid and
// unmodified for as long as the View, or anything derived from it (sub-views,
// values, flattened paths), is in use.
//
// The zero View is empty and yields no members.
type View struct {
	buf []byte // the whole caller buffer, shared by every sub-view
	off int
	n   int
}

// New returns a view over data.
func New(data []byte) View {
	return View{buf: data, off: 0, n: len(data)}
}

// FromString returns a view borrowing the bytes of s.
func FromString(s string) View {
	if s == "" {
		return View{}
	}

	return New(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// FromCString returns a view over data up to, but excluding, the first NUL byte.
// When data holds no NUL the whole slice is used.
func FromCString(data []byte) View {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}

	return New(data)
}

// Bytes returns the bytes covered by the view.
func (v View) Bytes() []byte {
	if v.buf == nil {
		return nil
	}

	return v.buf[v.off : v.off+v.n]
}

// Len returns the number of bytes covered by the view.
func (v View) Len() int {
	return v.n
}

// IsEmpty reports whether the view covers no byte.
func (v View) IsEmpty() bool {
	return v.n == 0
}

// Offset returns the position of the view inside the caller's buffer.
func (v View) Offset() int {
	return v.off
}

// Slice returns a sub-view over tok, sharing the same buffer.
// An out-of-bounds token yields an empty view.
func (v View) Slice(tok Token) View {
	if tok.Offset < 0 || tok.Length < 0 || tok.End() > v.n {
		return View{}
	}

	return View{buf: v.buf, off: v.off + tok.Offset, n: tok.Length}
}

// Value binds tok to the view.
func (v View) Value(tok Token) Value {
	return Value{view: v, tok: tok}
}

// Same reports whether v and other denote the same span of the same buffer.
func (v View) Same(other View) bool {
	if v.n != other.n || v.off != other.off {
		return false
	}

	return unsafe.SliceData(v.buf) == unsafe.SliceData(other.buf)
}

// Equal reports whether two views hold the same bytes. Views of different
// lengths are unequal without comparing content.
func (v View) Equal(other View) bool {
	if v.n != other.n {
		return false
	}

	return bytes.Equal(v.Bytes(), other.Bytes())
}

// String returns a copy of the viewed text.
func (v View) String() string {
	return string(v.Bytes())
}
