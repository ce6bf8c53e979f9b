package document

import "strings"

// PathSeparator prefixes every key segment of a flattened path.
const PathSeparator = '.'

// Member returns the value of the direct member named key.
// Nested objects are not searched. ok is false when the key is absent or the
// object is malformed before the key is reached.
func (v View) Member(key string) (Value, bool) {
	for offset := 0; ; {
		m, status := v.NextMember(offset)
		if status != StatusMember {
			return Value{}, false
		}
		if string(v.Name(m)) == key {
			return v.Value(m.Value), true
		}
		offset = m.Next
	}
}

// Object returns a view over the direct member key when its value is an object.
// Any other outcome yields the empty view, which iterates as an empty object.
// The returned view borrows the same buffer as v.
func (v View) Object(key string) View {
	val, ok := v.Member(key)
	if !ok {
		return View{}
	}

	return val.Object()
}

// Lookup resolves a flattened path such as ".a.b" by walking direct members,
// one segment at a time. The leading separator is optional.
//
// Segments are matched against raw key bytes, so keys containing the separator
// cannot be addressed.
func (v View) Lookup(path string) (Value, bool) {
	path = strings.TrimPrefix(path, string(PathSeparator))
	if path == "" {
		return Value{}, false
	}

	cur := v
	for {
		segment, rest, more := strings.Cut(path, string(PathSeparator))
		val, ok := cur.Member(segment)
		if !ok {
			return Value{}, false
		}
		if !more {
			return val, true
		}
		if val.Kind() != KindObject {
			return Value{}, false
		}
		cur = val.Object()
		path = rest
	}
}
