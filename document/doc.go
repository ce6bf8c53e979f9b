// Package document provides zero-copy access to JSON text held in a
// caller-owned buffer.
//
// A View is a window over the buffer. Scanning a View produces Tokens, which
// are typed (offset, length) spans relative to that View, and Values, which
// bind a Token to its View. Nothing is ever copied: sub-views, values and keys
// all alias the original bytes, so the buffer must outlive them and must not be
// modified while they are in use.
//
// # Tokenizer Boundary
//
// View.NextMember is the single tokenization primitive. Given a scan offset it
// returns the next member of the object held by the view:
//
//	v := document.FromString(`{"a":1,"b":{"c":true}}`)
//	for off := 0; ; {
//	    m, status := v.NextMember(off)
//	    if status != document.StatusMember {
//	        break // StatusEnd, or StatusMalformed for broken input
//	    }
//	    fmt.Printf("%s = %s\n", v.Name(m), v.Value(m.Value).Raw())
//	    off = m.Next
//	}
//
// Unlike a tokenizer that collapses errors into "no more members",
// NextMember reports StatusMalformed separately so callers can tell a
// truncated document from a complete one.
//
// # Lookup
//
// View.Object finds a direct member whose value is an object and returns a
// sub-view over it. View.Lookup resolves a dotted path such as ".a.b".
package document
