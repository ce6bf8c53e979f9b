package document

import "bytes"

// Status is the outcome of one tokenization step.
type Status uint8

const (
	// StatusEnd means the object has no more members.
	StatusEnd Status = iota
	// StatusMember means a member was found.
	StatusMember
	// StatusMalformed means the span could not be tokenized at the given offset.
	StatusMalformed
)

func (s Status) String() string {
	switch s {
	case StatusEnd:
		return "end"
	case StatusMember:
		return "member"
	case StatusMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Member is one `"key": value` pair of an object. Tokens are relative to the
// view that produced the member.
type Member struct {
	// Key spans the key including its surrounding quotes.
	Key Token
	// Value spans the member's value.
	Value Token
	// Next is the offset to pass to NextMember to continue the scan.
	Next int
}

// Name returns the key of m without its quotes. Escape sequences are left as-is.
func (v View) Name(m Member) []byte {
	if m.Key.Length < 2 {
		return nil
	}

	return v.Bytes()[m.Key.Offset+1 : m.Key.End()-1]
}

var (
	literalTrue  = []byte("true")
	literalFalse = []byte("false")
	literalNull  = []byte("null")
)

// NextMember scans the object held by v for the member following offset.
//
// Offset 0 starts at the opening brace; any other offset must be a Member.Next
// value returned by a previous call on the same view. Nested objects and arrays
// are skipped as a whole: their extent is located but their content is not
// validated until they are scanned themselves.
//
// An empty view yields StatusEnd. A span that does not start with an object,
// or whose member syntax is broken at the scan position, yields StatusMalformed.
func (v View) NextMember(offset int) (Member, Status) {
	b := v.Bytes()
	if len(b) == 0 {
		return Member{}, StatusEnd
	}
	if offset < 0 || offset > len(b) {
		return Member{}, StatusMalformed
	}

	var i int
	if offset == 0 {
		i = skipSpace(b, 0)
		if i >= len(b) || b[i] != '{' {
			return Member{}, StatusMalformed
		}
		i = skipSpace(b, i+1)
		if i < len(b) && b[i] == '}' {
			return Member{}, StatusEnd
		}
	} else {
		i = skipSpace(b, offset)
		if i >= len(b) {
			return Member{}, StatusMalformed
		}
		switch b[i] {
		case '}':
			return Member{}, StatusEnd
		case ',':
			i = skipSpace(b, i+1)
		default:
			return Member{}, StatusMalformed
		}
	}

	if i >= len(b) || b[i] != '"' {
		return Member{}, StatusMalformed
	}
	keyEnd := scanString(b, i)
	if keyEnd < 0 {
		return Member{}, StatusMalformed
	}

	var m Member
	m.Key = Token{Offset: i, Length: keyEnd - i, Kind: KindString}

	i = skipSpace(b, keyEnd)
	if i >= len(b) || b[i] != ':' {
		return Member{}, StatusMalformed
	}
	i = skipSpace(b, i+1)

	kind, end := scanValue(b, i)
	if kind == KindInvalid {
		return Member{}, StatusMalformed
	}
	m.Value = Token{Offset: i, Length: end - i, Kind: kind}
	m.Next = end

	return m, StatusMember
}

// Root returns the token spanning the top-level value of v, ignoring
// surrounding whitespace. ok is false when v does not hold exactly one value.
func (v View) Root() (Token, bool) {
	b := v.Bytes()
	i := skipSpace(b, 0)
	kind, end := scanValue(b, i)
	if kind == KindInvalid || skipSpace(b, end) != len(b) {
		return Token{}, false
	}

	return Token{Offset: i, Length: end - i, Kind: kind}, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func skipSpace(b []byte, i int) int {
	for i < len(b) && isSpace(b[i]) {
		i++
	}

	return i
}

// scanValue returns the kind and end offset of the value starting at i.
func scanValue(b []byte, i int) (Kind, int) {
	if i >= len(b) {
		return KindInvalid, i
	}

	switch c := b[i]; {
	case c == '{':
		return scanComposite(b, i, KindObject)
	case c == '[':
		return scanComposite(b, i, KindArray)
	case c == '"':
		end := scanString(b, i)
		if end < 0 {
			return KindInvalid, i
		}
		return KindString, end
	case c == '-' || (c >= '0' && c <= '9'):
		end := scanNumber(b, i)
		if end < 0 {
			return KindInvalid, i
		}
		return KindNumber, end
	case c == 't' && bytes.HasPrefix(b[i:], literalTrue):
		return KindTrue, i + len(literalTrue)
	case c == 'f' && bytes.HasPrefix(b[i:], literalFalse):
		return KindFalse, i + len(literalFalse)
	case c == 'n' && bytes.HasPrefix(b[i:], literalNull):
		return KindNull, i + len(literalNull)
	default:
		return KindInvalid, i
	}
}

// scanString returns the offset just past the closing quote of the string
// starting at b[i], or -1 when the string is unterminated or invalid.
func scanString(b []byte, i int) int {
	for j := i + 1; j < len(b); {
		switch c := b[j]; {
		case c == '"':
			return j + 1
		case c == '\\':
			n := escapeLen(b, j)
			if n == 0 {
				return -1
			}
			j += n
		case c < 0x20:
			return -1
		default:
			j++
		}
	}

	return -1
}

// escapeLen returns the length of the escape sequence at b[j], or 0 if invalid.
func escapeLen(b []byte, j int) int {
	if j+1 >= len(b) {
		return 0
	}

	switch b[j+1] {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return 2
	case 'u':
		if j+6 > len(b) {
			return 0
		}
		for _, h := range b[j+2 : j+6] {
			if !isHex(h) {
				return 0
			}
		}
		return 6
	default:
		return 0
	}
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// scanNumber returns the end of the JSON number at b[i], or -1.
func scanNumber(b []byte, i int) int {
	if i < len(b) && b[i] == '-' {
		i++
	}

	switch {
	case i < len(b) && b[i] == '0':
		i++
	case i < len(b) && b[i] >= '1' && b[i] <= '9':
		for i < len(b) && isDigit(b[i]) {
			i++
		}
	default:
		return -1
	}

	if i < len(b) && b[i] == '.' {
		i++
		if i >= len(b) || !isDigit(b[i]) {
			return -1
		}
		for i < len(b) && isDigit(b[i]) {
			i++
		}
	}

	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		i++
		if i < len(b) && (b[i] == '+' || b[i] == '-') {
			i++
		}
		if i >= len(b) || !isDigit(b[i]) {
			return -1
		}
		for i < len(b) && isDigit(b[i]) {
			i++
		}
	}

	return i
}

// scanComposite locates the closing bracket of the object or array at b[i].
// Strings are skipped so brackets inside them are ignored. Only the nesting
// balance is checked here.
func scanComposite(b []byte, i int, kind Kind) (Kind, int) {
	closer := byte('}')
	if kind == KindArray {
		closer = ']'
	}

	depth := 0
	for j := i; j < len(b); j++ {
		switch b[j] {
		case '"':
			end := scanString(b, j)
			if end < 0 {
				return KindInvalid, i
			}
			j = end - 1
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				if b[j] != closer {
					return KindInvalid, i
				}
				return kind, j + 1
			}
		}
	}

	return KindInvalid, i
}
