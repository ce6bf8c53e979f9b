// Package scalar converts leaf values to Go scalars.
//
// Conversions are strict: the token kind must match the requested type and
// number conversions must consume the entire span. The string form never
// fails.
package scalar

import (
	"bytes"
	"fmt"
	"strconv"
	"unsafe"

	"github.com/arloliu/jflat/document"
	"github.com/arloliu/jflat/errs"
)

// Source is a typed raw span, such as a document.Value or a flatten.Leaf.
type Source interface {
	Kind() document.Kind
	Raw() []byte
}

// Bytes returns the text of src: the content between the quotes for strings,
// the raw span otherwise. Escape sequences are not decoded. The result aliases
// the document buffer.
func Bytes(src Source) []byte {
	raw := src.Raw()
	if src.Kind() == document.KindString && len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}

	return raw
}

// String returns a copy of Bytes(src).
func String(src Source) string {
	return string(Bytes(src))
}

// Uint parses src as a base-10 unsigned 64-bit integer.
//
// Returns:
//   - uint64: The parsed value
//   - error: errs.ErrTypeMismatch when src is not a number,
//     errs.ErrInvalidNumber when the span is not entirely an unsigned integer
func Uint(src Source) (uint64, error) {
	raw, err := number(src)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseUint(unsafeString(raw), 10, 64)
	if err != nil {
		return 0, invalidNumber(raw, err)
	}

	return v, nil
}

// Int parses src as a base-10 signed 64-bit integer.
func Int(src Source) (int64, error) {
	raw, err := number(src)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseInt(unsafeString(raw), 10, 64)
	if err != nil {
		return 0, invalidNumber(raw, err)
	}

	return v, nil
}

// Float parses src as a 64-bit floating point number. Only JSON number syntax
// is accepted: hexadecimal floats, underscores, "Inf" and "NaN" are rejected.
func Float(src Source) (float64, error) {
	raw, err := number(src)
	if err != nil {
		return 0, err
	}
	if !isDecimal(raw) {
		return 0, invalidNumber(raw, nil)
	}

	v, err := strconv.ParseFloat(unsafeString(raw), 64)
	if err != nil {
		return 0, invalidNumber(raw, err)
	}

	return v, nil
}

// Bool returns the value of a true or false literal.
func Bool(src Source) (bool, error) {
	switch src.Kind() {
	case document.KindTrue:
		return true, nil
	case document.KindFalse:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s is not a boolean", errs.ErrTypeMismatch, src.Kind())
	}
}

// IsNull reports whether src is the null literal.
func IsNull(src Source) bool {
	return src.Kind() == document.KindNull
}

// Equal reports whether a and b hold byte-for-byte identical spans. Spans of
// different lengths are unequal without comparing content.
func Equal(a, b Source) bool {
	ra, rb := a.Raw(), b.Raw()
	if len(ra) != len(rb) {
		return false
	}

	return bytes.Equal(ra, rb)
}

func number(src Source) ([]byte, error) {
	if src.Kind() != document.KindNumber {
		return nil, fmt.Errorf("%w: %s is not a number", errs.ErrTypeMismatch, src.Kind())
	}

	return src.Raw(), nil
}

func invalidNumber(raw []byte, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %q", errs.ErrInvalidNumber, raw)
	}

	return fmt.Errorf("%w: %q: %w", errs.ErrInvalidNumber, raw, cause)
}

// isDecimal reports whether raw only holds characters of the JSON number grammar.
func isDecimal(raw []byte) bool {
	if len(raw) == 0 {
		return false
	}
	for _, c := range raw {
		switch {
		case c >= '0' && c <= '9':
		case c == '-', c == '+', c == '.', c == 'e', c == 'E':
		default:
			return false
		}
	}

	return true
}

// unsafeString views raw as a string without copying. The string must not
// outlive the conversion call.
func unsafeString(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	return unsafe.String(unsafe.SliceData(raw), len(raw))
}
