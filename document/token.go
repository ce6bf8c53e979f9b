package document

// Kind identifies the JSON type of a token.
type Kind uint8

const (
	KindInvalid Kind = iota // KindInvalid marks the zero token.
	KindObject              // KindObject is a `{...}` value.
	KindArray               // KindArray is a `[...]` value.
	KindString              // KindString is a quoted string, quotes included in the span.
	KindNumber              // KindNumber is a JSON number.
	KindTrue                // KindTrue is the literal `true`.
	KindFalse               // KindFalse is the literal `false`.
	KindNull                // KindNull is the literal `null`.
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindNull:
		return "null"
	default:
		return "invalid"
	}
}

// IsScalar reports whether k is a string, number, boolean or null.
func (k Kind) IsScalar() bool {
	return k >= KindString && k <= KindNull
}

// Token is a typed byte span relative to the View it was scanned from.
type Token struct {
	Offset int
	Length int
	Kind   Kind
}

// End returns the offset just past the token.
func (t Token) End() int {
	return t.Offset + t.Length
}

// Value binds a Token to the View that holds its bytes.
type Value struct {
	view View
	tok  Token
}

// MakeValue wraps raw bytes as a standalone value of the given kind.
// The value borrows raw.
func MakeValue(raw []byte, kind Kind) Value {
	return Value{
		view: New(raw),
		tok:  Token{Offset: 0, Length: len(raw), Kind: kind},
	}
}

// Kind returns the JSON type of the value.
func (v Value) Kind() Kind {
	return v.tok.Kind
}

// Raw returns the exact bytes of the value, quotes included for strings.
// The slice aliases the document buffer and must not be modified.
func (v Value) Raw() []byte {
	return v.view.Bytes()[v.tok.Offset:v.tok.End()]
}

// Token returns the span of the value inside View().
func (v Value) Token() Token {
	return v.tok
}

// View returns the view the value's token is relative to.
func (v Value) View() View {
	return v.view
}

// IsValid reports whether the value refers to a scanned token.
func (v Value) IsValid() bool {
	return v.tok.Kind != KindInvalid
}

// Object returns a view over the value if it is an object, or an empty view otherwise.
func (v Value) Object() View {
	if v.tok.Kind != KindObject {
		return View{}
	}

	return v.view.Slice(v.tok)
}
