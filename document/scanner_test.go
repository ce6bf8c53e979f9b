package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type member struct {
	name string
	raw  string
	kind Kind
}

// members scans every member of v and returns them with the final status.
func members(t *testing.T, v View) ([]member, Status) {
	t.Helper()

	var out []member
	offset := 0
	for {
		m, status := v.NextMember(offset)
		if status != StatusMember {
			return out, status
		}
		require.Greater(t, m.Next, offset)
		out = append(out, member{
			name: string(v.Name(m)),
			raw:  string(v.Value(m.Value).Raw()),
			kind: m.Value.Kind,
		})
		offset = m.Next
	}
}

func TestNextMember_AllKinds(t *testing.T) {
	v := FromString(` { "s" : "x\"y" , "n":-1.5e+3, "t":true,"f":false,"z":null,` +
		`"o":{"a":[1,"}"]},"a":[{"b":2}, "]"] } `)

	got, status := members(t, v)

	require.Equal(t, StatusEnd, status)
	require.Equal(t, []member{
		{"s", `"x\"y"`, KindString},
		{"n", "-1.5e+3", KindNumber},
		{"t", "true", KindTrue},
		{"f", "false", KindFalse},
		{"z", "null", KindNull},
		{"o", `{"a":[1,"}"]}`, KindObject},
		{"a", `[{"b":2}, "]"]`, KindArray},
	}, got)
}

func TestNextMember_EmptyObject(t *testing.T) {
	for _, doc := range []string{"{}", "  {  }  ", "{\n}"} {
		got, status := members(t, FromString(doc))
		require.Equal(t, StatusEnd, status, doc)
		require.Empty(t, got, doc)
	}
}

func TestNextMember_EmptyView(t *testing.T) {
	_, status := View{}.NextMember(0)
	require.Equal(t, StatusEnd, status)
}

func TestNextMember_Malformed(t *testing.T) {
	cases := map[string]struct {
		doc      string
		complete int // members yielded before the failure
	}{
		"not an object":        {`[1,2]`, 0},
		"scalar root":          {`42`, 0},
		"truncated value":      {`{"a":1,"b":`, 1},
		"truncated object":     {`{"a":1`, 1},
		"missing colon":        {`{"a" 1}`, 0},
		"unquoted key":         {`{a:1}`, 0},
		"trailing comma":       {`{"a":1,}`, 1},
		"bad literal":          {`{"a":tru}`, 0},
		"bad number":           {`{"a":01}`, 1},
		"number suffix":        {`{"a":42x}`, 1},
		"leading dot":          {`{"a":.5}`, 0},
		"unterminated string":  {`{"a":"abc}`, 0},
		"bad escape":           {`{"a":"\q"}`, 0},
		"short unicode escape": {`{"a":"\u12"}`, 0},
		"control character":    {"{\"a\":\"x\ny\"}", 0},
		"unclosed outer":       {`{"a":{"b":1}`, 1},
		"unbalanced nested":    {`{"a":{"b":1`, 0},
		"mismatched bracket":   {`{"a":[1}`, 0},
		"missing separator":    {`{"a":1 "b":2}`, 1},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, status := members(t, FromString(tc.doc))
			require.Equal(t, StatusMalformed, status)
			require.Len(t, got, tc.complete)
		})
	}
}

func TestNextMember_BadOffset(t *testing.T) {
	v := FromString(`{"a":1}`)

	_, status := v.NextMember(-1)
	require.Equal(t, StatusMalformed, status)
	_, status = v.NextMember(100)
	require.Equal(t, StatusMalformed, status)
}

func TestNextMember_EscapedKeyKeptRaw(t *testing.T) {
	v := FromString(`{"a\"b":1,"é":2}`)

	got, status := members(t, v)

	require.Equal(t, StatusEnd, status)
	require.Equal(t, `a\"b`, got[0].name)
	require.Equal(t, `é`, got[1].name)
}

func TestNextMember_NestedTokensAreRelative(t *testing.T) {
	v := FromString(`{"outer":{"inner":"v"}}`)

	m, status := v.NextMember(0)
	require.Equal(t, StatusMember, status)

	sub := v.Slice(m.Value)
	require.Equal(t, m.Value.Offset, sub.Offset())

	inner, status := sub.NextMember(0)
	require.Equal(t, StatusMember, status)
	require.Equal(t, "inner", string(sub.Name(inner)))
	require.Equal(t, 1, inner.Key.Offset)
	require.Equal(t, `"v"`, string(sub.Value(inner.Value).Raw()))
}

func TestRoot(t *testing.T) {
	tok, ok := FromString("  [1, 2]\n").Root()
	require.True(t, ok)
	require.Equal(t, Token{Offset: 2, Length: 6, Kind: KindArray}, tok)

	_, ok = FromString(`{"a":1} trailing`).Root()
	require.False(t, ok)

	_, ok = FromString(``).Root()
	require.False(t, ok)
}

func TestStatus_String(t *testing.T) {
	require.Equal(t, "end", StatusEnd.String())
	require.Equal(t, "member", StatusMember.String())
	require.Equal(t, "malformed", StatusMalformed.String())
	require.Equal(t, "unknown", Status(9).String())
}
