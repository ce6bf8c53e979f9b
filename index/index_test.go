package index

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/jflat/document"
	"github.com/arloliu/jflat/errs"
	"github.com/arloliu/jflat/flatten"
	"github.com/arloliu/jflat/internal/hash"
)

// lengthHash makes every pair of same-length paths collide.
func lengthHash(path string) uint64 {
	return uint64(len(path))
}

func TestBuild(t *testing.T) {
	idx, err := Build(document.FromString(`{"cfg":{"led":{"on":true},"name":"lamp"},"n":7}`))
	require.NoError(t, err)

	require.Equal(t, 3, idx.Len())
	require.Equal(t, []string{".cfg.led.on", ".cfg.name", ".n"}, idx.Paths())
	require.False(t, idx.HasCollision())
	require.NoError(t, idx.Err())

	leaf, ok := idx.Get(".cfg.name")
	require.True(t, ok)
	require.Equal(t, `"lamp"`, string(leaf.Raw()))

	val, ok := idx.Value(".cfg.led.on")
	require.True(t, ok)
	require.Equal(t, document.KindTrue, val.Kind())

	for _, missing := range []string{".cfg", ".cfg.led", "n", ".x"} {
		_, ok := idx.Get(missing)
		require.False(t, ok, missing)
	}
}

func TestGetByID(t *testing.T) {
	idx, err := Build(document.FromString(`{"a":{"b":1}}`))
	require.NoError(t, err)

	leaf, ok := idx.GetByID(hash.ID(".a.b"))
	require.True(t, ok)
	require.Equal(t, ".a.b", leaf.Path)

	_, ok = idx.GetByID(hash.ID(".a"))
	require.False(t, ok)
}

func TestBuild_HashCollision(t *testing.T) {
	idx, err := Build(document.FromString(`{"a":1,"b":2,"cc":3,"d":4}`), WithHashFunc(lengthHash))
	require.NoError(t, err)

	require.True(t, idx.HasCollision())
	require.Equal(t, 4, idx.Len())

	for path, want := range map[string]string{".a": "1", ".b": "2", ".cc": "3", ".d": "4"} {
		leaf, ok := idx.Get(path)
		require.True(t, ok, path)
		require.Equal(t, want, string(leaf.Raw()), path)
	}

	_, ok := idx.Get(".e")
	require.False(t, ok, "a colliding hash must not match an unknown path")

	leaf, ok := idx.GetByID(lengthHash(".a"))
	require.True(t, ok)
	require.Equal(t, ".a", leaf.Path)
}

func TestBuild_DuplicateKeysLastWins(t *testing.T) {
	idx, err := Build(document.FromString(`{"a":1,"b":{"c":2},"a":3,"b":{"c":4}}`))
	require.NoError(t, err)

	require.Equal(t, 2, idx.Len())
	require.Equal(t, []string{".a", ".b.c"}, idx.Paths())

	val, _ := idx.Value(".a")
	require.Equal(t, "3", string(val.Raw()))
	val, _ = idx.Value(".b.c")
	require.Equal(t, "4", string(val.Raw()))
}

func TestBuild_DuplicateCollidingPath(t *testing.T) {
	idx, err := Build(document.FromString(`{"a":1,"b":2,"b":5}`), WithHashFunc(lengthHash))
	require.NoError(t, err)

	require.Equal(t, 2, idx.Len())
	val, _ := idx.Value(".b")
	require.Equal(t, "5", string(val.Raw()))
	val, _ = idx.Value(".a")
	require.Equal(t, "1", string(val.Raw()))
}

func TestBuild_TraversalError(t *testing.T) {
	idx, err := Build(document.FromString(`{"a":1,"b":{"c":2,"d":tru},"e":3}`))
	require.ErrorIs(t, err, errs.ErrMalformedDocument)
	require.NotNil(t, idx)
	require.ErrorIs(t, idx.Err(), errs.ErrMalformedDocument)
	require.Equal(t, []string{".a", ".b.c", ".e"}, idx.Paths())

	idx, err = Build(document.FromString(`{"a":{"b":{"c":1}},"d":2}`),
		WithFlattenOptions(flatten.WithMaxDepth(1)))
	require.ErrorIs(t, err, errs.ErrDepthExceeded)
	require.Equal(t, []string{".d"}, idx.Paths())
}

func TestBuild_InvalidOption(t *testing.T) {
	idx, err := Build(document.FromString(`{}`), WithFlattenOptions(flatten.WithMaxDepth(-1)))
	require.Error(t, err)
	require.Nil(t, idx)
}

func TestLeavesAreCopies(t *testing.T) {
	idx, err := Build(document.FromString(`{"a":1}`))
	require.NoError(t, err)

	leaves := idx.Leaves()
	leaves[0].Path = ".changed"
	paths := idx.Paths()
	paths[0] = ".changed"

	_, ok := idx.Get(".a")
	require.True(t, ok)
	require.Equal(t, []string{".a"}, idx.Paths())
}
