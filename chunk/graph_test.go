package chunk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestGraph(t *testing.T, ids ...ID) *Graph {
	t.Helper()
	g := NewGraph()
	for _, id := range ids {
		require.NoError(t, g.Add(&Chunk{ID: id, Name: "chunks/" + id.String()}))
	}
	return g
}

func TestGraphLinkPreservesOrder(t *testing.T) {
	a, b, c, d := StringID("a"), StringID("b"), NumberID(3), StringID("d")
	g := newTestGraph(t, a, b, c, d)

	require.NoError(t, g.Link(a, d, c))
	require.NoError(t, g.Link(a, b, d))

	target, ok := g.Chunk(a)
	require.True(t, ok)
	got := g.EntryDependentChunks(target)
	ids := make([]ID, len(got))
	for i, ch := range got {
		ids[i] = ch.ID
	}
	require.Equal(t, []ID{d, c, b, d}, ids)
	require.True(t, g.HasEntryDependentChunks(target))
}

func TestGraphNoDependents(t *testing.T) {
	g := newTestGraph(t, StringID("solo"))
	c, ok := g.Chunk(StringID("solo"))
	require.True(t, ok)
	require.False(t, g.HasEntryDependentChunks(c))
	require.Empty(t, g.EntryDependentChunks(c))
}

func TestGraphEntryDependentChunksReturnsCopy(t *testing.T) {
	a, b := StringID("a"), StringID("b")
	g := newTestGraph(t, a, b)
	require.NoError(t, g.Link(a, b))
	target, _ := g.Chunk(a)

	got := g.EntryDependentChunks(target)
	got[0] = nil
	require.NotNil(t, g.EntryDependentChunks(target)[0])
}

func TestGraphErrors(t *testing.T) {
	a := StringID("a")
	g := newTestGraph(t, a)

	require.ErrorIs(t, g.Add(&Chunk{ID: a}), ErrDuplicateChunk)
	require.Error(t, g.Add(nil))
	require.ErrorIs(t, g.Link(StringID("missing"), a), ErrUnknownChunk)
	require.ErrorIs(t, g.Link(a, NumberID(9)), ErrUnknownChunk)

	// numeric and string ids with the same text are distinct chunks
	require.NoError(t, g.Add(&Chunk{ID: NumberID(1)}))
	require.NoError(t, g.Add(&Chunk{ID: StringID("1")}))
}

func TestGraphChunksInsertionOrder(t *testing.T) {
	g := newTestGraph(t, StringID("z"), NumberID(1), StringID("a"))
	var ids []ID
	for _, c := range g.Chunks() {
		ids = append(ids, c.ID)
	}
	require.Equal(t, []ID{StringID("z"), NumberID(1), StringID("a")}, ids)
}
