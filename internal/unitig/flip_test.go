package unitig

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flipGraph() *Graph {
	a := frag("AACGT", 5, [2]uint64{1, 2}, arcs(5, 2), arcs(3, 2, 4, 1))
	a.Cov = []byte("!#%')")
	return New([]Fragment{
		a,
		frag("GTTT", 5, [2]uint64{3, 6}, arcs(2, 2), nil),
		frag("TTTT", 5, [2]uint64{4, 7}, arcs(2, 1), nil),
		frag("CCAA", 5, [2]uint64{8, 5}, nil, arcs(1, 2)),
	}, nil)
}

func TestGraph_Flip(t *testing.T) {
	g := flipGraph()
	require.NoError(t, g.Flip(0))

	f := g.Frags[0]
	assert.Equal(t, "ACGTT", seqOf(f))
	assert.Equal(t, []byte(")'%#!"), f.Cov)
	assert.Equal(t, [2]uint64{2, 1}, f.Ends)
	assert.Equal(t, arcs(3, 2, 4, 1), f.Nei[0])
	assert.Equal(t, arcs(5, 2), f.Nei[1])

	loc, ok := g.Index().Lookup(1)
	require.True(t, ok)
	assert.Equal(t, Loc{Handle: 0, End: 1}, loc)

	loc, ok = g.Index().Lookup(2)
	require.True(t, ok)
	assert.Equal(t, Loc{Handle: 0, End: 0}, loc)
}

func TestGraph_Flip_involution(t *testing.T) {
	for h := range flipGraph().Frags {
		g := flipGraph()
		g.BuildIndex()
		before := clone(g.Frags)
		locs := map[uint64]Loc{}
		for _, f := range before {
			for _, id := range f.Ends {
				locs[id], _ = g.Index().Lookup(id)
			}
		}

		require.NoError(t, g.Flip(h))
		require.NoError(t, g.Flip(h))

		assert.Equal(t, before, g.Frags, "fragment %d", h)
		for id, want := range locs {
			got, ok := g.Index().Lookup(id)
			require.True(t, ok)
			assert.Equal(t, want, got, "tip %d", id)
		}
	}
}

func TestGraph_Flip_unindexed(t *testing.T) {
	g := flipGraph()
	g.Index().Remove(2)
	before := clone(g.Frags)

	err := g.Flip(0)
	require.Error(t, err)

	var inv *InvariantError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, 0, inv.Handle)
	assert.Equal(t, uint64(2), inv.Tip)
	assert.False(t, IsRejection(err))
	assert.Equal(t, before, g.Frags, "nothing flipped")
}

func TestGraph_Flip_duplicatedTip(t *testing.T) {
	g := New([]Fragment{
		frag("ACGT", 5, [2]uint64{1, 2}, nil, nil),
		frag("AAGT", 5, [2]uint64{2, 3}, nil, nil),
	}, nil)

	require.NoError(t, g.Flip(1))
	assert.Equal(t, "ACTT", seqOf(g.Frags[1]))

	_, ok := g.Index().Lookup(2)
	assert.False(t, ok, "still unusable")

	loc, ok := g.Index().Lookup(3)
	require.True(t, ok)
	assert.Equal(t, Loc{Handle: 1, End: 0}, loc)
}
