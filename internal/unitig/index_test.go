package unitig

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_BuildIndex(t *testing.T) {
	g := New([]Fragment{
		frag("ACGT", 5, [2]uint64{10, 11}, nil, arcs(20, 2)),
		frag("GTCA", 5, [2]uint64{20, 21}, arcs(11, 2), nil),
	}, nil)

	require.Zero(t, g.BuildIndex())
	assert.Equal(t, 4, g.Index().Len())

	for h, f := range g.Frags {
		for e, id := range f.Ends {
			loc, ok := g.Index().Lookup(id)
			require.True(t, ok, "tip %d", id)
			assert.Equal(t, Loc{Handle: h, End: e}, loc)
		}
	}

	_, ok := g.Index().Lookup(99)
	assert.False(t, ok)
}

func TestGraph_BuildIndex_duplicates(t *testing.T) {
	log, hook := test.NewNullLogger()
	g := New([]Fragment{
		frag("ACGT", 5, [2]uint64{1, 2}, nil, nil),
		frag("ACGT", 5, [2]uint64{2, 3}, nil, nil),
	}, log)

	assert.Equal(t, 1, g.BuildIndex())
	assert.Equal(t, 3, g.Index().Len())

	_, ok := g.Index().Lookup(2)
	assert.False(t, ok, "duplicated tips never resolve")

	loc, ok := g.Index().Lookup(3)
	require.True(t, ok)
	assert.Equal(t, Loc{Handle: 1, End: 1}, loc)

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "tip 2 is duplicated", hook.LastEntry().Message)
}

func TestGraph_BuildIndex_skipsTombstones(t *testing.T) {
	dead := frag("ACGT", 5, [2]uint64{1, 2}, nil, nil)
	dead.Len = -1

	g := New([]Fragment{dead, frag("ACGT", 5, [2]uint64{2, 3}, nil, nil)}, nil)
	assert.Zero(t, g.BuildIndex())

	loc, ok := g.Index().Lookup(2)
	require.True(t, ok)
	assert.Equal(t, Loc{Handle: 1, End: 0}, loc)
}

func TestTipIndex_Remove(t *testing.T) {
	g := New([]Fragment{frag("ACGT", 5, [2]uint64{1, 2}, nil, nil)}, nil)
	idx := g.Index()

	idx.Remove(1)
	_, ok := idx.Lookup(1)
	assert.False(t, ok)
	assert.Equal(t, 1, idx.Len())

	idx.Remove(42) // absent ids are ignored
	assert.Equal(t, 1, idx.Len())
}

func TestTipIndex_release(t *testing.T) {
	g := New([]Fragment{
		frag("ACGT", 5, [2]uint64{1, 2}, nil, nil),
		frag("ACGT", 5, [2]uint64{2, 3}, nil, nil),
	}, nil)
	idx := g.Index()

	idx.release(1, 1) // owned by fragment 0
	_, ok := idx.Lookup(1)
	assert.True(t, ok)

	idx.release(2, 0) // unusable, shared
	assert.True(t, idx.has(2))

	idx.release(1, 0)
	assert.False(t, idx.has(1))
}

func TestGraph_Amend(t *testing.T) {
	log, hook := test.NewNullLogger()
	g := New([]Fragment{
		frag("ACGT", 5, [2]uint64{1, 2}, arcs(7, 2), arcs(3, 2)),
		frag("ACGT", 5, [2]uint64{3, 4}, arcs(2, 2), nil),
	}, log)
	before := clone(g.Frags)

	assert.Equal(t, 1, g.Amend())
	assert.Equal(t, before, g.Frags, "amend never repairs")

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "tip 7 is non-existing", hook.LastEntry().Message)
}
