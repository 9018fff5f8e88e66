// Package unitig is for simplifying a bidirected graph of unitigs: removing
// low coverage dead ends and collapsing unambiguous paths into single,
// longer fragments
package unitig

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Arc is an overlap between one end of a fragment and the end of another
// fragment, addressed by that end's tip id
type Arc struct {
	// Tip is the id of the end on the other side of the overlap
	Tip uint64

	// Overlap is the number of bases shared by the two ends
	Overlap uint32
}

// Fragment is a single unitig: a sequence with two ends, each with
// a list of overlaps to other fragment ends
type Fragment struct {
	// Len is the number of bases. Fragments removed as tips or absorbed
	// by a merge are tombstoned with a negative length
	Len int

	// Ends are the tip ids of the left (0) and right (1) end
	Ends [2]uint64

	// Nei are the arcs leaving the left (0) and right (1) end
	Nei [2][]Arc

	// Seq is the sequence, one nucleotide code (1-4, 5 for N) per base
	Seq []byte

	// Cov is the per-base coverage, offset by 33
	Cov []byte

	// AvgCov is the mean coverage at load time. It is not updated by merges
	AvgCov float64
}

// Active returns whether the fragment is still part of the graph
func (f *Fragment) Active() bool {
	return f.Len > 0
}

// tombstone releases the fragment's buffers and marks it deleted
func (f *Fragment) tombstone() {
	*f = Fragment{Len: -1, Ends: f.Ends}
}

// Graph is the node store, an arena of fragments addressed by their
// position, and the index from tip ids to fragment ends
type Graph struct {
	// Frags are all fragments ever loaded. Positions are never reused
	Frags []Fragment

	idx *TipIndex
	log logrus.FieldLogger
}

// New returns a graph over the fragments. The tip index is built
// on first use or with BuildIndex
func New(frags []Fragment, log logrus.FieldLogger) *Graph {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &Graph{Frags: frags, log: log}
}

// BuildIndex (re)builds the tip index from the active fragments and
// returns the number of duplicated tip ids
func (g *Graph) BuildIndex() int {
	var dups int
	g.idx, dups = buildIndex(g.Frags, g.log)
	return dups
}

// Index returns the tip index, building it if necessary
func (g *Graph) Index() *TipIndex {
	if g.idx == nil {
		g.BuildIndex()
	}
	return g.idx
}

// Count returns the number of active fragments and their total length
func (g *Graph) Count() (active, bases int) {
	for i := range g.Frags {
		if g.Frags[i].Active() {
			active++
			bases += g.Frags[i].Len
		}
	}
	return
}
