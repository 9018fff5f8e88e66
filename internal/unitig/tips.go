package unitig

// RemoveTips removes dead end fragments, those without a neighbor on at
// least one end, whose average coverage is below minCov or whose length
// is below minLen. Arcs pointing at a removed fragment are torn down in its
// neighbors.
//
// Fragments are scanned once, in order. A fragment that only becomes a
// dead end because of a later removal is not revisited
func (g *Graph) RemoveTips(minCov float64, minLen int) int {
	idx := g.Index()
	removed := 0

	for h := range g.Frags {
		f := &g.Frags[h]
		if !f.Active() {
			continue
		}
		if len(f.Nei[0]) > 0 && len(f.Nei[1]) > 0 {
			continue // internal
		}
		if f.AvgCov >= minCov && f.Len >= minLen {
			continue
		}

		g.log.WithField("action", "remove_tips").
			Debugf("removing tip %d (%d bp, %.2f avg coverage)", h, f.Len, f.AvgCov)

		ends, nei := f.Ends, f.Nei
		idx.release(ends[0], h)
		idx.release(ends[1], h)
		f.tombstone()

		for e := range nei {
			for _, a := range nei[e] {
				g.cutArc(a.Tip, ends)
			}
		}
		removed++
	}

	return removed
}

// cutArc deletes, from the end owning tip u, every arc to either of the ends
func (g *Graph) cutArc(u uint64, ends [2]uint64) {
	loc, ok := g.Index().Lookup(u)
	if !ok {
		return
	}

	r := g.Frags[loc.Handle].Nei[loc.End]
	kept := r[:0]
	for _, a := range r {
		if a.Tip != ends[0] && a.Tip != ends[1] {
			kept = append(kept, a)
		}
	}
	g.Frags[loc.Handle].Nei[loc.End] = kept
}
