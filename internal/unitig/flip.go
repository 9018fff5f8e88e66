package unitig

// Flip reverses the orientation of a fragment: its sequence is reverse
// complemented, its coverage reversed, and its ends (ids and arcs) swapped.
// Both tip ids must be indexed to this fragment. Flip is its own inverse
func (g *Graph) Flip(h int) error {
	idx := g.Index()
	f := &g.Frags[h]

	for _, id := range f.Ends {
		if !idx.has(id) {
			return invariantf(h, id, "cannot flip, tip is not indexed")
		}
		if loc, ok := idx.Lookup(id); ok && loc.Handle != h {
			return invariantf(h, id, "cannot flip, tip is indexed to fragment %d", loc.Handle)
		}
	}

	reverseComplement(f.Seq[:f.Len])
	reverse(f.Cov[:f.Len])
	f.Ends[0], f.Ends[1] = f.Ends[1], f.Ends[0]
	f.Nei[0], f.Nei[1] = f.Nei[1], f.Nei[0]

	idx.flipEnd(f.Ends[0])
	idx.flipEnd(f.Ends[1])
	return nil
}
