package unitig

// maxCov is the largest coverage byte. Summed coverage saturates here
const maxCov = 126

// Merge merges fragment w with the fragment on its right end (end 1).
//
// A Rejection is returned, and nothing is changed, if either side of the
// join has other neighbors, if the neighbor can't be found, or if the
// neighbor is w itself. An InvariantError is returned if the overlap is
// inconsistent with the fragments' lengths or with the reciprocal arc.
//
// On success w holds the joined sequence, takes over the neighbor's right
// end (its tip id and arcs) and the neighbor is tombstoned
func (g *Graph) Merge(w int) error {
	idx := g.Index()
	p := &g.Frags[w]

	if len(p.Nei[1]) != 1 {
		return ErrNotUnambiguous
	}
	arc := p.Nei[1][0]

	loc, ok := idx.Lookup(arc.Tip)
	if !ok || !g.Frags[loc.Handle].Active() {
		g.log.WithField("action", "merge").
			Debugf("tip %d on the right of fragment %d is missing", arc.Tip, w)
		return ErrTargetMissing
	}
	if loc.Handle == w {
		return ErrSelfLoop
	}
	q := &g.Frags[loc.Handle]
	if len(q.Nei[loc.End]) != 1 {
		return ErrTargetNotUnambiguous
	}

	ov := int(arc.Overlap)
	if back := q.Nei[loc.End][0]; back.Overlap != arc.Overlap {
		return invariantf(w, arc.Tip, "overlap %d disagrees with the reciprocal overlap %d", arc.Overlap, back.Overlap)
	}
	if p.Len <= ov || q.Len <= ov {
		return invariantf(w, arc.Tip, "overlap %d is not shorter than both fragments (%d and %d bp)", ov, p.Len, q.Len)
	}

	// a head-to-head arc, turn q around so its left end meets p's right
	if loc.End == 1 {
		if err := g.Flip(loc.Handle); err != nil {
			return err
		}
	}
	if !idx.has(q.Ends[1]) {
		return invariantf(loc.Handle, q.Ends[1], "right tip of the merged neighbor is not indexed")
	}

	// the junction's ends are internal now
	idx.release(p.Ends[1], w)
	idx.Remove(q.Ends[0])

	start := p.Len - ov
	p.Seq = append(p.Seq[:start], q.Seq[:q.Len]...)

	cov := p.Cov[:p.Len]
	for j, c := range q.Cov[:q.Len] {
		i := start + j
		if i >= p.Len {
			cov = append(cov, c)
			continue
		}
		if sum := int(cov[i]) + int(c) - 33; sum > maxCov {
			cov[i] = maxCov
		} else {
			cov[i] = byte(sum)
		}
	}
	p.Cov = cov
	p.Len = p.Len + q.Len - ov

	// p takes q's right end
	p.Nei[1] = q.Nei[1]
	p.Ends[1] = q.Ends[1]
	idx.point(p.Ends[1], Loc{Handle: w, End: 1})

	g.log.WithField("action", "merge").
		Debugf("merged fragment %d into %d (%d bp)", loc.Handle, w, p.Len)
	q.tombstone()

	return nil
}
