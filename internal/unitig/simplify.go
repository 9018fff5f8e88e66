package unitig

// Stats summarizes a Simplify run
type Stats struct {
	// Duplicated is the number of tip ids seen on more than one end
	Duplicated int

	// Dangling is the number of arcs to tip ids that aren't indexed
	Dangling int

	// Tips is the number of fragments removed as tips
	Tips int

	// Merges is the number of fragments absorbed by merges
	Merges int

	// Active is the number of fragments left
	Active int

	// Bases is the total length of the fragments left
	Bases int
}

// Amend checks that the target of every arc is indexed. Arcs to unknown
// tips are logged and counted, but not removed
func (g *Graph) Amend() int {
	idx := g.Index()
	dangling := 0

	for h := range g.Frags {
		f := &g.Frags[h]
		if !f.Active() {
			continue
		}
		for e := range f.Nei {
			for _, a := range f.Nei[e] {
				if _, ok := idx.Lookup(a.Tip); !ok {
					g.log.WithField("action", "amend").
						Warnf("tip %d is non-existing", a.Tip)
					dangling++
				}
			}
		}
	}

	return dangling
}

// Simplify removes tips and then collapses every unambiguous path into
// a single fragment. Each fragment absorbs its neighbors to the right, is
// flipped, and absorbs its neighbors on the other side.
//
// Only an InvariantError stops the run. It is returned as is
func (g *Graph) Simplify(minCov float64, minLen int) (Stats, error) {
	var st Stats

	st.Duplicated = g.BuildIndex()
	st.Dangling = g.Amend()
	st.Tips = g.RemoveTips(minCov, minLen)

	for h := range g.Frags {
		if !g.Frags[h].Active() {
			continue
		}

		n, err := g.extend(h)
		st.Merges += n
		if err != nil {
			return st, err
		}

		if err = g.Flip(h); err != nil {
			return st, err
		}

		n, err = g.extend(h)
		st.Merges += n
		if err != nil {
			return st, err
		}
	}

	st.Active, st.Bases = g.Count()
	g.log.WithField("action", "simplify").
		Infof("removed %d tips and merged %d fragments: %d fragments in %d bp left", st.Tips, st.Merges, st.Active, st.Bases)

	return st, nil
}

// extend merges h with its right neighbor until it's rejected, and returns
// the number of merges
func (g *Graph) extend(h int) (int, error) {
	merges := 0
	for {
		err := g.Merge(h)
		switch {
		case err == nil:
			merges++
		case IsRejection(err):
			return merges, nil
		default:
			return merges, err
		}
	}
}
