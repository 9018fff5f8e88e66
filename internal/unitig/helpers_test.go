package unitig

import "bytes"

// frag makes an active fragment with a flat coverage value
func frag(seq string, cov int, ends [2]uint64, left, right []Arc) Fragment {
	return Fragment{
		Len:    len(seq),
		Ends:   ends,
		Nei:    [2][]Arc{left, right},
		Seq:    Encode([]byte(seq)),
		Cov:    bytes.Repeat([]byte{byte(cov + 33)}, len(seq)),
		AvgCov: float64(cov),
	}
}

// arcs makes an arc list from tip, overlap pairs
func arcs(pairs ...uint64) []Arc {
	var a []Arc
	for i := 0; i+1 < len(pairs); i += 2 {
		a = append(a, Arc{Tip: pairs[i], Overlap: uint32(pairs[i+1])})
	}
	return a
}

// clone deep copies fragments so they can be compared after mutation
func clone(frags []Fragment) []Fragment {
	out := make([]Fragment, len(frags))
	for i, f := range frags {
		c := f
		c.Seq = append([]byte(nil), f.Seq...)
		c.Cov = append([]byte(nil), f.Cov...)
		for e := range f.Nei {
			c.Nei[e] = append([]Arc(nil), f.Nei[e]...)
		}
		out[i] = c
	}
	return out
}

func seqOf(f Fragment) string {
	return string(Decode(f.Seq[:f.Len]))
}
