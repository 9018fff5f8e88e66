package unitig

import "github.com/sirupsen/logrus"

// unusable marks a tip id that was seen on more than one fragment end
const unusable = -1

// Loc is the end of a fragment: its handle and the end selector
type Loc struct {
	Handle int
	End    int
}

// TipIndex maps tip ids to the fragment end that owns them. Values are
// packed as handle<<1|end
type TipIndex struct {
	m map[uint64]int64
}

// buildIndex indexes both ends of every active fragment. A duplicated id is
// logged and made unusable, so later lookups of it fail
func buildIndex(frags []Fragment, log logrus.FieldLogger) (*TipIndex, int) {
	idx := &TipIndex{m: make(map[uint64]int64, 2*len(frags))}
	dups := 0

	for h := range frags {
		f := &frags[h]
		if f.Len < 0 {
			continue
		}

		for e, id := range f.Ends {
			if _, seen := idx.m[id]; seen {
				log.WithField("action", "build_tip_index").
					Warnf("tip %d is duplicated", id)
				idx.m[id] = unusable
				dups++
				continue
			}
			idx.m[id] = int64(h)<<1 | int64(e)
		}
	}

	return idx, dups
}

// Lookup returns the fragment end owning the tip id. It fails for ids
// that are absent or duplicated
func (t *TipIndex) Lookup(id uint64) (Loc, bool) {
	v, ok := t.m[id]
	if !ok || v == unusable {
		return Loc{}, false
	}
	return Loc{Handle: int(v >> 1), End: int(v & 1)}, true
}

// Remove erases the tip id from the index
func (t *TipIndex) Remove(id uint64) {
	delete(t.m, id)
}

// release erases the tip id only if it resolves to fragment h. Unusable
// ids are shared with other fragments and stay in place
func (t *TipIndex) release(id uint64, h int) {
	if loc, ok := t.Lookup(id); ok && loc.Handle == h {
		delete(t.m, id)
	}
}

// Len returns the number of indexed tip ids, unusable ones included
func (t *TipIndex) Len() int {
	return len(t.m)
}

// has returns whether the id has an entry, usable or not
func (t *TipIndex) has(id uint64) bool {
	_, ok := t.m[id]
	return ok
}

// flipEnd toggles the end selector of the id. Unusable entries stay unusable
func (t *TipIndex) flipEnd(id uint64) {
	if v, ok := t.m[id]; ok && v != unusable {
		t.m[id] = v ^ 1
	}
}

// point re-points an existing id at a fragment end. It returns false
// if the id isn't indexed
func (t *TipIndex) point(id uint64, loc Loc) bool {
	v, ok := t.m[id]
	if !ok {
		return false
	}
	if v != unusable {
		t.m[id] = int64(loc.Handle)<<1 | int64(loc.End)
	}
	return true
}
