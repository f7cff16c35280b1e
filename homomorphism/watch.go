package homomorphism

// Nogood is a non-empty ordered list of assignment literals: their
// conjunction is forbidden. Watched holds the indices, within
// Literals, of the (up to) two literals currently registered with the
// WatchTable under the standard two-watched-literal scheme.
type Nogood struct {
	Literals []Assignment
	Watched  [2]int
}

// WatchTable indexes nogoods by the literal(s) they watch, so
// propagation of a freshly-true literal only has to look at nogoods
// that could possibly be affected by it. It lives for the whole solve
// and accumulates nogoods across restarts; there is no reclamation.
//
// Single-literal nogoods are a degenerate case of the two-watch scheme
// (there is no "other" literal to fall back on), so they bypass the
// watch lists entirely and are kept in Units, applied directly by the
// propagator on every call.
type WatchTable struct {
	byLiteral map[Assignment][]*Nogood
	Units     []Assignment
}

// NewWatchTable returns an empty table. patternSize*targetSize, the
// number of possible literals, is used as the map's initial size hint.
func NewWatchTable(patternSize, targetSize int) *WatchTable {
	return &WatchTable{byLiteral: make(map[Assignment][]*Nogood, patternSize*targetSize)}
}

// PostNogood registers a fresh nogood over the given literals, picking
// its initial two watched literals (or filing it as a unit nogood).
func (w *WatchTable) PostNogood(literals []Assignment) {
	if len(literals) == 0 {
		return
	}
	if len(literals) == 1 {
		w.Units = append(w.Units, literals[0])
		return
	}
	lits := make([]Assignment, len(literals))
	copy(lits, literals)
	ng := &Nogood{Literals: lits, Watched: [2]int{0, 1}}
	w.byLiteral[lits[0]] = append(w.byLiteral[lits[0]], ng)
	w.byLiteral[lits[1]] = append(w.byLiteral[lits[1]], ng)
}

// Nogoods returns every accumulated nogood as a plain literal slice,
// collapsing the two-entry watch-list duplication (each multi-literal
// nogood is indexed under two literals) and folding in Units as
// single-literal nogoods. It is meant for post-hoc reporting (an
// unsat explanation), not for use inside propagation.
func (w *WatchTable) Nogoods() [][]Assignment {
	seen := make(map[*Nogood]bool)
	var out [][]Assignment
	for _, list := range w.byLiteral {
		for _, ng := range list {
			if seen[ng] {
				continue
			}
			seen[ng] = true
			out = append(out, ng.Literals)
		}
	}
	for _, lit := range w.Units {
		out = append(out, []Assignment{lit})
	}
	return out
}

func (w *WatchTable) removeWatcher(lit Assignment, ng *Nogood) {
	list := w.byLiteral[lit]
	for i, cand := range list {
		if cand == ng {
			list[i] = list[len(list)-1]
			w.byLiteral[lit] = list[:len(list)-1]
			return
		}
	}
}

// Propagate is called whenever current just became true (its
// assignment was appended to the trail). notInTrail reports whether a
// literal's assignment is absent from the trail; forbid is invoked
// with a literal whose value must now be removed from its domain.
func (w *WatchTable) Propagate(current Assignment, notInTrail func(Assignment) bool, forbid func(Assignment)) {
	watchers := w.byLiteral[current]
	if len(watchers) == 0 {
		return
	}
	snapshot := make([]*Nogood, len(watchers))
	copy(snapshot, watchers)

	for _, ng := range snapshot {
		var slot int
		switch {
		case ng.Literals[ng.Watched[0]] == current:
			slot = 0
		case ng.Literals[ng.Watched[1]] == current:
			slot = 1
		default:
			// already moved off this literal by an earlier iteration
			continue
		}
		otherIdx := ng.Watched[1-slot]

		found := false
		for idx, lit := range ng.Literals {
			if idx == ng.Watched[0] || idx == ng.Watched[1] {
				continue
			}
			if notInTrail(lit) {
				w.removeWatcher(current, ng)
				ng.Watched[slot] = idx
				w.byLiteral[lit] = append(w.byLiteral[lit], ng)
				found = true
				break
			}
		}
		if !found {
			forbid(ng.Literals[otherIdx])
		}
	}
}
