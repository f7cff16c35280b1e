package homomorphism

// Assignment is a single (pattern vertex, target vertex) pairing.
type Assignment struct {
	PatternVertex int
	TargetVertex  int
}

// TrailEntry is one slot in the Assignments trail: an assignment plus
// the bookkeeping needed to reconstruct proof output and to tell a
// decision from a unit-propagated assignment.
//
// Discrepancy and ChoiceCount are -1 for propagated (unit) entries and
// -2 for the synthetic decision entries RestartingSearch pushes while
// unwinding a Restart, purely to describe a trail to the WatchTable.
type TrailEntry struct {
	Assignment  Assignment
	IsDecision  bool
	Discrepancy int
	ChoiceCount int
}

// Assignments is the append-only decision/propagation trail for one
// top-level search call. It is truncated (never filtered) when
// backtracking, so Values always reflects exactly the current path
// from the root.
type Assignments struct {
	Values []TrailEntry
}

// Contains reports whether lit appears anywhere in the trail.
func (a *Assignments) Contains(lit Assignment) bool {
	for _, e := range a.Values {
		if e.Assignment == lit {
			return true
		}
	}
	return false
}

// Push appends a new trail entry and returns the trail length before
// the push, so callers can later restore with Truncate.
func (a *Assignments) Push(e TrailEntry) int {
	mark := len(a.Values)
	a.Values = append(a.Values, e)
	return mark
}

// Truncate restores the trail to the given length, discarding
// everything pushed since the matching Push.
func (a *Assignments) Truncate(mark int) {
	a.Values = a.Values[:mark]
}

// DecisionLiterals collects the assignment half of every decision
// (non-propagated) entry, in trail order.
func (a *Assignments) DecisionLiterals() []Assignment {
	out := make([]Assignment, 0, len(a.Values))
	for _, e := range a.Values {
		if e.IsDecision {
			out = append(out, e.Assignment)
		}
	}
	return out
}

// AsProofDecisions mirrors DecisionLiterals but in the (pattern,
// target) pair shape the Proof sink expects.
func (a *Assignments) AsProofDecisions() [][2]int {
	out := make([][2]int, 0, len(a.Values))
	for _, e := range a.Values {
		if e.IsDecision {
			out = append(out, [2]int{e.Assignment.PatternVertex, e.Assignment.TargetVertex})
		}
	}
	return out
}
