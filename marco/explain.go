package marco

// Explain runs the MARCO loop over universe — the pattern edge/vertex
// ids that appeared in at least one posted nogood — treating each
// nogood as a forbidden combination: a candidate subset of universe
// is satisfiable iff it does not contain every id of any nogood. The
// result is one Error per independent cluster of conflicting ids,
// suitable for surfacing as a human-readable unsatisfiability
// explanation when a top-level search returns Unsatisfiable.
func Explain(universe []int, nogoods [][]int) []Error {
	satFunc := func(candidate []int) bool {
		set := NewIntSet(candidate...)
		for _, nogood := range nogoods {
			if containsAll(set, nogood) {
				return false
			}
		}
		return true
	}
	m := NewMarco(universe, satFunc)
	m.Run()
	return m.Analysis()
}

func containsAll(set IntSet, ids []int) bool {
	for _, id := range ids {
		if !set.Contains(id) {
			return false
		}
	}
	return true
}
