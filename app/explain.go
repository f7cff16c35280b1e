package app

import (
	"subgraphsolver/homomorphism"
	"subgraphsolver/marco"
)

// Explain turns the nogoods a search accumulated into a minimal-
// conflict explanation: the pattern vertex of each nogood literal is
// its MARCO id, so a cluster of pattern vertices that only ever appear
// together in nogoods becomes one reported conflict.
func Explain(watches *homomorphism.WatchTable) []marco.Error {
	nogoods := watches.Nogoods()

	seenID := make(map[int]bool)
	var universe []int
	idSets := make([][]int, 0, len(nogoods))
	for _, literals := range nogoods {
		ids := make([]int, 0, len(literals))
		for _, lit := range literals {
			if !seenID[lit.PatternVertex] {
				seenID[lit.PatternVertex] = true
				universe = append(universe, lit.PatternVertex)
			}
			ids = append(ids, lit.PatternVertex)
		}
		idSets = append(idSets, ids)
	}

	return marco.Explain(universe, idSets)
}
