package homomorphism

import "subgraphsolver/bitset"

// Propagator runs unit propagation to fixpoint, wiring together
// adjacency, injectivity, ordering, watched nogoods, the global
// all-different pass and the lackey.
type Propagator struct {
	Model        Model
	Params       Params
	Watches      *WatchTable
	AllDifferent AllDifferentFilter
}

// AllDifferentFilter is the external cheap-all-different pass (§4.2
// step 8): sound, possibly incomplete Hall-set pruning over the
// target-vertex domains. DefaultAllDifferent (alldiff.go) is the one
// shipped with this package.
type AllDifferentFilter interface {
	Filter(targetSize int, domains Domains) bool
}

// Propagate runs the fixpoint loop described in spec.md §4.2. It
// mutates domains and assignments in place and returns false as soon
// as any domain is emptied.
func (pr *Propagator) Propagate(domains Domains, assignments *Assignments, useLackey bool) bool {
	// Apply any unit nogoods collected from the watch table: they are
	// permanent forbiddances, independent of the current unit-domain
	// search below.
	for _, lit := range pr.Watches.Units {
		if !pr.forbid(domains, lit) {
			return false
		}
	}

	findUnit := func() int {
		for i, d := range domains {
			if !d.Fixed && d.Count == 1 {
				return i
			}
		}
		return -1
	}

	for idx := findUnit(); idx != -1; idx = findUnit() {
		d := &domains[idx]
		value, _ := d.Values.FindFirst()
		current := Assignment{PatternVertex: d.V, TargetVertex: value}

		d.Fixed = true
		assignments.Push(TrailEntry{Assignment: current, IsDecision: false, Discrepancy: -1, ChoiceCount: -1})

		if pr.Params.ProofSink != nil {
			pr.Params.ProofSink.UnitPropagating(
				pr.Model.PatternVertexForProof(current.PatternVertex),
				pr.Model.TargetVertexForProof(current.TargetVertex))
		}

		pr.Watches.Propagate(current,
			func(lit Assignment) bool { return !assignments.Contains(lit) },
			func(lit Assignment) {
				for i := range domains {
					if domains[i].Fixed {
						continue
					}
					if domains[i].V == lit.PatternVertex {
						domains[i].Values.Reset(lit.TargetVertex)
						break
					}
				}
			})

		if !pr.propagateSimpleConstraints(domains, current) {
			return false
		}

		if pr.Model.HasLessThans() {
			if !pr.propagateLessThans(domains) {
				return false
			}
		}

		if pr.Params.Injectivity == Injective && pr.AllDifferent != nil {
			if !pr.AllDifferent.Filter(pr.Model.TargetSize(), domains) {
				return false
			}
		}

		// a domain may have been emptied by any of the passes above
		for _, d := range domains {
			if !d.Fixed && d.Count == 0 {
				return false
			}
		}
	}

	if pr.Params.LackeyImpl != nil && (useLackey || pr.Params.SendPartialsToLackey) {
		mapping := make(VertexToVertexMapping, len(assignments.Values))
		for _, e := range assignments.Values {
			mapping[e.Assignment.PatternVertex] = e.Assignment.TargetVertex
		}

		wipeout := false
		deletion := func(p, t int) bool {
			if wipeout {
				return false
			}
			for i := range domains {
				if domains[i].V != p {
					continue
				}
				if domains[i].Fixed {
					return false
				}
				if domains[i].Values.Test(t) {
					domains[i].Values.Reset(t)
					domains[i].Count--
					if domains[i].Count == 0 {
						wipeout = true
					}
					return true
				}
				return false
			}
			return false
		}

		var deletionFn DeletionFunc
		if useLackey {
			deletionFn = deletion
		}

		if !pr.Params.LackeyImpl.CheckSolution(mapping, true, false, deletionFn) || wipeout {
			return false
		}
	}

	return true
}

func (pr *Propagator) forbid(domains Domains, lit Assignment) bool {
	for i := range domains {
		if domains[i].Fixed || domains[i].V != lit.PatternVertex {
			continue
		}
		if domains[i].Values.Test(lit.TargetVertex) {
			domains[i].Values.Reset(lit.TargetVertex)
			domains[i].Count--
			if domains[i].Count == 0 {
				return false
			}
		}
		return true
	}
	return true
}

func (pr *Propagator) bothInNeighbourhoodOfSomeVertex(v, w int) bool {
	row := pr.Model.PatternGraphRow(0, v).Clone()
	row.IntersectWith(pr.Model.PatternGraphRow(0, w))
	return row.Any()
}

func (pr *Propagator) propagateSimpleConstraints(domains Domains, current Assignment) bool {
	for i := range domains {
		d := &domains[i]
		if d.Fixed {
			continue
		}

		switch pr.Params.Injectivity {
		case Injective:
			d.Values.Reset(current.TargetVertex)
		case LocallyInjective:
			if pr.bothInNeighbourhoodOfSomeVertex(current.PatternVertex, d.V) {
				d.Values.Reset(current.TargetVertex)
			}
		case NonInjective:
			// no action
		}

		directed := pr.Model.Directed()
		hasLabels := pr.Model.HasEdgeLabels()
		induced := pr.Params.Induced
		pr.propagateAdjacencyConstraints(d, current, directed, hasLabels, induced)

		d.Count = d.Values.Count()
		if d.Count == 0 {
			return false
		}
	}
	return true
}

// propagateAdjacencyConstraints is the boolean-triple-dispatch routine
// spec.md §9 asks for: one runtime-branching implementation instead
// of the original's three compile-time template instantiations.
func (pr *Propagator) propagateAdjacencyConstraints(d *Domain, current Assignment, directed, hasLabels, induced bool) {
	m := pr.Model
	graphPairs := m.PatternAdjacencyBits(current.PatternVertex, d.V)

	if !directed {
		if graphPairs&1 != 0 {
			d.Values.IntersectWith(m.TargetGraphRow(0, current.TargetVertex))
		} else if induced {
			d.Values.IntersectWithComplement(m.TargetGraphRow(0, current.TargetVertex))
		}
	} else {
		if graphPairs&1 != 0 {
			d.Values.IntersectWith(m.ForwardTargetGraphRow(current.TargetVertex))
		} else if induced {
			d.Values.IntersectWithComplement(m.ForwardTargetGraphRow(current.TargetVertex))
		}

		reversePairs := m.PatternAdjacencyBits(d.V, current.PatternVertex)
		if reversePairs&1 != 0 {
			d.Values.IntersectWith(m.ReverseTargetGraphRow(current.TargetVertex))
		} else if induced {
			d.Values.IntersectWithComplement(m.ReverseTargetGraphRow(current.TargetVertex))
		}
	}

	for g := 1; g < m.MaxGraphs(); g++ {
		if graphPairs&(1<<uint(g)) != 0 {
			d.Values.IntersectWith(m.TargetGraphRow(g, current.TargetVertex))
		}
	}

	if hasLabels {
		if graphPairs&1 != 0 {
			wantForward := m.PatternEdgeLabel(current.PatternVertex, d.V)
			check := d.Values.Clone()
			check.ForEach(func(c int) bool {
				if m.TargetEdgeLabel(current.TargetVertex, c) != wantForward {
					d.Values.Reset(c)
				}
				return true
			})
		}

		reversePairs := m.PatternAdjacencyBits(d.V, current.PatternVertex)
		if reversePairs&1 != 0 {
			wantReverse := m.PatternEdgeLabel(d.V, current.PatternVertex)
			check := d.Values.Clone()
			check.ForEach(func(c int) bool {
				if m.TargetEdgeLabel(c, current.TargetVertex) != wantReverse {
					d.Values.Reset(c)
				}
				return true
			})
		}
	}
}

func (pr *Propagator) propagateLessThans(domains Domains) bool {
	findDomain := make([]int, pr.Model.PatternSize())
	for i := range findDomain {
		findDomain[i] = -1
	}
	for i, d := range domains {
		findDomain[d.V] = i
	}

	pairs := pr.Model.PatternLessThansInConvenientOrder()

	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		if findDomain[a] == -1 || findDomain[b] == -1 {
			continue
		}
		aDomain := &domains[findDomain[a]]
		bDomain := &domains[findDomain[b]]

		firstA, ok := aDomain.Values.FindFirst()
		if !ok {
			return false
		}
		firstAllowedB := firstA + 1
		if firstAllowedB >= pr.Model.TargetSize() {
			return false
		}

		removeBelow(&bDomain.Values, firstAllowedB)
		bDomain.Count = bDomain.Values.Count()
		if bDomain.Count == 0 {
			return false
		}
	}

	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		if findDomain[a] == -1 || findDomain[b] == -1 {
			continue
		}
		aDomain := &domains[findDomain[a]]
		bDomain := &domains[findDomain[b]]

		lastB := lastMember(bDomain.Values)
		if lastB <= 0 {
			return false
		}
		lastAllowedA := lastB - 1

		removeAbove(&aDomain.Values, lastAllowedA)
		aDomain.Count = aDomain.Values.Count()
		if aDomain.Count == 0 {
			return false
		}
	}

	return true
}

func removeBelow(b *bitset.BitDomain, threshold int) {
	toDrop := []int{}
	b.ForEach(func(v int) bool {
		if v < threshold {
			toDrop = append(toDrop, v)
			return true
		}
		return false
	})
	for _, v := range toDrop {
		b.Reset(v)
	}
}

func removeAbove(b *bitset.BitDomain, threshold int) {
	toDrop := []int{}
	b.ForEach(func(v int) bool {
		if v > threshold {
			toDrop = append(toDrop, v)
		}
		return true
	})
	for _, v := range toDrop {
		b.Reset(v)
	}
}

func lastMember(b bitset.BitDomain) int {
	last := -1
	b.ForEach(func(v int) bool {
		last = v
		return true
	})
	return last
}
