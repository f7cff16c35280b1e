// Package marco implements the Grow/Shrink MARCO loop for enumerating
// every minimal unsatisfiable subset (MUS), maximal satisfiable subset
// (MSS) and minimal correction set (MCS) over an opaque universe of
// integer ids. It is domain-agnostic: callers supply the satisfiable
// predicate and decide what an id means — here, a pattern edge or
// vertex index appearing in a posted nogood.
package marco

import (
	mapset "github.com/deckarep/golang-set/v2"

	"subgraphsolver/graph"
)

type IntSet mapset.Set[int]

// Error describes one independent cluster of conflicting ids: every
// MUS in it shares at least one id, transitively, with another MUS in
// the same cluster.
type Error struct {
	MCSs          []IntSet
	MSSs          []IntSet
	MUSs          []IntSet
	CriticalNodes []int
}

func NewIntSet(vals ...int) IntSet {
	return IntSet(mapset.NewSet[int](vals...))
}

// Solver is the incremental SAT/MaxSAT oracle MARCO drives: Solve
// finds one model satisfying everything added so far (or reports
// none exists), Model reads the ids asserted true in the last
// successful Solve, AddClause asserts a new clause over ids (an id
// v >= 0 is the literal "v holds", its bitwise complement ^v is the
// literal "v does not hold", so id 0 can be negated too).
type Solver interface {
	Solve() bool
	Model() IntSet
	AddClause(vars IntSet)
}

type Marco struct {
	Rules       IntSet
	MUSs        []IntSet
	MCSs        []IntSet
	MSSs        []IntSet
	MaxLoop     int
	LoopCounter int
	SatFunc     func([]int) bool
	Solver      Solver
}

func NewMarco(rules []int, satFunc func([]int) bool) *Marco {
	marco := Marco{
		Rules:       mapset.NewSet[int](rules...),
		MUSs:        []IntSet{},
		MCSs:        []IntSet{},
		MSSs:        []IntSet{},
		MaxLoop:     1000,
		LoopCounter: 0,
		SatFunc:     satFunc,
		Solver:      NewMaxsatSolver(NewIntSet(rules...)),
	}
	return &marco
}

func (m *Marco) Grow(seed IntSet) IntSet {
	for elem := range (m.Rules.Difference(seed)).Iter() {
		newSet := seed.Clone()
		newSet.Add(elem)
		if m.Sat(newSet) {
			seed.Add(elem)
		}
	}
	return seed
}

func (m *Marco) Shrink(seed IntSet) IntSet {
	newSeed := seed.Clone()
	for elem := range newSeed.Iter() {
		newSet := seed.Difference(NewIntSet(elem))
		if !m.Sat(newSet) {
			seed.Remove(elem)
		}
	}
	return seed
}

func (m *Marco) Sat(rules IntSet) bool {
	return m.SatFunc(rules.ToSlice())
}

func (m *Marco) Run() {
	successful := m.Solver.Solve()
	for successful {
		if m.LoopCounter >= m.MaxLoop {
			panic("marco: exceeded MaxLoop without converging")
		}

		seed := m.Solver.Model()

		if m.Sat(seed) {
			mss := m.Grow(seed)
			m.MSSs = append(m.MSSs, mss)

			mcs := m.Rules.Difference(mss)
			m.Solver.AddClause(mcs)
		} else {
			mus := m.Shrink(seed)
			m.MUSs = append(m.MUSs, mus)
			var negs IntSet = NewIntSet()
			for v := range mus.Iter() {
				negs.Add(^v)
			}
			m.Solver.AddClause(negs)
		}
		successful = m.Solver.Solve()
		m.LoopCounter = m.LoopCounter + 1
	}
}

func combinations(input []int) [][]int {
	var results [][]int
	for i := 0; i < len(input); i++ {
		for j := i + 1; j < len(input); j++ {
			results = append(results, []int{input[i], input[j]})
		}
	}
	return results
}

// Analysis groups the accumulated MUSs into independent clusters (two
// MUSs are in the same cluster iff they share an id, transitively) and
// derives, for each cluster, the MCSs/MSSs relevant only to that
// cluster's critical ids.
func (m *Marco) Analysis() []Error {
	for _, mss := range m.MSSs {
		m.MCSs = append(m.MCSs, m.Rules.Difference(mss))
	}

	musIndexList := make([]int, len(m.MUSs))
	for i := range musIndexList {
		musIndexList[i] = i
	}
	musGraph := graph.NewGraph(len(musIndexList))
	for _, combination := range combinations(musIndexList) {
		index1 := combination[0]
		mus1 := m.MUSs[index1]

		index2 := combination[1]
		mus2 := m.MUSs[index2]

		if !mus1.Intersect(mus2).IsEmpty() {
			musGraph.AddEdge(index1, index2)
		}
	}

	_, components := musGraph.CountAndGetConnectedComponents()

	errors := make([]Error, 0)
	for _, component := range components {
		musList := make([]IntSet, 0)
		mssList := make([]IntSet, 0)
		mcsList := make([]IntSet, 0)
		for _, musId := range component {
			musList = append(musList, m.MUSs[musId])
		}

		criticalNodes := NewIntSet()
		for _, mus := range musList {
			criticalNodes = criticalNodes.Union(mus)
		}
		for _, mcs := range m.MCSs {
			reduced := mcs.Intersect(criticalNodes)
			if reduced.IsEmpty() {
				continue
			}
			exist := false
			for _, included := range mcsList {
				if reduced.Equal(included) {
					exist = true
					break
				}
			}
			if !exist {
				mcsList = append(mcsList, reduced)
			}
		}

		for _, mcs := range mcsList {
			mssList = append(mssList, criticalNodes.Difference(mcs))
		}

		errors = append(errors, Error{
			MCSs:          mcsList,
			MSSs:          mssList,
			MUSs:          musList,
			CriticalNodes: criticalNodes.ToSlice(),
		})
	}
	return errors
}
