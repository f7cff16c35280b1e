// Package model turns ingested pattern/target graphs into the
// precomputed, read-only view the search core consumes through
// homomorphism.Model. Nothing here mutates after New returns.
package model

import (
	"fmt"

	"subgraphsolver/bigraph"
	"subgraphsolver/bitset"
	"subgraphsolver/homomorphism"
)

// Model is the concrete homomorphism.Model: precomputed adjacency
// bitsets, degrees, labels and ordering constraints for one
// pattern/target pair.
type Model struct {
	directed      bool
	hasEdgeLabels bool
	maxGraphs     int
	linkCount     int

	patternSize int
	targetSize  int

	patternRows [][]bitset.BitDomain
	targetRows  [][]bitset.BitDomain

	targetForwardRows []bitset.BitDomain
	targetReverseRows []bitset.BitDomain

	patternDegree []int
	targetDegree  []int
	largestTargetDegree int

	patternEdgeLabels map[[2]int]int
	targetEdgeLabels  map[[2]int]int

	lessThans [][2]int

	patternNames []string
	targetNames  []string

	bigraphChecker *bigraph.Checker
}

// New builds a Model from a Config, precomputing everything the
// search core will read many times over during one solve.
func New(cfg Config) *Model {
	maxGraphs := cfg.MaxGraphs
	if maxGraphs < 1 {
		maxGraphs = 1
	}

	m := &Model{
		directed:          cfg.Directed,
		hasEdgeLabels:     cfg.HasEdgeLabels,
		maxGraphs:         maxGraphs,
		linkCount:         cfg.LinkCount,
		patternSize:       cfg.PatternSize,
		targetSize:        cfg.TargetSize,
		patternEdgeLabels: make(map[[2]int]int, len(cfg.PatternEdges)),
		targetEdgeLabels:  make(map[[2]int]int, len(cfg.TargetEdges)),
		lessThans:         cfg.LessThans,
		patternNames:      cfg.PatternNames,
		targetNames:       cfg.TargetNames,
	}

	patternSymmetric := make([]bitset.BitDomain, cfg.PatternSize)
	for i := range patternSymmetric {
		patternSymmetric[i] = bitset.New(cfg.PatternSize)
	}
	patternDirectional := make([]bitset.BitDomain, cfg.PatternSize)
	for i := range patternDirectional {
		patternDirectional[i] = bitset.New(cfg.PatternSize)
	}
	for _, e := range cfg.PatternEdges {
		patternDirectional[e.U].Set(e.V)
		patternSymmetric[e.U].Set(e.V)
		patternSymmetric[e.V].Set(e.U)
		if !cfg.Directed {
			patternDirectional[e.V].Set(e.U)
		}
		m.patternEdgeLabels[[2]int{e.U, e.V}] = e.Label
		if !cfg.Directed {
			m.patternEdgeLabels[[2]int{e.V, e.U}] = e.Label
		}
	}

	targetSymmetric := make([]bitset.BitDomain, cfg.TargetSize)
	for i := range targetSymmetric {
		targetSymmetric[i] = bitset.New(cfg.TargetSize)
	}
	targetForward := make([]bitset.BitDomain, cfg.TargetSize)
	targetReverse := make([]bitset.BitDomain, cfg.TargetSize)
	for i := range targetForward {
		targetForward[i] = bitset.New(cfg.TargetSize)
		targetReverse[i] = bitset.New(cfg.TargetSize)
	}
	for _, e := range cfg.TargetEdges {
		targetSymmetric[e.U].Set(e.V)
		targetSymmetric[e.V].Set(e.U)
		targetForward[e.U].Set(e.V)
		targetReverse[e.V].Set(e.U)
		m.targetEdgeLabels[[2]int{e.U, e.V}] = e.Label
		if !cfg.Directed {
			m.targetEdgeLabels[[2]int{e.V, e.U}] = e.Label
			targetForward[e.V].Set(e.U)
			targetReverse[e.U].Set(e.V)
		}
	}

	m.patternRows = buildFilterGraphs(patternDirectional, patternSymmetric, maxGraphs)
	m.targetRows = buildFilterGraphs(targetSymmetric, targetSymmetric, maxGraphs)
	m.targetForwardRows = targetForward
	m.targetReverseRows = targetReverse

	m.patternDegree = make([]int, cfg.PatternSize)
	for v := range m.patternDegree {
		m.patternDegree[v] = m.patternRows[0][v].Count()
	}
	m.targetDegree = make([]int, cfg.TargetSize)
	for v := range m.targetDegree {
		m.targetDegree[v] = m.targetRows[0][v].Count()
		if m.targetDegree[v] > m.largestTargetDegree {
			m.largestTargetDegree = m.targetDegree[v]
		}
	}

	if cfg.LinkCount > 0 {
		m.bigraphChecker = bigraph.NewChecker(
			cfg.PatternSize, cfg.LinkCount, edgePairs(cfg.PatternEdges),
			cfg.TargetSize, edgePairs(cfg.TargetEdges))
	}

	return m
}

// buildFilterGraphs returns maxGraphs adjacency layers: layer 0 is
// directional (unchanged from the caller), and each subsequent layer
// is the one-hop bitset-union expansion of the previous layer over
// base — the "distance <= g+1" parallel filter graphs from §C.1.
func buildFilterGraphs(directional, base []bitset.BitDomain, maxGraphs int) [][]bitset.BitDomain {
	n := len(directional)
	rows := make([][]bitset.BitDomain, maxGraphs)
	rows[0] = directional
	for g := 1; g < maxGraphs; g++ {
		rows[g] = make([]bitset.BitDomain, n)
		for v := 0; v < n; v++ {
			rows[g][v] = rows[g-1][v].Clone()
			base[v].ForEach(func(w int) bool {
				rows[g][v].UnionWith(rows[g-1][w])
				return true
			})
		}
	}
	return rows
}

func edgePairs(edges []Edge) [][2]int {
	pairs := make([][2]int, len(edges))
	for i, e := range edges {
		pairs[i] = [2]int{e.U, e.V}
	}
	return pairs
}

func (m *Model) PatternSize() int      { return m.patternSize }
func (m *Model) TargetSize() int       { return m.targetSize }
func (m *Model) MaxGraphs() int        { return m.maxGraphs }
func (m *Model) PatternLinkCount() int { return m.linkCount }
func (m *Model) Directed() bool        { return m.directed }
func (m *Model) HasEdgeLabels() bool   { return m.hasEdgeLabels }
func (m *Model) HasLessThans() bool    { return len(m.lessThans) > 0 }
func (m *Model) LargestTargetDegree() int { return m.largestTargetDegree }

func (m *Model) PatternGraphRow(g, v int) bitset.BitDomain { return m.patternRows[g][v] }
func (m *Model) TargetGraphRow(g, v int) bitset.BitDomain { return m.targetRows[g][v] }
func (m *Model) ForwardTargetGraphRow(v int) bitset.BitDomain { return m.targetForwardRows[v] }
func (m *Model) ReverseTargetGraphRow(v int) bitset.BitDomain { return m.targetReverseRows[v] }

func (m *Model) PatternAdjacencyBits(u, v int) uint {
	var bits uint
	for g := 0; g < m.maxGraphs; g++ {
		if m.patternRows[g][u].Test(v) {
			bits |= 1 << uint(g)
		}
	}
	return bits
}

func (m *Model) PatternDegree(_, v int) int { return m.patternDegree[v] }
func (m *Model) TargetDegree(_, v int) int  { return m.targetDegree[v] }

func (m *Model) PatternEdgeLabel(u, v int) int { return m.patternEdgeLabels[[2]int{u, v}] }
func (m *Model) TargetEdgeLabel(u, v int) int  { return m.targetEdgeLabels[[2]int{u, v}] }

func (m *Model) PatternLessThansInConvenientOrder() [][2]int { return m.lessThans }

func (m *Model) PatternVertexForProof(p int) homomorphism.NamedVertex {
	return homomorphism.NamedVertex{Index: p, Name: nameOrDefault(m.patternNames, p, "p")}
}

func (m *Model) TargetVertexForProof(t int) homomorphism.NamedVertex {
	return homomorphism.NamedVertex{Index: t, Name: nameOrDefault(m.targetNames, t, "t")}
}

func (m *Model) CheckExtraBigraphConstraints(mapping homomorphism.VertexToVertexMapping) bool {
	if m.bigraphChecker == nil {
		return true
	}
	return m.bigraphChecker.Check(bigraph.VertexToVertexMapping(mapping))
}

func nameOrDefault(names []string, i int, prefix string) string {
	if i < len(names) && names[i] != "" {
		return names[i]
	}
	return fmt.Sprintf("%s%d", prefix, i)
}
