package homomorphism

import "subgraphsolver/bitset"

// NamedVertex pairs a raw vertex index with the human-readable label
// the Model knows for it, for use in Proof output.
type NamedVertex struct {
	Index int
	Name  string
}

// VertexToVertexMapping is a completed or partial pattern-to-target
// mapping, keyed by pattern vertex.
type VertexToVertexMapping map[int]int

// Model is the immutable, precomputed view of the pattern and target
// graphs that the search core reads from. Graph ingestion and
// invariant precomputation live outside the core (package model
// implements this interface); the core only ever reads through it.
type Model interface {
	PatternSize() int
	TargetSize() int
	MaxGraphs() int
	PatternLinkCount() int
	Directed() bool
	HasEdgeLabels() bool
	HasLessThans() bool
	LargestTargetDegree() int

	PatternGraphRow(g, v int) bitset.BitDomain
	TargetGraphRow(g, v int) bitset.BitDomain
	ForwardTargetGraphRow(v int) bitset.BitDomain
	ReverseTargetGraphRow(v int) bitset.BitDomain

	PatternAdjacencyBits(u, v int) uint

	PatternDegree(g, v int) int
	TargetDegree(g, v int) int

	PatternEdgeLabel(u, v int) int
	TargetEdgeLabel(u, v int) int

	PatternLessThansInConvenientOrder() [][2]int

	PatternVertexForProof(p int) NamedVertex
	TargetVertexForProof(t int) NamedVertex

	CheckExtraBigraphConstraints(mapping VertexToVertexMapping) bool
}
