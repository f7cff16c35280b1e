package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"subgraphsolver/homomorphism"
)

func TestEmptyPatternIsTriviallySatisfiable(t *testing.T) {
	m := New(Config{PatternSize: 0, TargetSize: 3})
	result := solve(m, homomorphism.Params{Injectivity: homomorphism.Injective})
	assert.Equal(t, homomorphism.Satisfiable, result.Result)
	assert.Empty(t, result.Mapping)
}

func TestK2IntoK2InjectiveCountsTwo(t *testing.T) {
	m := New(Config{
		PatternSize:  2,
		TargetSize:   2,
		PatternEdges: []Edge{{U: 0, V: 1}, {U: 1, V: 0}},
		TargetEdges:  []Edge{{U: 0, V: 1}, {U: 1, V: 0}},
	})
	result := solve(m, homomorphism.Params{Injectivity: homomorphism.Injective, CountSolutions: true})
	assert.EqualValues(t, 2, result.SolutionCount)
}

func TestK3IntoPathIsUnsatisfiable(t *testing.T) {
	m := New(Config{
		PatternSize: 3,
		TargetSize:  3,
		PatternEdges: []Edge{
			{U: 0, V: 1}, {U: 1, V: 0},
			{U: 1, V: 2}, {U: 2, V: 1},
			{U: 0, V: 2}, {U: 2, V: 0},
		},
		TargetEdges: []Edge{
			{U: 0, V: 1}, {U: 1, V: 0},
			{U: 1, V: 2}, {U: 2, V: 1},
		},
	})
	result := solve(m, homomorphism.Params{Injectivity: homomorphism.Injective})
	assert.Equal(t, homomorphism.Unsatisfiable, result.Result)
}

func TestK3IntoK4NonInducedCounts24(t *testing.T) {
	m := New(Config{
		PatternSize:  3,
		TargetSize:   4,
		PatternEdges: completeGraphEdges(3),
		TargetEdges:  completeGraphEdges(4),
	})
	result := solve(m, homomorphism.Params{Injectivity: homomorphism.Injective, Induced: false, CountSolutions: true})
	assert.EqualValues(t, 24, result.SolutionCount)
}

func TestLessThanOrderingCountsThree(t *testing.T) {
	m := New(Config{
		PatternSize: 2,
		TargetSize:  3,
		LessThans:   [][2]int{{0, 1}},
	})
	result := solve(m, homomorphism.Params{Injectivity: homomorphism.Injective, CountSolutions: true})
	assert.EqualValues(t, 3, result.SolutionCount)
}

func TestDirectedLabelMismatchIsUnsatisfiable(t *testing.T) {
	m := New(Config{
		Directed:      true,
		HasEdgeLabels: true,
		PatternSize:   2,
		TargetSize:    2,
		PatternEdges:  []Edge{{U: 0, V: 1, Label: 1}},
		TargetEdges:   []Edge{{U: 0, V: 1, Label: 2}},
	})
	result := solve(m, homomorphism.Params{Injectivity: homomorphism.Injective})
	assert.Equal(t, homomorphism.Unsatisfiable, result.Result)
}

func completeGraphEdges(n int) []Edge {
	var edges []Edge
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v {
				edges = append(edges, Edge{U: u, V: v})
			}
		}
	}
	return edges
}

func solve(m *Model, params homomorphism.Params) homomorphism.HomomorphismResult {
	searcher := homomorphism.NewSearcher(m, params, nil)
	return searcher.Run(nil)
}
