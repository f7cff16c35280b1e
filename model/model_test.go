package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subgraphsolver/homomorphism"
)

func TestParseLADTriangle(t *testing.T) {
	input := "3\n2 1 2\n2 0 2\n2 0 1\n"
	size, edges, err := ParseLAD(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, size)
	assert.Len(t, edges, 6)
}

func TestParseLADRejectsMismatchedDegree(t *testing.T) {
	_, _, err := ParseLAD(strings.NewReader("2\n1 0 1\n0\n"))
	assert.Error(t, err)
}

func TestParsePrologFactsTriangle(t *testing.T) {
	input := "edge(0,1).\nedge(1,2).\nedge(2,0, red).\nlinks(1).\n"
	size, edges, lessThans, linkCount, hasLabels, err := ParsePrologFacts(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, size)
	assert.Len(t, edges, 3)
	assert.Empty(t, lessThans)
	assert.Equal(t, 1, linkCount)
	assert.True(t, hasLabels)
}

func k2k2Model() *Model {
	return New(Config{
		PatternSize:  2,
		TargetSize:   2,
		PatternEdges: []Edge{{U: 0, V: 1}, {U: 1, V: 0}},
		TargetEdges:  []Edge{{U: 0, V: 1}, {U: 1, V: 0}},
	})
}

func TestModelAdjacencyAndDegree(t *testing.T) {
	m := k2k2Model()
	assert.Equal(t, 2, m.PatternSize())
	assert.Equal(t, 2, m.TargetSize())
	assert.True(t, m.PatternGraphRow(0, 0).Test(1))
	assert.True(t, m.TargetGraphRow(0, 1).Test(0))
	assert.Equal(t, 1, m.PatternDegree(0, 0))
	assert.Equal(t, 1, m.LargestTargetDegree())
}

func TestModelProofNaming(t *testing.T) {
	m := New(Config{
		PatternSize:  1,
		TargetSize:   1,
		PatternNames: []string{"a"},
	})
	nv := m.PatternVertexForProof(0)
	assert.Equal(t, homomorphism.NamedVertex{Index: 0, Name: "a"}, nv)

	tv := m.TargetVertexForProof(0)
	assert.Equal(t, "t0", tv.Name)
}

func TestModelNoBigraphCheckerWhenNoLinks(t *testing.T) {
	m := k2k2Model()
	assert.True(t, m.CheckExtraBigraphConstraints(homomorphism.VertexToVertexMapping{0: 0, 1: 1}))
}
