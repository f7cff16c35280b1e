package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountAndGetConnectedComponents(t *testing.T) {
	g := NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(3, 4)

	count, components := g.CountAndGetConnectedComponents()
	assert.Equal(t, 2, count)
	assert.ElementsMatch(t, []int{0, 1, 2}, components[1])
	assert.ElementsMatch(t, []int{3, 4}, components[2])
}

func TestComponentIndexAgreesWithComponents(t *testing.T) {
	g := NewGraph(4)
	g.AddEdge(0, 1)

	index := g.ComponentIndex()
	assert.Equal(t, index[0], index[1])
	assert.NotEqual(t, index[0], index[2])
	assert.NotEqual(t, index[2], index[3])
}

func TestIsolatedVerticesAreTheirOwnComponent(t *testing.T) {
	g := NewGraph(3)
	count, components := g.CountAndGetConnectedComponents()
	assert.Equal(t, 3, count)
	for _, members := range components {
		assert.Len(t, members, 1)
	}
}
