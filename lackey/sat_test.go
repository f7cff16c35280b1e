package lackey

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"subgraphsolver/homomorphism"
	"subgraphsolver/model"
)

func triangleIntoPathModel() homomorphism.Model {
	return model.New(model.Config{
		PatternSize: 3,
		TargetSize:  3,
		PatternEdges: []model.Edge{
			{U: 0, V: 1}, {U: 1, V: 0},
			{U: 1, V: 2}, {U: 2, V: 1},
			{U: 2, V: 0}, {U: 0, V: 2},
		},
		TargetEdges: []model.Edge{
			{U: 0, V: 1}, {U: 1, V: 0},
			{U: 1, V: 2}, {U: 2, V: 1},
		},
	})
}

func k3IntoK3Model() homomorphism.Model {
	return model.New(model.Config{
		PatternSize: 3,
		TargetSize:  3,
		PatternEdges: []model.Edge{
			{U: 0, V: 1}, {U: 1, V: 0},
			{U: 1, V: 2}, {U: 2, V: 1},
			{U: 2, V: 0}, {U: 0, V: 2},
		},
		TargetEdges: []model.Edge{
			{U: 0, V: 1}, {U: 1, V: 0},
			{U: 1, V: 2}, {U: 2, V: 1},
			{U: 2, V: 0}, {U: 0, V: 2},
		},
	})
}

func TestSATRejectsTriangleIntoPath(t *testing.T) {
	s := NewSAT(triangleIntoPathModel(), true)
	ok := s.CheckSolution(homomorphism.VertexToVertexMapping{}, true, false, nil)
	assert.False(t, ok)
}

func TestSATAcceptsTriangleIntoTriangle(t *testing.T) {
	s := NewSAT(k3IntoK3Model(), true)
	ok := s.CheckSolution(homomorphism.VertexToVertexMapping{}, true, false, nil)
	assert.True(t, ok)
}

func TestSATRejectsFixedPairThatCollidesUnderInjectivity(t *testing.T) {
	s := NewSAT(k3IntoK3Model(), true)
	mapping := homomorphism.VertexToVertexMapping{0: 0, 1: 0}
	ok := s.CheckSolution(mapping, true, false, nil)
	assert.False(t, ok)
}
