package prolog_tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsultAndCheck(t *testing.T) {
	p := NewProlog()
	ok, err := p.ConsultAndCheck("x(X) :- X = f(a).", "x(f(X)).")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConsultAndQuery1ReturnsBindings(t *testing.T) {
	p := NewProlog()
	ok, bindings, err := p.ConsultAndQuery1("likes(alice, bob).", "likes(alice, Who).")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "bob", bindings["Who"])
}

func TestConsultAndQuery1NoSolution(t *testing.T) {
	p := NewProlog()
	ok, bindings, err := p.ConsultAndQuery1("likes(alice, bob).", "likes(carol, Who).")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, bindings)
}
