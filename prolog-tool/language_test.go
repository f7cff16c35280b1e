package prolog_tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTermVariants(t *testing.T) {
	term, err := ParseTerm("_100")
	require.NoError(t, err)
	assert.Equal(t, Var{Value: "_100"}, term)

	term, err = ParseTerm("gello")
	require.NoError(t, err)
	assert.Equal(t, Atom{Value: "gello"}, term)

	term, err = ParseTerm("42")
	require.NoError(t, err)
	assert.Equal(t, Number{Value: 42}, term)

	term, err = ParseTerm("edge(0,1,red)")
	require.NoError(t, err)
	compound, ok := term.(Compound)
	require.True(t, ok)
	assert.Equal(t, "edge", compound.Value)
	assert.Equal(t, []Term{Number{Value: 0}, Number{Value: 1}, Atom{Value: "red"}}, compound.Args)
}

func TestParseTermToleratesWhitespace(t *testing.T) {
	term, err := ParseTerm("edge( 0 , 1 , red )")
	require.NoError(t, err)
	compound, ok := term.(Compound)
	require.True(t, ok)
	assert.Equal(t, "edge", compound.Value)
	assert.Equal(t, []Term{Number{Value: 0}, Number{Value: 1}, Atom{Value: "red"}}, compound.Args)
}

func TestParseTermList(t *testing.T) {
	term, err := ParseTerm("[a,b,c(d,f(g)),d]")
	require.NoError(t, err)
	list, ok := term.(List)
	require.True(t, ok)
	assert.Len(t, list.Values, 4)

	term, err = ParseTerm("[]")
	require.NoError(t, err)
	assert.Equal(t, List{}, term)
}
