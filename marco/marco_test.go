package marco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toySatFunc treats {1,2} as forbidden together, otherwise anything goes
// (mirroring a toy two-clause instance, same shape as the teacher's
// own TestMarco fixture).
func toySatFunc(ids []int) bool {
	has1, has2 := false, false
	for _, id := range ids {
		if id == 1 {
			has1 = true
		}
		if id == 2 {
			has2 = true
		}
	}
	return !(has1 && has2)
}

func TestMarcoFindsMinimalUnsatisfiableSubset(t *testing.T) {
	m := NewMarco([]int{1, 2, 3}, toySatFunc)
	m.Run()

	require.NotEmpty(t, m.MUSs)
	found := false
	for _, mus := range m.MUSs {
		if mus.Equal(NewIntSet(1, 2)) {
			found = true
		}
	}
	assert.True(t, found, "expected {1,2} among the discovered MUSs, got %v", m.MUSs)
}

func TestExplainGroupsConflictingIdsIntoClusters(t *testing.T) {
	nogoods := [][]int{{1, 2}, {3, 4}}
	errors := Explain([]int{1, 2, 3, 4}, nogoods)

	require.Len(t, errors, 2)
	for _, e := range errors {
		assert.NotEmpty(t, e.MUSs)
		assert.NotEmpty(t, e.CriticalNodes)
	}
}

func TestContainsAll(t *testing.T) {
	set := NewIntSet(1, 2, 3)
	assert.True(t, containsAll(set, []int{1, 3}))
	assert.False(t, containsAll(set, []int{1, 4}))
}
