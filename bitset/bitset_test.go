package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullAndCount(t *testing.T) {
	b := Full(70)
	assert.Equal(t, 70, b.Count())
	for i := 0; i < 70; i++ {
		assert.True(t, b.Test(i))
	}
}

func TestSetResetFindFirst(t *testing.T) {
	b := New(10)
	b.Set(3)
	b.Set(7)
	first, ok := b.FindFirst()
	require.True(t, ok)
	assert.Equal(t, 3, first)

	b.Reset(3)
	first, ok = b.FindFirst()
	require.True(t, ok)
	assert.Equal(t, 7, first)

	b.Reset(7)
	_, ok = b.FindFirst()
	assert.False(t, ok)
}

func TestIntersectWithComplement(t *testing.T) {
	a := New(8)
	for _, v := range []int{0, 1, 2, 3} {
		a.Set(v)
	}
	b := New(8)
	for _, v := range []int{1, 3} {
		b.Set(v)
	}
	a.IntersectWithComplement(b)
	assert.Equal(t, []int{0, 2}, a.Slice())
}

func TestForEachStopsEarly(t *testing.T) {
	a := Full(5)
	seen := []int{}
	a.ForEach(func(i int) bool {
		seen = append(seen, i)
		return i < 2
	})
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestMaskTrailingOnFull(t *testing.T) {
	b := Full(65)
	assert.Equal(t, 65, b.Count())
	assert.False(t, b.Test(65))
}
