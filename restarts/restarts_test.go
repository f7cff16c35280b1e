package restarts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNeverNeverRestarts(t *testing.T) {
	n := Never{}
	for i := 0; i < 1000; i++ {
		n.DidABacktrack()
		assert.False(t, n.ShouldRestart())
	}
	assert.False(t, n.MayRestart())
}

func TestGeometricGrowsThreshold(t *testing.T) {
	g := NewGeometric(2, 2.0)
	assert.True(t, g.MayRestart())

	g.DidABacktrack()
	assert.False(t, g.ShouldRestart())
	g.DidABacktrack()
	assert.True(t, g.ShouldRestart())

	for i := 0; i < 3; i++ {
		g.DidABacktrack()
	}
	assert.False(t, g.ShouldRestart())
	g.DidABacktrack()
	assert.True(t, g.ShouldRestart())
}

func TestLubySequence(t *testing.T) {
	expected := []uint64{1, 1, 2, 1, 1, 2, 4}
	for i, want := range expected {
		assert.Equal(t, want, lubyUnit(uint64(i+1)))
	}

	l := NewLuby(1)
	var observed []uint64
	for i := 0; i < 20; i++ {
		l.DidABacktrack()
		if l.ShouldRestart() {
			observed = append(observed, l.threshold)
		}
	}
	assert.NotEmpty(t, observed)
}

func TestDeadlineAbortsAfterDuration(t *testing.T) {
	d := NewDeadline(10 * time.Millisecond)
	assert.False(t, d.ShouldAbort())
	time.Sleep(15 * time.Millisecond)
	assert.True(t, d.ShouldAbort())
}

func TestZeroDeadlineNeverAborts(t *testing.T) {
	var d Deadline
	assert.False(t, d.ShouldAbort())
}
