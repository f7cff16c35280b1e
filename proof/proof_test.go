package proof

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"subgraphsolver/homomorphism"
)

func TestJSONLinesEmitsOneObjectPerEvent(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONLines(&buf)

	sink.StartLevel(1)
	sink.Guessing(1, homomorphism.NamedVertex{Index: 0, Name: "p0"}, homomorphism.NamedVertex{Index: 1, Name: "t1"})
	sink.BackUpToTop()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"event":"start_level"`)
	assert.Contains(t, lines[1], `"event":"guessing"`)
	assert.Contains(t, lines[1], `"t1"`)
	assert.Contains(t, lines[2], `"event":"back_up_to_top"`)
}

func TestTemplateLogRendersReadableLines(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTemplateLog(&buf)

	sink.Guessing(2, homomorphism.NamedVertex{Index: 0, Name: "p0"}, homomorphism.NamedVertex{Index: 1, Name: "t1"})
	sink.IncorrectGuess([][2]int{{0, 1}}, true)
	sink.BackUpToTop()

	out := buf.String()
	assert.Contains(t, out, "guess p0 -> t1")
	assert.Contains(t, out, "unsat=true")
	assert.Contains(t, out, "back up to top")
}

func TestTemplateLogPostSolutionListsPairs(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTemplateLog(&buf)

	sink.PostSolution([]([2]homomorphism.NamedVertex){
		{homomorphism.NamedVertex{Name: "p0"}, homomorphism.NamedVertex{Name: "t0"}},
		{homomorphism.NamedVertex{Name: "p1"}, homomorphism.NamedVertex{Name: "t2"}},
	})

	out := buf.String()
	assert.Contains(t, out, "p0->t0")
	assert.Contains(t, out, "p1->t2")
}
