package app

import (
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subgraphsolver/homomorphism"
	"subgraphsolver/model"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestLoadModelFromReadersLAD(t *testing.T) {
	pattern := strings.NewReader("2\n1 1\n1 0\n")
	target := strings.NewReader("2\n1 1\n1 0\n")
	m, err := LoadModelFromReaders(pattern, target, Options{Format: "lad"})
	require.NoError(t, err)
	assert.Equal(t, 2, m.PatternSize())
	assert.Equal(t, 2, m.TargetSize())
}

func TestLoadModelFromReadersProlog(t *testing.T) {
	pattern := strings.NewReader("edge(0,1).\nedge(1,0).\n")
	target := strings.NewReader("edge(0,1).\nedge(1,0).\n")
	m, err := LoadModelFromReaders(pattern, target, Options{Format: "prolog"})
	require.NoError(t, err)
	assert.Equal(t, 2, m.PatternSize())
}

func TestLoadModelFromReadersDefaultsToTwoFilterGraphs(t *testing.T) {
	pattern := strings.NewReader("2\n1 1\n1 0\n")
	target := strings.NewReader("2\n1 1\n1 0\n")
	m, err := LoadModelFromReaders(pattern, target, Options{Format: "lad"})
	require.NoError(t, err)
	assert.Equal(t, 2, m.MaxGraphs())
}

func TestLoadModelFromReadersHonorsMaxGraphsOption(t *testing.T) {
	pattern := strings.NewReader("2\n1 1\n1 0\n")
	target := strings.NewReader("2\n1 1\n1 0\n")
	m, err := LoadModelFromReaders(pattern, target, Options{Format: "lad", MaxGraphs: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, m.MaxGraphs())
}

func TestBuildRejectsUnknownInjectivity(t *testing.T) {
	m, _ := LoadModelFromReaders(strings.NewReader("0\n"), strings.NewReader("0\n"), Options{})
	_, _, err := Build(Options{Injectivity: "bogus"}, m, testLogger())
	assert.Error(t, err)
}

func TestBuildDefaultsAndSolveTriangleIntoTriangle(t *testing.T) {
	pattern := strings.NewReader("3\n2 1 2\n2 0 2\n2 0 1\n")
	target := strings.NewReader("3\n2 1 2\n2 0 2\n2 0 1\n")
	m, err := LoadModelFromReaders(pattern, target, Options{Format: "lad"})
	require.NoError(t, err)

	params, schedule, err := Build(Options{}, m, testLogger())
	require.NoError(t, err)

	result := Solve(m, params, schedule, testLogger())
	assert.Equal(t, homomorphism.Satisfiable, result.Result)

	// A satisfying mapping into a triangle must cover every pattern
	// vertex exactly once; compare the domain rather than any specific
	// permutation, since the search can return any of the six.
	var mapped []int
	for p := range result.Mapping {
		mapped = append(mapped, p)
	}
	sort.Ints(mapped)
	if diff := cmp.Diff([]int{0, 1, 2}, mapped); diff != "" {
		t.Errorf("mapped pattern vertices mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveTriangleIntoPathIsUnsatisfiable(t *testing.T) {
	m := model.New(model.Config{
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

	params, schedule, err := Build(Options{Restart: "luby", LubyBase: 1}, m, testLogger())
	require.NoError(t, err)

	searcher := homomorphism.NewSearcher(m, params, nil)
	result := searcher.Run(schedule)
	assert.Equal(t, homomorphism.Unsatisfiable, result.Result)

	errs := Explain(searcher.Watches)
	assert.NotNil(t, errs)
}
