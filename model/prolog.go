package model

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	prolog_tool "subgraphsolver/prolog-tool"
)

// labelAlphabet maps edge-label atoms to small dense integers so they
// can live in the same int-keyed maps as unlabelled (label 0) edges.
type labelAlphabet struct {
	ids map[string]int
}

func newLabelAlphabet() *labelAlphabet {
	return &labelAlphabet{ids: map[string]int{"": 0}}
}

func (a *labelAlphabet) id(name string) int {
	if id, ok := a.ids[name]; ok {
		return id
	}
	id := len(a.ids)
	a.ids[name] = id
	return id
}

// ParsePrologFacts reads a sequence of `edge(U, V).`, `edge(U, V,
// Label).`, `less_than(A, B).` and `links(N).` facts, one per line,
// using the participle grammar in prolog-tool. Vertex count is
// inferred as one more than the largest vertex index mentioned. Edge
// labels are read from atoms; a three-argument edge whose label is not
// an atom (a number, say) gets label 0 while still marking the graph as
// labelled.
func ParsePrologFacts(r io.Reader) (size int, edges []Edge, lessThans [][2]int, linkCount int, hasLabels bool, err error) {
	scanner := bufio.NewScanner(r)
	labels := newLabelAlphabet()
	maxVertex := -1

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		line = strings.TrimSuffix(line, ".")

		term, perr := prolog_tool.ParseTerm(line)
		if perr != nil {
			return 0, nil, nil, 0, false, errors.Wrapf(perr, "prolog facts: line %d", lineNo)
		}
		compound, ok := term.(prolog_tool.Compound)
		if !ok {
			return 0, nil, nil, 0, false, errors.Errorf("prolog facts: line %d is not a compound fact", lineNo)
		}

		switch compound.Value {
		case "edge":
			u, v, ok1 := intArg(compound.Args, 0), intArg(compound.Args, 1), len(compound.Args) >= 2
			if !ok1 {
				return 0, nil, nil, 0, false, errors.Errorf("prolog facts: line %d: edge/N needs at least two vertex arguments", lineNo)
			}
			label := 0
			if len(compound.Args) >= 3 {
				hasLabels = true
				if atom, ok := compound.Args[2].(prolog_tool.Atom); ok {
					label = labels.id(atom.Value)
				}
			}
			edges = append(edges, Edge{U: u, V: v, Label: label})
			maxVertex = maxInt(maxVertex, maxInt(u, v))
		case "less_than":
			a, b := intArg(compound.Args, 0), intArg(compound.Args, 1)
			lessThans = append(lessThans, [2]int{a, b})
			maxVertex = maxInt(maxVertex, maxInt(a, b))
		case "links":
			linkCount = intArg(compound.Args, 0)
		default:
			return 0, nil, nil, 0, false, errors.Errorf("prolog facts: line %d: unrecognised fact %q", lineNo, compound.Value)
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, nil, 0, false, errors.Wrap(err, "prolog facts: scanning input")
	}

	return maxVertex + 1, edges, lessThans, linkCount, hasLabels, nil
}

func intArg(args []prolog_tool.Term, i int) int {
	if i >= len(args) {
		return 0
	}
	if n, ok := args[i].(prolog_tool.Number); ok {
		return n.Value
	}
	return 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
