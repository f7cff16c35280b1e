package lackey

import (
	"fmt"
	"strings"

	prolog_tool "subgraphsolver/prolog-tool"

	"subgraphsolver/homomorphism"
)

// Prolog answers CheckSolution by consulting a caller-supplied veto
// program together with the mapping translated into `mapped(P, T).`
// facts, then asking for every `forbidden(P, T)` the veto rules can
// derive against it. On a full mapping (deletion == nil) any derived
// forbidden pair rejects the solution outright; on a partial mapping
// each forbidden pair is offered to deletion so propagation can prune
// it from the affected domain before backtracking is forced.
type Prolog struct {
	logic   *prolog_tool.Logic
	program string
}

// NewProlog builds a Prolog lackey. program should define
// forbidden/2 in terms of mapped/2 facts, e.g.
// "forbidden(P, T) :- mapped(P, T2), T2 \\= T, exclusive(T, T2)."
func NewProlog(program string) *Prolog {
	return &Prolog{logic: prolog_tool.NewProlog(), program: program}
}

func (p *Prolog) CheckSolution(
	mapping homomorphism.VertexToVertexMapping,
	isPartial, countMode bool,
	deletion homomorphism.DeletionFunc,
) bool {
	fullProgram := p.program + "\n" + mappedFacts(mapping)
	rows, err := p.logic.ConsultAndQueryAllInts(fullProgram, "forbidden(P, T).", []string{"P", "T"})
	if err != nil {
		// A malformed veto program should not make the search unsound
		// by spuriously rejecting; treat it as "no opinion".
		return true
	}
	if len(rows) == 0 {
		return true
	}
	if deletion == nil {
		return false
	}

	ok := true
	for _, row := range rows {
		if !deletion(int(row[0]), int(row[1])) {
			ok = false
		}
	}
	return ok
}

func mappedFacts(mapping homomorphism.VertexToVertexMapping) string {
	var b strings.Builder
	for p, t := range mapping {
		fmt.Fprintf(&b, "mapped(%d, %d).\n", p, t)
	}
	return b.String()
}
