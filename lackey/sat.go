package lackey

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"

	"subgraphsolver/homomorphism"
)

// SAT encodes "does at least one completion of this mapping exist"
// (an injective one when built with injective set) as a from-scratch
// SAT instance and answers
// CheckSolution from satisfiability, independently of whatever
// domains the propagator currently has. It is a slower cross-check,
// not a filtering lackey: CheckSolution's mapping parameter carries
// no candidate-domain information, so unlike Prolog it never calls
// deletion — there is nothing narrower than "the whole target size"
// to offer per pattern vertex.
type SAT struct {
	model     homomorphism.Model
	injective bool
}

func NewSAT(model homomorphism.Model, injective bool) *SAT {
	return &SAT{model: model, injective: injective}
}

func (s *SAT) CheckSolution(
	mapping homomorphism.VertexToVertexMapping,
	isPartial, countMode bool,
	deletion homomorphism.DeletionFunc,
) bool {
	patternSize := s.model.PatternSize()
	targetSize := s.model.TargetSize()

	solver := gini.NewV(patternSize * targetSize)
	varOf := func(p, t int) z.Lit { return z.Var(p*targetSize + t + 1).Pos() }

	for p := 0; p < patternSize; p++ {
		if fixed, ok := mapping[p]; ok {
			solver.Add(varOf(p, fixed))
			solver.Add(0)
			continue
		}
		for t := 0; t < targetSize; t++ {
			solver.Add(varOf(p, t))
		}
		solver.Add(0)
	}

	for u := 0; u < patternSize; u++ {
		for v := 0; v < patternSize; v++ {
			if u == v {
				continue
			}
			bits := s.model.PatternAdjacencyBits(u, v)
			if bits&1 == 0 {
				continue
			}
			for tu := 0; tu < targetSize; tu++ {
				for tv := 0; tv < targetSize; tv++ {
					if s.edgeHolds(tu, tv) {
						continue
					}
					solver.Add(varOf(u, tu).Not())
					solver.Add(varOf(v, tv).Not())
					solver.Add(0)
				}
			}
		}
	}

	if s.injective {
		for t := 0; t < targetSize; t++ {
			for u := 0; u < patternSize; u++ {
				for v := u + 1; v < patternSize; v++ {
					solver.Add(varOf(u, t).Not())
					solver.Add(varOf(v, t).Not())
					solver.Add(0)
				}
			}
		}
	}

	return solver.Solve() == 1
}

func (s *SAT) edgeHolds(tu, tv int) bool {
	if s.model.Directed() {
		return s.model.ForwardTargetGraphRow(tu).Test(tv)
	}
	return s.model.TargetGraphRow(0, tu).Test(tv)
}
