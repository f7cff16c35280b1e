package homomorphism

import (
	"strconv"
	"strings"

	"subgraphsolver/bitset"
)

// Searcher runs the recursive restarting depth-first search described
// in spec.md §4.3. It owns the Assignments trail (passed by the
// caller and mutated in place) and the WatchTable (accumulated across
// restarts), and reads the Model/Params it was constructed with for
// its entire lifetime — both are immutable, so there is no cycle risk
// in holding a reference back (spec.md §9).
type Searcher struct {
	Model   Model
	Params  Params
	Watches *WatchTable

	brancher   Brancher
	propagator Propagator
}

// NewSearcher wires up a Searcher ready to Run.
func NewSearcher(model Model, params Params, allDifferent AllDifferentFilter) *Searcher {
	if allDifferent == nil {
		allDifferent = DefaultAllDifferent{}
	}
	watches := NewWatchTable(model.PatternSize(), model.TargetSize())
	return &Searcher{
		Model:   model,
		Params:  params,
		Watches: watches,
		brancher: Brancher{Model: model},
		propagator: Propagator{
			Model:        model,
			Params:       params,
			Watches:      watches,
			AllDifferent: allDifferent,
		},
	}
}

// searchState threads the counters that the original implementation
// passes by mutable reference through the recursion.
type searchState struct {
	nodes        uint64
	propagations uint64
	solutionCount int64
}

// Run drives RestartingSearch from an empty trail and a full domain
// vector, looping across restarts until a non-Restart result comes
// back. This is the entry point external callers use; RestartingSearch
// is exported but takes the unexported *searchState, whose
// state-threading is an implementation detail of the recursion.
func (s *Searcher) Run(schedule RestartsSchedule) HomomorphismResult {
	if schedule == nil {
		schedule = noRestarts{}
	}
	state := &searchState{}
	assignments := &Assignments{}
	var result SearchResult

	for {
		assignments = &Assignments{}
		domains := s.initialDomains()
		result = s.RestartingSearch(assignments, domains, state, 0, schedule)
		if result != Restart {
			break
		}
	}

	return HomomorphismResult{
		Mapping:       expandToFullResult(assignments),
		SolutionCount: state.solutionCount,
		ExtraStats:    []string{whereTrace(assignments)},
		Result:        result,
		Nodes:         state.nodes,
		Propagations:  state.propagations,
	}
}

// whereTrace renders the winning trail's discrepancy/choice_count pairs
// as a single "where = d/c d/c ..." line.
func whereTrace(assignments *Assignments) string {
	var b strings.Builder
	b.WriteString("where =")
	for _, e := range assignments.Values {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(e.Discrepancy))
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(e.ChoiceCount))
	}
	return b.String()
}

func (s *Searcher) initialDomains() Domains {
	domains := make(Domains, s.Model.PatternSize())
	for v := 0; v < s.Model.PatternSize(); v++ {
		domains[v] = Domain{V: v, Values: bitset.Full(s.Model.TargetSize()), Count: s.Model.TargetSize()}
	}
	return domains
}

// noRestarts is the zero-value fallback schedule when Run is called
// with schedule == nil: plain exhaustive DFS.
type noRestarts struct{}

func (noRestarts) DidABacktrack()    {}
func (noRestarts) ShouldRestart() bool { return false }
func (noRestarts) Reset()            {}
func (noRestarts) MayRestart() bool  { return false }

// RestartingSearch is the recursive procedure from spec.md §4.3.
func (s *Searcher) RestartingSearch(
	assignments *Assignments,
	domains Domains,
	state *searchState,
	depth int,
	schedule RestartsSchedule,
) SearchResult {
	if s.Params.Timeout != nil && s.Params.Timeout.ShouldAbort() {
		return Aborted
	}

	state.nodes++

	branchIdx := s.brancher.FindBranchDomain(domains)
	if branchIdx == -1 {
		return s.leaf(assignments, state)
	}

	branchDomain := domains[branchIdx]
	branchV := make([]int, 0, branchDomain.Count)
	branchDomain.Values.ForEach(func(v int) bool {
		branchV = append(branchV, v)
		return true
	})

	// s.Params.Rand is a *rand.Rand; assigning a nil *rand.Rand straight
	// into the randSource interface parameter would produce a non-nil
	// interface holding a nil pointer, defeating OrderValues' rng==nil
	// check, so the conversion is gated explicitly here.
	var rng randSource
	if s.Params.Rand != nil {
		rng = s.Params.Rand
	}
	s.brancher.OrderValues(branchV, len(branchV), s.Params.ValueOrderingHeuristic, rng)

	discrepancyCount := 0
	actuallyHitAFailure := false
	useLackeyForPropagation := false

	for fi, v := range branchV {
		if s.Params.ProofSink != nil {
			s.Params.ProofSink.Guessing(depth,
				s.Model.PatternVertexForProof(branchDomain.V),
				s.Model.TargetVertexForProof(v))
		}

		mark := assignments.Push(TrailEntry{
			Assignment:  Assignment{PatternVertex: branchDomain.V, TargetVertex: v},
			IsDecision:  true,
			Discrepancy: discrepancyCount,
			ChoiceCount: len(branchV),
		})

		newDomains := CopyNonFixedAndAssign(domains, branchDomain.V, v)

		state.propagations++
		useLackeyNow := useLackeyForPropagation || s.Params.PropagateUsingLackey == Always
		if !s.propagator.Propagate(newDomains, assignments, useLackeyNow) {
			if s.Params.ProofSink != nil {
				s.Params.ProofSink.PropagationFailure(assignments.AsProofDecisions(),
					s.Model.PatternVertexForProof(branchDomain.V),
					s.Model.TargetVertexForProof(v))
			}
			assignments.Truncate(mark)
			actuallyHitAFailure = true
			continue
		}

		if s.Params.ProofSink != nil {
			s.Params.ProofSink.StartLevel(depth + 2)
		}

		result := s.RestartingSearch(assignments, newDomains, state, depth+1, schedule)

		switch result {
		case Satisfiable, Aborted:
			return result

		case Restart:
			assignments.Truncate(mark)
			for _, l := range branchV[:fi] {
				assignments.Push(TrailEntry{
					Assignment:  Assignment{PatternVertex: branchDomain.V, TargetVertex: l},
					IsDecision:  true,
					Discrepancy: -2,
					ChoiceCount: -2,
				})
				s.postNogood(assignments, schedule)
				assignments.Values = assignments.Values[:len(assignments.Values)-1]
			}
			return Restart

		case SatisfiableButKeepGoing:
			if s.Params.ProofSink != nil {
				s.Params.ProofSink.BackUpToLevel(depth + 1)
				s.Params.ProofSink.IncorrectGuess(assignments.AsProofDecisions(), false)
				s.Params.ProofSink.ForgetLevel(depth + 2)
			}
			assignments.Truncate(mark)

		case UnsatisfiableAndBackjumpUsingLackey:
			useLackeyForPropagation = true
			fallthroughUnsatisfiable(s, assignments, depth, &actuallyHitAFailure, mark)

		case Unsatisfiable:
			if s.Params.ProofSink != nil {
				s.Params.ProofSink.BackUpToLevel(depth + 1)
				s.Params.ProofSink.IncorrectGuess(assignments.AsProofDecisions(), true)
				s.Params.ProofSink.ForgetLevel(depth + 2)
			}
			assignments.Truncate(mark)
			actuallyHitAFailure = true
		}

		discrepancyCount++
	}

	if s.Params.ProofSink != nil {
		s.Params.ProofSink.OutOfGuesses(assignments.AsProofDecisions())
	}

	if actuallyHitAFailure {
		schedule.DidABacktrack()
	}

	if schedule.ShouldRestart() {
		if s.Params.ProofSink != nil {
			s.Params.ProofSink.BackUpToTop()
		}
		s.postNogood(assignments, schedule)
		return Restart
	}

	if useLackeyForPropagation {
		return UnsatisfiableAndBackjumpUsingLackey
	}
	return Unsatisfiable
}

// fallthroughUnsatisfiable applies the same proof/backtrack bookkeeping
// as the plain Unsatisfiable case; named to keep the switch above
// readable (Go has no case-fallthrough-with-extra-statements).
func fallthroughUnsatisfiable(s *Searcher, assignments *Assignments, depth int, failure *bool, mark int) {
	if s.Params.ProofSink != nil {
		s.Params.ProofSink.BackUpToLevel(depth + 1)
		s.Params.ProofSink.IncorrectGuess(assignments.AsProofDecisions(), true)
		s.Params.ProofSink.ForgetLevel(depth + 2)
	}
	assignments.Truncate(mark)
	*failure = true
}

func (s *Searcher) leaf(assignments *Assignments, state *searchState) SearchResult {
	if s.Params.Bigraph {
		mapping := expandToFullResult(assignments)
		if !s.Model.CheckExtraBigraphConstraints(mapping) {
			s.postSolutionNogood(assignments)
			return Unsatisfiable
		}
	}

	if s.Params.LackeyImpl != nil {
		mapping := expandToFullResult(assignments)
		if !s.Params.LackeyImpl.CheckSolution(mapping, false, s.Params.CountSolutions, nil) {
			if s.Params.PropagateUsingLackey == RootAndBackjump {
				return UnsatisfiableAndBackjumpUsingLackey
			}
			return Unsatisfiable
		}
	}

	if s.Params.ProofSink != nil {
		s.Params.ProofSink.PostSolution(s.solutionInProofForm(assignments))
	}

	if s.Params.CountSolutions {
		state.solutionCount++

		if s.Params.Bigraph {
			s.postSolutionNogood(assignments)
		}

		if s.Params.EnumerateCallback != nil {
			s.Params.EnumerateCallback(expandToFullResult(assignments))
		}

		return SatisfiableButKeepGoing
	}

	return Satisfiable
}

func expandToFullResult(assignments *Assignments) VertexToVertexMapping {
	mapping := make(VertexToVertexMapping, len(assignments.Values))
	for _, e := range assignments.Values {
		mapping[e.Assignment.PatternVertex] = e.Assignment.TargetVertex
	}
	return mapping
}

func (s *Searcher) solutionInProofForm(assignments *Assignments) []([2]NamedVertex) {
	seen := make(map[int]bool, len(assignments.Values))
	out := make([]([2]NamedVertex), 0, len(assignments.Values))
	for _, e := range assignments.Values {
		if seen[e.Assignment.PatternVertex] {
			continue
		}
		seen[e.Assignment.PatternVertex] = true
		out = append(out, [2]NamedVertex{
			s.Model.PatternVertexForProof(e.Assignment.PatternVertex),
			s.Model.TargetVertexForProof(e.Assignment.TargetVertex),
		})
	}
	return out
}

// postNogood collects every decision literal on the current trail
// into a fresh nogood.
func (s *Searcher) postNogood(assignments *Assignments, schedule RestartsSchedule) {
	if !MightHaveWatches(s.Params, schedule) {
		return
	}
	s.Watches.PostNogood(assignments.DecisionLiterals())
	if s.Params.ProofSink != nil {
		s.Params.ProofSink.PostRestartNogood(assignments.AsProofDecisions())
	}
}

// postSolutionNogood is the bigraph-enumeration dedup hook: it filters
// out anchor pattern vertices (those whose index falls in the
// trailing pattern_link_count slice) so isomorphic variants of an
// accepted solution are suppressed without re-checking the bigraph
// constraint. Per spec.md §9 this is deliberately not generalised: it
// is only ever called from the bigraph leaf paths above.
func (s *Searcher) postSolutionNogood(assignments *Assignments) {
	linkCount := s.Model.PatternLinkCount()
	patternSize := s.Model.PatternSize()
	anchorThreshold := patternSize - linkCount

	literals := make([]Assignment, 0, len(assignments.Values))
	for _, e := range assignments.Values {
		if e.IsDecision && e.Assignment.PatternVertex < anchorThreshold {
			literals = append(literals, e.Assignment)
		}
	}
	s.Watches.PostNogood(literals)
}
