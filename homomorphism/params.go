package homomorphism

import "math/rand"

// Injectivity governs injectivity pruning and the global
// all-different pass.
type Injectivity int

const (
	Injective Injectivity = iota
	LocallyInjective
	NonInjective
)

// ValueOrdering selects how candidate values are ordered at a branch
// point.
type ValueOrdering int

const (
	Degree ValueOrdering = iota
	AntiDegree
	Biased
	Random
)

// PropagateUsingLackey controls when and how the Lackey participates
// in propagation.
type PropagateUsingLackey int

const (
	Never PropagateUsingLackey = iota
	Always
	RootAndBackjump
	Partials
)

// EnumerateCallback is invoked once per completed mapping when
// CountSolutions is set.
type EnumerateCallback func(mapping VertexToVertexMapping)

// Params bundles every recognized configuration option.
type Params struct {
	Injectivity           Injectivity
	Induced               bool
	Bigraph               bool
	CountSolutions        bool
	ValueOrderingHeuristic ValueOrdering
	PropagateUsingLackey  PropagateUsingLackey
	SendPartialsToLackey  bool
	EnumerateCallback     EnumerateCallback
	Timeout               Timeout
	ProofSink             Proof
	LackeyImpl            Lackey

	// Rand is the Searcher's explicit PRNG field (spec.md §9: "Model
	// it as an explicit field of the Searcher; do not rely on
	// process-global state"). Seed via SetSeed or by assigning
	// directly.
	Rand *rand.Rand
}

// SetSeed reseeds Params.Rand, creating it first if necessary.
func (p *Params) SetSeed(seed int64) {
	if p.Rand == nil {
		p.Rand = rand.New(rand.NewSource(seed))
		return
	}
	p.Rand.Seed(seed)
}

// MightHaveWatches reports whether nogood posting is worth doing at
// all: only restart policies that can actually fire, or bigraph
// solution-dedup, ever consult the WatchTable.
func MightHaveWatches(p Params, schedule RestartsSchedule) bool {
	return p.Bigraph || (schedule != nil && schedule.MayRestart())
}
