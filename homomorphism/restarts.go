package homomorphism

// RestartsSchedule is the external restart policy object: it sees
// every backtrack and decides whether the Searcher should unwind to
// the root. Implementations live in package restarts; the core only
// depends on this interface.
type RestartsSchedule interface {
	DidABacktrack()
	ShouldRestart() bool
	Reset()

	// MayRestart is a static property of the policy: whether
	// ShouldRestart could ever return true. The Searcher uses it to
	// decide whether nogood posting (and therefore the WatchTable) is
	// worth paying for at all.
	MayRestart() bool
}

// Timeout is the cooperative, one-shot abort source polled at every
// node visit.
type Timeout interface {
	ShouldAbort() bool
}

// Lackey is the external solution/deletion oracle consulted on
// partial or complete mappings.
type Lackey interface {
	CheckSolution(mapping VertexToVertexMapping, isPartial, countMode bool, deletion DeletionFunc) bool
}

// DeletionFunc receives (pattern vertex, target vertex) suggestions
// from a Lackey and reports whether the deletion was applied.
type DeletionFunc func(p, t int) bool

// Proof is the optional proof-log sink. Every method returns nothing
// and is assumed infallible from the core's point of view.
type Proof interface {
	Guessing(depth int, p, t NamedVertex)
	PropagationFailure(trail [][2]int, p, t NamedVertex)
	StartLevel(depth int)
	BackUpToLevel(depth int)
	IncorrectGuess(trail [][2]int, isUnsat bool)
	ForgetLevel(depth int)
	PostSolution(solution []([2]NamedVertex))
	OutOfGuesses(trail [][2]int)
	PostRestartNogood(trail [][2]int)
	UnitPropagating(p, t NamedVertex)
	BackUpToTop()
}
