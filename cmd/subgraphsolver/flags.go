package main

import (
	"github.com/spf13/cobra"

	"subgraphsolver/app"
)

// searchFlags holds the pflag-backed variables for one invocation;
// toOptions turns them into app.Options once cobra has parsed argv.
type searchFlags struct {
	format    string
	directed  bool
	maxGraphs int

	injectivity   string
	induced       bool
	bigraph       bool
	countAll      bool
	valueOrdering string

	restart          string
	geometricInitial uint64
	geometricFactor  float64
	lubyBase         uint64

	lackeyKind    string
	prologProgram string

	seed           int64
	timeoutSeconds int

	proofFormat string
}

func bindSearchFlags(cmd *cobra.Command, f *searchFlags) {
	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "lad", "graph file format: lad or prolog")
	flags.BoolVar(&f.directed, "directed", false, "treat graphs as directed")
	flags.IntVar(&f.maxGraphs, "max-graphs", 2, "number of parallel distance filter graphs to precompute")

	flags.StringVar(&f.injectivity, "injectivity", "injective", "injective, locally-injective, or non-injective")
	flags.BoolVar(&f.induced, "induced", false, "require an induced (subgraph-isomorphism-style) mapping")
	flags.BoolVar(&f.bigraph, "bigraph", false, "enable the bigraph place/link consistency check")
	flags.BoolVar(&f.countAll, "count", false, "count every solution instead of stopping at the first")
	flags.StringVar(&f.valueOrdering, "value-ordering", "degree", "degree, anti-degree, biased, or random")

	flags.StringVar(&f.restart, "restart", "never", "never, geometric, or luby")
	flags.Uint64Var(&f.geometricInitial, "geometric-initial", 100, "initial backtrack threshold for --restart=geometric")
	flags.Float64Var(&f.geometricFactor, "geometric-factor", 1.5, "growth factor for --restart=geometric")
	flags.Uint64Var(&f.lubyBase, "luby-base", 100, "backtracks per Luby unit for --restart=luby")

	flags.StringVar(&f.lackeyKind, "lackey", "noop", "noop, prolog, or sat")
	flags.StringVar(&f.prologProgram, "lackey-prolog-program", "", "veto program for --lackey=prolog")

	flags.Int64Var(&f.seed, "seed", 0, "PRNG seed for biased/random value ordering (0 configures no PRNG, and those orderings then keep values in ascending order)")
	flags.IntVar(&f.timeoutSeconds, "timeout", 0, "abort after this many seconds (0 disables)")

	flags.StringVar(&f.proofFormat, "proof", "", "empty, json, or text: write a proof trace to stdout")
}

func (f *searchFlags) toOptions() app.Options {
	return app.Options{
		Format:    f.format,
		Directed:  f.directed,
		MaxGraphs: f.maxGraphs,

		Injectivity:    f.injectivity,
		Induced:        f.induced,
		Bigraph:        f.bigraph,
		CountSolutions: f.countAll,
		ValueOrdering:  f.valueOrdering,

		Restart:          f.restart,
		GeometricInitial: f.geometricInitial,
		GeometricFactor:  f.geometricFactor,
		LubyBase:         f.lubyBase,

		LackeyKind:    f.lackeyKind,
		PrologProgram: f.prologProgram,

		Seed:           f.seed,
		TimeoutSeconds: f.timeoutSeconds,

		ProofFormat: f.proofFormat,
	}
}
