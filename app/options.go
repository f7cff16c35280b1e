// Package app wires the ingestion, model-building and search-running
// steps that both the CLI and the HTTP server need, so neither has to
// duplicate flag-to-Params translation.
package app

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"subgraphsolver/homomorphism"
	"subgraphsolver/lackey"
	"subgraphsolver/model"
	"subgraphsolver/proof"
	"subgraphsolver/restarts"
)

// Options bundles every CLI/HTTP-facing knob, bound directly to
// homomorphism.Params fields by Build.
type Options struct {
	Format    string // "lad" or "prolog"
	Directed  bool
	MaxGraphs int // number of parallel distance filter graphs; 0 uses the default

	Injectivity    string // "injective", "locally-injective", "non-injective"
	Induced        bool
	Bigraph        bool
	CountSolutions bool
	ValueOrdering  string // "degree", "anti-degree", "biased", "random"

	Restart          string // "never", "geometric", "luby"
	GeometricInitial uint64
	GeometricFactor  float64
	LubyBase         uint64

	LackeyKind    string // "noop", "prolog", "sat"
	PrologProgram string

	Seed           int64
	TimeoutSeconds int

	ProofFormat string // "", "json", "text"
	ProofOutput io.Writer
}

// Build turns Options plus an already-constructed Model into a
// ready-to-run Params and restart schedule.
func Build(opts Options, m *model.Model, log *logrus.Logger) (homomorphism.Params, homomorphism.RestartsSchedule, error) {
	params := homomorphism.Params{
		Induced:        opts.Induced,
		Bigraph:        opts.Bigraph,
		CountSolutions: opts.CountSolutions,
	}

	switch opts.Injectivity {
	case "", "injective":
		params.Injectivity = homomorphism.Injective
	case "locally-injective":
		params.Injectivity = homomorphism.LocallyInjective
	case "non-injective":
		params.Injectivity = homomorphism.NonInjective
	default:
		return params, nil, errors.Errorf("unknown injectivity mode %q", opts.Injectivity)
	}

	switch opts.ValueOrdering {
	case "", "degree":
		params.ValueOrderingHeuristic = homomorphism.Degree
	case "anti-degree":
		params.ValueOrderingHeuristic = homomorphism.AntiDegree
	case "biased":
		params.ValueOrderingHeuristic = homomorphism.Biased
	case "random":
		params.ValueOrderingHeuristic = homomorphism.Random
	default:
		return params, nil, errors.Errorf("unknown value ordering %q", opts.ValueOrdering)
	}

	if opts.Seed != 0 {
		params.SetSeed(opts.Seed)
	}

	if opts.TimeoutSeconds > 0 {
		params.Timeout = restarts.NewDeadline(time.Duration(opts.TimeoutSeconds) * time.Second)
	}

	var schedule homomorphism.RestartsSchedule
	switch opts.Restart {
	case "", "never":
		schedule = restarts.Never{}
	case "geometric":
		initial := opts.GeometricInitial
		if initial == 0 {
			initial = 100
		}
		factor := opts.GeometricFactor
		if factor == 0 {
			factor = 1.5
		}
		schedule = restarts.NewGeometric(initial, factor)
	case "luby":
		base := opts.LubyBase
		if base == 0 {
			base = 100
		}
		schedule = restarts.NewLuby(base)
	default:
		return params, nil, errors.Errorf("unknown restart schedule %q", opts.Restart)
	}

	switch opts.LackeyKind {
	case "", "noop":
		params.LackeyImpl = lackey.Noop{}
	case "prolog":
		if opts.PrologProgram == "" {
			return params, nil, errors.New("prolog lackey requires a veto program")
		}
		params.LackeyImpl = lackey.NewProlog(opts.PrologProgram)
		params.PropagateUsingLackey = homomorphism.Always
	case "sat":
		params.LackeyImpl = lackey.NewSAT(m, params.Injectivity == homomorphism.Injective)
		params.PropagateUsingLackey = homomorphism.RootAndBackjump
	default:
		return params, nil, errors.Errorf("unknown lackey %q", opts.LackeyKind)
	}

	switch opts.ProofFormat {
	case "":
	case "json":
		w := opts.ProofOutput
		if w == nil {
			w = os.Stdout
		}
		params.ProofSink = proof.NewJSONLines(w)
	case "text":
		w := opts.ProofOutput
		if w == nil {
			w = os.Stdout
		}
		params.ProofSink = proof.NewTemplateLog(w)
	default:
		return params, nil, errors.Errorf("unknown proof format %q", opts.ProofFormat)
	}

	log.WithFields(logrus.Fields{
		"injectivity": opts.Injectivity,
		"restart":     opts.Restart,
		"lackey":      opts.LackeyKind,
	}).Debug("built search parameters")

	return params, schedule, nil
}
