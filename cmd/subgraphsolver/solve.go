package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"subgraphsolver/app"
	"subgraphsolver/homomorphism"
)

func newSolveCmd(log *logrus.Logger) *cobra.Command {
	f := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "solve <pattern-graph> <target-graph>",
		Short: "Search for one (or, with --count, every) mapping of pattern into target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(log, f, args[0], args[1])
		},
	}
	bindSearchFlags(cmd, f)
	return cmd
}

func runSolve(log *logrus.Logger, f *searchFlags, patternPath, targetPath string) error {
	opts := f.toOptions()

	m, err := app.LoadModel(patternPath, targetPath, opts)
	if err != nil {
		return errors.Wrap(err, "loading graphs")
	}

	params, schedule, err := app.Build(opts, m, log)
	if err != nil {
		return errors.Wrap(err, "building search parameters")
	}

	result := app.Solve(m, params, schedule, log)

	if opts.CountSolutions {
		// Exhaustive counting always finishes by exhausting the search
		// tree, so the terminal SearchResult is Unsatisfiable even when
		// solutions were found; the count is what matters here.
		fmt.Printf("solutions: %d\n", result.SolutionCount)
	} else {
		fmt.Println(result.Result)
		if result.Result == homomorphism.Satisfiable {
			for p, t := range result.Mapping {
				fmt.Printf("%d -> %d\n", p, t)
			}
		}
	}
	fmt.Printf("nodes: %d, propagations: %d\n", result.Nodes, result.Propagations)
	return nil
}
