package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"subgraphsolver/app"
	"subgraphsolver/homomorphism"
)

func newExplainCmd(log *logrus.Logger) *cobra.Command {
	f := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "explain <pattern-graph> <target-graph>",
		Short: "Search for a mapping and, if none exists, report the minimal conflicting pattern vertices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(log, f, args[0], args[1])
		},
	}
	bindSearchFlags(cmd, f)
	return cmd
}

func runExplain(log *logrus.Logger, f *searchFlags, patternPath, targetPath string) error {
	opts := f.toOptions()
	// Nogoods only accumulate when restarts can fire
	// (homomorphism.MightHaveWatches); explain needs something to
	// explain, so --restart=never (the solve default) is overridden.
	if opts.Restart == "" || opts.Restart == "never" {
		opts.Restart = "luby"
	}

	m, err := app.LoadModel(patternPath, targetPath, opts)
	if err != nil {
		return errors.Wrap(err, "loading graphs")
	}

	params, schedule, err := app.Build(opts, m, log)
	if err != nil {
		return errors.Wrap(err, "building search parameters")
	}

	searcher := homomorphism.NewSearcher(m, params, nil)
	result := searcher.Run(schedule)

	fmt.Println(result.Result)
	if result.Result != homomorphism.Unsatisfiable {
		return nil
	}

	for _, e := range app.Explain(searcher.Watches) {
		fmt.Printf("conflicting pattern vertices: %v\n", e.CriticalNodes)
	}
	return nil
}
