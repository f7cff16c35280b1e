// Command subgraphsolver is the CLI front end for the subgraph
// homomorphism search core: solve/explain run one search over graph
// files on disk, serve exposes the same search over HTTP.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	log := logrus.New()

	root := &cobra.Command{
		Use:   "subgraphsolver",
		Short: "Subgraph/graph-homomorphism search",
	}
	root.PersistentFlags().Bool("debug", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetLevel(logrus.DebugLevel)
		}
	}

	root.AddCommand(newSolveCmd(log))
	root.AddCommand(newExplainCmd(log))
	root.AddCommand(newServeCmd(log))

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
