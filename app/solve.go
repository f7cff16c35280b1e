package app

import (
	"github.com/sirupsen/logrus"

	"subgraphsolver/homomorphism"
	"subgraphsolver/model"
)

// Solve runs one top-level search to completion (or restart-exhaustion)
// and logs the node/propagation counters it reports.
func Solve(m *model.Model, params homomorphism.Params, schedule homomorphism.RestartsSchedule, log *logrus.Logger) homomorphism.HomomorphismResult {
	searcher := homomorphism.NewSearcher(m, params, homomorphism.DefaultAllDifferent{})
	result := searcher.Run(schedule)

	log.WithFields(logrus.Fields{
		"result":       result.Result.String(),
		"nodes":        result.Nodes,
		"propagations": result.Propagations,
	}).Info("search finished")

	return result
}
