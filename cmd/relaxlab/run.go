package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/relaxlab/bellmanford"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the algorithm to completion and print the final distances",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, source, err := loadInput()
		if err != nil {
			return err
		}
		if err := g.ValidateOrder(); err != nil {
			log.WithError(err).Warn("edge order is incomplete; missing edges are never relaxed")
		}

		res, err := bellmanford.RunGraph(g, source, bellmanford.WithLogger(log))
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"passes":         res.Passes,
			"negative_cycle": res.NegativeCycle,
		}).Info("run finished")

		ids := nodeOrder(g)
		if jsonOutput {
			return writeJSON(os.Stdout, newResultView(res, ids))
		}

		if err := writeDistances(os.Stdout, ids, res.Distances, res.Predecessors, res.Cycle, source); err != nil {
			return err
		}
		fmt.Println()
		writeResultSummary(os.Stdout, res)

		return nil
	},
}
