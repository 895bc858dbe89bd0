package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relaxlab/bellmanford"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print every step of the algorithm as a history table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, source, err := loadInput()
		if err != nil {
			return err
		}

		steps, err := bellmanford.TraceGraph(g, source, bellmanford.WithLogger(log))
		if err != nil {
			return err
		}

		ids := nodeOrder(g)
		if jsonOutput {
			out := make([]stepView, 0, len(steps))
			for _, s := range steps {
				out = append(out, newStepView(s, ids))
			}
			return writeJSON(os.Stdout, out)
		}

		return writeHistory(os.Stdout, ids, steps)
	},
}
