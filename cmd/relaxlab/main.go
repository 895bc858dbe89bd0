// Command relaxlab replays and runs the Bellman-Ford algorithm from the
// terminal, over the built-in demonstration graph or a TOML/HCL graph file.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/relaxlab/demo"
	"github.com/katalvlaran/relaxlab/graph"
	"github.com/katalvlaran/relaxlab/graphfile"
)

var (
	graphPath  string
	sourceID   string
	logLevel   string
	jsonOutput bool

	log = logrus.New()
)

func defaultLogLevel() string {
	if l := os.Getenv("RELAXLAB_LOG_LEVEL"); l != "" {
		return l
	}
	return "warn"
}

var rootCmd = &cobra.Command{
	Use:           "relaxlab",
	Short:         "Step through and run the Bellman-Ford shortest-path algorithm",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		log.SetOutput(os.Stderr)
		log.SetLevel(level)
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&graphPath, "graph", "g", "", "graph file (.toml or .hcl); the demonstration graph when empty")
	rootCmd.PersistentFlags().StringVarP(&sourceID, "source", "s", "", "source node ID; defaults to the graph file's source")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel(), "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(exportCmd)
}

// loadInput returns the graph to work on and the source node.
func loadInput() (*graph.Graph, string, error) {
	if graphPath == "" {
		source := demo.Source
		if sourceID != "" {
			source = sourceID
		}
		return demo.Graph(), source, nil
	}

	doc, err := graphfile.Load(graphPath)
	if err != nil {
		return nil, "", err
	}
	g, err := doc.Build()
	if err != nil {
		return nil, "", fmt.Errorf("build %s: %w", graphPath, err)
	}

	source := doc.Source
	if sourceID != "" {
		source = sourceID
	}
	if source == "" {
		return nil, "", fmt.Errorf("no source node: set --source or 'source' in %s", graphPath)
	}
	log.WithFields(logrus.Fields{
		"file":   graphPath,
		"nodes":  g.NodeCount(),
		"edges":  g.EdgeCount(),
		"source": source,
	}).Info("graph loaded")

	return g, source, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
