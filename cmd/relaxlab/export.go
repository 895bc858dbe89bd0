package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relaxlab/graphfile"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current graph as a TOML graph file",
	Long: `Write the current graph (the demonstration graph unless --graph is set)
as a TOML document that "relaxlab --graph" can load back.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, source, err := loadInput()
		if err != nil {
			return err
		}
		doc := graphfile.FromGraph(g, source)

		if exportOutput == "" {
			return graphfile.EncodeTOML(os.Stdout, doc)
		}

		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOutput, err)
		}
		if err := graphfile.EncodeTOML(f, doc); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.WithField("file", exportOutput).Info("graph exported")

		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
}
