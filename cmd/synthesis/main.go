// Command synthesis inspects labeled transition systems with the region
// synthesis toolkit: spanning trees, fundamental cycles, Parikh vectors,
// region checks, Genet rendering and SVG output.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pflow-xyz/go-synthesis/parser"
	"github.com/pflow-xyz/go-synthesis/ts"
)

var logger *zap.Logger

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:           "synthesis",
		Short:         "Region-based Petri net synthesis toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newTreeCommand(),
		newCyclesCommand(),
		newParikhCommand(),
		newCheckCommand(),
		newRenderCommand(),
		newSVGCommand(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadTransitionSystem reads a transition system from a JSON or YAML file,
// chosen by extension.
func loadTransitionSystem(path string) (*ts.TransitionSystem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return parser.TransitionSystemFromYAML(data)
	default:
		return parser.TransitionSystemFromJSON(data)
	}
}
