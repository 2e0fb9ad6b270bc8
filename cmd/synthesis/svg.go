package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pflow-xyz/go-synthesis/spantree"
	"github.com/pflow-xyz/go-synthesis/visualization"
)

func newSVGCommand() *cobra.Command {
	var output string
	var noTree bool

	cmd := &cobra.Command{
		Use:   "svg <ts-file>",
		Short: "Render a transition system as SVG with its spanning tree highlighted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := loadTransitionSystem(args[0])
			if err != nil {
				return err
			}
			var tree *spantree.Tree
			if !noTree {
				tree, err = spantree.Build(sys)
				if err != nil {
					return err
				}
			}
			logger.Info("rendering system",
				zap.String("system", sys.Name),
				zap.Int("states", sys.StateCount()),
				zap.Int("arcs", sys.ArcCount()),
			)

			if output == "" {
				_, err = cmd.OutOrStdout().Write([]byte(visualization.RenderSVG(sys, tree)))
				return err
			}
			return visualization.SaveSVG(sys, tree, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&noTree, "no-tree", false, "draw all arcs alike, without tree highlighting")
	return cmd
}
