package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pflow-xyz/go-synthesis/spantree"
)

func newCyclesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cycles <lts-file>",
		Short: "Compute the fundamental cycle basis of a transition system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := loadTransitionSystem(args[0])
			if err != nil {
				return err
			}
			tree, err := spantree.Build(sys)
			if err != nil {
				return err
			}
			cycles, err := spantree.CycleBasis(sys, tree)
			if err != nil {
				return err
			}
			logger.Info("cycle basis computed",
				zap.String("system", sys.Name),
				zap.Int("cycles", len(cycles)),
			)

			out := cmd.OutOrStdout()
			for i, c := range cycles {
				fmt.Fprintf(out, "cycle %d (chord %s):\n", i, c.Chord)
				for _, a := range c.Arcs {
					fmt.Fprintf(out, "  %s\n", a)
				}
			}
			return nil
		},
	}
}
