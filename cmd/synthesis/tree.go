package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pflow-xyz/go-synthesis/spantree"
)

func newTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <lts-file>",
		Short: "Compute the spanning tree of a transition system",
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
			logger.Info("spanning tree built",
				zap.String("system", sys.Name),
				zap.Int("states", sys.StateCount()),
				zap.Int("reachable", tree.Size()),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "root: %s\n", tree.Root())
			for _, id := range tree.States() {
				a := tree.ParentArc(id)
				if a == nil {
					continue
				}
				fmt.Fprintf(out, "%s\n", a)
			}
			for _, s := range sys.States() {
				if !tree.Contains(s.ID) {
					fmt.Fprintf(out, "unreachable: %s\n", s.ID)
				}
			}
			return nil
		},
	}
}
