package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pflow-xyz/go-synthesis/parser"
	"github.com/pflow-xyz/go-synthesis/region"
)

func newCheckCommand() *cobra.Command {
	var pure bool

	cmd := &cobra.Command{
		Use:   "check <lts-file> <region-file>",
		Short: "Evaluate a region against a transition system",
		Long: `Evaluate a region file against a transition system: resolve its initial
marking, derive the marking of every reachable state, and verify cycle
consistency and the non-negativity invariant.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := loadTransitionSystem(args[0])
			if err != nil {
				return err
			}
			u, err := region.NewUtility(sys)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			r, err := parser.RegionFromJSON(u, data)
			if err != nil {
				return err
			}
			if pure {
				r = r.MakePure()
			}
			logger.Info("region loaded",
				zap.String("system", sys.Name),
				zap.String("region", r.String()),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "region: %s\n", r)
			fmt.Fprintf(out, "initial marking: %s\n", r.InitialMarking())
			fmt.Fprintf(out, "cycle consistent: %t\n", u.CycleConsistent(r))
			for _, s := range sys.States() {
				m, err := r.MarkingForState(s.ID)
				if errors.Is(err, region.ErrUnreachable) {
					fmt.Fprintf(out, "%s: unreachable\n", s.ID)
					continue
				}
				if err != nil {
					return err
				}
				status := ""
				if m.Sign() < 0 {
					status = "  (negative!)"
				}
				fmt.Fprintf(out, "%s: %s%s\n", s.ID, m, status)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&pure, "pure", false, "purify the region before checking")
	return cmd
}
