package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pflow-xyz/go-synthesis/region"
)

func newParikhCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parikh <lts-file>",
		Short: "Print the reaching Parikh vector of every state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := loadTransitionSystem(args[0])
			if err != nil {
				return err
			}
			u, err := region.NewUtility(sys)
			if err != nil {
				return err
			}
			logger.Info("event index built",
				zap.String("system", sys.Name),
				zap.Int("events", u.NumberOfEvents()),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "events: %s\n", strings.Join(u.EventList(), " "))
			for _, s := range sys.States() {
				pv, err := u.ReachingParikhVector(s.ID)
				if errors.Is(err, region.ErrUnreachable) {
					fmt.Fprintf(out, "%s: unreachable\n", s.ID)
					continue
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %s\n", s.ID, pv)
			}
			return nil
		},
	}
}
