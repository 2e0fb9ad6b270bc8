package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pflow-xyz/go-synthesis/genet"
	"github.com/pflow-xyz/go-synthesis/parser"
)

func newRenderCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <net-file>",
		Short: "Render a Petri net in the Genet file format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			net, err := parser.PetriNetFromJSON(data)
			if err != nil {
				return err
			}
			logger.Info("rendering net",
				zap.String("net", net.Name),
				zap.Int("places", len(net.Places)),
				zap.Int("transitions", len(net.Transitions)),
			)

			if output == "" {
				return genet.Render(net, cmd.OutOrStdout())
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			return genet.Render(net, f)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
