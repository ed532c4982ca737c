package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gopatterns/internal/builder"
)

func builderCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "builder",
		Short: "Assemble cars step by step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var d builder.Director

			city, err := d.CityCar()
			if err != nil {
				return err
			}
			tourer, err := d.Tourer()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "city preset:   %s\n", city)
			fmt.Fprintf(out, "tourer preset: %s\n", tourer)

			custom, err := builder.New("Bespoke").Engine("v8").Seats(2).Sunroof().Build()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "hand-built:    %s\n", custom)
			return nil
		},
	}
}
