package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gopatterns/internal/composite"
)

func compositeCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "composite",
		Short: "Total a shipment of nested book boxes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			shipment := (&composite.Box{Label: "shipment"}).Add(
				composite.Book{Title: "The Go Programming Language", Cents: 3999},
				(&composite.Box{Label: "classics"}).Add(
					composite.Book{Title: "SICP", Cents: 2500},
					composite.Book{Title: "TAPL", Cents: 6000},
				),
			)

			fmt.Fprintln(out, shipment.Describe(0))
			total := shipment.TotalCents()
			fmt.Fprintf(out, "total: $%d.%02d\n", total/100, total%100)
			return nil
		},
	}
}
