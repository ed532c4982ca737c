package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gopatterns/internal/adapter"
	"gopatterns/internal/facade"
)

func facadeCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "facade",
		Short: "Place an order through the checkout facade",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			co := &facade.Checkout{
				Inventory: &facade.Inventory{Stock: map[string]int{"BOOK-1": 3}},
				Payments:  &adapter.LegacyAdapter{Gateway: &adapter.LegacyGateway{Limit: 1000}},
				Shipping:  &facade.Shipping{CentsPerUnit: 300},
			}

			order, err := co.PlaceOrder("BOOK-1", 2, 2500)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "order %s: %d x %s\n", order.ID, order.Units, order.SKU)
			fmt.Fprintf(out, "charged %d cents (incl. %d shipping) via %s\n",
				order.ChargedCents, order.ShippingCents, order.PaymentRef)
			fmt.Fprintf(out, "stock left: %d\n", co.Inventory.Stock["BOOK-1"])

			if _, err := co.PlaceOrder("BOOK-1", 5, 2500); err != nil {
				fmt.Fprintf(out, "second order refused: %v\n", err)
			}
			return nil
		},
	}
}
