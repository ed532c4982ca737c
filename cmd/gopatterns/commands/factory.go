package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gopatterns/internal/factory"
)

func factoryCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "factory",
		Short: "Plan deliveries with transport factories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, factory.PlanDelivery(factory.RoadPlanner{}, "12 crates"))
			fmt.Fprintln(out, factory.PlanDelivery(factory.SeaPlanner{}, "12 crates"))
			return nil
		},
	}
}
