package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gopatterns/internal/singleton"
)

func singletonCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "singleton",
		Short: "Show the shared settings holder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			a := singleton.Default()
			b := singleton.Default()
			fmt.Fprintf(out, "app name: %s\n", a.AppName)
			fmt.Fprintf(out, "same instance: %t\n", a == b)

			local := singleton.NewSettings("scratch")
			fmt.Fprintf(out, "injected copy is independent: %t\n", local != a)
			return nil
		},
	}
}
