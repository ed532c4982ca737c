package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gopatterns/internal/uikit"
)

func uikitCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "uikit",
		Short: "Render a form with themed widget families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "light theme:\n%s\n\n", uikit.RenderForm(uikit.LightFactory{}))
			fmt.Fprintf(out, "dark theme:\n%s\n", uikit.RenderForm(uikit.DarkFactory{}))
			return nil
		},
	}
}
