package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gopatterns/internal/bridge"
)

func bridgeCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bridge",
		Short: "Render pages through interchangeable backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			article := bridge.Article{
				Head:  "the bridge pattern",
				Paras: []string{"One abstraction, many backends."},
			}

			article.R = bridge.TextRenderer{}
			fmt.Fprintf(out, "text backend:\n%s\n\n", article.Render())

			article.R = bridge.HTMLRenderer{}
			fmt.Fprintf(out, "html backend:\n%s\n", article.Render())
			return nil
		},
	}
}
