package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gopatterns/internal/adapter"
)

func adapterCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "adapter",
		Short: "Charge a card through a legacy gateway adapter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			p := &adapter.LegacyAdapter{Gateway: &adapter.LegacyGateway{Limit: 50}}

			rcpt, err := p.Charge(1999)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "charged 1999 cents via %s\n", rcpt.Ref)

			_, err = p.Charge(999999)
			if !errors.Is(err, adapter.ErrDeclined) {
				return fmt.Errorf("expected a decline, got %v", err)
			}
			fmt.Fprintf(out, "large charge refused: %v\n", err)
			return nil
		},
	}
}
