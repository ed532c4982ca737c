package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by every demo command.
type RootOptions struct {
	Verbose bool

	log *slog.Logger
}

// Logger returns the operation logger: stderr text when --verbose, discard
// otherwise.
func (o *RootOptions) Logger() *slog.Logger { return o.log }

// NewRootCommand builds the CLI. Demos write to cmd.OutOrStdout() so callers
// (and tests) can redirect output.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	root := &cobra.Command{
		Use:           "gopatterns",
		Short:         "Runnable design-pattern examples",
		Long:          "A collection of classic design-pattern examples, each runnable as a subcommand.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			handler := slog.Handler(slog.NewTextHandler(io.Discard, nil))
			if opts.Verbose {
				handler = slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
			}
			opts.log = slog.New(handler)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log store operations to stderr")

	root.AddCommand(
		adapterCmd(opts),
		bridgeCmd(opts),
		builderCmd(opts),
		compositeCmd(opts),
		decoratorCmd(opts),
		facadeCmd(opts),
		factoryCmd(opts),
		singletonCmd(opts),
		uikitCmd(opts),
	)
	return root
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
