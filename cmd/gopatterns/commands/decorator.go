package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gopatterns/internal/datasource"
)

// decorator [--pipeline file.yaml] [value]: write a value through a layer
// stack and read it back, showing the transformed form at the leaf.
func decoratorCmd(opts *RootOptions) *cobra.Command {
	var pipelineFile string

	cmd := &cobra.Command{
		Use:   "decorator [value]",
		Short: "Push a value through a layered data source",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := "Hello world!"
			if len(args) == 1 {
				value = args[0]
			}

			cfg := datasource.PipelineConfig{
				Store: "demo",
				Layers: []datasource.LayerConfig{
					{Kind: "reverse"}, {Kind: "base64"}, {Kind: "reverse"},
				},
			}
			if pipelineFile != "" {
				data, err := os.ReadFile(pipelineFile)
				if err != nil {
					return err
				}
				if cfg, err = datasource.ParsePipeline(data); err != nil {
					return err
				}
			}

			store := datasource.NewMemoryStore(cfg.Store, opts.Logger())
			src, err := datasource.BuildPipeline(cfg, store)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			kinds := make([]string, len(cfg.Layers))
			for i, l := range cfg.Layers {
				kinds[i] = l.Kind
			}
			fmt.Fprintf(out, "stack: %v around store %q\n", kinds, store.Name())
			fmt.Fprintf(out, "write: %q\n", value)
			if err := src.Write(value); err != nil {
				return err
			}

			stored, err := store.Read()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "leaf holds: %q\n", stored)

			back, err := src.Read()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "read: %q\n", back)
			return nil
		},
	}
	cmd.Flags().StringVar(&pipelineFile, "pipeline", "", "YAML pipeline description (default: reverse, base64, reverse)")
	return cmd
}
