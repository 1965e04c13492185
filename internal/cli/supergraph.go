package cli

import (
	"github.com/spf13/cobra"

	"github.com/depsight/graphops/pkg/transform"
)

// newSuperGraphCmd creates the supergraph command, which quotients a graph
// by a node property: one super-node per distinct value, super-edges for
// cross-class dependencies.
func newSuperGraphCmd(cfg config) *cobra.Command {
	var (
		input    string
		output   string
		property string
		addNodes bool
	)

	cmd := &cobra.Command{
		Use:   "supergraph",
		Short: "Quotient a graph by a node property",
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())
			g, err := readGraph(c.Context(), input)
			if err != nil {
				return err
			}

			classifier := transform.NewPropertyClassifier(g, property)
			prog := startProgress(logger, "supergraph")
			super, err := transform.SuperGraph(g, classifier, addNodes)
			if err != nil {
				return err
			}
			prog.done("%d classes, %d edges", super.NodeCount(), super.EdgeCount())

			return writeGraph(super, outputOr(output, input, ".super.graph.json"), logger)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input *.graph.json file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (derived from input if empty)")
	cmd.Flags().StringVar(&property, "property", "module", "node property to classify by")
	cmd.Flags().BoolVar(&addNodes, "add-nodes", false, "tag each super-node with its underlying node keys")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
