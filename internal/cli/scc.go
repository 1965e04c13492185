package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/depsight/graphops/pkg/analysis"
)

// newSCCCmd creates the scc command, which computes strongly-connected
// components in forward topological order and optionally writes the
// quotient graph.
func newSCCCmd(cfg config) *cobra.Command {
	var (
		input     string
		output    string
		prefix    string
		listNodes bool
	)

	cmd := &cobra.Command{
		Use:   "scc",
		Short: "Compute strongly-connected components",
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())
			g, err := readGraph(c.Context(), input)
			if err != nil {
				return err
			}

			prog := startProgress(logger, "scc")
			a := analysis.New(g)
			components := a.Components(prefix)
			prog.done("%d components across %d nodes", components.Len(), a.NodeCount())

			printCount("components", components.Len())
			for _, comp := range components.All() {
				note := fmt.Sprintf("(%d nodes)", comp.Size())
				printItem(comp.Name(), note)
				if listNodes {
					fmt.Printf("    %s\n", styleDim.Render(strings.Join(comp.Nodes(), ", ")))
				}
			}

			if output == "" {
				return nil
			}
			quotient, err := components.ComponentGraph(g)
			if err != nil {
				return err
			}
			return writeGraph(quotient, output, logger)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input *.graph.json file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the component quotient graph to this file")
	cmd.Flags().StringVar(&prefix, "prefix", analysis.DefaultComponentPrefix, "component name prefix (empty derives names from member nodes)")
	cmd.Flags().BoolVar(&listNodes, "nodes", false, "list the member nodes of each component")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
