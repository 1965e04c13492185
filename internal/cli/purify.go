package cli

import (
	"github.com/spf13/cobra"

	"github.com/depsight/graphops/pkg/transform"
)

// newPurifyCmd creates the purify command, which drops every edge already
// implied by a longer path. Plain mode works on the graph itself and needs
// --break-cycles on cyclic input; SCC mode reduces the component quotient
// and keeps all intra-component edges.
func newPurifyCmd(cfg config) *cobra.Command {
	var (
		input       string
		output      string
		sccMode     bool
		breakCycles bool
	)

	cmd := &cobra.Command{
		Use:   "purify",
		Short: "Remove edges implied by longer paths",
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())
			g, err := readGraph(c.Context(), input)
			if err != nil {
				return err
			}

			ext := ".pure.graph.json"
			if sccMode {
				ext = ".sccpure.graph.json"
			}

			prog := startProgress(logger, "purify")
			var removed int
			if sccMode {
				removed, err = transform.PurifySCC(g)
			} else {
				removed, err = transform.Purify(g, breakCycles)
			}
			if err != nil {
				return err
			}
			prog.done("%d redundant edges removed", removed)

			return writeGraph(g, outputOr(output, input, ext), logger)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input *.graph.json file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (derived from input if empty)")
	cmd.Flags().BoolVar(&sccMode, "scc", false, "purify the SCC quotient instead of the raw graph")
	cmd.Flags().BoolVar(&breakCycles, "break-cycles", false, "cut cycles during the closure and re-add the cut edges tagged cyclelink")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
