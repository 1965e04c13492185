package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depsight/graphops/pkg/transform"
)

// newPruneCmd creates the prune command, which removes a single edge, an
// entire fan-in or fan-out, or a whole node with its edges. Missing
// endpoints are a no-op, so pruning is safe to repeat.
func newPruneCmd(cfg config) *cobra.Command {
	var (
		input  string
		output string
		from   string
		to     string
		node   string
	)

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove edges or nodes",
		Long: `Remove edges or nodes from a graph snapshot.

Selection:
  --from S --to T   remove the edge S -> T
  --to T            remove every edge into T
  --from S          remove every edge out of S
  --node N          remove node N and all its edges`,
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())
			g, err := readGraph(c.Context(), input)
			if err != nil {
				return err
			}

			switch {
			case node != "":
				transform.PruneNode(g, node)
				logger.Infof("Removed node %s", node)
			case from != "" && to != "":
				if e := transform.PruneEdge(g, from, to); e != nil {
					logger.Infof("Removed edge %s -> %s", from, to)
				} else {
					logger.Warnf("Edge %s -> %s not present", from, to)
				}
			case to != "":
				removed := transform.PruneInto(g, to)
				logger.Infof("Removed %d edges into %s", len(removed), to)
			case from != "":
				removed := transform.PruneOutOf(g, from)
				logger.Infof("Removed %d edges out of %s", len(removed), from)
			default:
				return fmt.Errorf("nothing selected: use --from/--to or --node")
			}

			return writeGraph(g, outputOr(output, input, ".pruned.graph.json"), logger)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input *.graph.json file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (derived from input if empty)")
	cmd.Flags().StringVar(&from, "from", "", "edge source key")
	cmd.Flags().StringVar(&to, "to", "", "edge target key")
	cmd.Flags().StringVar(&node, "node", "", "node key to remove entirely")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
