package cli

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/depsight/graphops/pkg/graph"
)

// newCSVCmd creates the csv command, which exports the node list of a
// snapshot as CSV: key, kind, degree counts and unkeyed tags.
func newCSVCmd(cfg config) *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export the node list as CSV",
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())
			g, err := readGraph(c.Context(), input)
			if err != nil {
				return err
			}

			path := outputOr(output, input, ".nodes.csv")
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()

			w := csv.NewWriter(f)
			if err := w.Write([]string{"key", "kind", "sources", "targets", "tags"}); err != nil {
				return err
			}
			var writeErr error
			g.Nodes(func(n *graph.Node) bool {
				var tags []string
				if set, ok := n.Metadata().TryTags(graph.UnkeyedTagKey); ok {
					tags = set.Values()
				}
				writeErr = w.Write([]string{
					n.Key(),
					n.Kind().String(),
					strconv.Itoa(n.SourceCount()),
					strconv.Itoa(n.TargetCount()),
					strings.Join(tags, ";"),
				})
				return writeErr == nil
			})
			if writeErr != nil {
				return writeErr
			}
			w.Flush()
			if err := w.Error(); err != nil {
				return err
			}

			logger.Infof("Wrote %s (%d nodes)", path, g.NodeCount())
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input *.graph.json file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (derived from input if empty)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
