package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depsight/graphops/pkg/transform"
)

// newFilterCmd creates the filter command, which keeps or drops nodes by
// tag and scrubs all edges left dangling by the removal.
func newFilterCmd(cfg config) *cobra.Command {
	var (
		input   string
		output  string
		tags    []string
		tagKey  string
		exclude bool
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Keep or drop nodes by tag",
		RunE: func(c *cobra.Command, args []string) error {
			if len(tags) == 0 {
				return fmt.Errorf("at least one --tag is required")
			}
			logger := loggerFromContext(c.Context())
			g, err := readGraph(c.Context(), input)
			if err != nil {
				return err
			}

			removed := transform.FilterTags(g, tagKey, tags, !exclude)
			logger.Infof("Removed %d nodes", removed)

			return writeGraph(g, outputOr(output, input, ".filtered.graph.json"), logger)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input *.graph.json file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (derived from input if empty)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tag to match (repeatable)")
	cmd.Flags().StringVar(&tagKey, "key", cfg.TagKey, "keyed-tag key to match under (empty for unkeyed tags)")
	cmd.Flags().BoolVar(&exclude, "exclude", false, "drop matching nodes instead of keeping them")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
