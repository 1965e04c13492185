package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depsight/graphops/pkg/graph"
	"github.com/depsight/graphops/pkg/keyed"
)

// newTagsCmd creates the tags command, which summarizes tag usage across a
// graph snapshot: every tag key, every tag under it, and how many nodes
// carry it.
func newTagsCmd(cfg config) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Summarize tag usage in a graph snapshot",
		RunE: func(c *cobra.Command, args []string) error {
			g, err := readGraph(c.Context(), input)
			if err != nil {
				return err
			}

			usage := keyed.NewKeyMap[*keyed.KeyMap[int]]()
			g.Nodes(func(n *graph.Node) bool {
				n.Metadata().KeyedTags().All(func(key string, set *keyed.KeySet) bool {
					if set.Len() == 0 {
						return true
					}
					counts, ok := usage.Get(key)
					if !ok {
						counts = keyed.NewKeyMap[int]()
						usage.Set(key, counts)
					}
					for _, tag := range set.Values() {
						count, _ := counts.Get(tag)
						counts.Set(tag, count+1)
					}
					return true
				})
				return true
			})

			if usage.Len() == 0 {
				fmt.Println(styleDim.Render("no tags"))
				return nil
			}

			usage.All(func(key string, counts *keyed.KeyMap[int]) bool {
				if key == graph.UnkeyedTagKey {
					printTitle("(unkeyed)")
				} else {
					printTitle("%s", key)
				}
				counts.All(func(tag string, count int) bool {
					printItem(tag, fmt.Sprintf("x%d", count))
					return true
				})
				return true
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input *.graph.json file")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
