package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/depsight/graphops/pkg/analysis"
	"github.com/depsight/graphops/pkg/keyed"
)

// newCyclesCmd creates the cycles command, which reports cyclic
// dependencies: the edges that close cycles during the reach closure, and
// the strongly-connected groups they belong to.
func newCyclesCmd(cfg config) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "cycles",
		Short: "Report cyclic dependencies",
		RunE: func(c *cobra.Command, args []string) error {
			g, err := readGraph(c.Context(), input)
			if err != nil {
				return err
			}

			a := analysis.New(g)
			cycleEdges := keyed.NewKeySetMap()
			if _, err := a.ReachMap(cycleEdges); err != nil {
				return err
			}

			if cycleEdges.PairCount() == 0 {
				fmt.Println(styleSuccess.Render("No cycles found"))
				return nil
			}

			printCount("cycle edges", cycleEdges.PairCount())
			cycleEdges.All(func(source string, targets *keyed.KeySet) bool {
				for _, target := range targets.Values() {
					printItem(fmt.Sprintf("%s -> %s", source, target), "")
				}
				return true
			})

			components := a.Components("")
			for _, comp := range components.All() {
				if comp.Size() < 2 {
					continue
				}
				fmt.Printf("%s %s\n",
					styleWarning.Render("cyclic group:"),
					styleValue.Render(strings.Join(comp.Nodes(), " <-> ")))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input *.graph.json file")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
