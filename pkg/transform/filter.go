package transform

import (
	"github.com/depsight/graphops/pkg/graph"
)

// FilterTags selects the nodes carrying any of the given tags under tagKey
// and either keeps only them (include) or drops exactly them (exclude).
// Either way the node-removal scrub runs, so no dangling edges remain.
// Returns the number of nodes removed.
func FilterTags(g *graph.Graph, tagKey string, tags []string, include bool) int {
	selected := g.FindTaggedNodeSet(tagKey, tags...)
	before := g.NodeCount()
	if include {
		g.RemoveOtherNodes(selected)
	} else {
		g.RemoveNodes(selected)
	}
	return before - g.NodeCount()
}
