package transform

import (
	"github.com/depsight/graphops/pkg/graph"
	"github.com/depsight/graphops/pkg/keyed"
)

// PruneEdge removes the edge source→target. Missing endpoints or a missing
// edge are a no-op; the operation is idempotent. Returns the removed edge,
// or nil.
func PruneEdge(g *graph.Graph, source, target string) *graph.Edge {
	return g.Disconnect(source, target)
}

// PruneInto removes every edge into target. Returns the removed edges.
func PruneInto(g *graph.Graph, target string) []*graph.Edge {
	return g.DisconnectAllSources(target)
}

// PruneOutOf removes every edge out of source. Returns the removed edges.
func PruneOutOf(g *graph.Graph, source string) []*graph.Edge {
	return g.DisconnectAllTargets(source)
}

// PruneNode removes the node and all its incident edges.
// A missing node is a no-op.
func PruneNode(g *graph.Graph, key string) {
	g.RemoveNodes(keyed.NewKeySet(key))
}
