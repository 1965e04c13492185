package transform

import (
	"github.com/depsight/graphops/pkg/analysis"
	"github.com/depsight/graphops/pkg/graph"
	"github.com/depsight/graphops/pkg/keyed"
)

// CycleLinkTag marks an edge that was cut to break a cycle during purify
// and re-added afterwards.
const CycleLinkTag = "cyclelink"

// ColorProperty is the visualization color property set on re-added cycle
// edges.
const ColorProperty = "color"

// CycleEdgeColor is the color given to re-added cycle edges.
const CycleEdgeColor = "red"

// Purify drops every edge (s, t) whose target is also reachable from s via
// some other direct target, leaving the transitive reduction on an acyclic
// graph. Without breakCycles, a cyclic graph fails with a cycle error and
// the graph is unchanged. With breakCycles, the edges cut to compute reach
// are re-added afterwards, tagged "cyclelink" and colored for
// visualization. Returns the number of edges removed.
func Purify(g *graph.Graph, breakCycles bool) (int, error) {
	a := analysis.New(g)

	var cycles *keyed.KeySetMap
	if breakCycles {
		cycles = keyed.NewKeySetMap()
	}
	reach, err := a.ReachMap(cycles)
	if err != nil {
		return 0, err
	}

	targets := keyed.NewKeySetMap()
	a.TargetEdges().All(func(key string, set keyed.Set) bool {
		targets.Set(key, keyed.NewKeySet(set.Values()...))
		return true
	})

	before := g.EdgeCount()
	g.DisconnectTargetsExcept(reach.NotInSelfProjectionMap(targets), true)

	if breakCycles {
		if err := readdCycleEdges(g, cycles); err != nil {
			return 0, err
		}
	}
	return before - g.EdgeCount(), nil
}

// PurifySCC purifies the SCC quotient of the graph instead of the graph
// itself: the quotient DAG is cycle-free, so its purification is an exact
// transitive reduction. All intra-component edges are preserved;
// inter-component edges survive only when the corresponding quotient edge
// does. Returns the number of edges removed.
func PurifySCC(g *graph.Graph) (int, error) {
	a := analysis.New(g)
	components := a.Components(analysis.DefaultComponentPrefix)

	quotient, err := components.ComponentGraph(g)
	if err != nil {
		return 0, err
	}
	if _, err := Purify(quotient, false); err != nil {
		return 0, err
	}

	keep := keyed.NewKeySetMap()
	g.Nodes(func(n *graph.Node) bool {
		from, ok := components.ForNode(n.Key())
		if !ok {
			return true
		}
		kept := keyed.NewKeySet()
		for _, targetKey := range n.TargetKeys() {
			to, ok := components.ForNode(targetKey)
			if !ok {
				continue
			}
			if to == from {
				kept.Add(targetKey)
				continue
			}
			if e, err := quotient.FindEdge(from.Name(), to.Name()); err == nil && e != nil {
				kept.Add(targetKey)
			}
		}
		keep.Set(n.Key(), kept)
		return true
	})

	before := g.EdgeCount()
	g.DisconnectTargetsExcept(keep, true)
	return before - g.EdgeCount(), nil
}

func readdCycleEdges(g *graph.Graph, cycles *keyed.KeySetMap) error {
	var err error
	cycles.All(func(source string, targets *keyed.KeySet) bool {
		for _, target := range targets.Values() {
			var e *graph.Edge
			if e, err = g.ConnectOrMergeEdge(source, target, nil); err != nil {
				return false
			}
			e.Metadata().Tags(graph.UnkeyedTagKey).Add(CycleLinkTag)
			e.Metadata().SetProperty(ColorProperty, CycleEdgeColor)
		}
		return true
	})
	return err
}
