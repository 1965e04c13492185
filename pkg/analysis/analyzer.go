package analysis

import (
	"strings"

	"github.com/depsight/graphops/pkg/errors"
	"github.com/depsight/graphops/pkg/graph"
	"github.com/depsight/graphops/pkg/keyed"
)

// Analyzer holds an adjacency snapshot taken from a graph: the node key
// set, both edge directions as key-set maps, and the precomputed seed and
// sink sets. The zero value is not usable - use New.
type Analyzer struct {
	nodes       *keyed.KeySet
	sourceEdges *keyed.KeySetMap // target key -> source keys
	targetEdges *keyed.KeySetMap // source key -> target keys
	seeds       *keyed.KeySet
	sinks       *keyed.KeySet

	reach  *keyed.KeySetMap // cached reach map
	domain *keyed.KeySetMap // cached domain map
}

// New snapshots the graph's adjacency into a fresh analyzer.
func New(g *graph.Graph) *Analyzer {
	a := &Analyzer{
		nodes:       keyed.NewKeySet(),
		sourceEdges: keyed.NewKeySetMap(),
		targetEdges: keyed.NewKeySetMap(),
		seeds:       keyed.NewKeySet(),
		sinks:       keyed.NewKeySet(),
	}
	g.Nodes(func(n *graph.Node) bool {
		key := n.Key()
		a.nodes.Add(key)
		a.sourceEdges.Set(key, keyed.NewKeySet(n.SourceKeys()...))
		a.targetEdges.Set(key, keyed.NewKeySet(n.TargetKeys()...))
		if n.SourceCount() == 0 {
			a.seeds.Add(key)
		}
		if n.TargetCount() == 0 {
			a.sinks.Add(key)
		}
		return true
	})
	return a
}

// NodeCount returns the number of snapshotted nodes.
func (a *Analyzer) NodeCount() int { return a.nodes.Len() }

// EdgeCount returns the number of snapshotted edges.
func (a *Analyzer) EdgeCount() int { return a.targetEdges.PairCount() }

// SeedCount returns the number of nodes without incoming edges.
func (a *Analyzer) SeedCount() int { return a.seeds.Len() }

// SinkCount returns the number of nodes without outgoing edges.
func (a *Analyzer) SinkCount() int { return a.sinks.Len() }

// Nodes returns the snapshotted node keys.
func (a *Analyzer) Nodes() keyed.Set { return a.nodes }

// Seeds returns the keys of nodes without incoming edges.
func (a *Analyzer) Seeds() keyed.Set { return a.seeds }

// Sinks returns the keys of nodes without outgoing edges.
func (a *Analyzer) Sinks() keyed.Set { return a.sinks }

// TargetEdges returns the outgoing adjacency snapshot.
func (a *Analyzer) TargetEdges() keyed.MapView { return a.targetEdges.View() }

// SourceEdges returns the incoming adjacency snapshot.
func (a *Analyzer) SourceEdges() keyed.MapView { return a.sourceEdges.View() }

// ReachMap returns the mapping from each node to its reach: every node
// transitively reachable from it via outgoing edges, excluding itself.
// The result is cached on first success; see PowerMap for cycle handling.
func (a *Analyzer) ReachMap(cycles *keyed.KeySetMap) (keyed.MapView, error) {
	if a.reach != nil {
		return a.reach.View(), nil
	}
	power, err := a.powerMap(a.targetEdges, cycles)
	if err != nil {
		return keyed.MapView{}, err
	}
	a.reach = power
	return power.View(), nil
}

// DomainMap returns the mapping from each node to its domain: every node
// from which it is transitively reachable, excluding itself. The result is
// cached on first success; see PowerMap for cycle handling.
func (a *Analyzer) DomainMap(cycles *keyed.KeySetMap) (keyed.MapView, error) {
	if a.domain != nil {
		return a.domain.View(), nil
	}
	power, err := a.powerMap(a.sourceEdges, cycles)
	if err != nil {
		return keyed.MapView{}, err
	}
	a.domain = power
	return power.View(), nil
}

// PowerMap computes the transitive closure of the given adjacency: each
// node maps to the set of nodes reachable from it, excluding itself.
//
// Without a cycle sink, hitting a directed cycle fails with a cycle error
// whose message names the in-progress traversal chain. With a sink, the
// closure is computed per start node: whenever the walk reaches a node
// already on the current path, the edge just traversed is recorded into
// the sink and cut, and the start node's set is the reach in the remaining
// acyclic subgraph. At least one edge per directed cycle is recorded.
func (a *Analyzer) PowerMap(edges keyed.MapView, cycles *keyed.KeySetMap) (keyed.MapView, error) {
	snap := keyed.NewKeySetMap()
	edges.All(func(key string, set keyed.Set) bool {
		snap.Set(key, keyed.NewKeySet(set.Values()...))
		return true
	})
	power, err := a.powerMap(snap, cycles)
	if err != nil {
		return keyed.MapView{}, err
	}
	return power.View(), nil
}

func (a *Analyzer) powerMap(edges *keyed.KeySetMap, cycles *keyed.KeySetMap) (*keyed.KeySetMap, error) {
	if cycles == nil {
		return a.memoizedClosure(edges)
	}
	return a.perRootClosure(edges, cycles), nil
}

// memoizedClosure shares finished sets across start nodes. Valid because a
// cycle aborts the whole computation, so no incomplete set ever survives.
func (a *Analyzer) memoizedClosure(edges *keyed.KeySetMap) (*keyed.KeySetMap, error) {
	power := keyed.NewKeySetMap()
	guard := keyed.NewKeySet()
	var chain []string

	var visit func(key string) (*keyed.KeySet, error)
	visit = func(key string) (*keyed.KeySet, error) {
		if set, ok := power.Get(key); ok {
			return set, nil
		}
		guard.Add(key)
		chain = append(chain, key)

		set := keyed.NewKeySet()
		if next, ok := edges.Get(key); ok {
			for _, target := range next.Values() {
				if guard.Contains(target) {
					return nil, cycleError(chain, target)
				}
				set.Add(target)
				sub, err := visit(target)
				if err != nil {
					return nil, err
				}
				set.UnionWith(sub)
			}
		}

		guard.Remove(key)
		chain = chain[:len(chain)-1]
		power.Set(key, set)
		return set, nil
	}

	for _, key := range a.nodes.Values() {
		if power.Has(key) {
			continue
		}
		if _, err := visit(key); err != nil {
			return nil, err
		}
	}
	return power, nil
}

// perRootClosure walks each start node with its own path guard, cutting
// and recording the edge that closes a cycle. Results are not shared
// between roots: a set computed under one root's guard would be incomplete
// for another.
func (a *Analyzer) perRootClosure(edges *keyed.KeySetMap, cycles *keyed.KeySetMap) *keyed.KeySetMap {
	power := keyed.NewKeySetMap()

	for _, root := range a.nodes.Values() {
		reached := keyed.NewKeySet()
		path := keyed.NewKeySet(root)

		var visit func(key string)
		visit = func(key string) {
			next, ok := edges.Get(key)
			if !ok {
				return
			}
			for _, target := range next.Values() {
				if path.Contains(target) {
					cycles.AddPair(key, target)
					continue
				}
				if !reached.Add(target) {
					continue
				}
				path.Add(target)
				visit(target)
				path.Remove(target)
			}
		}

		visit(root)
		power.Set(root, reached)
	}
	return power
}

func cycleError(chain []string, closing string) error {
	return errors.New(errors.ErrCodeCycle, "cycle detected: %s -> %s",
		strings.Join(chain, " -> "), closing)
}
