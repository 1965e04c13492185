package graph

import (
	"github.com/depsight/graphops/pkg/errors"
	"github.com/depsight/graphops/pkg/keyed"
)

// Graph is a mutable in-memory multigraph keyed by case-insensitive node
// keys. The zero value is not usable - use New. Graph is not safe for
// concurrent use without external synchronization.
type Graph struct {
	meta  *Metadata
	nodes *keyed.KeyMap[*Node]
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		meta:  NewMetadata(),
		nodes: keyed.NewKeyMap[*Node](),
	}
}

// Metadata returns the graph-level attribute bag.
func (g *Graph) Metadata() *Metadata { return g.meta }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of edges, counted on the outgoing side.
func (g *Graph) EdgeCount() int {
	total := 0
	g.nodes.All(func(_ string, n *Node) bool {
		total += n.targets.Len()
		return true
	})
	return total
}

// Node returns the node with the given key.
func (g *Graph) Node(key string) (*Node, bool) { return g.nodes.Get(key) }

// HasNode reports whether a node with the given key exists.
func (g *Graph) HasNode(key string) bool { return g.nodes.Has(key) }

// Keys returns all node keys in ascending fold order.
func (g *Graph) Keys() []string { return g.nodes.Keys() }

// KeySet returns all node keys as a set owned by the caller.
func (g *Graph) KeySet() *keyed.KeySet {
	return keyed.NewKeySet(g.nodes.Keys()...)
}

// Nodes calls fn for every node in ascending key order.
func (g *Graph) Nodes(fn func(n *Node) bool) {
	g.nodes.All(func(_ string, n *Node) bool { return fn(n) })
}

// AddNode creates a node with the given key and optional metadata.
// Returns a duplicate-node error when the key is already taken.
func (g *Graph) AddNode(key string, meta *Metadata) (*Node, error) {
	if g.nodes.Has(key) {
		return nil, errors.New(errors.ErrCodeDuplicateNode, "node %q already exists", key)
	}
	n := newNode(key, meta)
	g.nodes.Set(key, n)
	return n, nil
}

// Connect creates the edge source→target. Both endpoints must exist and the
// edge must not; violations fail with coded errors and leave the graph
// unchanged.
func (g *Graph) Connect(source, target string, meta *Metadata) (*Edge, error) {
	src, dst, err := g.endpoints(source, target)
	if err != nil {
		return nil, err
	}
	if _, exists := src.targets.Get(target); exists {
		return nil, errors.New(errors.ErrCodeDuplicateEdge, "edge %q -> %q already exists", source, target)
	}
	e := newEdge(src, dst, meta)
	src.targets.Set(dst.key, e)
	dst.sources.Set(src.key, e)
	return e, nil
}

// ConnectOrMergeEdge creates the edge source→target, or merges meta into the
// existing edge's metadata when the pair is already connected.
func (g *Graph) ConnectOrMergeEdge(source, target string, meta *Metadata) (*Edge, error) {
	src, _, err := g.endpoints(source, target)
	if err != nil {
		return nil, err
	}
	if e, exists := src.targets.Get(target); exists {
		e.meta.Import(meta, true, true)
		return e, nil
	}
	return g.Connect(source, target, meta)
}

// FindEdge returns the edge source→target, or nil when the nodes are not
// connected. Missing endpoints are an error.
func (g *Graph) FindEdge(source, target string) (*Edge, error) {
	src, _, err := g.endpoints(source, target)
	if err != nil {
		return nil, err
	}
	e, _ := src.targets.Get(target)
	return e, nil
}

// Disconnect removes the edge source→target and returns it, or nil when the
// edge or either endpoint is missing. Removal never fails.
func (g *Graph) Disconnect(source, target string) *Edge {
	src, ok := g.nodes.Get(source)
	if !ok {
		return nil
	}
	e, ok := src.targets.Get(target)
	if !ok {
		return nil
	}
	src.targets.Delete(target)
	e.target.sources.Delete(src.key)
	return e
}

// DisconnectAllSources removes every edge into target and returns them.
// A missing target is a no-op.
func (g *Graph) DisconnectAllSources(target string) []*Edge {
	dst, ok := g.nodes.Get(target)
	if !ok {
		return nil
	}
	var removed []*Edge
	for _, sourceKey := range dst.sources.Keys() {
		if e := g.Disconnect(sourceKey, target); e != nil {
			removed = append(removed, e)
		}
	}
	return removed
}

// DisconnectAllTargets removes every edge out of source and returns them.
// A missing source is a no-op.
func (g *Graph) DisconnectAllTargets(source string) []*Edge {
	src, ok := g.nodes.Get(source)
	if !ok {
		return nil
	}
	return src.DisconnectAllExcept(keyed.NewKeySet())
}

// RemoveNodes drops every node named in keys, then scrubs dangling edge
// entries from the remaining nodes in a single pass. Missing keys are
// skipped silently.
func (g *Graph) RemoveNodes(keys *keyed.KeySet) {
	if keys == nil || keys.Len() == 0 {
		return
	}
	removed := keyed.NewKeySet()
	for _, key := range keys.Values() {
		if g.nodes.Delete(key) {
			removed.Add(key)
		}
	}
	if removed.Len() == 0 {
		return
	}
	g.nodes.All(func(_ string, n *Node) bool {
		n.scrubRemoved(removed)
		return true
	})
}

// RemoveOtherNodes drops every node whose key is not in keep.
func (g *Graph) RemoveOtherNodes(keep *keyed.KeySet) {
	drop := keyed.NewKeySet()
	for _, key := range g.nodes.Keys() {
		if keep == nil || !keep.Contains(key) {
			drop.Add(key)
		}
	}
	g.RemoveNodes(drop)
}

// DisconnectTargetsExcept trims outgoing edges per the given map. Source
// nodes present in targetEdges keep only edges to the listed targets.
// Source nodes absent from the map lose all outgoing edges when
// disconnectMissing is set and are left untouched otherwise.
func (g *Graph) DisconnectTargetsExcept(targetEdges *keyed.KeySetMap, disconnectMissing bool) {
	g.nodes.All(func(key string, n *Node) bool {
		keep, ok := targetEdges.Get(key)
		switch {
		case ok:
			n.DisconnectAllExcept(keep)
		case disconnectMissing:
			n.DisconnectAllExcept(keyed.NewKeySet())
		}
		return true
	})
}

// ClassifyNodes groups nodes by the class the projector assigns them.
// Nodes projected to the empty string are skipped. Within each class the
// graph iteration order (ascending key order) is preserved.
func (g *Graph) ClassifyNodes(project func(n *Node) string) *keyed.KeyMap[[]*Node] {
	classes := keyed.NewKeyMap[[]*Node]()
	g.nodes.All(func(_ string, n *Node) bool {
		class := project(n)
		if class == "" {
			return true
		}
		members, _ := classes.Get(class)
		classes.Set(class, append(members, n))
		return true
	})
	return classes
}

// EdgesSnapshot copies the outgoing adjacency into a fresh key-set map and
// returns a read-only view of it. The snapshot is independent of subsequent
// graph mutation.
func (g *Graph) EdgesSnapshot() keyed.MapView {
	snap := keyed.NewKeySetMap()
	g.nodes.All(func(key string, n *Node) bool {
		snap.Set(key, keyed.NewKeySet(n.targets.Keys()...))
		return true
	})
	return snap.View()
}

// FindTaggedNodes returns the nodes whose metadata has any of the given
// tags under tagKey, in ascending key order.
func (g *Graph) FindTaggedNodes(tagKey string, tags ...string) []*Node {
	var out []*Node
	g.nodes.All(func(_ string, n *Node) bool {
		if n.meta.HasAnyTag(tagKey, tags...) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FindTaggedNodeSet returns the keys of the nodes FindTaggedNodes selects.
func (g *Graph) FindTaggedNodeSet(tagKey string, tags ...string) *keyed.KeySet {
	set := keyed.NewKeySet()
	for _, n := range g.FindTaggedNodes(tagKey, tags...) {
		set.Add(n.key)
	}
	return set
}

func (g *Graph) endpoints(source, target string) (*Node, *Node, error) {
	src, ok := g.nodes.Get(source)
	if !ok {
		return nil, nil, errors.New(errors.ErrCodeUnknownEndpoint, "source node %q not found", source)
	}
	dst, ok := g.nodes.Get(target)
	if !ok {
		return nil, nil, errors.New(errors.ErrCodeUnknownEndpoint, "target node %q not found", target)
	}
	return src, dst, nil
}
