package graph

import (
	"github.com/depsight/graphops/pkg/keyed"
)

// Kind classifies a node by its adjacency shape.
type Kind int

const (
	// KindOther is a node with both incoming and outgoing edges.
	KindOther Kind = iota
	// KindSeed has no incoming edges but at least one outgoing edge.
	KindSeed
	// KindSink has incoming edges but no outgoing edges.
	KindSink
	// KindLoose has neither incoming nor outgoing edges.
	KindLoose
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindSeed:
		return "seed"
	case KindSink:
		return "sink"
	case KindLoose:
		return "loose"
	default:
		return "other"
	}
}

// Node is a vertex owned by a [Graph]. Its incoming edges are indexed by
// source key and its outgoing edges by target key; both tables are kept in
// sync with the opposite endpoint by every mutation.
type Node struct {
	key     string
	meta    *Metadata
	sources *keyed.KeyMap[*Edge] // incoming, by source node key
	targets *keyed.KeyMap[*Edge] // outgoing, by target node key
}

func newNode(key string, meta *Metadata) *Node {
	if meta == nil {
		meta = NewMetadata()
	}
	return &Node{
		key:     key,
		meta:    meta,
		sources: keyed.NewKeyMap[*Edge](),
		targets: keyed.NewKeyMap[*Edge](),
	}
}

// Key returns the node's stable identifier.
func (n *Node) Key() string { return n.key }

// Metadata returns the node's attribute bag.
func (n *Node) Metadata() *Metadata { return n.meta }

// Kind derives the node classification from its current adjacency.
func (n *Node) Kind() Kind {
	hasSources := n.sources.Len() > 0
	hasTargets := n.targets.Len() > 0
	switch {
	case !hasSources && hasTargets:
		return KindSeed
	case hasSources && !hasTargets:
		return KindSink
	case !hasSources && !hasTargets:
		return KindLoose
	default:
		return KindOther
	}
}

// SourceCount returns the number of incoming edges.
func (n *Node) SourceCount() int { return n.sources.Len() }

// TargetCount returns the number of outgoing edges.
func (n *Node) TargetCount() int { return n.targets.Len() }

// SourceKeys returns the keys of nodes with edges into this node,
// in ascending fold order.
func (n *Node) SourceKeys() []string { return n.sources.Keys() }

// TargetKeys returns the keys of nodes this node has edges to,
// in ascending fold order.
func (n *Node) TargetKeys() []string { return n.targets.Keys() }

// SourceEdge returns the incoming edge from the node with the given key.
func (n *Node) SourceEdge(sourceKey string) (*Edge, bool) { return n.sources.Get(sourceKey) }

// TargetEdge returns the outgoing edge to the node with the given key.
func (n *Node) TargetEdge(targetKey string) (*Edge, bool) { return n.targets.Get(targetKey) }

// Sources calls fn for every incoming edge in ascending source-key order.
func (n *Node) Sources(fn func(sourceKey string, e *Edge) bool) { n.sources.All(fn) }

// Targets calls fn for every outgoing edge in ascending target-key order.
func (n *Node) Targets(fn func(targetKey string, e *Edge) bool) { n.targets.All(fn) }

// DisconnectAllExcept removes every outgoing edge whose target key is not
// in keep, updating the target side of each removed edge. Returns the
// removed edges.
func (n *Node) DisconnectAllExcept(keep *keyed.KeySet) []*Edge {
	var removed []*Edge
	for _, targetKey := range n.targets.Keys() {
		if keep != nil && keep.Contains(targetKey) {
			continue
		}
		e, _ := n.targets.Get(targetKey)
		n.targets.Delete(targetKey)
		e.target.sources.Delete(n.key)
		removed = append(removed, e)
	}
	return removed
}

// scrubRemoved drops adjacency entries referring to removed nodes without
// touching the other side (those nodes are already gone from the graph).
func (n *Node) scrubRemoved(removed *keyed.KeySet) {
	for _, key := range n.sources.Keys() {
		if removed.Contains(key) {
			n.sources.Delete(key)
		}
	}
	for _, key := range n.targets.Keys() {
		if removed.Contains(key) {
			n.targets.Delete(key)
		}
	}
}
