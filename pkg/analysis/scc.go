package analysis

import (
	"fmt"
	"strconv"

	"github.com/depsight/graphops/pkg/graph"
	"github.com/depsight/graphops/pkg/keyed"
)

// DefaultComponentPrefix is the name prefix used for components when the
// caller does not supply one.
const DefaultComponentPrefix = "SCC-"

// SCCIndexProperty is the node property carrying a component's index in
// the quotient graph built by [Components.ComponentGraph].
const SCCIndexProperty = "sccindex"

// Component is one strongly-connected component: a maximal set of nodes
// that all reach each other. Index is the position in forward topological
// order of the quotient DAG.
type Component struct {
	index int
	name  string
	nodes []string
}

// Index returns the component's position in forward topological order.
func (c *Component) Index() int { return c.index }

// Name returns the component's assigned name.
func (c *Component) Name() string { return c.name }

// Nodes returns the member node keys in ascending fold order.
func (c *Component) Nodes() []string { return c.nodes }

// Size returns the number of member nodes.
func (c *Component) Size() int { return len(c.nodes) }

// Components is the result of an SCC run: the components in forward
// topological order with name and per-node lookup indexes.
type Components struct {
	ordered []*Component
	byName  *keyed.KeyMap[*Component]
	byNode  *keyed.KeyMap[*Component]
}

// All returns the components in forward topological order: for every edge
// (u, v) between distinct components, u's component comes first.
func (cs *Components) All() []*Component { return cs.ordered }

// Len returns the number of components.
func (cs *Components) Len() int { return len(cs.ordered) }

// ByName returns the component with the given name.
func (cs *Components) ByName(name string) (*Component, bool) { return cs.byName.Get(name) }

// ForNode returns the component containing the given node key.
func (cs *Components) ForNode(key string) (*Component, bool) { return cs.byNode.Get(key) }

// Components runs Tarjan's algorithm over the snapshot's outgoing
// adjacency. Components are named prefix plus their zero-padded index;
// with an empty prefix the name is the first member key, suffixed "+N-1"
// for components with more than one member.
func (a *Analyzer) Components(prefix string) *Components {
	t := &tarjan{
		edges: a.targetEdges,
		index: keyed.NewKeyMap[int](),
		low:   keyed.NewKeyMap[int](),
		on:    keyed.NewKeySet(),
	}
	for _, key := range a.nodes.Values() {
		if !t.index.Has(key) {
			t.strongConnect(key)
		}
	}

	// Tarjan emits a component only after everything it reaches, so
	// reversing the emission order yields forward topological order.
	ordered := make([]*Component, len(t.emitted))
	for i := range t.emitted {
		ordered[i] = t.emitted[len(t.emitted)-1-i]
	}

	cs := &Components{
		ordered: ordered,
		byName:  keyed.NewKeyMap[*Component](),
		byNode:  keyed.NewKeyMap[*Component](),
	}
	width := nameWidth(len(ordered))
	for i, c := range ordered {
		c.index = i
		c.name = componentName(prefix, i, width, c.nodes)
		cs.byName.Set(c.name, c)
		for _, key := range c.nodes {
			cs.byNode.Set(key, c)
		}
	}
	return cs
}

// ComponentGraph materializes the quotient DAG over source: one node per
// component carrying its index as a property, and one edge per pair of
// distinct components connected by at least one source edge. Source nodes
// outside the component map are tolerated; their edges are ignored.
func (cs *Components) ComponentGraph(source *graph.Graph) (*graph.Graph, error) {
	out := graph.New()
	for _, c := range cs.ordered {
		md := graph.NewMetadata()
		md.SetProperty(SCCIndexProperty, strconv.Itoa(c.index))
		if _, err := out.AddNode(c.name, md); err != nil {
			return nil, err
		}
	}

	var err error
	source.Nodes(func(n *graph.Node) bool {
		from, ok := cs.byNode.Get(n.Key())
		if !ok {
			return true
		}
		for _, targetKey := range n.TargetKeys() {
			to, ok := cs.byNode.Get(targetKey)
			if !ok || to == from {
				continue
			}
			if _, err = out.ConnectOrMergeEdge(from.name, to.name, nil); err != nil {
				return false
			}
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type tarjan struct {
	edges   *keyed.KeySetMap
	index   *keyed.KeyMap[int]
	low     *keyed.KeyMap[int]
	on      *keyed.KeySet
	stack   []string
	next    int
	emitted []*Component
}

func (t *tarjan) strongConnect(v string) {
	t.index.Set(v, t.next)
	t.low.Set(v, t.next)
	t.next++
	t.stack = append(t.stack, v)
	t.on.Add(v)

	if targets, ok := t.edges.Get(v); ok {
		for _, w := range targets.Values() {
			if !t.index.Has(w) {
				t.strongConnect(w)
				t.setLow(v, t.lowOf(w))
			} else if t.on.Contains(w) {
				wIndex, _ := t.index.Get(w)
				t.setLow(v, wIndex)
			}
		}
	}

	vIndex, _ := t.index.Get(v)
	if t.lowOf(v) != vIndex {
		return
	}

	// v roots a component: pop the stack up to and including v.
	var members []string
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.on.Remove(w)
		members = append(members, w)
		if keyed.Fold(w) == keyed.Fold(v) {
			break
		}
	}
	t.emitted = append(t.emitted, &Component{nodes: keyed.NewKeySet(members...).Values()})
}

func (t *tarjan) lowOf(v string) int {
	low, _ := t.low.Get(v)
	return low
}

func (t *tarjan) setLow(v string, candidate int) {
	if candidate < t.lowOf(v) {
		t.low.Set(v, candidate)
	}
}

func nameWidth(count int) int {
	switch {
	case count <= 999:
		return 3
	case count <= 9999:
		return 4
	default:
		return 5
	}
}

func componentName(prefix string, index, width int, nodes []string) string {
	if prefix == "" {
		name := nodes[0]
		if len(nodes) > 1 {
			name = fmt.Sprintf("%s+%d", name, len(nodes)-1)
		}
		return name
	}
	return fmt.Sprintf("%s%0*d", prefix, width, index)
}
