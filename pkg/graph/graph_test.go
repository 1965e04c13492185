package graph

import (
	"slices"
	"testing"

	"github.com/depsight/graphops/pkg/errors"
	"github.com/depsight/graphops/pkg/keyed"
)

// build creates a graph from an edge list, adding nodes on first mention.
func build(t *testing.T, edges [][2]string, extraNodes ...string) *Graph {
	t.Helper()
	g := New()
	add := func(key string) {
		if !g.HasNode(key) {
			if _, err := g.AddNode(key, nil); err != nil {
				t.Fatalf("AddNode(%s): %v", key, err)
			}
		}
	}
	for _, key := range extraNodes {
		add(key)
	}
	for _, e := range edges {
		add(e[0])
		add(e[1])
		if _, err := g.Connect(e[0], e[1], nil); err != nil {
			t.Fatalf("Connect(%s, %s): %v", e[0], e[1], err)
		}
	}
	return g
}

// checkConsistency verifies that every edge is present on both endpoints
// and references only live nodes.
func checkConsistency(t *testing.T, g *Graph) {
	t.Helper()
	g.Nodes(func(n *Node) bool {
		n.Targets(func(targetKey string, e *Edge) bool {
			target, ok := g.Node(targetKey)
			if !ok {
				t.Errorf("node %s has dangling target %s", n.Key(), targetKey)
				return true
			}
			if back, ok := target.SourceEdge(n.Key()); !ok || back != e {
				t.Errorf("edge %s->%s missing from target's sources", n.Key(), targetKey)
			}
			return true
		})
		n.Sources(func(sourceKey string, e *Edge) bool {
			source, ok := g.Node(sourceKey)
			if !ok {
				t.Errorf("node %s has dangling source %s", n.Key(), sourceKey)
				return true
			}
			if fwd, ok := source.TargetEdge(n.Key()); !ok || fwd != e {
				t.Errorf("edge %s->%s missing from source's targets", sourceKey, n.Key())
			}
			return true
		})
		return true
	})
}

func TestAddNodeDuplicate(t *testing.T) {
	g := New()
	g.AddNode("A", nil)

	_, err := g.AddNode("a", nil)
	if !errors.Is(err, errors.ErrCodeDuplicateNode) {
		t.Errorf("duplicate key with different casing should fail, got %v", err)
	}
}

func TestConnect(t *testing.T) {
	g := build(t, [][2]string{{"A", "B"}})
	checkConsistency(t, g)

	if _, err := g.Connect("A", "B", nil); !errors.Is(err, errors.ErrCodeDuplicateEdge) {
		t.Errorf("duplicate edge should fail, got %v", err)
	}
	if _, err := g.Connect("A", "missing", nil); !errors.Is(err, errors.ErrCodeUnknownEndpoint) {
		t.Errorf("missing endpoint should fail, got %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1 (failed connects must not mutate)", g.EdgeCount())
	}
}

func TestConnectSelfEdge(t *testing.T) {
	g := build(t, nil, "A")

	if _, err := g.Connect("A", "A", nil); err != nil {
		t.Fatalf("self-edge should be permitted: %v", err)
	}
	if _, err := g.Connect("A", "A", nil); !errors.Is(err, errors.ErrCodeDuplicateEdge) {
		t.Errorf("second self-edge should fail, got %v", err)
	}
	checkConsistency(t, g)
}

func TestConnectOrMergeEdge(t *testing.T) {
	g := build(t, [][2]string{{"A", "B"}})
	first, _ := g.FindEdge("A", "B")
	first.Metadata().SetProperty("color", "blue")

	md := NewMetadata()
	md.SetProperty("color", "red")
	md.Tags("").Add("extra")
	e, err := g.ConnectOrMergeEdge("A", "B", md)
	if err != nil {
		t.Fatalf("ConnectOrMergeEdge: %v", err)
	}
	if e != first {
		t.Error("merge should reuse the existing edge")
	}
	if got, _ := e.Metadata().Property("color"); got != "red" {
		t.Errorf("merged color = %q, want red", got)
	}
	if !e.Metadata().Tags("").Contains("extra") {
		t.Error("merge should union tags")
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestFindEdge(t *testing.T) {
	g := build(t, [][2]string{{"A", "B"}})

	if e, err := g.FindEdge("A", "B"); err != nil || e == nil {
		t.Errorf("FindEdge(A, B) = %v, %v; want edge", e, err)
	}
	if e, err := g.FindEdge("B", "A"); err != nil || e != nil {
		t.Errorf("FindEdge(B, A) = %v, %v; want nil, nil", e, err)
	}
	if _, err := g.FindEdge("A", "missing"); !errors.Is(err, errors.ErrCodeUnknownEndpoint) {
		t.Errorf("missing endpoint should fail, got %v", err)
	}
}

func TestDisconnect(t *testing.T) {
	g := build(t, [][2]string{{"A", "B"}})

	if e := g.Disconnect("A", "B"); e == nil {
		t.Fatal("Disconnect should return the removed edge")
	}
	if e := g.Disconnect("A", "B"); e != nil {
		t.Error("second Disconnect should return nil")
	}
	if e := g.Disconnect("missing", "B"); e != nil {
		t.Error("Disconnect with missing node should return nil, not fail")
	}
	checkConsistency(t, g)
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}

func TestDisconnectAll(t *testing.T) {
	g := build(t, [][2]string{{"A", "C"}, {"B", "C"}, {"C", "D"}})

	if removed := g.DisconnectAllSources("C"); len(removed) != 2 {
		t.Errorf("DisconnectAllSources removed %d edges, want 2", len(removed))
	}
	if removed := g.DisconnectAllTargets("C"); len(removed) != 1 {
		t.Errorf("DisconnectAllTargets removed %d edges, want 1", len(removed))
	}
	if removed := g.DisconnectAllSources("missing"); removed != nil {
		t.Error("missing node should be a no-op")
	}
	checkConsistency(t, g)
}

func TestDisconnectAllExcept(t *testing.T) {
	g := build(t, [][2]string{{"A", "B"}, {"A", "C"}, {"A", "D"}})
	n, _ := g.Node("A")

	removed := n.DisconnectAllExcept(keyed.NewKeySet("c"))

	if len(removed) != 2 {
		t.Errorf("removed %d edges, want 2", len(removed))
	}
	if got := n.TargetKeys(); !slices.Equal(got, []string{"C"}) {
		t.Errorf("remaining targets = %v, want [C]", got)
	}
	for _, key := range []string{"B", "D"} {
		other, _ := g.Node(key)
		if other.SourceCount() != 0 {
			t.Errorf("node %s should have A removed from its sources", key)
		}
	}
	checkConsistency(t, g)
}

func TestRemoveNodes(t *testing.T) {
	g := build(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"B", "D"}})

	g.RemoveNodes(keyed.NewKeySet("B", "missing"))

	if g.HasNode("B") {
		t.Error("B should be gone")
	}
	g.Nodes(func(n *Node) bool {
		if slices.Contains(n.SourceKeys(), "B") || slices.Contains(n.TargetKeys(), "B") {
			t.Errorf("node %s still references removed node B", n.Key())
		}
		return true
	})
	checkConsistency(t, g)
	if g.EdgeCount() != 1 { // only C->A survives
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestRemoveOtherNodes(t *testing.T) {
	g := build(t, [][2]string{{"A", "B"}, {"B", "C"}})

	g.RemoveOtherNodes(keyed.NewKeySet("a", "b"))

	if got := g.Keys(); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("Keys() = %v, want [A B]", got)
	}
	checkConsistency(t, g)
}

func TestDisconnectTargetsExcept(t *testing.T) {
	tests := []struct {
		name              string
		disconnectMissing bool
		wantEdgesB        []string
	}{
		{"MissingUntouched", false, []string{"C"}},
		{"MissingDisconnected", true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, [][2]string{{"A", "B"}, {"A", "C"}, {"B", "C"}})
			keep := keyed.NewKeySetMap()
			keep.Set("A", keyed.NewKeySet("B"))
			// B is absent from the map.

			g.DisconnectTargetsExcept(keep, tt.disconnectMissing)

			a, _ := g.Node("A")
			if got := a.TargetKeys(); !slices.Equal(got, []string{"B"}) {
				t.Errorf("A targets = %v, want [B]", got)
			}
			b, _ := g.Node("B")
			if got := b.TargetKeys(); !slices.Equal(got, tt.wantEdgesB) {
				t.Errorf("B targets = %v, want %v", got, tt.wantEdgesB)
			}
			checkConsistency(t, g)
		})
	}
}

func TestNodeKind(t *testing.T) {
	g := build(t, [][2]string{{"A", "B"}, {"B", "C"}}, "Loose")

	wants := map[string]Kind{"A": KindSeed, "B": KindOther, "C": KindSink, "Loose": KindLoose}
	for key, want := range wants {
		n, _ := g.Node(key)
		if got := n.Kind(); got != want {
			t.Errorf("Kind(%s) = %v, want %v", key, got, want)
		}
	}
}

func TestClassifyNodes(t *testing.T) {
	g := build(t, nil, "a1", "a2", "b1", "skip")
	for _, key := range []string{"a1", "a2"} {
		n, _ := g.Node(key)
		n.Metadata().SetProperty("class", "A")
	}
	n, _ := g.Node("b1")
	n.Metadata().SetProperty("class", "B")

	classes := g.ClassifyNodes(func(n *Node) string {
		class, _ := n.Metadata().Property("class")
		return class
	})

	if classes.Len() != 2 {
		t.Fatalf("classes = %d, want 2", classes.Len())
	}
	a, _ := classes.Get("A")
	if len(a) != 2 || a[0].Key() != "a1" || a[1].Key() != "a2" {
		t.Errorf("class A members out of order: %v", keysOf(a))
	}
}

func keysOf(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Key()
	}
	return out
}

func TestEdgesSnapshotIndependent(t *testing.T) {
	g := build(t, [][2]string{{"A", "B"}, {"A", "C"}})

	snap := g.EdgesSnapshot()
	g.Disconnect("A", "B")
	g.Connect("B", "C", nil)

	a := snap.Get("A")
	if a == nil || !a.Contains("B") {
		t.Error("snapshot should still contain A->B after live mutation")
	}
	b := snap.Get("B")
	if b == nil || b.Len() != 0 {
		t.Error("snapshot should not see the later B->C edge")
	}
}

func TestFindTaggedNodes(t *testing.T) {
	g := build(t, nil, "A", "B", "C")
	a, _ := g.Node("A")
	a.Metadata().Tags("").Add("drop")
	b, _ := g.Node("B")
	b.Metadata().Tags("group").Add("drop")

	unkeyed := g.FindTaggedNodes(UnkeyedTagKey, "DROP")
	if len(unkeyed) != 1 || unkeyed[0].Key() != "A" {
		t.Errorf("unkeyed match = %v, want [A]", keysOf(unkeyed))
	}
	grouped := g.FindTaggedNodeSet("group", "drop")
	if !grouped.Contains("B") || grouped.Len() != 1 {
		t.Errorf("keyed match = %v, want [B]", grouped.Values())
	}
}
