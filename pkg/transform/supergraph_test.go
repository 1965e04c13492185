package transform

import (
	"testing"

	"github.com/depsight/graphops/pkg/keyed"
)

func TestSuperGraph(t *testing.T) {
	// X = {n1, n2, n3}, Y = {n4, n5}; one intra-X edge, two X->Y, one Y->X.
	g := build(t, [][2]string{
		{"n1", "n2"},
		{"n2", "n4"},
		{"n3", "n4"},
		{"n5", "n1"},
	})
	groups := keyed.NewKeySetMap()
	for _, key := range []string{"n1", "n2", "n3"} {
		groups.AddPair("X", key)
	}
	for _, key := range []string{"n4", "n5"} {
		groups.AddPair("Y", key)
	}
	c, err := NewMapClassifierFromGroups(groups)
	if err != nil {
		t.Fatal(err)
	}

	super, err := SuperGraph(g, c, false)
	if err != nil {
		t.Fatalf("SuperGraph: %v", err)
	}

	if super.NodeCount() != 2 {
		t.Fatalf("super nodes = %d, want 2", super.NodeCount())
	}
	x, _ := super.Node("X")
	if got, _ := x.Metadata().Property(SublabelProperty); got != "(3 nodes)" {
		t.Errorf("X sublabel = %q, want (3 nodes)", got)
	}
	y, _ := super.Node("Y")
	if got, _ := y.Metadata().Property(SublabelProperty); got != "(2 nodes)" {
		t.Errorf("Y sublabel = %q, want (2 nodes)", got)
	}

	if super.EdgeCount() != 2 {
		t.Errorf("super edges = %d, want 2 (duplicates and self-edges suppressed)", super.EdgeCount())
	}
	if e, _ := super.FindEdge("X", "Y"); e == nil {
		t.Error("edge X -> Y missing")
	}
	if e, _ := super.FindEdge("Y", "X"); e == nil {
		t.Error("edge Y -> X missing")
	}
}

func TestSuperGraphAddNodes(t *testing.T) {
	g := build(t, nil, "n1", "n2")
	classes := keyed.NewKeyMap[string]()
	classes.Set("n1", "X")
	classes.Set("n2", "X")

	super, err := SuperGraph(g, NewMapClassifier(classes), true)
	if err != nil {
		t.Fatalf("SuperGraph: %v", err)
	}

	x, _ := super.Node("X")
	members := x.Metadata().Tags(NodeTagKey)
	if !members.Contains("n1") || !members.Contains("n2") {
		t.Errorf("node tags = %v, want underlying keys", members.Values())
	}
}

func TestSuperGraphDropsUnclassifiedTargets(t *testing.T) {
	g := build(t, [][2]string{{"n1", "stray"}})
	classes := keyed.NewKeyMap[string]()
	classes.Set("n1", "X")

	super, err := SuperGraph(g, NewMapClassifier(classes), false)
	if err != nil {
		t.Fatalf("SuperGraph: %v", err)
	}
	if super.NodeCount() != 1 || super.EdgeCount() != 0 {
		t.Errorf("super = %d nodes, %d edges; want 1, 0", super.NodeCount(), super.EdgeCount())
	}
}
