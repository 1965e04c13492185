package transform

import (
	"fmt"

	"github.com/depsight/graphops/pkg/graph"
	"github.com/depsight/graphops/pkg/keyed"
)

// SublabelProperty carries the underlying node count of a super-node.
const SublabelProperty = "sublabel"

// NodeTagKey is the keyed-tag key under which a super-node lists its
// underlying node keys when requested.
const NodeTagKey = "node"

// SuperGraph builds the quotient graph over a classification: one node per
// class, annotated with the underlying node count, and one edge per pair of
// distinct classes connected by at least one original edge. Unclassified
// nodes and edges to them are dropped. When addNodes is set, each
// super-node lists its underlying node keys under the "node" tag key.
func SuperGraph(g *graph.Graph, c Classifier, addNodes bool) (*graph.Graph, error) {
	snapshot := g.EdgesSnapshot()
	classification := ClassifyAll(c, g.Keys())

	out := graph.New()
	var err error
	classification.All(func(class string, members []string) bool {
		md := graph.NewMetadata()
		md.SetProperty(SublabelProperty, fmt.Sprintf("(%d nodes)", len(members)))
		if addNodes {
			for _, key := range members {
				md.Tags(NodeTagKey).Add(key)
			}
		}
		_, err = out.AddNode(class, md)
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	classification.All(func(class string, members []string) bool {
		for _, key := range members {
			targets := snapshot.Get(key)
			if targets == nil {
				continue
			}
			for _, target := range targets.Values() {
				targetClass := c.Classify(target)
				if targetClass == "" || keyed.Fold(targetClass) == keyed.Fold(class) {
					continue
				}
				if _, err = out.ConnectOrMergeEdge(class, targetClass, nil); err != nil {
					return false
				}
			}
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
