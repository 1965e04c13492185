// Package graph implements the attributed directed multigraph at the center
// of graphops: nodes identified by case-insensitive keys, at most one edge
// per ordered node pair, and [Metadata] bags (string properties plus keyed
// tag sets) on the graph, every node and every edge.
//
// # Ownership
//
// A [Graph] exclusively owns its nodes and edges. Each edge is indexed on
// both endpoints - under the target key in the source node's target table
// and under the source key in the target node's source table - and every
// mutation keeps the two sides synchronized. Analyses that need adjacency
// independent of later mutation take a copy via [Graph.EdgesSnapshot].
//
// # Error policy
//
// Mutators fail loudly on invariant violations (duplicate node, duplicate
// edge, unknown endpoint) with coded errors from pkg/errors. Removal
// operations are lenient: missing nodes and edges are silently skipped.
//
// # Quick Start
//
//	g := graph.New()
//	a, _ := g.AddNode("App", nil)
//	g.AddNode("Lib", nil)
//	g.Connect("App", "Lib", nil)
//	a.Metadata().SetProperty("module", "m1")
//	a.Metadata().Tags("").Add("seed")
//
// The package is not safe for concurrent mutation.
package graph
