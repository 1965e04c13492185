// Package graphio reads and writes the JSON snapshot format for graphs.
//
// The format is a single JSON object: a "nodes" object keyed by node key,
// with the graph's own properties and tags as sibling fields. Each node
// object carries its properties, tags and a "targets" object of edge
// objects. See the package tests for a complete example.
//
// Output is deterministic: nodes and per-node targets are emitted in
// ascending case-insensitive key order, properties sorted, tag arrays
// sorted, and the file ends with a single trailing newline. A keyed tag set
// with exactly one element collapses to a bare string.
//
// On input, unreserved string fields become properties and non-string
// scalars are skipped silently; structural problems (non-object document,
// an edge referencing a missing node) fail the load cleanly with no partial
// state.
//
// # Quick Start
//
//	g, err := graphio.ReadFile("app.graph.json")
//	if err != nil { ... }
//	// transform g
//	err = graphio.WriteFile(g, "app.pure.graph.json")
package graphio
