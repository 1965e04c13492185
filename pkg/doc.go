// Package pkg provides the core libraries of the graphops toolkit.
//
// # Overview
//
// graphops analyzes directed dependency graphs - assemblies depending on
// assemblies, modules on modules - through a small set of composable
// packages:
//
//  1. [keyed] - case-insensitive set/map primitives and read-only views
//  2. [graph] - the attributed multigraph and its mutation operations
//  3. [graphio] - the JSON snapshot format
//  4. [analysis] - adjacency snapshots, reach/domain closures, SCC
//  5. [transform] - purify, prune, filter, supergraph rewrites
//  6. [render] - DOT emission and Graphviz rasterization
//
// # Architecture
//
// The typical data flow through graphops:
//
//	*.graph.json snapshot
//	         ↓
//	    [graphio] (decode)
//	         ↓
//	    [analysis] (closures, components)
//	         ↓
//	    [transform] (purify / filter / supergraph)
//	         ↓
//	    [graphio] or [render] output
//
// The graph builder seam ([graph.Builder]) keeps the probing that produces
// an initial graph out of the core: the engine only ever sees finished
// graphs.
package pkg
