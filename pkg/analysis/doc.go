// Package analysis computes closures and strongly-connected components over
// a snapshot of a graph's adjacency.
//
// An [Analyzer] copies the node set and both edge directions out of the
// graph at construction time, so it is unaffected by later mutation and
// never mutates the graph itself. On top of the snapshot it offers:
//
//   - Reach and domain power maps: for every node, the set of nodes
//     transitively reachable from it (or reaching it), excluding itself.
//     Cycles either fail with an error naming the traversal chain, or are
//     cut and recorded into a caller-provided sink.
//   - Tarjan's strongly-connected components in forward topological order
//     of the quotient DAG, plus construction of that quotient as a graph.
//
// An analyzer caches its reach and domain maps on first successful
// computation. It is not safe for concurrent use while those caches are
// being filled.
package analysis
