// Package transform rewrites graphs in place: tag-based filtering, edge and
// node pruning, purification (transitive-reduction-like edge removal, plain
// or via the SCC quotient) and quotient construction over a node
// classification (supergraphs).
//
// Every rewrite either completes or leaves the graph unchanged; none of
// them leaves a dangling edge behind.
package transform
