// Package keyed provides case-insensitive string collections used throughout
// the graph engine: [KeySet], [KeyMap], [KeySetMap] and the read-only
// projection type [MapView].
//
// All containers compare keys and members case-insensitively by folding them
// to lower case at the boundary. The spelling of the first insertion is
// preserved and returned by iteration, so output stays faithful to the input
// while lookups ignore case.
//
// Iteration order is always ascending fold order. This is what makes graph
// serialization, DOT emission and SCC traversal deterministic without any
// sorting at the call sites.
//
// # Quick Start
//
//	s := keyed.NewKeySet("B", "a")
//	s.Contains("b") // true
//	s.Values()      // ["a", "B"]
//
//	m := keyed.NewKeySetMap()
//	m.AddPair("app", "LibA")
//	m.AddPair("app", "libb")
//	m.View().Project([]string{"APP"}).Values() // ["LibA", "libb"]
package keyed
