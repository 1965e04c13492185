// Package dot emits GraphViz DOT text through a scoped writer, plus a
// deterministic converter from graphs to DOT.
//
// The writer tracks a stack of open scopes (graph, subgraph, cluster, node
// and edge attribute blocks) and emits the matching terminator at the
// correct indentation when a scope closes. Attribute values are quoted
// unless they are HTML-like (first byte '<', last byte '>'), which GraphViz
// treats as markup labels.
package dot

import (
	"fmt"
	"io"
	"strings"
)

// Writer emits DOT syntax with scope-tracked indentation.
// The zero value is not usable - use NewWriter. The first error encountered
// sticks; Err returns it and later calls are no-ops.
type Writer struct {
	w        io.Writer
	scopes   []string // pending terminators, innermost last
	directed bool
	err      error
}

// NewWriter creates a writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first write error, if any.
func (w *Writer) Err() error { return w.err }

// BeginGraph opens the top-level graph scope. The id may be empty.
func (w *Writer) BeginGraph(id string, directed bool) {
	w.directed = directed
	keyword := "graph"
	if directed {
		keyword = "digraph"
	}
	if id == "" {
		w.line("%s {", keyword)
	} else {
		w.line("%s %s {", keyword, quoteID(id))
	}
	w.push("}")
}

// BeginSubgraph opens a subgraph scope. An empty id opens an anonymous
// subgraph, useful for same-rank groups. Ids starting with "cluster"
// acquire cluster semantics in GraphViz.
func (w *Writer) BeginSubgraph(id string) {
	if id == "" {
		w.line("{")
	} else {
		w.line("subgraph %s {", quoteID(id))
	}
	w.push("}")
}

// BeginCluster opens a subgraph whose id carries the "cluster" prefix.
func (w *Writer) BeginCluster(id string) {
	w.BeginSubgraph("cluster_" + id)
}

// Attr emits a scope-level attribute (e.g. rankdir, label).
func (w *Writer) Attr(name, value string) {
	w.line("%s=%s", name, quoteValue(value))
}

// BeginNode opens a node attribute block.
func (w *Writer) BeginNode(id string) {
	w.line("%s [", quoteID(id))
	w.push("]")
}

// BeginEdge opens an edge attribute block, using -> or -- per the
// top-level graph's direction.
func (w *Writer) BeginEdge(from, to string) {
	op := "--"
	if w.directed {
		op = "->"
	}
	w.line("%s %s %s [", quoteID(from), op, quoteID(to))
	w.push("]")
}

// Property emits one attribute inside an open node or edge block.
func (w *Writer) Property(name, value string) {
	w.line("%s=%s", name, quoteValue(value))
}

// Node emits a node without attributes.
func (w *Writer) Node(id string) {
	w.line("%s", quoteID(id))
}

// Edge emits an edge without attributes.
func (w *Writer) Edge(from, to string) {
	op := "--"
	if w.directed {
		op = "->"
	}
	w.line("%s %s %s", quoteID(from), op, quoteID(to))
}

// End closes the innermost open scope, emitting its terminator.
func (w *Writer) End() {
	if len(w.scopes) == 0 {
		return
	}
	terminator := w.scopes[len(w.scopes)-1]
	w.scopes = w.scopes[:len(w.scopes)-1]
	w.line("%s", terminator)
}

func (w *Writer) push(terminator string) {
	w.scopes = append(w.scopes, terminator)
}

func (w *Writer) line(format string, args ...any) {
	if w.err != nil {
		return
	}
	indent := strings.Repeat("  ", len(w.scopes))
	_, w.err = fmt.Fprintf(w.w, "%s"+format+"\n", append([]any{indent}, args...)...)
}

// quoteValue quotes an attribute value unless it is an HTML-like label.
func quoteValue(v string) string {
	if strings.HasPrefix(v, "<") && strings.HasSuffix(v, ">") {
		return v
	}
	return quoteID(v)
}

func quoteID(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `\"`) + `"`
}
