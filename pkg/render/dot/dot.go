package dot

import (
	"html"
	"io"

	"github.com/depsight/graphops/pkg/graph"
	"github.com/depsight/graphops/pkg/keyed"
)

// Options configures graph-to-DOT conversion.
type Options struct {
	// ID is the optional graph identifier.
	ID string
	// Undirected emits edges with -- instead of ->.
	Undirected bool
	// Horizontal sets rankdir=LR so the graph flows left to right.
	Horizontal bool
	// ClusterBy groups nodes sharing this property value into cluster
	// subgraphs. Nodes without the property stay at the top level.
	ClusterBy string
}

// Write converts the graph to DOT. Output is deterministic: nodes in
// ascending key order, per-node edges in target order, clusters in class
// order.
func Write(g *graph.Graph, out io.Writer, opts Options) error {
	w := NewWriter(out)
	w.BeginGraph(opts.ID, !opts.Undirected)
	if opts.Horizontal {
		w.Attr("rankdir", "LR")
	}

	if opts.ClusterBy == "" {
		g.Nodes(func(n *graph.Node) bool {
			writeNode(w, n)
			return true
		})
	} else {
		writeClustered(w, g, opts.ClusterBy)
	}

	g.Nodes(func(n *graph.Node) bool {
		n.Targets(func(targetKey string, e *graph.Edge) bool {
			writeEdge(w, n.Key(), targetKey, e)
			return true
		})
		return true
	})

	w.End()
	return w.Err()
}

func writeClustered(w *Writer, g *graph.Graph, property string) {
	clusters := keyed.NewKeyMap[[]*graph.Node]()
	var loose []*graph.Node
	g.Nodes(func(n *graph.Node) bool {
		class, ok := n.Metadata().Property(property)
		if !ok || class == "" {
			loose = append(loose, n)
			return true
		}
		members, _ := clusters.Get(class)
		clusters.Set(class, append(members, n))
		return true
	})

	clusters.All(func(class string, members []*graph.Node) bool {
		w.BeginCluster(class)
		w.Attr("label", class)
		for _, n := range members {
			writeNode(w, n)
		}
		w.End()
		return true
	})
	for _, n := range loose {
		writeNode(w, n)
	}
}

func writeNode(w *Writer, n *graph.Node) {
	sublabel, _ := n.Metadata().Property("sublabel")
	color, _ := n.Metadata().Property("color")
	if sublabel == "" && color == "" {
		w.Node(n.Key())
		return
	}
	w.BeginNode(n.Key())
	if sublabel != "" {
		w.Property("label", htmlLabel(n.Key(), sublabel))
	}
	if color != "" {
		w.Property("color", color)
	}
	w.End()
}

func writeEdge(w *Writer, from, to string, e *graph.Edge) {
	color, _ := e.Metadata().Property("color")
	label, _ := e.Metadata().Property("label")
	if color == "" && label == "" {
		w.Edge(from, to)
		return
	}
	w.BeginEdge(from, to)
	if label != "" {
		w.Property("label", label)
	}
	if color != "" {
		w.Property("color", color)
	}
	w.End()
}

// htmlLabel renders a label with the sublabel as an extra italic line,
// left aligned. The <...> form makes GraphViz treat it as markup.
func htmlLabel(label, sublabel string) string {
	return "<" + html.EscapeString(label) +
		`<BR ALIGN="LEFT"/><I>` + html.EscapeString(sublabel) + "</I>>"
}
