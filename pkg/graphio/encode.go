package graphio

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/depsight/graphops/pkg/errors"
	"github.com/depsight/graphops/pkg/graph"
	"github.com/depsight/graphops/pkg/keyed"
)

// Marshal encodes the graph into the JSON snapshot format.
func Marshal(g *graph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes the graph as JSON to w, ending with a single newline.
func Write(g *graph.Graph, w io.Writer) error {
	fields := []field{{name: graph.FieldNodes, value: renderNodes(g, "")}}
	fields = append(fields, metadataFields(g.Metadata(), "")...)

	if _, err := io.WriteString(w, renderObject(fields, "")+"\n"); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write graph")
	}
	return nil
}

// WriteFile writes the graph to path, replacing any existing file
// atomically: the snapshot is written to a unique temporary sibling first
// and renamed over the target only when complete.
func WriteFile(g *graph.Graph, path string) error {
	data, err := Marshal(g)
	if err != nil {
		return err
	}
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeIO, err, "replace %s", path)
	}
	return nil
}

// field is a rendered JSON object member. Values are pre-rendered with
// their indentation already applied, so emission is a straight join.
type field struct {
	name  string
	value string
}

func renderObject(fields []field, indent string) string {
	if len(fields) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for i, f := range fields {
		b.WriteString(indent + "  ")
		b.WriteString(quote(f.name))
		b.WriteString(": ")
		b.WriteString(f.value)
		if i < len(fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(indent + "}")
	return b.String()
}

func renderNodes(g *graph.Graph, indent string) string {
	inner := indent + "  "
	var fields []field
	g.Nodes(func(n *graph.Node) bool {
		fields = append(fields, field{name: n.Key(), value: renderNode(n, inner+"  ")})
		return true
	})
	return renderObject(fields, inner)
}

func renderNode(n *graph.Node, indent string) string {
	fields := metadataFields(n.Metadata(), indent)

	var targets []field
	n.Targets(func(targetKey string, e *graph.Edge) bool {
		targets = append(targets, field{
			name:  targetKey,
			value: renderObject(metadataFields(e.Metadata(), indent+"    "), indent+"    "),
		})
		return true
	})
	if len(targets) > 0 {
		fields = append(fields, field{name: graph.FieldTargets, value: renderObject(targets, indent+"  ")})
	}
	return renderObject(fields, indent)
}

// metadataFields renders a metadata bag as object members: properties
// sorted first, then the unkeyed "tags" array, then the "keytags" object.
// Empty tag sets are omitted; one-element keyed sets collapse to a string.
func metadataFields(md *graph.Metadata, indent string) []field {
	var fields []field

	props := md.Properties()
	for _, key := range props.Keys() {
		if reserved(key) {
			continue
		}
		value, _ := props.Get(key)
		fields = append(fields, field{name: key, value: quote(value)})
	}

	if unkeyed, ok := md.TryTags(graph.UnkeyedTagKey); ok {
		fields = append(fields, field{name: graph.FieldTags, value: renderStrings(unkeyed.Values())})
	}

	var keytags []field
	md.KeyedTags().All(func(key string, set *keyed.KeySet) bool {
		if key == graph.UnkeyedTagKey || set.Len() == 0 {
			return true
		}
		values := set.Values()
		if len(values) == 1 {
			keytags = append(keytags, field{name: key, value: quote(values[0])})
		} else {
			keytags = append(keytags, field{name: key, value: renderStrings(values)})
		}
		return true
	})
	if len(keytags) > 0 {
		fields = append(fields, field{name: graph.FieldKeyTags, value: renderObject(keytags, indent+"  ")})
	}

	return fields
}

func renderStrings(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quote(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func quote(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}

func reserved(key string) bool {
	switch keyed.Fold(key) {
	case graph.FieldNodes, graph.FieldTags, graph.FieldKeyTags, graph.FieldKey, graph.FieldTargets:
		return true
	}
	return false
}

// sortedFold sorts keys in ascending case-insensitive order.
func sortedFold(keys []string) []string {
	sort.Slice(keys, func(i, j int) bool {
		return keyed.Fold(keys[i]) < keyed.Fold(keys[j])
	})
	return keys
}
