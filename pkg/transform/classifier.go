package transform

import (
	"github.com/depsight/graphops/pkg/errors"
	"github.com/depsight/graphops/pkg/graph"
	"github.com/depsight/graphops/pkg/keyed"
)

// Classifier assigns a node key to an equivalence class.
// An empty class means the node is skipped.
type Classifier interface {
	Classify(key string) string
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(key string) string

// Classify calls f.
func (f ClassifierFunc) Classify(key string) string { return f(key) }

// PropertyClassifier classifies nodes by the value of a metadata property.
// Nodes missing the property, or with an empty value, are skipped.
type PropertyClassifier struct {
	g        *graph.Graph
	property string
}

// NewPropertyClassifier creates a classifier reading the given property.
func NewPropertyClassifier(g *graph.Graph, property string) *PropertyClassifier {
	return &PropertyClassifier{g: g, property: property}
}

// Classify returns the node's property value, or "" to skip.
func (c *PropertyClassifier) Classify(key string) string {
	n, ok := c.g.Node(key)
	if !ok {
		return ""
	}
	value, _ := n.Metadata().Property(c.property)
	return value
}

// MapClassifier classifies nodes by an explicit key-to-class mapping.
type MapClassifier struct {
	classes *keyed.KeyMap[string]
}

// NewMapClassifier creates a classifier from a key-to-class mapping.
func NewMapClassifier(classes *keyed.KeyMap[string]) *MapClassifier {
	return &MapClassifier{classes: classes}
}

// NewMapClassifierFromGroups builds a classifier from a class-to-members
// mapping. A key assigned to more than one class is a conflict error.
func NewMapClassifierFromGroups(groups *keyed.KeySetMap) (*MapClassifier, error) {
	classes := keyed.NewKeyMap[string]()
	var err error
	groups.All(func(class string, members *keyed.KeySet) bool {
		for _, key := range members.Values() {
			if existing, ok := classes.Get(key); ok {
				err = errors.New(errors.ErrCodeClassConflict,
					"node %q assigned to both %q and %q", key, existing, class)
				return false
			}
			classes.Set(key, class)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return &MapClassifier{classes: classes}, nil
}

// Classify returns the mapped class, or "" when the key is unmapped.
func (c *MapClassifier) Classify(key string) string {
	class, _ := c.classes.Get(key)
	return class
}

// ClassifyAll groups keys by their class, preserving key order within each
// class. Skipped keys do not appear.
func ClassifyAll(c Classifier, keys []string) *keyed.KeyMap[[]string] {
	out := keyed.NewKeyMap[[]string]()
	for _, key := range keys {
		class := c.Classify(key)
		if class == "" {
			continue
		}
		members, _ := out.Get(class)
		out.Set(class, append(members, key))
	}
	return out
}
