package graphio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/depsight/graphops/pkg/errors"
	"github.com/depsight/graphops/pkg/graph"
)

// Unmarshal decodes a JSON snapshot into a new graph.
// Structural problems fail cleanly; no partially-built graph is returned.
func Unmarshal(data []byte) (*graph.Graph, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "graph snapshot is not a JSON object")
	}
	return fromObject(raw)
}

// Read decodes a JSON snapshot from r.
func Read(r io.Reader) (*graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read graph")
	}
	return Unmarshal(data)
}

// ReadFile reads and decodes the snapshot at path.
func ReadFile(path string) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	return Unmarshal(data)
}

func fromObject(raw map[string]any) (*graph.Graph, error) {
	g := graph.New()
	g.Metadata().FillFromObject(raw)

	nodesRaw, ok := raw[graph.FieldNodes].(map[string]any)
	if !ok {
		if _, present := raw[graph.FieldNodes]; present {
			return nil, errors.New(errors.ErrCodeMalformedInput, "%q is not an object", graph.FieldNodes)
		}
		return g, nil
	}

	keys := make([]string, 0, len(nodesRaw))
	for key := range nodesRaw {
		keys = append(keys, key)
	}
	sortedFold(keys)

	// Nodes first so that edges never reference a key that is merely
	// later in the file.
	for _, key := range keys {
		body, ok := nodesRaw[key].(map[string]any)
		if !ok {
			return nil, errors.New(errors.ErrCodeMalformedInput, "node %q is not an object", key)
		}
		md := graph.NewMetadata()
		md.FillFromObject(body)
		if _, err := g.AddNode(key, md); err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "node %q", key)
		}
	}

	for _, key := range keys {
		body := nodesRaw[key].(map[string]any)
		targetsRaw, ok := body[graph.FieldTargets].(map[string]any)
		if !ok {
			continue
		}

		targetKeys := make([]string, 0, len(targetsRaw))
		for targetKey := range targetsRaw {
			targetKeys = append(targetKeys, targetKey)
		}
		sortedFold(targetKeys)

		for _, targetKey := range targetKeys {
			md := graph.NewMetadata()
			if edgeBody, ok := targetsRaw[targetKey].(map[string]any); ok {
				md.FillFromObject(edgeBody)
			}
			if _, err := g.Connect(key, targetKey, md); err != nil {
				return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "edge %q -> %q", key, targetKey)
			}
		}
	}

	return g, nil
}
