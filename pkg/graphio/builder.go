package graphio

import (
	"context"

	"github.com/depsight/graphops/pkg/graph"
)

// Builder returns a [graph.Builder] that loads the snapshot at path on
// each Build call. The CLI feeds every command through this seam, so an
// alternative graph source - a probe, a generator - can slot in without
// touching the commands.
func Builder(path string) graph.Builder {
	return graph.BuilderFunc(func(ctx context.Context) (*graph.Graph, error) {
		return ReadFile(path)
	})
}
