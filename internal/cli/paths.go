package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/depsight/graphops/pkg/graph"
	"github.com/depsight/graphops/pkg/graphio"
)

// graphExt is the conventional extension of graph snapshots.
const graphExt = ".graph.json"

// deriveOutput derives an output path from the input path by swapping the
// ".graph.json" suffix for ext (e.g. ".pure.graph.json", ".dot"). Inputs
// not following the convention get ext appended.
func deriveOutput(input, ext string) string {
	if base, ok := strings.CutSuffix(input, graphExt); ok {
		return base + ext
	}
	return input + ext
}

// outputOr returns the explicit output path when set, otherwise the path
// derived from input.
func outputOr(output, input, ext string) string {
	if output != "" {
		return output
	}
	return deriveOutput(input, ext)
}

// readGraph obtains the command's input graph through the builder seam -
// a file-backed builder here, but commands only ever see graph.Builder -
// and logs the shape of what arrived.
func readGraph(ctx context.Context, path string) (*graph.Graph, error) {
	var builder graph.Builder = graphio.Builder(path)
	g, err := builder.Build(ctx)
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debugf("Read %s: %d nodes, %d edges", path, g.NodeCount(), g.EdgeCount())
	return g, nil
}

// writeGraph stores the snapshot at path and logs the result.
func writeGraph(g *graph.Graph, path string, logger *log.Logger) error {
	if err := graphio.WriteFile(g, path); err != nil {
		return err
	}
	logger.Infof("Wrote %s (%d nodes, %d edges)", path, g.NodeCount(), g.EdgeCount())
	return nil
}
