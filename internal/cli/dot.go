package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/depsight/graphops/pkg/cache"
	"github.com/depsight/graphops/pkg/render"
	"github.com/depsight/graphops/pkg/render/dot"
)

// newDotCmd creates the dot command, which emits GraphViz DOT for a graph
// snapshot and optionally renders it to SVG or PNG. Rendered artifacts are
// cached by DOT content hash; --refresh bypasses the cache.
func newDotCmd(cfg config) *cobra.Command {
	var (
		input      string
		output     string
		id         string
		horizontal bool
		undirected bool
		clusterBy  string
		format     string
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Emit GraphViz DOT, optionally rendered to SVG or PNG",
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())
			g, err := readGraph(c.Context(), input)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			opts := dot.Options{
				ID:         id,
				Undirected: undirected,
				Horizontal: horizontal,
				ClusterBy:  clusterBy,
			}
			if err := dot.Write(g, &buf, opts); err != nil {
				return err
			}

			dotPath := outputOr(output, input, ".dot")
			if err := os.WriteFile(dotPath, buf.Bytes(), 0644); err != nil {
				return err
			}
			logger.Infof("Wrote %s", dotPath)

			if format == "" {
				return nil
			}
			return renderArtifact(c.Context(), cfg, buf.Bytes(), input, format, refresh)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input *.graph.json file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (derived from input if empty)")
	cmd.Flags().StringVar(&id, "id", "", "graph identifier in the DOT output")
	cmd.Flags().BoolVar(&horizontal, "horizontal", cfg.Dot.Horizontal, "lay the graph out left to right")
	cmd.Flags().BoolVar(&undirected, "undirected", false, "emit undirected edges")
	cmd.Flags().StringVar(&clusterBy, "cluster-by", "", "group nodes sharing this property into clusters")
	cmd.Flags().StringVar(&format, "render", "", "also render the DOT output (svg or png)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the render cache")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// renderArtifact renders DOT bytes to the requested format, consulting the
// content-hash cache first.
func renderArtifact(ctx context.Context, cfg config, dotText []byte, input, format string, refresh bool) error {
	logger := loggerFromContext(ctx)

	var renderFn func(context.Context, string) ([]byte, error)
	switch format {
	case "svg":
		renderFn = render.SVG
	case "png":
		renderFn = render.PNG
	default:
		return fmt.Errorf("unknown render format %q (want svg or png)", format)
	}

	var store cache.Cache = cache.NoCache{}
	if cfg.Cache.Enabled {
		maxAge := time.Duration(cfg.Cache.TTLDays) * 24 * time.Hour
		rc, err := cache.NewRenderCache(cfg.cacheDir(), maxAge)
		if err != nil {
			logger.Warnf("Render cache disabled: %v", err)
		} else {
			store = rc
		}
	}

	var data []byte
	hit := false
	if !refresh {
		var err error
		if data, hit, err = store.Rendered(ctx, format, dotText); err != nil {
			hit = false
		}
	}

	if !hit {
		prog := startProgress(logger, "render")
		var err error
		data, err = renderFn(ctx, string(dotText))
		if err != nil {
			return err
		}
		prog.done("%s generated", format)
		if err := store.Store(ctx, format, dotText, data); err != nil {
			logger.Debugf("Cache store failed: %v", err)
		}
	} else {
		logger.Debugf("Render cache hit")
	}

	path := deriveOutput(input, "."+format)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	logger.Infof("Wrote %s", path)
	return nil
}
