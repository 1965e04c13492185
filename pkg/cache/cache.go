// Package cache keeps rendered graph artifacts between runs.
//
// Rendering DOT through Graphviz dominates the pipeline's runtime, and the
// result depends only on the DOT text and the output format. The render
// cache therefore addresses artifacts by both: a hit replays the finished
// SVG or PNG bytes without touching Graphviz. [NoCache] stands in when
// caching is turned off.
package cache

import "context"

// Cache looks up and stores rendered artifacts by output format and DOT
// content.
type Cache interface {
	// Rendered returns the cached artifact for the format/DOT pair.
	// The second result reports a hit.
	Rendered(ctx context.Context, format string, dot []byte) ([]byte, bool, error)

	// Store saves a rendered artifact for later runs.
	Store(ctx context.Context, format string, dot []byte, data []byte) error
}

// NoCache never hits and never stores. It keeps the render path free of
// nil checks when caching is disabled.
type NoCache struct{}

// Rendered always misses.
func (NoCache) Rendered(ctx context.Context, format string, dot []byte) ([]byte, bool, error) {
	return nil, false, nil
}

// Store discards the artifact.
func (NoCache) Store(ctx context.Context, format string, dot []byte, data []byte) error {
	return nil
}

var _ Cache = NoCache{}
