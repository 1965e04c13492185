package graph

import "context"

// Builder fills a graph from an external source. The probing that discovers
// assemblies and their references lives behind this seam; the engine only
// ever sees the finished graph.
type Builder interface {
	Build(ctx context.Context) (*Graph, error)
}

// BuilderFunc adapts a function to the Builder interface.
type BuilderFunc func(ctx context.Context) (*Graph, error)

// Build calls f.
func (f BuilderFunc) Build(ctx context.Context) (*Graph, error) { return f(ctx) }
