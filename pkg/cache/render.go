package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// RenderCache is a directory of rendered artifacts, one file per
// format/DOT pair. Artifacts are stored as the raw rendered bytes, so a
// hit is the finished file; freshness comes from the file modification
// time rather than stored metadata.
type RenderCache struct {
	dir    string
	maxAge time.Duration // zero or negative means artifacts never expire
}

// NewRenderCache creates a render cache rooted at dir, creating the
// directory if needed. Artifacts older than maxAge are treated as misses
// and removed on access.
func NewRenderCache(dir string, maxAge time.Duration) (*RenderCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &RenderCache{dir: dir, maxAge: maxAge}, nil
}

// Rendered returns the cached artifact for the format/DOT pair, dropping
// it when it has outlived maxAge.
func (c *RenderCache) Rendered(ctx context.Context, format string, dot []byte) ([]byte, bool, error) {
	path := c.artifactPath(format, dot)

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if c.maxAge > 0 && time.Since(info.ModTime()) > c.maxAge {
		_ = os.Remove(path)
		return nil, false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Store saves the rendered artifact under its format/DOT address.
func (c *RenderCache) Store(ctx context.Context, format string, dot []byte, data []byte) error {
	path := c.artifactPath(format, dot)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// artifactPath addresses an artifact as
//
//	<dir>/<format>/<hh>/<rest>.<format>
//
// with the DOT content hash split after two characters (hh is the first
// two hex characters, rest the remaining 62) so no single directory
// collects every artifact.
func (c *RenderCache) artifactPath(format string, dot []byte) string {
	sum := Hash(dot)
	return filepath.Join(c.dir, format, sum[:2], sum[2:]+"."+format)
}

var _ Cache = (*RenderCache)(nil)
