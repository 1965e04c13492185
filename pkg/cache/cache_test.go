package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var sampleDot = []byte("digraph { \"A\" -> \"B\" }")

func TestNoCache(t *testing.T) {
	ctx := context.Background()
	c := NoCache{}

	if err := c.Store(ctx, "svg", sampleDot, []byte("<svg/>")); err != nil {
		t.Fatalf("Store: %v", err)
	}
	data, hit, err := c.Rendered(ctx, "svg", sampleDot)
	if err != nil {
		t.Fatalf("Rendered: %v", err)
	}
	if hit || data != nil {
		t.Error("NoCache must never hit")
	}
}

func TestRenderCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewRenderCache(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewRenderCache: %v", err)
	}

	if _, hit, _ := c.Rendered(ctx, "svg", sampleDot); hit {
		t.Error("expected miss before Store")
	}

	if err := c.Store(ctx, "svg", sampleDot, []byte("<svg/>")); err != nil {
		t.Fatalf("Store: %v", err)
	}
	data, hit, err := c.Rendered(ctx, "svg", sampleDot)
	if err != nil || !hit {
		t.Fatalf("Rendered after Store: hit=%v, err=%v", hit, err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("Rendered = %q, want <svg/>", data)
	}
}

func TestRenderCacheKeysByFormatAndContent(t *testing.T) {
	ctx := context.Background()
	c, err := NewRenderCache(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewRenderCache: %v", err)
	}
	if err := c.Store(ctx, "svg", sampleDot, []byte("<svg/>")); err != nil {
		t.Fatalf("Store: %v", err)
	}

	if _, hit, _ := c.Rendered(ctx, "png", sampleDot); hit {
		t.Error("a different format must not hit")
	}
	if _, hit, _ := c.Rendered(ctx, "svg", []byte("digraph {}")); hit {
		t.Error("different DOT content must not hit")
	}
}

func TestRenderCacheExpiry(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewRenderCache(dir, time.Nanosecond)
	if err != nil {
		t.Fatalf("NewRenderCache: %v", err)
	}

	if err := c.Store(ctx, "svg", sampleDot, []byte("<svg/>")); err != nil {
		t.Fatalf("Store: %v", err)
	}
	time.Sleep(time.Millisecond)

	if _, hit, _ := c.Rendered(ctx, "svg", sampleDot); hit {
		t.Error("an artifact older than maxAge must miss")
	}

	// The stale artifact is removed on access, not left behind.
	stale := 0
	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			stale++
		}
		return nil
	})
	if stale != 0 {
		t.Errorf("%d stale artifact files remain, want 0", stale)
	}
}

func TestHash(t *testing.T) {
	if Hash(sampleDot) != Hash(sampleDot) {
		t.Error("Hash must be deterministic")
	}
	if Hash(sampleDot) == Hash([]byte("digraph {}")) {
		t.Error("different inputs must hash differently")
	}
	if len(Hash(sampleDot)) != 64 {
		t.Errorf("Hash length = %d, want 64", len(Hash(sampleDot)))
	}
}
