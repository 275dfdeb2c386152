package observability

import (
	"context"
	"testing"
	"time"
)

type recordingScanHooks struct {
	starts    int
	completes int
	lastMode  string
	lastPairs int
	lastErr   error
}

func (r *recordingScanHooks) OnGenerateStart(ctx context.Context, mode string, angles int) {
	r.starts++
	r.lastMode = mode
}

func (r *recordingScanHooks) OnGenerateComplete(ctx context.Context, mode string, pairs int, duration time.Duration, err error) {
	r.completes++
	r.lastPairs = pairs
	r.lastErr = err
}

func TestScanHooksRegistry(t *testing.T) {
	defer Reset()

	if GetScanHooks() != nil {
		t.Fatal("expected no hooks registered initially")
	}

	rec := &recordingScanHooks{}
	SetScanHooks(rec)

	h := GetScanHooks()
	if h == nil {
		t.Fatal("expected hooks after SetScanHooks")
	}

	ctx := context.Background()
	h.OnGenerateStart(ctx, "spiral", 41)
	h.OnGenerateComplete(ctx, "spiral", 41, time.Millisecond, nil)

	if rec.starts != 1 || rec.completes != 1 {
		t.Errorf("starts=%d completes=%d, want 1/1", rec.starts, rec.completes)
	}
	if rec.lastMode != "spiral" || rec.lastPairs != 41 {
		t.Errorf("mode=%q pairs=%d", rec.lastMode, rec.lastPairs)
	}

	SetScanHooks(nil)
	if GetScanHooks() != nil {
		t.Error("expected nil after unregister")
	}
}

type countingCacheHooks struct {
	hits, misses, sets int
}

func (c *countingCacheHooks) OnCacheHit(ctx context.Context, key string)       { c.hits++ }
func (c *countingCacheHooks) OnCacheMiss(ctx context.Context, key string)      { c.misses++ }
func (c *countingCacheHooks) OnCacheSet(ctx context.Context, key string, n int) { c.sets++ }

func TestCacheHooksRegistry(t *testing.T) {
	defer Reset()

	rec := &countingCacheHooks{}
	SetCacheHooks(rec)

	ctx := context.Background()
	h := GetCacheHooks()
	h.OnCacheMiss(ctx, "k")
	h.OnCacheSet(ctx, "k", 100)
	h.OnCacheHit(ctx, "k")

	if rec.hits != 1 || rec.misses != 1 || rec.sets != 1 {
		t.Errorf("hits=%d misses=%d sets=%d, want 1/1/1", rec.hits, rec.misses, rec.sets)
	}
}

func TestReset(t *testing.T) {
	SetScanHooks(&recordingScanHooks{})
	SetCacheHooks(&countingCacheHooks{})
	Reset()

	if GetScanHooks() != nil || GetCacheHooks() != nil {
		t.Error("Reset should clear all hooks")
	}
}
