// Package observability provides hooks for instrumenting scan generation.
// Callers register hook implementations to collect metrics or traces
// without this package depending on any particular telemetry stack.
package observability

import (
	"context"
	"sync"
	"time"
)

// ScanHooks instruments scan sequence generation.
type ScanHooks interface {
	// OnGenerateStart is called before a scan sequence is generated.
	OnGenerateStart(ctx context.Context, mode string, angles int)

	// OnGenerateComplete is called after generation finishes.
	// pairs is the number of (position, angle) pairs produced.
	OnGenerateComplete(ctx context.Context, mode string, pairs int, duration time.Duration, err error)
}

// CacheHooks instruments cache operations.
type CacheHooks interface {
	// OnCacheHit is called when a cached result is served.
	OnCacheHit(ctx context.Context, key string)

	// OnCacheMiss is called when no cached result exists.
	OnCacheMiss(ctx context.Context, key string)

	// OnCacheSet is called after a result is stored.
	OnCacheSet(ctx context.Context, key string, size int)
}

var (
	mu         sync.RWMutex
	scanHooks  ScanHooks
	cacheHooks CacheHooks
)

// SetScanHooks registers hooks for scan generation. Pass nil to unregister.
func SetScanHooks(h ScanHooks) {
	mu.Lock()
	defer mu.Unlock()
	scanHooks = h
}

// SetCacheHooks registers hooks for cache operations. Pass nil to unregister.
func SetCacheHooks(h CacheHooks) {
	mu.Lock()
	defer mu.Unlock()
	cacheHooks = h
}

// GetScanHooks returns the registered scan hooks, or nil.
func GetScanHooks() ScanHooks {
	mu.RLock()
	defer mu.RUnlock()
	return scanHooks
}

// GetCacheHooks returns the registered cache hooks, or nil.
func GetCacheHooks() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cacheHooks
}

// Reset unregisters all hooks. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	scanHooks = nil
	cacheHooks = nil
}
