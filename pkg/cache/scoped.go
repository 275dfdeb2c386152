package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// The HTTP server uses this to keep results generated for different
// API versions from colliding in a shared cache directory.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ScanKey generates a prefixed key for a scan parameter tuple.
func (k *ScopedKeyer) ScanKey(params any) string {
	return k.prefix + k.inner.ScanKey(params)
}
