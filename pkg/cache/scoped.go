package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation. This is
// useful when several deployments share one Redis and their artifacts must
// not collide.
//
// Example usage:
//
//	// Per-environment keys on a shared server
//	stagingKeyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
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

// TreeKey generates a prefixed key for tree identity caching.
func (k *ScopedKeyer) TreeKey(canonical []byte) string {
	return k.prefix + k.inner.TreeKey(canonical)
}

// RenderKey generates a prefixed key for rendered artifact caching.
func (k *ScopedKeyer) RenderKey(treeHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(treeHash, opts)
}
