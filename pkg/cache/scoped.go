package cache

// ScopedKeyer wraps a Keyer with a namespace prefix so several tenants
// or projects can share one backend without key collisions.
//
// Example:
//
//	// per-project keys on a shared Redis
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "proj:atlas:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key the
// inner keyer generates. A nil inner falls back to the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SpecKey generates a prefixed spec content key.
func (k *ScopedKeyer) SpecKey(data []byte) string {
	return k.prefix + k.inner.SpecKey(data)
}

// LayoutKey generates a prefixed layout key.
func (k *ScopedKeyer) LayoutKey(specHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(specHash, opts)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
