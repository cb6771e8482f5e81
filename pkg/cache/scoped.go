package cache

// ScopedKeyer wraps a Keyer with a prefix so that tenants of a shared
// backend, such as one Redis server behind several API instances, do not
// see each other's entries.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "team:platform:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means
// [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArtifactKey(defHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(defHash, opts)
}
