package cache

// ScopedKeyer prefixes every key of an inner Keyer, so several servers or
// tenants can share one backend without colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "randpix:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner uses DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

func (k *ScopedKeyer) PatternKey(opts PatternKeyOpts) string {
	return k.prefix + k.inner.PatternKey(opts)
}

func (k *ScopedKeyer) ArtifactKey(patternHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(patternHash, opts)
}
