package cache

// ScopedKeyer wraps a Keyer with a prefix so that several frontends can
// share one backend without reading each other's entries.
//
// Example usage:
//
//	// Entries written by the HTTP server
//	apiKeyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
//
//	// Entries written by the CLI
//	cliKeyer := NewDefaultKeyer()
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

// AnalysisKey generates a prefixed analysis key.
func (k *ScopedKeyer) AnalysisKey(table []int, opts AnalysisKeyOpts) string {
	return k.prefix + k.inner.AnalysisKey(table, opts)
}

// ClassesKey generates a prefixed class listing key.
func (k *ScopedKeyer) ClassesKey(n int) string {
	return k.prefix + k.inner.ClassesKey(n)
}
