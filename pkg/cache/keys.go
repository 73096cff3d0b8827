package cache

// Keyer generates cache keys for rendered artifacts.
type Keyer interface {
	// ArtifactKey generates a key for a rendered PDF artifact.
	ArtifactKey(contentHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the rendering parameters that affect artifact bytes.
// Two renders with the same content hash and the same opts produce
// byte-identical output, so they share a cache entry.
type ArtifactKeyOpts struct {
	PageWidth  int
	PageHeight int
}

// DefaultKeyer generates hashed, prefixed cache keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered PDF artifact.
func (k *DefaultKeyer) ArtifactKey(contentHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", contentHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
