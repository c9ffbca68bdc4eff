package cache

// Keyer generates cache keys for the render pipeline stages.
type Keyer interface {
	// LayoutKey identifies a measured layout: the definition hash plus
	// everything that influences measurement.
	LayoutKey(defHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies a rendered artifact derived from a layout.
	ArtifactKey(defHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the measurement inputs that affect layout results.
type LayoutKeyOpts struct {
	MetricsHash string
	MaxWidth    int
	MaxHeight   int
}

// ArtifactKeyOpts are the render inputs that affect artifact bytes.
type ArtifactKeyOpts struct {
	Format      string
	MetricsHash string
}

// DefaultKeyer generates hash-based cache keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(defHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", defHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(defHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", defHash, opts)
}
