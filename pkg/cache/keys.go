package cache

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey identifies one rendered output format.
	ArtifactKey(defHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the inputs besides the definition that change a
// rendered artifact.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Seed        uint64  `json:"seed"`
	Style       string  `json:"style,omitempty"`
	Shape       string  `json:"shape,omitempty"`
	Title       string  `json:"title,omitempty"`
	NoLabels    bool    `json:"no_labels,omitempty"`
	RingLabels  bool    `json:"ring_labels,omitempty"`
	Interactive bool    `json:"interactive,omitempty"`
	Responsive  bool    `json:"responsive,omitempty"`
	Scale       float64 `json:"scale,omitempty"`
}

// DefaultKeyer produces keys of the form "kind:sha256".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(defHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, defHash, opts)
}
