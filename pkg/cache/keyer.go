package cache

import "fmt"

// Keyer generates cache keys.
type Keyer interface {
	// PatternKey identifies a generated grid.
	PatternKey(opts PatternKeyOpts) string

	// ArtifactKey identifies an encoded output of the grid with hash patternHash.
	ArtifactKey(patternHash string, opts ArtifactKeyOpts) string
}

// PatternKeyOpts holds every option that changes a seeded grid.
type PatternKeyOpts struct {
	Seed       string  `json:"seed"`
	Size       int     `json:"size"`
	Symmetry   string  `json:"symmetry"`
	Scheme     string  `json:"scheme"`
	FillFactor float64 `json:"fill_factor"`
	Color      string  `json:"color,omitempty"`
	ColorBias  int     `json:"color_bias"`
	Grayscale  bool    `json:"grayscale"`
}

// ArtifactKeyOpts holds the options that change an encoded artifact.
type ArtifactKeyOpts struct {
	Format  string `json:"format"`
	Scale   int    `json:"scale"`
	Upscale int    `json:"upscale,omitempty"`
	Quality int    `json:"quality,omitempty"`
}

// DefaultKeyer hashes options into "kind:sha256" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) PatternKey(opts PatternKeyOpts) string {
	return hashKey("pattern", opts)
}

func (DefaultKeyer) ArtifactKey(patternHash string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s", opts.Format), patternHash, opts)
}
