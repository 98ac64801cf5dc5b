package render

import (
	"github.com/matzehuels/randpix/pkg/core/color"
	"github.com/matzehuels/randpix/pkg/core/palette"
	"github.com/matzehuels/randpix/pkg/core/pattern"
	"github.com/matzehuels/randpix/pkg/errors"
)

// Default configuration values.
const (
	DefaultSize       = 8
	DefaultScale      = 1
	DefaultFillFactor = 0.5
	DefaultSymmetry   = pattern.Vertical
)

// Config describes one tile generator. NewConfig returns a fully defaulted
// value; WithDefaults fills zero fields other than FillFactor.
type Config struct {
	Size       int
	Scale      int
	Symmetry   pattern.Symmetry
	Scheme     color.Scheme
	FillFactor float64

	// Color fixes every filled cell to one color, bypassing selection.
	Color *color.Color

	// Seed enables reproducible output. Empty means unseeded.
	Seed string

	// ColorBias is the jitter magnitude; 0 disables jitter.
	ColorBias int

	// GrayscaleBias shifts all channels of a cell by the same offset.
	GrayscaleBias bool
}

// NewConfig returns a Config populated with every default.
func NewConfig() Config {
	return Config{
		Size:       DefaultSize,
		Scale:      DefaultScale,
		Symmetry:   DefaultSymmetry,
		Scheme:     palette.Default(),
		FillFactor: DefaultFillFactor,
	}
}

// WithDefaults fills zero-valued Size, Scale, Symmetry and Scheme.
// FillFactor is left alone because zero is a meaningful value.
func (c Config) WithDefaults() Config {
	if c.Size == 0 {
		c.Size = DefaultSize
	}
	if c.Scale == 0 {
		c.Scale = DefaultScale
	}
	if c.Symmetry == "" {
		c.Symmetry = DefaultSymmetry
	}
	if len(c.Scheme) == 0 && c.Color == nil {
		c.Scheme = palette.Default()
	}
	return c
}

// Validate reports the first invalid field as an INVALID_* error.
func (c Config) Validate() error {
	if err := errors.ValidateSize(c.Size); err != nil {
		return err
	}
	if err := errors.ValidateScale(c.Scale); err != nil {
		return err
	}
	if err := errors.ValidatePixels(c.Size, c.Scale, 1); err != nil {
		return err
	}
	if err := c.Symmetry.Validate(); err != nil {
		return err
	}
	if err := errors.ValidateFillFactor(c.FillFactor); err != nil {
		return err
	}
	if err := errors.ValidateBias(c.ColorBias); err != nil {
		return err
	}
	if err := errors.ValidateSeed(c.Seed); err != nil {
		return err
	}
	if c.Color != nil {
		if c.Color.IsSentinel() {
			return errors.New(errors.ErrCodeInvalidColor, "fixed color cannot be the unset sentinel")
		}
		return nil
	}
	return c.Scheme.Validate()
}

// PixelSize returns the side length of the painted surface.
func (c Config) PixelSize() int {
	return c.Size * c.Scale
}

func (c Config) buildOptions() pattern.BuildOptions {
	return pattern.BuildOptions{
		Scheme:        c.Scheme,
		FillFactor:    c.FillFactor,
		Color:         c.Color,
		Bias:          c.ColorBias,
		GrayscaleBias: c.GrayscaleBias,
	}
}
