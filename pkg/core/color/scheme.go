package color

import (
	"math"

	"github.com/matzehuels/randpix/pkg/errors"
)

// Scheme is an ordered, weighted list of candidate colors.
type Scheme []Color

// TotalWeight returns the sum of all weights. Non-positive or NaN weights
// contribute nothing to selection but are still summed as given.
func (s Scheme) TotalWeight() float64 {
	var total float64
	for _, c := range s {
		total += c.Weight
	}
	return total
}

// Validate checks that s is usable for selection.
// An all-zero weight sum is allowed; selection falls back to a uniform pick.
func (s Scheme) Validate() error {
	if len(s) == 0 {
		return errors.New(errors.ErrCodeInvalidPalette, "palette must contain at least one color")
	}
	for i, c := range s {
		if c.IsSentinel() {
			return errors.New(errors.ErrCodeInvalidPalette, "palette entry %d is the unset sentinel", i)
		}
		if math.IsNaN(c.Weight) || math.IsInf(c.Weight, 0) || c.Weight < 0 {
			return errors.New(errors.ErrCodeInvalidPalette, "palette entry %d has invalid weight %v", i, c.Weight)
		}
	}
	return nil
}

// Clone returns a copy of s that shares no storage with it.
func (s Scheme) Clone() Scheme {
	if s == nil {
		return nil
	}
	out := make(Scheme, len(s))
	copy(out, s)
	return out
}
