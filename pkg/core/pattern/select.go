package pattern

import (
	"github.com/matzehuels/randpix/pkg/core/color"
	"github.com/matzehuels/randpix/pkg/core/random"
)

// Select returns one color from scheme, chosen with probability proportional
// to its weight.
//
// It draws r in [0, total) and returns the first entry whose cumulative weight
// is strictly greater than r, so ties favor the earlier entry. When no entry
// qualifies (total weight 0), a second draw picks a uniform index instead.
// scheme must be non-empty.
func Select(scheme color.Scheme, src random.Source) color.Color {
	cumulative := make([]float64, len(scheme))
	var sum float64
	for i, c := range scheme {
		sum += c.Weight
		cumulative[i] = sum
	}

	r := src.Float64() * sum
	for i, w := range cumulative {
		if w > r {
			return scheme[i]
		}
	}

	i := int(src.Float64() * float64(len(scheme)))
	return scheme[min(i, len(scheme)-1)]
}
