package pattern

import (
	"math"

	"github.com/matzehuels/randpix/pkg/core/color"
	"github.com/matzehuels/randpix/pkg/core/random"
)

// BuildOptions controls per-cell color decisions.
type BuildOptions struct {
	// Scheme is the weighted palette used when Color is nil.
	Scheme color.Scheme

	// FillFactor is the probability that a cell receives a color.
	FillFactor float64

	// Color, when set, is used for every filled cell instead of Select.
	Color *color.Color

	// Bias is the jitter magnitude. Each affected channel moves by
	// floor(u*Bias - Bias/2), i.e. within [-Bias/2, Bias/2). Zero disables it.
	Bias int

	// GrayscaleBias applies one shared offset to all three channels instead
	// of an independent offset per channel.
	GrayscaleBias bool
}

// Build returns a height x width grid with one independent decision per cell.
//
// Cells are visited row by row. For each cell an inclusion value is drawn;
// below FillFactor the cell is filled (fixed color or [Select]) and then
// jittered, otherwise it is set to [color.Sentinel]. Channels are not clamped.
func Build(width, height int, opts BuildOptions, src random.Source) Grid {
	g := make(Grid, height)
	for i := range g {
		row := make([]color.Color, width)
		for j := range row {
			row[j] = buildCell(opts, src)
		}
		g[i] = row
	}
	return g
}

func buildCell(opts BuildOptions, src random.Source) color.Color {
	if src.Float64() >= opts.FillFactor {
		return color.Sentinel
	}

	var c color.Color
	if opts.Color != nil {
		c = *opts.Color
	} else {
		c = Select(opts.Scheme, src)
	}

	if opts.Bias > 0 {
		c = jitter(c, opts.Bias, opts.GrayscaleBias, src)
	}
	return c
}

func jitter(c color.Color, bias int, grayscale bool, src random.Source) color.Color {
	if grayscale {
		d := offset(bias, src)
		c.R += d
		c.G += d
		c.B += d
		return c
	}
	c.R += offset(bias, src)
	c.G += offset(bias, src)
	c.B += offset(bias, src)
	return c
}

func offset(bias int, src random.Source) int {
	b := float64(bias)
	return int(math.Floor(src.Float64()*b - b/2))
}
