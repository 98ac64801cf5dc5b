package sink

import (
	"github.com/matzehuels/randpix/pkg/core/pattern"
	"github.com/matzehuels/randpix/pkg/core/render"
	"github.com/matzehuels/randpix/pkg/core/render/surface"
)

// RenderSVG paints grid at scale pixels per cell and returns an SVG document.
func RenderSVG(grid pattern.Grid, scale int) []byte {
	s := surface.NewSVG(grid.Width()*scale, grid.Height()*scale)
	render.Paint(s, grid, scale)
	return s.Bytes()
}
