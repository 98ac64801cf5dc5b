package surface

import (
	"bytes"
	"fmt"
	"image"

	"github.com/matzehuels/randpix/pkg/core/render"
)

var _ render.Surface = (*SVG)(nil)

// SVG records filled rectangles and serializes them as an SVG document.
type SVG struct {
	width, height int
	fill          string
	rects         []svgRect
}

type svgRect struct {
	bounds image.Rectangle
	fill   string
}

// NewSVG returns an empty width x height vector surface.
func NewSVG(width, height int) *SVG {
	return &SVG{width: width, height: height, fill: "rgb(0, 0, 0)"}
}

// ClearRect drops every rectangle that lies entirely inside the given area.
func (s *SVG) ClearRect(x, y, w, h int) {
	area := image.Rect(x, y, x+w, y+h)
	kept := s.rects[:0]
	for _, r := range s.rects {
		if !r.bounds.In(area) {
			kept = append(kept, r)
		}
	}
	s.rects = kept
}

// SetFillColor sets the fill attribute of subsequent rectangles.
func (s *SVG) SetFillColor(css string) {
	if _, err := ParseCSS(css); err != nil {
		return
	}
	s.fill = css
}

// FillRect adds a rectangle with the current fill.
func (s *SVG) FillRect(x, y, w, h int) {
	s.rects = append(s.rects, svgRect{bounds: image.Rect(x, y, x+w, y+h), fill: s.fill})
}

// Len returns the number of rectangles currently on the surface.
func (s *SVG) Len() int {
	return len(s.rects)
}

// Bytes serializes the surface. Cleared areas are simply absent, so they
// render transparent.
func (s *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" shape-rendering="crispEdges">`+"\n",
		s.width, s.height, s.width, s.height)
	for _, r := range s.rects {
		fmt.Fprintf(&buf, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
			r.bounds.Min.X, r.bounds.Min.Y, r.bounds.Dx(), r.bounds.Dy(), r.fill)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
