package surface

import (
	"image"
	stdcolor "image/color"

	"golang.org/x/image/draw"

	"github.com/matzehuels/randpix/pkg/core/render"
)

var _ render.Surface = (*Image)(nil)

// Image is an RGBA raster surface. Its zero fill color is opaque black, as on
// a fresh 2D canvas. Unparseable fill strings leave the fill color unchanged.
type Image struct {
	img  *image.RGBA
	fill stdcolor.RGBA
}

// NewImage returns a transparent width x height raster surface.
func NewImage(width, height int) *Image {
	return &Image{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		fill: stdcolor.RGBA{A: 0xff},
	}
}

// ClearRect resets the given area to fully transparent pixels.
func (s *Image) ClearRect(x, y, w, h int) {
	draw.Draw(s.img, image.Rect(x, y, x+w, y+h), image.Transparent, image.Point{}, draw.Src)
}

// SetFillColor sets the color used by subsequent FillRect calls.
func (s *Image) SetFillColor(css string) {
	c, err := ParseCSS(css)
	if err != nil {
		return
	}
	c = c.Clamped()
	s.fill = stdcolor.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xff}
}

// FillRect paints the given area with the current fill color.
func (s *Image) FillRect(x, y, w, h int) {
	draw.Draw(s.img, image.Rect(x, y, x+w, y+h), image.NewUniform(s.fill), image.Point{}, draw.Src)
}

// Image returns the backing raster. It is overwritten by later draw calls.
func (s *Image) Image() *image.RGBA {
	return s.img
}
