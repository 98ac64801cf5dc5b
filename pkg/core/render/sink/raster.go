package sink

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/randpix/pkg/errors"
)

// EncodeOption configures raster encoding via [Encode].
type EncodeOption func(*encoder)

type encoder struct {
	upscale int
	quality int
}

// WithUpscale enlarges the image by factor using nearest-neighbor sampling.
// Factors below 2 are ignored.
func WithUpscale(factor int) EncodeOption { return func(e *encoder) { e.upscale = factor } }

// DefaultJPEGQuality is used when no quality in [1, 100] is given.
const DefaultJPEGQuality = 95

// WithJPEGQuality sets the JPEG quality. Values outside [1, 100] keep
// DefaultJPEGQuality. Other formats ignore it.
func WithJPEGQuality(q int) EncodeOption {
	return func(e *encoder) {
		if q >= 1 && q <= 100 {
			e.quality = q
		}
	}
}

// Encode writes img in the given raster format.
func Encode(img image.Image, f Format, opts ...EncodeOption) ([]byte, error) {
	target, ok := imagingFormats[f]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "%q is not a raster format", f)
	}

	e := encoder{quality: DefaultJPEGQuality}
	for _, opt := range opts {
		opt(&e)
	}
	img = Upscale(img, e.upscale)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, target, imaging.JPEGQuality(e.quality)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", f)
	}
	return buf.Bytes(), nil
}

// Upscale enlarges img by factor without smoothing. It returns img unchanged
// when factor is below 2.
func Upscale(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*factor, b.Dy()*factor, imaging.NearestNeighbor)
}
