package pipeline

import (
	"fmt"

	"github.com/matzehuels/randpix/pkg/core/pattern"
	"github.com/matzehuels/randpix/pkg/core/render"
	"github.com/matzehuels/randpix/pkg/core/render/sink"
	"github.com/matzehuels/randpix/pkg/core/render/surface"
)

// Render encodes grid in every requested format.
func Render(grid pattern.Grid, meta sink.Meta, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	var raster *surface.Image

	for _, name := range opts.Formats {
		format, err := sink.ParseFormat(name)
		if err != nil {
			return nil, err
		}

		var data []byte
		switch {
		case format == sink.SVG:
			data = sink.RenderSVG(grid, opts.Scale)
		case format == sink.JSON:
			data, err = sink.RenderJSON(grid, meta)
		case format.IsRaster():
			if raster == nil {
				raster = surface.NewImage(grid.Width()*opts.Scale, grid.Height()*opts.Scale)
				render.Paint(raster, grid, opts.Scale)
			}
			data, err = sink.Encode(raster.Image(), format,
				sink.WithUpscale(opts.Upscale), sink.WithJPEGQuality(opts.Quality))
		default:
			err = fmt.Errorf("unsupported format: %s", format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", name, err)
		}
		artifacts[name] = data
	}

	return artifacts, nil
}
