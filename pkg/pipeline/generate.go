package pipeline

import (
	"github.com/matzehuels/randpix/pkg/core/pattern"
	"github.com/matzehuels/randpix/pkg/core/render"
	"github.com/matzehuels/randpix/pkg/core/render/surface"
)

// Generate builds one grid for cfg. The generator is created per call, so
// concurrent callers never share a surface or a random source.
func Generate(cfg render.Config) (pattern.Grid, error) {
	gen, err := render.New(cfg, surface.NewRecorder)
	if err != nil {
		return nil, err
	}
	return gen.Pattern(), nil
}
