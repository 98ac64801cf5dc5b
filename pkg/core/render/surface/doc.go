// Package surface provides drawing targets that satisfy [render.Surface].
//
//   - [Image]: an in-memory RGBA raster. Cleared pixels are fully transparent
//     and fill colors are clamped to [0,255].
//   - [SVG]: collects filled rectangles and writes them as an SVG document.
//   - [Recorder]: keeps every call for inspection in tests and tooling.
//
// Each type has a constructor with the [render.SurfaceFactory] shape, so it
// can be handed straight to [render.New]:
//
//	gen, err := render.New(cfg, surface.NewImage)
//
// [render.Surface]: github.com/matzehuels/randpix/pkg/core/render.Surface
// [render.SurfaceFactory]: github.com/matzehuels/randpix/pkg/core/render.SurfaceFactory
// [render.New]: github.com/matzehuels/randpix/pkg/core/render.New
package surface
