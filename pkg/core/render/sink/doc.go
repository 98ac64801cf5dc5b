// Package sink turns painted tiles into output formats.
//
// # Raster Output
//
// [Encode] writes an image produced by an image surface as PNG, JPEG, GIF,
// BMP or TIFF. [WithUpscale] enlarges the tile with nearest-neighbor
// sampling first, so cell edges stay sharp:
//
//	data, err := sink.Encode(s.Image(), sink.PNG, sink.WithUpscale(8))
//
// # SVG Output
//
// [RenderSVG] paints a grid onto a vector surface and returns the document.
// Each filled cell becomes one rect element.
//
// # JSON Output
//
// [RenderJSON] exports the grid together with the settings that produced
// it, for tools that want cell data rather than pixels. Unset cells are
// written as null.
package sink
