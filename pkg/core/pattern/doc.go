// Package pattern builds the color grids behind randpix tiles.
//
// # Overview
//
// A tile is produced in three steps:
//
//  1. [Select] picks one color from a weighted [color.Scheme]
//  2. [Build] fills the unreflected half (or quadrant) of the grid, one
//     inclusion draw per cell, delegating color choice to [Select]
//  3. [Reflect] mirrors the half grid into the full tile according to a
//     [Symmetry] mode
//
// [Tile] runs all three for a final width and height.
//
// # Odd sizes
//
// When a mirrored axis has odd length, the half grid is rounded up and the
// last column (or row) of the half becomes the shared centerline. The
// decision is made once by [ResolveDimensions] and carried in [Dimensions];
// [Reflect] never re-derives it from the half grid's own shape.
//
//	size 5, VERTICAL:  half width 3, shared column  -> a b c b a
//	size 4, VERTICAL:  half width 2, no shared      -> a b b a
//
// # Randomness
//
// Every draw comes from the [random.Source] passed in. Draw order per cell is
// fixed (inclusion, then selection, then jitter) so that a seeded source
// reproduces the same grid.
//
// [color.Scheme]: github.com/matzehuels/randpix/pkg/core/color.Scheme
// [random.Source]: github.com/matzehuels/randpix/pkg/core/random.Source
package pattern
