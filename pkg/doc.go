// Package pkg provides the core libraries for randpix tile generation.
//
// # Overview
//
// Randpix turns a seed and a weighted color palette into a small symmetric
// pixel-art tile, the kind used for identicons and placeholder avatars. The
// pkg directory is organized into three areas:
//
//  1. [core] - Domain logic (colors, palettes, patterns, rendering)
//  2. [pipeline] - Orchestration (generate → render) with caching
//  3. Infrastructure ([cache], [observability], [errors], [buildinfo])
//
// # Architecture
//
// The typical data flow through randpix:
//
//	Seed + Palette
//	      ↓
//	[core/pattern] build a half grid, one color decision per cell
//	      ↓
//	[core/pattern] mirror it into the full grid
//	      ↓
//	[core/render] paint the grid onto a surface
//	      ↓
//	PNG/JPEG/GIF/BMP/TIFF/SVG/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/randpix/pkg/core/render"
//	    "github.com/matzehuels/randpix/pkg/core/render/sink"
//	    "github.com/matzehuels/randpix/pkg/core/render/surface"
//	)
//
//	cfg := render.NewConfig()
//	cfg.Seed, cfg.Scale = "alice", 16
//	gen, _ := render.New(cfg, surface.NewImage)
//	png, _ := sink.Encode(gen.Generate().Image(), sink.PNG)
//
// # Main Packages
//
// [core/color] - RGB colors with selection weights, the unset sentinel, and
// CSS and hex formatting.
//
// [core/palette] - Built-in named palettes and TOML palette files.
//
// [core/pattern] - Weighted color selection, the half-pattern builder and the
// symmetry reflector.
//
// [core/render] - The tile generator and the drawing surface interface, with
// [core/render/surface] implementations (image, SVG, recorder) and
// [core/render/sink] encoders.
//
// [pipeline] - Options with defaults and validation, and a Runner shared by
// the CLI and the HTTP server.
//
// [cache] - Pattern and artifact cache with file, Redis, MongoDB and null
// backends.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/core/pattern/...       # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// Redis and MongoDB cache tests run when RANDPIX_TEST_REDIS_URL or
// RANDPIX_TEST_MONGO_URI is set.
//
// [core]: https://pkg.go.dev/github.com/matzehuels/randpix/pkg/core
// [core/color]: https://pkg.go.dev/github.com/matzehuels/randpix/pkg/core/color
// [core/palette]: https://pkg.go.dev/github.com/matzehuels/randpix/pkg/core/palette
// [core/pattern]: https://pkg.go.dev/github.com/matzehuels/randpix/pkg/core/pattern
// [core/render]: https://pkg.go.dev/github.com/matzehuels/randpix/pkg/core/render
// [core/render/surface]: https://pkg.go.dev/github.com/matzehuels/randpix/pkg/core/render/surface
// [core/render/sink]: https://pkg.go.dev/github.com/matzehuels/randpix/pkg/core/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/randpix/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/randpix/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/randpix/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/randpix/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/randpix/pkg/buildinfo
package pkg
