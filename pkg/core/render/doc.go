// Package render turns generated patterns into painted tiles.
//
// # Overview
//
// A [Generator] is built once from a [Config]. Construction validates the
// configuration, resolves the half-grid [pattern.Dimensions] and acquires
// one drawing [Surface] of size*scale pixels square. Each call then produces
// a fresh pattern and repaints that surface:
//
//	cfg := render.NewConfig()
//	cfg.Scale, cfg.Seed = 4, "alice"
//	gen, err := render.New(cfg, surface.NewImage)
//	if err != nil {
//	    return err
//	}
//	s := gen.Generate() // cleared and repainted on every call
//
// # Buffers
//
// [Generator.Generate] reuses the generator's own surface, so its result is
// only valid until the next call. Callers that need to keep results can
// either take the grid value from [Generator.Pattern] and [Paint] it
// themselves, or render into a surface they own with [Generator.Render].
//
// # Seeding
//
// When [Config.Seed] is set, each call draws from a new source seeded with
// it, so every call yields the same tile. Without a seed the generator keeps
// one private unseeded source. No state is shared between generators.
//
// [pattern.Dimensions]: github.com/matzehuels/randpix/pkg/core/pattern.Dimensions
package render
