package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/randpix/pkg/cache"
	"github.com/matzehuels/randpix/pkg/core/pattern"
	"github.com/matzehuels/randpix/pkg/core/render"
	"github.com/matzehuels/randpix/pkg/core/render/sink"
	"github.com/matzehuels/randpix/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both the CLI and the server use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// ArtifactTTL overrides cache.TTLArtifact when positive.
	ArtifactTTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs generate → render for every requested tile.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Tiles: make([]Tile, 0, opts.Count)}
	for i := range opts.Count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tileOpts := opts
		tileOpts.Seed = opts.SeedFor(i)

		genStart := time.Now()
		grid, patternHit, err := r.GenerateWithCacheInfo(ctx, tileOpts)
		if err != nil {
			return nil, fmt.Errorf("generate: %w", err)
		}
		result.Stats.GenerateTime += time.Since(genStart)
		if patternHit {
			result.CacheInfo.PatternHits++
		}

		renderStart := time.Now()
		artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, grid, tileOpts)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		result.Stats.RenderTime += time.Since(renderStart)
		if renderHit {
			result.CacheInfo.RenderHits++
		}

		result.Tiles = append(result.Tiles, Tile{
			Seed:      tileOpts.Seed,
			Grid:      grid,
			GridHash:  gridHash(grid),
			Artifacts: artifacts,
		})
		result.Stats.Filled += grid.Filled()
	}
	result.Stats.Tiles = len(result.Tiles)

	r.Logger.Info("generated tiles",
		"count", result.Stats.Tiles,
		"formats", opts.Formats,
		"duration", result.Stats.GenerateTime+result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo builds one grid and reports whether it came from the
// cache. Only seeded grids are cached.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (pattern.Grid, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, false, err
	}

	cfg, err := opts.Config()
	if err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, cfg.Seed, cfg.Size)
	start := time.Now()

	var cacheKey string
	if cfg.Seed != "" {
		cacheKey = r.Keyer.PatternKey(opts.PatternKeyOpts(cfg))
		if !opts.Refresh {
			if grid, ok := r.cachedGrid(ctx, cacheKey); ok {
				hooks.OnGenerateComplete(ctx, cfg.Seed, grid.Filled(), time.Since(start), nil)
				return grid, true, nil
			}
		}
	}

	grid, err := Generate(cfg)
	hooks.OnGenerateComplete(ctx, cfg.Seed, grid.Filled(), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	opts.Logger.Debug("generated grid", "seed", cfg.Seed, "filled", grid.Filled())

	if cacheKey != "" {
		if data, err := json.Marshal(grid); err == nil {
			r.store(ctx, "pattern", cacheKey, data, cache.TTLPattern)
		}
	}
	return grid, false, nil
}

// Generate is a convenience wrapper that discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (pattern.Grid, error) {
	grid, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return grid, err
}

// RenderWithCacheInfo encodes grid and reports whether every artifact came
// from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, grid pattern.Grid, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	cfg, err := opts.Config()
	if err != nil {
		return nil, false, err
	}

	// Unseeded tiles are one-offs and are not worth caching. JSON output
	// embeds the tile metadata, so all of it joins the key.
	cacheable := cfg.Seed != ""
	keyHash := artifactHash(grid, opts.Meta(cfg))

	if cacheable && !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(keyHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				break
			}
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	hooks := observability.Pipeline()
	for _, format := range opts.Formats {
		hooks.OnEncodeStart(ctx, format)
	}
	start := time.Now()
	rendered, err := Render(grid, opts.Meta(cfg), opts)
	for _, format := range opts.Formats {
		hooks.OnEncodeComplete(ctx, format, len(rendered[format]), time.Since(start), err)
	}
	if err != nil {
		return nil, false, err
	}

	if !cacheable {
		return rendered, false, nil
	}
	for format, data := range rendered {
		r.store(ctx, "artifact", r.Keyer.ArtifactKey(keyHash, opts.ArtifactKeyOpts(format)), data, r.artifactTTL())
	}
	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, grid pattern.Grid, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, grid, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) cachedGrid(ctx context.Context, key string) (pattern.Grid, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, "pattern")
		return nil, false
	}
	var grid pattern.Grid
	if err := json.Unmarshal(data, &grid); err != nil || grid.Height() == 0 {
		observability.Cache().OnCacheMiss(ctx, "pattern")
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "pattern")
	return grid, true
}

func (r *Runner) store(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

func (r *Runner) artifactTTL() time.Duration {
	if r.ArtifactTTL > 0 {
		return r.ArtifactTTL
	}
	return cache.TTLArtifact
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// artifactHash identifies everything an artifact encodes apart from the
// per-format options: the grid and the metadata written into JSON output.
func artifactHash(grid pattern.Grid, meta sink.Meta) string {
	data, _ := json.Marshal(meta)
	return cache.Hash([]byte(gridHash(grid) + "\x00" + string(data)))
}

func gridHash(grid pattern.Grid) string {
	data, _ := json.Marshal(grid)
	return cache.Hash(data)
}

// GeneratorFor is a helper for callers that want the live generator rather
// than pipeline output, such as the interactive terminal browser.
func GeneratorFor[S render.Surface](opts Options, newSurface render.SurfaceFactory[S]) (*render.Generator[S], error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, err
	}
	cfg, err := opts.Config()
	if err != nil {
		return nil, err
	}
	return render.New(cfg, newSurface)
}
