// Package pipeline provides the tile generation pipeline for randpix.
//
// This package implements the complete generate → render pipeline used by the
// CLI and the HTTP server. Centralizing it keeps defaults, caching and output
// encoding identical across entry points.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: resolve the palette, build a grid with a [render.Generator]
//  2. Render: paint the grid and encode it (PNG, JPEG, GIF, BMP, TIFF, SVG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Seed:    "alice",
//	    Size:    8,
//	    Scale:   16,
//	    Formats: []string{"png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Tiles[0].Artifacts["png"]
//
// [render.Generator]: github.com/matzehuels/randpix/pkg/core/render.Generator
package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/randpix/pkg/cache"
	"github.com/matzehuels/randpix/pkg/core/color"
	"github.com/matzehuels/randpix/pkg/core/palette"
	"github.com/matzehuels/randpix/pkg/core/pattern"
	"github.com/matzehuels/randpix/pkg/core/render"
	"github.com/matzehuels/randpix/pkg/core/render/sink"
	"github.com/matzehuels/randpix/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultSize is the logical grid side length.
	DefaultSize = render.DefaultSize

	// DefaultScale is the number of pixels per cell.
	DefaultScale = 16

	// DefaultFillFactor is the probability that a half-grid cell is filled.
	DefaultFillFactor = render.DefaultFillFactor

	// DefaultSymmetry is the default mirror mode.
	DefaultSymmetry = string(render.DefaultSymmetry)

	// DefaultFormat is the default output format.
	DefaultFormat = string(sink.PNG)

	// MaxCount caps the number of tiles in one run.
	MaxCount = 1000

	// MaxUpscale caps nearest-neighbor enlargement of raster output.
	MaxUpscale = 64
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the generation pipeline.
// It supports JSON for server requests and TOML for CLI config files.
type Options struct {
	// Generate options
	Size        int          `json:"size,omitempty" toml:"size"`
	Symmetry    string       `json:"symmetry,omitempty" toml:"symmetry"`
	Palette     string       `json:"palette,omitempty" toml:"palette"`
	PaletteFile string       `json:"-" toml:"palette_file"`
	Scheme      color.Scheme `json:"scheme,omitempty" toml:"-"`
	FillFactor  *float64     `json:"fill_factor,omitempty" toml:"fill_factor"`
	Color       string       `json:"color,omitempty" toml:"color"`
	Seed        string       `json:"seed,omitempty" toml:"seed"`
	ColorBias   int          `json:"color_bias,omitempty" toml:"color_bias"`
	Grayscale   bool         `json:"grayscale_bias,omitempty" toml:"grayscale_bias"`
	Count       int          `json:"count,omitempty" toml:"count"`
	Refresh     bool         `json:"refresh,omitempty" toml:"-"`

	// Render options
	Scale   int      `json:"scale,omitempty" toml:"scale"`
	Upscale int      `json:"upscale,omitempty" toml:"upscale"`
	Quality int      `json:"quality,omitempty" toml:"quality"`
	Formats []string `json:"formats,omitempty" toml:"formats"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Tile is one generated tile and its encoded outputs.
type Tile struct {
	// Seed is the seed used for this tile, empty when unseeded.
	Seed string

	// Grid is the full size x size pattern.
	Grid pattern.Grid

	// GridHash is the content hash of the grid.
	GridHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Tiles     []Tile
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Tiles        int
	Filled       int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage, summed over tiles.
type CacheInfo struct {
	PatternHits int
	RenderHits  int
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format name is supported.
func ValidateFormat(format string) error {
	if _, err := sink.ParseFormat(format); err != nil {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, formatList())
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

func formatList() string {
	names := make([]string, len(sink.Formats))
	for i, f := range sink.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults for the full
// pipeline. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetGenerateDefaults sets default values for grid generation.
func (o *Options) SetGenerateDefaults() {
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Symmetry == "" {
		o.Symmetry = DefaultSymmetry
	}
	if o.Palette == "" && o.PaletteFile == "" && len(o.Scheme) == 0 {
		o.Palette = palette.DefaultName
	}
	if o.FillFactor == nil {
		f := DefaultFillFactor
		o.FillFactor = &f
	}
	if o.Count == 0 {
		o.Count = 1
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForGenerate applies generation defaults and checks the result.
func (o *Options) ValidateForGenerate() error {
	o.SetGenerateDefaults()
	if o.Count < 1 || o.Count > MaxCount {
		return errors.New(errors.ErrCodeInvalidConfig, "count must be within [1, %d], got %d", MaxCount, o.Count)
	}
	_, err := o.Config()
	return err
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender applies render defaults and checks the result.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := errors.ValidateScale(o.Scale); err != nil {
		return err
	}
	if o.Upscale < 0 || o.Upscale > MaxUpscale {
		return errors.New(errors.ErrCodeInvalidConfig, "upscale must be within [0, %d], got %d", MaxUpscale, o.Upscale)
	}
	if o.Quality < 0 || o.Quality > 100 {
		return errors.New(errors.ErrCodeInvalidConfig, "quality must be within [1, 100] or 0 for the default, got %d", o.Quality)
	}
	size := o.Size
	if size == 0 {
		size = DefaultSize
	}
	if err := errors.ValidateSize(size); err != nil {
		return err
	}
	if err := errors.ValidatePixels(size, o.Scale, o.Upscale); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// Config resolves the options into a validated generator configuration.
// The palette precedence is Scheme, then PaletteFile, then Palette.
func (o *Options) Config() (render.Config, error) {
	sym, err := pattern.ParseSymmetry(o.Symmetry)
	if err != nil {
		return render.Config{}, err
	}
	scheme, err := o.resolveScheme()
	if err != nil {
		return render.Config{}, err
	}

	cfg := render.Config{
		Size:          o.Size,
		Scale:         o.Scale,
		Symmetry:      sym,
		Scheme:        scheme,
		FillFactor:    DefaultFillFactor,
		Seed:          o.Seed,
		ColorBias:     o.ColorBias,
		GrayscaleBias: o.Grayscale,
	}
	if o.FillFactor != nil {
		cfg.FillFactor = *o.FillFactor
	}
	if o.Color != "" {
		c, err := color.ParseHex(o.Color)
		if err != nil {
			return render.Config{}, err
		}
		cfg.Color = &c
	}
	if err := cfg.Validate(); err != nil {
		return render.Config{}, err
	}
	return cfg, nil
}

func (o *Options) resolveScheme() (color.Scheme, error) {
	switch {
	case len(o.Scheme) > 0:
		return o.Scheme.Clone(), nil
	case o.PaletteFile != "":
		if err := errors.ValidateFilename(o.PaletteFile); err != nil {
			return nil, err
		}
		return palette.Load(o.PaletteFile)
	case o.Palette != "":
		return palette.Lookup(o.Palette)
	}
	return palette.Default(), nil
}

// SeedFor returns the seed of the i-th tile (zero-based). Multi-tile runs
// derive "seed-1", "seed-2", ... so each tile differs but stays reproducible.
func (o *Options) SeedFor(i int) string {
	if o.Seed == "" || o.Count <= 1 {
		return o.Seed
	}
	return fmt.Sprintf("%s-%d", o.Seed, i+1)
}

// PaletteName describes the palette source for logs and JSON output.
func (o *Options) PaletteName() string {
	switch {
	case len(o.Scheme) > 0:
		return "custom"
	case o.PaletteFile != "":
		return o.PaletteFile
	}
	return o.Palette
}

// PatternKeyOpts returns cache key options for a seeded grid.
func (o *Options) PatternKeyOpts(cfg render.Config) cache.PatternKeyOpts {
	schemeData, _ := json.Marshal(cfg.Scheme)
	opts := cache.PatternKeyOpts{
		Seed:       cfg.Seed,
		Size:       cfg.Size,
		Symmetry:   string(cfg.Symmetry),
		Scheme:     cache.Hash(schemeData),
		FillFactor: cfg.FillFactor,
		ColorBias:  cfg.ColorBias,
		Grayscale:  cfg.GrayscaleBias,
	}
	if cfg.Color != nil {
		opts.Color = cfg.Color.Hex()
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:  format,
		Scale:   o.Scale,
		Upscale: o.Upscale,
		Quality: o.jpegQuality(format),
	}
}

// jpegQuality returns the quality that affects format's bytes, 0 when none.
func (o *Options) jpegQuality(format string) int {
	if f, err := sink.ParseFormat(format); err == nil && f == sink.JPEG {
		return o.Quality
	}
	return 0
}

// Meta returns the JSON sink metadata for one tile.
func (o *Options) Meta(cfg render.Config) sink.Meta {
	return sink.Meta{
		Seed:       cfg.Seed,
		Size:       cfg.Size,
		Scale:      cfg.Scale,
		Symmetry:   string(cfg.Symmetry),
		Palette:    o.PaletteName(),
		FillFactor: cfg.FillFactor,
		ColorBias:  cfg.ColorBias,
		Grayscale:  cfg.GrayscaleBias,
	}
}

// Copy returns an unvalidated deep copy of o, for callers that layer
// overrides on shared defaults.
func (o Options) Copy() Options {
	o.Scheme = o.Scheme.Clone()
	o.Formats = slices.Clone(o.Formats)
	if o.FillFactor != nil {
		f := *o.FillFactor
		o.FillFactor = &f
	}
	o.validated = false
	return o
}
