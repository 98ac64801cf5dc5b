package render

import (
	"fmt"
	"sync"

	"github.com/matzehuels/randpix/pkg/core/pattern"
	"github.com/matzehuels/randpix/pkg/core/random"
)

// Surface is the drawing target a tile is painted onto. It mirrors the
// subset of a 2D canvas API the renderer needs. Fill colors are CSS
// functional strings such as "rgb(10, 20, 30)".
type Surface interface {
	ClearRect(x, y, w, h int)
	SetFillColor(css string)
	FillRect(x, y, w, h int)
}

// SurfaceFactory creates a surface of the given pixel dimensions.
type SurfaceFactory[S Surface] func(width, height int) S

// Generator produces tiles for one configuration. Its methods are safe for
// concurrent use; Generate calls are serialized because they share a surface.
type Generator[S Surface] struct {
	cfg     Config
	dims    pattern.Dimensions
	surface S

	mu  sync.Mutex
	src random.Source
}

// New validates cfg and returns a generator owning a surface created by
// newSurface. cfg is taken as given; call WithDefaults first to fill zeros.
func New[S Surface](cfg Config, newSurface SurfaceFactory[S]) (*Generator[S], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	dims, err := pattern.ResolveDimensions(cfg.Size, cfg.Size, cfg.Symmetry)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.Scheme = cfg.Scheme.Clone()
	if cfg.Color != nil {
		fixed := *cfg.Color
		cfg.Color = &fixed
	}

	px := cfg.PixelSize()
	return &Generator[S]{
		cfg:     cfg,
		dims:    dims,
		surface: newSurface(px, px),
		src:     random.New(),
	}, nil
}

// Config returns the generator's configuration.
func (g *Generator[S]) Config() Config {
	return g.cfg
}

// Dimensions returns the resolved half-grid dimensions.
func (g *Generator[S]) Dimensions() pattern.Dimensions {
	return g.dims
}

// Pattern returns a new size x size grid. The result is owned by the caller.
func (g *Generator[S]) Pattern() pattern.Grid {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pattern()
}

func (g *Generator[S]) pattern() pattern.Grid {
	src := g.src
	if g.cfg.Seed != "" {
		src = random.Seeded(g.cfg.Seed)
	}
	half := pattern.Build(g.dims.HalfWidth, g.dims.HalfHeight, g.cfg.buildOptions(), src)
	return pattern.Reflect(g.cfg.Symmetry, half, g.dims)
}

// Generate paints a new tile onto the generator's surface and returns it.
// The returned surface is cleared and reused by the next call.
func (g *Generator[S]) Generate() S {
	g.mu.Lock()
	defer g.mu.Unlock()
	Paint(g.surface, g.pattern(), g.cfg.Scale)
	return g.surface
}

// Render paints a new tile onto s, which must be at least PixelSize square,
// and returns the grid that was painted.
func (g *Generator[S]) Render(s Surface) pattern.Grid {
	grid := g.Pattern()
	Paint(s, grid, g.cfg.Scale)
	return grid
}

// Paint clears the area covered by grid and fills one scale x scale block per
// non-sentinel cell. Row maps to the vertical offset, column to the horizontal.
func Paint(s Surface, grid pattern.Grid, scale int) {
	s.ClearRect(0, 0, grid.Width()*scale, grid.Height()*scale)
	for row, cells := range grid {
		for col, c := range cells {
			if c.IsSentinel() {
				continue
			}
			s.SetFillColor(c.CSS())
			s.FillRect(col*scale, row*scale, scale, scale)
		}
	}
}
