package render_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/matzehuels/randpix/pkg/core/color"
	"github.com/matzehuels/randpix/pkg/core/palette"
	"github.com/matzehuels/randpix/pkg/core/pattern"
	"github.com/matzehuels/randpix/pkg/core/render"
	"github.com/matzehuels/randpix/pkg/core/render/surface"
	"github.com/matzehuels/randpix/pkg/errors"
)

func fixedColor(r, g, b int) *color.Color {
	c := color.RGB(r, g, b)
	return &c
}

func TestGenerateSolidTile(t *testing.T) {
	cfg := render.NewConfig()
	cfg.Size = 4
	cfg.Symmetry = pattern.Vertical
	cfg.FillFactor = 1
	cfg.Color = fixedColor(10, 20, 30)
	cfg.Seed = "x"

	gen, err := render.New(cfg, surface.NewRecorder)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	grid := gen.Pattern()
	if grid.Height() != 4 || grid.Width() != 4 {
		t.Fatalf("grid = %dx%d, want 4x4", grid.Width(), grid.Height())
	}
	for _, row := range grid {
		for _, c := range row {
			if !c.SameRGB(color.RGB(10, 20, 30)) {
				t.Fatalf("cell = %v, want (10, 20, 30)", c)
			}
		}
	}

	rec := gen.Generate()
	fills := rec.Fills()
	if len(fills) != 16 {
		t.Fatalf("FillRect calls = %d, want 16", len(fills))
	}
	seen := map[[2]int]bool{}
	for _, f := range fills {
		if f.Color != "rgb(10, 20, 30)" {
			t.Errorf("fill color = %q", f.Color)
		}
		if f.W != 1 || f.H != 1 {
			t.Errorf("fill size = %dx%d, want 1x1", f.W, f.H)
		}
		seen[[2]int{f.X, f.Y}] = true
	}
	if len(seen) != 16 {
		t.Errorf("distinct fill positions = %d, want 16", len(seen))
	}
}

func TestGenerateClearsFirst(t *testing.T) {
	cfg := render.NewConfig()
	cfg.Size, cfg.Scale = 5, 3

	gen, err := render.New(cfg, surface.NewRecorder)
	if err != nil {
		t.Fatal(err)
	}
	rec := gen.Generate()
	first := rec.Calls[0]
	if first.Op != surface.OpClear || first.X != 0 || first.Y != 0 || first.W != 15 || first.H != 15 {
		t.Errorf("first call = %+v, want full clear of 15x15", first)
	}
	if rec.Width != 15 || rec.Height != 15 {
		t.Errorf("surface = %dx%d, want 15x15", rec.Width, rec.Height)
	}
}

func TestGenerateReusesSurface(t *testing.T) {
	gen, err := render.New(render.NewConfig(), surface.NewRecorder)
	if err != nil {
		t.Fatal(err)
	}
	a := gen.Generate()
	b := gen.Generate()
	if a != b {
		t.Error("Generate returned different surfaces")
	}
}

func TestSeededDeterminism(t *testing.T) {
	cfg := render.NewConfig()
	cfg.Size = 9
	cfg.Symmetry = pattern.Quad
	cfg.Seed = "alice"
	cfg.ColorBias = 30

	g1, err := render.New(cfg, surface.NewRecorder)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := render.New(cfg, surface.NewRecorder)
	if err != nil {
		t.Fatal(err)
	}

	first := g1.Pattern()
	if !first.Equal(g1.Pattern()) {
		t.Error("same generator produced different grids for one seed")
	}
	if !first.Equal(g2.Pattern()) {
		t.Error("two generators produced different grids for one seed")
	}

	cfg.Seed = "bob"
	g3, err := render.New(cfg, surface.NewRecorder)
	if err != nil {
		t.Fatal(err)
	}
	if first.Equal(g3.Pattern()) {
		t.Error("different seeds produced identical grids")
	}
}

func TestSentinelCellsAreNotPainted(t *testing.T) {
	cfg := render.NewConfig()
	cfg.FillFactor = 0

	gen, err := render.New(cfg, surface.NewRecorder)
	if err != nil {
		t.Fatal(err)
	}
	rec := gen.Generate()
	if n := len(rec.Fills()); n != 0 {
		t.Errorf("FillRect calls = %d, want 0", n)
	}
}

func TestFillCountMatchesGrid(t *testing.T) {
	cfg := render.NewConfig()
	cfg.Size, cfg.Scale = 7, 2
	cfg.Symmetry = pattern.Horizontal
	cfg.Seed = "count"

	gen, err := render.New(cfg, surface.NewRecorder)
	if err != nil {
		t.Fatal(err)
	}
	rec := surface.NewRecorder(14, 14)
	grid := gen.Render(rec)

	if got, want := len(rec.Fills()), grid.Filled(); got != want {
		t.Errorf("FillRect calls = %d, want %d", got, want)
	}
	for _, f := range rec.Fills() {
		if f.W != 2 || f.H != 2 || f.X%2 != 0 || f.Y%2 != 0 {
			t.Errorf("fill %+v not aligned to scale 2", f)
		}
	}
	if !pattern.IsSymmetric(grid, pattern.Horizontal) {
		t.Error("rendered grid is not horizontally symmetric")
	}
}

func TestPatternIsOwnedByCaller(t *testing.T) {
	cfg := render.NewConfig()
	cfg.Seed = "own"
	gen, err := render.New(cfg, surface.NewRecorder)
	if err != nil {
		t.Fatal(err)
	}
	want := gen.Pattern()
	got := gen.Pattern()
	got[0][0] = color.RGB(1, 1, 1)
	if !gen.Pattern().Equal(want) {
		t.Error("mutating a returned grid affected later results")
	}
}

func TestNewCopiesConfig(t *testing.T) {
	cfg := render.NewConfig()
	cfg.Scheme = palette.Default()
	cfg.Seed = "copy"
	gen, err := render.New(cfg, surface.NewRecorder)
	if err != nil {
		t.Fatal(err)
	}
	before := gen.Pattern()
	for i := range cfg.Scheme {
		cfg.Scheme[i] = color.Weighted(1, 2, 3, 1)
	}
	if !before.Equal(gen.Pattern()) {
		t.Error("mutating the caller's scheme changed generator output")
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*render.Config)
		code   errors.Code
	}{
		{"zero size", func(c *render.Config) { c.Size = 0 }, errors.ErrCodeInvalidConfig},
		{"negative scale", func(c *render.Config) { c.Scale = -1 }, errors.ErrCodeInvalidConfig},
		{"surface too large", func(c *render.Config) { c.Size, c.Scale = 256, 512 }, errors.ErrCodeInvalidConfig},
		{"fill above one", func(c *render.Config) { c.FillFactor = 1.5 }, errors.ErrCodeInvalidConfig},
		{"negative bias", func(c *render.Config) { c.ColorBias = -1 }, errors.ErrCodeInvalidConfig},
		{"bad symmetry", func(c *render.Config) { c.Symmetry = "DIAGONAL" }, errors.ErrCodeInvalidSymmetry},
		{"empty scheme", func(c *render.Config) { c.Scheme = nil }, errors.ErrCodeInvalidPalette},
		{"sentinel color", func(c *render.Config) { s := color.Sentinel; c.Color = &s }, errors.ErrCodeInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := render.NewConfig()
			tt.mutate(&cfg)
			_, err := render.New(cfg, surface.NewRecorder)
			if err == nil {
				t.Fatal("New() should fail")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestEmptySchemeWithFixedColor(t *testing.T) {
	cfg := render.NewConfig()
	cfg.Scheme = nil
	cfg.Color = fixedColor(1, 2, 3)
	if _, err := render.New(cfg, surface.NewRecorder); err != nil {
		t.Errorf("New() error: %v", err)
	}
}

func TestWithDefaults(t *testing.T) {
	cfg := render.Config{FillFactor: 0.25}.WithDefaults()
	if cfg.Size != render.DefaultSize || cfg.Scale != render.DefaultScale || cfg.Symmetry != render.DefaultSymmetry {
		t.Errorf("WithDefaults = %+v", cfg)
	}
	if len(cfg.Scheme) == 0 {
		t.Error("WithDefaults left the scheme empty")
	}
	if cfg.FillFactor != 0.25 {
		t.Errorf("FillFactor = %v, want 0.25", cfg.FillFactor)
	}
	if zero := (render.Config{}).WithDefaults(); zero.FillFactor != 0 {
		t.Errorf("WithDefaults changed a zero FillFactor to %v", zero.FillFactor)
	}
}

func TestConcurrentGenerate(t *testing.T) {
	cfg := render.NewConfig()
	cfg.Seed = "race"
	gen, err := render.New(cfg, surface.NewImage)
	if err != nil {
		t.Fatal(err)
	}
	want := gen.Pattern()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gen.Generate()
			if !gen.Pattern().Equal(want) {
				t.Error("concurrent Pattern diverged")
			}
		}()
	}
	wg.Wait()
}

func ExamplePaint() {
	grid := pattern.Grid{
		{color.RGB(255, 0, 0), color.Sentinel},
		{color.Sentinel, color.RGB(0, 0, 255)},
	}
	rec := surface.NewRecorder(4, 4)
	render.Paint(rec, grid, 2)
	for _, c := range rec.Calls {
		fmt.Println(c.Op, c.X, c.Y, c.W, c.H, c.Color)
	}
	// Output:
	// clear 0 0 4 4
	// color 0 0 0 0 rgb(255, 0, 0)
	// fill 0 0 2 2 rgb(255, 0, 0)
	// color 0 0 0 0 rgb(0, 0, 255)
	// fill 2 2 2 2 rgb(0, 0, 255)
}
