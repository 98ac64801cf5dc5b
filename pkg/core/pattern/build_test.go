package pattern

import (
	"math"
	"testing"

	"github.com/matzehuels/randpix/pkg/core/color"
	"github.com/matzehuels/randpix/pkg/core/random"
)

var testScheme = color.Scheme{
	color.Weighted(200, 10, 10, 1),
	color.Weighted(10, 200, 10, 1),
	color.Weighted(10, 10, 200, 2),
}

func TestBuildShape(t *testing.T) {
	g := Build(3, 5, BuildOptions{Scheme: testScheme, FillFactor: 0.5}, random.Seeded("shape"))
	if g.Height() != 5 || g.Width() != 3 {
		t.Fatalf("Build() = %dx%d, want 5 rows x 3 cols", g.Height(), g.Width())
	}
	for i, row := range g {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells", i, len(row))
		}
	}
}

func TestBuildFillFactorConvergence(t *testing.T) {
	opts := BuildOptions{Scheme: testScheme, FillFactor: 0.3}
	g := Build(200, 200, opts, random.Seeded("fill"))

	frac := float64(g.Filled()) / (200 * 200)
	if math.Abs(frac-0.3) > 0.01 {
		t.Errorf("filled fraction = %.4f, want 0.3 ± 0.01", frac)
	}
}

func TestBuildSentinelExclusivity(t *testing.T) {
	g := Build(16, 16, BuildOptions{Scheme: testScheme, FillFactor: 0.5}, random.Seeded("sentinel"))
	for r, row := range g {
		for c, cell := range row {
			if cell.IsSentinel() {
				continue
			}
			found := false
			for _, p := range testScheme {
				if cell == p {
					found = true
				}
			}
			if !found {
				t.Errorf("cell [%d][%d] = %v is neither sentinel nor a palette color", r, c, cell)
			}
		}
	}
}

func TestBuildFillExtremes(t *testing.T) {
	full := Build(4, 4, BuildOptions{Scheme: testScheme, FillFactor: 1}, random.Seeded("a"))
	if full.Filled() != 16 {
		t.Errorf("fill factor 1: filled = %d, want 16", full.Filled())
	}
	empty := Build(4, 4, BuildOptions{Scheme: testScheme, FillFactor: 0}, random.Seeded("a"))
	if empty.Filled() != 0 {
		t.Errorf("fill factor 0: filled = %d, want 0", empty.Filled())
	}
}

func TestBuildFixedColor(t *testing.T) {
	fixed := color.RGB(10, 20, 30)
	src := &random.Fixed{Values: []float64{0.1, 0.9}}
	g := Build(2, 1, BuildOptions{Scheme: testScheme, FillFactor: 0.5, Color: &fixed}, src)

	if g[0][0] != fixed {
		t.Errorf("cell 0 = %v, want fixed %v", g[0][0], fixed)
	}
	if !g[0][1].IsSentinel() {
		t.Errorf("cell 1 = %v, want sentinel", g[0][1])
	}
	// A fixed color skips selection: one inclusion draw per cell only.
	if src.Draws() != 2 {
		t.Errorf("draws = %d, want 2", src.Draws())
	}
}

func TestBuildGrayscaleBias(t *testing.T) {
	fixed := color.RGB(100, 100, 100)
	// inclusion, then one shared offset: floor(0.9*10 - 5) = 4
	src := &random.Fixed{Values: []float64{0, 0.9}}
	g := Build(1, 1, BuildOptions{FillFactor: 1, Color: &fixed, Bias: 10, GrayscaleBias: true}, src)

	if want := color.RGB(104, 104, 104); g[0][0] != want {
		t.Errorf("cell = %v, want %v", g[0][0], want)
	}
	if src.Draws() != 2 {
		t.Errorf("draws = %d, want 2", src.Draws())
	}
}

func TestBuildRGBBias(t *testing.T) {
	fixed := color.RGB(100, 100, 100)
	// offsets: floor(0-5) = -5, floor(5-5) = 0, floor(9.99-5) = 4
	src := &random.Fixed{Values: []float64{0, 0, 0.5, 0.999}}
	g := Build(1, 1, BuildOptions{FillFactor: 1, Color: &fixed, Bias: 10}, src)

	if want := color.RGB(95, 100, 104); g[0][0] != want {
		t.Errorf("cell = %v, want %v", g[0][0], want)
	}
	if src.Draws() != 4 {
		t.Errorf("draws = %d, want 4", src.Draws())
	}
}

func TestBuildBiasRangeUnclamped(t *testing.T) {
	fixed := color.RGB(0, 255, 128)
	g := Build(64, 64, BuildOptions{FillFactor: 1, Color: &fixed, Bias: 20}, random.Seeded("jitter"))

	sawNegative := false
	for _, row := range g {
		for _, c := range row {
			dr := c.R - fixed.R
			if dr < -10 || dr >= 10 {
				t.Fatalf("red offset %d outside [-10, 10)", dr)
			}
			if c.R < 0 {
				sawNegative = true
			}
		}
	}
	if !sawNegative {
		t.Error("expected some unclamped negative channels")
	}
}

func TestBuildDeterministic(t *testing.T) {
	opts := BuildOptions{Scheme: testScheme, FillFactor: 0.5, Bias: 8}
	a := Build(6, 6, opts, random.Seeded("same"))
	b := Build(6, 6, opts, random.Seeded("same"))
	if !a.Equal(b) {
		t.Error("same seed produced different grids")
	}
}
