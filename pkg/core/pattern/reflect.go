package pattern

import (
	"slices"

	"github.com/matzehuels/randpix/pkg/core/random"
)

// Reflect expands half into the full grid for sym. half is not modified.
//
// Vertical appends each row's mirror image to its right, Horizontal appends
// the mirrored rows below, and Quad does both in that order. The first element
// of a mirrored part is dropped when dims marks the centerline as shared.
func Reflect(sym Symmetry, half Grid, dims Dimensions) Grid {
	switch sym {
	case Vertical:
		return reflectColumns(half, dims.SharedColumn)
	case Horizontal:
		return reflectRows(half, dims.SharedRow)
	case Quad:
		return reflectRows(reflectColumns(half, dims.SharedColumn), dims.SharedRow)
	}
	return half.Clone()
}

func reflectColumns(g Grid, shared bool) Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		mirror := slices.Clone(row)
		slices.Reverse(mirror)
		if shared && len(mirror) > 0 {
			mirror = mirror[1:]
		}
		out[i] = append(slices.Clone(row), mirror...)
	}
	return out
}

func reflectRows(g Grid, shared bool) Grid {
	out := g.Clone()
	for i := len(g) - 1; i >= 0; i-- {
		if shared && i == len(g)-1 {
			continue
		}
		out = append(out, slices.Clone(g[i]))
	}
	return out
}

// Tile builds and reflects a complete width x height grid in one call.
func Tile(width, height int, sym Symmetry, opts BuildOptions, src random.Source) (Grid, error) {
	dims, err := ResolveDimensions(width, height, sym)
	if err != nil {
		return nil, err
	}
	half := Build(dims.HalfWidth, dims.HalfHeight, opts, src)
	return Reflect(sym, half, dims), nil
}

// IsSymmetric reports whether g satisfies the mirror invariant of sym.
func IsSymmetric(g Grid, sym Symmetry) bool {
	h, w := g.Height(), g.Width()
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if sym.mirrorsColumns() && g[r][c] != g[r][w-1-c] {
				return false
			}
			if sym.mirrorsRows() && g[r][c] != g[h-1-r][c] {
				return false
			}
		}
	}
	return true
}
