package pattern

import "github.com/matzehuels/randpix/pkg/core/color"

// Grid is a row-major rectangle of colors addressed [row][col].
type Grid [][]color.Color

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the number of columns, or 0 for an empty grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Filled returns the number of cells that are not the sentinel.
func (g Grid) Filled() int {
	n := 0
	for _, row := range g {
		for _, c := range row {
			if !c.IsSentinel() {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]color.Color(nil), row...)
	}
	return out
}

// Equal reports whether g and o have the same shape and cells.
func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for i := range g {
		if len(g[i]) != len(o[i]) {
			return false
		}
		for j := range g[i] {
			if g[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}
