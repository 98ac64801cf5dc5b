package pattern

import (
	"strings"

	"github.com/matzehuels/randpix/pkg/errors"
)

// Symmetry selects the axis or axes a half grid is mirrored across.
type Symmetry string

const (
	// Vertical mirrors columns: the tile is symmetric about a vertical axis.
	Vertical Symmetry = "VERTICAL"
	// Horizontal mirrors rows: the tile is symmetric about a horizontal axis.
	Horizontal Symmetry = "HORIZONTAL"
	// Quad mirrors columns, then rows.
	Quad Symmetry = "QUAD"
)

// Symmetries lists every supported mode in display order.
var Symmetries = []Symmetry{Vertical, Horizontal, Quad}

// ParseSymmetry parses a mode name case-insensitively.
func ParseSymmetry(s string) (Symmetry, error) {
	sym := Symmetry(strings.ToUpper(strings.TrimSpace(s)))
	if err := sym.Validate(); err != nil {
		return "", err
	}
	return sym, nil
}

// Validate returns an INVALID_SYMMETRY error for unknown modes.
func (s Symmetry) Validate() error {
	switch s {
	case Vertical, Horizontal, Quad:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidSymmetry, "invalid symmetry: %q (must be one of: vertical, horizontal, quad)", string(s))
}

func (s Symmetry) mirrorsColumns() bool { return s == Vertical || s == Quad }
func (s Symmetry) mirrorsRows() bool    { return s == Horizontal || s == Quad }

// Dimensions describes the half grid to build and how to mirror it.
type Dimensions struct {
	HalfWidth    int
	HalfHeight   int
	SharedColumn bool // last half column is the vertical centerline
	SharedRow    bool // last half row is the horizontal centerline
}

// ResolveDimensions computes the half grid for a final width x height tile.
// A mirrored axis of length n becomes ceil(n/2) with a shared centerline when
// n is odd; an axis that is not mirrored keeps its full length.
func ResolveDimensions(width, height int, sym Symmetry) (Dimensions, error) {
	if err := sym.Validate(); err != nil {
		return Dimensions{}, err
	}
	if err := errors.ValidateSize(width); err != nil {
		return Dimensions{}, err
	}
	if err := errors.ValidateSize(height); err != nil {
		return Dimensions{}, err
	}

	d := Dimensions{HalfWidth: width, HalfHeight: height}
	if sym.mirrorsColumns() {
		d.HalfWidth = (width + 1) / 2
		d.SharedColumn = width%2 == 1
	}
	if sym.mirrorsRows() {
		d.HalfHeight = (height + 1) / 2
		d.SharedRow = height%2 == 1
	}
	return d, nil
}

// FullWidth returns the width of the reflected grid.
func (d Dimensions) FullWidth(sym Symmetry) int {
	if !sym.mirrorsColumns() {
		return d.HalfWidth
	}
	return mirrored(d.HalfWidth, d.SharedColumn)
}

// FullHeight returns the height of the reflected grid.
func (d Dimensions) FullHeight(sym Symmetry) int {
	if !sym.mirrorsRows() {
		return d.HalfHeight
	}
	return mirrored(d.HalfHeight, d.SharedRow)
}

func mirrored(half int, shared bool) int {
	if shared {
		return 2*half - 1
	}
	return 2 * half
}
