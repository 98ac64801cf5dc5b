package sink

import (
	"encoding/json"

	"github.com/matzehuels/randpix/pkg/core/pattern"
)

// Meta records the settings that produced a grid.
type Meta struct {
	Seed       string  `json:"seed,omitempty"`
	Size       int     `json:"size"`
	Scale      int     `json:"scale"`
	Symmetry   string  `json:"symmetry"`
	Palette    string  `json:"palette,omitempty"`
	FillFactor float64 `json:"fill_factor"`
	ColorBias  int     `json:"color_bias,omitempty"`
	Grayscale  bool    `json:"grayscale_bias,omitempty"`
}

type jsonOutput struct {
	Meta
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Filled int         `json:"filled"`
	Cells  [][]*string `json:"cells"`
}

// RenderJSON exports grid as indented JSON. Filled cells are "#rrggbb"
// strings of the clamped color; unset cells are null.
func RenderJSON(grid pattern.Grid, meta Meta) ([]byte, error) {
	out := jsonOutput{
		Meta:   meta,
		Width:  grid.Width(),
		Height: grid.Height(),
		Filled: grid.Filled(),
		Cells:  make([][]*string, len(grid)),
	}
	for i, row := range grid {
		out.Cells[i] = make([]*string, len(row))
		for j, c := range row {
			if c.IsSentinel() {
				continue
			}
			hex := c.Hex()
			out.Cells[i][j] = &hex
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
