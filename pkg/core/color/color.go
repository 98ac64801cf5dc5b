// Package color defines the color model shared by the randpix core.
//
// A [Color] carries three integer channels and a relative selection weight.
// The weight only matters while a color sits in a [Scheme]; it is not an
// alpha channel. The reserved [Sentinel] marks an unset cell that must never
// be painted.
//
// Channels are plain ints rather than uint8 so that jitter applied by the
// pattern builder can leave the [0,255] range without wrapping. Clamping is
// a rendering concern (see [Color.Clamped]).
package color

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/randpix/pkg/errors"
)

// Color is an RGB triple plus a relative selection weight.
type Color struct {
	R, G, B int
	Weight  float64
}

// Sentinel marks an unset (transparent) cell.
var Sentinel = Color{R: -1, G: -1, B: -1}

// RGB returns an unweighted color.
func RGB(r, g, b int) Color {
	return Color{R: r, G: g, B: b}
}

// Weighted returns a color carrying selection weight w.
func Weighted(r, g, b int, w float64) Color {
	return Color{R: r, G: g, B: b, Weight: w}
}

// IsSentinel reports whether c marks an unset cell.
// The weight is ignored so that both the 3- and 4-field forms match.
func (c Color) IsSentinel() bool {
	return c.R == -1 && c.G == -1 && c.B == -1
}

// SameRGB reports whether c and o have identical channels, ignoring weight.
func (c Color) SameRGB(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B
}

// CSS formats the channels as a CSS functional color, e.g. "rgb(10, 20, 30)".
// Channel values are written as-is, without clamping.
func (c Color) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Clamped returns c with every channel limited to [0,255].
func (c Color) Clamped() Color {
	return Color{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), Weight: c.Weight}
}

// Hex formats the clamped channels as "#rrggbb".
func (c Color) Hex() string {
	k := c.Clamped()
	return fmt.Sprintf("#%02x%02x%02x", k.R, k.G, k.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if c.IsSentinel() {
		return "unset"
	}
	if c.Weight != 0 {
		return fmt.Sprintf("(%d,%d,%d w=%g)", c.R, c.G, c.B, c.Weight)
	}
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

// ParseHex parses "#rgb" or "#rrggbb" (the leading '#' is optional).
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) == 4 {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}
	if len(s) != 7 {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "invalid hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid hex color %q", s)
	}
	r, g, b := c.RGB255()
	return RGB(int(r), int(g), int(b)), nil
}

// MarshalJSON encodes c as a tuple: [r,g,b] or [r,g,b,weight].
func (c Color) MarshalJSON() ([]byte, error) {
	if c.Weight != 0 {
		return json.Marshal([]float64{float64(c.R), float64(c.G), float64(c.B), c.Weight})
	}
	return json.Marshal([]int{c.R, c.G, c.B})
}

// UnmarshalJSON decodes the tuple form written by MarshalJSON.
func (c *Color) UnmarshalJSON(data []byte) error {
	var parts []float64
	if err := json.Unmarshal(data, &parts); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidColor, err, "decode color")
	}
	if len(parts) != 3 && len(parts) != 4 {
		return errors.New(errors.ErrCodeInvalidColor, "color must have 3 or 4 fields, got %d", len(parts))
	}
	*c = RGB(int(parts[0]), int(parts[1]), int(parts[2]))
	if len(parts) == 4 {
		c.Weight = parts[3]
	}
	return nil
}

func clamp(v int) int {
	return max(0, min(v, 255))
}
