// Package palette provides the named color schemes shipped with randpix and
// a loader for user-defined schemes stored as TOML.
//
// Built-in schemes are looked up by name:
//
//	s, err := palette.Lookup("warm")
//
// A palette file lists weighted colors, either as hex strings or RGB triples:
//
//	name = "sunset"
//
//	[[color]]
//	hex = "#ff8800"
//	weight = 3
//
//	[[color]]
//	rgb = [40, 20, 60]
//	weight = 1
package palette

import (
	"slices"
	"strings"

	"github.com/matzehuels/randpix/pkg/core/color"
	"github.com/matzehuels/randpix/pkg/errors"
)

// DefaultName is the scheme used when none is configured.
const DefaultName = "neutral"

var w = color.Weighted

// Neutral is the default scheme: soft greys with a few muted accents.
var Neutral = color.Scheme{
	w(48, 48, 52, 4),
	w(92, 92, 98, 4),
	w(140, 140, 146, 3),
	w(190, 190, 196, 2),
	w(120, 110, 100, 1),
	w(100, 116, 130, 1),
}

// Warm leans on reds, oranges and golds.
var Warm = color.Scheme{
	w(178, 34, 34, 3),
	w(230, 92, 40, 3),
	w(245, 160, 40, 2),
	w(250, 210, 90, 1),
	w(110, 30, 40, 1),
}

// Cool leans on blues, teals and violets.
var Cool = color.Scheme{
	w(30, 60, 140, 3),
	w(40, 120, 190, 3),
	w(50, 170, 170, 2),
	w(120, 90, 180, 1),
	w(180, 220, 240, 1),
}

// Pastel is light and low-contrast.
var Pastel = color.Scheme{
	w(255, 209, 220, 1),
	w(255, 236, 179, 1),
	w(200, 237, 210, 1),
	w(190, 220, 250, 1),
	w(225, 205, 245, 1),
}

// Forest mixes greens and earth tones.
var Forest = color.Scheme{
	w(34, 85, 51, 4),
	w(70, 130, 60, 3),
	w(140, 170, 80, 2),
	w(110, 80, 50, 2),
	w(60, 45, 30, 1),
}

// Neon is saturated and high-contrast.
var Neon = color.Scheme{
	w(255, 0, 128, 1),
	w(0, 255, 200, 1),
	w(255, 230, 0, 1),
	w(120, 0, 255, 1),
	w(0, 160, 255, 1),
}

// Mono is a single black ink.
var Mono = color.Scheme{
	w(0, 0, 0, 1),
}

var builtin = map[string]color.Scheme{
	"neutral": Neutral,
	"warm":    Warm,
	"cool":    Cool,
	"pastel":  Pastel,
	"forest":  Forest,
	"neon":    Neon,
	"mono":    Mono,
}

// Names returns the built-in scheme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Lookup returns a copy of the named built-in scheme. Names are
// case-insensitive.
func Lookup(name string) (color.Scheme, error) {
	s, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.New(errors.ErrCodePaletteNotFound, "unknown palette: %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return s.Clone(), nil
}

// Default returns a copy of the default scheme.
func Default() color.Scheme {
	return Neutral.Clone()
}
