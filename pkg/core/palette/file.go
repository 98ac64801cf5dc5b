package palette

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/randpix/pkg/core/color"
	"github.com/matzehuels/randpix/pkg/errors"
)

// File is the on-disk form of a palette.
type File struct {
	Name   string      `toml:"name"`
	Colors []FileColor `toml:"color"`
}

// FileColor is one entry of a palette file. Exactly one of Hex or RGB is set.
type FileColor struct {
	Hex    string  `toml:"hex,omitempty"`
	RGB    []int   `toml:"rgb,omitempty"`
	Weight float64 `toml:"weight"`
}

// Load reads and validates a palette file.
func Load(path string) (color.Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodePaletteNotFound, err, "palette file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPalette, err, "read palette %s", path)
	}
	s, _, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPalette, err, "parse palette %s", path)
	}
	return s, nil
}

// Parse decodes palette TOML and returns the scheme and its declared name.
func Parse(data string) (color.Scheme, string, error) {
	var f File
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInvalidPalette, err, "decode toml")
	}
	s, err := f.Scheme()
	if err != nil {
		return nil, "", err
	}
	return s, f.Name, nil
}

// Scheme converts f into a validated color scheme.
func (f File) Scheme() (color.Scheme, error) {
	s := make(color.Scheme, 0, len(f.Colors))
	for i, fc := range f.Colors {
		c, err := fc.color()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPalette, err, "color %d", i)
		}
		c.Weight = fc.Weight
		s = append(s, c)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (fc FileColor) color() (color.Color, error) {
	switch {
	case fc.Hex != "" && len(fc.RGB) > 0:
		return color.Color{}, errors.New(errors.ErrCodeInvalidColor, "set either hex or rgb, not both")
	case fc.Hex != "":
		return color.ParseHex(fc.Hex)
	case len(fc.RGB) == 3:
		for _, v := range fc.RGB {
			if v < 0 || v > 255 {
				return color.Color{}, errors.New(errors.ErrCodeInvalidColor, "rgb channel %d outside [0, 255]", v)
			}
		}
		return color.RGB(fc.RGB[0], fc.RGB[1], fc.RGB[2]), nil
	}
	return color.Color{}, errors.New(errors.ErrCodeInvalidColor, "color needs hex or a 3-element rgb")
}

// FromScheme builds the file form of s, writing colors as hex.
func FromScheme(name string, s color.Scheme) File {
	f := File{Name: name}
	for _, c := range s {
		f.Colors = append(f.Colors, FileColor{Hex: c.Hex(), Weight: c.Weight})
	}
	return f
}

// Encode writes f as TOML.
func (f File) Encode() (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(f); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode palette")
	}
	return b.String(), nil
}
