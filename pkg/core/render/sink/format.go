package sink

import (
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/randpix/pkg/errors"
)

// Format is an output format name.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	SVG  Format = "svg"
	JSON Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{PNG, JPEG, GIF, BMP, TIFF, SVG, JSON}

var imagingFormats = map[Format]imaging.Format{
	PNG:  imaging.PNG,
	JPEG: imaging.JPEG,
	GIF:  imaging.GIF,
	BMP:  imaging.BMP,
	TIFF: imaging.TIFF,
}

var contentTypes = map[Format]string{
	PNG:  "image/png",
	JPEG: "image/jpeg",
	GIF:  "image/gif",
	BMP:  "image/bmp",
	TIFF: "image/tiff",
	SVG:  "image/svg+xml",
	JSON: "application/json",
}

// ParseFormat accepts a format name or extension ("jpg", ".PNG", "tif").
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	switch Format(name) {
	case SVG, JSON:
		return Format(name), nil
	}
	f, err := imaging.FormatFromExtension(name)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidFormat, err, "unknown format %q", s)
	}
	return fromImaging(f), nil
}

// FormatFromFilename derives the format from a file extension.
func FormatFromFilename(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "no extension in %q", path)
	}
	return ParseFormat(ext)
}

func fromImaging(f imaging.Format) Format {
	for k, v := range imagingFormats {
		if v == f {
			return k
		}
	}
	return ""
}

// IsRaster reports whether f is produced from pixels.
func (f Format) IsRaster() bool {
	_, ok := imagingFormats[f]
	return ok
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	if ct, ok := contentTypes[f]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Ext returns the conventional file extension, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}
