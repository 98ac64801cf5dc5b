package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// Limits on tile configuration. Tiles are meant to be small; the limits keep
// a single request from allocating an unbounded surface.
const (
	MaxSize  = 256
	MaxScale = 512
	MaxBias  = 255

	// MaxPixels bounds the side length of any painted or encoded tile after
	// scaling and upscaling. 4096x4096 RGBA is 64 MiB.
	MaxPixels = 4096
)

// ValidateSize checks that a logical grid side length is in [1, MaxSize].
func ValidateSize(size int) error {
	if size < 1 {
		return New(ErrCodeInvalidConfig, "size must be at least 1, got %d", size)
	}
	if size > MaxSize {
		return New(ErrCodeInvalidConfig, "size too large (max %d), got %d", MaxSize, size)
	}
	return nil
}

// ValidateScale checks that the pixels-per-cell factor is in [1, MaxScale].
func ValidateScale(scale int) error {
	if scale < 1 {
		return New(ErrCodeInvalidConfig, "scale must be at least 1, got %d", scale)
	}
	if scale > MaxScale {
		return New(ErrCodeInvalidConfig, "scale too large (max %d), got %d", MaxScale, scale)
	}
	return nil
}

// ValidatePixels checks that size*scale*upscale stays within MaxPixels.
// An upscale below 1 counts as 1. Inputs must already be within their own
// limits, which keeps the product far from overflow.
func ValidatePixels(size, scale, upscale int) error {
	side := size * scale * max(upscale, 1)
	if side > MaxPixels {
		return New(ErrCodeInvalidConfig, "tile too large: %d pixels per side (max %d)", side, MaxPixels)
	}
	return nil
}

// ValidateFillFactor checks that the fill probability is a number in [0, 1].
func ValidateFillFactor(f float64) error {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return New(ErrCodeInvalidConfig, "fill factor must be within [0, 1], got %v", f)
	}
	return nil
}

// ValidateBias checks that the color bias magnitude is in [0, MaxBias].
func ValidateBias(bias int) error {
	if bias < 0 {
		return New(ErrCodeInvalidConfig, "color bias cannot be negative, got %d", bias)
	}
	if bias > MaxBias {
		return New(ErrCodeInvalidConfig, "color bias too large (max %d), got %d", MaxBias, bias)
	}
	return nil
}

// ValidateSeed rejects seeds that cannot be used safely as cache keys or
// URL path segments.
func ValidateSeed(seed string) error {
	if len(seed) > 256 {
		return New(ErrCodeInvalidConfig, "seed too long (max 256 characters)")
	}
	for _, r := range seed {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "seed contains invalid control characters")
		}
	}
	return nil
}

// ValidateFilename validates an output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - No path traversal sequences (..) after cleaning
func ValidateFilename(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return New(ErrCodeInvalidPath, "path cannot escape the working directory (..)")
	}
	return nil
}
