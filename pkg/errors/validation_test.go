package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateSize(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"one", 1, false},
		{"default", 8, false},
		{"odd", 7, false},
		{"max", MaxSize, false},

		{"zero", 0, true},
		{"negative", -4, true},
		{"too large", MaxSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSize(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("ValidateSize(%d) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidateScale(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"one", 1, false},
		{"large", 64, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"too large", MaxScale + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScale(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScale(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePixels(t *testing.T) {
	tests := []struct {
		name                 string
		size, scale, upscale int
		wantErr              bool
	}{
		{"default tile", 8, 16, 0, false},
		{"exact budget", 8, 16, 32, false},
		{"upscale below one counts as one", 256, 16, -1, false},
		{"scale over budget", 256, 512, 0, true},
		{"upscale over budget", 8, 16, 64, true},
		{"largest per-field values", MaxSize, MaxScale, 64, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePixels(tt.size, tt.scale, tt.upscale)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePixels(%d, %d, %d) error = %v, wantErr %v", tt.size, tt.scale, tt.upscale, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidateFillFactor(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"half", 0.5, false},
		{"one", 1, false},
		{"negative", -0.1, true},
		{"above one", 1.01, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFillFactor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFillFactor(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateBias(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"disabled", 0, false},
		{"small", 16, false},
		{"max", MaxBias, false},
		{"negative", -1, true},
		{"too large", MaxBias + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBias(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBias(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSeed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"word", "alice", false},
		{"number", "12345", false},
		{"unicode", "café", false},
		{"too long", strings.Repeat("a", 300), true},
		{"newline", "a\nb", true},
		{"null byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeed(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSeed(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "tile.png", false},
		{"nested", "out/tiles/a.png", false},
		{"absolute", "/tmp/tile.png", false},
		{"dot segment inside", "out/../tile.png", false},

		{"empty", "", true},
		{"escapes", "../tile.png", true},
		{"parent only", "..", true},
		{"null byte", "tile\x00.png", true},
		{"control char", "tile\x01.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
