package surface

import (
	"image"
	stdcolor "image/color"
	"strings"
	"testing"

	"github.com/matzehuels/randpix/pkg/core/color"
	"github.com/matzehuels/randpix/pkg/errors"
)

func TestParseCSS(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"rgb(10, 20, 30)", color.RGB(10, 20, 30)},
		{"rgb(0,0,0)", color.RGB(0, 0, 0)},
		{" rgb( 300 , -5 , 255 ) ", color.RGB(300, -5, 255)},
	}
	for _, tt := range tests {
		got, err := ParseCSS(tt.in)
		if err != nil {
			t.Errorf("ParseCSS(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCSS(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "red", "#ffffff", "rgb(1, 2)", "rgb(1, 2, 3"} {
		if _, err := ParseCSS(bad); !errors.Is(err, errors.ErrCodeInvalidColor) {
			t.Errorf("ParseCSS(%q) error = %v, want INVALID_COLOR", bad, err)
		}
	}
}

func TestImageFillAndClear(t *testing.T) {
	s := NewImage(4, 4)
	img := s.Image()

	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("new surface pixel = %v, want transparent", got)
	}

	s.SetFillColor("rgb(10, 20, 30)")
	s.FillRect(1, 1, 2, 2)

	want := stdcolor.RGBA{R: 10, G: 20, B: 30, A: 255}
	for _, p := range []image.Point{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		if got := img.RGBAAt(p.X, p.Y); got != want {
			t.Errorf("pixel %v = %v, want %v", p, got, want)
		}
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("pixel outside fill = %v, want transparent", got)
	}

	s.ClearRect(0, 0, 4, 4)
	if got := img.RGBAAt(1, 1); got != (stdcolor.RGBA{}) {
		t.Errorf("cleared pixel = %v, want transparent", got)
	}
}

func TestImageClampsChannels(t *testing.T) {
	s := NewImage(1, 1)
	s.SetFillColor("rgb(300, -20, 128)")
	s.FillRect(0, 0, 1, 1)

	want := stdcolor.RGBA{R: 255, G: 0, B: 128, A: 255}
	if got := s.Image().RGBAAt(0, 0); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestImageIgnoresBadFill(t *testing.T) {
	s := NewImage(1, 1)
	s.SetFillColor("rgb(1, 2, 3)")
	s.SetFillColor("not a color")
	s.FillRect(0, 0, 1, 1)

	want := stdcolor.RGBA{R: 1, G: 2, B: 3, A: 255}
	if got := s.Image().RGBAAt(0, 0); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestSVG(t *testing.T) {
	s := NewSVG(4, 4)
	s.SetFillColor("rgb(10, 20, 30)")
	s.FillRect(0, 0, 1, 1)
	s.FillRect(3, 0, 1, 1)

	out := string(s.Bytes())
	if !strings.HasPrefix(out, "<svg") || !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("not an svg document:\n%s", out)
	}
	if !strings.Contains(out, `viewBox="0 0 4 4"`) {
		t.Errorf("missing viewBox:\n%s", out)
	}
	if n := strings.Count(out, `fill="rgb(10, 20, 30)"`); n != 2 {
		t.Errorf("rect count = %d, want 2", n)
	}
	if !strings.Contains(out, `<rect x="3" y="0" width="1" height="1"`) {
		t.Errorf("missing rect at x=3:\n%s", out)
	}

	s.ClearRect(0, 0, 4, 4)
	if s.Len() != 0 {
		t.Errorf("Len after clear = %d, want 0", s.Len())
	}
}

func TestSVGPartialClear(t *testing.T) {
	s := NewSVG(4, 4)
	s.FillRect(0, 0, 1, 1)
	s.FillRect(2, 2, 2, 2)

	s.ClearRect(0, 0, 2, 2)
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(2, 2)
	r.ClearRect(0, 0, 2, 2)
	r.SetFillColor("rgb(1, 2, 3)")
	r.FillRect(0, 0, 1, 1)
	r.FillRect(1, 0, 1, 1)

	if len(r.Calls) != 4 {
		t.Fatalf("Calls = %d, want 4", len(r.Calls))
	}
	if r.Calls[0].Op != OpClear || r.Calls[0].W != 2 {
		t.Errorf("first call = %+v", r.Calls[0])
	}
	fills := r.Fills()
	if len(fills) != 2 {
		t.Fatalf("Fills = %d, want 2", len(fills))
	}
	if fills[1].X != 1 || fills[1].Color != "rgb(1, 2, 3)" {
		t.Errorf("second fill = %+v", fills[1])
	}

	r.Reset()
	if len(r.Calls) != 0 {
		t.Errorf("Calls after Reset = %d", len(r.Calls))
	}
}
