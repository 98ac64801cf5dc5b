package surface

import (
	"fmt"
	"strings"

	"github.com/matzehuels/randpix/pkg/core/color"
	"github.com/matzehuels/randpix/pkg/errors"
)

// ParseCSS reads an "rgb(r, g, b)" fill string. Channels are returned as
// written; callers clamp when they need byte values.
func ParseCSS(css string) (color.Color, error) {
	var r, g, b int
	s := strings.ReplaceAll(strings.TrimSpace(css), " ", "")
	if _, err := fmt.Sscanf(s, "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
		return color.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "parse fill %q", css)
	}
	if !strings.HasSuffix(s, ")") {
		return color.Color{}, errors.New(errors.ErrCodeInvalidColor, "parse fill %q: missing )", css)
	}
	return color.RGB(r, g, b), nil
}
