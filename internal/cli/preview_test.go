package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/randpix/pkg/core/color"
	"github.com/matzehuels/randpix/pkg/core/pattern"
)

func TestRenderBlocks(t *testing.T) {
	c := color.RGB(200, 10, 10)
	grid := pattern.Grid{
		{c, color.Sentinel, c},
		{color.Sentinel, c, color.Sentinel},
	}

	lines := strings.Split(renderBlocks(grid), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 6 {
			t.Errorf("line %d width = %d, want 6", i, w)
		}
	}
	if got := strings.Count(renderBlocks(grid), "█"); got != 2*grid.Filled() {
		t.Errorf("rendered %d block runes, want %d", got, 2*grid.Filled())
	}
}

func TestTileView(t *testing.T) {
	grid := pattern.Grid{{color.RGB(1, 2, 3), color.RGB(1, 2, 3)}, {color.Sentinel, color.Sentinel}}

	plain := tileView(grid, "")
	if h := lipgloss.Height(plain); h != 4 {
		t.Errorf("framed height = %d, want 4", h)
	}
	captioned := tileView(grid, "a-very-long-seed-name")
	if lipgloss.Height(captioned) != 5 {
		t.Errorf("captioned height = %d, want 5", lipgloss.Height(captioned))
	}
	if !strings.Contains(captioned, "…") {
		t.Error("long caption should be truncated")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"toolong", 5, "tool…"},
		{"x", 0, "x"},
	}
	for _, tt := range tests {
		if got := truncate(tt.s, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}

func TestPreviewCommand(t *testing.T) {
	if err := runCLI(t, "preview", "--seed", "alice", "--count", "2", "--size", "5"); err != nil {
		t.Fatalf("preview: %v", err)
	}
	if err := runCLI(t, "preview", "--count", "5000"); err == nil {
		t.Error("preview over the tile limit should fail")
	}
}
