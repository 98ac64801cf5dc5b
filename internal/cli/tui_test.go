package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/randpix/pkg/core/pattern"
	"github.com/matzehuels/randpix/pkg/pipeline"
)

func press(t *testing.T, m PlayModel, keys ...string) PlayModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(PlayModel)
	}
	return m
}

func TestPlayModelSeeds(t *testing.T) {
	m := NewPlayModel(pipeline.Options{Seed: "alice"})
	if m.Err != nil {
		t.Fatalf("initial error: %v", m.Err)
	}
	if m.Seed() != "alice" {
		t.Errorf("Seed() = %q", m.Seed())
	}
	first := m.Grid

	m = press(t, m, "right", "right")
	if m.Seed() != "alice-2" {
		t.Errorf("after two steps Seed() = %q, want alice-2", m.Seed())
	}

	m = press(t, m, "left", "left", "left")
	if m.Index != 0 {
		t.Errorf("Index = %d, want 0", m.Index)
	}
	if !m.Grid.Equal(first) {
		t.Error("returning to the base seed should reproduce the first tile")
	}
}

func TestPlayModelMatchesPipeline(t *testing.T) {
	m := press(t, NewPlayModel(pipeline.Options{Seed: "bob", Size: 6}), "n")

	want, err := pipeline.NewRunner(nil, nil, nil).Generate(t.Context(), pipeline.Options{Seed: "bob-1", Size: 6})
	if err != nil {
		t.Fatal(err)
	}
	if !m.Grid.Equal(want) {
		t.Error("browser tile differs from the pipeline tile for the same seed")
	}
}

func TestPlayModelRandomStart(t *testing.T) {
	m := NewPlayModel(pipeline.Options{})
	if m.Base == "" {
		t.Fatal("browser should pick a seed when none is given")
	}
	before := m.Base
	m = press(t, m, "r")
	if m.Base == before || m.Index != 0 {
		t.Errorf("reroll kept seed %q index %d", m.Base, m.Index)
	}
}

func TestPlayModelSymmetryAndSize(t *testing.T) {
	m := NewPlayModel(pipeline.Options{Seed: "x", Size: 4})

	m = press(t, m, "s")
	if m.Opts.Symmetry != string(pattern.Horizontal) {
		t.Errorf("symmetry after one press = %q", m.Opts.Symmetry)
	}
	m = press(t, m, "s", "s")
	if m.Opts.Symmetry != string(pattern.Vertical) {
		t.Errorf("symmetry should cycle back, got %q", m.Opts.Symmetry)
	}

	m = press(t, m, "+")
	if m.Opts.Size != 5 || m.Grid.Height() != 5 {
		t.Errorf("size = %d, grid %d", m.Opts.Size, m.Grid.Height())
	}
	m = press(t, m, "-", "-", "-", "-", "-")
	if m.Opts.Size != playMinSize {
		t.Errorf("size = %d, want clamp at %d", m.Opts.Size, playMinSize)
	}
}

func TestPlayModelSelectAndQuit(t *testing.T) {
	m := NewPlayModel(pipeline.Options{Seed: "carol"})
	m = press(t, m, "n")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should quit")
	}
	if got := next.(PlayModel).Selected; got != "carol-1" {
		t.Errorf("Selected = %q", got)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestPlayModelError(t *testing.T) {
	m := NewPlayModel(pipeline.Options{Seed: "x", Palette: "plaid"})
	if m.Err == nil {
		t.Fatal("unknown palette should surface as an error")
	}
	if !strings.Contains(m.View(), "plaid") {
		t.Errorf("view should show the error, got:\n%s", m.View())
	}
}

func TestPlayModelView(t *testing.T) {
	m := NewPlayModel(pipeline.Options{Seed: "dave", Size: 4})
	view := m.View()
	for _, want := range []string{"randpix", "4×4", "vertical", "dave", "reroll"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestGenerateHint(t *testing.T) {
	m := PlayModel{
		Opts:     pipeline.Options{Size: 9, Symmetry: "QUAD", Palette: "warm"},
		Selected: "it's-1",
	}
	want := `randpix generate --seed 'it'\''s-1' --size 9 --symmetry quad --palette warm`
	if got := generateHint(m); got != want {
		t.Errorf("generateHint = %q, want %q", got, want)
	}
}
