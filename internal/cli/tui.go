package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/matzehuels/randpix/pkg/core/pattern"
	"github.com/matzehuels/randpix/pkg/core/render/surface"
	"github.com/matzehuels/randpix/pkg/errors"
	"github.com/matzehuels/randpix/pkg/pipeline"
)

// Browser styles
var (
	playKeyStyle   = lipgloss.NewStyle().Foreground(colorCyan)
	playDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	playErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// Limits for interactive size changes.
const (
	playMinSize = 2
	playMaxSize = 32
)

// =============================================================================
// PlayModel - Interactive tile browser
// =============================================================================

// PlayModel is the bubbletea model for browsing seeded tiles.
//
// The browser is always seeded: tile n of base seed s uses "s-n", the same
// derivation generate --count uses, so any tile on screen can be written
// to disk again with the printed seed.
type PlayModel struct {
	Opts     pipeline.Options
	Base     string
	Index    int
	Grid     pattern.Grid
	Err      error
	Selected string
}

// NewPlayModel creates a browser starting at opts.Seed, or at a random seed
// when none is set.
func NewPlayModel(opts pipeline.Options) PlayModel {
	m := PlayModel{Opts: opts, Base: opts.Seed}
	if m.Base == "" {
		m.Base = uuid.NewString()
	}
	return m.regenerate()
}

// Seed returns the seed of the tile on screen.
func (m PlayModel) Seed() string {
	if m.Index == 0 {
		return m.Base
	}
	return fmt.Sprintf("%s-%d", m.Base, m.Index)
}

func (m PlayModel) regenerate() PlayModel {
	opts := m.Opts
	opts.Seed = m.Seed()
	gen, err := pipeline.GeneratorFor(opts, surface.NewRecorder)
	if err != nil {
		m.Err = err
		m.Grid = nil
		return m
	}
	m.Err = nil
	m.Grid = gen.Pattern()
	return m
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		m.Selected = m.Seed()
		return m, tea.Quit
	case "r", " ":
		m.Base, m.Index = uuid.NewString(), 0
	case "right", "l", "n":
		m.Index++
	case "left", "h", "p":
		if m.Index == 0 {
			return m, nil
		}
		m.Index--
	case "s":
		m.Opts.Symmetry = string(nextSymmetry(m.Opts.Symmetry))
	case "+", "=":
		m.Opts.Size = clampSize(m.size() + 1)
	case "-":
		m.Opts.Size = clampSize(m.size() - 1)
	default:
		return m, nil
	}
	return m.regenerate(), nil
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("randpix"))
	b.WriteString(playDimStyle.Render(fmt.Sprintf("  %d×%d %s", m.size(), m.size(), strings.ToLower(m.symmetry()))))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(playErrorStyle.Render(errors.UserMessage(m.Err)))
	} else {
		b.WriteString(tileView(m.Grid, m.Seed()))
	}
	b.WriteString("\n\n")

	help := []string{
		playKeyStyle.Render("←/→") + " seed",
		playKeyStyle.Render("r") + " reroll",
		playKeyStyle.Render("s") + " symmetry",
		playKeyStyle.Render("+/-") + " size",
		playKeyStyle.Render("⏎") + " pick",
		playKeyStyle.Render("q") + " quit",
	}
	b.WriteString(playDimStyle.Render(strings.Join(help, "  ")))
	return b.String()
}

func (m PlayModel) size() int {
	if m.Opts.Size == 0 {
		return pipeline.DefaultSize
	}
	return m.Opts.Size
}

func (m PlayModel) symmetry() string {
	if m.Opts.Symmetry == "" {
		return pipeline.DefaultSymmetry
	}
	return m.Opts.Symmetry
}

// nextSymmetry cycles through the mirror modes. Unknown values restart the cycle.
func nextSymmetry(current string) pattern.Symmetry {
	sym, err := pattern.ParseSymmetry(current)
	if err != nil {
		return pattern.Symmetries[0]
	}
	for i, s := range pattern.Symmetries {
		if s == sym {
			return pattern.Symmetries[(i+1)%len(pattern.Symmetries)]
		}
	}
	return pattern.Symmetries[0]
}

func clampSize(n int) int {
	return max(playMinSize, min(n, playMaxSize))
}
