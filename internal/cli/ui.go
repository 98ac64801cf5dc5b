package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/randpix/pkg/pipeline"
)

// ANSI 256 colors shared by every command.
var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorAmber = lipgloss.Color("220")
	colorRed   = lipgloss.Color("167")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

// =============================================================================
// Text Styles
// =============================================================================

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	styleLink      = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	styleDim       = lipgloss.NewStyle().Foreground(colorDim)
	styleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	styleWarning   = lipgloss.NewStyle().Foreground(colorAmber)
	styleError     = lipgloss.NewStyle().Foreground(colorRed)
	styleCommand   = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey       = lipgloss.NewStyle().Foreground(colorGray).Width(10)
)

// =============================================================================
// Tile & Table Styles
// =============================================================================

var (
	styleTileFrame   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
	styleTileCaption = lipgloss.NewStyle().Foreground(colorGray).MarginLeft(1)
	styleTableHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleTableBorder = lipgloss.NewStyle().Foreground(colorDim)

	styleCached = lipgloss.NewStyle().Foreground(colorGreen)
	styleFresh  = lipgloss.NewStyle().Foreground(colorGray)
)

// swatch renders one cell block in the given hex color.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(cellBlock)
}

// =============================================================================
// Status Lines
// =============================================================================

type statusKind int

const (
	statusSuccess statusKind = iota
	statusError
	statusWarning
	statusInfo
)

var statusIcons = map[statusKind]string{
	statusSuccess: styleCached.Render("✓"),
	statusError:   styleError.Render("✗"),
	statusWarning: styleWarning.Render("!"),
	statusInfo:    styleFresh.Render("›"),
}

func printStatus(w io.Writer, kind statusKind, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if kind == statusWarning {
		msg = styleWarning.Render(msg)
	}
	fmt.Fprintln(w, statusIcons[kind]+" "+msg)
}

func printSuccess(w io.Writer, format string, args ...any) {
	printStatus(w, statusSuccess, format, args...)
}

func printError(w io.Writer, format string, args ...any) {
	printStatus(w, statusError, format, args...)
}

func printWarning(w io.Writer, format string, args ...any) {
	printStatus(w, statusWarning, format, args...)
}

func printInfo(w io.Writer, format string, args ...any) {
	printStatus(w, statusInfo, format, args...)
}

// printDetail prints an indented secondary line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}

// =============================================================================
// Results
// =============================================================================

// printFile lists one written file.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render("→")+" "+styleValue.Render(path))
}

// printKeyValue prints a labeled value in an aligned column.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(value))
}

// printStats summarizes a generate run: tile count, share of painted cells
// and whether every artifact came from the cache.
func printStats(w io.Writer, stats pipeline.Stats, cells int, cached bool) {
	parts := []string{fmt.Sprintf("%d tiles", stats.Tiles)}
	if cells > 0 {
		parts = append(parts, fmt.Sprintf("%d%% filled", stats.Filled*100/cells))
	}

	line := make([]string, 0, len(parts)+1)
	for _, p := range parts {
		line = append(line, styleDim.Render(p))
	}
	if cached {
		line = append(line, styleCached.Render("cached"))
	} else {
		line = append(line, styleFresh.Render("fresh"))
	}
	fmt.Fprintln(w, "  "+strings.Join(line, styleDim.Render(" · ")))
}

// printNextStep suggests a follow-up command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, styleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}
