package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/randpix/pkg/core/color"
	"github.com/matzehuels/randpix/pkg/core/palette"
)

// palettesCommand creates the palettes command for listing built-in palettes.
func (c *CLI) palettesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List built-in palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, palettesTable())
			fmt.Fprintln(out)
			printNextStep(out, "Customize one", "randpix palettes export warm > my.toml")
			return nil
		},
	}

	cmd.AddCommand(c.palettesExportCommand())
	return cmd
}

// palettesExportCommand creates the "palettes export" subcommand, which prints
// a built-in palette in the palette file format.
func (c *CLI) palettesExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "export <name>",
		Short:     "Print a built-in palette as a TOML palette file",
		Args:      cobra.ExactArgs(1),
		ValidArgs: palette.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := palette.Lookup(args[0])
			if err != nil {
				return err
			}
			data, err := palette.FromScheme(strings.ToLower(strings.TrimSpace(args[0])), scheme).Encode()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), data)
			return nil
		},
	}
}

func palettesTable() string {
	rows := [][]string{}
	for _, name := range palette.Names() {
		scheme, err := palette.Lookup(name)
		if err != nil {
			continue
		}
		label := name
		if name == palette.DefaultName {
			label += " (default)"
		}
		rows = append(rows, []string{label, swatches(scheme), weights(scheme)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("Palette", "Colors", "Weights").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader
			}
			if col == 2 {
				return styleDim
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}

// swatches renders one colored block per scheme entry.
func swatches(s color.Scheme) string {
	var b strings.Builder
	for _, c := range s {
		b.WriteString(swatch(c.Hex()))
	}
	return b.String()
}

func weights(s color.Scheme) string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = strconv.FormatFloat(c.Weight, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
