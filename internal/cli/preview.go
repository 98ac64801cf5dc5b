package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/randpix/pkg/core/pattern"
)

// cellBlock is two columns wide so cells look roughly square in a terminal.
const (
	cellBlock = "██"
	cellEmpty = "  "
)

// previewCommand creates the preview command that prints tiles in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		flags tileFlags
		count int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print tiles as colored blocks in the terminal",
		Example: `  randpix preview --seed alice
  randpix preview --count 4 --palette neon --symmetry quad`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := c.baseOptions()
			flags.apply(cmd, &opts)
			opts.Count = count
			if err := opts.ValidateForGenerate(); err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			views := make([]string, 0, opts.Count)
			for i := range opts.Count {
				tileOpts := opts
				tileOpts.Seed = opts.SeedFor(i)
				grid, err := runner.Generate(ctx, tileOpts)
				if err != nil {
					return err
				}
				views = append(views, tileView(grid, tileOpts.Seed))
			}
			fmt.Fprintln(cmd.OutOrStdout(), lipgloss.JoinHorizontal(lipgloss.Top, views...))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of tiles, printed side by side")

	return cmd
}

// tileView frames the block rendering of grid with an optional caption.
func tileView(grid pattern.Grid, caption string) string {
	view := styleTileFrame.Render(renderBlocks(grid))
	if caption == "" {
		return view
	}
	return lipgloss.JoinVertical(lipgloss.Left, view, styleTileCaption.Render(truncate(caption, lipgloss.Width(view)-1)))
}

// renderBlocks draws one block per cell. Sentinel cells are left blank.
func renderBlocks(grid pattern.Grid) string {
	var b strings.Builder
	for r, row := range grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			if c.IsSentinel() {
				b.WriteString(cellEmpty)
				continue
			}
			b.WriteString(swatch(c.Clamped().Hex()))
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	if n <= 1 || lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) > n-1 {
		r = r[:n-1]
	}
	return string(r) + "…"
}
