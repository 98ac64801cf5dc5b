package cli

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// playCommand creates the play command, an interactive tile browser.
func (c *CLI) playCommand() *cobra.Command {
	var flags tileFlags

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Browse tiles interactively",
		Long: `Browse tiles in the terminal. Step through derived seeds, reroll a new
random seed, and cycle symmetry or size. Press enter to print the command
that writes the tile on screen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			flags.apply(cmd, &opts)

			p := tea.NewProgram(NewPlayModel(opts), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(PlayModel); ok && m.Selected != "" {
				out := cmd.OutOrStdout()
				printSuccess(out, "Picked seed %s", styleHighlight.Render(m.Selected))
				printNextStep(out, "Write it with", generateHint(m))
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// generateHint returns the generate invocation reproducing the picked tile.
func generateHint(m PlayModel) string {
	args := []string{appName, "generate", "--seed", shellQuote(m.Selected)}
	if m.Opts.Size != 0 {
		args = append(args, "--size", strconv.Itoa(m.Opts.Size))
	}
	if m.Opts.Symmetry != "" {
		args = append(args, "--symmetry", strings.ToLower(m.Opts.Symmetry))
	}
	if m.Opts.Palette != "" {
		args = append(args, "--palette", shellQuote(m.Opts.Palette))
	}
	if m.Opts.PaletteFile != "" {
		args = append(args, "--palette-file", shellQuote(m.Opts.PaletteFile))
	}
	return strings.Join(args, " ")
}

// shellQuote single-quotes s unless it is made of safe characters only.
func shellQuote(s string) string {
	safe := s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("-_./:", r))
	}) < 0
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
