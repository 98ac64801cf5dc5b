package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/randpix/pkg/core/palette"
	"github.com/matzehuels/randpix/pkg/core/render/sink"
	"github.com/matzehuels/randpix/pkg/pipeline"
)

// stdoutPath selects standard output as the destination.
const stdoutPath = "-"

// tileFlags holds the generation flags shared by generate, preview and play.
type tileFlags struct {
	size        int
	scale       int
	symmetry    string
	palette     string
	paletteFile string
	fill        float64
	color       string
	seed        string
	randomSeed  bool
	bias        int
	grayscale   bool
}

// generateFlags holds flag values for the generate command.
type generateFlags struct {
	tileFlags
	count   int
	formats string
	upscale int
	quality int
	output  string
	noCache bool
	refresh bool
}

// register adds the tile flags to cmd.
func (f *tileFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVarP(&f.size, "size", "n", pipeline.DefaultSize, "tile side length in cells")
	flags.IntVar(&f.scale, "scale", pipeline.DefaultScale, "pixels per cell")
	flags.StringVar(&f.symmetry, "symmetry", pipeline.DefaultSymmetry, "mirror mode: vertical, horizontal, quad")
	flags.StringVarP(&f.palette, "palette", "p", "", "built-in palette name (see 'randpix palettes')")
	flags.StringVar(&f.paletteFile, "palette-file", "", "TOML palette file")
	flags.Float64Var(&f.fill, "fill", pipeline.DefaultFillFactor, "probability that a cell is filled, in [0, 1]")
	flags.StringVar(&f.color, "color", "", "paint every filled cell with one hex color")
	flags.StringVarP(&f.seed, "seed", "s", "", "seed for reproducible output")
	flags.BoolVar(&f.randomSeed, "random-seed", false, "use a fresh random seed and print it")
	flags.IntVar(&f.bias, "bias", 0, "random per-cell channel jitter")
	flags.BoolVar(&f.grayscale, "grayscale", false, "jitter all channels of a cell together")

	cmd.MarkFlagsMutuallyExclusive("seed", "random-seed")
	cmd.MarkFlagsMutuallyExclusive("palette", "palette-file")
	_ = cmd.RegisterFlagCompletionFunc("symmetry", cobra.FixedCompletions(
		[]string{"vertical", "horizontal", "quad"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("palette", cobra.FixedCompletions(
		palette.Names(), cobra.ShellCompDirectiveNoFileComp))
}

// apply overlays explicitly set flags on opts.
func (f *tileFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	flags := cmd.Flags()
	if flags.Changed("size") {
		opts.Size = f.size
	}
	if flags.Changed("scale") {
		opts.Scale = f.scale
	}
	if flags.Changed("symmetry") {
		opts.Symmetry = f.symmetry
	}
	if flags.Changed("palette") {
		opts.Palette, opts.PaletteFile = f.palette, ""
	}
	if flags.Changed("palette-file") {
		opts.PaletteFile, opts.Palette = f.paletteFile, ""
	}
	if flags.Changed("fill") {
		fill := f.fill
		opts.FillFactor = &fill
	}
	if flags.Changed("color") {
		opts.Color = f.color
	}
	if flags.Changed("seed") {
		opts.Seed = f.seed
	}
	if f.randomSeed {
		opts.Seed = uuid.NewString()
	}
	if flags.Changed("bias") {
		opts.ColorBias = f.bias
	}
	if flags.Changed("grayscale") {
		opts.Grayscale = f.grayscale
	}
}

// generateCommand creates the generate command for writing tiles to files.
func (c *CLI) generateCommand() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate tiles and write them to files",
		Long: `Generate one or more tiles and write them as images, SVG or a JSON grid.

The output format follows the --output extension unless --format is given.
With --count N and a seed, tile i uses the seed "<seed>-i".`,
		Example: `  randpix generate --seed alice -o alice.png
  randpix generate --seed alice --size 9 --symmetry quad --format png,svg
  randpix generate --count 10 --palette warm --scale 8
  randpix generate --random-seed --format json -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&flags.count, "count", "c", 1, "number of tiles")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output formats, comma separated: png, jpeg, gif, bmp, tiff, svg, json")
	cmd.Flags().IntVar(&flags.upscale, "upscale", 0, "nearest-neighbor enlargement factor for raster output")
	cmd.Flags().IntVar(&flags.quality, "quality", 0, "JPEG quality 1-100 (default 95)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file or base name ('-' for stdout)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "regenerate even when cached")

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		formatNames(), cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, flags generateFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	opts := c.baseOptions()
	flags.apply(cmd, &opts)
	if cmd.Flags().Changed("count") {
		opts.Count = flags.count
	}
	if cmd.Flags().Changed("upscale") {
		opts.Upscale = flags.upscale
	}
	if cmd.Flags().Changed("quality") {
		opts.Quality = flags.quality
	}
	opts.Refresh = flags.refresh
	if opts.Refresh && opts.Seed == "" {
		printWarning(cmd.ErrOrStderr(), "--refresh has no effect without a seed; unseeded tiles are never cached")
	}

	base, formats, err := resolveOutput(flags.output, flags.formats, opts.Formats)
	if err != nil {
		return err
	}
	opts.Formats = formats
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	toStdout := base == stdoutPath
	if toStdout && (opts.Count > 1 || len(opts.Formats) > 1) {
		return fmt.Errorf("--output - needs exactly one tile and one format")
	}
	if base == "" {
		base = defaultBaseName(opts.Seed)
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	if toStdout {
		result, err := runner.Execute(ctx, opts)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(result.Tiles[0].Artifacts[opts.Formats[0]])
		return err
	}

	spinner := newSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Generating %d tile(s)...", opts.Count))
	spinner.Start()
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.Stop()
		return err
	}
	spinner.SetMessage("Writing files...")

	var written []string
	for i, tile := range result.Tiles {
		for _, format := range opts.Formats {
			path := outputPath(base, format, i, opts.Count)
			if err := writeFile(path, tile.Artifacts[format]); err != nil {
				spinner.StopWithError("Write failed")
				return err
			}
			written = append(written, path)
		}
	}
	spinner.StopWithSuccess(fmt.Sprintf("Generated %d tile(s)", result.Stats.Tiles))
	prog.done("Generation complete", "tiles", result.Stats.Tiles, "files", len(written))

	out := cmd.OutOrStdout()
	for _, path := range written {
		printFile(out, path)
	}
	printStats(out, result.Stats, result.Stats.Tiles*opts.Size*opts.Size, result.CacheInfo.RenderHits == result.Stats.Tiles)
	if flags.randomSeed {
		printKeyValue(out, "Seed", opts.Seed)
	}
	return nil
}

// resolveOutput splits output into a base path and the formats to write.
// An output extension picks the format when --format is absent; configured
// formats apply when neither is set.
func resolveOutput(output, formatFlag string, configured []string) (string, []string, error) {
	formats := configured
	if formatFlag != "" {
		formats = parseFormats(formatFlag)
	}
	if output == "" || output == stdoutPath {
		if len(formats) == 0 {
			formats = parseFormats("")
		}
		return output, formats, nil
	}

	ext := filepath.Ext(output)
	if ext == "" {
		if len(formats) == 0 {
			formats = parseFormats("")
		}
		return output, formats, nil
	}
	f, err := sink.FormatFromFilename(output)
	if err != nil {
		return "", nil, err
	}
	if formatFlag == "" {
		formats = []string{string(f)}
	}
	return strings.TrimSuffix(output, ext), formats, nil
}

// outputPath returns the file for tile i in format. Multi-tile runs append
// "-1", "-2", ... to the base name.
func outputPath(base, format string, i, count int) string {
	ext := "." + format
	if f, err := sink.ParseFormat(format); err == nil {
		ext = f.Ext()
	}
	if count > 1 {
		return fmt.Sprintf("%s-%d%s", base, i+1, ext)
	}
	return base + ext
}

// defaultBaseName derives a file name from the seed.
func defaultBaseName(seed string) string {
	if seed == "" {
		return appName
	}
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, seed)
	if safe = strings.Trim(safe, "."); safe == "" {
		return appName
	}
	return safe
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func formatNames() []string {
	names := make([]string, len(sink.Formats))
	for i, f := range sink.Formats {
		names[i] = string(f)
	}
	return names
}
