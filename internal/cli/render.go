package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lycosa9527/mindgraph/pkg/config"
	"github.com/lycosa9527/mindgraph/pkg/pipeline"
	"github.com/lycosa9527/mindgraph/pkg/theme"
)

// stdinBase is the output base name when the spec comes from stdin.
const stdinBase = "diagram"

// renderOpts holds the command-line flags for the render command.
// These options control the diagram type, layout dimensions, theming,
// output formats, and caching.
type renderOpts struct {
	output        string   // output file, "-" for stdout, or base path for multiple formats
	typeName      string   // diagram type override
	formats       []string // output formats: "svg", "json", "dot"
	engine        string   // svg engine: "native" or "graphviz"
	themePath     string   // JSON file with theme overrides
	configPath    string   // explicit config file path
	width         float64  // canvas width floor in pixels
	height        float64  // canvas height floor in pixels
	padding       float64  // canvas padding in pixels
	topicFontSize float64  // topic font size in pixels
	labelFontSize float64  // label font size in pixels
	noWatermark   bool     // disable the watermark
	watermarkText string   // override the watermark text
	noCache       bool     // disable caching
	refresh       bool     // recompute ignoring cached results
}

// renderCommand creates the render command for generating diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{engine: pipeline.EngineNative}

	cmd := &cobra.Command{
		Use:   "render [spec-file]",
		Short: "Render a graph spec to diagram file(s)",
		Long: `Render a JSON or YAML graph spec to SVG, JSON layout, or DOT output.

The spec names its own diagram type via the "type" field; use --type to
override it or to supply one the spec omits. Pass "-" to read the spec
from stdin.

Layouts and artifacts are cached locally, so re-rendering an unchanged
spec is fast. Use --refresh to recompute or --no-cache to skip caching.

Examples:
  mindgraph render sun.json                       # writes sun.svg
  mindgraph render sun.yaml -o out/sun.svg        # explicit output path
  mindgraph render sun.json -f svg,json,dot       # one file per format
  mindgraph render topic.json -t mind_map         # override the type
  cat spec.json | mindgraph render - -o -         # stdin to stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := pipeline.ValidateEngine(opts.engine); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	// Output flags
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.engine, "engine", opts.engine, "svg engine: native (default), graphviz")

	// Spec flags
	cmd.Flags().StringVarP(&opts.typeName, "type", "t", "", "diagram type (overrides the spec's own type field)")

	// Layout flags (0 keeps the default; the canvas still grows to fit)
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height in pixels")
	cmd.Flags().Float64Var(&opts.padding, "padding", 0, "canvas padding in pixels")
	cmd.Flags().Float64Var(&opts.topicFontSize, "topic-font-size", 0, "topic font size in pixels")
	cmd.Flags().Float64Var(&opts.labelFontSize, "label-font-size", 0, "label font size in pixels")

	// Theme flags
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "JSON file with theme overrides")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: ./mindgraph.toml)")
	cmd.Flags().BoolVar(&opts.noWatermark, "no-watermark", false, "disable the watermark")
	cmd.Flags().StringVar(&opts.watermarkText, "watermark-text", "", "override the watermark text")

	// Cache flags
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute ignoring cached results")

	return cmd
}

// runRender reads the spec, executes the pipeline, and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return err
	}

	raw, err := readSpec(input)
	if err != nil {
		return err
	}

	popts, err := buildOptions(cfg, opts)
	if err != nil {
		return err
	}
	popts.Logger = c.Logger

	if opts.refresh && opts.noCache {
		printWarning("--refresh has no effect with --no-cache")
	}

	runner, err := c.newRunner(ctx, opts.noCache, cfg)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering diagram...")
	spinner.Start()

	result, err := runner.Execute(ctx, raw, popts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	printSuccess("Rendered %s", result.Graph.Type)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount,
		result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)

	return writeArtifacts(result.Artifacts, opts.formats, input, opts.output)
}

// buildOptions assembles pipeline options from the config file and flags.
// Flags win over the config; unset values fall through to the defaults.
func buildOptions(cfg *config.Config, opts *renderOpts) (pipeline.Options, error) {
	th := cfg.ToTheme()
	if opts.themePath != "" {
		overrides, err := readTheme(opts.themePath)
		if err != nil {
			return pipeline.Options{}, err
		}
		th = th.Merge(overrides)
	}
	if opts.noWatermark {
		th.Watermark.Disabled = true
	}
	if opts.watermarkText != "" {
		th.Watermark.Text = opts.watermarkText
	}

	return pipeline.Options{
		Type:          opts.typeName,
		Refresh:       opts.refresh,
		Width:         firstNonZero(opts.width, cfg.Dimensions.Width),
		Height:        firstNonZero(opts.height, cfg.Dimensions.Height),
		Padding:       firstNonZero(opts.padding, cfg.Dimensions.Padding),
		TopicFontSize: firstNonZero(opts.topicFontSize, cfg.Dimensions.TopicFontSize),
		LabelFontSize: firstNonZero(opts.labelFontSize, cfg.Dimensions.LabelFontSize),
		Formats:       opts.formats,
		Engine:        opts.engine,
		Theme:         th,
	}, nil
}

// firstNonZero returns the first non-zero value, or zero if both are unset.
func firstNonZero(a, b float64) float64 {
	if a != 0 {
		return a
	}
	return b
}

// readSpec reads the spec from a file, or from stdin when input is "-".
func readSpec(input string) ([]byte, error) {
	if input == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read spec: %w", err)
	}
	return raw, nil
}

// readTheme loads theme overrides from a JSON file.
func readTheme(path string) (theme.Theme, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return theme.Theme{}, fmt.Errorf("read theme: %w", err)
	}
	var th theme.Theme
	if err := json.Unmarshal(raw, &th); err != nil {
		return theme.Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return th, nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input; stdin falls back
// to a fixed name. A known format extension on output is stripped so
// multi-format runs do not produce names like "sun.svg.json".
func basePath(output, input string) string {
	if output == "" {
		if input == "-" {
			return stdinBase
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes each rendered format to its output. A single
// format goes to the output path as-is (or stdout for "-"); multiple
// formats fan out to base.format files. Formats preserve the requested
// order so file listings are stable.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) error {
	if output == "-" {
		for _, format := range formats {
			if _, err := os.Stdout.Write(artifacts[format]); err != nil {
				return err
			}
		}
		return nil
	}

	if len(formats) == 1 {
		path := output
		if path == "" {
			path = basePath("", input) + "." + formats[0]
		}
		if err := writeFile(path, artifacts[formats[0]]); err != nil {
			return err
		}
		printFile(path)
		return nil
	}

	base := basePath(output, input)
	for _, format := range formats {
		path := base + "." + format
		if err := writeFile(path, artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}
	return nil
}

// writeFile writes data to path, creating parent directories as needed.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
