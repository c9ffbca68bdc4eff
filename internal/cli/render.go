package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snapblocks/snapblocks/pkg/block"
	"github.com/snapblocks/snapblocks/pkg/block/layout"
	"github.com/snapblocks/snapblocks/pkg/block/outline"
	"github.com/snapblocks/snapblocks/pkg/blockdef"
	"github.com/snapblocks/snapblocks/pkg/cache"
	"github.com/snapblocks/snapblocks/pkg/config"
	"github.com/snapblocks/snapblocks/pkg/render/nodetree"
	"github.com/snapblocks/snapblocks/pkg/render/sink"
)

// Output formats supported by the render command.
const (
	formatSVG     = "svg"      // standalone SVG document
	formatJSON    = "json"     // raw layout and path export
	formatDOT     = "dot"      // Graphviz structure diagram, DOT source
	formatTreeSVG = "tree-svg" // structure diagram rendered to SVG in-process
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file path (or base path for multiple formats)
	formats   []string // output formats: "svg", "json", "dot"
	configRef string   // optional TOML config file with metrics overrides
	maxWidth  int      // width budget, 0 means unbounded
	maxHeight int      // height budget, 0 means unbounded
	padding   int      // empty space around the SVG
	label     bool     // draw the block label
	guides    bool     // overlay row bounding boxes
	noCache   bool     // bypass the artifact cache
}

// renderCommand creates the render command for generating block artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a block definition to SVG, JSON or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, tree-svg (comma-separated)")
	cmd.Flags().StringVar(&opts.configRef, "config", "", "TOML config file with metrics overrides")
	cmd.Flags().IntVar(&opts.maxWidth, "max-width", 0, "width budget in pixels (0 = unbounded)")
	cmd.Flags().IntVar(&opts.maxHeight, "max-height", 0, "height budget in pixels (0 = unbounded)")
	cmd.Flags().IntVar(&opts.padding, "padding", 4, "padding around the SVG in pixels")
	cmd.Flags().BoolVar(&opts.label, "label", false, "draw the block label")
	cmd.Flags().BoolVar(&opts.guides, "guides", false, "overlay row bounding boxes (debug)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(c.Logger)

	cfg, err := config.Load(opts.configRef)
	if err != nil {
		return err
	}

	def, err := blockdef.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded definition", "id", def.ID, "rows", len(def.Rows))

	artifactCache, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer artifactCache.Close()

	for _, format := range opts.formats {
		data, cached, err := c.renderArtifact(ctx, cfg, def, format, opts, artifactCache)
		if err != nil {
			return err
		}

		out := outputPath(path, opts.output, format, len(opts.formats) > 1)
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}

		source := "fresh"
		if cached {
			source = "cached"
		}
		printSuccess("Wrote %s (%s)", out, source)
	}

	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(opts.formats)))
	return nil
}

// renderArtifact produces one artifact, consulting the cache first.
func (c *CLI) renderArtifact(ctx context.Context, cfg config.Config, def *blockdef.Definition, format string, opts *renderOpts, artifactCache cache.Cache) (data []byte, cached bool, err error) {
	key, err := artifactKey(cfg, def, format, opts)
	if err != nil {
		return nil, false, err
	}

	if data, hit, err := artifactCache.Get(ctx, key); err == nil && hit {
		return data, true, nil
	}

	b, err := def.Block()
	if err != nil {
		return nil, false, err
	}

	switch format {
	case formatDOT:
		data = []byte(nodetree.ToDOT(b, nodetree.Options{Detailed: true}))
	case formatTreeSVG:
		data, err = nodetree.RenderSVG(ctx, nodetree.ToDOT(b, nodetree.Options{Detailed: true}))
		if err != nil {
			return nil, false, err
		}
	default:
		cons := block.Constraints{MaxWidth: opts.maxWidth, MaxHeight: opts.maxHeight}
		res := layout.Measure(b, cons, cfg.Metrics)
		p := outline.Build(b, res, cfg.Metrics)

		if format == formatJSON {
			data, err = sink.RenderJSON(b, res, p)
			if err != nil {
				return nil, false, err
			}
		} else {
			svgOpts := []sink.SVGOption{sink.WithPadding(opts.padding)}
			if opts.label {
				svgOpts = append(svgOpts, sink.WithLabel())
			}
			if opts.guides {
				svgOpts = append(svgOpts, sink.WithRowGuides())
			}
			data = sink.RenderSVG(b, res, p, svgOpts...)
		}
	}

	if err := artifactCache.Set(ctx, key, data, cfg.Cache.TTL.Std()); err != nil {
		loggerFromContext(ctx).Debug("cache write failed", "err", err)
	}
	return data, false, nil
}

// artifactKey builds the cache key from everything that influences the bytes.
func artifactKey(cfg config.Config, def *blockdef.Definition, format string, opts *renderOpts) (string, error) {
	canonical, err := blockdef.Marshal(def)
	if err != nil {
		return "", err
	}
	metricsJSON, _ := json.Marshal(cfg.Metrics)
	renderJSON, _ := json.Marshal(map[string]any{
		"max_width": opts.maxWidth, "max_height": opts.maxHeight,
		"padding": opts.padding, "label": opts.label, "guides": opts.guides,
	})

	keyer := cache.NewDefaultKeyer()
	return keyer.ArtifactKey(cache.Hash(canonical), cache.ArtifactKeyOpts{
		Format:      format,
		MetricsHash: cache.Hash(append(metricsJSON, renderJSON...)),
	}), nil
}

// outputPath derives the output file name for a format.
func outputPath(input, output, format string, multi bool) string {
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		return base + "." + artifactExt(format)
	}
	if !multi {
		return output
	}
	base := strings.TrimSuffix(output, filepath.Ext(output))
	return base + "." + artifactExt(format)
}

// artifactExt maps a format to its file extension.
func artifactExt(format string) string {
	if format == formatTreeSVG {
		return "tree.svg"
	}
	return format
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{
	formatSVG:     true,
	formatJSON:    true,
	formatDOT:     true,
	formatTreeSVG: true,
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'json', 'dot', or 'tree-svg')", f)
		}
	}
	return nil
}
