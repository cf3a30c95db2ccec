package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/constellation/pkg/errors"
	"github.com/matzehuels/constellation/pkg/frame"
	"github.com/matzehuels/constellation/pkg/observability"
	"github.com/matzehuels/constellation/pkg/render/nodelink"
	"github.com/matzehuels/constellation/pkg/render/sink"
	"github.com/matzehuels/constellation/pkg/reveal"
	"github.com/matzehuels/constellation/pkg/viewport"
)

const (
	formatSVG      = "svg"
	formatPNG      = "png"
	formatPDF      = "pdf"
	formatJSON     = "json"
	formatDOT      = "dot"
	formatNodeLink = "nodelink" // Graphviz-rendered SVG
	formatNodePDF  = "nodelink-pdf"

	defaultWidth  = 1280 // default frame width
	defaultHeight = 800  // default frame height
)

// validFormats lists the supported output formats in help order.
var validFormats = []string{formatSVG, formatPNG, formatPDF, formatJSON, formatDOT, formatNodeLink, formatNodePDF}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file (single format) or base path
	formats    []string // output formats
	progress   float64  // reveal progress to export, in [0,1]
	hover      int      // node under the pointer, or -1
	width      float64  // viewport width in pixels
	height     float64  // viewport height in pixels
	scale      float64  // PNG pixel scale
	sequence   int      // export every Nth animator frame as PNG; 0 disables
	embedFont  bool     // embed the label font in SVG output
	showHidden bool     // draw unrevealed edges in DOT/nodelink output
}

// renderCommand creates the render command for exporting still frames.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		width:    defaultWidth,
		height:   defaultHeight,
		hover:    reveal.NoNode,
		scale:    2,
		progress: 1,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export a constellation frame",
		Long: `Export a constellation frame.

The frame is fitted to --width × --height exactly as the interactive host
would fit it. --progress selects how far the reveal has run; --hover places
the pointer on a star for one frame.

With --sequence N the reveal is simulated under continuous hover and every
Nth frame is written as a numbered PNG.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format, - for stdout) or base path (default constellation)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot, nodelink, nodelink-pdf (comma-separated)")
	cmd.Flags().Float64Var(&opts.progress, "progress", opts.progress, "reveal progress in [0,1]")
	cmd.Flags().IntVar(&opts.hover, "hover", opts.hover, "index of the hovered star (-1 for none)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "frame height")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG pixel scale")
	cmd.Flags().IntVar(&opts.sequence, "sequence", 0, "write every Nth frame of a simulated reveal as PNG")
	cmd.Flags().BoolVar(&opts.embedFont, "embed-font", false, "embed the label font in SVG output")
	cmd.Flags().BoolVar(&opts.showHidden, "show-hidden", false, "draw unrevealed edges in dot/nodelink output")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that all requested formats are supported.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !slices.Contains(validFormats, f) {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", f, strings.Join(validFormats, ", "))
		}
	}
	return nil
}

// validateRender checks flag values that do not depend on the config.
func validateRender(opts *renderOpts, nodes int) error {
	if opts.progress < 0 || opts.progress > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "progress %v out of range [0,1]", opts.progress)
	}
	if opts.hover < reveal.NoNode || opts.hover >= nodes {
		return errors.New(errors.ErrCodeInvalidInput, "hover %d out of range (-1..%d)", opts.hover, nodes-1)
	}
	if opts.scale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive")
	}
	if opts.sequence < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "sequence step must not be negative")
	}
	if opts.sequence > 0 && !slices.Equal(opts.formats, []string{formatPNG}) {
		return errors.New(errors.ErrCodeUnsupported, "--sequence only writes png")
	}
	return nil
}

// extension returns the file extension for a format.
func extension(format string) string {
	switch format {
	case formatNodeLink:
		return "nodelink.svg"
	case formatNodePDF:
		return "nodelink.pdf"
	default:
		return format
	}
}

// basePath derives the base output path. Known format extensions are
// stripped from output; an empty output yields the app name.
func basePath(output string) string {
	if output == "" {
		return appName
	}
	ext := filepath.Ext(output)
	if slices.Contains(validFormats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath picks the file for one format.
func outputPath(opts *renderOpts, format string) string {
	if len(opts.formats) == 1 && opts.output != "" {
		return opts.output
	}
	return basePath(opts.output) + "." + extension(format)
}

func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	c.installHooks()

	cfg, _, err := c.loadConfig()
	if err != nil {
		return err
	}
	if err := viewport.CheckViewport(opts.width, opts.height, cfg.Padding); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidViewport, err, "render")
	}
	ctrl, err := c.newController(cfg)
	if err != nil {
		return err
	}
	defer ctrl.Close()
	if err := validateRender(opts, ctrl.Scene().NodeCount()); err != nil {
		return err
	}

	if opts.sequence > 0 {
		return c.renderSequence(ctx, ctrl, opts)
	}

	ctrl.Seek(opts.progress)
	f := ctrl.Snapshot(opts.width, opts.height)
	if opts.hover != reveal.NoNode {
		f = ctrl.Tick(opts.width, opts.height, ctrl.PointerAt(opts.hover, opts.width, opts.height))
	}
	logger.Debugf("Frame fitted: scale %.3f", f.Transform.Scale)
	if opts.output != "-" {
		printKeyValue("state", StyleStar.Render(f.State.String()))
		printKeyValue("progress", StyleValue.Render(fmt.Sprintf("%.1f%%", f.Progress*100)))
	}

	prog := newProgress(logger)
	for _, format := range opts.formats {
		path := outputPath(opts, format)
		if err := errors.ValidateOutputPath(path); err != nil {
			return err
		}
		data, err := renderFrame(ctx, ctrl, f, format, opts)
		if err != nil {
			return err
		}
		if err := writeOutput(path, data); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", path)
		}
		if path != "-" {
			printFile(path)
		}
	}
	prog.done(fmt.Sprintf("Wrote %d file(s)", len(opts.formats)))
	return nil
}

// renderFrame dispatches one frame to the renderer for format.
func renderFrame(ctx context.Context, ctrl *frame.Controller, f frame.Frame, format string, opts *renderOpts) ([]byte, error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()

	data, err := encodeFrame(ctx, ctrl, f, format, opts)
	hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return data, nil
}

func encodeFrame(ctx context.Context, ctrl *frame.Controller, f frame.Frame, format string, opts *renderOpts) ([]byte, error) {
	var svgOpts []sink.SVGOption
	if opts.embedFont {
		svgOpts = append(svgOpts, sink.WithEmbeddedFont())
	}
	if opts.hover != reveal.NoNode {
		svgOpts = append(svgOpts, sink.WithHoverRing())
	}

	switch format {
	case formatSVG:
		return sink.RenderSVG(f, svgOpts...), nil
	case formatPNG:
		return sink.RenderPNG(f, sink.WithScale(opts.scale))
	case formatPDF:
		return sink.RenderPDF(f, sink.WithPDFSVGOptions(svgOpts...))
	case formatJSON:
		return sink.RenderJSON(f, sink.WithJSONScene(ctrl.Scene()))
	case formatDOT:
		return []byte(nodelink.ToDOT(ctrl.Scene(), f, nodelink.Options{ShowHidden: opts.showHidden})), nil
	case formatNodeLink:
		dot := nodelink.ToDOT(ctrl.Scene(), f, nodelink.Options{ShowHidden: opts.showHidden})
		return nodelink.RenderSVG(ctx, dot)
	case formatNodePDF:
		dot := nodelink.ToDOT(ctrl.Scene(), f, nodelink.Options{ShowHidden: opts.showHidden})
		return nodelink.RenderPDF(ctx, dot)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}

// renderSequence hovers the first star until the reveal completes and
// writes every opts.sequence-th frame, plus the final one.
func (c *CLI) renderSequence(ctx context.Context, ctrl *frame.Controller, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	base := basePath(opts.output)

	hover := opts.hover
	if hover == reveal.NoNode {
		hover = 0
	}
	p := ctrl.PointerAt(hover, opts.width, opts.height)

	spin := newSpinner(ctx, os.Stderr, "Simulating reveal")
	spin.Start()
	defer spin.Stop()

	written := 0
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		f := ctrl.Tick(opts.width, opts.height, p)
		last := f.State == reveal.Complete
		if i%opts.sequence != 0 && !last {
			continue
		}

		data, err := renderFrame(ctx, ctrl, f, formatPNG, opts)
		if err != nil {
			return err
		}
		path := fmt.Sprintf("%s_%04d.png", base, written)
		if err := writeOutput(path, data); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", path)
		}
		logger.Debugf("Frame %d: %.1f%% -> %s", i, f.Progress*100, path)
		spin.SetMessage("Frame %d (%.0f%%)", written, f.Progress*100)
		written++
		if last {
			break
		}
	}

	spin.Stop()
	printSuccess("Wrote %d frames to %s_*.png", written, base)
	prog.done("Sequence complete")
	return nil
}
