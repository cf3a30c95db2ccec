// Package render provides the shared pieces of every constellation output.
//
// # Overview
//
// Renderers consume a [frame.Frame] display list and never compute layout
// themselves. This package holds what they share:
//
//   - Star glyph geometry ([StarPoints], [StarDot])
//   - Hex color parsing ([ParseColor])
//   - Generic format conversion (SVG to PDF via rsvg-convert)
//
// Output formats live in subpackages:
//
//   - [sink]: SVG, PNG, PDF and JSON still frames
//   - [term]: the terminal cell canvas used by the interactive host
//   - [nodelink]: Graphviz DOT export with pinned node positions
//
// # Format Conversion
//
// [ToPDF] converts any SVG using the external rsvg-convert tool (librsvg):
//
//	svg := sink.RenderSVG(f)
//	pdf, err := render.ToPDF(svg)
//
// [frame.Frame]: github.com/matzehuels/constellation/pkg/frame.Frame
// [sink]: github.com/matzehuels/constellation/pkg/render/sink
// [term]: github.com/matzehuels/constellation/pkg/render/term
// [nodelink]: github.com/matzehuels/constellation/pkg/render/nodelink
package render
