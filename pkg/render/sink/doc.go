// Package sink provides still-frame output renderers for constellation frames.
//
// # Overview
//
// A "sink" turns a [frame.Frame] display list into a file format:
//
//   - SVG: vector output, optionally with the label font embedded
//   - PNG: raster output drawn directly with gg (no external tools)
//   - PDF: print-ready output (requires rsvg-convert)
//   - JSON: the display list itself, for external tools and tests
//
// Every sink applies the frame's own [viewport.Transform]; none of them
// re-fits the scene.
//
// # SVG Output
//
//	svg := sink.RenderSVG(f, sink.WithEmbeddedFont())
//
// When the frame is complete and has a glow blur, done lines are drawn
// through a Gaussian glow filter in the highlight color.
//
// # PNG Output
//
//	png, err := sink.RenderPNG(f, sink.WithScale(2))
//
// The glow is approximated with translucent halo strokes because gg has no
// blur primitive.
//
// [frame.Frame]: github.com/matzehuels/constellation/pkg/frame.Frame
// [viewport.Transform]: github.com/matzehuels/constellation/pkg/viewport.Transform
package sink
