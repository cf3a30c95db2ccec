package sink

import (
	"github.com/matzehuels/constellation/pkg/frame"
	"github.com/matzehuels/constellation/pkg/render"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	svgOpts []SVGOption
}

// WithPDFSVGOptions passes options through to the underlying SVG renderer.
func WithPDFSVGOptions(opts ...SVGOption) PDFOption {
	return func(r *pdfRenderer) { r.svgOpts = opts }
}

// RenderPDF renders the frame as PDF via SVG conversion. The label font is
// always embedded so the PDF does not depend on installed fonts.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(f frame.Frame, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	svg := RenderSVG(f, append([]SVGOption{WithEmbeddedFont()}, r.svgOpts...)...)
	return render.ToPDF(svg)
}
