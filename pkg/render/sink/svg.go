package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/constellation/pkg/fonts"
	"github.com/matzehuels/constellation/pkg/frame"
	"github.com/matzehuels/constellation/pkg/render"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	embedFont bool
	hoverRing bool
}

// WithEmbeddedFont inlines the Go Mono font as a data URI so labels render
// identically without the font installed.
func WithEmbeddedFont() SVGOption { return func(r *svgRenderer) { r.embedFont = true } }

// WithHoverRing circles the hovered star.
func WithHoverRing() SVGOption { return func(r *svgRenderer) { r.hoverRing = true } }

// RenderSVG renders one frame as a standalone SVG document.
func RenderSVG(f frame.Frame, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	st := f.Style
	t := f.Transform

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.Width, f.Height, f.Width, f.Height)
	r.renderDefs(&buf, f)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", st.Background)
	fmt.Fprintf(&buf, `  <g transform="translate(%.3f %.3f) scale(%.5f)">`+"\n", t.TX, t.TY, t.Scale)

	for _, l := range f.Lines {
		renderLine(&buf, f, l)
	}
	for _, s := range f.Stars {
		renderStar(&buf, st, s)
		if r.hoverRing && s.Hovered {
			fmt.Fprintf(&buf, `    <circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="0.75"/>`+"\n",
				s.X, s.Y, s.R*1.8, st.Highlight)
		}
	}
	for _, l := range f.Labels {
		fmt.Fprintf(&buf, `    <text x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
			l.X, l.Y, fonts.FallbackFontFamily, st.FontSize, l.Color, render.EscapeXML(l.Text))
	}

	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) renderDefs(buf *bytes.Buffer, f frame.Frame) {
	if !r.embedFont && !f.Glow {
		return
	}
	buf.WriteString("  <defs>\n")
	if r.embedFont {
		fmt.Fprintf(buf, "    <style>@font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }</style>\n",
			fonts.FontFamily, fonts.TTFBase64())
	}
	if f.Glow {
		// Canvas shadowBlur is roughly twice the Gaussian standard deviation.
		fmt.Fprintf(buf, `    <filter id="glow" x="-50%%" y="-50%%" width="200%%" height="200%%">
      <feDropShadow dx="0" dy="0" stdDeviation="%.2f" flood-color="%s"/>
    </filter>`+"\n", f.Style.GlowBlur/2, f.Style.Highlight)
	}
	buf.WriteString("  </defs>\n")
}

func renderLine(buf *bytes.Buffer, f frame.Frame, l frame.Line) {
	color := f.Style.Ink
	filter := ""
	if l.Done() {
		color = f.Style.Highlight
		if f.Glow {
			filter = ` filter="url(#glow)"`
		}
	}
	fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" stroke-linecap="round"%s/>`+"\n",
		l.X1, l.Y1, l.X2, l.Y2, color, f.Style.LineWidth, filter)
}

func renderStar(buf *bytes.Buffer, st frame.Style, s frame.Star) {
	color := st.Ink
	if s.Hit {
		color = st.Highlight
	}

	pts := render.StarPoints(s.X, s.Y, s.R)
	coords := make([]string, len(pts))
	for i, p := range pts {
		coords[i] = fmt.Sprintf("%.2f,%.2f", p[0], p[1])
	}
	fmt.Fprintf(buf, `    <polygon points="%s" fill="%s"/>`+"\n", strings.Join(coords, " "), color)
	fmt.Fprintf(buf, `    <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
		s.X, s.Y, render.StarDot(s.R)/2, color)
}
