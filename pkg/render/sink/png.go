package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/constellation/pkg/fonts"
	"github.com/matzehuels/constellation/pkg/frame"
	"github.com/matzehuels/constellation/pkg/render"
)

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// glowPasses is the number of halo strokes approximating the blur.
const glowPasses = 4

// RenderPNG rasterizes one frame with gg.
func RenderPNG(f frame.Frame, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, fmt.Errorf("invalid PNG scale %v", r.scale)
	}

	dc, err := r.draw(f)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r pngRenderer) draw(f frame.Frame) (*gg.Context, error) {
	st := f.Style
	w := int(math.Ceil(f.Width * r.scale))
	h := int(math.Ceil(f.Height * r.scale))
	dc := gg.NewContext(w, h)

	// Everything is mapped to pixels here rather than with dc.Scale so
	// text is rasterized at its final size.
	k := f.Transform.Scale * r.scale
	pt := func(x, y float64) (float64, float64) {
		sx, sy := f.Transform.Apply(x, y)
		return sx * r.scale, sy * r.scale
	}

	dc.SetColor(render.ParseColorOr(st.Background, white))
	dc.Clear()

	highlight := render.ParseColorOr(st.Highlight, black)
	ink := render.ParseColorOr(st.Ink, black)

	if f.Glow {
		for p := glowPasses; p >= 1; p-- {
			dc.SetColor(color.NRGBA{R: highlight.R, G: highlight.G, B: highlight.B, A: 255 / (glowPasses + 2)})
			dc.SetLineWidth((st.LineWidth + st.GlowBlur*float64(p)/glowPasses) * k)
			for _, l := range f.Lines {
				if !l.Done() {
					continue
				}
				x1, y1 := pt(l.X1, l.Y1)
				x2, y2 := pt(l.X2, l.Y2)
				dc.DrawLine(x1, y1, x2, y2)
				dc.Stroke()
			}
		}
	}

	dc.SetLineCapRound()
	dc.SetLineWidth(math.Max(1, st.LineWidth*k))
	for _, l := range f.Lines {
		c := ink
		if l.Done() {
			c = highlight
		}
		dc.SetColor(c)
		x1, y1 := pt(l.X1, l.Y1)
		x2, y2 := pt(l.X2, l.Y2)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	for _, s := range f.Stars {
		c := ink
		if s.Hit {
			c = highlight
		}
		drawStar(dc, s, c, pt, k)
	}

	face, err := fonts.Face(st.FontSize * k)
	if err != nil {
		return nil, err
	}
	defer face.Close()
	dc.SetFontFace(face)
	for _, l := range f.Labels {
		dc.SetColor(render.ParseColorOr(l.Color, black))
		x, y := pt(l.X, l.Y)
		dc.DrawString(l.Text, x, y)
	}
	return dc, nil
}

func drawStar(dc *gg.Context, s frame.Star, c color.Color, pt func(x, y float64) (float64, float64), k float64) {
	dc.SetColor(c)
	for i, p := range render.StarPoints(s.X, s.Y, s.R) {
		x, y := pt(p[0], p[1])
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.Fill()

	cx, cy := pt(s.X, s.Y)
	dc.DrawCircle(cx, cy, render.StarDot(s.R)/2*k)
	dc.Fill()
}
