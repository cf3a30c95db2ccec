package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/constellation/pkg/frame"
	"github.com/matzehuels/constellation/pkg/render"
	"github.com/matzehuels/constellation/pkg/reveal"
	"github.com/matzehuels/constellation/pkg/scene"
)

// Options configures node-link diagram rendering.
type Options struct {
	// ShowHidden draws edges that have not been revealed yet as faint
	// dotted lines. When false they are emitted with style=invis so the
	// graph structure is still present in the DOT source.
	ShowHidden bool
}

// ToDOT converts a scene and one of its frames to Graphviz DOT. Every node
// is pinned at its node-space position (y flipped, since Graphviz grows
// upward), so the neato engine reproduces the constellation layout.
//
// Edge styling follows the frame: done edges use the highlight color,
// the drawing edge is dashed ink, hidden edges depend on opts.
func ToDOT(s *scene.Scene, f frame.Frame, opts Options) string {
	st := f.Style
	hit := make(map[int]bool, len(f.Stars))
	for _, star := range f.Stars {
		hit[star.Node] = star.Hit
	}
	phase := make(map[int]reveal.Phase, len(f.Lines))
	for _, l := range f.Lines {
		phase[l.Edge] = l.Phase
	}

	var buf bytes.Buffer
	buf.WriteString("digraph constellation {\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", st.Background)
	buf.WriteString("  outputorder=edgesfirst;\n")
	fmt.Fprintf(&buf, "  node [shape=star, style=filled, width=0.2, height=0.2, fixedsize=true, label=\"\", fontname=\"Courier\", fontsize=%s];\n",
		fmtFloat(st.FontSize))
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("\n")

	for i, n := range s.Nodes() {
		fill := st.Ink
		if hit[i] {
			fill = st.Highlight
		}
		font := st.Ink
		if n.Color != "" {
			font = n.Color
		}
		fmt.Fprintf(&buf, "  n%d [pos=\"%s,%s!\", xlabel=%q, fillcolor=%q, color=%q, fontcolor=%q];\n",
			i, fmtFloat(n.X), fmtFloat(-n.Y), n.Label, fill, fill, font)
	}

	buf.WriteString("\n")
	for i, e := range s.Edges() {
		fmt.Fprintf(&buf, "  n%d -> n%d [%s];\n", e.From, e.To, edgeAttrs(phase, i, st, opts))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeAttrs(phase map[int]reveal.Phase, i int, st frame.Style, opts Options) string {
	p, ok := phase[i]
	switch {
	case ok && p == reveal.Done:
		return fmt.Sprintf("color=%q, penwidth=2", st.Highlight)
	case ok && p == reveal.Drawing:
		return fmt.Sprintf("color=%q, style=dashed", st.Ink)
	case opts.ShowHidden:
		return "color=\"#BBBBBB\", style=dotted"
	default:
		return "style=invis"
	}
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz's neato engine so
// pinned positions are honored.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one that
// scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}
