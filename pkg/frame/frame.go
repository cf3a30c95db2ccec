package frame

import (
	"github.com/matzehuels/constellation/pkg/reveal"
	"github.com/matzehuels/constellation/pkg/viewport"
)

// Frame is everything needed to draw one frame. Geometry is in node-space;
// renderers map it with Transform.
type Frame struct {
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Transform viewport.Transform `json:"transform"`
	Hovered   int                `json:"hovered"`
	Progress  float64            `json:"progress"`
	State     reveal.State       `json:"state"`
	Glow      bool               `json:"glow"`
	Style     Style              `json:"style"`
	Lines     []Line             `json:"lines"`
	Stars     []Star             `json:"stars"`
	Labels    []Label            `json:"labels"`
}

// Line is a visible edge segment. For a Drawing edge (X2, Y2) is the
// interpolated tip, not the destination node.
type Line struct {
	Edge     int          `json:"edge"`
	X1       float64      `json:"x1"`
	Y1       float64      `json:"y1"`
	X2       float64      `json:"x2"`
	Y2       float64      `json:"y2"`
	Phase    reveal.Phase `json:"phase"`
	Fraction float64      `json:"fraction"`
}

// Star is a node glyph. Hit stars are filled with the highlight color.
type Star struct {
	Node    int     `json:"node"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	R       float64 `json:"r"`
	Hit     bool    `json:"hit"`
	Hovered bool    `json:"hovered"`
}

// Label is node text anchored at its baseline-left point.
type Label struct {
	Node  int     `json:"node"`
	Text  string  `json:"text"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
}

// Style carries the presentation values renderers need.
type Style struct {
	Highlight  string  `json:"highlight"`
	Ink        string  `json:"ink"`
	Background string  `json:"background"`
	FontSize   float64 `json:"font_size"`
	LineWidth  float64 `json:"line_width"`
	GlowBlur   float64 `json:"glow_blur"`
}

// Done reports whether the line is a fully revealed edge.
func (l Line) Done() bool { return l.Phase == reveal.Done }
