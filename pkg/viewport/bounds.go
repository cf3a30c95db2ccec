package viewport

import (
	"math"

	"github.com/matzehuels/constellation/pkg/scene"
)

// Mode selects which extents [Bounds] includes.
type Mode string

const (
	// ModeLabels covers star glyphs and rendered labels, so labels near the
	// edge of the drawing are never clipped.
	ModeLabels Mode = "labels"
	// ModePoints covers raw node coordinates only. Labels that extend past
	// the outermost nodes may be clipped by the viewport.
	ModePoints Mode = "points"
)

// Measurer reports the rendered width of a label in node-space units.
type Measurer interface {
	MeasureLabel(label string) float64
}

// MeasurerFunc adapts a plain function to [Measurer].
type MeasurerFunc func(label string) float64

// MeasureLabel calls f(label).
func (f MeasurerFunc) MeasureLabel(label string) float64 { return f(label) }

// BoundsOptions controls how [Bounds] extends the box around each node.
// Offsets mirror how labels are drawn: to the right of the star, vertically
// centered on the node.
type BoundsOptions struct {
	Mode            Mode
	StarRadius      float64 // half-extent of the star glyph
	LabelOffsetX    float64 // label starts this far right of the node
	LabelHalfHeight float64 // label box spans y±LabelHalfHeight
	Measurer        Measurer
}

// DefaultBoundsOptions returns label-aware options with the standard glyph
// geometry and the given label measurer.
func DefaultBoundsOptions(m Measurer) BoundsOptions {
	return BoundsOptions{
		Mode:            ModeLabels,
		StarRadius:      10,
		LabelOffsetX:    14,
		LabelHalfHeight: 16,
		Measurer:        m,
	}
}

// Box is an axis-aligned rectangle in node-space.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func (b Box) Width() float64  { return b.MaxX - b.MinX }
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Center returns the visual center of the box.
func (b Box) Center() (float64, float64) {
	return b.MinX + b.Width()/2, b.MinY + b.Height()/2
}

// Contains reports whether (x, y) lies inside the box, edges included.
func (b Box) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

func (b *Box) extend(minX, minY, maxX, maxY float64) {
	b.MinX = math.Min(b.MinX, minX)
	b.MinY = math.Min(b.MinY, minY)
	b.MaxX = math.Max(b.MaxX, maxX)
	b.MaxY = math.Max(b.MaxY, maxY)
}

// Bounds returns the box enclosing every node of s according to opts.
// A nil Measurer in ModeLabels treats every label as zero width.
func Bounds(s *scene.Scene, opts BoundsOptions) Box {
	b := Box{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, n := range s.Nodes() {
		if opts.Mode == ModePoints {
			b.extend(n.X, n.Y, n.X, n.Y)
			continue
		}
		r := opts.StarRadius
		b.extend(n.X-r, n.Y-r, n.X+r, n.Y+r)

		var w float64
		if opts.Measurer != nil {
			w = opts.Measurer.MeasureLabel(n.Label)
		}
		left := n.X + opts.LabelOffsetX
		b.extend(left, n.Y-opts.LabelHalfHeight, left+w, n.Y+opts.LabelHalfHeight)
	}
	return b
}
