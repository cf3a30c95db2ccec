package frame

import (
	"io"
	"math"
	"time"

	"github.com/matzehuels/constellation/pkg/config"
	"github.com/matzehuels/constellation/pkg/observability"
	"github.com/matzehuels/constellation/pkg/reveal"
	"github.com/matzehuels/constellation/pkg/scene"
	"github.com/matzehuels/constellation/pkg/viewport"
)

// Pointer is the host's pointer position in screen-space. Present is false
// when the pointer is outside the drawing surface or has not moved yet.
//
// W and H give the pointer an extent for hosts that only know a coarse
// position, such as a terminal cell. A node drawn anywhere inside the
// W×H box centered on (X, Y) is hovered regardless of the hit radius.
type Pointer struct {
	X, Y    float64
	W, H    float64
	Present bool
}

// NoPointer is a pointer that hovers nothing.
var NoPointer = Pointer{}

// Controller owns the scene, config and reveal state for one drawing
// surface. It is not safe for concurrent use; the frame loop owns it.
type Controller struct {
	scene    *scene.Scene
	cfg      *config.Config
	measurer viewport.Measurer
	anim     *reveal.Animator
	hooks    observability.FrameHooks
	frames   int
}

// New creates a controller in the idle state. The scene must be valid
// ([scene.Scene.Validate]) and cfg must have passed [config.Config.Validate].
func New(s *scene.Scene, cfg *config.Config, m viewport.Measurer) *Controller {
	return &Controller{
		scene:    s,
		cfg:      cfg,
		measurer: m,
		anim:     reveal.New(s.Edges(), cfg.AnimatorOptions()...),
		hooks:    observability.Frame(),
	}
}

// Scene returns the controlled scene.
func (c *Controller) Scene() *scene.Scene { return c.scene }

// Config returns the active config.
func (c *Controller) Config() *config.Config { return c.cfg }

// SetConfig swaps the config, for example after a hot reload. Reveal
// progress is kept; only cadence, geometry and colors change.
func (c *Controller) SetConfig(cfg *config.Config) {
	c.cfg = cfg
	c.anim.Configure(cfg.AnimatorOptions()...)
}

// SetMeasurer replaces the label measurer, typically when the font size
// changes with the config. The previous measurer is closed if it is an
// [io.Closer].
func (c *Controller) SetMeasurer(m viewport.Measurer) error {
	err := closeMeasurer(c.measurer)
	c.measurer = m
	return err
}

// Close releases the measurer if it holds resources.
func (c *Controller) Close() error { return closeMeasurer(c.measurer) }

func closeMeasurer(m viewport.Measurer) error {
	if cl, ok := m.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

// Progress returns the reveal progress.
func (c *Controller) Progress() float64 { return c.anim.Progress() }

// State returns the reveal phase.
func (c *Controller) State() reveal.State { return c.anim.State() }

// Bounds returns the fitted box for the current scene and config.
func (c *Controller) Bounds() viewport.Box {
	return viewport.Bounds(c.scene, c.cfg.BoundsOptions(c.measurer))
}

// Transform fits the scene into a width×height viewport. Tick uses exactly
// this value for hit-testing and for the returned frame.
func (c *Controller) Transform(width, height float64) viewport.Transform {
	return viewport.Fit(c.Bounds(), width, height, c.cfg.Padding)
}

// PointerAt returns a pointer placed on node i in a width×height viewport.
func (c *Controller) PointerAt(i int, width, height float64) Pointer {
	n := c.scene.Node(i)
	x, y := c.Transform(width, height).Apply(n.X, n.Y)
	return Pointer{X: x, Y: y, Present: true}
}

// Tick advances one frame at the fixed per-frame increment.
func (c *Controller) Tick(width, height float64, p Pointer) Frame {
	t := c.Transform(width, height)
	hovered := c.hitTest(t, p)
	c.advance(hovered, func() { c.anim.Step(hovered) })
	return c.build(width, height, t)
}

// TickFor advances one frame that lasted dt, at the time-based rate.
func (c *Controller) TickFor(width, height float64, p Pointer, dt time.Duration) Frame {
	t := c.Transform(width, height)
	hovered := c.hitTest(t, p)
	c.advance(hovered, func() { c.anim.Advance(hovered, dt) })
	return c.build(width, height, t)
}

// Seek moves the reveal forward to progress p without a pointer, for
// still-frame exports. It never rewinds.
func (c *Controller) Seek(p float64) {
	c.advance(c.anim.Hovered(), func() { c.anim.Seek(p) })
}

// Snapshot returns the current frame without advancing the reveal.
func (c *Controller) Snapshot(width, height float64) Frame {
	return c.build(width, height, c.Transform(width, height))
}

func (c *Controller) hitTest(t viewport.Transform, p Pointer) int {
	if !p.Present {
		return reveal.NoNode
	}
	if p.W > 0 && p.H > 0 {
		if i := c.hitBox(t, p); i != reveal.NoNode {
			return i
		}
	}
	return reveal.HitTest(c.scene.Nodes(), t, p.X, p.Y, c.cfg.Animation.HitRadius)
}

// hitBox returns the first node whose screen position lies in p's
// half-open extent, matching how a grid assigns points to cells.
func (c *Controller) hitBox(t viewport.Transform, p Pointer) int {
	x0, y0 := p.X-p.W/2, p.Y-p.H/2
	for i, n := range c.scene.Nodes() {
		x, y := t.Apply(n.X, n.Y)
		if x >= x0 && x < x0+p.W && y >= y0 && y < y0+p.H {
			return i
		}
	}
	return reveal.NoNode
}

// advance runs step and fires hooks for any transition it caused.
func (c *Controller) advance(hovered int, step func()) {
	prevHover, prevState := c.anim.Hovered(), c.anim.State()
	step()
	c.frames++

	if hovered != prevHover {
		c.hooks.OnHoverChange(prevHover, hovered)
	}
	state := c.anim.State()
	if prevState == reveal.Idle && state != reveal.Idle {
		c.hooks.OnRevealStart(hovered)
	}
	if prevState != reveal.Complete && state == reveal.Complete {
		c.hooks.OnRevealComplete(c.frames)
	}
}

func (c *Controller) build(width, height float64, t viewport.Transform) Frame {
	cfg := c.cfg
	nodes := c.scene.Nodes()
	edges := c.scene.Edges()

	f := Frame{
		Width:     width,
		Height:    height,
		Transform: t,
		Hovered:   c.anim.Hovered(),
		Progress:  c.anim.Progress(),
		State:     c.anim.State(),
		Style: Style{
			Highlight:  cfg.Colors.Highlight,
			Ink:        cfg.Colors.Ink,
			Background: cfg.Colors.Background,
			FontSize:   cfg.Glyph.FontSize,
			LineWidth:  1,
			GlowBlur:   cfg.Glyph.GlowBlur,
		},
		Stars:  make([]Star, 0, len(nodes)),
		Labels: make([]Label, 0, len(nodes)),
	}
	f.Glow = f.State == reveal.Complete && cfg.Glyph.GlowBlur > 0

	for i, e := range edges {
		st := c.anim.Edge(i)
		if st.Phase == reveal.Hidden {
			continue
		}
		a, b := nodes[e.From], nodes[e.To]
		x2, y2 := lerp(a.X, b.X, st.Fraction), lerp(a.Y, b.Y, st.Fraction)
		if st.Phase == reveal.Drawing && x2 == a.X && y2 == a.Y {
			continue
		}
		f.Lines = append(f.Lines, Line{
			Edge:     i,
			X1:       a.X,
			Y1:       a.Y,
			X2:       x2,
			Y2:       y2,
			Phase:    st.Phase,
			Fraction: st.Fraction,
		})
	}

	for i, n := range nodes {
		f.Stars = append(f.Stars, Star{
			Node:    i,
			X:       n.X,
			Y:       n.Y,
			R:       cfg.Glyph.StarRadius,
			Hit:     c.anim.NodeHit(i),
			Hovered: i == f.Hovered,
		})

		color := cfg.Colors.Ink
		if n.Color != "" {
			color = n.Color
		}
		f.Labels = append(f.Labels, Label{
			Node:  i,
			Text:  n.Label,
			X:     n.X + cfg.Glyph.LabelOffsetX,
			Y:     n.Y + cfg.Glyph.LabelOffsetY,
			Color: color,
		})
	}
	return f
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*math.Max(0, math.Min(1, t))
}
