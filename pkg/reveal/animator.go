package reveal

import (
	"math"
	"time"

	"github.com/matzehuels/constellation/pkg/scene"
)

const (
	// DefaultIncrement is the progress added per hovered frame.
	DefaultIncrement = 0.003
	// DefaultFPS is the frame rate the increment was tuned for.
	DefaultFPS = 60
)

// NoNode is the hovered index when the pointer is over no node.
const NoNode = -1

// State is the coarse phase of the reveal.
type State int

const (
	Idle      State = iota // nothing hovered yet, progress 0
	Revealing              // 0 < progress < 1
	Complete               // progress 1, terminal
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Revealing:
		return "revealing"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Option configures an [Animator].
type Option func(*Animator)

// WithIncrement sets the progress added by each hovered [Animator.Step].
func WithIncrement(inc float64) Option {
	return func(a *Animator) { a.increment = inc }
}

// WithRate sets the progress added per second of hovered time by
// [Animator.Advance].
func WithRate(perSecond float64) Option {
	return func(a *Animator) { a.rate = perSecond }
}

// Animator tracks reveal progress over an ordered edge list. It is not safe
// for concurrent use; the frame loop owns it.
type Animator struct {
	edges     []scene.Edge
	increment float64
	rate      float64
	progress  float64
	hovered   int
}

// New creates an idle animator over edges. Without options the animator
// advances [DefaultIncrement] per frame, or DefaultIncrement×[DefaultFPS]
// per second when driven by [Animator.Advance].
func New(edges []scene.Edge, opts ...Option) *Animator {
	a := &Animator{
		edges:     edges,
		increment: DefaultIncrement,
		rate:      DefaultIncrement * DefaultFPS,
		hovered:   NoNode,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Step records the hovered node for this frame and, if it is a node,
// advances progress by the per-frame increment.
func (a *Animator) Step(hovered int) State {
	a.hovered = hovered
	if hovered != NoNode {
		a.add(a.increment)
	}
	return a.State()
}

// Advance is the time-based variant of [Animator.Step]: progress grows by
// rate×dt while a node is hovered. Non-positive dt is ignored.
func (a *Animator) Advance(hovered int, dt time.Duration) State {
	a.hovered = hovered
	if hovered != NoNode && dt > 0 {
		a.add(a.rate * dt.Seconds())
	}
	return a.State()
}

func (a *Animator) add(d float64) {
	if d <= 0 || a.progress >= 1 {
		return
	}
	a.progress = math.Min(1, a.progress+d)
}

// Configure applies opts to a running animator. Progress and hover are
// kept, so a cadence change never rewinds the reveal.
func (a *Animator) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(a)
	}
}

// Seek moves progress forward to p, clamped to [0,1]. Seeking backwards is
// a no-op; the reveal is one-shot.
func (a *Animator) Seek(p float64) State {
	if p > a.progress {
		a.progress = math.Min(1, p)
	}
	return a.State()
}

// Progress returns the reveal progress in [0,1].
func (a *Animator) Progress() float64 { return a.progress }

// Hovered returns the node index recorded by the last step, or [NoNode].
func (a *Animator) Hovered() int { return a.hovered }

// State returns the phase implied by the current progress.
func (a *Animator) State() State {
	switch {
	case a.progress >= 1:
		return Complete
	case a.progress > 0:
		return Revealing
	}
	return Idle
}

// CompletedCount returns how many edges are fully drawn.
func (a *Animator) CompletedCount() int {
	return completed(a.progress, len(a.edges))
}

func completed(progress float64, n int) int {
	return int(math.Floor(progress * float64(n)))
}
