package reveal

import "math"

// Phase is how a single edge is drawn in the current frame.
type Phase int

const (
	Hidden  Phase = iota // not reached yet
	Drawing              // partially drawn from its source
	Done                 // drawn solid and highlighted
)

func (p Phase) String() string {
	switch p {
	case Hidden:
		return "hidden"
	case Drawing:
		return "drawing"
	case Done:
		return "done"
	}
	return "unknown"
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// EdgeState is the per-frame state of one edge. Fraction is the drawn share
// of a [Drawing] edge, 1 for [Done] and 0 for [Hidden].
type EdgeState struct {
	Phase    Phase
	Fraction float64
}

// Edge returns the state of edge i.
func (a *Animator) Edge(i int) EdgeState {
	n := len(a.edges)
	done := completed(a.progress, n)
	switch {
	case i < done:
		return EdgeState{Phase: Done, Fraction: 1}
	case i == done && a.progress < 1:
		return EdgeState{Phase: Drawing, Fraction: math.Mod(a.progress*float64(n), 1)}
	}
	return EdgeState{Phase: Hidden}
}

// NodeHit reports whether the reveal has reached node i: the source of the
// first edge counts as soon as progress leaves zero, every other node once
// an edge ending at it is done.
func (a *Animator) NodeHit(i int) bool {
	if len(a.edges) == 0 {
		return false
	}
	if a.progress > 0 && a.edges[0].From == i {
		return true
	}
	done := completed(a.progress, len(a.edges))
	for _, e := range a.edges[:done] {
		if e.To == i {
			return true
		}
	}
	return false
}
