package reveal

import (
	"math"

	"github.com/matzehuels/constellation/pkg/scene"
	"github.com/matzehuels/constellation/pkg/viewport"
)

// DefaultHitRadius is the hover radius around a node, in node-space units.
const DefaultHitRadius = 12

// HitTest maps the screen-space pointer (px, py) into node-space through t
// and returns the index of the first node whose center lies strictly within
// radius, or [NoNode].
func HitTest(nodes []scene.Node, t viewport.Transform, px, py, radius float64) int {
	mx, my := t.Invert(px, py)
	for i, n := range nodes {
		if math.Hypot(mx-n.X, my-n.Y) < radius {
			return i
		}
	}
	return NoNode
}
