package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyScene is returned by [Scene.Validate] when the scene has no nodes.
	// Fitting an empty scene would divide by zero.
	ErrEmptyScene = errors.New("scene has no nodes")

	// ErrInvalidEdgeEndpoint is returned by [Scene.Validate] when an edge
	// references a node index outside the node list.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")
)

// Node is a labeled point in node-space.
//
// Color optionally overrides the label color (a CSS-style hex string such as
// "#3B6CFF"). Nodes never change after the scene is built.
type Node struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color,omitempty"`
}

// Edge connects two nodes by index. The position of an edge in
// [Scene.Edges] is its position in the reveal sequence.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Scene is the fixed set of nodes and the ordered edge sequence drawn
// between them.
//
// A Scene is immutable after construction and safe to share between the
// frame controller and any number of renderers.
type Scene struct {
	nodes []Node
	edges []Edge
}

// New creates a scene from copies of the given node and edge lists.
func New(nodes []Node, edges []Edge) *Scene {
	return &Scene{
		nodes: append([]Node(nil), nodes...),
		edges: append([]Edge(nil), edges...),
	}
}

// Nodes returns the nodes in authoring order. Callers must not modify the
// returned slice.
func (s *Scene) Nodes() []Node { return s.nodes }

// Edges returns the edges in reveal order. Callers must not modify the
// returned slice.
func (s *Scene) Edges() []Edge { return s.edges }

// Node returns the node at index i.
func (s *Scene) Node(i int) Node { return s.nodes[i] }

// NodeCount returns the number of nodes.
func (s *Scene) NodeCount() int { return len(s.nodes) }

// EdgeCount returns the number of edges.
func (s *Scene) EdgeCount() int { return len(s.edges) }

// Validate reports whether the scene can be fitted and drawn: it must have
// at least one node, and every edge endpoint must name an existing node.
func (s *Scene) Validate() error {
	if len(s.nodes) == 0 {
		return ErrEmptyScene
	}
	for i, e := range s.edges {
		if e.From < 0 || e.From >= len(s.nodes) {
			return fmt.Errorf("%w: edge %d source %d", ErrInvalidEdgeEndpoint, i, e.From)
		}
		if e.To < 0 || e.To >= len(s.nodes) {
			return fmt.Errorf("%w: edge %d destination %d", ErrInvalidEdgeEndpoint, i, e.To)
		}
	}
	return nil
}
