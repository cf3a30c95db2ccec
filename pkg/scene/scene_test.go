package scene

import (
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()

	if s.NodeCount() != 8 {
		t.Errorf("NodeCount() = %d, want 8", s.NodeCount())
	}
	if s.EdgeCount() != 7 {
		t.Errorf("EdgeCount() = %d, want 7", s.EdgeCount())
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	first := s.Node(0)
	if first.Label != "LILLY" || first.X != 520 || first.Y != 120 {
		t.Errorf("Node(0) = %+v, want LILLY at (520,120)", first)
	}
	if first.Color != Highlight {
		t.Errorf("Node(0).Color = %q, want %q", first.Color, Highlight)
	}

	for i, e := range s.Edges() {
		if e.From != i || e.To != i+1 {
			t.Errorf("Edges()[%d] = %+v, want {%d %d}", i, e, i, i+1)
		}
	}
}

func TestNewCopiesInput(t *testing.T) {
	nodes := []Node{{Label: "a"}, {Label: "b"}}
	edges := []Edge{{0, 1}}
	s := New(nodes, edges)

	nodes[0].Label = "changed"
	edges[0].To = 0

	if s.Node(0).Label != "a" {
		t.Errorf("Node(0).Label = %q, want a", s.Node(0).Label)
	}
	if s.Edges()[0].To != 1 {
		t.Errorf("Edges()[0].To = %d, want 1", s.Edges()[0].To)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []Node
		edges   []Edge
		wantErr error
	}{
		{
			name:    "empty",
			wantErr: ErrEmptyScene,
		},
		{
			name:  "single node no edges",
			nodes: []Node{{Label: "a"}},
		},
		{
			name:    "source out of range",
			nodes:   []Node{{Label: "a"}},
			edges:   []Edge{{1, 0}},
			wantErr: ErrInvalidEdgeEndpoint,
		},
		{
			name:    "negative destination",
			nodes:   []Node{{Label: "a"}, {Label: "b"}},
			edges:   []Edge{{0, -1}},
			wantErr: ErrInvalidEdgeEndpoint,
		},
		{
			name:  "self loop allowed",
			nodes: []Node{{Label: "a"}},
			edges: []Edge{{0, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.nodes, tt.edges).Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
