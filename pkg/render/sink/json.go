package sink

import (
	"encoding/json"

	"github.com/matzehuels/constellation/pkg/frame"
	"github.com/matzehuels/constellation/pkg/scene"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	scene *scene.Scene
}

// WithJSONScene includes the scene's nodes and edges alongside the frame.
func WithJSONScene(s *scene.Scene) JSONOption { return func(r *jsonRenderer) { r.scene = s } }

type jsonOutput struct {
	frame.Frame
	Nodes []scene.Node `json:"nodes,omitempty"`
	Edges []scene.Edge `json:"edges,omitempty"`
}

// RenderJSON exports the frame's display list as indented JSON.
func RenderJSON(f frame.Frame, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{Frame: f}
	if r.scene != nil {
		out.Nodes = r.scene.Nodes()
		out.Edges = r.scene.Edges()
	}
	return json.MarshalIndent(out, "", "  ")
}
