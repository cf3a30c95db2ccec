package viewport

import (
	"fmt"
	"math"
)

// Transform maps node-space to screen-space: screen = node*Scale + T.
// Scale is uniform, so the axes are never stretched independently.
type Transform struct {
	Scale float64 `json:"scale"`
	TX    float64 `json:"tx"`
	TY    float64 `json:"ty"`
}

// Identity is the transform that leaves coordinates unchanged.
var Identity = Transform{Scale: 1}

// Fit returns the transform that centers box in a width×height viewport and
// scales it to fill (width-padding)×(height-padding) without distortion.
func Fit(box Box, width, height, padding float64) Transform {
	scale := math.Min(
		(width-padding)/box.Width(),
		(height-padding)/box.Height(),
	)
	cx, cy := box.Center()
	return Transform{
		Scale: scale,
		TX:    width/2 - cx*scale,
		TY:    height/2 - cy*scale,
	}
}

// Apply maps a node-space point to screen-space.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return x*t.Scale + t.TX, y*t.Scale + t.TY
}

// Invert maps a screen-space point back to node-space.
func (t Transform) Invert(x, y float64) (float64, float64) {
	return (x - t.TX) / t.Scale, (y - t.TY) / t.Scale
}

// CheckViewport reports an error when the viewport leaves no room after
// padding, which would make [Fit] produce a zero or negative scale.
func CheckViewport(width, height, padding float64) error {
	if width <= padding || height <= padding {
		return fmt.Errorf("viewport %.0fx%.0f must exceed padding %.0f", width, height, padding)
	}
	return nil
}
