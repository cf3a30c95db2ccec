// Package viewport fits node-space content into a drawing surface.
//
// # Overview
//
// Fitting happens in two steps:
//
//  1. [Bounds] computes an axis-aligned [Box] around every node. In
//     [ModeLabels] the box also covers each node's star glyph and its label,
//     measured through an injected [Measurer].
//  2. [Fit] derives a uniform [Transform] (scale plus translation) that
//     places the box's center at the viewport's center and keeps the box
//     inside the viewport minus a fixed padding.
//
// The same Transform must be used for drawing and for pointer hit-testing.
// The frame controller computes it once per frame and hands that single
// value to both.
//
//	box := viewport.Bounds(s, viewport.DefaultBoundsOptions(fonts.Measurer(14)))
//	t := viewport.Fit(box, 1280, 800, 120)
//	sx, sy := t.Apply(520, 120)   // node-space → screen-space
//	nx, ny := t.Invert(sx, sy)    // screen-space → node-space
//
// # Preconditions
//
// Bounds on an empty scene and Fit on a viewport no larger than the padding
// are undefined. Callers validate with [scene.Scene.Validate] and
// [CheckViewport] before fitting.
//
// [scene.Scene.Validate]: github.com/matzehuels/constellation/pkg/scene.Scene.Validate
package viewport
