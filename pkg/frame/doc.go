// Package frame owns the per-frame state of the constellation and produces
// immutable display lists for renderers.
//
// A [Controller] replaces the process-wide globals of a classic sketch: it
// holds the scene, the label measurer, the config and the reveal animator.
// Each call to [Controller.Tick]:
//
//  1. fits the scene into the current viewport, computing one
//     [viewport.Transform],
//  2. hit-tests the pointer through the inverse of that same transform,
//  3. advances the animator if a node is hovered,
//  4. returns a [Frame] carrying the transform and every line, star and
//     label to draw.
//
// Renderers never recompute the fit; they apply Frame.Transform. Hover
// detection and drawing therefore cannot drift apart.
//
// [viewport.Transform]: github.com/matzehuels/constellation/pkg/viewport.Transform
package frame
