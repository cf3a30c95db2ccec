// Package reveal drives the one-shot constellation reveal.
//
// An [Animator] holds a single progress value in [0,1] over an ordered edge
// list. Progress advances only on frames where the pointer hovers a node,
// saturates at 1, and never decreases or resets. Everything the renderers
// need is derived from that one number:
//
//   - [Animator.CompletedCount]: edges drawn solid, floor(progress × edges)
//   - [Animator.Edge]: per-edge phase, with the partial fraction for the
//     edge currently being drawn
//   - [Animator.NodeHit]: whether a node has been reached by the reveal
//
// [HitTest] resolves the hovered node by mapping the pointer back into
// node-space through the frame's transform.
//
// # Cadence
//
// [Animator.Step] adds a fixed increment per hovered frame (0.003 by
// default, so a full reveal takes 334 frames). [Animator.Advance] uses a
// time-based rate instead, which keeps the reveal speed constant when the
// host's frame rate varies.
package reveal
