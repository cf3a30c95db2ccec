// Package term draws constellation frames onto a terminal cell grid.
//
// A [Grid] gives every cell a pixel footprint (CellWidth wide, CellWidth ×
// aspect tall) so the frame controller can fit and hit-test in ordinary
// pixel units. [Draw] rasterizes a frame into a [Canvas]: lines become
// slope-matched box-drawing runes, stars become ✦ (hit) or ✧, labels are
// written left to right from their anchor cell. [Canvas.String] colors the
// result with lipgloss.
package term
