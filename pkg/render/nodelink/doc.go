// Package nodelink exports constellation frames as Graphviz node-link
// diagrams.
//
// # Overview
//
// [ToDOT] emits DOT source in which every star is a pinned node
// (pos="x,y!") and every edge carries the styling of its reveal phase.
// [RenderSVG] lays the graph out with neato, which respects the pins, so
// the diagram keeps the constellation's shape.
//
// # Usage
//
//	f := ctrl.Snapshot(1280, 800)
//	dot := nodelink.ToDOT(ctrl.Scene(), f, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The DOT source is also useful on its own:
//
//	neato -n -Tpng constellation.dot -o constellation.png
package nodelink
