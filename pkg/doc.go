// Package pkg provides the libraries behind the constellation command.
//
// # Overview
//
// A constellation is a handful of labeled stars joined by an ordered chain
// of lines. The lines stay hidden until the pointer rests on a star, then
// draw in one at a time. The pkg directory is organized as:
//
//  1. [scene] - The fixed nodes and edge sequence
//  2. [viewport] - Bounds and the uniform fit into a drawing surface
//  3. [reveal] - Hover-driven progress and per-edge state
//  4. [frame] - The per-frame controller and the display list it emits
//  5. [render] - Output: terminal canvas, SVG, PNG, PDF, JSON and DOT
//
// Supporting packages: [config] (TOML/YAML settings and hot reload),
// [fonts] (label metrics), [errors], [observability] and [buildinfo].
//
// # Architecture
//
// One frame flows through the packages like this:
//
//	scene ──► viewport.Bounds ──► viewport.Fit ──► Transform
//	                                                  │
//	pointer ──► Transform.Invert ──► reveal.HitTest ◄─┘
//	                                      │
//	                              reveal.Animator
//	                                      │
//	                              frame.Frame ──► render/*
//
// The transform is computed once per frame and shared by hit-testing and
// drawing, so what the pointer hovers is exactly what is drawn under it.
//
// [scene]: github.com/matzehuels/constellation/pkg/scene
// [viewport]: github.com/matzehuels/constellation/pkg/viewport
// [reveal]: github.com/matzehuels/constellation/pkg/reveal
// [frame]: github.com/matzehuels/constellation/pkg/frame
// [render]: github.com/matzehuels/constellation/pkg/render
// [config]: github.com/matzehuels/constellation/pkg/config
// [fonts]: github.com/matzehuels/constellation/pkg/fonts
// [errors]: github.com/matzehuels/constellation/pkg/errors
// [observability]: github.com/matzehuels/constellation/pkg/observability
// [buildinfo]: github.com/matzehuels/constellation/pkg/buildinfo
package pkg
