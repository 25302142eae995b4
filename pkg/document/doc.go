// Package document models scene compositions: layered canvases of shapes,
// text, and images, plus storyboards of timed animations.
//
// Every component is backed by a schema-typed markup node (see pkg/markup),
// so a composition serializes to the nested element form the graphics
// package format expects. Builders on [Composition] and [Layer] are the
// intended assembly surface; the underlying nodes stay reachable through
// Node() for the rare direct manipulation.
package document
