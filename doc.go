// Package gtgraphics builds broadcast graphics packages: layered scene
// compositions with shapes, text, images, and storyboarded animations,
// serialized to the player's markup format and zipped with their resources.
//
// A [Project] is the usual entry point:
//
//	proj := gtgraphics.New(1920, 1080)
//	layer := proj.CreateLayer("main")
//	layer.AddTextBlock("Title", "HELLO", document.Loc(60, 60), document.Dim(800, 120))
//	err := proj.Save("hello.gtzip")
//
// The lower-level packages are usable on their own: pkg/markup holds the
// schema-typed node model and serializer, pkg/document the scene object
// types, pkg/color and pkg/layout the small value helpers.
package gtgraphics
