// Package diagram renders a [journey.Journey] with Graphviz.
//
// # Overview
//
// Rendering is a two-step process:
//
//	Journey → ToDOT() → DOT source → Engine.Render() → png/svg/jpg bytes
//
// [ToDOT] writes the journey as a left-to-right digraph with orthogonal
// edge routing, rounded boxes colored by status, and HTML labels that put
// a node's note under its name. Layout and rasterization are entirely up
// to Graphviz.
//
// # Engines
//
// An [Engine] turns DOT source into an image. Two are provided:
//
//   - [Graphviz]: the WASM build of Graphviz embedded through
//     github.com/goccy/go-graphviz; needs nothing installed
//   - [Exec]: the `dot` binary from a local Graphviz install
//
// [Cached] wraps any engine with an artifact cache from package cache.
//
// # Usage
//
//	r := diagram.Renderer{Engine: diagram.Graphviz{}}
//	path, err := r.WriteFile(ctx, journey.History(), "music_journey", diagram.FormatPNG)
//	// path == "music_journey.png"
//
// Failed renders never leave a partial output file behind. [Hint] returns a
// remediation line suitable for showing next to the error.
package diagram
