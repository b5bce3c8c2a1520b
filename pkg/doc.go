// Package pkg holds the libraries behind musicmap.
//
// # Overview
//
// musicmap draws a personal music-discovery history as a left-to-right
// Graphviz diagram. The libraries are:
//
//  1. [journey] - Nodes, edges, statuses and their colors; the built-in
//     history and TOML journey files
//  2. [diagram] - DOT generation and rendering engines
//  3. [cache] - Rendered-artifact cache (null, file, Redis)
//  4. [errors] - Coded errors shared by the CLI and the preview server
//  5. [observability] - Render, cache and HTTP hooks with a Prometheus backend
//  6. [buildinfo] - Version information injected at build time
//
// # Data Flow
//
//	journey.History() or journey.Load(file)
//	         ↓
//	    diagram.ToDOT (status colors, rich-text labels)
//	         ↓
//	    diagram.Engine (embedded Graphviz or the dot binary, optionally cached)
//	         ↓
//	    music_journey.png / .svg / .jpg / .dot
//
// # Quick Start
//
//	r := diagram.Renderer{}
//	path, err := r.WriteFile(ctx, journey.History(), "music_journey", diagram.FormatPNG)
//
// [journey]: https://pkg.go.dev/github.com/matzehuels/musicmap/pkg/journey
// [diagram]: https://pkg.go.dev/github.com/matzehuels/musicmap/pkg/diagram
// [cache]: https://pkg.go.dev/github.com/matzehuels/musicmap/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/musicmap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/musicmap/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/musicmap/pkg/buildinfo
package pkg
