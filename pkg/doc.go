// Package pkg provides the libraries behind the pathfinder visualizer.
//
// # Overview
//
// Pathfinder runs grid search algorithms one step at a time so every
// intermediate state can be drawn. The packages split into three areas:
//
//  1. Model: [grid] (cells, walls, endpoints, presets, generators) and
//     [heap] (the re-sortable priority queue behind every frontier)
//  2. Search: [search] (A*, Dijkstra, bidirectional best-first search and
//     the algorithm registry) and [engine] (phases, edit locking, the
//     timed driver and snapshots)
//  3. Output: [render] (SVG, PNG, DOT, JSON and text frames), [fonts]
//     and [cache]
//
// [errors], [observability] and [buildinfo] are shared by all of them.
//
// # Data Flow
//
//	TOML preset / ASCII map / editor
//	         ↓
//	    [grid] package (walls, source, target)
//	         ↓
//	    [engine] package (select algorithm, start, step)
//	         ↓
//	    [search] package (open and closed sets, best paths)
//	         ↓
//	    [engine.Snapshot] → [render] → SVG/PNG/DOT/JSON/text
//
// # Quick Start
//
//	g, _ := grid.ParseASCII("S.#\n..T")
//	e := engine.New(g)
//	_ = e.Select("dijkstra")
//	_ = e.Start()
//	for done := false; !done; {
//	    done, _ = e.Step()
//	}
//	svg := render.RenderSVG(e.Snapshot())
//
// For timed playback wrap the engine in an [engine.Driver] and run it on
// its own goroutine.
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/grid
// [heap]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/heap
// [search]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/search
// [engine]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/engine
// [engine.Snapshot]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/engine#Snapshot
// [engine.Driver]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/engine#Driver
// [render]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/render
// [fonts]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/fonts
// [cache]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/buildinfo
package pkg
