// Package render draws engine snapshots.
//
// # Overview
//
// A [Frame] is an [engine.Snapshot]: the grid plus the open set, closed set
// and best paths of the active search at one instant. This package turns a
// frame into:
//
//   - SVG ([RenderSVG]): the same picture the terminal UI shows, for browsers
//   - PNG ([RenderPNG]): rasterized with fogleman/gg
//   - DOT ([ToDOT], [RenderDOT]): the explored search tree as a Graphviz
//     digraph, rendered to SVG with goccy/go-graphviz
//   - Text ([RenderASCII]): one symbol per cell
//   - JSON ([WriteJSON]): the snapshot itself
//
// # Picture
//
// Cells are painted in layers, later layers on top: white background, gray
// walls, blue closed cells, cyan open cells, the green target and the red
// source. Light gray grid lines follow, then gray links from every explored
// cell to its parent, then the best paths in yellow. Cells of 12 pixels or
// more carry black S and T labels, set in Go Bold for PNG.
//
//	snap := e.Snapshot()
//	svg := render.RenderSVG(snap, render.WithCellSize(20))
//	png, err := render.RenderPNG(snap)
//
// # Formats
//
// [Render] dispatches on a format name ("svg", "png", "dot", "json" or "txt")
// for callers that take the format from a flag or URL.
package render
