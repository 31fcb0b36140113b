package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pathfinder/pkg/engine"
	"github.com/matzehuels/pathfinder/pkg/grid"
)

// ToDOT converts the explored tree of f to Graphviz DOT. Each explored
// cell becomes a node pinned at its grid position, with an edge to the
// cell it was reached from. Best paths are highlighted and drawn
// even where they pass through cells outside both sets.
func ToDOT(f Frame) string {
	onPath := make(map[grid.Coord]bool)
	for _, p := range f.Paths {
		for _, c := range p {
			onPath[c] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", fmt.Sprintf("%s (%s, %d iterations)", f.Algorithm, f.Phase, f.Iterations))
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  node [shape=box, style=filled, fontsize=10, width=0.4, height=0.4, fixedsize=true];\n")
	buf.WriteString("\n")

	seen := make(map[grid.Coord]bool)
	node := func(c grid.Coord, fill string) {
		if seen[c] {
			return
		}
		seen[c] = true
		attrs := fmt.Sprintf("pos=\"%d,%d!\", fillcolor=%q", c.X, -c.Y, fill)
		if onPath[c] {
			attrs += ", penwidth=3, color=\"" + hex(ColorPath) + "\""
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", c.String(), attrs)
	}

	node(f.Source, hex(ColorSource))
	node(f.Target, hex(ColorTarget))
	for _, l := range f.Closed {
		node(l.At, hex(ColorClosed))
	}
	for _, l := range f.Open {
		node(l.At, hex(ColorOpen))
	}

	for _, p := range f.Paths {
		for _, c := range p {
			node(c, hex(ColorPath))
		}
	}

	buf.WriteString("\n")
	type edge struct{ from, to grid.Coord }
	drawn := make(map[edge]bool)
	line := func(from, to grid.Coord) {
		e := edge{from, to}
		if drawn[e] {
			return
		}
		drawn[e] = true
		attr := ""
		if onPath[from] && onPath[to] {
			attr = fmt.Sprintf(" [color=%q, penwidth=3]", hex(ColorPath))
		}
		fmt.Fprintf(&buf, "  %q -> %q%s;\n", from.String(), to.String(), attr)
	}
	for _, links := range [][]engine.Link{f.Closed, f.Open} {
		for _, l := range links {
			if l.HasParent {
				line(l.Parent, l.At)
			}
		}
	}
	for _, p := range f.Paths {
		for i := 1; i < len(p); i++ {
			line(p[i-1], p[i])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOT lays out a DOT graph with Graphviz and returns SVG.
func RenderDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one
// whose viewBox starts at the origin.
func normalizeViewBox(svg []byte) []byte {
	m := viewBoxRe.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(m[3]), 64)
	h, _ := strconv.ParseFloat(string(m[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
