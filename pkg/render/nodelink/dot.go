package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/treeline/pkg/bintree"
	"github.com/matzehuels/treeline/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes depth and subtree size in node labels.
	// When false, only the node value is shown.
	Detailed bool
}

// ToDOT converts a tree to Graphviz DOT format for node-link visualization.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Node ids come from pre-order numbering and edges are written left before
// right, so equal trees produce identical DOT. Each edge carries a side
// attribute ("L" or "R") recording which child it points to, since the drawn
// position of a single child does not preserve that on its own.
func ToDOT(root *bintree.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	ids := number(root)
	root.Walk(func(depth int, n *bintree.Node) {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", ids[n], fmtLabel(n, depth, opts.Detailed))
	})

	buf.WriteString("\n")
	writeEdges(&buf, root, ids)

	buf.WriteString("}\n")
	return buf.String()
}

// number assigns pre-order ids, keyed by node identity so duplicate values
// stay distinct.
func number(root *bintree.Node) map[*bintree.Node]string {
	ids := make(map[*bintree.Node]string, root.Size())
	root.Walk(func(_ int, n *bintree.Node) {
		ids[n] = fmt.Sprintf("n%d", len(ids))
	})
	return ids
}

func fmtLabel(n *bintree.Node, depth int, detailed bool) string {
	if !detailed {
		return n.Value
	}
	return fmt.Sprintf("%s\ndepth: %d\nsize: %d", n.Value, depth, n.Size())
}

func writeEdges(buf *bytes.Buffer, n *bintree.Node, ids map[*bintree.Node]string) {
	if n == nil {
		return
	}
	if n.Left != nil {
		fmt.Fprintf(buf, "  %q -> %q [side=\"L\"];\n", ids[n], ids[n.Left])
	}
	if n.Right != nil {
		fmt.Fprintf(buf, "  %q -> %q [side=\"R\"];\n", ids[n], ids[n.Right])
	}
	writeEdges(buf, n.Left, ids)
	writeEdges(buf, n.Right, ids)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
