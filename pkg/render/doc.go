// Package render provides visualization rendering for binary trees.
//
// # Overview
//
// This package contains the rendering surfaces that transform an in-memory
// tree into displayable output. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - ASCII text diagrams (in [ascii] subpackage)
//   - Node-link diagrams (in [nodelink] subpackage)
//   - Machine-readable layout export (in [sinkjson] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). They back the PDF and PNG
// output formats of the node-link renderer:
//
//	dot := nodelink.ToDOT(root, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// # ASCII Diagrams
//
// The [ascii] subpackage is the primary renderer: it lays every node of a
// tree onto a global column grid and draws values, diagonal stubs, and
// horizontal bridges as plain text. This is Treeline's signature output,
// designed for terminals, code comments, and test goldens.
//
// Key entry points:
//   - [ascii.Render]: one-call text rendering
//   - [ascii.ComputeLayout]: geometry without assembly, for inspection
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders traditional parent-to-child diagrams
// using Graphviz. Nodes appear as boxes connected by arrows.
//
// # Layout Export
//
// The [sinkjson] subpackage exports the computed layout and rendered lines
// as a JSON document for external tooling.
//
// [ascii]: github.com/matzehuels/treeline/pkg/render/ascii
// [ascii.Render]: github.com/matzehuels/treeline/pkg/render/ascii.Render
// [ascii.ComputeLayout]: github.com/matzehuels/treeline/pkg/render/ascii.ComputeLayout
// [nodelink]: github.com/matzehuels/treeline/pkg/render/nodelink
// [sinkjson]: github.com/matzehuels/treeline/pkg/render/sinkjson
package render
