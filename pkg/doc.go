// Package pkg provides the core libraries for Treeline binary tree rendering.
//
// # Overview
//
// Treeline turns binary trees into diagrams: ASCII art for terminals, DOT and
// SVG/PDF/PNG for documents, and a JSON layout for machine consumers. The pkg
// directory is organized into four main areas:
//
//  1. [bintree] - Tree model (nodes, traversal, validation)
//  2. [treeio] - JSON document import/export
//  3. [render] - Output formats (ascii, nodelink, sinkjson)
//  4. [pipeline] - Orchestration (decode → render → cache) used by CLI and API
//
// # Architecture
//
// The typical data flow through Treeline:
//
//	JSON tree document
//	         ↓
//	    [treeio] package (decode + validate)
//	         ↓
//	    [bintree] package (tree structure + traversal)
//	         ↓
//	    [render] package (ascii / nodelink / sinkjson)
//	         ↓
//	    text/DOT/SVG/PDF/PNG/JSON output
//
// # Quick Start
//
// Decode a document and render an ASCII diagram:
//
//	import (
//	    "bytes"
//	    "github.com/matzehuels/treeline/pkg/render/ascii"
//	    "github.com/matzehuels/treeline/pkg/treeio"
//	)
//
//	// 1. Decode the document
//	root, _ := treeio.Import(bytes.NewReader(doc))
//
//	// 2. Render
//	text := ascii.Render(root, ascii.WithMaxCellWidth(40))
//
// # Main Packages
//
// [bintree] - Binary tree model. Nodes hold a string value and optional left
// and right children; traversal is pre-order ([bintree.Node.Walk]) or in-order
// with depths ([bintree.Node.InOrder]).
//
// [treeio] - JSON import/export for tree documents. Strict decoding with
// depth and node-count limits, and a canonical export used for cache keys.
//
// [render/ascii] - Terminal diagrams. Every node occupies a global in-order
// column; each depth level renders as value, stub, bridge, and vertical stub
// rows.
//
// [render/nodelink] - Graphviz node-link diagrams. DOT generation plus SVG,
// PDF, and PNG rendering.
//
// [render/sinkjson] - Machine-readable layout export (columns, positions,
// cell width).
//
// [render] - Top-level utilities for format conversion (SVG to PDF/PNG).
//
// [pipeline] - Complete render pipeline (decode → render → cache) used by CLI
// and API. Ensures consistent behavior across all entry points.
//
// [cache] - Artifact cache interface with memory, file, Redis, and null
// implementations, plus scoped namespacing and key hashing.
//
// [errors] - Coded errors shared across CLI and API, with input validation
// helpers.
//
// [observability] - Hook points for render, cache, and HTTP timing.
//
// # Common Workflows
//
// Render through the pipeline with caching:
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
//	res, _ := runner.Execute(ctx, pipeline.Options{
//	    Source: doc,
//	    Format: pipeline.FormatASCII,
//	})
//	fmt.Println(string(res.Data))
//
// Export a DOT diagram:
//
//	dot := nodelink.ToDOT(root, nodelink.Options{Detailed: true})
//	svg, _ := nodelink.RenderSVG(ctx, dot)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                 # All tests
//	go test ./pkg/render/ascii/...    # Specific package
//	go test -run Example              # Examples only
//
// [bintree]: https://pkg.go.dev/github.com/matzehuels/treeline/pkg/bintree
// [treeio]: https://pkg.go.dev/github.com/matzehuels/treeline/pkg/treeio
// [render]: https://pkg.go.dev/github.com/matzehuels/treeline/pkg/render
// [render/ascii]: https://pkg.go.dev/github.com/matzehuels/treeline/pkg/render/ascii
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/treeline/pkg/render/nodelink
// [render/sinkjson]: https://pkg.go.dev/github.com/matzehuels/treeline/pkg/render/sinkjson
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/treeline/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/treeline/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/treeline/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/treeline/pkg/observability
package pkg
