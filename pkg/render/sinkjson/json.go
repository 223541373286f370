// Package sinkjson exports computed tree layouts as JSON for external tools.
//
// The document carries the same geometry the text renderer consumes (global
// cell width, per-level node placements) together with the rendered lines, so
// downstream tooling can reposition, diff, or re-render a tree without
// re-deriving the layout.
package sinkjson

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/treeline/pkg/bintree"
	"github.com/matzehuels/treeline/pkg/render/ascii"
)

// Option configures JSON encoding via [Encode].
type Option func(*encoder)

type encoder struct {
	layout []ascii.Option
}

// WithMaxCellWidth caps the layout cell width, mirroring
// [ascii.WithMaxCellWidth]. The cap shows up both in the "cell_width" field
// and in the rendered lines; node values in "levels" stay untruncated.
func WithMaxCellWidth(w int) Option {
	return func(e *encoder) { e.layout = append(e.layout, ascii.WithMaxCellWidth(w)) }
}

type jsonOutput struct {
	CellWidth int          `json:"cell_width"`
	Levels    [][]jsonNode `json:"levels"`
	Lines     []string     `json:"lines"`
}

type jsonNode struct {
	Value    string `json:"value"`
	Column   int    `json:"column"`
	Depth    int    `json:"depth"`
	HasLeft  bool   `json:"has_left"`
	HasRight bool   `json:"has_right"`
}

// Encode lays out the tree and exports it as a pretty-printed JSON document:
//
//   - "cell_width": the global cell width all columns share
//   - "levels": per-depth node placements in left-to-right order, each with
//     its value, global column, depth, and child flags
//   - "lines": the text rendering, split into lines
//
// Field order is fixed and the output ends in a newline, so encodings are
// byte-stable and diff well. Encode only reads the tree and is safe to call
// concurrently. A nil root encodes with empty levels and lines.
func Encode(root *bintree.Node, opts ...Option) ([]byte, error) {
	e := encoder{}
	for _, opt := range opts {
		opt(&e)
	}

	l := ascii.ComputeLayout(root, e.layout...)
	out := jsonOutput{
		CellWidth: l.CellWidth,
		Levels:    buildLevels(l),
		Lines:     splitLines(l.Render()),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func buildLevels(l *ascii.Layout) [][]jsonNode {
	levels := make([][]jsonNode, 0, len(l.Levels))
	for _, level := range l.Levels {
		nodes := make([]jsonNode, 0, len(level))
		for _, p := range level {
			nodes = append(nodes, jsonNode{
				Value:    p.Node.Value,
				Column:   p.Column,
				Depth:    p.Depth,
				HasLeft:  p.Node.Left != nil,
				HasRight: p.Node.Right != nil,
			})
		}
		levels = append(levels, nodes)
	}
	return levels
}

func splitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(text, "\n")
}
