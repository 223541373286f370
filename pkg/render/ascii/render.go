package ascii

import (
	"strings"
	"unicode"

	"github.com/matzehuels/treeline/pkg/bintree"
)

const (
	// DefaultMaxCellWidth bounds the global cell width against pathological
	// values. Values wider than the cap are truncated to fit their cell.
	DefaultMaxCellWidth = 80

	// minCellWidth reserves room for the two stub characters under a node.
	minCellWidth = 2
)

// Option configures a rendering.
type Option func(*options)

type options struct {
	maxCellWidth int
}

// WithMaxCellWidth caps the global cell width at w terminal cells. Values
// wider than the cap are truncated, a documented soft degradation rather than
// an error. Caps below 2 are raised to 2 so the stub characters always fit.
func WithMaxCellWidth(w int) Option {
	return func(o *options) {
		o.maxCellWidth = w
	}
}

func newOptions(opts []Option) options {
	o := options{maxCellWidth: DefaultMaxCellWidth}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxCellWidth < minCellWidth {
		o.maxCellWidth = minCellWidth
	}
	return o
}

// Layout is the computed geometry of one tree: the global cell width and the
// per-depth placements the row builders consume.
type Layout struct {
	CellWidth int
	Levels    [][]Placement
}

// ComputeLayout measures the tree and pins every node to its global column.
// The tree is only read; computing the layout twice for the same tree yields
// equal results. A nil root produces an empty layout.
func ComputeLayout(root *bintree.Node, opts ...Option) *Layout {
	o := newOptions(opts)
	seq := flatten(root)
	return &Layout{
		CellWidth: cellWidth(seq, o.maxCellWidth),
		Levels:    group(seq),
	}
}

// Render lays out the tree and assembles its text form. A nil root renders as
// the empty string.
func Render(root *bintree.Node, opts ...Option) string {
	return ComputeLayout(root, opts...).Render()
}

// Render assembles the four rows of every level top to bottom: values, child
// stubs, bridges, then the landing bars of the level below. The deepest level
// contributes only its first two rows, and trailing whitespace of the whole
// text, including blank lines under the deepest level, is trimmed.
func (l *Layout) Render() string {
	if len(l.Levels) == 0 {
		return ""
	}
	lines := make([]string, 0, 4*len(l.Levels))
	for i, level := range l.Levels {
		lines = append(lines, l.skeletonRow(level), l.stubRow(level))
		if i+1 < len(l.Levels) {
			below := l.Levels[i+1]
			lines = append(lines, l.bridgeRow(level, below), l.vstubRow(below))
		} else {
			lines = append(lines, "", "")
		}
	}
	return strings.TrimRightFunc(strings.Join(lines, "\n"), unicode.IsSpace)
}
