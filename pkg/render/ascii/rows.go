package ascii

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cellWidth returns the global cell width: the widest value in the sequence
// measured in terminal cells, at least minCellWidth and at most max.
func cellWidth(seq []Placement, max int) int {
	w := minCellWidth
	for _, p := range seq {
		if vw := runewidth.StringWidth(p.Node.Value); vw > w {
			w = vw
		}
	}
	if w > max {
		w = max
	}
	return w
}

// centerCell centers s inside width terminal cells, truncating values that
// are too wide. An odd leftover pads the left side when width is odd and the
// right side otherwise.
func centerCell(s string, width int) string {
	s = runewidth.Truncate(s, width, "")
	pad := width - runewidth.StringWidth(s)
	left := pad/2 + (pad & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// blanks returns n cells of spaces.
func (l *Layout) blanks(n int) string {
	return strings.Repeat(" ", n*l.CellWidth)
}

// skeletonRow renders one level's value line. Gaps compress incrementally: a
// node's left padding covers only the columns between it and its predecessor
// on the same level, so columns held by other depths collapse to blanks.
func (l *Layout) skeletonRow(level []Placement) string {
	var b strings.Builder
	prev := 0
	for _, p := range level {
		b.WriteString(l.blanks(p.Column - prev))
		b.WriteString(centerCell(p.Node.Value, l.CellWidth))
		prev = p.Column + 1
	}
	return b.String()
}

// stubRow renders the child markers directly under a level: a slash at the
// block's left edge iff the node has a left child, a backslash at the right
// edge iff it has a right child, interior blank.
func (l *Layout) stubRow(level []Placement) string {
	interior := strings.Repeat(" ", l.CellWidth-2)
	var b strings.Builder
	prev := 0
	for _, p := range level {
		b.WriteString(l.blanks(p.Column - prev))
		if p.Node.Left != nil {
			b.WriteByte('/')
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(interior)
		if p.Node.Right != nil {
			b.WriteByte('\\')
		} else {
			b.WriteByte(' ')
		}
		prev = p.Column + 1
	}
	return b.String()
}

// bridgeRow renders the dash runs joining each parent on the level above to
// its children on the level below. The child's own block is half dashed, on
// the side facing the parent; every column strictly between child and parent
// carries a full dash block; the parent's own column stays blank, where the
// stub row already holds the slash. A column-adjacent pair degenerates to the
// single half block.
func (l *Layout) bridgeRow(above, below []Placement) string {
	w := l.CellWidth
	half := w / 2
	blank := strings.Repeat(" ", w)
	full := strings.Repeat("-", w)
	leftHalf := strings.Repeat(" ", w-half) + strings.Repeat("-", half)
	rightHalf := strings.Repeat("-", half) + strings.Repeat(" ", w-half)

	blocks := make([]string, max(above[len(above)-1].Column, below[len(below)-1].Column))
	for i := range blocks {
		blocks[i] = blank
	}
	set := func(i int, s string) {
		for len(blocks) <= i {
			blocks = append(blocks, blank)
		}
		blocks[i] = s
	}

	cols := columnOf(below)
	for _, p := range above {
		if left := p.Node.Left; left != nil {
			c := cols[left]
			set(c, leftHalf)
			for i := c + 1; i < p.Column; i++ {
				set(i, full)
			}
		}
		if right := p.Node.Right; right != nil {
			c := cols[right]
			for i := p.Column + 1; i < c; i++ {
				set(i, full)
			}
			set(c, rightHalf)
		}
	}
	return strings.Join(blocks, "")
}

// vstubRow renders the landing bar under every node of a level: a single `|`
// at the midpoint of the node's block, marking where the bridge above arrives.
func (l *Layout) vstubRow(level []Placement) string {
	half := l.CellWidth / 2
	marker := strings.Repeat(" ", half) + "|" + strings.Repeat(" ", l.CellWidth-half-1)
	var b strings.Builder
	prev := 0
	for _, p := range level {
		b.WriteString(l.blanks(p.Column - prev))
		b.WriteString(marker)
		prev = p.Column + 1
	}
	return b.String()
}
