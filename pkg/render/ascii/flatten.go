package ascii

import "github.com/matzehuels/treeline/pkg/bintree"

// Placement pins one node to its coordinates: Depth is the level below the
// root, Column the node's index in the full in-order flattening.
type Placement struct {
	Node   *bintree.Node
	Depth  int
	Column int
}

// flatten walks the tree in-order (left subtree, self, right subtree) and
// returns one placement per node. Columns are assigned in visit sequence, so
// they are global across depths.
func flatten(root *bintree.Node) []Placement {
	var seq []Placement
	var walk func(n *bintree.Node, depth int)
	walk = func(n *bintree.Node, depth int) {
		if n == nil {
			return
		}
		walk(n.Left, depth+1)
		seq = append(seq, Placement{Node: n, Depth: depth, Column: len(seq)})
		walk(n.Right, depth+1)
	}
	walk(root, 0)
	return seq
}

// group splits the flattened sequence into per-depth levels, preserving
// in-order sequence inside each level. Depths are dense: a node at depth d
// implies ancestors at every shallower depth.
func group(seq []Placement) [][]Placement {
	maxDepth := -1
	for _, p := range seq {
		if p.Depth > maxDepth {
			maxDepth = p.Depth
		}
	}
	if maxDepth < 0 {
		return nil
	}
	levels := make([][]Placement, maxDepth+1)
	for _, p := range seq {
		levels[p.Depth] = append(levels[p.Depth], p)
	}
	return levels
}

// columnOf builds the column lookup for one level, keyed by node identity.
// Bridges resolve children through pointer identity, never value equality, so
// duplicate values cannot misroute a link.
func columnOf(level []Placement) map[*bintree.Node]int {
	m := make(map[*bintree.Node]int, len(level))
	for _, p := range level {
		m[p.Node] = p.Column
	}
	return m
}
