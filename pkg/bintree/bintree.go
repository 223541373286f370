package bintree

// Node represents one vertex of a binary tree. Value is the text rendered for
// the node; Left and Right point to the child subtrees, nil meaning no child.
//
// Nodes are constructed once and never mutated afterwards. Consumers rely on
// pointer identity to tell nodes apart, so duplicate values are fine but a
// single *Node must not appear in two places.
type Node struct {
	Value string
	Left  *Node
	Right *Node
}

// New creates a node with the given display value and children. Either child
// may be nil.
func New(value string, left, right *Node) *Node {
	return &Node{Value: value, Left: left, Right: right}
}

// Leaf creates a node with no children.
func Leaf(value string) *Node {
	return &Node{Value: value}
}

// Size returns the number of nodes in the subtree rooted at n.
// A nil receiver counts as zero.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Size() + n.Right.Size()
}

// Height returns the number of levels in the subtree rooted at n: a single
// node has height 1, a nil receiver height 0.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	lh, rh := n.Left.Height(), n.Right.Height()
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// Walk visits every node of the subtree in pre-order (self, left, right),
// calling fn with the node's depth relative to n (n itself is depth 0).
// Walk on a nil receiver is a no-op.
func (n *Node) Walk(fn func(depth int, node *Node)) {
	n.walk(0, fn)
}

func (n *Node) walk(depth int, fn func(int, *Node)) {
	if n == nil {
		return
	}
	fn(depth, n)
	n.Left.walk(depth+1, fn)
	n.Right.walk(depth+1, fn)
}
