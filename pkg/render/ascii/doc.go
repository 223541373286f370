// Package ascii renders binary trees as monospaced text diagrams.
//
// # Output Anatomy
//
// Every node value is centered inside a cell of one global width, and every
// level of the tree contributes four rows of text: the values themselves, the
// slash and backslash stubs marking which children exist, the horizontal dash
// bridges running toward each child's column, and the vertical bars where a
// bridge lands on the level below.
//
//	  7
//	  /\
//	 -  -
//	 |   |
//	4   10
//
// # Columns
//
// Horizontal positions come from the in-order traversal: a node's column is
// its zero-based index in the full left-to-right flattening of the tree, and
// all offsets are measured in whole cells. Every node in a left subtree
// therefore renders strictly left of its ancestor and every node in a right
// subtree strictly right, at any depth, which is what keeps bridges between
// distant levels readable.
//
// # Contract
//
// Rendering is pure. The tree is only read, output depends on nothing but the
// tree and the options, and repeated calls return identical bytes. A nil root
// renders as the empty string. The input must be a strict tree: sharing one
// node between two parents or linking back to an ancestor is a precondition
// violation and the output for such structures is undefined.
package ascii
