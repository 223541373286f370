// Package bintree provides the immutable binary tree model consumed by the
// treeline rendering pipeline.
//
// # Overview
//
// A tree is built from [Node] values linked through their Left and Right
// fields. Nodes carry a display string and nothing else: callers stringify
// whatever they want to visualize before building the tree. Once constructed,
// a tree is treated as read-only by every consumer in this repository; the
// renderers only ever follow child pointers and read values.
//
// # Basic Usage
//
// Build leaves first and wire them together with [New]:
//
//	root := bintree.New("2",
//		bintree.Leaf("1"),
//		bintree.Leaf("3"))
//
// Inspection helpers such as [Node.Size] and [Node.Height] are safe on nil
// receivers, so an empty tree can be passed around as a plain nil *Node.
//
// # Structural Preconditions
//
// The model assumes a strict tree: every node is reachable from the root by
// exactly one path, and no node is shared between two parents or linked back
// to an ancestor. Nothing in this package or in the renderers detects or
// repairs violations; behavior on a shared or cyclic structure is undefined.
package bintree
