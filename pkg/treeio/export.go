package treeio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/treeline/pkg/bintree"
)

// WriteTree encodes a tree as indented JSON and writes it to w.
// A nil root is written as a literal null. The output can be re-imported
// with [ReadTree] for round-trip processing.
func WriteTree(w io.Writer, root *bintree.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDoc(root)); err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	return nil
}

// ExportTree writes a tree to a JSON file at path.
// This is a convenience wrapper around [WriteTree] for file-based output.
func ExportTree(path string, root *bintree.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteTree(f, root)
}

func toDoc(n *bintree.Node) *treeNode {
	if n == nil {
		return nil
	}
	value := n.Value
	return &treeNode{
		Value: &value,
		Left:  toDoc(n.Left),
		Right: toDoc(n.Right),
	}
}
