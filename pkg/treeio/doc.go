// Package treeio provides JSON import and export for binary trees.
//
// # Overview
//
// This package serializes trees to and from a small JSON format so trees can
// be fed to the renderers from files, stdin, or HTTP request bodies, and so
// rendered structures can be stored and re-rendered later. The format is
// designed for:
//
//   - Hand-written fixtures: a tree is one nested object, easy to type
//   - Integration with tools that produce tree-shaped data
//   - Round-trip preservation: export then re-import yields an equal tree
//
// # JSON Format
//
// A tree is a nested object with a required "value" string and optional
// "left" and "right" subtrees:
//
//	{
//	  "value": "2",
//	  "left":  {"value": "1"},
//	  "right": {"value": "3"}
//	}
//
// A literal null decodes to a nil tree. Absent children are omitted on
// export rather than written as null.
//
// # Validation
//
// Decoding validates every node: "value" must be present and must satisfy
// [errors.ValidateNodeValue] (no newlines or control characters). Nesting
// deeper than an internal bound is rejected to keep the recursive decoder
// safe against adversarial input. Validation errors carry the path of the
// offending node, e.g. "node root.left.right: missing value".
//
// # Import and Export
//
// Use [ImportTree] and [ExportTree] for file paths, or [ReadTree] and
// [WriteTree] for any reader or writer:
//
//	root, err := treeio.ImportTree("tree.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ascii.Render(root))
//
// [errors.ValidateNodeValue]: github.com/matzehuels/treeline/pkg/errors.ValidateNodeValue
package treeio
