package treeio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/treeline/pkg/bintree"
	"github.com/matzehuels/treeline/pkg/errors"
)

// maxTreeDepth bounds nesting during decode. Real trees are shallow; the cap
// only exists to keep recursion safe against adversarial documents.
const maxTreeDepth = 4096

// ReadTree decodes a JSON tree from r.
//
// The input must be a nested object with a required "value" string and
// optional "left" and "right" subtrees:
//
//	{"value": "2", "left": {"value": "1"}, "right": {"value": "3"}}
//
// A literal null decodes to a nil tree. ReadTree returns an error if the JSON
// is malformed, carries unknown fields, a node is missing its "value", a value
// fails [errors.ValidateNodeValue], or the document nests deeper than an
// internal bound. Errors are wrapped with the path of the offending node.
//
// The returned tree is independent of r. ReadTree does not close r.
func ReadTree(r io.Reader) (*bintree.Node, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc *treeNode
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTree, err, "decode tree")
	}

	return buildTree(doc, "root", 0)
}

// ImportTree reads a JSON tree file at path.
//
// ImportTree opens the file, decodes it using [ReadTree], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportTree(path string) (*bintree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadTree(f)
}

// treeNode is the serialization shape of one node. Value is a pointer so a
// missing field can be told apart from an explicit empty string.
type treeNode struct {
	Value *string   `json:"value"`
	Left  *treeNode `json:"left,omitempty"`
	Right *treeNode `json:"right,omitempty"`
}

func buildTree(doc *treeNode, path string, depth int) (*bintree.Node, error) {
	if doc == nil {
		return nil, nil
	}
	if depth > maxTreeDepth {
		return nil, errors.New(errors.ErrCodeInvalidTree, "node %s: tree nests deeper than %d levels", path, maxTreeDepth)
	}
	if doc.Value == nil {
		return nil, errors.New(errors.ErrCodeInvalidTree, "node %s: missing value", path)
	}
	if err := errors.ValidateNodeValue(*doc.Value); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTree, err, "node %s", path)
	}

	left, err := buildTree(doc.Left, path+".left", depth+1)
	if err != nil {
		return nil, err
	}
	right, err := buildTree(doc.Right, path+".right", depth+1)
	if err != nil {
		return nil, err
	}

	return bintree.New(*doc.Value, left, right), nil
}
