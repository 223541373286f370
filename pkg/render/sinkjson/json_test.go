package sinkjson

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/treeline/pkg/bintree"
	"github.com/matzehuels/treeline/pkg/render/ascii"
)

func TestEncode(t *testing.T) {
	root := bintree.New("2", bintree.Leaf("1"), bintree.Leaf("3"))

	data, err := Encode(root)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.CellWidth != 2 {
		t.Errorf("CellWidth = %d, want 2", out.CellWidth)
	}
	if len(out.Levels) != 2 {
		t.Fatalf("Levels count = %d, want 2", len(out.Levels))
	}

	rootNode := out.Levels[0][0]
	if rootNode.Value != "2" || rootNode.Column != 1 || rootNode.Depth != 0 {
		t.Errorf("root placement = %+v, want value 2 at column 1, depth 0", rootNode)
	}
	if !rootNode.HasLeft || !rootNode.HasRight {
		t.Errorf("root flags = left %v, right %v, want both true", rootNode.HasLeft, rootNode.HasRight)
	}

	if len(out.Levels[1]) != 2 {
		t.Fatalf("level 1 count = %d, want 2", len(out.Levels[1]))
	}
	if out.Levels[1][0].Value != "1" || out.Levels[1][1].Value != "3" {
		t.Errorf("level 1 order = %q, %q, want 1, 3", out.Levels[1][0].Value, out.Levels[1][1].Value)
	}
	for _, leaf := range out.Levels[1] {
		if leaf.HasLeft || leaf.HasRight {
			t.Errorf("leaf %q flags = left %v, right %v, want both false", leaf.Value, leaf.HasLeft, leaf.HasRight)
		}
	}

	if got, want := strings.Join(out.Lines, "\n"), ascii.Render(root); got != want {
		t.Errorf("Lines joined = %q, want %q", got, want)
	}
}

func TestEncodeGolden(t *testing.T) {
	root := bintree.New("2", bintree.Leaf("1"), bintree.Leaf("3"))

	data, err := Encode(root)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	want := `{
  "cell_width": 2,
  "levels": [
    [
      {
        "value": "2",
        "column": 1,
        "depth": 0,
        "has_left": true,
        "has_right": true
      }
    ],
    [
      {
        "value": "1",
        "column": 0,
        "depth": 1,
        "has_left": false,
        "has_right": false
      },
      {
        "value": "3",
        "column": 2,
        "depth": 1,
        "has_left": false,
        "has_right": false
      }
    ]
  ],
  "lines": [
    "  2 ",
    "  /\\",
    " -  - ",
    " |   |",
    "1   3"
  ]
}` + "\n"

	if string(data) != want {
		t.Errorf("Encode() = %s, want %s", data, want)
	}
}

func TestEncodeMaxCellWidth(t *testing.T) {
	root := bintree.New("abcdef", bintree.Leaf("x"), bintree.Leaf("y"))

	data, err := Encode(root, WithMaxCellWidth(4))
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.CellWidth != 4 {
		t.Errorf("CellWidth = %d, want 4", out.CellWidth)
	}
	if got := out.Levels[0][0].Value; got != "abcdef" {
		t.Errorf("root value = %q, want untruncated %q", got, "abcdef")
	}
	if got, want := out.Lines[0], "    abcd"; got != want {
		t.Errorf("Lines[0] = %q, want truncated %q", got, want)
	}
}

func TestEncodeNilRoot(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode(nil) error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.CellWidth == 0 {
		t.Error("CellWidth missing from empty encoding")
	}
	if len(out.Levels) != 0 {
		t.Errorf("Levels count = %d, want 0", len(out.Levels))
	}
	if len(out.Lines) != 0 {
		t.Errorf("Lines count = %d, want 0", len(out.Lines))
	}
	if !bytes.Contains(data, []byte(`"levels": []`)) {
		t.Errorf("empty levels not encoded as []: %s", data)
	}
}

func TestEncodeStable(t *testing.T) {
	root := bintree.New("12", bintree.New("1", nil, bintree.Leaf("123")), bintree.Leaf("1234"))

	first, err := Encode(root)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	second, err := Encode(root)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("Encode() not byte-stable across calls")
	}
	if !bytes.HasSuffix(first, []byte("\n")) {
		t.Error("Encode() output missing trailing newline")
	}
}
