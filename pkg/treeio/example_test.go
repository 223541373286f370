package treeio_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/treeline/pkg/treeio"
)

func ExampleReadTree() {
	doc := `{"value": "2", "left": {"value": "1"}, "right": {"value": "3"}}`

	root, err := treeio.ReadTree(strings.NewReader(doc))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("size:", root.Size())
	fmt.Println("root:", root.Value)
	// Output:
	// size: 3
	// root: 2
}

func ExampleWriteTree() {
	root, _ := treeio.ReadTree(strings.NewReader(`{"value": "a", "left": {"value": "b"}}`))

	_ = treeio.WriteTree(os.Stdout, root)
	// Output:
	// {
	//   "value": "a",
	//   "left": {
	//     "value": "b"
	//   }
	// }
}
