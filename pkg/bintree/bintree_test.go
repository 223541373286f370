package bintree

import "testing"

// chain builds a purely left-leaning tree of n nodes labeled "1".."n" top down.
func chain(n int) *Node {
	var root *Node
	for i := n; i >= 1; i-- {
		root = New(itoa(i), root, nil)
	}
	return root
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func TestSize(t *testing.T) {
	tests := []struct {
		name string
		root *Node
		want int
	}{
		{
			name: "nil tree",
			root: nil,
			want: 0,
		},
		{
			name: "single leaf",
			root: Leaf("5"),
			want: 1,
		},
		{
			name: "full two levels",
			root: New("2", Leaf("1"), Leaf("3")),
			want: 3,
		},
		{
			name: "left chain",
			root: chain(4),
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.root.Size(); got != tt.want {
				t.Errorf("Size() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeight(t *testing.T) {
	tests := []struct {
		name string
		root *Node
		want int
	}{
		{
			name: "nil tree",
			root: nil,
			want: 0,
		},
		{
			name: "single leaf",
			root: Leaf("5"),
			want: 1,
		},
		{
			name: "balanced",
			root: New("2", Leaf("1"), Leaf("3")),
			want: 2,
		},
		{
			name: "right heavy",
			root: New("a", nil, New("b", nil, Leaf("c"))),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.root.Height(); got != tt.want {
				t.Errorf("Height() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWalkOrder(t *testing.T) {
	root := New("2", Leaf("1"), New("4", Leaf("3"), nil))

	var values []string
	var depths []int
	root.Walk(func(depth int, n *Node) {
		values = append(values, n.Value)
		depths = append(depths, depth)
	})

	wantValues := []string{"2", "1", "4", "3"}
	wantDepths := []int{0, 1, 1, 2}
	if len(values) != len(wantValues) {
		t.Fatalf("Walk visited %d nodes, want %d", len(values), len(wantValues))
	}
	for i := range wantValues {
		if values[i] != wantValues[i] {
			t.Errorf("visit %d value = %q, want %q", i, values[i], wantValues[i])
		}
		if depths[i] != wantDepths[i] {
			t.Errorf("visit %d depth = %d, want %d", i, depths[i], wantDepths[i])
		}
	}
}

func TestWalkNil(t *testing.T) {
	var root *Node
	called := false
	root.Walk(func(int, *Node) { called = true })
	if called {
		t.Error("Walk on nil receiver visited a node")
	}
}

func TestConstructionIsShallow(t *testing.T) {
	left := Leaf("1")
	right := Leaf("3")
	root := New("2", left, right)

	if root.Left != left || root.Right != right {
		t.Error("New did not preserve child pointer identity")
	}
}
