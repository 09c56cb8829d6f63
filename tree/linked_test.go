package tree

import (
	"strconv"
	"testing"

	"github.com/Hakuto4838/DataStructures.git/maps"
	"github.com/pkg/errors"
)

var _ maps.Position[int] = (*Node[int])(nil)

func elements(nodes []*Node[int]) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.Element()
	}
	return out
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

//	    1
//	  2   3
//	 4 5   6
func sample(t *testing.T) (*LinkedBinaryTree[int], map[int]*Node[int]) {
	t.Helper()
	tr := New[int]()
	nodes := map[int]*Node[int]{}
	must := func(n *Node[int], err error) *Node[int] {
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		nodes[n.Element()] = n
		return n
	}
	r := must(tr.AddRoot(1))
	two := must(tr.AddLeft(r, 2))
	three := must(tr.AddRight(r, 3))
	must(tr.AddLeft(two, 4))
	must(tr.AddRight(two, 5))
	must(tr.AddRight(three, 6))
	return tr, nodes
}

func TestTraversals(t *testing.T) {
	tr, _ := sample(t)
	tests := []struct {
		name string
		got  []*Node[int]
		want []int
	}{
		{"Preorder", tr.Preorder(), []int{1, 2, 4, 5, 3, 6}},
		{"Inorder", tr.Inorder(), []int{4, 2, 5, 1, 3, 6}},
		{"Postorder", tr.Postorder(), []int{4, 5, 2, 6, 3, 1}},
		{"BreadthFirst", tr.BreadthFirst(), []int{1, 2, 3, 4, 5, 6}},
		{"Positions", tr.Positions(), []int{1, 2, 4, 5, 3, 6}},
	}
	for _, tt := range tests {
		if got := elements(tt.got); !equal(got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
	if tr.Size() != 6 {
		t.Errorf("Size() = %d, want 6", tr.Size())
	}
}

func TestEmptyTraversals(t *testing.T) {
	tr := New[int]()
	if !tr.IsEmpty() || len(tr.Preorder()) != 0 || len(tr.Inorder()) != 0 ||
		len(tr.Postorder()) != 0 || len(tr.BreadthFirst()) != 0 {
		t.Errorf("empty tree traversals should be empty")
	}
}

func TestStructuralErrors(t *testing.T) {
	tr, nodes := sample(t)
	if _, err := tr.AddRoot(9); !errors.Is(err, ErrRootExists) {
		t.Errorf("AddRoot on non-empty tree: err = %v, want ErrRootExists", err)
	}
	if _, err := tr.AddLeft(nodes[2], 9); !errors.Is(err, ErrChildExists) {
		t.Errorf("AddLeft on full node: err = %v, want ErrChildExists", err)
	}
	if _, err := tr.AddRight(nodes[3], 9); !errors.Is(err, ErrChildExists) {
		t.Errorf("AddRight on full node: err = %v, want ErrChildExists", err)
	}
	if _, err := tr.Remove(nodes[2]); !errors.Is(err, ErrTwoChildren) {
		t.Errorf("Remove of two-child node: err = %v, want ErrTwoChildren", err)
	}

	other, _ := sample(t)
	if _, err := other.Set(nodes[4], 9); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("Set with foreign position: err = %v, want ErrInvalidPosition", err)
	}
	if _, err := tr.Remove(nodes[4]); err != nil {
		t.Fatalf("Remove(4): %v", err)
	}
	if _, err := tr.Set(nodes[4], 9); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("Set on removed position: err = %v, want ErrInvalidPosition", err)
	}
	if err := tr.Rotate(nodes[1]); !errors.Is(err, ErrNoParent) {
		t.Errorf("Rotate(root): err = %v, want ErrNoParent", err)
	}
	if _, err := tr.Restructure(nodes[2]); !errors.Is(err, ErrNoGrandparent) {
		t.Errorf("Restructure(child of root): err = %v, want ErrNoGrandparent", err)
	}
}

func TestRemovePromotesChild(t *testing.T) {
	tr, nodes := sample(t)
	e, err := tr.Remove(nodes[3])
	if err != nil || e != 3 {
		t.Fatalf("Remove(3) = (%d, %v), want (3, nil)", e, err)
	}
	if tr.Root().Right() != nodes[6] || nodes[6].Parent() != nodes[1] {
		t.Errorf("6 should replace 3 under the root")
	}
	if got := elements(tr.Inorder()); !equal(got, []int{4, 2, 5, 1, 6}) {
		t.Errorf("Inorder() = %v after Remove(3)", got)
	}
	if tr.Size() != 5 {
		t.Errorf("Size() = %d, want 5", tr.Size())
	}
}

func TestRotate(t *testing.T) {
	tr, nodes := sample(t)
	if err := tr.Rotate(nodes[2]); err != nil {
		t.Fatalf("Rotate(2): %v", err)
	}
	if tr.Root() != nodes[2] {
		t.Fatalf("root = %d, want 2", tr.Root().Element())
	}
	format := func(e int) string { return strconv.Itoa(e) }
	if got, want := tr.Dump(format), "(2 4 (1 5 (3 _ 6)))"; got != want {
		t.Errorf("Dump() = %s, want %s", got, want)
	}
	if got := elements(tr.Inorder()); !equal(got, []int{4, 2, 5, 1, 3, 6}) {
		t.Errorf("rotation changed in-order sequence: %v", got)
	}
}

func TestRestructure(t *testing.T) {
	format := func(e int) string { return strconv.Itoa(e) }

	// zig-zag: 5 is the right child of the left child of the root
	tr, nodes := sample(t)
	mid, err := tr.Restructure(nodes[5])
	if err != nil {
		t.Fatalf("Restructure(5): %v", err)
	}
	if mid != nodes[5] || tr.Root() != nodes[5] {
		t.Errorf("Restructure(5) = %d, want new root 5", mid.Element())
	}
	if got, want := tr.Dump(format), "(5 (2 4 _) (1 _ (3 _ 6)))"; got != want {
		t.Errorf("Dump() = %s, want %s", got, want)
	}

	// zig-zig: 6 hangs right of right child 3
	tr, nodes = sample(t)
	mid, err = tr.Restructure(nodes[6])
	if err != nil {
		t.Fatalf("Restructure(6): %v", err)
	}
	if mid != nodes[3] || tr.Root() != nodes[3] {
		t.Errorf("Restructure(6) = %d, want new root 3", mid.Element())
	}
	if got := elements(tr.Inorder()); !equal(got, []int{4, 2, 5, 1, 3, 6}) {
		t.Errorf("restructure changed in-order sequence: %v", got)
	}
}

func TestAttachAndDepth(t *testing.T) {
	tr := New[int]()
	r, _ := tr.AddRoot(1)
	left := New[int]()
	left.AddRoot(2)
	right := New[int]()
	rr, _ := right.AddRoot(3)
	right.AddLeft(rr, 4)

	if err := tr.Attach(r, left, right); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if tr.Size() != 4 || !left.IsEmpty() || !right.IsEmpty() {
		t.Errorf("sizes after Attach = (%d, %d, %d), want (4, 0, 0)", tr.Size(), left.Size(), right.Size())
	}
	four := r.Right().Left()
	if d, err := tr.Depth(four); err != nil || d != 2 {
		t.Errorf("Depth(4) = (%d, %v), want (2, nil)", d, err)
	}
	if h, err := tr.Height(r); err != nil || h != 2 {
		t.Errorf("Height(root) = (%d, %v), want (2, nil)", h, err)
	}
	if err := tr.Attach(r, New[int](), New[int]()); !errors.Is(err, ErrNotExternal) {
		t.Errorf("Attach on internal node: err = %v, want ErrNotExternal", err)
	}
	if _, err := right.Validate(rr); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("attached node still validates in its old tree")
	}
}
