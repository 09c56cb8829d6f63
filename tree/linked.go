package tree

import (
	"fmt"
	"strings"

	"github.com/Hakuto4838/DataStructures.git/maps"
	"github.com/golang-collections/collections/queue"
	"github.com/golang-collections/collections/stack"
	"github.com/pkg/errors"
)

// LinkedBinaryTree is a binary tree of parent-linked nodes. Operations that
// take a position from the caller validate it and report structural misuse
// as an error.
type LinkedBinaryTree[E any] struct {
	root *Node[E]
	size int
}

func New[E any]() *LinkedBinaryTree[E] {
	return &LinkedBinaryTree[E]{}
}

func (t *LinkedBinaryTree[E]) Size() int {
	return t.size
}

func (t *LinkedBinaryTree[E]) IsEmpty() bool {
	return t.size == 0
}

func (t *LinkedBinaryTree[E]) Root() *Node[E] {
	return t.root
}

// Validate 檢查 position 是否屬於這棵樹且尚未被移除
func (t *LinkedBinaryTree[E]) Validate(p maps.Position[E]) (*Node[E], error) {
	n, ok := p.(*Node[E])
	if !ok || n == nil {
		return nil, errors.WithMessagef(ErrInvalidPosition, "%T", p)
	}
	if n.owner != t || n.defunct() {
		return nil, ErrInvalidPosition
	}
	return n, nil
}

func (t *LinkedBinaryTree[E]) newNode(e E, parent *Node[E]) *Node[E] {
	t.size++
	return &Node[E]{element: e, parent: parent, owner: t}
}

func (t *LinkedBinaryTree[E]) AddRoot(e E) (*Node[E], error) {
	if t.root != nil {
		return nil, errors.WithMessage(ErrRootExists, "AddRoot")
	}
	t.root = t.newNode(e, nil)
	return t.root, nil
}

func (t *LinkedBinaryTree[E]) AddLeft(p maps.Position[E], e E) (*Node[E], error) {
	parent, err := t.Validate(p)
	if err != nil {
		return nil, errors.WithMessage(err, "AddLeft")
	}
	if parent.left != nil {
		return nil, errors.WithMessage(ErrChildExists, "AddLeft")
	}
	parent.left = t.newNode(e, parent)
	return parent.left, nil
}

func (t *LinkedBinaryTree[E]) AddRight(p maps.Position[E], e E) (*Node[E], error) {
	parent, err := t.Validate(p)
	if err != nil {
		return nil, errors.WithMessage(err, "AddRight")
	}
	if parent.right != nil {
		return nil, errors.WithMessage(ErrChildExists, "AddRight")
	}
	parent.right = t.newNode(e, parent)
	return parent.right, nil
}

// Set replaces the element at p and returns the old one.
func (t *LinkedBinaryTree[E]) Set(p maps.Position[E], e E) (E, error) {
	n, err := t.Validate(p)
	if err != nil {
		var zero E
		return zero, errors.WithMessage(err, "Set")
	}
	old := n.element
	n.element = e
	return old, nil
}

// Attach hangs the two trees below the leaf p and empties them.
func (t *LinkedBinaryTree[E]) Attach(p maps.Position[E], left, right *LinkedBinaryTree[E]) error {
	n, err := t.Validate(p)
	if err != nil {
		return errors.WithMessage(err, "Attach")
	}
	if n.IsInternal() {
		return errors.WithMessage(ErrNotExternal, "Attach")
	}
	for _, sub := range []*LinkedBinaryTree[E]{left, right} {
		if sub == nil || sub.root == nil {
			continue
		}
		for _, m := range sub.Preorder() {
			m.owner = t
		}
		t.size += sub.size
	}
	if left != nil && left.root != nil {
		n.setLeft(left.root)
		left.root, left.size = nil, 0
	}
	if right != nil && right.root != nil {
		n.setRight(right.root)
		right.root, right.size = nil, 0
	}
	return nil
}

// Remove 移除最多只有一個子節點的 p，子節點取代其位置
func (t *LinkedBinaryTree[E]) Remove(p maps.Position[E]) (E, error) {
	n, err := t.Validate(p)
	if err != nil {
		var zero E
		return zero, errors.WithMessage(err, "Remove")
	}
	if n.left != nil && n.right != nil {
		var zero E
		return zero, errors.WithMessage(ErrTwoChildren, "Remove")
	}
	child := n.left
	if child == nil {
		child = n.right
	}
	if child != nil {
		child.parent = n.parent
	}
	switch {
	case n == t.root:
		t.root = child
	case n.parent.left == n:
		n.parent.left = child
	default:
		n.parent.right = child
	}
	t.size--
	e := n.element
	var zero E
	n.element = zero
	n.left, n.right = nil, nil
	n.parent = n
	n.owner = nil
	return e, nil
}

// Rotate moves p above its parent, keeping in-order sequence intact.
func (t *LinkedBinaryTree[E]) Rotate(p maps.Position[E]) error {
	x, err := t.Validate(p)
	if err != nil {
		return errors.WithMessage(err, "Rotate")
	}
	y := x.parent
	if y == nil {
		return errors.WithMessage(ErrNoParent, "Rotate")
	}
	z := y.parent
	if z == nil {
		t.root = x
		x.parent = nil
	} else if z.left == y {
		z.setLeft(x)
	} else {
		z.setRight(x)
	}
	if x == y.left {
		y.setLeft(x.right)
		x.setRight(y)
	} else {
		y.setRight(x.left)
		x.setLeft(y)
	}
	return nil
}

// Restructure performs a trinode restructuring at x and returns the node
// that became the root of the local subtree.
func (t *LinkedBinaryTree[E]) Restructure(p maps.Position[E]) (*Node[E], error) {
	x, err := t.Validate(p)
	if err != nil {
		return nil, errors.WithMessage(err, "Restructure")
	}
	y := x.parent
	if y == nil || y.parent == nil {
		return nil, errors.WithMessage(ErrNoGrandparent, "Restructure")
	}
	z := y.parent
	if (x == y.right) == (y == z.right) {
		// single rotation
		if err := t.Rotate(y); err != nil {
			return nil, err
		}
		return y, nil
	}
	if err := t.Rotate(x); err != nil {
		return nil, err
	}
	if err := t.Rotate(x); err != nil {
		return nil, err
	}
	return x, nil
}

func (t *LinkedBinaryTree[E]) Depth(p maps.Position[E]) (int, error) {
	n, err := t.Validate(p)
	if err != nil {
		return 0, errors.WithMessage(err, "Depth")
	}
	d := 0
	for n.parent != nil {
		n = n.parent
		d++
	}
	return d, nil
}

// Height of the subtree rooted at p; a leaf has height 0.
func (t *LinkedBinaryTree[E]) Height(p maps.Position[E]) (int, error) {
	n, err := t.Validate(p)
	if err != nil {
		return 0, errors.WithMessage(err, "Height")
	}
	return height(n), nil
}

func height[E any](n *Node[E]) int {
	if n == nil || n.IsExternal() {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Positions 以前序走訪回傳所有節點
func (t *LinkedBinaryTree[E]) Positions() []*Node[E] {
	return t.Preorder()
}

func (t *LinkedBinaryTree[E]) Preorder() []*Node[E] {
	out := make([]*Node[E], 0, t.size)
	if t.root == nil {
		return out
	}
	s := stack.New()
	s.Push(t.root)
	for s.Len() > 0 {
		n := s.Pop().(*Node[E])
		out = append(out, n)
		if n.right != nil {
			s.Push(n.right)
		}
		if n.left != nil {
			s.Push(n.left)
		}
	}
	return out
}

func (t *LinkedBinaryTree[E]) Inorder() []*Node[E] {
	out := make([]*Node[E], 0, t.size)
	s := stack.New()
	cur := t.root
	for cur != nil || s.Len() > 0 {
		for cur != nil {
			s.Push(cur)
			cur = cur.left
		}
		n := s.Pop().(*Node[E])
		out = append(out, n)
		cur = n.right
	}
	return out
}

func (t *LinkedBinaryTree[E]) Postorder() []*Node[E] {
	out := make([]*Node[E], 0, t.size)
	if t.root == nil {
		return out
	}
	// 第二個 stack 反轉 (root, right, left) 的順序
	s1, s2 := stack.New(), stack.New()
	s1.Push(t.root)
	for s1.Len() > 0 {
		n := s1.Pop().(*Node[E])
		s2.Push(n)
		if n.left != nil {
			s1.Push(n.left)
		}
		if n.right != nil {
			s1.Push(n.right)
		}
	}
	for s2.Len() > 0 {
		out = append(out, s2.Pop().(*Node[E]))
	}
	return out
}

func (t *LinkedBinaryTree[E]) BreadthFirst() []*Node[E] {
	out := make([]*Node[E], 0, t.size)
	if t.root == nil {
		return out
	}
	q := queue.New()
	q.Enqueue(t.root)
	for q.Len() > 0 {
		n := q.Dequeue().(*Node[E])
		out = append(out, n)
		if n.left != nil {
			q.Enqueue(n.left)
		}
		if n.right != nil {
			q.Enqueue(n.right)
		}
	}
	return out
}

// Dump renders the tree as nested "(elem left right)" groups.
func (t *LinkedBinaryTree[E]) Dump(format func(E) string) string {
	var b strings.Builder
	var walk func(n *Node[E])
	walk = func(n *Node[E]) {
		if n == nil {
			b.WriteString("_")
			return
		}
		if n.IsExternal() {
			b.WriteString(format(n.element))
			return
		}
		fmt.Fprintf(&b, "(%s ", format(n.element))
		walk(n.left)
		b.WriteString(" ")
		walk(n.right)
		b.WriteString(")")
	}
	walk(t.root)
	return b.String()
}
