package tree

// Node is a position in a LinkedBinaryTree.
type Node[E any] struct {
	element  E
	parent   *Node[E]
	left     *Node[E]
	right    *Node[E]
	property int
	owner    *LinkedBinaryTree[E]
}

func (n *Node[E]) Element() E {
	return n.element
}

func (n *Node[E]) Parent() *Node[E] {
	return n.parent
}

func (n *Node[E]) Left() *Node[E] {
	return n.left
}

func (n *Node[E]) Right() *Node[E] {
	return n.right
}

// Sibling 回傳同一個父節點下的另一個子節點，根節點沒有 sibling
func (n *Node[E]) Sibling() *Node[E] {
	if n.parent == nil {
		return nil
	}
	if n.parent.left == n {
		return n.parent.right
	}
	return n.parent.left
}

func (n *Node[E]) IsRoot() bool {
	return n.parent == nil
}

func (n *Node[E]) IsExternal() bool {
	return n.left == nil && n.right == nil
}

func (n *Node[E]) IsInternal() bool {
	return !n.IsExternal()
}

// IsLeftChild reports whether n hangs on its parent's left side.
func (n *Node[E]) IsLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

func (n *Node[E]) NumChildren() int {
	count := 0
	if n.left != nil {
		count++
	}
	if n.right != nil {
		count++
	}
	return count
}

// Property is an integer slot reserved for balancing state (height, color).
func (n *Node[E]) Property() int {
	return n.property
}

func (n *Node[E]) SetProperty(v int) {
	n.property = v
}

func (n *Node[E]) setLeft(c *Node[E]) {
	n.left = c
	if c != nil {
		c.parent = n
	}
}

func (n *Node[E]) setRight(c *Node[E]) {
	n.right = c
	if c != nil {
		c.parent = n
	}
}

// defunct 節點已從樹中移除
func (n *Node[E]) defunct() bool {
	return n.parent == n
}
