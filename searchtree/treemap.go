package searchtree

import (
	"cmp"
	"iter"

	"github.com/Hakuto4838/DataStructures.git/maps"
	"github.com/Hakuto4838/DataStructures.git/tree"
	"github.com/pkg/errors"
)

type node[K, V any] = tree.Node[*maps.Entry[K, V]]

// Kind 選擇平衡策略
type Kind uint8

const (
	None Kind = iota
	AVL
	RedBlack
	Splay
)

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case AVL:
		return "AVL"
	case RedBlack:
		return "RedBlack"
	case Splay:
		return "Splay"
	default:
		return "Unknown"
	}
}

// balancer hooks run at the node that changed or was visited.
type balancer[K, V any] interface {
	onAccess(m *TreeMap[K, V], p *node[K, V])
	onInsert(m *TreeMap[K, V], p *node[K, V])
	onDelete(m *TreeMap[K, V], p *node[K, V])
}

type noBalance[K, V any] struct{}

func (noBalance[K, V]) onAccess(*TreeMap[K, V], *node[K, V]) {}
func (noBalance[K, V]) onInsert(*TreeMap[K, V], *node[K, V]) {}
func (noBalance[K, V]) onDelete(*TreeMap[K, V], *node[K, V]) {}

// TreeMap is a sorted map over a linked binary tree whose leaves are
// sentinels without an entry. Every stored entry owns exactly two children,
// so the tree always holds 2*Size()+1 nodes.
type TreeMap[K, V any] struct {
	tree    *tree.LinkedBinaryTree[*maps.Entry[K, V]]
	compare func(K, K) int
	kind    Kind
	bal     balancer[K, V]
}

func New[K, V any](kind Kind, compare func(K, K) int) *TreeMap[K, V] {
	m := &TreeMap[K, V]{
		tree:    tree.New[*maps.Entry[K, V]](),
		compare: compare,
		kind:    kind,
	}
	switch kind {
	case AVL:
		m.bal = avlBalance[K, V]{}
	case RedBlack:
		m.bal = redBlackBalance[K, V]{}
	case Splay:
		m.bal = splayBalance[K, V]{}
	default:
		m.kind = None
		m.bal = noBalance[K, V]{}
	}
	_, err := m.tree.AddRoot(nil)
	must(err)
	return m
}

func NewTreeMap[K cmp.Ordered, V any]() *TreeMap[K, V] {
	return New[K, V](None, cmp.Compare[K])
}

func NewTreeMapFunc[K, V any](compare func(K, K) int) *TreeMap[K, V] {
	return New[K, V](None, compare)
}

func NewAVLTreeMap[K cmp.Ordered, V any]() *TreeMap[K, V] {
	return New[K, V](AVL, cmp.Compare[K])
}

func NewAVLTreeMapFunc[K, V any](compare func(K, K) int) *TreeMap[K, V] {
	return New[K, V](AVL, compare)
}

func NewRBTreeMap[K cmp.Ordered, V any]() *TreeMap[K, V] {
	return New[K, V](RedBlack, cmp.Compare[K])
}

func NewRBTreeMapFunc[K, V any](compare func(K, K) int) *TreeMap[K, V] {
	return New[K, V](RedBlack, compare)
}

func NewSplayTreeMap[K cmp.Ordered, V any]() *TreeMap[K, V] {
	return New[K, V](Splay, cmp.Compare[K])
}

func NewSplayTreeMapFunc[K, V any](compare func(K, K) int) *TreeMap[K, V] {
	return New[K, V](Splay, compare)
}

func must(err error) {
	if err != nil {
		panic(errors.Wrap(err, "corrupt tree"))
	}
}

func (m *TreeMap[K, V]) Kind() Kind {
	return m.kind
}

func (m *TreeMap[K, V]) Compare(a, b K) int {
	return m.compare(a, b)
}

func (m *TreeMap[K, V]) Size() int {
	return (m.tree.Size() - 1) / 2
}

func (m *TreeMap[K, V]) IsEmpty() bool {
	return m.Size() == 0
}

// lookUp 回傳 key 所在的節點，找不到時回傳應插入的 sentinel leaf
func (m *TreeMap[K, V]) lookUp(key K) *node[K, V] {
	p := m.tree.Root()
	for p.IsInternal() {
		c := m.compare(key, p.Element().Key())
		if c == 0 {
			return p
		}
		if c < 0 {
			p = p.Left()
		} else {
			p = p.Right()
		}
	}
	return p
}

func (m *TreeMap[K, V]) GetValue(key K) (V, bool) {
	p := m.lookUp(key)
	m.bal.onAccess(m, p)
	if p.IsExternal() {
		var zero V
		return zero, false
	}
	return p.Element().Value(), true
}

func (m *TreeMap[K, V]) Contains(key K) bool {
	_, ok := m.GetValue(key)
	return ok
}

func (m *TreeMap[K, V]) Put(key K, value V) (V, bool) {
	p := m.lookUp(key)
	if p.IsExternal() {
		m.expandLeaf(p, maps.NewEntry(key, value))
		m.bal.onInsert(m, p)
		var zero V
		return zero, false
	}
	old := p.Element().SetValue(value)
	m.bal.onAccess(m, p)
	return old, true
}

func (m *TreeMap[K, V]) expandLeaf(p *node[K, V], e *maps.Entry[K, V]) {
	_, err := m.tree.Set(p, e)
	must(err)
	_, err = m.tree.AddLeft(p, nil)
	must(err)
	_, err = m.tree.AddRight(p, nil)
	must(err)
}

func (m *TreeMap[K, V]) Remove(key K) (V, bool) {
	p := m.lookUp(key)
	if p.IsExternal() {
		m.bal.onAccess(m, p)
		var zero V
		return zero, false
	}
	old := p.Element().Value()
	if p.Left().IsInternal() && p.Right().IsInternal() {
		succ := treeMin(p.Right())
		_, err := m.tree.Set(p, succ.Element())
		must(err)
		p = succ
	}
	leaf := p.Left()
	if leaf.IsInternal() {
		leaf = p.Right()
	}
	sib := leaf.Sibling()
	_, err := m.tree.Remove(leaf)
	must(err)
	_, err = m.tree.Remove(p)
	must(err)
	m.bal.onDelete(m, sib)
	return old, true
}

// treeMin 回傳子樹中 key 最小的 internal node
func treeMin[K, V any](p *node[K, V]) *node[K, V] {
	for p.Left().IsInternal() {
		p = p.Left()
	}
	return p
}

func (m *TreeMap[K, V]) rotate(p *node[K, V]) {
	must(m.tree.Rotate(p))
}

func (m *TreeMap[K, V]) restructure(x *node[K, V]) *node[K, V] {
	mid, err := m.tree.Restructure(x)
	must(err)
	return mid
}

// Rotate moves p above its parent.
func (m *TreeMap[K, V]) Rotate(p maps.Position[*maps.Entry[K, V]]) error {
	return m.tree.Rotate(p)
}

// Restructure performs a trinode restructuring at x and returns the new
// local subtree root.
func (m *TreeMap[K, V]) Restructure(x maps.Position[*maps.Entry[K, V]]) (maps.Position[*maps.Entry[K, V]], error) {
	mid, err := m.tree.Restructure(x)
	if err != nil {
		return nil, err
	}
	return mid, nil
}

func (m *TreeMap[K, V]) internal(nodes []*node[K, V]) []maps.Position[*maps.Entry[K, V]] {
	out := make([]maps.Position[*maps.Entry[K, V]], 0, m.Size())
	for _, n := range nodes {
		if n.IsInternal() {
			out = append(out, n)
		}
	}
	return out
}

func (m *TreeMap[K, V]) InorderPositions() []maps.Position[*maps.Entry[K, V]] {
	return m.internal(m.tree.Inorder())
}

func (m *TreeMap[K, V]) PreorderPositions() []maps.Position[*maps.Entry[K, V]] {
	return m.internal(m.tree.Preorder())
}

func (m *TreeMap[K, V]) PostorderPositions() []maps.Position[*maps.Entry[K, V]] {
	return m.internal(m.tree.Postorder())
}

func (m *TreeMap[K, V]) LevelOrderPositions() []maps.Position[*maps.Entry[K, V]] {
	return m.internal(m.tree.BreadthFirst())
}

func (m *TreeMap[K, V]) Entries() []*maps.Entry[K, V] {
	out := make([]*maps.Entry[K, V], 0, m.Size())
	for _, n := range m.tree.Inorder() {
		if n.IsInternal() {
			out = append(out, n.Element())
		}
	}
	return out
}

func (m *TreeMap[K, V]) Keys() []K {
	entries := m.Entries()
	out := make([]K, len(entries))
	for i, e := range entries {
		out[i] = e.Key()
	}
	return out
}

func (m *TreeMap[K, V]) Values() []V {
	entries := m.Entries()
	out := make([]V, len(entries))
	for i, e := range entries {
		out[i] = e.Value()
	}
	return out
}

// All iterates a snapshot taken when the iteration starts.
func (m *TreeMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.Entries() {
			if !yield(e.Key(), e.Value()) {
				return
			}
		}
	}
}

func position[K, V any](n *node[K, V]) maps.Position[*maps.Entry[K, V]] {
	if n == nil || n.IsExternal() {
		return nil
	}
	return n
}

// Root returns nil for an empty map.
func (m *TreeMap[K, V]) Root() maps.Position[*maps.Entry[K, V]] {
	return position(m.tree.Root())
}

func (m *TreeMap[K, V]) Left(p maps.Position[*maps.Entry[K, V]]) (maps.Position[*maps.Entry[K, V]], error) {
	n, err := m.tree.Validate(p)
	if err != nil {
		return nil, err
	}
	return position(n.Left()), nil
}

func (m *TreeMap[K, V]) Right(p maps.Position[*maps.Entry[K, V]]) (maps.Position[*maps.Entry[K, V]], error) {
	n, err := m.tree.Validate(p)
	if err != nil {
		return nil, err
	}
	return position(n.Right()), nil
}

func (m *TreeMap[K, V]) Parent(p maps.Position[*maps.Entry[K, V]]) (maps.Position[*maps.Entry[K, V]], error) {
	n, err := m.tree.Validate(p)
	if err != nil {
		return nil, err
	}
	return position(n.Parent()), nil
}

func (m *TreeMap[K, V]) Sibling(p maps.Position[*maps.Entry[K, V]]) (maps.Position[*maps.Entry[K, V]], error) {
	n, err := m.tree.Validate(p)
	if err != nil {
		return nil, err
	}
	return position(n.Sibling()), nil
}

func (m *TreeMap[K, V]) String() string {
	return m.tree.Dump(func(e *maps.Entry[K, V]) string {
		if e == nil {
			return "_"
		}
		return e.String()
	})
}
