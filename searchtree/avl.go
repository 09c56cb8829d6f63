package searchtree

// AVL 以 property 儲存高度，sentinel leaf 高度為 0
type avlBalance[K, V any] struct{}

func height[K, V any](p *node[K, V]) int {
	if p == nil {
		return 0
	}
	return p.Property()
}

func recomputeHeight[K, V any](p *node[K, V]) {
	p.SetProperty(1 + max(height(p.Left()), height(p.Right())))
}

func isBalanced[K, V any](p *node[K, V]) bool {
	d := height(p.Left()) - height(p.Right())
	return -1 <= d && d <= 1
}

// tallerChild breaks ties toward the side p itself hangs on; the root
// prefers left.
func tallerChild[K, V any](p *node[K, V]) *node[K, V] {
	l, r := p.Left(), p.Right()
	if height(l) > height(r) {
		return l
	}
	if height(l) < height(r) {
		return r
	}
	if p.IsRoot() || p.IsLeftChild() {
		return l
	}
	return r
}

func (avlBalance[K, V]) rebalance(m *TreeMap[K, V], p *node[K, V]) {
	for p != nil {
		old := height(p)
		if !isBalanced(p) {
			p = m.restructure(tallerChild(tallerChild(p)))
			recomputeHeight(p.Left())
			recomputeHeight(p.Right())
		}
		recomputeHeight(p)
		if height(p) == old {
			return
		}
		p = p.Parent()
	}
}

func (avlBalance[K, V]) onAccess(*TreeMap[K, V], *node[K, V]) {}

func (b avlBalance[K, V]) onInsert(m *TreeMap[K, V], p *node[K, V]) {
	b.rebalance(m, p)
}

func (b avlBalance[K, V]) onDelete(m *TreeMap[K, V], p *node[K, V]) {
	if !p.IsRoot() {
		b.rebalance(m, p.Parent())
	}
}
