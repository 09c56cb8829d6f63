package searchtree

type splayBalance[K, V any] struct{}

// splay 將 p 一路旋轉到根
func (splayBalance[K, V]) splay(m *TreeMap[K, V], p *node[K, V]) {
	for !p.IsRoot() {
		parent := p.Parent()
		grand := parent.Parent()
		switch {
		case grand == nil:
			// zig
			m.rotate(p)
		case parent.IsLeftChild() == p.IsLeftChild():
			// zig-zig
			m.rotate(parent)
			m.rotate(p)
		default:
			// zig-zag
			m.rotate(p)
			m.rotate(p)
		}
	}
}

func (b splayBalance[K, V]) onAccess(m *TreeMap[K, V], p *node[K, V]) {
	if p.IsExternal() {
		p = p.Parent()
	}
	if p != nil {
		b.splay(m, p)
	}
}

func (b splayBalance[K, V]) onInsert(m *TreeMap[K, V], p *node[K, V]) {
	b.splay(m, p)
}

func (b splayBalance[K, V]) onDelete(m *TreeMap[K, V], p *node[K, V]) {
	if !p.IsRoot() {
		b.splay(m, p.Parent())
	}
}
