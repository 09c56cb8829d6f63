package searchtree

const (
	black = 0
	red   = 1
)

// Red-black tree properties:
//   - the root is black
//   - a red node has only black children
//   - every sentinel leaf has the same number of black ancestors
type redBlackBalance[K, V any] struct{}

func isRed[K, V any](p *node[K, V]) bool {
	return p != nil && p.Property() == red
}

func isBlack[K, V any](p *node[K, V]) bool {
	return !isRed(p)
}

func setColor[K, V any](p *node[K, V], toRed bool) {
	if toRed {
		p.SetProperty(red)
	} else {
		p.SetProperty(black)
	}
}

func (redBlackBalance[K, V]) onAccess(*TreeMap[K, V], *node[K, V]) {}

func (b redBlackBalance[K, V]) onInsert(m *TreeMap[K, V], p *node[K, V]) {
	if !p.IsRoot() {
		setColor(p, true)
		b.resolveRed(m, p)
	}
}

// resolveRed 修正 p 與其父節點皆為紅色的情況
func (redBlackBalance[K, V]) resolveRed(m *TreeMap[K, V], p *node[K, V]) {
	for {
		parent := p.Parent()
		if !isRed(parent) {
			return
		}
		uncle := parent.Sibling()
		if isBlack(uncle) {
			mid := m.restructure(p)
			setColor(mid, false)
			setColor(mid.Left(), true)
			setColor(mid.Right(), true)
			return
		}
		setColor(parent, false)
		setColor(uncle, false)
		grand := parent.Parent()
		if grand.IsRoot() {
			return
		}
		setColor(grand, true)
		p = grand
	}
}

// onDelete runs on the child promoted into the removed node's place.
func (b redBlackBalance[K, V]) onDelete(m *TreeMap[K, V], p *node[K, V]) {
	if isRed(p) {
		setColor(p, false)
		return
	}
	if p.IsRoot() {
		return
	}
	sib := p.Sibling()
	if sib.IsInternal() && (isBlack(sib) || sib.Left().IsInternal()) {
		b.remedyDoubleBlack(m, p)
	}
}

// remedyDoubleBlack 處理 p 所在路徑少一個黑色節點的情況
func (redBlackBalance[K, V]) remedyDoubleBlack(m *TreeMap[K, V], p *node[K, V]) {
	for {
		z := p.Parent()
		y := p.Sibling()
		if isRed(y) {
			m.rotate(y)
			setColor(y, false)
			setColor(z, true)
			continue
		}
		if isRed(y.Left()) || isRed(y.Right()) {
			x := y.Left()
			if !isRed(x) {
				x = y.Right()
			}
			oldColor := isRed(z)
			mid := m.restructure(x)
			setColor(mid, oldColor)
			setColor(mid.Left(), false)
			setColor(mid.Right(), false)
			return
		}
		setColor(y, true)
		if isRed(z) {
			setColor(z, false)
			return
		}
		if z.IsRoot() {
			return
		}
		p = z
	}
}
