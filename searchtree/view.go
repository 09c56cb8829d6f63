package searchtree

import "github.com/Hakuto4838/DataStructures.git/maps"

type nodeView[K, V any] struct {
	n *node[K, V]
}

func (v nodeView[K, V]) IsSentinel() bool {
	return v.n.IsExternal()
}

func (v nodeView[K, V]) GetKey() K {
	if v.n.IsExternal() {
		var zero K
		return zero
	}
	return v.n.Element().Key()
}

func (v nodeView[K, V]) GetValue() V {
	if v.n.IsExternal() {
		var zero V
		return zero
	}
	return v.n.Element().Value()
}

func (v nodeView[K, V]) GetProperty() int {
	return v.n.Property()
}

func (v nodeView[K, V]) GetLeft() maps.BinaryNodelike[K, V] {
	if v.n.Left() == nil {
		return nil
	}
	return nodeView[K, V]{v.n.Left()}
}

func (v nodeView[K, V]) GetRight() maps.BinaryNodelike[K, V] {
	if v.n.Right() == nil {
		return nil
	}
	return nodeView[K, V]{v.n.Right()}
}

// GetRoot exposes the raw structure, sentinel leaves included.
func (m *TreeMap[K, V]) GetRoot() maps.BinaryNodelike[K, V] {
	return nodeView[K, V]{m.tree.Root()}
}
