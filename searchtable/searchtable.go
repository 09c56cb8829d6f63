package searchtable

import (
	"cmp"
	"iter"
	"slices"

	"github.com/Hakuto4838/DataStructures.git/maps"
)

// SearchTableMap keeps entries in a slice sorted by key.
type SearchTableMap[K, V any] struct {
	table   []*maps.Entry[K, V]
	compare func(K, K) int
}

func NewSearchTableMap[K cmp.Ordered, V any]() *SearchTableMap[K, V] {
	return NewSearchTableMapFunc[K, V](cmp.Compare[K])
}

func NewSearchTableMapFunc[K, V any](compare func(K, K) int) *SearchTableMap[K, V] {
	return &SearchTableMap[K, V]{compare: compare}
}

func (m *SearchTableMap[K, V]) Compare(a, b K) int {
	return m.compare(a, b)
}

func (m *SearchTableMap[K, V]) Size() int {
	return len(m.table)
}

func (m *SearchTableMap[K, V]) IsEmpty() bool {
	return len(m.table) == 0
}

// findIndex 二分搜尋，找不到時回傳 -(插入位置+1)
func (m *SearchTableMap[K, V]) findIndex(key K) int {
	low, high := 0, len(m.table)-1
	for low <= high {
		mid := (low + high) / 2
		c := m.compare(key, m.table[mid].Key())
		switch {
		case c == 0:
			return mid
		case c < 0:
			high = mid - 1
		default:
			low = mid + 1
		}
	}
	return -(low + 1)
}

func (m *SearchTableMap[K, V]) GetValue(key K) (V, bool) {
	j := m.findIndex(key)
	if j < 0 {
		var zero V
		return zero, false
	}
	return m.table[j].Value(), true
}

func (m *SearchTableMap[K, V]) Contains(key K) bool {
	return m.findIndex(key) >= 0
}

func (m *SearchTableMap[K, V]) Put(key K, value V) (V, bool) {
	j := m.findIndex(key)
	if j >= 0 {
		return m.table[j].SetValue(value), true
	}
	m.table = slices.Insert(m.table, -(j + 1), maps.NewEntry(key, value))
	var zero V
	return zero, false
}

func (m *SearchTableMap[K, V]) Remove(key K) (V, bool) {
	j := m.findIndex(key)
	if j < 0 {
		var zero V
		return zero, false
	}
	old := m.table[j].Value()
	m.table = slices.Delete(m.table, j, j+1)
	return old, true
}

// FirstEntry returns nil when the map is empty.
func (m *SearchTableMap[K, V]) FirstEntry() *maps.Entry[K, V] {
	if len(m.table) == 0 {
		return nil
	}
	return m.table[0]
}

func (m *SearchTableMap[K, V]) LastEntry() *maps.Entry[K, V] {
	if len(m.table) == 0 {
		return nil
	}
	return m.table[len(m.table)-1]
}

// CeilingEntry 回傳 key 大於等於目標的最小 entry
func (m *SearchTableMap[K, V]) CeilingEntry(key K) *maps.Entry[K, V] {
	j := m.findIndex(key)
	if j < 0 {
		j = -(j + 1)
	}
	if j >= len(m.table) {
		return nil
	}
	return m.table[j]
}

// FloorEntry 回傳 key 小於等於目標的最大 entry
func (m *SearchTableMap[K, V]) FloorEntry(key K) *maps.Entry[K, V] {
	j := m.findIndex(key)
	if j < 0 {
		j = -(j + 1) - 1
	}
	if j < 0 {
		return nil
	}
	return m.table[j]
}

func (m *SearchTableMap[K, V]) Entries() []*maps.Entry[K, V] {
	return slices.Clone(m.table)
}

func (m *SearchTableMap[K, V]) Keys() []K {
	out := make([]K, len(m.table))
	for i, e := range m.table {
		out[i] = e.Key()
	}
	return out
}

func (m *SearchTableMap[K, V]) Values() []V {
	out := make([]V, len(m.table))
	for i, e := range m.table {
		out[i] = e.Value()
	}
	return out
}

func (m *SearchTableMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.Entries() {
			if !yield(e.Key(), e.Value()) {
				return
			}
		}
	}
}
