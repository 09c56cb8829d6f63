package unordered

import (
	"iter"
	"slices"

	"github.com/Hakuto4838/DataStructures.git/maps"
)

// UnorderedArrayMap stores entries in a slice searched linearly. New
// entries go to the front; a hit swaps the entry one slot forward so
// frequently used keys drift toward the front.
type UnorderedArrayMap[K comparable, V any] struct {
	table []*maps.Entry[K, V]
}

func NewUnorderedArrayMap[K comparable, V any]() *UnorderedArrayMap[K, V] {
	return &UnorderedArrayMap[K, V]{}
}

func (m *UnorderedArrayMap[K, V]) Size() int {
	return len(m.table)
}

func (m *UnorderedArrayMap[K, V]) IsEmpty() bool {
	return len(m.table) == 0
}

func (m *UnorderedArrayMap[K, V]) findIndex(key K) int {
	for i, e := range m.table {
		if e.Key() == key {
			return i
		}
	}
	return -1
}

// transpose 與前一個 entry 交換，回傳新的索引
func (m *UnorderedArrayMap[K, V]) transpose(j int) int {
	if j == 0 {
		return j
	}
	m.table[j-1], m.table[j] = m.table[j], m.table[j-1]
	return j - 1
}

func (m *UnorderedArrayMap[K, V]) GetValue(key K) (V, bool) {
	j := m.findIndex(key)
	if j < 0 {
		var zero V
		return zero, false
	}
	j = m.transpose(j)
	return m.table[j].Value(), true
}

// Contains does not reorder entries.
func (m *UnorderedArrayMap[K, V]) Contains(key K) bool {
	return m.findIndex(key) >= 0
}

func (m *UnorderedArrayMap[K, V]) Put(key K, value V) (V, bool) {
	j := m.findIndex(key)
	if j < 0 {
		m.table = slices.Insert(m.table, 0, maps.NewEntry(key, value))
		var zero V
		return zero, false
	}
	j = m.transpose(j)
	return m.table[j].SetValue(value), true
}

func (m *UnorderedArrayMap[K, V]) Remove(key K) (V, bool) {
	j := m.findIndex(key)
	if j < 0 {
		var zero V
		return zero, false
	}
	old := m.table[j].Value()
	m.table = slices.Delete(m.table, j, j+1)
	return old, true
}

func (m *UnorderedArrayMap[K, V]) Entries() []*maps.Entry[K, V] {
	return slices.Clone(m.table)
}

func (m *UnorderedArrayMap[K, V]) Keys() []K {
	out := make([]K, len(m.table))
	for i, e := range m.table {
		out[i] = e.Key()
	}
	return out
}

func (m *UnorderedArrayMap[K, V]) Values() []V {
	out := make([]V, len(m.table))
	for i, e := range m.table {
		out[i] = e.Value()
	}
	return out
}

func (m *UnorderedArrayMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.Entries() {
			if !yield(e.Key(), e.Value()) {
				return
			}
		}
	}
}
