package hashing

import (
	"cmp"
	"iter"

	"github.com/Hakuto4838/DataStructures.git/maps"
	"github.com/Hakuto4838/DataStructures.git/searchtree"
)

// SeparateChainingHashMap keeps a red-black tree map per bucket, created on
// first use.
type SeparateChainingHashMap[K, V any] struct {
	table   []*searchtree.TreeMap[K, V]
	size    int
	hash    Hasher[K]
	compare func(K, K) int
	mad     compressor
}

func NewSeparateChainingHashMap[K cmp.Ordered, V any](cfg Config) *SeparateChainingHashMap[K, V] {
	return NewSeparateChainingHashMapFunc[K, V](cfg, DefaultHash[K], cmp.Compare[K])
}

func NewSeparateChainingHashMapFunc[K, V any](cfg Config, hash Hasher[K], compare func(K, K) int) *SeparateChainingHashMap[K, V] {
	return &SeparateChainingHashMap[K, V]{
		table:   make([]*searchtree.TreeMap[K, V], capacityOf(cfg)),
		hash:    hash,
		compare: compare,
		mad:     newCompressor(cfg),
	}
}

func (m *SeparateChainingHashMap[K, V]) Size() int {
	return m.size
}

func (m *SeparateChainingHashMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

func (m *SeparateChainingHashMap[K, V]) Capacity() int {
	return len(m.table)
}

func (m *SeparateChainingHashMap[K, V]) hashValue(key K) int {
	return m.mad.compress(m.hash(key), len(m.table))
}

func (m *SeparateChainingHashMap[K, V]) GetValue(key K) (V, bool) {
	bucket := m.table[m.hashValue(key)]
	if bucket == nil {
		var zero V
		return zero, false
	}
	return bucket.GetValue(key)
}

func (m *SeparateChainingHashMap[K, V]) Contains(key K) bool {
	_, ok := m.GetValue(key)
	return ok
}

func (m *SeparateChainingHashMap[K, V]) Put(key K, value V) (V, bool) {
	old, replaced := m.put(key, value)
	if overloaded(m.size, len(m.table)) {
		m.resize(2*len(m.table) + 1)
	}
	return old, replaced
}

func (m *SeparateChainingHashMap[K, V]) put(key K, value V) (V, bool) {
	h := m.hashValue(key)
	bucket := m.table[h]
	if bucket == nil {
		bucket = searchtree.NewRBTreeMapFunc[K, V](m.compare)
		m.table[h] = bucket
	}
	old, replaced := bucket.Put(key, value)
	if !replaced {
		m.size++
	}
	return old, replaced
}

func (m *SeparateChainingHashMap[K, V]) Remove(key K) (V, bool) {
	bucket := m.table[m.hashValue(key)]
	if bucket == nil {
		var zero V
		return zero, false
	}
	old, removed := bucket.Remove(key)
	if removed {
		m.size--
	}
	return old, removed
}

func (m *SeparateChainingHashMap[K, V]) resize(capacity int) {
	entries := m.Entries()
	m.table = make([]*searchtree.TreeMap[K, V], capacity)
	m.size = 0
	for _, e := range entries {
		m.put(e.Key(), e.Value())
	}
}

// Entries 依 bucket 順序輸出，同一個 bucket 內依 key 排序
func (m *SeparateChainingHashMap[K, V]) Entries() []*maps.Entry[K, V] {
	out := make([]*maps.Entry[K, V], 0, m.size)
	for _, bucket := range m.table {
		if bucket != nil {
			out = append(out, bucket.Entries()...)
		}
	}
	return out
}

func (m *SeparateChainingHashMap[K, V]) Keys() []K {
	out := make([]K, 0, m.size)
	for _, e := range m.Entries() {
		out = append(out, e.Key())
	}
	return out
}

func (m *SeparateChainingHashMap[K, V]) Values() []V {
	out := make([]V, 0, m.size)
	for _, e := range m.Entries() {
		out = append(out, e.Value())
	}
	return out
}

func (m *SeparateChainingHashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.Entries() {
			if !yield(e.Key(), e.Value()) {
				return
			}
		}
	}
}
