package hashing

import (
	"iter"

	"github.com/Hakuto4838/DataStructures.git/maps"
)

type slot[K, V any] struct {
	entry   *maps.Entry[K, V]
	deleted bool
}

// LinearProbingHashMap resolves collisions by scanning forward. Removed
// slots keep a tombstone so later probes continue past them. Tombstones
// count toward the load factor: when live entries plus tombstones pass it,
// the table is rebuilt at the same capacity.
type LinearProbingHashMap[K comparable, V any] struct {
	table      []*slot[K, V]
	size       int
	tombstones int
	hash       Hasher[K]
	mad        compressor
}

func NewLinearProbingHashMap[K comparable, V any](cfg Config) *LinearProbingHashMap[K, V] {
	return NewLinearProbingHashMapFunc[K, V](cfg, DefaultHash[K])
}

func NewLinearProbingHashMapFunc[K comparable, V any](cfg Config, hash Hasher[K]) *LinearProbingHashMap[K, V] {
	return &LinearProbingHashMap[K, V]{
		table: make([]*slot[K, V], capacityOf(cfg)),
		hash:  hash,
		mad:   newCompressor(cfg),
	}
}

func (m *LinearProbingHashMap[K, V]) Size() int {
	return m.size
}

func (m *LinearProbingHashMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

func (m *LinearProbingHashMap[K, V]) Capacity() int {
	return len(m.table)
}

func (m *LinearProbingHashMap[K, V]) hashValue(key K) int {
	return m.mad.compress(m.hash(key), len(m.table))
}

// findBucket 找到 key 時回傳其索引，否則回傳 -(第一個可用位置+1)
func (m *LinearProbingHashMap[K, V]) findBucket(h int, key K) int {
	avail := -1
	j := h
	for {
		s := m.table[j]
		if s == nil {
			if avail == -1 {
				avail = j
			}
			break
		}
		if s.deleted {
			if avail == -1 {
				avail = j
			}
		} else if s.entry.Key() == key {
			return j
		}
		j = (j + 1) % len(m.table)
		if j == h {
			break
		}
	}
	return -(avail + 1)
}

func (m *LinearProbingHashMap[K, V]) GetValue(key K) (V, bool) {
	j := m.findBucket(m.hashValue(key), key)
	if j < 0 {
		var zero V
		return zero, false
	}
	return m.table[j].entry.Value(), true
}

func (m *LinearProbingHashMap[K, V]) Contains(key K) bool {
	return m.findBucket(m.hashValue(key), key) >= 0
}

func (m *LinearProbingHashMap[K, V]) Put(key K, value V) (V, bool) {
	old, replaced := m.put(key, value)
	if overloaded(m.size, len(m.table)) {
		m.resize(2*len(m.table) + 1)
	} else if overloaded(m.size+m.tombstones, len(m.table)) {
		m.resize(len(m.table))
	}
	return old, replaced
}

func (m *LinearProbingHashMap[K, V]) put(key K, value V) (V, bool) {
	j := m.findBucket(m.hashValue(key), key)
	if j >= 0 {
		return m.table[j].entry.SetValue(value), true
	}
	avail := -(j + 1)
	if s := m.table[avail]; s != nil && s.deleted {
		m.tombstones--
	}
	m.table[avail] = &slot[K, V]{entry: maps.NewEntry(key, value)}
	m.size++
	var zero V
	return zero, false
}

func (m *LinearProbingHashMap[K, V]) Remove(key K) (V, bool) {
	j := m.findBucket(m.hashValue(key), key)
	if j < 0 {
		var zero V
		return zero, false
	}
	s := m.table[j]
	s.deleted = true
	m.size--
	m.tombstones++
	return s.entry.Value(), true
}

// resize 依目前 table 的順序重新插入所有 entry
func (m *LinearProbingHashMap[K, V]) resize(capacity int) {
	entries := m.Entries()
	m.table = make([]*slot[K, V], capacity)
	m.size = 0
	m.tombstones = 0
	for _, e := range entries {
		m.put(e.Key(), e.Value())
	}
}

func (m *LinearProbingHashMap[K, V]) Entries() []*maps.Entry[K, V] {
	out := make([]*maps.Entry[K, V], 0, m.size)
	for _, s := range m.table {
		if s != nil && !s.deleted {
			out = append(out, s.entry)
		}
	}
	return out
}

func (m *LinearProbingHashMap[K, V]) Keys() []K {
	out := make([]K, 0, m.size)
	for _, e := range m.Entries() {
		out = append(out, e.Key())
	}
	return out
}

func (m *LinearProbingHashMap[K, V]) Values() []V {
	out := make([]V, 0, m.size)
	for _, e := range m.Entries() {
		out = append(out, e.Value())
	}
	return out
}

func (m *LinearProbingHashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.Entries() {
			if !yield(e.Key(), e.Value()) {
				return
			}
		}
	}
}
