package skiplist

import (
	"cmp"
	"iter"
	"math/rand"

	"github.com/Hakuto4838/DataStructures.git/maps"
)

const (
	maxLevel    = 32
	probability = 0.5
)

// node 同一座 tower 的所有節點共用同一個 entry，sentinel 的 entry 為 nil
type node[K, V any] struct {
	entry *maps.Entry[K, V]
	prev  *node[K, V]
	next  *node[K, V]
	above *node[K, V]
	below *node[K, V]
}

func (nd *node[K, V]) Element() *maps.Entry[K, V] {
	return nd.entry
}

func (nd *node[K, V]) isSentinel() bool {
	return nd.entry == nil
}

// SkipListMap keeps every level as a doubly linked list bounded by -inf and
// +inf sentinels. The top level always holds only its two sentinels.
type SkipListMap[K, V any] struct {
	start   *node[K, V] // 最上層的 -inf
	height  int
	size    int
	compare func(K, K) int
	rand    *rand.Rand
}

func NewSkipListMap[K cmp.Ordered, V any](seed int64) *SkipListMap[K, V] {
	return NewSkipListMapFunc[K, V](seed, cmp.Compare[K])
}

func NewSkipListMapFunc[K, V any](seed int64, compare func(K, K) int) *SkipListMap[K, V] {
	start := &node[K, V]{}
	end := &node[K, V]{prev: start}
	start.next = end
	return &SkipListMap[K, V]{
		start:   start,
		compare: compare,
		rand:    rand.New(rand.NewSource(seed)),
	}
}

func (sl *SkipListMap[K, V]) Compare(a, b K) int {
	return sl.compare(a, b)
}

func (sl *SkipListMap[K, V]) Size() int {
	return sl.size
}

func (sl *SkipListMap[K, V]) IsEmpty() bool {
	return sl.size == 0
}

// Height is the number of levels above the bottom one.
func (sl *SkipListMap[K, V]) Height() int {
	return sl.height
}

// lookUp 回傳最底層中 key 小於等於目標的最後一個節點
func (sl *SkipListMap[K, V]) lookUp(key K) *node[K, V] {
	cur := sl.start
	for cur.below != nil {
		cur = cur.below
		for !cur.next.isSentinel() && sl.compare(key, cur.next.entry.Key()) >= 0 {
			cur = cur.next
		}
	}
	return cur
}

func (sl *SkipListMap[K, V]) find(key K) *node[K, V] {
	p := sl.lookUp(key)
	if p.isSentinel() || sl.compare(p.entry.Key(), key) != 0 {
		return nil
	}
	return p
}

func (sl *SkipListMap[K, V]) GetValue(key K) (V, bool) {
	if p := sl.find(key); p != nil {
		return p.entry.Value(), true
	}
	var zero V
	return zero, false
}

func (sl *SkipListMap[K, V]) Contains(key K) bool {
	return sl.find(key) != nil
}

// insertAfterAbove 在 p 之後、q 之上插入新節點
func insertAfterAbove[K, V any](p, q *node[K, V], e *maps.Entry[K, V]) *node[K, V] {
	nd := &node[K, V]{entry: e, prev: p, next: p.next, below: q}
	p.next.prev = nd
	p.next = nd
	if q != nil {
		q.above = nd
	}
	return nd
}

// addLevel 在最上層之上加一層空的 sentinel
func (sl *SkipListMap[K, V]) addLevel() {
	oldStart, oldEnd := sl.start, sl.start.next
	start := &node[K, V]{below: oldStart}
	end := &node[K, V]{below: oldEnd, prev: start}
	start.next = end
	oldStart.above = start
	oldEnd.above = end
	sl.start = start
	sl.height++
}

func (sl *SkipListMap[K, V]) Put(key K, value V) (V, bool) {
	p := sl.lookUp(key)
	if !p.isSentinel() && sl.compare(p.entry.Key(), key) == 0 {
		return p.entry.SetValue(value), true
	}

	e := maps.NewEntry(key, value)
	var q *node[K, V]
	for level := 0; ; level++ {
		if level >= sl.height {
			sl.addLevel()
		}
		q = insertAfterAbove(p, q, e)
		if level+1 >= maxLevel || sl.rand.Float64() >= probability {
			break
		}
		for p.above == nil {
			p = p.prev
		}
		p = p.above
	}
	sl.size++
	var zero V
	return zero, false
}

func (sl *SkipListMap[K, V]) Remove(key K) (V, bool) {
	p := sl.find(key)
	if p == nil {
		var zero V
		return zero, false
	}
	old := p.entry.Value()
	for p != nil {
		p.prev.next = p.next
		p.next.prev = p.prev
		up := p.above
		p.prev, p.next, p.above, p.below = nil, nil, nil, nil
		p = up
	}
	sl.size--
	sl.collapse()
	return old, true
}

// collapse 移除最上層之下的空層，只保留一層空的 top level
func (sl *SkipListMap[K, V]) collapse() {
	for sl.height > 0 {
		l := sl.start.below
		if !l.next.isSentinel() {
			return
		}
		r := l.next
		sl.start.below = l.below
		sl.start.next.below = r.below
		if l.below != nil {
			l.below.above = sl.start
			r.below.above = sl.start.next
		}
		sl.height--
	}
}

// bottom 回傳最底層的 -inf
func (sl *SkipListMap[K, V]) bottom() *node[K, V] {
	cur := sl.start
	for cur.below != nil {
		cur = cur.below
	}
	return cur
}

func (sl *SkipListMap[K, V]) Entries() []*maps.Entry[K, V] {
	out := make([]*maps.Entry[K, V], 0, sl.size)
	for cur := sl.bottom().next; !cur.isSentinel(); cur = cur.next {
		out = append(out, cur.entry)
	}
	return out
}

func (sl *SkipListMap[K, V]) Keys() []K {
	out := make([]K, 0, sl.size)
	for _, e := range sl.Entries() {
		out = append(out, e.Key())
	}
	return out
}

func (sl *SkipListMap[K, V]) Values() []V {
	out := make([]V, 0, sl.size)
	for _, e := range sl.Entries() {
		out = append(out, e.Value())
	}
	return out
}

func (sl *SkipListMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range sl.Entries() {
			if !yield(e.Key(), e.Value()) {
				return
			}
		}
	}
}
