package set

import (
	"cmp"
	"iter"

	"github.com/Hakuto4838/DataStructures.git/hashing"
	"github.com/Hakuto4838/DataStructures.git/maps"
	"github.com/Hakuto4838/DataStructures.git/searchtree"
)

type Set[E any] interface {
	Size() int
	IsEmpty() bool
	Contains(e E) bool
	// Add 回傳是否為新加入的元素
	Add(e E) bool
	Remove(e E) bool
	Values() []E
	All() iter.Seq[E]
}

// mapSet adapts any map with empty values into a set.
type mapSet[E any] struct {
	m maps.Map[E, struct{}]
}

func (s mapSet[E]) Size() int         { return s.m.Size() }
func (s mapSet[E]) IsEmpty() bool     { return s.m.IsEmpty() }
func (s mapSet[E]) Contains(e E) bool { return s.m.Contains(e) }
func (s mapSet[E]) Values() []E       { return s.m.Keys() }
func (s mapSet[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s.m.Keys() {
			if !yield(e) {
				return
			}
		}
	}
}

func (s mapSet[E]) Add(e E) bool {
	_, replaced := s.m.Put(e, struct{}{})
	return !replaced
}

func (s mapSet[E]) Remove(e E) bool {
	_, removed := s.m.Remove(e)
	return removed
}

// TreeSet keeps its elements sorted in an AVL tree map.
type TreeSet[E any] struct {
	mapSet[E]
	compare func(E, E) int
}

func NewTreeSet[E cmp.Ordered](elems ...E) *TreeSet[E] {
	return NewTreeSetFunc(cmp.Compare[E], elems...)
}

func NewTreeSetFunc[E any](compare func(E, E) int, elems ...E) *TreeSet[E] {
	s := &TreeSet[E]{
		mapSet:  mapSet[E]{m: searchtree.NewAVLTreeMapFunc[E, struct{}](compare)},
		compare: compare,
	}
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

func (s *TreeSet[E]) Union(other Set[E]) *TreeSet[E] {
	out := NewTreeSetFunc(s.compare, s.Values()...)
	for e := range other.All() {
		out.Add(e)
	}
	return out
}

func (s *TreeSet[E]) Intersection(other Set[E]) *TreeSet[E] {
	out := NewTreeSetFunc[E](s.compare)
	for e := range s.All() {
		if other.Contains(e) {
			out.Add(e)
		}
	}
	return out
}

func (s *TreeSet[E]) Difference(other Set[E]) *TreeSet[E] {
	out := NewTreeSetFunc[E](s.compare)
	for e := range s.All() {
		if !other.Contains(e) {
			out.Add(e)
		}
	}
	return out
}

// HashSet stores its elements in a separate chaining hash map.
type HashSet[E cmp.Ordered] struct {
	mapSet[E]
	cfg hashing.Config
}

func NewHashSet[E cmp.Ordered](cfg hashing.Config, elems ...E) *HashSet[E] {
	s := &HashSet[E]{
		mapSet: mapSet[E]{m: hashing.NewSeparateChainingHashMap[E, struct{}](cfg)},
		cfg:    cfg,
	}
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

func (s *HashSet[E]) Union(other Set[E]) *HashSet[E] {
	out := NewHashSet(s.cfg, s.Values()...)
	for e := range other.All() {
		out.Add(e)
	}
	return out
}

func (s *HashSet[E]) Intersection(other Set[E]) *HashSet[E] {
	out := NewHashSet[E](s.cfg)
	for e := range s.All() {
		if other.Contains(e) {
			out.Add(e)
		}
	}
	return out
}

func (s *HashSet[E]) Difference(other Set[E]) *HashSet[E] {
	out := NewHashSet[E](s.cfg)
	for e := range s.All() {
		if !other.Contains(e) {
			out.Add(e)
		}
	}
	return out
}
