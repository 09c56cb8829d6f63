package maps

import "iter"

// Position 指向結構內部的一個節點，只暴露其儲存的元素
type Position[E any] interface {
	Element() E
}

type Map[K, V any] interface {
	Size() int
	IsEmpty() bool
	Contains(key K) bool
	GetValue(key K) (V, bool)
	// Put 回傳舊值與是否覆寫
	Put(key K, value V) (V, bool)
	Remove(key K) (V, bool)
	Entries() []*Entry[K, V]
	Keys() []K
	Values() []V
	All() iter.Seq2[K, V]
}

// SortedMap 依照 key 的比較函數維持順序
type SortedMap[K, V any] interface {
	Map[K, V]
	Compare(a, b K) int
}

// Analyable 提供 skip list 分析功能的介面
type Analyable[K, V any] interface {
	SortedMap[K, V]
	GetHead() Nodelike[K, V]
	// GetMaxStats 獲取節點數和最高層級
	GetMaxStats() (maxNodes int, maxLevel int)
}

type Nodelike[K, V any] interface {
	GetKey() K
	GetValue() V
	GetLevel() int32
	GetNextAt(level int32) Nodelike[K, V]
}

// TreeAnalyable 提供二元搜尋樹分析功能的介面
type TreeAnalyable[K, V any] interface {
	SortedMap[K, V]
	GetRoot() BinaryNodelike[K, V]
}

type BinaryNodelike[K, V any] interface {
	IsSentinel() bool
	GetKey() K
	GetValue() V
	GetProperty() int
	GetLeft() BinaryNodelike[K, V]
	GetRight() BinaryNodelike[K, V]
}
