package skiplist

import "github.com/Hakuto4838/DataStructures.git/maps"

// 分析工具以最底層節點代表整座 tower

func (sl *SkipListMap[K, V]) GetHead() maps.Nodelike[K, V] {
	return sl.bottom()
}

// GetMaxStats 回傳節點數與最高的非空層級
func (sl *SkipListMap[K, V]) GetMaxStats() (int, int) {
	return sl.size, max(sl.height-1, 0)
}

func (nd *node[K, V]) GetKey() K {
	if nd.isSentinel() {
		var zero K
		return zero
	}
	return nd.entry.Key()
}

func (nd *node[K, V]) GetValue() V {
	if nd.isSentinel() {
		var zero V
		return zero
	}
	return nd.entry.Value()
}

// GetLevel 回傳 tower 的最高層級，-inf 的高度取最高的非空層級
func (nd *node[K, V]) GetLevel() int32 {
	lvl := int32(0)
	for cur := nd; cur.above != nil; cur = cur.above {
		lvl++
	}
	if nd.isSentinel() && lvl > 0 {
		lvl--
	}
	return lvl
}

func (nd *node[K, V]) GetNextAt(level int32) maps.Nodelike[K, V] {
	cur := nd
	for i := int32(0); i < level; i++ {
		if cur.above == nil {
			return nil
		}
		cur = cur.above
	}
	next := cur.next
	if next == nil || next.isSentinel() {
		return nil
	}
	for next.below != nil {
		next = next.below
	}
	return next
}
