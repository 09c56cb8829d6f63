package sorter

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// MaxCountingRange 計數表最多的格數
const MaxCountingRange = 1 << 24

var ErrRangeTooLarge = errors.New("value range too large for counting sort")

// Identifiable elements are sorted by a non-negative integer id.
type Identifiable interface {
	ID() int
}

// CountingSorter 依 id 的範圍建立計數表，為穩定排序
type CountingSorter[E Identifiable] struct{}

func (CountingSorter[E]) Sort(data []E) {
	if len(data) == 0 {
		return
	}
	lo, hi := data[0].ID(), data[0].ID()
	for _, e := range data {
		lo = min(lo, e.ID())
		hi = max(hi, e.ID())
	}
	count := make([]int, hi-lo+1)
	for _, e := range data {
		count[e.ID()-lo]++
	}
	for i := 1; i < len(count); i++ {
		count[i] += count[i-1]
	}
	sorted := make([]E, len(data))
	for i := len(data) - 1; i >= 0; i-- {
		c := data[i].ID() - lo
		count[c]--
		sorted[count[c]] = data[i]
	}
	copy(data, sorted)
}

// RadixSorter 以十進位由低位到高位做穩定的分配排序
type RadixSorter[E Identifiable] struct{}

func (RadixSorter[E]) Sort(data []E) {
	hi := 0
	for _, e := range data {
		hi = max(hi, e.ID())
	}
	sorted := make([]E, len(data))
	for place := 1; hi/place > 0; place *= 10 {
		var bucket [10]int
		for _, e := range data {
			bucket[(e.ID()/place)%10]++
		}
		for i := 1; i < 10; i++ {
			bucket[i] += bucket[i-1]
		}
		for i := len(data) - 1; i >= 0; i-- {
			d := (data[i].ID() / place) % 10
			bucket[d]--
			sorted[bucket[d]] = data[i]
		}
		copy(data, sorted)
	}
}

// CountingSortIntegers sorts plain integers, negatives included. The span
// max-min must stay below MaxCountingRange; otherwise data is left untouched
// and ErrRangeTooLarge is returned.
func CountingSortIntegers[T constraints.Integer](data []T) error {
	if len(data) == 0 {
		return nil
	}
	lo, hi := data[0], data[0]
	for _, v := range data {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	// 以 uint64 相減，有號型別的補數表示也能得到正確的差
	span := uint64(hi) - uint64(lo)
	if span >= MaxCountingRange {
		return errors.WithMessagef(ErrRangeTooLarge, "span %d", span)
	}
	count := make([]int, span+1)
	for _, v := range data {
		count[uint64(v)-uint64(lo)]++
	}
	i := 0
	for off, c := range count {
		for ; c > 0; c-- {
			data[i] = lo + T(off)
			i++
		}
	}
	return nil
}
