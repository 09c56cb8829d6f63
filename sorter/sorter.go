package sorter

import "cmp"

type Sorter[E any] interface {
	Sort(data []E)
}

// comparator 未指定比較函數時使用自然順序
type comparator[E any] struct {
	compare func(E, E) int
}

func (c comparator[E]) less(a, b E) bool {
	return c.compare(a, b) < 0
}

type BubbleSorter[E any] struct{ comparator[E] }

func NewBubbleSorter[E cmp.Ordered]() *BubbleSorter[E] {
	return NewBubbleSorterFunc(cmp.Compare[E])
}

func NewBubbleSorterFunc[E any](compare func(E, E) int) *BubbleSorter[E] {
	return &BubbleSorter[E]{comparator[E]{compare}}
}

// Sort 若某一輪沒有交換則提前結束
func (s *BubbleSorter[E]) Sort(data []E) {
	for n := len(data); n > 1; n-- {
		swapped := false
		for i := 1; i < n; i++ {
			if s.less(data[i], data[i-1]) {
				data[i], data[i-1] = data[i-1], data[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

type InsertionSorter[E any] struct{ comparator[E] }

func NewInsertionSorter[E cmp.Ordered]() *InsertionSorter[E] {
	return NewInsertionSorterFunc(cmp.Compare[E])
}

func NewInsertionSorterFunc[E any](compare func(E, E) int) *InsertionSorter[E] {
	return &InsertionSorter[E]{comparator[E]{compare}}
}

func (s *InsertionSorter[E]) Sort(data []E) {
	for i := 1; i < len(data); i++ {
		cur := data[i]
		j := i - 1
		for j >= 0 && s.less(cur, data[j]) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = cur
	}
}

type SelectionSorter[E any] struct{ comparator[E] }

func NewSelectionSorter[E cmp.Ordered]() *SelectionSorter[E] {
	return NewSelectionSorterFunc(cmp.Compare[E])
}

func NewSelectionSorterFunc[E any](compare func(E, E) int) *SelectionSorter[E] {
	return &SelectionSorter[E]{comparator[E]{compare}}
}

func (s *SelectionSorter[E]) Sort(data []E) {
	for i := 0; i < len(data)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(data); j++ {
			if s.less(data[j], data[minIdx]) {
				minIdx = j
			}
		}
		data[i], data[minIdx] = data[minIdx], data[i]
	}
}

// MergeSorter is stable.
type MergeSorter[E any] struct{ comparator[E] }

func NewMergeSorter[E cmp.Ordered]() *MergeSorter[E] {
	return NewMergeSorterFunc(cmp.Compare[E])
}

func NewMergeSorterFunc[E any](compare func(E, E) int) *MergeSorter[E] {
	return &MergeSorter[E]{comparator[E]{compare}}
}

func (s *MergeSorter[E]) Sort(data []E) {
	if len(data) < 2 {
		return
	}
	buf := make([]E, len(data))
	s.mergeSort(data, buf)
}

func (s *MergeSorter[E]) mergeSort(data, buf []E) {
	if len(data) < 2 {
		return
	}
	mid := len(data) / 2
	s.mergeSort(data[:mid], buf[:mid])
	s.mergeSort(data[mid:], buf[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < len(data) {
		// 相等時取左邊以維持穩定
		if s.less(data[j], data[i]) {
			buf[k] = data[j]
			j++
		} else {
			buf[k] = data[i]
			i++
		}
		k++
	}
	k += copy(buf[k:], data[i:mid])
	copy(buf[k:], data[j:])
	copy(data, buf[:len(data)])
}
