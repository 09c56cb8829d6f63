package sorter

import (
	"cmp"
	"math/rand"
)

// PivotSelector picks a pivot index in [low, high].
type PivotSelector interface {
	SelectPivot(low, high int) int
}

type FirstElementSelector struct{}

func (FirstElementSelector) SelectPivot(low, _ int) int { return low }

type LastElementSelector struct{}

func (LastElementSelector) SelectPivot(_, high int) int { return high }

type MiddleElementSelector struct{}

func (MiddleElementSelector) SelectPivot(low, high int) int { return (low + high) / 2 }

type RandomElementSelector struct {
	rand *rand.Rand
}

func NewRandomElementSelector(seed int64) *RandomElementSelector {
	return &RandomElementSelector{rand: rand.New(rand.NewSource(seed))}
}

func (s *RandomElementSelector) SelectPivot(low, high int) int {
	return low + s.rand.Intn(high-low+1)
}

type QuickSorter[E any] struct {
	comparator[E]
	selector PivotSelector
}

// NewQuickSorter 未指定 selector 時使用隨機 pivot
func NewQuickSorter[E cmp.Ordered](selector PivotSelector) *QuickSorter[E] {
	return NewQuickSorterFunc(cmp.Compare[E], selector)
}

func NewQuickSorterFunc[E any](compare func(E, E) int, selector PivotSelector) *QuickSorter[E] {
	if selector == nil {
		selector = NewRandomElementSelector(1)
	}
	return &QuickSorter[E]{comparator: comparator[E]{compare}, selector: selector}
}

func (s *QuickSorter[E]) Sort(data []E) {
	s.quickSort(data, 0, len(data)-1)
}

func (s *QuickSorter[E]) quickSort(data []E, low, high int) {
	for low < high {
		p := s.partition(data, low, high)
		// 先遞迴較短的一邊，限制 stack 深度
		if p-low < high-p {
			s.quickSort(data, low, p-1)
			low = p + 1
		} else {
			s.quickSort(data, p+1, high)
			high = p - 1
		}
	}
}

func (s *QuickSorter[E]) partition(data []E, low, high int) int {
	pi := s.selector.SelectPivot(low, high)
	data[pi], data[high] = data[high], data[pi]
	pivot := data[high]
	idx := low
	for j := low; j < high; j++ {
		if s.compare(data[j], pivot) <= 0 {
			data[idx], data[j] = data[j], data[idx]
			idx++
		}
	}
	data[idx], data[high] = data[high], data[idx]
	return idx
}
