package sorter

import (
	"math"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func randomInts(seed int64, n int) []int {
	r := rand.New(rand.NewSource(seed))
	data := make([]int, n)
	for i := range data {
		data[i] = r.Intn(n) - n/4
	}
	return data
}

func comparisonSorters() map[string]Sorter[int] {
	return map[string]Sorter[int]{
		"bubble":       NewBubbleSorter[int](),
		"insertion":    NewInsertionSorter[int](),
		"selection":    NewSelectionSorter[int](),
		"merge":        NewMergeSorter[int](),
		"quick-first":  NewQuickSorter[int](FirstElementSelector{}),
		"quick-last":   NewQuickSorter[int](LastElementSelector{}),
		"quick-middle": NewQuickSorter[int](MiddleElementSelector{}),
		"quick-random": NewQuickSorter[int](NewRandomElementSelector(7)),
		"quick-nil":    NewQuickSorter[int](nil),
	}
}

func TestComparisonSorters(t *testing.T) {
	inputs := [][]int{
		nil,
		{},
		{1},
		{2, 1},
		{5, 5, 5, 5},
		{1, 2, 3, 4, 5, 6},
		{6, 5, 4, 3, 2, 1},
		randomInts(1, 200),
		randomInts(2, 1000),
	}
	for name, s := range comparisonSorters() {
		for i, in := range inputs {
			data := slices.Clone(in)
			want := slices.Clone(in)
			slices.Sort(want)
			s.Sort(data)
			if !slices.Equal(data, want) {
				t.Errorf("%s input %d: got %v", name, i, data)
			}
		}
	}
}

func TestCustomComparator(t *testing.T) {
	desc := func(a, b string) int { return strings.Compare(b, a) }
	sorters := []Sorter[string]{
		NewBubbleSorterFunc(desc),
		NewInsertionSorterFunc(desc),
		NewSelectionSorterFunc(desc),
		NewMergeSorterFunc(desc),
		NewQuickSorterFunc(desc, MiddleElementSelector{}),
	}
	for _, s := range sorters {
		data := []string{"b", "d", "a", "c"}
		s.Sort(data)
		if !slices.Equal(data, []string{"d", "c", "b", "a"}) {
			t.Errorf("%T: got %v", s, data)
		}
	}
}

type item struct {
	id  int
	tag string
}

func (i item) ID() int { return i.id }

func TestMergeStable(t *testing.T) {
	data := []item{{3, "a"}, {1, "b"}, {3, "c"}, {1, "d"}, {2, "e"}}
	NewMergeSorterFunc(func(a, b item) int { return a.id - b.id }).Sort(data)
	got := ""
	for _, e := range data {
		got += e.tag
	}
	if got != "bdeac" {
		t.Errorf("got %s, want bdeac", got)
	}
}

func TestDistributionSorters(t *testing.T) {
	sorters := []Sorter[item]{CountingSorter[item]{}, RadixSorter[item]{}}
	for _, s := range sorters {
		data := []item{{170, "a"}, {45, "b"}, {75, "c"}, {90, "d"}, {802, "e"}, {24, "f"}, {2, "g"}, {66, "h"}, {45, "i"}}
		s.Sort(data)
		got := ""
		for _, e := range data {
			got += e.tag
		}
		// 相同 id 需維持原順序
		if got != "gfbihcdae" {
			t.Errorf("%T: got %s", s, got)
		}
	}
}

func TestDistributionEdgeCases(t *testing.T) {
	for _, s := range []Sorter[item]{CountingSorter[item]{}, RadixSorter[item]{}} {
		s.Sort(nil)
		zeros := []item{{0, "a"}, {0, "b"}}
		s.Sort(zeros)
		if zeros[0].tag != "a" || zeros[1].tag != "b" {
			t.Errorf("%T: got %v", s, zeros)
		}
	}
}

func TestCountingSortIntegers(t *testing.T) {
	data := []int8{100, -100, 0, 5, -3, 5}
	if err := CountingSortIntegers(data); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(data, []int8{-100, -3, 0, 5, 5, 100}) {
		t.Errorf("got %v", data)
	}

	u := []uint16{9, 3, 7, 3}
	if err := CountingSortIntegers(u); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(u, []uint16{3, 3, 7, 9}) {
		t.Errorf("got %v", u)
	}

	full := []int8{math.MaxInt8, math.MinInt8, -1, 0}
	if err := CountingSortIntegers(full); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(full, []int8{math.MinInt8, -1, 0, math.MaxInt8}) {
		t.Errorf("got %v", full)
	}

	high := []uint64{math.MaxUint64, math.MaxUint64 - 2, math.MaxUint64 - 1}
	if err := CountingSortIntegers(high); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(high, []uint64{math.MaxUint64 - 2, math.MaxUint64 - 1, math.MaxUint64}) {
		t.Errorf("got %v", high)
	}
}

func TestCountingSortIntegersRangeTooLarge(t *testing.T) {
	tests := [][]int64{
		{math.MaxInt64, math.MinInt64},
		{0, MaxCountingRange},
		{-1, math.MaxInt64},
	}
	for _, data := range tests {
		before := slices.Clone(data)
		if err := CountingSortIntegers(data); !errors.Is(err, ErrRangeTooLarge) {
			t.Errorf("%v: err = %v, want ErrRangeTooLarge", before, err)
		}
		if !slices.Equal(data, before) {
			t.Errorf("data changed to %v after a rejected sort", data)
		}
	}
	if err := CountingSortIntegers([]int64{0, MaxCountingRange - 1}); err != nil {
		t.Errorf("largest allowed span rejected: %v", err)
	}
}

func TestRandomSelectorInRange(t *testing.T) {
	s := NewRandomElementSelector(3)
	for i := 0; i < 100; i++ {
		if p := s.SelectPivot(4, 9); p < 4 || p > 9 {
			t.Fatalf("pivot %d out of range", p)
		}
	}
}
