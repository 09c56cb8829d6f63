package set

import (
	"slices"
	"testing"

	"github.com/Hakuto4838/DataStructures.git/hashing"
)

var (
	_ Set[int] = (*TreeSet[int])(nil)
	_ Set[int] = (*HashSet[int])(nil)
)

func sorted(s Set[int]) []int {
	v := s.Values()
	slices.Sort(v)
	return v
}

func TestTreeSet(t *testing.T) {
	a := NewTreeSet(5, 1, 3, 1)
	if got := a.Values(); !slices.Equal(got, []int{1, 3, 5}) {
		t.Errorf("Values() = %v, want [1 3 5]", got)
	}
	if a.Add(3) || !a.Add(4) {
		t.Errorf("Add should report only new elements")
	}
	if !a.Remove(4) || a.Remove(4) {
		t.Errorf("Remove should report only present elements")
	}
	b := NewHashSet(hashing.DefaultConfig(), 3, 5, 7)
	if got := a.Union(b).Values(); !slices.Equal(got, []int{1, 3, 5, 7}) {
		t.Errorf("Union = %v", got)
	}
	if got := a.Intersection(b).Values(); !slices.Equal(got, []int{3, 5}) {
		t.Errorf("Intersection = %v", got)
	}
	if got := a.Difference(b).Values(); !slices.Equal(got, []int{1}) {
		t.Errorf("Difference = %v", got)
	}
}

func TestHashSet(t *testing.T) {
	a := NewHashSet(hashing.DefaultConfig(), 1, 2, 3)
	b := NewTreeSet(2, 3, 4)
	if a.Size() != 3 || a.IsEmpty() || !a.Contains(2) || a.Contains(4) {
		t.Errorf("HashSet basics failed")
	}
	if got := sorted(a.Union(b)); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("Union = %v", got)
	}
	if got := sorted(a.Intersection(b)); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("Intersection = %v", got)
	}
	if got := sorted(a.Difference(b)); !slices.Equal(got, []int{1}) {
		t.Errorf("Difference = %v", got)
	}
	count := 0
	for range a.All() {
		count++
	}
	if count != 3 {
		t.Errorf("All() yielded %d elements, want 3", count)
	}
}
