package searchtable

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/Hakuto4838/DataStructures.git/maps"
)

var _ maps.SortedMap[int, int] = (*SearchTableMap[int, int])(nil)

func TestFindIndex(t *testing.T) {
	m := NewSearchTableMap[int, int]()
	for _, k := range []int{10, 30, 20} {
		m.Put(k, k)
	}
	tests := []struct {
		key  int
		want int
	}{
		{10, 0}, {20, 1}, {30, 2},
		{5, -1}, {15, -2}, {25, -3}, {35, -4},
	}
	for _, tt := range tests {
		if got := m.findIndex(tt.key); got != tt.want {
			t.Errorf("findIndex(%d) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestNavigation(t *testing.T) {
	m := NewSearchTableMap[int, string]()
	if m.FirstEntry() != nil || m.LastEntry() != nil {
		t.Errorf("empty map should have no first or last entry")
	}
	for _, k := range []int{10, 20, 30} {
		m.Put(k, "")
	}
	if m.FirstEntry().Key() != 10 || m.LastEntry().Key() != 30 {
		t.Errorf("first/last = %d/%d", m.FirstEntry().Key(), m.LastEntry().Key())
	}
	if e := m.CeilingEntry(15); e == nil || e.Key() != 20 {
		t.Errorf("CeilingEntry(15) = %v, want 20", e)
	}
	if e := m.CeilingEntry(31); e != nil {
		t.Errorf("CeilingEntry(31) = %v, want nil", e)
	}
	if e := m.FloorEntry(15); e == nil || e.Key() != 10 {
		t.Errorf("FloorEntry(15) = %v, want 10", e)
	}
	if e := m.FloorEntry(20); e == nil || e.Key() != 20 {
		t.Errorf("FloorEntry(20) = %v, want 20", e)
	}
	if e := m.FloorEntry(9); e != nil {
		t.Errorf("FloorEntry(9) = %v, want nil", e)
	}
}

func TestRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	m := NewSearchTableMap[int, int]()
	ref := map[int]int{}
	for i := range 2000 {
		k := r.Intn(200)
		if r.Intn(4) == 0 {
			v, ok := m.Remove(k)
			if w, found := ref[k]; ok != found || v != w {
				t.Fatalf("Remove(%d) = (%d, %v), want (%d, %v)", k, v, ok, w, found)
			}
			delete(ref, k)
		} else {
			old, replaced := m.Put(k, i)
			if w, found := ref[k]; replaced != found || old != w {
				t.Fatalf("Put(%d) = (%d, %v), want (%d, %v)", k, old, replaced, w, found)
			}
			ref[k] = i
		}
	}
	keys := m.Keys()
	if !slices.IsSorted(keys) || len(keys) != len(ref) || m.Size() != len(ref) {
		t.Fatalf("keys not sorted or size mismatch")
	}
	for k, v := range m.All() {
		if ref[k] != v {
			t.Errorf("All yielded (%d, %d), want %d", k, v, ref[k])
		}
	}
	if len(m.Values()) != len(ref) || len(m.Entries()) != len(ref) {
		t.Errorf("snapshot length mismatch")
	}
}
