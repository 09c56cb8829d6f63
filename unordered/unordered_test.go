package unordered

import (
	"slices"
	"testing"

	"github.com/Hakuto4838/DataStructures.git/maps"
)

var _ maps.Map[string, int] = (*UnorderedArrayMap[string, int])(nil)

func TestTranspose(t *testing.T) {
	m := NewUnorderedArrayMap[string, int]()
	for i, k := range []string{"a", "b", "c", "d"} {
		m.Put(k, i)
	}
	if got := m.Keys(); !slices.Equal(got, []string{"d", "c", "b", "a"}) {
		t.Fatalf("Keys() = %v, want newest first", got)
	}
	if v, ok := m.GetValue("a"); !ok || v != 0 {
		t.Errorf("GetValue(a) = (%d, %v)", v, ok)
	}
	if got := m.Keys(); !slices.Equal(got, []string{"d", "c", "a", "b"}) {
		t.Errorf("after GetValue(a): Keys() = %v", got)
	}
	if old, ok := m.Put("a", 9); !ok || old != 0 {
		t.Errorf("Put(a, 9) = (%d, %v)", old, ok)
	}
	if got := m.Keys(); !slices.Equal(got, []string{"d", "a", "c", "b"}) {
		t.Errorf("after Put(a): Keys() = %v", got)
	}
	m.GetValue("d")
	if got := m.Keys(); got[0] != "d" {
		t.Errorf("front entry moved: %v", got)
	}
	if !m.Contains("b") || m.Contains("z") {
		t.Errorf("Contains mismatch")
	}
	if v, ok := m.Remove("c"); !ok || v != 2 || m.Size() != 3 {
		t.Errorf("Remove(c) = (%d, %v), size %d", v, ok, m.Size())
	}
	if _, ok := m.Remove("c"); ok {
		t.Errorf("Remove(c) twice succeeded")
	}
	sum := 0
	for _, v := range m.All() {
		sum += v
	}
	if sum != 9+1+3 || len(m.Values()) != 3 {
		t.Errorf("values sum = %d, want 13", sum)
	}
}
