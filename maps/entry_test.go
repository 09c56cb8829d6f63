package maps

import "testing"

func TestEntrySetValue(t *testing.T) {
	e := NewEntry("a", 1)
	if old := e.SetValue(2); old != 1 {
		t.Errorf("SetValue(2) = %d, want 1", old)
	}
	if e.Key() != "a" || e.Value() != 2 {
		t.Errorf("entry = %v, want (a, 2)", e)
	}
	if s := e.String(); s != "(a, 2)" {
		t.Errorf("String() = %q, want %q", s, "(a, 2)")
	}
}
