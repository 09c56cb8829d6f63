package main

import "testing"

func TestFormatting(t *testing.T) {
	sci := map[int]string{0: "0", 7: "7e0", 100000: "1e5", 150000: "1.5e5"}
	for n, want := range sci {
		if got := formatScientific(n); got != want {
			t.Errorf("formatScientific(%d) = %q, want %q", n, got, want)
		}
	}
	dec := map[float64]string{2: "2", 0.5: "0_5", 1.07: "1_07", 0.1: "0_1"}
	for f, want := range dec {
		if got := formatDecimal(f); got != want {
			t.Errorf("formatDecimal(%v) = %q, want %q", f, got, want)
		}
	}
	if n, err := parseScientificNotation("1e3"); err != nil || n != 1000 {
		t.Errorf("parseScientificNotation(1e3) = %d, %v", n, err)
	}
	if _, err := parseScientificNotation("x"); err == nil {
		t.Error("expected error")
	}
}
