package analyTool_test

import (
	"bytes"
	"cmp"
	"encoding/csv"
	"fmt"
	"testing"

	"github.com/Hakuto4838/DataStructures.git/analyTool"
	"github.com/Hakuto4838/DataStructures.git/skiplist"
)

func buildList(seed int64, n int) *skiplist.SkipListMap[int, int] {
	sl := skiplist.NewSkipListMap[int, int](seed)
	for i := 1; i <= n; i++ {
		sl.Put(i*10, i)
	}
	return sl
}

// brokenList 回報錯誤的統計或比較結果，模擬結構損壞的 skip list
type brokenList struct {
	*skiplist.SkipListMap[int, int]
	size, level int
	compare     func(a, b int) int
}

func (b brokenList) GetMaxStats() (int, int) { return b.size, b.level }
func (b brokenList) Compare(a, c int) int    { return b.compare(a, c) }

func TestFindStepMatchesAnalyzeStep(t *testing.T) {
	sl := buildList(7, 200)
	keys := map[int]float64{}
	for i := 1; i <= 200; i++ {
		keys[i*10] = 1
	}
	avg, steps := analyTool.AnalyzeStep(sl, keys)
	if len(steps) != 200 {
		t.Fatalf("AnalyzeStep reached %d keys, want 200", len(steps))
	}
	total := 0
	_, maxLevel := sl.GetMaxStats()
	for k, want := range steps {
		got, perLevel := analyTool.FindStep(sl, k)
		if got != want {
			t.Errorf("FindStep(%d) = %d, AnalyzeStep = %d", k, got, want)
		}
		if len(perLevel) != maxLevel+1 {
			t.Errorf("FindStep(%d) reports %d levels, want %d", k, len(perLevel), maxLevel+1)
		}
		total += got
	}
	if float64(total)/200 != avg {
		t.Errorf("average %f, want %f", avg, float64(total)/200)
	}

	// 第一個 key 在最底層只需一步，再加上每一層的下降
	if got, _ := analyTool.FindStep(sl, 10); got < 1 || got > 2*(maxLevel+1) {
		t.Errorf("FindStep(10) = %d", got)
	}
}

func TestCheckStructRejects(t *testing.T) {
	sl := buildList(3, 64)
	size, level := sl.GetMaxStats()
	if level < 1 {
		t.Fatalf("seed 3 built a flat list")
	}
	if !analyTool.CheckStruct(sl) {
		t.Fatal("valid skip list rejected")
	}

	tests := []struct {
		name string
		sl   brokenList
	}{
		{"size too large", brokenList{sl, size + 1, level, cmp.Compare[int]}},
		{"size too small", brokenList{sl, size - 1, level, cmp.Compare[int]}},
		{"towers above top level", brokenList{sl, size, 0, cmp.Compare[int]}},
		{"keys out of order", brokenList{sl, size, level, func(a, b int) int { return cmp.Compare(b, a) }}},
	}
	for _, tt := range tests {
		if analyTool.CheckStruct(tt.sl) {
			t.Errorf("%s: CheckStruct accepted a broken skip list", tt.name)
		}
	}
}

func TestSkipListToCSV(t *testing.T) {
	sl := buildList(11, 20)
	var buf bytes.Buffer
	if err := analyTool.SkipListToCSV(sl, csv.NewWriter(&buf)); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	_, maxLevel := sl.GetMaxStats()
	if len(rows) != maxLevel+1 {
		t.Fatalf("%d rows, want %d", len(rows), maxLevel+1)
	}
	counts := analyTool.CountLevel(sl)
	for i, row := range rows {
		lvl := maxLevel - i
		if row[0] != fmt.Sprintf("level %d", lvl) || len(row) != 21 {
			t.Fatalf("row %d = %v", i, row)
		}
		filled := 0
		for _, cell := range row[1:] {
			if cell != "" {
				filled++
			}
		}
		if filled != counts[lvl] {
			t.Errorf("level %d has %d keys, CountLevel says %d", lvl, filled, counts[lvl])
		}
	}
	bottom := rows[len(rows)-1]
	for i := 1; i <= 20; i++ {
		if bottom[i] != fmt.Sprint(i*10) {
			t.Errorf("level 0 column %d = %q, want %d", i, bottom[i], i*10)
		}
	}
}

func TestPrinters(t *testing.T) {
	sl := buildList(5, 12)
	analyTool.PrintSkipList(sl, 4, 12)
	analyTool.PrintLink(sl, 4, 12)
	analyTool.PrintLink(skiplist.NewSkipListMap[int, int](1), 4, 12)
	_, steps := analyTool.AnalyzeStep(sl, map[int]float64{10: 0.5, 120: 0.5})
	if len(steps) != 2 {
		t.Fatalf("steps = %v", steps)
	}
	steps.Print(cmp.Compare[int])
}
