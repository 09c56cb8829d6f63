package main

import (
	"math"
	"strings"

	"github.com/Hakuto4838/DataStructures.git/analyTool"
	"github.com/Hakuto4838/DataStructures.git/hashing"
	"github.com/Hakuto4838/DataStructures.git/maps"
	"github.com/Hakuto4838/DataStructures.git/searchtable"
	"github.com/Hakuto4838/DataStructures.git/searchtree"
	"github.com/Hakuto4838/DataStructures.git/skiplist"
	"github.com/Hakuto4838/DataStructures.git/unordered"
)

type benchMap = maps.Map[int64, float64]

var allImpls = []string{
	"treemap", "avl", "rb", "splay", "skiplist",
	"linear", "chaining", "searchtable", "unordered",
}

func newImpl(impl string, seed int64) (benchMap, bool) {
	cfg := hashing.DefaultConfig()
	cfg.Seed = seed
	switch impl {
	case "treemap":
		return searchtree.NewTreeMap[int64, float64](), true
	case "avl":
		return searchtree.NewAVLTreeMap[int64, float64](), true
	case "rb":
		return searchtree.NewRBTreeMap[int64, float64](), true
	case "splay":
		return searchtree.NewSplayTreeMap[int64, float64](), true
	case "skiplist":
		return skiplist.NewSkipListMap[int64, float64](seed), true
	case "linear":
		return hashing.NewLinearProbingHashMap[int64, float64](cfg), true
	case "chaining":
		return hashing.NewSeparateChainingHashMap[int64, float64](cfg), true
	case "searchtable":
		return searchtable.NewSearchTableMap[int64, float64](), true
	case "unordered":
		return unordered.NewUnorderedArrayMap[int64, float64](), true
	default:
		return nil, false
	}
}

// avgSteps 回傳期望搜尋步數，無法分析的結構回傳 NaN
func avgSteps(m benchMap, dist map[int64]float64) float64 {
	switch a := m.(type) {
	case maps.Analyable[int64, float64]:
		s, _ := analyTool.AnalyzeStep(a, dist)
		return s
	case maps.TreeAnalyable[int64, float64]:
		s, _ := analyTool.AnalyzeDepth(a, dist)
		return s
	default:
		return math.NaN()
	}
}

func parseImpls(s string) []string {
	if s == "" || s == "all" {
		return allImpls
	}
	known := map[string]bool{}
	for _, name := range allImpls {
		known[name] = true
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	seen := map[string]bool{}
	for _, p := range parts {
		t := strings.TrimSpace(strings.ToLower(p))
		if t == "" || seen[t] || !known[t] {
			continue
		}
		out = append(out, t)
		seen[t] = true
	}
	if len(out) == 0 {
		return allImpls
	}
	return out
}
