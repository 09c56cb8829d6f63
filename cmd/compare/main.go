package main

import (
	"cmp"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/Hakuto4838/DataStructures.git/analyTool"
	"github.com/Hakuto4838/DataStructures.git/datastream"
	"github.com/Hakuto4838/DataStructures.git/maps"
	"github.com/Hakuto4838/DataStructures.git/searchtree"
	"github.com/Hakuto4838/DataStructures.git/skiplist"
)

type sortedMap = maps.SortedMap[int64, float64]

type options struct {
	levels int
	links  bool
	steps  bool
	csvDir string
}

func insertAll(m sortedMap, dist map[int64]float64) {
	for k, v := range dist {
		m.Put(k, v)
	}
}

// train 依 Zipf 序列查詢，讓自我調整的結構（splay）反映熱點
func train(m sortedMap, seq []int) {
	for _, idx := range seq {
		m.GetValue(int64(idx))
	}
}

// hottest 回傳機率最高的 key
func hottest(dist map[int64]float64) int64 {
	var best int64
	bestP := -1.0
	for k, p := range dist {
		if p > bestP || (p == bestP && k < best) {
			best, bestP = k, p
		}
	}
	return best
}

// writeCSV 將 skip list 的層級輸出為 <dir>/<name>.csv
func writeCSV(fs afero.Fs, dir, name string, sl maps.Analyable[int64, float64]) error {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := fs.Create(filepath.Join(dir, name+".csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	return analyTool.SkipListToCSV(sl, csv.NewWriter(f))
}

func report(fs afero.Fs, name string, m sortedMap, dist map[int64]float64, opt options) {
	fmt.Printf("=== %s ===\n", name)
	var steps analyTool.StepMap[int64]
	switch a := m.(type) {
	case maps.Analyable[int64, float64]:
		var score float64
		score, steps = analyTool.AnalyzeStep(a, dist)
		fmt.Printf("avg steps: %.6f\n", score)
		analyTool.PrintSkipList(a, opt.levels, 35)
		if opt.links {
			analyTool.PrintLink(a, opt.levels, 35)
		}
		if opt.csvDir != "" {
			if err := writeCSV(fs, opt.csvDir, name, a); err != nil {
				logrus.WithError(err).WithField("impl", name).Error("write csv failed")
			}
		}
	case maps.TreeAnalyable[int64, float64]:
		var score float64
		score, steps = analyTool.AnalyzeDepth(a, dist)
		fmt.Printf("avg depth: %.6f, height: %d\n", score, analyTool.TreeHeight(a))
		hot := hottest(dist)
		if d, ok := analyTool.FindDepth(a, hot); ok {
			fmt.Printf("hottest key %d at depth %d\n", hot, d)
		}
		analyTool.RenderLevels(os.Stdout, a, opt.levels, name == "rb")
	}
	if opt.steps {
		steps.Print(cmp.Compare[int64])
	}
	fmt.Println()
}

func main() {
	var n int
	var seed int64
	var opt options
	flag.IntVar(&n, "n", 900, "number of keys")
	flag.Int64Var(&seed, "seed", 42, "seed for generator and skip list")
	flag.IntVar(&opt.levels, "levels", 6, "max levels to print")
	flag.BoolVar(&opt.links, "links", false, "print every skip list level link by link")
	flag.BoolVar(&opt.steps, "steps", false, "print search steps (or depth) per key")
	flag.StringVar(&opt.csvDir, "csv", "", "directory for skip list level CSV dumps")
	flag.Parse()

	if n <= 0 {
		logrus.WithField("n", n).Fatal("invalid n")
	}

	gen := datastream.NewZipfDataGenerator(n, 1.07, 1.0, seed)
	dist := gen.GetDistribute()
	seq := gen.GenerateSequence(n * 10)
	logrus.WithFields(logrus.Fields{"n": n, "entropy": gen.Entropy()}).Info("zipf distribution")

	impls := []struct {
		name string
		m    sortedMap
	}{
		{"treemap", searchtree.NewTreeMap[int64, float64]()},
		{"avl", searchtree.NewAVLTreeMap[int64, float64]()},
		{"rb", searchtree.NewRBTreeMap[int64, float64]()},
		{"splay", searchtree.NewSplayTreeMap[int64, float64]()},
		{"skiplist", skiplist.NewSkipListMap[int64, float64](seed)},
	}
	fs := afero.NewOsFs()
	for _, impl := range impls {
		insertAll(impl.m, dist)
		train(impl.m, seq)
		report(fs, impl.name, impl.m, dist, opt)
	}
}
