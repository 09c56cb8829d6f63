package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/Hakuto4838/DataStructures.git/datastream"
)

func main() {
	var opts options
	var configPath string

	flag.StringVar(&configPath, "config", "", "JSONC config file; its fields override flags")
	flag.StringVar(&opts.File, "file", "", "existing bench file")
	flag.StringVar(&opts.Dir, "dir", "", "directory containing bench files to test (will test all .bin files)")
	flag.StringVar(&opts.Out, "out", "", "output path to write generated bench file")
	flag.IntVar(&opts.Workload.N, "n", 0, "number of keys")
	flag.Float64Var(&opts.Workload.S, "a", 1.07, "Zipf parameter s (0 for uniform)")
	flag.Float64Var(&opts.Workload.V, "b", 1.0, "Zipf parameter v")
	flag.IntVar(&opts.Workload.K, "k", 0, "number of operations to generate")
	flag.Float64Var(&opts.Workload.Phase1Ratio, "phase1Ratio", 0.5, "ratio of phase1 operations")
	flag.Float64Var(&opts.Workload.DeleteRatio, "deleteRatio", 0.1, "ratio of delete operations")
	flag.Int64Var(&opts.Seed, "seed", time.Now().UnixNano(), "seed for generators/structures where applicable")
	flag.StringVar(&opts.Impl, "impl", "all", "implementations to run: all or comma list ("+strings.Join(allImpls, ",")+")")
	flag.IntVar(&opts.Runs, "runs", 5, "how many times to repeat each benchmark")
	flag.Parse()

	fs := afero.NewOsFs()
	if configPath != "" {
		if err := loadConfig(fs, configPath, &opts); err != nil {
			logrus.WithError(err).Fatal("load config")
		}
	}
	if err := opts.validate(); err != nil {
		logrus.WithError(err).Fatal("invalid options")
	}

	var benchPaths []string
	switch {
	case opts.Dir != "":
		files, err := collectBenchFilesFromDir(fs, opts.Dir)
		if err != nil {
			logrus.WithError(err).WithField("dir", opts.Dir).Fatal("scan directory")
		}
		if len(files) == 0 {
			logrus.WithField("dir", opts.Dir).Fatal("no .bin files found")
		}
		benchPaths = files
		logrus.WithFields(logrus.Fields{"dir": opts.Dir, "files": len(files)}).Info("found bench files")
	case opts.File != "":
		benchPaths = []string{opts.File}
	default:
		opts.Workload.Seed = uint64(opts.Seed)
		if _, err := datastream.WriteBenchFileFromZipfV2(fs, opts.Out, opts.Workload); err != nil {
			logrus.WithError(err).WithField("file", opts.Out).Fatal("generate bench file")
		}
		logrus.WithField("file", opts.Out).Info("generated bench file")
		benchPaths = []string{opts.Out}
	}

	toRun := parseImpls(opts.Impl)
	logrus.WithField("impl", strings.Join(toRun, ",")).Info("implementations to test")

	if len(benchPaths) > 1 {
		runBatchBenchmark(fs, benchPaths, toRun, opts.Runs, opts.Seed)
	} else {
		runBenchmark(fs, benchPaths[0], toRun, opts.Runs, opts.Seed)
	}
}

// collectBenchFilesFromDir 收集指定目錄下所有 .bin 檔案
func collectBenchFilesFromDir(fs afero.Fs, dir string) ([]string, error) {
	var files []string
	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".bin" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// runBatchBenchmark 對多個 benchmark 檔案執行測試並匯總統計
func runBatchBenchmark(fs afero.Fs, benchPaths []string, toRun []string, runs int, seed int64) {
	type implStats struct {
		avgMsList []float64
		minMsList []float64
		maxMsList []float64
		opsList   []int
		stepsList []float64
		totalRuns int
	}

	allStats := make(map[string]*implStats, len(toRun))
	for _, impl := range toRun {
		allStats[impl] = &implStats{}
	}

	for idx, benchPath := range benchPaths {
		log := logrus.WithFields(logrus.Fields{
			"file":     filepath.Base(benchPath),
			"progress": fmt.Sprintf("%d/%d", idx+1, len(benchPaths)),
		})
		bf, err := datastream.ReadBenchFile(fs, benchPath)
		if err != nil {
			log.WithError(err).Error("read bench file")
			continue
		}
		log.WithFields(logrus.Fields{"ops": len(bf.Ops), "entropy": bf.Entropy()}).Info("testing")

		for _, impl := range toRun {
			log.WithField("impl", impl).Debug("benchmarking")
			stats := benchmarkImpl(bf, impl, runs, seed)

			s := allStats[impl]
			s.avgMsList = append(s.avgMsList, stats.avgMs)
			s.minMsList = append(s.minMsList, stats.minMs)
			s.maxMsList = append(s.maxMsList, stats.maxMs)
			s.opsList = append(s.opsList, len(bf.Ops))
			if !math.IsNaN(stats.avgSteps) {
				s.stepsList = append(s.stepsList, stats.avgSteps)
			}
			s.totalRuns += runs
		}
	}

	rows := make([][]string, 0, len(toRun))
	for _, impl := range toRun {
		stats := allStats[impl]
		if len(stats.avgMsList) == 0 {
			continue
		}

		totalOps := 0
		totalSec := 0.0
		for i, ops := range stats.opsList {
			totalOps += ops
			totalSec += stats.avgMsList[i] / 1000.0
		}

		steps := "N/A"
		if len(stats.stepsList) > 0 {
			steps = fmt.Sprintf("%.6f", average(stats.stepsList))
		}

		rows = append(rows, []string{
			impl,
			fmt.Sprintf("%d", stats.totalRuns),
			fmt.Sprintf("%.3f", average(stats.avgMsList)),
			fmt.Sprintf("%.3f", slices.Min(stats.minMsList)),
			fmt.Sprintf("%.3f", slices.Max(stats.maxMsList)),
			fmt.Sprintf("%.2f", float64(totalOps)/totalSec),
			steps,
		})
	}

	fmt.Println("AGGREGATE STATISTICS (across all benchmark files)")
	renderTable([]string{"Impl", "Total Runs", "Avg(ms)", "Min(ms)", "Max(ms)", "Avg Ops/s", "AvgSteps"}, rows)
}

// runBenchmark 執行單一 benchmark 檔案的測試
func runBenchmark(fs afero.Fs, benchPath string, toRun []string, runs int, seed int64) {
	bf, err := datastream.ReadBenchFile(fs, benchPath)
	if err != nil {
		logrus.WithError(err).WithField("file", benchPath).Error("read bench file")
		return
	}
	logrus.WithFields(logrus.Fields{
		"file":    benchPath,
		"ops":     len(bf.Ops),
		"entropy": bf.Entropy(),
	}).Info("testing")

	rows := make([][]string, 0, len(toRun))
	for _, impl := range toRun {
		logrus.WithField("impl", impl).Debug("benchmarking")
		stats := benchmarkImpl(bf, impl, runs, seed)
		steps := "N/A"
		if !math.IsNaN(stats.avgSteps) {
			steps = fmt.Sprintf("%.6f", stats.avgSteps)
		}
		rows = append(rows, []string{
			impl,
			fmt.Sprintf("%d", runs),
			fmt.Sprintf("%.3f", stats.avgMs),
			fmt.Sprintf("%.3f", stats.minMs),
			fmt.Sprintf("%.3f", stats.maxMs),
			fmt.Sprintf("%.2f", float64(len(bf.Ops))/(stats.avgMs/1000.0)),
			steps,
		})
	}
	renderTable([]string{"Impl", "Runs", "Avg(ms)", "Min(ms)", "Max(ms)", "Ops/s", "AvgSteps"}, rows)
}

func renderTable(header []string, rows [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

type benchStats struct {
	avgMs    float64
	minMs    float64
	maxMs    float64
	avgSteps float64 // 取第一次執行後的結構，無法分析時為 NaN
}

func benchmarkImpl(bf *datastream.BenchFile, impl string, runs int, seed int64) benchStats {
	durations := make([]float64, 0, runs)
	sampleSteps := math.NaN()
	for i := 0; i < runs; i++ {
		m, ok := newImpl(impl, seed)
		if !ok {
			logrus.WithField("impl", impl).Fatal("unknown implementation")
		}
		elapsed := runOpsAndTime(m, bf)
		durations = append(durations, float64(elapsed.Microseconds())/1000.0)
		if i == 0 {
			sampleSteps = avgSteps(m, bf.Dist)
		}
	}
	slices.Sort(durations)
	return benchStats{
		avgMs:    average(durations),
		minMs:    durations[0],
		maxMs:    durations[len(durations)-1],
		avgSteps: sampleSteps,
	}
}

func runOpsAndTime(m benchMap, bf *datastream.BenchFile) time.Duration {
	start := time.Now()
	for _, op := range bf.Ops {
		switch op.Type {
		case datastream.OpQuery:
			m.GetValue(op.Key)
		case datastream.OpInsert:
			m.Put(op.Key, bf.Dist[op.Key])
		case datastream.OpDelete:
			m.Remove(op.Key)
		}
	}
	return time.Since(start)
}
