package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/Hakuto4838/DataStructures.git/datastream"
)

// parseScientificNotation 解析科學記號字串（如 "1e5"）為整數
func parseScientificNotation(s string) (int, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %q", s)
	}
	return int(f), nil
}

// formatScientific 將數字格式化為科學記號（用於檔名）
func formatScientific(n int) string {
	if n == 0 {
		return "0"
	}

	// 找出最大的 10 的冪次
	exp := 0
	temp := n
	for temp >= 10 {
		temp /= 10
		exp++
	}

	// 計算係數
	divisor := 1
	for i := 0; i < exp; i++ {
		divisor *= 10
	}
	coefficient := float64(n) / float64(divisor)

	// 如果係數是整數，就不顯示小數
	if coefficient == float64(int(coefficient)) {
		return fmt.Sprintf("%de%d", int(coefficient), exp)
	}
	return fmt.Sprintf("%.1fe%d", coefficient, exp)
}

// formatDecimal 將浮點數格式化為不含小數點的字串（用於檔名）
func formatDecimal(f float64) string {
	// 乘以 100 轉換為整數（保留兩位小數的精度）
	val := int(f * 100)
	if val%100 == 0 {
		// 如果是整數，直接返回
		return fmt.Sprintf("%d", val/100)
	} else if val%10 == 0 {
		// 如果只有一位小數，返回 X_Y 格式
		return fmt.Sprintf("%d_%d", val/100, (val%100)/10)
	} else {
		// 兩位小數，返回 X_YZ 格式
		return fmt.Sprintf("%d_%02d", val/100, val%100)
	}
}

func main() {
	var out string
	var path string
	var nStr string
	var kStr string
	var seed int64
	var nums int
	var p datastream.WorkloadParams

	flag.StringVar(&nStr, "n", "0", "number of keys (支援科學記號，如 1e5)")
	flag.Float64Var(&p.S, "a", 1.07, "Zipf parameter s (設為 0 時使用均勻分布)")
	flag.Float64Var(&p.V, "b", 1.0, "Zipf parameter v (當 a > 0 時有效)")
	flag.StringVar(&kStr, "k", "0", "number of operations to generate (支援科學記號，如 1e6)")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "seed for generators")
	flag.Float64Var(&p.Phase1Ratio, "phase1Ratio", 0.5, "ratio of phase1 operations")
	flag.Float64Var(&p.DeleteRatio, "deleteRatio", 0.1, "ratio of delete operations")
	flag.IntVar(&nums, "nums", 1, "number of files to generate")
	flag.StringVar(&out, "out", "", "output filename prefix (留空則自動生成)")
	flag.StringVar(&path, "path", ".", "output directory path")
	flag.BoolVar(&p.SimpleKey, "eazy", false, "key 使用 0..n-1")
	flag.Parse()

	var err error
	if p.N, err = parseScientificNotation(nStr); err != nil {
		logrus.WithError(err).Fatal("解析參數 n 錯誤")
	}
	if p.K, err = parseScientificNotation(kStr); err != nil {
		logrus.WithError(err).Fatal("解析參數 k 錯誤")
	}

	// 如果沒有指定輸出檔名，則根據參數自動生成
	if out == "" {
		out = fmt.Sprintf("bench_n%s_k%s_a%s_b%s_p1r%s_dr%s",
			formatScientific(p.N),
			formatScientific(p.K),
			formatDecimal(p.S),
			formatDecimal(p.V),
			formatDecimal(p.Phase1Ratio),
			formatDecimal(p.DeleteRatio))
	}

	fs := afero.NewOsFs()
	if path != "." && path != "" {
		if err := fs.MkdirAll(path, 0o755); err != nil {
			logrus.WithError(err).WithField("path", path).Fatal("建立輸出目錄失敗")
		}
	}

	logrus.WithFields(logrus.Fields{
		"n":           p.N,
		"k":           p.K,
		"a":           p.S,
		"b":           p.V,
		"phase1Ratio": p.Phase1Ratio,
		"deleteRatio": p.DeleteRatio,
		"seed":        seed,
		"nums":        nums,
		"path":        path,
		"prefix":      out,
	}).Info("生成參數")

	for i := 0; i < nums; i++ {
		filename := fmt.Sprintf("%s.bin", out)
		if nums > 1 {
			filename = fmt.Sprintf("%s_%d.bin", out, i)
		}
		outfile := filepath.Join(path, filename)
		p.Seed = uint64(seed + int64(i))
		bf, err := datastream.WriteBenchFileFromZipfV2(fs, outfile, p)
		if err != nil {
			logrus.WithError(err).WithField("file", outfile).Fatal("generate bench file")
		}
		logrus.WithFields(logrus.Fields{"file": outfile, "ops": len(bf.Ops), "entropy": bf.Entropy()}).Info("written")
	}
}
