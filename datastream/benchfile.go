package datastream

import (
	"encoding/csv"
	"fmt"
	"math"
	"slices"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	benchMagic   = "SLBENCH"
	benchVersion = 2
)

var (
	ErrBadMagic           = errors.New("datastream: invalid bench file magic")
	ErrUnsupportedVersion = errors.New("datastream: unsupported bench file version")
)

// BenchFile 為一份工作負載：key 分布與依序重播的操作
type BenchFile struct {
	Magic   string            `msgpack:"magic"`
	Version uint16            `msgpack:"version"`
	Dist    map[int64]float64 `msgpack:"dist"`
	Ops     []Operation       `msgpack:"ops"`
}

// NewBenchFile 建立帶有正確檔頭的空 BenchFile
func NewBenchFile(dist map[int64]float64, ops []Operation) *BenchFile {
	return &BenchFile{
		Magic:   benchMagic,
		Version: benchVersion,
		Dist:    dist,
		Ops:     ops,
	}
}

// WriteBenchFile 以 msgpack 編碼寫入 fs 上的 name
func WriteBenchFile(fs afero.Fs, name string, bf *BenchFile) error {
	if bf == nil {
		return errors.New("WriteBenchFile: nil bench file")
	}
	f, err := fs.Create(name)
	if err != nil {
		return errors.Wrapf(err, "WriteBenchFile %s", name)
	}
	defer f.Close()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(bf); err != nil {
		return errors.Wrapf(err, "WriteBenchFile %s: encode", name)
	}
	return errors.Wrapf(f.Sync(), "WriteBenchFile %s: sync", name)
}

// ReadBenchFile 讀取 bench 檔，回傳分布與操作序列
func ReadBenchFile(fs afero.Fs, name string) (*BenchFile, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "ReadBenchFile %s", name)
	}
	defer f.Close()

	var bf BenchFile
	if err := msgpack.NewDecoder(f).Decode(&bf); err != nil {
		return nil, errors.Wrapf(err, "ReadBenchFile %s: decode", name)
	}
	if bf.Magic != benchMagic {
		return nil, errors.Wrapf(ErrBadMagic, "ReadBenchFile %s: %q", name, bf.Magic)
	}
	if bf.Version != benchVersion {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "ReadBenchFile %s: %d", name, bf.Version)
	}
	if bf.Dist == nil {
		bf.Dist = map[int64]float64{}
	}
	return &bf, nil
}

// ToSequenceModel 將 BenchFile 轉為可重播的 SequenceModel
func (bf *BenchFile) ToSequenceModel() *SequenceModel {
	if bf == nil {
		return NewSequenceModelFromOps(nil)
	}
	return NewSequenceModelFromOps(bf.Ops)
}

// Keys 依升冪回傳分布中的 key
func (bf *BenchFile) Keys() []int64 {
	keys := make([]int64, 0, len(bf.Dist))
	for k := range bf.Dist {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (bf *BenchFile) Entropy() float64 {
	return EntropyFromDist(bf.Dist)
}

func (bf *BenchFile) DistributeToCSV(writer *csv.Writer) error {
	return distributeToCSV(writer, bf.Dist)
}

// EntropyFromDist 計算分布的熵（單位：bit）
// dist 的 value 應為已正規化的機率；會自動忽略 <= 0 的值
func EntropyFromDist(dist map[int64]float64) float64 {
	h := 0.0
	for _, p := range dist {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

// distributeToCSV 輸出兩列：key 與機率，各自前置兩個空欄
func distributeToCSV(writer *csv.Writer, dist map[int64]float64) error {
	sorted := make([]int64, 0, len(dist))
	for k := range dist {
		sorted = append(sorted, k)
	}
	slices.Sort(sorted)

	keys := make([]string, 0, len(dist)+2)
	probs := make([]string, 0, len(dist)+2)
	keys = append(keys, "", "")
	probs = append(probs, "", "")
	for _, k := range sorted {
		keys = append(keys, fmt.Sprintf("%d", k))
		probs = append(probs, fmt.Sprintf("%f", dist[k]))
	}
	if err := writer.Write(keys); err != nil {
		return errors.Wrap(err, "write keys")
	}
	if err := writer.Write(probs); err != nil {
		return errors.Wrap(err, "write probs")
	}
	writer.Flush()
	return writer.Error()
}
