package datastream

import (
	"math"
	randv2 "math/rand/v2"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// WorkloadParams 描述兩階段工作負載
//   - N: key 數量
//   - S, V: Zipf 參數。S = 0 時使用均勻分布；否則需滿足 S > 1、V >= 1
//   - K: 操作數量（需 >= N，以保證每個 key 至少出現一次）
//   - Phase1Ratio: 第一階段佔 K 的比例，第一階段涵蓋所有 key
//   - DeleteRatio: key 已存在時產生 Delete 的機率，其餘為 Query
//   - SimpleKey: key 為 0..N-1；否則為隨機不重複的 uint32
type WorkloadParams struct {
	N           int     `json:"n"`
	S           float64 `json:"s"`
	V           float64 `json:"v"`
	Seed        uint64  `json:"seed"`
	K           int     `json:"k"`
	Phase1Ratio float64 `json:"phase1Ratio"`
	DeleteRatio float64 `json:"deleteRatio"`
	SimpleKey   bool    `json:"simpleKey"`
}

func (p WorkloadParams) validate() error {
	if p.N <= 0 {
		return errors.Errorf("invalid n: %d", p.N)
	}
	if p.S != 0 && (p.S <= 1.0 || p.V < 1.0) {
		return errors.Errorf("invalid zipf params: s=%v must >1, v=%v must >=1", p.S, p.V)
	}
	if p.K < p.N {
		return errors.Errorf("k (%d) must be >= n (%d) to ensure each key appears at least once", p.K, p.N)
	}
	phase1 := int(float64(p.K) * p.Phase1Ratio)
	if phase1 < p.N || phase1 > p.K {
		return errors.Errorf("phase1Size (%d) must satisfy n <= phase1Size <= k", phase1)
	}
	if p.DeleteRatio < 0.0 || p.DeleteRatio > 1.0 {
		return errors.Errorf("deleteRatio (%v) must be between 0.0 and 1.0", p.DeleteRatio)
	}
	return nil
}

// GenerateWorkload 產生工作負載
// 第一階段先保證每個 key 至少出現一次（順序隨機洗牌），
// 第二階段依分布抽樣；key 不在表中時為 Insert
func GenerateWorkload(p WorkloadParams) (*BenchFile, error) {
	if err := p.validate(); err != nil {
		return nil, errors.WithMessage(err, "GenerateWorkload")
	}
	r := randv2.New(randv2.NewPCG(p.Seed, 0))

	// rank -> key 的隨機對應（不重複）
	rankToKey := make([]int64, p.N)
	if p.SimpleKey {
		for i := range rankToKey {
			rankToKey[i] = int64(i)
		}
		r.Shuffle(len(rankToKey), func(i, j int) { rankToKey[i], rankToKey[j] = rankToKey[j], rankToKey[i] })
	} else {
		check := make(map[int64]struct{}, p.N)
		for i := range rankToKey {
			genKey := int64(r.Uint32())
			for _, ok := check[genKey]; ok; _, ok = check[genKey] {
				genKey = int64(r.Uint32())
			}
			rankToKey[i] = genKey
			check[genKey] = struct{}{}
		}
	}

	weights := make([]float64, p.N)
	var nextRank func() int
	if p.S == 0 {
		for i := range weights {
			weights[i] = 1.0 / float64(p.N)
		}
		nextRank = func() int { return r.IntN(p.N) }
	} else {
		var sumW float64
		for i := range weights {
			weights[i] = 1.0 / math.Pow(p.V+float64(i), p.S)
			sumW += weights[i]
		}
		for i := range weights {
			weights[i] /= sumW
		}
		zipf := randv2.NewZipf(r, p.S, p.V, uint64(p.N-1))
		nextRank = func() int { return int(zipf.Uint64()) }
	}

	dist := make(map[int64]float64, p.N)
	for rank, key := range rankToKey {
		dist[key] = weights[rank]
	}

	phase1Size := int(float64(p.K) * p.Phase1Ratio)
	phase1Keys := make([]int64, phase1Size)
	copy(phase1Keys, rankToKey)
	for i := p.N; i < phase1Size; i++ {
		phase1Keys[i] = rankToKey[nextRank()]
	}
	r.Shuffle(len(phase1Keys), func(i, j int) { phase1Keys[i], phase1Keys[j] = phase1Keys[j], phase1Keys[i] })

	present := make(map[int64]bool, p.N)
	ops := make([]Operation, 0, p.K)
	emit := func(key int64) {
		op := OpQuery
		switch {
		case !present[key]:
			op = OpInsert
			present[key] = true
		case r.Float64() < p.DeleteRatio:
			op = OpDelete
			present[key] = false
		}
		ops = append(ops, Operation{Type: op, Key: key})
	}
	for _, key := range phase1Keys {
		emit(key)
	}
	for i := phase1Size; i < p.K; i++ {
		emit(rankToKey[nextRank()])
	}
	return NewBenchFile(dist, ops), nil
}

// WriteBenchFileFromZipfV2 產生工作負載並寫入 fs 上的 name
func WriteBenchFileFromZipfV2(fs afero.Fs, name string, p WorkloadParams) (*BenchFile, error) {
	bf, err := GenerateWorkload(p)
	if err != nil {
		return nil, err
	}
	if err := WriteBenchFile(fs, name, bf); err != nil {
		return nil, err
	}
	return bf, nil
}

// BenchFileFromStream 以資料流與操作數 k 產生工作負載
//   - 若 key 未曾出現過，則輸出 Insert
//   - 若已出現過，則 90% Query、其餘 Insert
func BenchFileFromStream(gen DataStream, k int, seed int64) (*BenchFile, error) {
	if gen == nil {
		return nil, errors.New("BenchFileFromStream: nil DataStream")
	}
	if k < 0 {
		return nil, errors.Errorf("BenchFileFromStream: invalid k: %d", k)
	}
	r := randv2.New(randv2.NewPCG(uint64(seed), 0))
	dist := gen.GetDistribute()
	everSeen := make(map[int64]bool, len(dist))
	ops := make([]Operation, 0, k)
	for i := 0; i < k; i++ {
		key := int64(gen.Next())
		op := OpInsert
		if everSeen[key] {
			if r.Float64() < 0.90 {
				op = OpQuery
			}
		} else {
			everSeen[key] = true
		}
		ops = append(ops, Operation{Type: op, Key: key})
	}
	return NewBenchFile(dist, ops), nil
}
