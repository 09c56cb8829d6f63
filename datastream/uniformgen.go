package datastream

import (
	"encoding/csv"
	"math"
	"math/rand"
)

// UniformDataGenerator 產生符合平均分布的查詢序列
// 每個索引出現機率皆相同
type UniformDataGenerator struct {
	n   int
	cdf []float64
	rng *rand.Rand
}

func NewUniformDataGenerator(n int, seed int64) *UniformDataGenerator {
	u := &UniformDataGenerator{
		n:   n,
		rng: rand.New(rand.NewSource(seed)),
	}
	u.cdf = u.GetCDF()
	return u
}

// Next 產生一筆查詢 (回傳索引 0~n-1)
func (u *UniformDataGenerator) Next() int {
	return searchCDF(u.cdf, u.rng.Float64())
}

// GenerateSequence 產生指定長度的查詢序列
func (u *UniformDataGenerator) GenerateSequence(seqLen int) []int {
	seq := make([]int, seqLen)
	for i := range seq {
		seq[i] = u.Next()
	}
	return seq
}

// GetDistribute 回傳每個 key 的機率分布
func (u *UniformDataGenerator) GetDistribute() map[int64]float64 {
	result := make(map[int64]float64, u.n)
	for i := 0; i < u.n; i++ {
		result[int64(i)] = 1.0 / float64(u.n)
	}
	return result
}

func (u *UniformDataGenerator) DistributeToCSV(writer *csv.Writer) error {
	return distributeToCSV(writer, u.GetDistribute())
}

func (u *UniformDataGenerator) Close() error {
	return nil
}

func (u *UniformDataGenerator) GetCDF() []float64 {
	cdf := make([]float64, u.n)
	for i := range cdf {
		cdf[i] = float64(i+1) / float64(u.n)
	}
	return cdf
}

func (u *UniformDataGenerator) GetPDF() []float64 {
	pdf := make([]float64, u.n)
	for i := range pdf {
		pdf[i] = 1.0 / float64(u.n)
	}
	return pdf
}

func (u *UniformDataGenerator) Entropy() float64 {
	if u.n <= 0 {
		return 0
	}
	return math.Log2(float64(u.n))
}
