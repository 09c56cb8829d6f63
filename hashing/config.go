package hashing

import (
	"fmt"
	"math/rand"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

const (
	DefaultCapacity = 17
	MaxLoadFactor   = 0.5
	DefaultPrime    = 109345121
)

// Config 設定 hash map 的初始容量與壓縮函數的參數來源
type Config struct {
	Capacity int
	// Testing 固定 alpha=1, beta=1, prime=7
	Testing bool
	Seed    int64
}

func DefaultConfig() Config {
	return Config{
		Capacity: DefaultCapacity,
		Testing:  false,
		Seed:     1,
	}
}

// Hasher produces a deterministic hash; equal keys must hash equally.
type Hasher[K any] func(K) int64

// HashCoder lets a key type supply its own hash.
type HashCoder interface {
	HashCode() int64
}

func IntegerHash[K constraints.Integer](key K) int64 {
	return int64(key)
}

// DefaultHash 整數直接使用其值，字串使用 xxhash，其餘型別以 %#v 表示後雜湊
func DefaultHash[K any](key K) int64 {
	switch k := any(key).(type) {
	case HashCoder:
		return k.HashCode()
	case int:
		return IntegerHash(k)
	case int8:
		return IntegerHash(k)
	case int16:
		return IntegerHash(k)
	case int32:
		return IntegerHash(k)
	case int64:
		return k
	case uint:
		return IntegerHash(k)
	case uint8:
		return IntegerHash(k)
	case uint16:
		return IntegerHash(k)
	case uint32:
		return IntegerHash(k)
	case uint64:
		return IntegerHash(k)
	case string:
		return int64(xxhash.Sum64String(k))
	default:
		return int64(xxhash.Sum64String(fmt.Sprintf("%#v", key)))
	}
}

// compressor is the MAD function |hash*alpha + beta| % prime % capacity.
type compressor struct {
	alpha, beta, prime int64
}

func newCompressor(cfg Config) compressor {
	if cfg.Testing {
		return compressor{alpha: 1, beta: 1, prime: 7}
	}
	r := rand.New(rand.NewSource(cfg.Seed))
	return compressor{
		alpha: r.Int63n(DefaultPrime-1) + 1,
		beta:  r.Int63n(DefaultPrime),
		prime: DefaultPrime,
	}
}

func (c compressor) compress(hash int64, capacity int) int {
	v := (hash*c.alpha + c.beta) % c.prime
	if v < 0 {
		v = -v
	}
	return int(v % int64(capacity))
}

func capacityOf(cfg Config) int {
	if cfg.Capacity <= 0 {
		return DefaultCapacity
	}
	return cfg.Capacity
}

func overloaded(size, capacity int) bool {
	return float64(size)/float64(capacity) > MaxLoadFactor
}
