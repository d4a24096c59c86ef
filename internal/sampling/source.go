// Package sampling is the randomness provider used by every generator in
// typegen: random sources, sized generator combinators, and the registry
// that records whether sampling support was compiled in.
package sampling

import (
	"math/rand"
)

// RandomSource abstracts the source of randomness.
// Implementations are not safe for concurrent use.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// RandSource wraps math/rand.
type RandSource struct {
	*rand.Rand
}

// NewRandSource returns a seeded math/rand source.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rand.New(rand.NewSource(seed))}
}

// ByteSource uses a byte slice as a source of randomness.
// Once the data is exhausted it only returns zeros, which every generator
// maps to its smallest, terminal choice.
type ByteSource struct {
	data []byte
	pos  int
}

// NewByteSource returns a source that replays data.
func NewByteSource(data []byte) *ByteSource {
	return &ByteSource{data: data}
}

func (s *ByteSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if s.pos >= len(s.data) {
		return 0
	}
	v := int(s.data[s.pos])
	s.pos++
	return v % n
}

func (s *ByteSource) Float64() float64 {
	if s.pos >= len(s.data) {
		return 0.0
	}
	v := int(s.data[s.pos])
	s.pos++
	return float64(v) / 256.0
}
