//go:build !nosampling

package sampling

// Compiled unless built with -tags nosampling.
func init() {
	Register(randProvider{})
}

type randProvider struct{}

func (randProvider) Name() string { return "math/rand" }

func (randProvider) NewSource(seed int64) RandomSource {
	return NewRandSource(seed)
}
