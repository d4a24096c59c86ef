// Package typegen is the public surface of the generator library: custom
// generators attached to type descriptors, and random (type, sample)
// pairs for self-testing a type checker.
//
// Sampling support is compiled in by default. Building with
// -tags nosampling removes it; every sampling entry point then returns
// a *CapabilityUnavailableError while String and Check keep working.
package typegen

import (
	"github.com/funvibe/typegen/internal/arbitrary"
	"github.com/funvibe/typegen/internal/derive"
	"github.com/funvibe/typegen/internal/override"
	"github.com/funvibe/typegen/internal/sampling"
	"github.com/funvibe/typegen/internal/typesystem"
	"github.com/funvibe/typegen/internal/value"
)

type (
	// Type is a type descriptor.
	Type = typesystem.Type
	// Value is a sample value.
	Value = value.Value
	// RandomSource is the source of randomness generators draw from.
	RandomSource = sampling.RandomSource
	// Gen is a sized generator.
	Gen[T any] = sampling.Gen[T]

	Override      = override.Override
	GeneratorFunc = override.GeneratorFunc
	Pair          = arbitrary.Pair

	InvalidArityError          = override.InvalidArityError
	SignatureError             = override.SignatureError
	CapabilityUnavailableError = sampling.CapabilityUnavailableError
	MismatchError              = typesystem.MismatchError
	UnsupportedTypeError       = derive.UnsupportedTypeError
)

// NoArg builds a zero-arity generator function.
func NoArg(fn func() Value) GeneratorFunc { return override.NoArg(fn) }

// FromGen builds a zero-arity generator function from a replacement
// generator.
func FromGen(g Gen[Value]) GeneratorFunc { return override.FromGen(g) }

// WithDefault builds a one-arity generator function applied to the default
// sample.
func WithDefault(fn func(Value) Value) GeneratorFunc { return override.WithDefault(fn) }

// New wraps t with a typed generator function.
func New(t Type, fn GeneratorFunc) *Override { return override.New(t, fn) }

// Wrap wraps t with fn, which must be a func of zero or one value
// arguments returning a value.
func Wrap(t Type, fn any) (*Override, error) { return override.Wrap(t, fn) }

// Sample draws the default sample of t.
func Sample(t Type, src RandomSource, size int) (Value, error) {
	return derive.Sample(t, src, size)
}

// SampleArbitraryType draws a random type descriptor and a sample of it.
func SampleArbitraryType(src RandomSource, size int) (Pair, error) {
	return arbitrary.SampleArbitraryType(src, size)
}

// NewSource returns a seeded source from the registered sampling provider.
func NewSource(seed int64) (RandomSource, error) {
	return sampling.NewSource(seed)
}

// Available reports whether sampling support was compiled in.
func Available() bool {
	return sampling.Ensure() == nil
}
