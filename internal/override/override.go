// Package override attaches a custom sample generator to a type descriptor.
//
// An Override stands in for its wrapped descriptor everywhere: String and
// Check are forwarded unchanged, and only sample generation is affected.
package override

import (
	"github.com/funvibe/typegen/internal/derive"
	"github.com/funvibe/typegen/internal/sampling"
	"github.com/funvibe/typegen/internal/typesystem"
	"github.com/funvibe/typegen/internal/value"
)

// GeneratorFunc is the custom generator carried by an Override. It is one of
// three variants, fixed at construction:
//
//	NoArg       func() value.Value             arity 0, replaces the default
//	FromGen     sampling.Gen[value.Value]      arity 0, replaces the default
//	WithDefault func(value.Value) value.Value  arity 1, post-processes the default
//
// The zero GeneratorFunc, which is also what the constructors return for a
// nil function, is the identity: it yields the default sample unchanged and
// reports arity 1. Wrap rejects it.
type GeneratorFunc struct {
	noArg       func() value.Value
	gen         sampling.Gen[value.Value]
	withDefault func(value.Value) value.Value
}

// NoArg returns a zero-arity generator whose result is the sample.
func NoArg(fn func() value.Value) GeneratorFunc {
	return GeneratorFunc{noArg: fn}
}

// FromGen returns a zero-arity generator that draws from g instead of the
// default generator.
func FromGen(g sampling.Gen[value.Value]) GeneratorFunc {
	return GeneratorFunc{gen: g}
}

// WithDefault returns a one-arity generator applied to the default sample.
func WithDefault(fn func(value.Value) value.Value) GeneratorFunc {
	return GeneratorFunc{withDefault: fn}
}

// Arity is 0 for replacing generators and 1 for post-processing ones,
// including the zero GeneratorFunc.
func (f GeneratorFunc) Arity() int {
	if f.noArg != nil || f.gen != nil {
		return 0
	}
	return 1
}

func (f GeneratorFunc) isZero() bool {
	return f.noArg == nil && f.gen == nil && f.withDefault == nil
}

// Override pairs a type descriptor with a custom generator.
// It is immutable and safe for concurrent use.
type Override struct {
	typ typesystem.Type
	fn  GeneratorFunc
}

var _ derive.Custom = (*Override)(nil)

// New wraps t with fn.
func New(t typesystem.Type, fn GeneratorFunc) *Override {
	return &Override{typ: t, fn: fn}
}

func (o *Override) String() string { return o.typ.String() }

func (o *Override) Check(v value.Value) error { return o.typ.Check(v) }

// Underlying returns the wrapped descriptor.
func (o *Override) Underlying() typesystem.Type { return o.typ }

// UsesDefault implements derive.Custom. Only one-arity functions need the
// wrapped descriptor's default generator.
func (o *Override) UsesDefault() bool {
	return o.fn.Arity() == 1
}

// Func returns the custom generator.
func (o *Override) Func() GeneratorFunc { return o.fn }

// Generator implements derive.Custom. Zero-arity variants never draw from
// fallback.
func (o *Override) Generator(fallback sampling.Gen[value.Value]) sampling.Gen[value.Value] {
	switch {
	case o.fn.withDefault != nil:
		return sampling.Map(fallback, o.fn.withDefault)
	case o.fn.gen != nil:
		return o.fn.gen
	case o.fn.noArg != nil:
		fn := o.fn.noArg
		return func(sampling.RandomSource, int) value.Value { return fn() }
	default:
		// Zero GeneratorFunc: the identity.
		return fallback
	}
}

// Sample resolves one sample for the override.
func (o *Override) Sample(src sampling.RandomSource, size int) (value.Value, error) {
	return derive.Sample(o, src, size)
}
