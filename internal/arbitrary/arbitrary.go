// Package arbitrary generates random type descriptors together with a
// sample of each, for exercising the type checker against itself.
//
// Every composite entry requests its nested descriptors through a lazy
// generator that halves the size budget (integer division) before
// recursing. Once the budget is at or below the terminal size only
// non-composite entries are eligible, so nesting depth is bounded by
// log2 of the starting size, which is first clamped to config.MaxSize.
package arbitrary

import (
	"fmt"

	"github.com/funvibe/typegen/internal/config"
	"github.com/funvibe/typegen/internal/derive"
	"github.com/funvibe/typegen/internal/sampling"
	"github.com/funvibe/typegen/internal/typesystem"
	"github.com/funvibe/typegen/internal/value"
)

// Pair is a generated type descriptor and a sample conforming to it.
type Pair struct {
	Type   typesystem.Type
	Sample value.Value
}

// Catalogue is the set of type generators chosen from uniformly.
type Catalogue struct {
	// TerminalSize is the budget at or below which composites are skipped.
	TerminalSize int
}

// Default returns the catalogue with the default terminal size.
func Default() *Catalogue {
	return &Catalogue{TerminalSize: config.TerminalSize}
}

// SampleArbitraryType draws a random type and a sample of it using the
// default catalogue.
func SampleArbitraryType(src sampling.RandomSource, size int) (Pair, error) {
	return Default().Sample(src, size)
}

// Sample draws a random type at size, then a sample of that type at the
// same size.
func (c *Catalogue) Sample(src sampling.RandomSource, size int) (Pair, error) {
	if err := sampling.Ensure(); err != nil {
		return Pair{}, err
	}
	typ := c.Types()(src, size)
	g, err := derive.Gen(typ)
	if err != nil {
		return Pair{}, fmt.Errorf("deriving sample for generated type %s: %w", typ, err)
	}
	return Pair{Type: typ, Sample: g(src, size)}, nil
}

// Types returns the random type descriptor generator. Sizes above
// config.MaxSize are clamped.
func (c *Catalogue) Types() sampling.Gen[typesystem.Type] {
	return sampling.Bounded(sampling.Sized(func(size int) sampling.Gen[typesystem.Type] {
		if size <= c.TerminalSize {
			return sampling.OneOf(leaves()...)
		}
		return sampling.OneOf(append(leaves(), c.composites()...)...)
	}))
}

// leaves are the primitive entries plus literal, in catalogue order. Any
// comes first so an exhausted ByteSource settles on it.
func leaves() []sampling.Gen[typesystem.Type] {
	gens := []sampling.Gen[typesystem.Type]{
		sampling.Constant[typesystem.Type](typesystem.TAny{}),
	}
	for _, p := range typesystem.Primitives() {
		gens = append(gens, sampling.Constant[typesystem.Type](p))
	}
	return append(gens, literal())
}

func (c *Catalogue) composites() []sampling.Gen[typesystem.Type] {
	elem := c.nested()
	return []sampling.Gen[typesystem.Type]{
		listOf(elem),
		mapOf(elem),
		fixedListOf(elem),
		tupleOf(elem),
	}
}

// nested is the lazy, size-decaying wrapper used for every descent.
func (c *Catalogue) nested() sampling.Gen[typesystem.Type] {
	return sampling.Lazy(func() sampling.Gen[typesystem.Type] {
		return sampling.Halve(c.Types())
	})
}

func literal() sampling.Gen[typesystem.Type] {
	return sampling.Map(derive.AnyValue(), func(v value.Value) typesystem.Type {
		return typesystem.TLiteral{Value: v}
	})
}

func listOf(elem sampling.Gen[typesystem.Type]) sampling.Gen[typesystem.Type] {
	return sampling.Map(elem, func(t typesystem.Type) typesystem.Type {
		return typesystem.TList{Elem: t}
	})
}

func mapOf(elem sampling.Gen[typesystem.Type]) sampling.Gen[typesystem.Type] {
	return func(src sampling.RandomSource, size int) typesystem.Type {
		key := elem(src, size)
		return typesystem.TMap{Key: key, Value: elem(src, size)}
	}
}

func fixedListOf(elem sampling.Gen[typesystem.Type]) sampling.Gen[typesystem.Type] {
	return sampling.Map(sampling.ListOf(elem), func(ts []typesystem.Type) typesystem.Type {
		return typesystem.TFixedList{Elements: ts}
	})
}

func tupleOf(elem sampling.Gen[typesystem.Type]) sampling.Gen[typesystem.Type] {
	return sampling.Map(sampling.ListOfMax(elem, config.MaxTupleArity), func(ts []typesystem.Type) typesystem.Type {
		return typesystem.TTuple{Elements: ts}
	})
}
