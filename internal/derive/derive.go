// Package derive builds the default sample generator for a type descriptor.
//
// Composite descriptors recurse into their element types at half the
// current size. Descriptors implementing Custom replace or post-process
// the default generator.
package derive

import (
	"fmt"

	"github.com/funvibe/typegen/internal/config"
	"github.com/funvibe/typegen/internal/sampling"
	"github.com/funvibe/typegen/internal/typesystem"
	"github.com/funvibe/typegen/internal/value"
)

// Custom is implemented by descriptors that carry their own generator.
// Generator receives the default generator of Underlying() and returns the
// generator to use instead. When UsesDefault reports false the default is
// never derived and Generator receives a nil fallback.
type Custom interface {
	typesystem.Type
	Underlying() typesystem.Type
	UsesDefault() bool
	Generator(fallback sampling.Gen[value.Value]) sampling.Gen[value.Value]
}

// UnsupportedTypeError is returned for descriptors derive cannot generate.
type UnsupportedTypeError struct {
	Type typesystem.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("cannot derive a generator for %T (%s)", e.Type, e.Type)
}

// Sample draws one default sample of t.
func Sample(t typesystem.Type, src sampling.RandomSource, size int) (value.Value, error) {
	if err := sampling.Ensure(); err != nil {
		return nil, err
	}
	g, err := Gen(t)
	if err != nil {
		return nil, err
	}
	return g(src, size), nil
}

// Gen returns the generator for t. The generator is built eagerly so that
// descriptor errors surface here rather than mid-draw. Sizes above
// config.MaxSize are clamped.
func Gen(t typesystem.Type) (sampling.Gen[value.Value], error) {
	g, err := build(t)
	if err != nil {
		return nil, err
	}
	return sampling.Bounded(g), nil
}

func build(t typesystem.Type) (sampling.Gen[value.Value], error) {
	switch typ := t.(type) {
	case Custom:
		if !typ.UsesDefault() {
			return typ.Generator(nil), nil
		}
		fallback, err := Gen(typ.Underlying())
		if err != nil {
			return nil, fmt.Errorf("deriving fallback for %s: %w", typ, err)
		}
		return typ.Generator(fallback), nil

	case typesystem.TAny:
		return AnyValue(), nil

	case typesystem.TCon:
		return primitive(typ)

	case typesystem.TLiteral:
		return sampling.Constant(typ.Value), nil

	case typesystem.TList:
		elem, err := nested(typ.Elem)
		if err != nil {
			return nil, err
		}
		return sampling.Map(sampling.ListOf(elem), toList), nil

	case typesystem.TMap:
		key, err := nested(typ.Key)
		if err != nil {
			return nil, err
		}
		val, err := nested(typ.Value)
		if err != nil {
			return nil, err
		}
		var entry sampling.Gen[value.MapEntry] = func(src sampling.RandomSource, size int) value.MapEntry {
			return value.MapEntry{Key: key(src, size), Value: val(src, size)}
		}
		return sampling.Map(sampling.ListOf(entry), func(es []value.MapEntry) value.Value {
			return value.NewMap(es)
		}), nil

	case typesystem.TFixedList:
		elems, err := nestedAll(typ.Elements)
		if err != nil {
			return nil, err
		}
		return sampling.Map(sequence(elems), toList), nil

	case typesystem.TTuple:
		if len(typ.Elements) > config.MaxTupleArity {
			return nil, fmt.Errorf("tuple of %d elements exceeds the maximum arity %d", len(typ.Elements), config.MaxTupleArity)
		}
		elems, err := nestedAll(typ.Elements)
		if err != nil {
			return nil, err
		}
		return sampling.Map(sequence(elems), func(vs []value.Value) value.Value {
			return &value.Tuple{Elements: vs}
		}), nil

	default:
		return nil, &UnsupportedTypeError{Type: t}
	}
}

// nested derives an element generator one level down: at half size.
func nested(t typesystem.Type) (sampling.Gen[value.Value], error) {
	g, err := Gen(t)
	if err != nil {
		return nil, err
	}
	return sampling.Halve(g), nil
}

func nestedAll(types []typesystem.Type) ([]sampling.Gen[value.Value], error) {
	gens := make([]sampling.Gen[value.Value], len(types))
	for i, t := range types {
		g, err := nested(t)
		if err != nil {
			return nil, err
		}
		gens[i] = g
	}
	return gens, nil
}

// sequence draws one value from each generator, in order.
func sequence(gens []sampling.Gen[value.Value]) sampling.Gen[[]value.Value] {
	return func(src sampling.RandomSource, size int) []value.Value {
		out := make([]value.Value, len(gens))
		for i, g := range gens {
			out[i] = g(src, size)
		}
		return out
	}
}

func toList(vs []value.Value) value.Value {
	return &value.List{Elements: vs}
}
