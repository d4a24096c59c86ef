package derive

import (
	"github.com/funvibe/typegen/internal/config"
	"github.com/funvibe/typegen/internal/sampling"
	"github.com/funvibe/typegen/internal/typesystem"
	"github.com/funvibe/typegen/internal/value"
)

func IntValue() sampling.Gen[value.Value] {
	return sampling.Map(sampling.Int(), func(v int64) value.Value { return &value.Integer{Value: v} })
}

func FloatValue() sampling.Gen[value.Value] {
	return sampling.Map(sampling.Float(), func(v float64) value.Value { return &value.Float{Value: v} })
}

func BoolValue() sampling.Gen[value.Value] {
	return sampling.Map(sampling.Bool(), func(v bool) value.Value { return &value.Boolean{Value: v} })
}

func AtomValue() sampling.Gen[value.Value] {
	return sampling.Map(sampling.Atom(), func(v string) value.Value { return &value.Atom{Name: v} })
}

func BytesValue() sampling.Gen[value.Value] {
	return sampling.Map(sampling.Bytes(), func(v []byte) value.Value { return value.BytesFromSlice(v) })
}

func BitsValue() sampling.Gen[value.Value] {
	return sampling.Map(sampling.Bits(), func(v sampling.BitString) value.Value {
		return value.BitsFromBytes(v.Data, v.Length)
	})
}

// NumberValue yields an integer or a float with equal probability.
func NumberValue() sampling.Gen[value.Value] {
	return sampling.OneOf(IntValue(), FloatValue())
}

// FunctionValue yields a function of arity 0..MaxFunctionArity whose
// result is drawn from AnyValue at half size.
func FunctionValue() sampling.Gen[value.Value] {
	result := sampling.Halve(AnyValue())
	return func(src sampling.RandomSource, size int) value.Value {
		arity := src.Intn(config.MaxFunctionArity + 1)
		return &value.Function{Arity: arity, Result: result(src, size)}
	}
}

// AnyValue yields a scalar value of any primitive kind except Function.
// These are also the values literal types are built from.
func AnyValue() sampling.Gen[value.Value] {
	return sampling.OneOf(
		IntValue(),
		AtomValue(),
		BoolValue(),
		FloatValue(),
		BytesValue(),
		BitsValue(),
	)
}

func primitive(t typesystem.TCon) (sampling.Gen[value.Value], error) {
	switch t.Name {
	case config.AtomTypeName:
		return AtomValue(), nil
	case config.BytesTypeName:
		return BytesValue(), nil
	case config.BitsTypeName:
		return BitsValue(), nil
	case config.BoolTypeName:
		return BoolValue(), nil
	case config.FloatTypeName:
		return FloatValue(), nil
	case config.FunctionTypeName:
		return FunctionValue(), nil
	case config.IntTypeName:
		return IntValue(), nil
	case config.NumberTypeName:
		return NumberValue(), nil
	default:
		return nil, typesystem.NewUnknownTypeError(t.Name)
	}
}
