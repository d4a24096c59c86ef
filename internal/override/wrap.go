package override

import (
	"fmt"
	"reflect"

	"github.com/funvibe/typegen/internal/sampling"
	"github.com/funvibe/typegen/internal/typesystem"
	"github.com/funvibe/typegen/internal/value"
)

// InvalidArityError is returned by Wrap when the generator function does
// not take exactly 0 or 1 arguments.
type InvalidArityError struct {
	Arity    int
	Variadic bool
}

func (e *InvalidArityError) Error() string {
	if e.Variadic {
		return fmt.Sprintf("generator function must take 0 or 1 arguments, got variadic function with %d parameters", e.Arity)
	}
	return fmt.Sprintf("generator function must take 0 or 1 arguments, got %d", e.Arity)
}

// SignatureError is returned by Wrap when fn has an acceptable arity but
// its parameter or result types cannot carry a value.Value.
type SignatureError struct {
	Func   string
	Reason string
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("invalid generator %s: %s", e.Func, e.Reason)
}

var valueType = reflect.TypeOf((*value.Value)(nil)).Elem()

// Wrap attaches fn to t, inspecting fn's shape at runtime.
//
// Accepted shapes are a GeneratorFunc, a sampling.Gen[value.Value], or any
// func with zero or one parameter and a single result implementing
// value.Value. A one-parameter func must accept value.Value.
func Wrap(t typesystem.Type, fn any) (*Override, error) {
	if f, ok := fn.(GeneratorFunc); ok {
		if f.isZero() {
			return nil, &SignatureError{Func: "GeneratorFunc", Reason: "no function set"}
		}
		return New(t, f), nil
	}

	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, &SignatureError{Func: fmt.Sprintf("%T", fn), Reason: "not a function"}
	}

	switch f := fn.(type) {
	case sampling.Gen[value.Value]:
		return New(t, FromGen(f)), nil
	case func() value.Value:
		return New(t, NoArg(f)), nil
	case func(value.Value) value.Value:
		return New(t, WithDefault(f)), nil
	}

	ft := rv.Type()

	if ft.IsVariadic() {
		return nil, &InvalidArityError{Arity: ft.NumIn(), Variadic: true}
	}
	if n := ft.NumIn(); n > 1 {
		return nil, &InvalidArityError{Arity: n}
	}
	if ft.NumOut() != 1 || !ft.Out(0).Implements(valueType) {
		return nil, &SignatureError{Func: ft.String(), Reason: "must return exactly one value.Value"}
	}

	if ft.NumIn() == 0 {
		return New(t, NoArg(func() value.Value {
			return resultOf(rv.Call(nil))
		})), nil
	}

	param := ft.In(0)
	if !valueType.AssignableTo(param) {
		return nil, &SignatureError{Func: ft.String(), Reason: "parameter must accept value.Value"}
	}
	return New(t, WithDefault(func(v value.Value) value.Value {
		arg := reflect.New(param).Elem()
		if v != nil {
			arg.Set(reflect.ValueOf(v))
		}
		return resultOf(rv.Call([]reflect.Value{arg}))
	})), nil
}

func resultOf(out []reflect.Value) value.Value {
	v, _ := out[0].Interface().(value.Value)
	return v
}
