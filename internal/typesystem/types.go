package typesystem

import (
	"fmt"
	"strings"

	"github.com/funvibe/typegen/internal/config"
	"github.com/funvibe/typegen/internal/value"
)

// Type is the interface for all type descriptors.
// String describes the type; Check validates a value against it.
type Type interface {
	String() string
	Check(v value.Value) error
}

// TAny accepts every value.
type TAny struct{}

func (t TAny) String() string { return config.AnyTypeName }

func (t TAny) Check(v value.Value) error {
	if v == nil {
		return mismatch(t, v)
	}
	return nil
}

// TCon represents a primitive type constant (e.g. Int, Atom, Bits).
type TCon struct {
	Name string
}

var (
	Atom     = TCon{Name: config.AtomTypeName}
	Bytes    = TCon{Name: config.BytesTypeName}
	Bits     = TCon{Name: config.BitsTypeName}
	Bool     = TCon{Name: config.BoolTypeName}
	Float    = TCon{Name: config.FloatTypeName}
	Function = TCon{Name: config.FunctionTypeName}
	Int      = TCon{Name: config.IntTypeName}
	Number   = TCon{Name: config.NumberTypeName}
)

// Primitives returns the primitive catalogue, in config.PrimitiveTypeNames order.
func Primitives() []TCon {
	out := make([]TCon, len(config.PrimitiveTypeNames))
	for i, name := range config.PrimitiveTypeNames {
		out[i] = TCon{Name: name}
	}
	return out
}

func (t TCon) String() string { return t.Name }

func (t TCon) Check(v value.Value) error {
	if v == nil {
		return mismatch(t, v)
	}
	ok := false
	switch t.Name {
	case config.AtomTypeName:
		_, ok = v.(*value.Atom)
	case config.BytesTypeName:
		_, ok = v.(*value.Bytes)
	case config.BitsTypeName:
		// Every byte sequence is also a bit sequence.
		switch v.(type) {
		case *value.Bits, *value.Bytes:
			ok = true
		}
	case config.BoolTypeName:
		_, ok = v.(*value.Boolean)
	case config.FloatTypeName:
		_, ok = v.(*value.Float)
	case config.FunctionTypeName:
		_, ok = v.(*value.Function)
	case config.IntTypeName:
		_, ok = v.(*value.Integer)
	case config.NumberTypeName:
		switch v.(type) {
		case *value.Integer, *value.Float:
			ok = true
		}
	default:
		return NewUnknownTypeError(t.Name)
	}
	if !ok {
		return mismatch(t, v)
	}
	return nil
}

// TLiteral is a singleton type: exactly one value conforms to it.
type TLiteral struct {
	Value value.Value
}

func (t TLiteral) String() string { return t.Value.Inspect() }

func (t TLiteral) Check(v value.Value) error {
	if !value.Equal(t.Value, v) {
		return mismatch(t, v)
	}
	return nil
}

// TList represents a homogeneous list (e.g. List<Int>).
type TList struct {
	Elem Type
}

func (t TList) String() string {
	return fmt.Sprintf("%s<%s>", config.ListTypeName, t.Elem.String())
}

func (t TList) Check(v value.Value) error {
	l, ok := v.(*value.List)
	if !ok {
		return mismatch(t, v)
	}
	for i, el := range l.Elements {
		if err := t.Elem.Check(el); err != nil {
			return at(err, fmt.Sprintf("[%d]", i))
		}
	}
	return nil
}

// TMap represents a key/value map (e.g. Map<Atom, Int>).
type TMap struct {
	Key   Type
	Value Type
}

func (t TMap) String() string {
	return fmt.Sprintf("%s<%s, %s>", config.MapTypeName, t.Key.String(), t.Value.String())
}

func (t TMap) Check(v value.Value) error {
	m, ok := v.(*value.Map)
	if !ok {
		return mismatch(t, v)
	}
	for _, e := range m.Entries {
		if err := t.Key.Check(e.Key); err != nil {
			return at(err, "key "+e.Key.Inspect())
		}
		if err := t.Value.Check(e.Value); err != nil {
			return at(err, "["+e.Key.Inspect()+"]")
		}
	}
	return nil
}

// TFixedList is a list of known length whose elements each have their
// own type (e.g. [Int, Atom]).
type TFixedList struct {
	Elements []Type
}

func (t TFixedList) String() string {
	return "[" + joinTypes(t.Elements) + "]"
}

func (t TFixedList) Check(v value.Value) error {
	l, ok := v.(*value.List)
	if !ok || len(l.Elements) != len(t.Elements) {
		return mismatch(t, v)
	}
	return checkEach(t.Elements, l.Elements)
}

// TTuple represents a fixed-arity tuple type (e.g. (Int, Bool)).
type TTuple struct {
	Elements []Type
}

func (t TTuple) String() string {
	return "(" + joinTypes(t.Elements) + ")"
}

func (t TTuple) Check(v value.Value) error {
	tup, ok := v.(*value.Tuple)
	if !ok || len(tup.Elements) != len(t.Elements) {
		return mismatch(t, v)
	}
	return checkEach(t.Elements, tup.Elements)
}

func checkEach(types []Type, vals []value.Value) error {
	for i, el := range vals {
		if err := types[i].Check(el); err != nil {
			return at(err, fmt.Sprintf("[%d]", i))
		}
	}
	return nil
}

func joinTypes(types []Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
