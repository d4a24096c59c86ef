// Package mutator perturbs generated values so the type checker can be
// exercised on inputs that sit just outside (or just inside) a type.
package mutator

import (
	"math/rand"

	"github.com/funvibe/typegen/internal/value"
)

// ValueMutator applies random mutations to a value.
// It is not safe for concurrent use.
type ValueMutator struct {
	rnd *rand.Rand
}

// New creates a new ValueMutator with the given seed.
func New(seed int64) *ValueMutator {
	return &ValueMutator{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Mutate returns a perturbed copy of v. The input is never modified:
// every changed level is rebuilt and unchanged children are shared.
func (m *ValueMutator) Mutate(v value.Value) value.Value {
	if v == nil {
		return m.atom()
	}
	// Occasionally replace a scalar outright
	if isScalar(v) && m.rnd.Float32() < 0.15 {
		return m.atom()
	}

	switch x := v.(type) {
	case *value.Boolean:
		return &value.Boolean{Value: !x.Value}
	case *value.Integer:
		return &value.Integer{Value: x.Value + m.delta()}
	case *value.Float:
		return &value.Float{Value: x.Value + float64(m.delta())/2}
	case *value.Atom:
		return m.mutateAtom(x)
	case *value.Bytes:
		return m.mutateBytes(x)
	case *value.Bits:
		if x.Len() == 0 {
			b, _ := value.BitsFromBinary("1")
			return b
		}
		return x.Flip(m.rnd.Intn(x.Len()))
	case *value.List:
		return &value.List{Elements: m.mutateList(x.Elements)}
	case *value.Tuple:
		return m.mutateTuple(x)
	case *value.Map:
		return m.mutateMap(x)
	case *value.Function:
		return &value.Function{Arity: x.Arity, Result: m.Mutate(x.Result)}
	}
	return v
}

func isScalar(v value.Value) bool {
	switch v.Type() {
	case value.BOOLEAN_VAL, value.INTEGER_VAL, value.FLOAT_VAL, value.BYTES_VAL, value.BITS_VAL:
		return true
	}
	return false
}

// delta is a nonzero nudge in [-10, 10].
func (m *ValueMutator) delta() int64 {
	d := m.rnd.Int63n(20) - 10
	if d >= 0 {
		d++
	}
	return d
}

func (m *ValueMutator) atom() value.Value {
	names := []string{"mutant", "error", "nil", "undefined"}
	return &value.Atom{Name: names[m.rnd.Intn(len(names))]}
}

func (m *ValueMutator) mutateAtom(a *value.Atom) value.Value {
	if a.Name == "" {
		return m.atom()
	}
	runes := []rune(a.Name)
	idx := m.rnd.Intn(len(runes))
	c := rune('a' + m.rnd.Intn(26))
	if c == runes[idx] {
		c = '_'
	}
	runes[idx] = c
	return &value.Atom{Name: string(runes)}
}

func (m *ValueMutator) mutateBytes(b *value.Bytes) value.Value {
	data := append([]byte(nil), b.ToSlice()...)
	if len(data) == 0 {
		return value.BytesFromSlice([]byte{byte(m.rnd.Intn(256))})
	}
	idx := m.rnd.Intn(len(data))
	data[idx] ^= byte(1 + m.rnd.Intn(255))
	return value.BytesFromSlice(data)
}

// mutateList returns a copy of elems with one position changed.
func (m *ValueMutator) mutateList(elems []value.Value) []value.Value {
	if len(elems) == 0 {
		return []value.Value{m.atom()}
	}
	idx := m.rnd.Intn(len(elems))
	out := make([]value.Value, 0, len(elems)+1)

	r := m.rnd.Float32()
	switch {
	case r < 0.3:
		out = append(out, elems[:idx]...)
		out = append(out, elems[idx+1:]...)
	case r < 0.6:
		out = append(out, elems[:idx+1]...)
		out = append(out, elems[idx:]...)
	default:
		out = append(out, elems...)
		out[idx] = m.Mutate(elems[idx])
	}
	return out
}

// mutateTuple keeps the arity and replaces one element.
func (m *ValueMutator) mutateTuple(t *value.Tuple) value.Value {
	if len(t.Elements) == 0 {
		return &value.Tuple{Elements: []value.Value{m.atom()}}
	}
	out := append([]value.Value(nil), t.Elements...)
	idx := m.rnd.Intn(len(out))
	out[idx] = m.Mutate(out[idx])
	return &value.Tuple{Elements: out}
}

func (m *ValueMutator) mutateMap(mp *value.Map) value.Value {
	if mp.Len() == 0 {
		return value.NewMap([]value.MapEntry{{Key: m.atom(), Value: m.atom()}})
	}
	entries := append([]value.MapEntry(nil), mp.Entries...)
	idx := m.rnd.Intn(len(entries))
	if m.rnd.Float32() < 0.3 {
		entries = append(entries[:idx], entries[idx+1:]...)
	} else {
		entries[idx].Value = m.Mutate(entries[idx].Value)
	}
	return value.NewMap(entries)
}
