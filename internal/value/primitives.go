package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Boolean
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ValueType { return BOOLEAN_VAL }
func (b *Boolean) Inspect() string { return strconv.FormatBool(b.Value) }
func (b *Boolean) Hash() uint32 {
	if b.Value {
		return 1
	}
	return 0
}

// Integer
type Integer struct {
	Value int64
}

func (i *Integer) Type() ValueType { return INTEGER_VAL }
func (i *Integer) Inspect() string { return strconv.FormatInt(i.Value, 10) }
func (i *Integer) Hash() uint32 {
	return uint32(i.Value ^ (i.Value >> 32))
}

// Float
type Float struct {
	Value float64
}

func (f *Float) Type() ValueType { return FLOAT_VAL }

// Inspect always keeps a decimal point so floats and integers render
// differently (1.0 vs 1).
func (f *Float) Inspect() string {
	s := strconv.FormatFloat(f.Value, 'g', -1, 64)
	if !math.IsInf(f.Value, 0) && !math.IsNaN(f.Value) && !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (f *Float) Hash() uint32 {
	bits := math.Float64bits(f.Value)
	return uint32(bits ^ (bits >> 32))
}

// Atom is a named constant symbol, rendered as :name.
type Atom struct {
	Name string
}

func (a *Atom) Type() ValueType { return ATOM_VAL }
func (a *Atom) Inspect() string { return fmt.Sprintf(":%s", a.Name) }
func (a *Atom) Hash() uint32    { return hashString(":" + a.Name) }
