package value

// Equal reports whether a and b are structurally equal.
// Integers and floats are never equal to each other.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	switch x := a.(type) {
	case *Integer:
		return x.Value == b.(*Integer).Value
	case *Float:
		return x.Value == b.(*Float).Value
	case *Boolean:
		return x.Value == b.(*Boolean).Value
	case *Atom:
		return x.Name == b.(*Atom).Name
	case *Bytes:
		return x.equals(b.(*Bytes))
	case *Bits:
		return x.equals(b.(*Bits))
	case *List:
		return equalSlices(x.Elements, b.(*List).Elements)
	case *Tuple:
		return equalSlices(x.Elements, b.(*Tuple).Elements)
	case *Map:
		y := b.(*Map)
		if len(x.Entries) != len(y.Entries) {
			return false
		}
		for _, e := range x.Entries {
			other, ok := y.Get(e.Key)
			if !ok || !Equal(e.Value, other) {
				return false
			}
		}
		return true
	case *Function:
		y := b.(*Function)
		return x.Arity == y.Arity && Equal(x.Result, y.Result)
	default:
		return a == b
	}
}

func equalSlices(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
