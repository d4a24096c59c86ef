package value

import "fmt"

// Function is a generated function sample: it accepts exactly Arity
// arguments and always returns Result.
type Function struct {
	Arity  int
	Result Value
}

func (f *Function) Type() ValueType { return FUNCTION_VAL }
func (f *Function) Inspect() string {
	return fmt.Sprintf("#Function<%d -> %s>", f.Arity, f.Result.Inspect())
}
func (f *Function) Hash() uint32 {
	return uint32(f.Arity)*31 + f.Result.Hash()
}

// ArityError is returned when a Function is called with the wrong number
// of arguments.
type ArityError struct {
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("function of arity %d called with %d arguments", e.Want, e.Got)
}

// Call applies the function.
func (f *Function) Call(args ...Value) (Value, error) {
	if len(args) != f.Arity {
		return nil, &ArityError{Want: f.Arity, Got: len(args)}
	}
	return f.Result, nil
}
