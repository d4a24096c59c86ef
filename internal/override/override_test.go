//go:build !nosampling

package override

import (
	"errors"
	"testing"

	"github.com/funvibe/typegen/internal/derive"
	"github.com/funvibe/typegen/internal/sampling"
	"github.com/funvibe/typegen/internal/typesystem"
	"github.com/funvibe/typegen/internal/value"
)

func fortyTwo() value.Value { return &value.Integer{Value: 42} }

// tripwire wraps t with a generator that records whether it was ever drawn.
func tripwire(t typesystem.Type, drawn *bool) *Override {
	return New(t, FromGen(func(sampling.RandomSource, int) value.Value {
		*drawn = true
		return &value.Atom{Name: "tripped"}
	}))
}

func TestNoArg_ReplacesDefault(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		o := New(typesystem.Int, NoArg(fortyTwo))
		got, err := o.Sample(sampling.NewRandSource(seed), 30)
		if err != nil {
			t.Fatalf("seed %d: Sample: %v", seed, err)
		}
		if !value.Equal(got, fortyTwo()) {
			t.Fatalf("seed %d: Sample() = %s, want 42", seed, got.Inspect())
		}
	}
}

func TestNoArg_NeverDrawsDefault(t *testing.T) {
	drawn := false
	inner := tripwire(typesystem.TList{Elem: typesystem.Int}, &drawn)

	for _, fn := range []GeneratorFunc{
		NoArg(fortyTwo),
		FromGen(sampling.Constant[value.Value](&value.Atom{Name: "replaced"})),
	} {
		o := New(inner, fn)
		if o.Func().Arity() != 0 {
			t.Fatalf("Arity() = %d, want 0", o.Func().Arity())
		}
		if _, err := o.Sample(sampling.NewRandSource(1), 50); err != nil {
			t.Fatalf("Sample: %v", err)
		}
	}
	if drawn {
		t.Error("zero-arity override drew from the default generator")
	}
}

// undrivable has no default generator.
type undrivable struct{}

func (undrivable) String() string            { return "Undrivable" }
func (undrivable) Check(v value.Value) error { return nil }

func TestNoArg_NeverBuildsDefault(t *testing.T) {
	o := New(undrivable{}, NoArg(fortyTwo))
	got, err := o.Sample(sampling.NewRandSource(3), 10)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if !value.Equal(got, fortyTwo()) {
		t.Errorf("Sample() = %s, want 42", got.Inspect())
	}

	// A one-arity override does need the default.
	_, err = New(undrivable{}, WithDefault(func(v value.Value) value.Value { return v })).Sample(sampling.NewRandSource(3), 10)
	var unsupported *derive.UnsupportedTypeError
	if !errors.As(err, &unsupported) {
		t.Errorf("Sample() error = %v, want UnsupportedTypeError", err)
	}
}

func TestWithDefault_PostProcessesDefault(t *testing.T) {
	double := func(v value.Value) value.Value {
		return &value.Integer{Value: v.(*value.Integer).Value * 2}
	}
	o := New(typesystem.Int, WithDefault(double))
	if o.Func().Arity() != 1 {
		t.Fatalf("Arity() = %d, want 1", o.Func().Arity())
	}

	for seed := int64(0); seed < 25; seed++ {
		got, err := o.Sample(sampling.NewRandSource(seed), 30)
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		def, err := derive.Sample(typesystem.Int, sampling.NewRandSource(seed), 30)
		if err != nil {
			t.Fatalf("derive.Sample: %v", err)
		}
		if want := double(def); !value.Equal(got, want) {
			t.Fatalf("seed %d: Sample() = %s, want %s", seed, got.Inspect(), want.Inspect())
		}
	}
}

func TestZeroGeneratorFunc_IsIdentity(t *testing.T) {
	for name, fn := range map[string]GeneratorFunc{
		"zero":             {},
		"nil no-arg":       NoArg(nil),
		"nil gen":          FromGen(nil),
		"nil with-default": WithDefault(nil),
	} {
		if fn.Arity() != 1 {
			t.Errorf("%s: Arity() = %d, want 1", name, fn.Arity())
		}
		o := New(typesystem.TList{Elem: typesystem.Int}, fn)
		if !o.UsesDefault() {
			t.Errorf("%s: UsesDefault() = false", name)
		}
		got, err := o.Sample(sampling.NewRandSource(12), 20)
		if err != nil {
			t.Fatalf("%s: Sample: %v", name, err)
		}
		want, _ := derive.Sample(typesystem.TList{Elem: typesystem.Int}, sampling.NewRandSource(12), 20)
		if !value.Equal(got, want) {
			t.Errorf("%s: Sample() = %s, want default %s", name, got.Inspect(), want.Inspect())
		}
	}
}

func TestWithDefault_Stacks(t *testing.T) {
	inner := New(typesystem.Int, NoArg(fortyTwo))
	outer := New(inner, WithDefault(func(v value.Value) value.Value {
		return &value.Tuple{Elements: []value.Value{v, v}}
	}))

	got, err := outer.Sample(sampling.NewRandSource(3), 10)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if got.Inspect() != "{42, 42}" {
		t.Errorf("Sample() = %s, want {42, 42}", got.Inspect())
	}
}

func TestDelegation(t *testing.T) {
	base := typesystem.TMap{Key: typesystem.Atom, Value: typesystem.Int}
	o := New(base, NoArg(func() value.Value { return &value.Atom{Name: "not a map"} }))

	if o.String() != base.String() {
		t.Errorf("String() = %s, want %s", o.String(), base.String())
	}
	if o.Underlying() != typesystem.Type(base) {
		t.Errorf("Underlying() did not return the wrapped descriptor")
	}

	good := value.NewMap([]value.MapEntry{{Key: &value.Atom{Name: "a"}, Value: &value.Integer{Value: 1}}})
	if err := o.Check(good); err != nil {
		t.Errorf("Check(good) = %v", err)
	}
	// The override's own samples are not special-cased by Check.
	sample, _ := o.Sample(sampling.NewRandSource(0), 5)
	if err := o.Check(sample); err == nil {
		t.Errorf("Check should still validate against the wrapped type")
	}
}

func TestWrap_Shapes(t *testing.T) {
	tests := []struct {
		name      string
		fn        any
		wantArity int
		want      string
	}{
		{"typed no-arg", func() value.Value { return fortyTwo() }, 0, "42"},
		{"concrete result", func() *value.Atom { return &value.Atom{Name: "x"} }, 0, ":x"},
		{"gen", sampling.Gen[value.Value](sampling.Constant[value.Value](&value.Boolean{Value: true})), 0, "true"},
		{"generator func", NoArg(fortyTwo), 0, "42"},
		{"typed with-default", func(v value.Value) value.Value { return &value.Tuple{Elements: []value.Value{v}} }, 1, "{42}"},
		{"any parameter", func(v any) value.Value { return &value.List{Elements: []value.Value{v.(value.Value)}} }, 1, "[42]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := New(typesystem.Int, NoArg(fortyTwo))
			o, err := Wrap(base, tt.fn)
			if err != nil {
				t.Fatalf("Wrap: %v", err)
			}
			if o.Func().Arity() != tt.wantArity {
				t.Errorf("Arity() = %d, want %d", o.Func().Arity(), tt.wantArity)
			}
			got, err := o.Sample(sampling.NewRandSource(0), 10)
			if err != nil {
				t.Fatalf("Sample: %v", err)
			}
			if got.Inspect() != tt.want {
				t.Errorf("Sample() = %s, want %s", got.Inspect(), tt.want)
			}
		})
	}
}

func TestWrap_InvalidArity(t *testing.T) {
	tests := []struct {
		name      string
		fn        any
		wantArity int
	}{
		{"two", func(a, b value.Value) value.Value { return a }, 2},
		{"three", func(a, b, c value.Value) value.Value { return a }, 3},
		{"variadic", func(vs ...value.Value) value.Value { return nil }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Wrap(typesystem.Int, tt.fn)
			var arityErr *InvalidArityError
			if !errors.As(err, &arityErr) {
				t.Fatalf("Wrap() error = %v, want InvalidArityError", err)
			}
			if arityErr.Arity != tt.wantArity {
				t.Errorf("Arity = %d, want %d", arityErr.Arity, tt.wantArity)
			}
		})
	}
}

func TestWrap_BadSignature(t *testing.T) {
	tests := []struct {
		name string
		fn   any
	}{
		{"not a func", 42},
		{"nil", nil},
		{"nil func", (func() value.Value)(nil)},
		{"no result", func() {}},
		{"two results", func() (value.Value, error) { return nil, nil }},
		{"non-value result", func() int { return 1 }},
		{"narrow parameter", func(v *value.Integer) value.Value { return v }},
		{"zero generator func", GeneratorFunc{}},
		{"nil no-arg", NoArg(nil)},
		{"nil with-default", WithDefault(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Wrap(typesystem.Int, tt.fn)
			var sigErr *SignatureError
			if !errors.As(err, &sigErr) {
				t.Fatalf("Wrap() error = %v, want SignatureError", err)
			}
		})
	}
}
