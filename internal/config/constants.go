package config

// ConfigFileNames are the recognized run configuration file names,
// searched in order in each directory.
var ConfigFileNames = []string{"typegen.yaml", "typegen.yml"}

// Built-in type names
const (
	AnyTypeName       = "Any"
	AtomTypeName      = "Atom"
	BytesTypeName     = "Bytes"
	BitsTypeName      = "Bits"
	BoolTypeName      = "Bool"
	FloatTypeName     = "Float"
	FunctionTypeName  = "Function"
	IntTypeName       = "Int"
	NumberTypeName    = "Number"
	ListTypeName      = "List"
	MapTypeName       = "Map"
	FixedListTypeName = "FixedList"
	TupleTypeName     = "Tuple"
)

// PrimitiveTypeNames lists the primitive catalogue in generation order.
// Any is handled separately by the type system (it is not a TCon).
var PrimitiveTypeNames = []string{
	AtomTypeName,
	BytesTypeName,
	BitsTypeName,
	BoolTypeName,
	FloatTypeName,
	FunctionTypeName,
	IntTypeName,
	NumberTypeName,
}

// Generation limits
const (
	// MaxTupleArity is the largest tuple the generators will build.
	MaxTupleArity = 255

	// MaxFunctionArity bounds the arity of generated function samples.
	MaxFunctionArity = 2

	// DefaultSize is the size budget used when none is given.
	DefaultSize = 30

	// MaxSize is the largest size budget generators act on. Larger
	// budgets are clamped to it.
	MaxSize = 1 << 10

	// TerminalSize is the budget at or below which only non-composite
	// types are generated.
	TerminalSize = 1

	// DefaultCount is the number of pairs the CLI prints by default.
	DefaultCount = 10
)

// Output formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
)
