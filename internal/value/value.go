// Package value defines the concrete sample values produced by the
// generators and consumed by type descriptor checks.
package value

import (
	"hash/fnv"
)

type ValueType string

const (
	INTEGER_VAL  = "INTEGER"
	FLOAT_VAL    = "FLOAT"
	BOOLEAN_VAL  = "BOOLEAN"
	ATOM_VAL     = "ATOM"
	BYTES_VAL    = "BYTES"    // Byte sequence
	BITS_VAL     = "BITS"     // Bit sequence, any length
	LIST_VAL     = "LIST"     // Ordered, homogeneous or not
	MAP_VAL      = "MAP"      // Insertion-ordered key/value pairs
	TUPLE_VAL    = "TUPLE"    // Fixed arity
	FUNCTION_VAL = "FUNCTION" // Constant-result function
)

// Value is a generated sample. Values are immutable once built.
type Value interface {
	Type() ValueType
	Inspect() string
	Hash() uint32
}

// Helper for hashing strings
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
