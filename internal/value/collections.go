package value

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"strings"
)

// Tuple is a fixed-arity sequence of values.
type Tuple struct {
	Elements []Value
}

func (t *Tuple) Type() ValueType { return TUPLE_VAL }
func (t *Tuple) Inspect() string {
	return "{" + inspectAll(t.Elements) + "}"
}
func (t *Tuple) Hash() uint32 {
	var h uint32 = 7
	for _, el := range t.Elements {
		h = 31*h + el.Hash()
	}
	return h
}

// List is an ordered sequence of values.
type List struct {
	Elements []Value
}

func (l *List) Type() ValueType { return LIST_VAL }
func (l *List) Len() int        { return len(l.Elements) }
func (l *List) Inspect() string {
	return "[" + inspectAll(l.Elements) + "]"
}
func (l *List) Hash() uint32 {
	var h uint32 = 11
	for _, el := range l.Elements {
		h = 31*h + el.Hash()
	}
	return h
}

func inspectAll(vals []Value) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.Inspect()
	}
	return strings.Join(parts, ", ")
}

// MapEntry is a single key/value pair of a Map.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is an immutable key/value collection.
// Entries keep insertion order so rendering is deterministic.
type Map struct {
	Entries []MapEntry
}

// NewMap builds a Map from entries. A key that appears more than once keeps
// its first position and its last value.
func NewMap(entries []MapEntry) *Map {
	m := &Map{Entries: make([]MapEntry, 0, len(entries))}
	for _, e := range entries {
		m.put(e.Key, e.Value)
	}
	return m
}

func (m *Map) put(key, val Value) {
	for i := range m.Entries {
		if Equal(m.Entries[i].Key, key) {
			m.Entries[i].Value = val
			return
		}
	}
	m.Entries = append(m.Entries, MapEntry{Key: key, Value: val})
}

// Get returns the value stored for key.
func (m *Map) Get(key Value) (Value, bool) {
	for _, e := range m.Entries {
		if Equal(e.Key, key) {
			return e.Value, true
		}
	}
	return nil, false
}

func (m *Map) Type() ValueType { return MAP_VAL }
func (m *Map) Len() int        { return len(m.Entries) }
func (m *Map) Inspect() string {
	parts := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		parts[i] = fmt.Sprintf("%s => %s", e.Key.Inspect(), e.Value.Inspect())
	}
	return "%{" + strings.Join(parts, ", ") + "}"
}

// Hash is order-independent: two maps with the same entries hash equally.
func (m *Map) Hash() uint32 {
	var h uint32
	for _, e := range m.Entries {
		h ^= (e.Key.Hash() ^ (e.Value.Hash() * 31))
	}
	return h
}

// Bytes represents an immutable byte sequence
type Bytes struct {
	data []byte
}

// BytesFromSlice creates Bytes from a copy of data.
func BytesFromSlice(data []byte) *Bytes {
	copied := make([]byte, len(data))
	copy(copied, data)
	return &Bytes{data: copied}
}

func (b *Bytes) Type() ValueType { return BYTES_VAL }

func (b *Bytes) Len() int {
	return len(b.data)
}

// ToSlice returns the underlying byte slice (should not be mutated)
func (b *Bytes) ToSlice() []byte {
	return b.data
}

func (b *Bytes) equals(other *Bytes) bool {
	return bytes.Equal(b.data, other.data)
}

func (b *Bytes) Inspect() string {
	// Printable data is shown as @"...", anything else as @x"..."
	allPrintable := true
	for _, c := range b.data {
		if c < 32 || c > 126 || c == '"' || c == '\\' {
			allPrintable = false
			break
		}
	}
	if allPrintable && len(b.data) < 100 {
		return "@\"" + string(b.data) + "\""
	}
	return "@x\"" + hex.EncodeToString(b.data) + "\""
}

func (b *Bytes) Hash() uint32 {
	h := fnv.New32a()
	h.Write(b.data)
	return h.Sum32()
}

// Bits represents an immutable sequence of bits.
// Unlike Bytes, Bits can have any length (not necessarily multiple of 8).
type Bits struct {
	data   []byte // Stores bits packed in bytes, MSB first
	length int    // Number of valid bits (may be less than len(data)*8)
}

// BitsFromBinary creates Bits from a binary string like "10101010"
func BitsFromBinary(s string) (*Bits, error) {
	for _, c := range s {
		if c != '0' && c != '1' {
			return nil, fmt.Errorf("invalid binary character: %c", c)
		}
	}

	numBits := len(s)
	data := make([]byte, (numBits+7)/8)
	for i, c := range s {
		if c == '1' {
			data[i/8] |= 1 << (7 - (i % 8))
		}
	}
	return &Bits{data: data, length: numBits}, nil
}

// BitsFromBytes creates Bits holding the first length bits of data.
// Bits past length in the final byte are cleared.
func BitsFromBytes(data []byte, length int) *Bits {
	if length < 0 {
		length = 0
	}
	if length > len(data)*8 {
		length = len(data) * 8
	}
	copied := make([]byte, (length+7)/8)
	copy(copied, data)
	if rem := length % 8; rem != 0 {
		copied[len(copied)-1] &= byte(0xFF << (8 - rem))
	}
	return &Bits{data: copied, length: length}
}

func (b *Bits) Type() ValueType { return BITS_VAL }

// Len returns the number of bits
func (b *Bits) Len() int {
	return b.length
}

// Get returns the bit at index i (0 or 1), or -1 if out of bounds
func (b *Bits) Get(i int) int {
	if i < 0 || i >= b.length {
		return -1
	}
	if (b.data[i/8] & (1 << (7 - (i % 8)))) != 0 {
		return 1
	}
	return 0
}

// Flip returns a copy of b with bit i inverted.
func (b *Bits) Flip(i int) *Bits {
	out := BitsFromBytes(b.data, b.length)
	if i >= 0 && i < b.length {
		out.data[i/8] ^= 1 << (7 - (i % 8))
	}
	return out
}

func (b *Bits) equals(other *Bits) bool {
	return b.length == other.length && bytes.Equal(b.data, other.data)
}

func (b *Bits) toBinary() string {
	var sb strings.Builder
	sb.Grow(b.length)
	for i := 0; i < b.length; i++ {
		if b.Get(i) == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (b *Bits) Inspect() string {
	return "#b\"" + b.toBinary() + "\""
}

func (b *Bits) Hash() uint32 {
	h := fnv.New32a()
	h.Write(b.data)
	return h.Sum32() ^ uint32(b.length)
}
