package sampling

const (
	atomHead = "abcdefghijklmnopqrstuvwxyz"
	atomTail = "abcdefghijklmnopqrstuvwxyz0123456789_"

	// maxAtomLength keeps atom names readable regardless of size.
	maxAtomLength = 12
)

// Int yields an integer in [-size, size], with size clamped to config.MaxSize.
func Int() Gen[int64] {
	return func(src RandomSource, size int) int64 {
		size = Clamp(size)
		return int64(src.Intn(2*size+1) - size)
	}
}

// Float yields a float in [-size, size).
func Float() Gen[float64] {
	return func(src RandomSource, size int) float64 {
		size = Clamp(size)
		if size == 0 {
			return 0
		}
		return (src.Float64()*2 - 1) * float64(size)
	}
}

// Bool yields true or false with equal probability.
func Bool() Gen[bool] {
	return func(src RandomSource, _ int) bool {
		return src.Intn(2) == 1
	}
}

// Atom yields a lowercase identifier of 1 to min(size, 12) characters.
func Atom() Gen[string] {
	return func(src RandomSource, size int) string {
		n := 1 + src.Intn(min(max(size, 1), maxAtomLength))
		buf := make([]byte, n)
		buf[0] = atomHead[src.Intn(len(atomHead))]
		for i := 1; i < n; i++ {
			buf[i] = atomTail[src.Intn(len(atomTail))]
		}
		return string(buf)
	}
}

// Byte yields any byte value.
func Byte() Gen[byte] {
	return func(src RandomSource, _ int) byte {
		return byte(src.Intn(256))
	}
}

// Bytes yields between 0 and size bytes.
func Bytes() Gen[[]byte] {
	return ListOf(Byte())
}

// BitString is a packed, MSB-first bit sequence of Length bits.
type BitString struct {
	Data   []byte
	Length int
}

// Bits yields a bit string of 0 to size bits.
func Bits() Gen[BitString] {
	return func(src RandomSource, size int) BitString {
		length := src.Intn(Clamp(size) + 1)
		data := drawN(Byte(), src, size, (length+7)/8)
		return BitString{Data: data, Length: length}
	}
}
