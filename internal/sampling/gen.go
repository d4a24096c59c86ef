package sampling

import "github.com/funvibe/typegen/internal/config"

// Gen produces a T from a random source. size biases how large the
// result may be; generators never fail because of it.
type Gen[T any] func(src RandomSource, size int) T

// Constant always yields v.
func Constant[T any](v T) Gen[T] {
	return func(RandomSource, int) T { return v }
}

// Map transforms the output of g.
func Map[T, U any](g Gen[T], f func(T) U) Gen[U] {
	return func(src RandomSource, size int) U {
		return f(g(src, size))
	}
}

// Bind draws from g and feeds the result into f to choose the next
// generator, which runs at the same size.
func Bind[T, U any](g Gen[T], f func(T) Gen[U]) Gen[U] {
	return func(src RandomSource, size int) U {
		return f(g(src, size))(src, size)
	}
}

// OneOf picks uniformly among gens. It panics if gens is empty.
func OneOf[T any](gens ...Gen[T]) Gen[T] {
	if len(gens) == 0 {
		panic("sampling.OneOf: no generators")
	}
	return func(src RandomSource, size int) T {
		return gens[src.Intn(len(gens))](src, size)
	}
}

// Sized builds a generator from the current size.
func Sized[T any](f func(size int) Gen[T]) Gen[T] {
	return func(src RandomSource, size int) T {
		return f(size)(src, size)
	}
}

// Resize runs g at a fixed size.
func Resize[T any](g Gen[T], size int) Gen[T] {
	return func(src RandomSource, _ int) T {
		return g(src, size)
	}
}

// Scale runs g at f(size). Negative results are clamped to zero.
func Scale[T any](g Gen[T], f func(int) int) Gen[T] {
	return func(src RandomSource, size int) T {
		return g(src, max(f(size), 0))
	}
}

// Halve runs g at size/2 (integer division). This is the only decay
// applied when descending into nested structure.
func Halve[T any](g Gen[T]) Gen[T] {
	return Scale(g, func(size int) int { return size / 2 })
}

// Clamp limits size to [0, config.MaxSize].
func Clamp(size int) int {
	return min(max(size, 0), config.MaxSize)
}

// Bounded runs g with its size clamped, so nested halving starts from at
// most config.MaxSize.
func Bounded[T any](g Gen[T]) Gen[T] {
	return Scale(g, Clamp)
}

// Lazy defers building the generator until a value is drawn, so recursive
// definitions do not expand at construction time.
func Lazy[T any](f func() Gen[T]) Gen[T] {
	return func(src RandomSource, size int) T {
		return f()(src, size)
	}
}

// ListOf yields between 0 and size elements, at most config.MaxSize.
func ListOf[T any](g Gen[T]) Gen[[]T] {
	return func(src RandomSource, size int) []T {
		n := src.Intn(Clamp(size) + 1)
		return drawN(g, src, size, n)
	}
}

// ListOfMax yields between 0 and min(size, limit) elements.
func ListOfMax[T any](g Gen[T], limit int) Gen[[]T] {
	return func(src RandomSource, size int) []T {
		n := src.Intn(min(Clamp(size), limit) + 1)
		return drawN(g, src, size, n)
	}
}

// ListOfLength yields exactly n elements.
func ListOfLength[T any](g Gen[T], n int) Gen[[]T] {
	return func(src RandomSource, size int) []T {
		return drawN(g, src, size, n)
	}
}

func drawN[T any](g Gen[T], src RandomSource, size, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = g(src, size)
	}
	return out
}
