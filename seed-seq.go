package seeded

import (
	"fmt"
	"iter"
)

// Seq returns a Seed for a variable length sequence whose elements need a
// context derived from ctx and their index. rule is the child derivation
// rule: it is invoked exactly once per element, with indices 0, 1, 2, ...
// in strictly increasing order, and must return the seed for that element.
// For homogeneous sequences the rule commonly ignores the index and closes
// over ctx alone.
//
// If the source implements [SizedSource], the element count is used as a
// capacity hint for the result slice. The hint is advisory: the sequence
// may yield any number of elements regardless.
//
// The first failing element aborts the whole sequence with its index
// attached to the error.
func Seq[C, T any](ctx C, rule func(ctx C, index int) Seed[T]) Seed[[]T] {
	return SeedFunc[[]T](func(source Source) ([]T, error) {
		elements, err := source.Iter()
		if err != nil {
			return nil, shapeError("a sequence of elements", err)
		}

		var result []T
		if sized, ok := source.(SizedSource); ok {
			if n, err := sized.Len(); err == nil {
				result = make([]T, 0, n)
			}
		}

		idx := 0
		for elementSource := range elements {
			element, err := rule(ctx, idx).Deserialize(elementSource)
			if err != nil {
				return nil, fmt.Errorf("element idx=%d: %w", idx, err)
			}

			result = append(result, element)
			idx++
		}

		return result, nil
	})
}

// FixedSeq is the fixed arity variant of [Seq]: it consumes exactly arity
// elements and fails with a [LengthError] if the source yields fewer.
// Elements beyond the arity are never pulled from the source. Use it for
// homogeneous tuples; for heterogeneous ones see [Tuple2] and [Tuple3].
func FixedSeq[C, T any](ctx C, arity int, rule func(ctx C, index int) Seed[T]) Seed[[]T] {
	return SeedFunc[[]T](func(source Source) ([]T, error) {
		elements, err := source.Iter()
		if err != nil {
			return nil, shapeError(fmt.Sprintf("a sequence of %d elements", arity), err)
		}

		next, stop := iter.Pull(elements)
		defer stop()

		result := make([]T, 0, arity)

		for idx := 0; idx < arity; idx++ {
			elementSource, ok := next()
			if !ok {
				return nil, LengthError{Len: idx, Expected: arity}
			}

			element, err := rule(ctx, idx).Deserialize(elementSource)
			if err != nil {
				return nil, fmt.Errorf("element idx=%d: %w", idx, err)
			}

			result = append(result, element)
		}

		return result, nil
	})
}
