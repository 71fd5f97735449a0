package seeded

import (
	"fmt"
	"iter"
)

// Pair is the result of a [Tuple2] seed.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the result of a [Tuple3] seed.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple2 returns a Seed for a positional product of arity 2 where each
// position may need a different context and produce a different type: the
// caller constructs the two child seeds from whatever contexts the
// positions require. Positions are consumed strictly left to right.
//
// A source yielding fewer than 2 elements fails with a [LengthError];
// elements beyond the second are never pulled from the source.
func Tuple2[A, B any](first Seed[A], second Seed[B]) Seed[Pair[A, B]] {
	return SeedFunc[Pair[A, B]](func(source Source) (Pair[A, B], error) {
		var result Pair[A, B]

		elements, err := source.Iter()
		if err != nil {
			return result, shapeError("a tuple with 2 elements", err)
		}

		next, stop := iter.Pull(elements)
		defer stop()

		if result.First, err = tupleElement(next, 0, 2, first); err != nil {
			return Pair[A, B]{}, err
		}

		if result.Second, err = tupleElement(next, 1, 2, second); err != nil {
			return Pair[A, B]{}, err
		}

		return result, nil
	})
}

// Tuple3 is [Tuple2] for arity 3.
func Tuple3[A, B, C any](first Seed[A], second Seed[B], third Seed[C]) Seed[Triple[A, B, C]] {
	return SeedFunc[Triple[A, B, C]](func(source Source) (Triple[A, B, C], error) {
		var result Triple[A, B, C]

		elements, err := source.Iter()
		if err != nil {
			return result, shapeError("a tuple with 3 elements", err)
		}

		next, stop := iter.Pull(elements)
		defer stop()

		if result.First, err = tupleElement(next, 0, 3, first); err != nil {
			return Triple[A, B, C]{}, err
		}

		if result.Second, err = tupleElement(next, 1, 3, second); err != nil {
			return Triple[A, B, C]{}, err
		}

		if result.Third, err = tupleElement(next, 2, 3, third); err != nil {
			return Triple[A, B, C]{}, err
		}

		return result, nil
	})
}

// DependentTuple returns a Seed for a tuple with 2 elements whose second
// element can only be interpreted in the light of the first: it decodes the
// first element with the given seed, derives the seed for the second element
// from that value, and yields the second element only.
//
// The classic use is a length prefixed collection, where the decoded length
// becomes the capacity (or arity) of the collection seed:
//
//	seed := seeded.DependentTuple(seeded.Lift[int](), func(n int) seeded.Seed[[]int64] {
//	    return seeded.FixedSeq(struct{}{}, n, func(struct{}, int) seeded.Seed[int64] {
//	        return seeded.Lift[int64]()
//	    })
//	})
func DependentTuple[A, B any](first Seed[A], derive func(first A) Seed[B]) Seed[B] {
	return SeedFunc[B](func(source Source) (B, error) {
		var zero B

		elements, err := source.Iter()
		if err != nil {
			return zero, shapeError("a tuple with 2 elements", err)
		}

		next, stop := iter.Pull(elements)
		defer stop()

		firstValue, err := tupleElement(next, 0, 2, first)
		if err != nil {
			return zero, err
		}

		secondValue, err := tupleElement(next, 1, 2, derive(firstValue))
		if err != nil {
			return zero, err
		}

		return secondValue, nil
	})
}

func tupleElement[T any](next func() (Source, bool), idx, arity int, seed Seed[T]) (T, error) {
	elementSource, ok := next()
	if !ok {
		var zero T
		return zero, LengthError{Len: idx, Expected: arity}
	}

	element, err := seed.Deserialize(elementSource)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("element idx=%d: %w", idx, err)
	}

	return element, nil
}
