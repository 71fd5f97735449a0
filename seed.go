package seeded

import (
	"errors"
	"fmt"
)

// A Seed couples a caller supplied context with a rule that consumes a
// [Source] and produces a value of type T. It is the unit of composition of
// this package: container combinators like [Seq], [Map] or [Option] accept
// child seeds (or rules deriving child seeds) and invoke them once per
// nested element.
//
// A Seed is one-shot. A [Source] is in general a cursor without random
// access, so Deserialize consumes it; invoking the same seed a second time,
// or after a failure, is undefined. Combinators in this package keep all
// per-invocation state local to Deserialize, so the restriction comes from
// the source, never from the seed itself.
type Seed[T any] interface {
	// Deserialize consumes the source and produces the value, or the first
	// error encountered in depth first order. No partial value is returned
	// on error.
	Deserialize(source Source) (T, error)
}

// SeedFunc adapts an ordinary function to a [Seed].
type SeedFunc[T any] func(Source) (T, error)

func (f SeedFunc[T]) Deserialize(source Source) (T, error) {
	return f(source)
}

// Lift returns a Seed for a self-contained value of type T. The returned
// seed carries no context: it delegates to the reflection based default
// [Decoder]. Lift is the base case that embeds context free leaf types
// (numbers, strings, plain structs) into a context threading seed tree.
func Lift[T any]() Seed[T] {
	return SeedFunc[T](UnmarshalNew[T])
}

// LiftWith is [Lift] with a custom [Decoder].
func LiftWith[T any](dec *Decoder) Seed[T] {
	return SeedFunc[T](func(source Source) (T, error) {
		return UnmarshalNewWith[T](dec, source)
	})
}

// ShapeError reports that the shape of the data (scalar, sequence, map)
// does not match what a seed was constructed to expect. Expected holds a
// human readable description of the expectation, Cause the original error
// from the source.
type ShapeError struct {
	Expected string
	Cause    error
}

func (s ShapeError) Error() string {
	return fmt.Sprintf("expected %s: %s", s.Expected, s.Cause)
}

func (s ShapeError) Unwrap() error {
	return s.Cause
}

// LengthError reports that a fixed arity seed received fewer elements than
// its arity demands.
type LengthError struct {
	Len      int
	Expected int
}

func (l LengthError) Error() string {
	return fmt.Sprintf("got %d elements, expected %d", l.Len, l.Expected)
}

// shapeError wraps a source error with the expectation description of the
// combinator that hit it. ErrNotSupported indicates a shape mismatch;
// anything else is a format error and passes through unmodified.
func shapeError(expected string, cause error) error {
	if errors.Is(cause, ErrNotSupported) {
		return ShapeError{Expected: expected, Cause: cause}
	}

	return cause
}
