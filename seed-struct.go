package seeded

import (
	"errors"
	"fmt"
)

// MissingFieldError reports that an object source has no value for a field
// an [Object] seed requires.
type MissingFieldError struct {
	Field string
}

func (m MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", m.Field)
}

// A Field describes one named field of an object deserialized by [Object]:
// which key to look up and how to decode and assign its value. Construct
// it with [FieldOf].
type Field[T any] struct {
	Name string

	decode func(target *T, source Source) error
}

// FieldOf describes the object field name: the value decodes with seed and
// is stored into the result via assign. The seed can carry whatever context
// this particular field needs, so different fields of one object may use
// entirely different contexts.
func FieldOf[T, F any](name string, seed Seed[F], assign func(target *T, value F)) Field[T] {
	return Field[T]{
		Name: name,
		decode: func(target *T, source Source) error {
			value, err := seed.Deserialize(source)
			if err != nil {
				return err
			}

			assign(target, value)
			return nil
		},
	}
}

// Object returns a Seed for an object with a fixed set of named fields,
// each decoded by its own seed. Every field is required: a missing field
// fails with a [MissingFieldError], and any field failure aborts the whole
// object with the field name attached.
//
// Object is the context threading counterpart of deserializing into a
// struct with [Unmarshal]: use it when some fields cannot be decoded
// without a context.
func Object[T any](fields ...Field[T]) Seed[T] {
	return SeedFunc[T](func(source Source) (T, error) {
		var result T

		for _, field := range fields {
			fieldSource, err := source.Get(field.Name)
			switch {
			case errors.Is(err, ErrNoValue):
				var zero T
				return zero, MissingFieldError{Field: field.Name}
			case err != nil:
				var zero T
				return zero, shapeError(fmt.Sprintf("an object with field %q", field.Name), err)
			}

			if err := field.decode(&result, fieldSource); err != nil {
				var zero T
				return zero, fmt.Errorf("field %q: %w", field.Name, err)
			}
		}

		return result, nil
	})
}

// Variant returns a Seed for an externally tagged sum value: an object with
// exactly one key, naming the variant, whose value is the variant payload.
// rule maps the variant name to the payload seed and returns an error for
// unknown variants.
func Variant[C, T any](ctx C, rule func(ctx C, name string) (Seed[T], error)) Seed[T] {
	return SeedFunc[T](func(source Source) (T, error) {
		var zero T

		keyValues, err := source.KeyValues()
		if err != nil {
			return zero, shapeError("an object with a single variant key", err)
		}

		var result T
		count := 0

		for keySource, valueSource := range keyValues {
			if count > 0 {
				return zero, fmt.Errorf("more than one variant key: %w", ErrNotSupported)
			}
			count++

			name, err := keySource.String()
			if err != nil {
				return zero, fmt.Errorf("decode variant name: %w", err)
			}

			seed, err := rule(ctx, name)
			if err != nil {
				return zero, fmt.Errorf("variant %q: %w", name, err)
			}

			result, err = seed.Deserialize(valueSource)
			if err != nil {
				return zero, fmt.Errorf("variant %q: %w", name, err)
			}
		}

		if count == 0 {
			return zero, LengthError{Len: 0, Expected: 1}
		}

		return result, nil
	})
}
