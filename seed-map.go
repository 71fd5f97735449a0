package seeded

import (
	"fmt"
)

// DuplicateKeyError reports that a map source yielded the same key twice.
// Duplicate keys are always rejected: silently keeping either value would
// hide malformed input.
type DuplicateKeyError struct {
	Key any
}

func (d DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %v", d.Key)
}

// Entry is one key/value pair produced by [Entries].
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map returns a Seed for a mapping whose keys are self-contained but whose
// values need a context derived from ctx and the decoded key. Keys decode
// context free through the default [Decoder]; rule is invoked once per
// entry with the decoded key and returns the seed for that entry's value.
//
// Duplicate keys fail with a [DuplicateKeyError]. The first failing key or
// value aborts the whole map with the offending key attached to the error.
// The result is a Go map and therefore carries no entry order; use
// [Entries] when the encounter order matters.
func Map[C any, K comparable, V any](ctx C, rule func(ctx C, key K) Seed[V]) Seed[map[K]V] {
	entriesSeed := Entries(ctx, rule)

	return SeedFunc[map[K]V](func(source Source) (map[K]V, error) {
		entries, err := entriesSeed.Deserialize(source)
		if err != nil {
			return nil, err
		}

		result := make(map[K]V, len(entries))
		for _, entry := range entries {
			result[entry.Key] = entry.Value
		}

		return result, nil
	})
}

// Entries is [Map] with an order preserving result: the key/value pairs are
// returned as a slice in encounter order. The duplicate key policy is the
// same as for [Map].
func Entries[C any, K comparable, V any](ctx C, rule func(ctx C, key K) Seed[V]) Seed[[]Entry[K, V]] {
	return SeedFunc[[]Entry[K, V]](func(source Source) ([]Entry[K, V], error) {
		keyValues, err := source.KeyValues()
		if err != nil {
			return nil, shapeError("a map of key/value pairs", err)
		}

		var result []Entry[K, V]
		if sized, ok := source.(SizedSource); ok {
			if n, err := sized.Len(); err == nil {
				result = make([]Entry[K, V], 0, n)
			}
		}

		seen := make(map[K]struct{})

		for keySource, valueSource := range keyValues {
			key, err := UnmarshalNew[K](keySource)
			if err != nil {
				return nil, fmt.Errorf("decode key: %w", err)
			}

			if _, ok := seen[key]; ok {
				return nil, DuplicateKeyError{Key: key}
			}
			seen[key] = struct{}{}

			value, err := rule(ctx, key).Deserialize(valueSource)
			if err != nil {
				return nil, fmt.Errorf("value for key %v: %w", key, err)
			}

			result = append(result, Entry[K, V]{Key: key, Value: value})
		}

		return result, nil
	})
}
