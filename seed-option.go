package seeded

// Option returns a Seed for a 0-or-1 occurrence value. Absence is signaled
// by a nil source or by a source implementing [NullSource] that reports an
// explicit null; in that case the result is nil and rule is never invoked.
// Otherwise rule derives the context for the single inner value, and the
// resulting seed is invoked exactly once.
//
// Sources that implement neither signal are always treated as present.
func Option[C, T any](ctx C, rule func(ctx C) Seed[T]) Seed[*T] {
	return SeedFunc[*T](func(source Source) (*T, error) {
		if source == nil {
			return nil, nil
		}

		if nullSource, ok := source.(NullSource); ok {
			null, err := nullSource.IsNull()
			if err != nil {
				return nil, err
			}

			if null {
				return nil, nil
			}
		}

		value, err := rule(ctx).Deserialize(source)
		if err != nil {
			return nil, err
		}

		return &value, nil
	})
}
