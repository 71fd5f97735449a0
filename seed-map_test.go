package seeded

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
)

// pairsSource yields a fixed list of key/value pairs in order, including
// duplicates, which a Go map backed source can not produce.
type pairsSource struct {
	EmptySource
	pairs [][2]any
}

func (p pairsSource) KeyValues() (iter.Seq2[Source, Source], error) {
	it := func(yield func(Source, Source) bool) {
		for _, pair := range p.pairs {
			if !yield(AnySource{Value: pair[0]}, AnySource{Value: pair[1]}) {
				return
			}
		}
	}

	return it, nil
}

func TestMapDerivesValueContextFromKey(t *testing.T) {
	source := AnySource{Value: map[string]any{"a": 1, "b": 2}}

	// the value context is derived from (parent context, decoded key)
	var derivedKeys []string

	seed := Map("parent", func(ctx string, key string) Seed[int64] {
		require.Equal(t, ctx, "parent")
		derivedKeys = append(derivedKeys, key)
		return Lift[int64]()
	})

	values, err := seed.Deserialize(source)
	require.NoError(t, err)
	require.Equal(t, values, map[string]int64{"a": 1, "b": 2})
	require.ElementsMatch(t, derivedKeys, []string{"a", "b"})
}

func TestMapRejectsDuplicateKeys(t *testing.T) {
	source := pairsSource{pairs: [][2]any{{"a", 1}, {"a", 2}}}

	seed := Map(struct{}{}, func(struct{}, string) Seed[int64] {
		return Lift[int64]()
	})

	values, err := seed.Deserialize(source)

	var duplicateErr DuplicateKeyError
	require.ErrorAs(t, err, &duplicateErr)
	require.Equal(t, duplicateErr.Key, "a")

	// neither of the two values makes it into a result
	require.Nil(t, values)
}

func TestMapShapeMismatch(t *testing.T) {
	seed := Map(struct{}{}, func(struct{}, string) Seed[int64] {
		return Lift[int64]()
	})

	_, err := seed.Deserialize(AnySource{Value: 5})

	var shapeErr ShapeError
	require.ErrorAs(t, err, &shapeErr)
	require.Equal(t, shapeErr.Expected, "a map of key/value pairs")
}

func TestMapValueErrorCarriesKey(t *testing.T) {
	source := pairsSource{pairs: [][2]any{{"good", 1}, {"bad", "not a number"}}}

	seed := Map(struct{}{}, func(struct{}, string) Seed[int64] {
		return Lift[int64]()
	})

	_, err := seed.Deserialize(source)
	require.ErrorContains(t, err, `value for key bad`)
}

func TestMapKeyDecodeError(t *testing.T) {
	source := pairsSource{pairs: [][2]any{{"one", 1}}}

	seed := Map(struct{}{}, func(struct{}, int64) Seed[int64] {
		return Lift[int64]()
	})

	_, err := seed.Deserialize(source)
	require.ErrorContains(t, err, "decode key")
}

func TestEntriesPreserveEncounterOrder(t *testing.T) {
	source := pairsSource{pairs: [][2]any{{"z", 26}, {"a", 1}, {"m", 13}}}

	seed := Entries(struct{}{}, func(struct{}, string) Seed[int64] {
		return Lift[int64]()
	})

	entries, err := seed.Deserialize(source)
	require.NoError(t, err)
	require.Equal(t, entries, []Entry[string, int64]{
		{Key: "z", Value: 26},
		{Key: "a", Value: 1},
		{Key: "m", Value: 13},
	})
}

func TestEntriesRejectDuplicateKeys(t *testing.T) {
	source := pairsSource{pairs: [][2]any{{"a", 1}, {"b", 2}, {"a", 3}}}

	seed := Entries(struct{}{}, func(struct{}, string) Seed[int64] {
		return Lift[int64]()
	})

	_, err := seed.Deserialize(source)

	var duplicateErr DuplicateKeyError
	require.ErrorAs(t, err, &duplicateErr)
	require.Equal(t, duplicateErr.Key, "a")
}
