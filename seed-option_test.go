package seeded

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionAbsent(t *testing.T) {
	invocations := 0

	seed := Option(struct{}{}, func(struct{}) Seed[int64] {
		invocations++
		return Lift[int64]()
	})

	value, err := seed.Deserialize(AnySource{Value: nil})
	require.NoError(t, err)
	require.Nil(t, value)

	// absence must not derive a child context
	require.Equal(t, invocations, 0)
}

func TestOptionPresent(t *testing.T) {
	invocations := 0

	seed := Option(struct{}{}, func(struct{}) Seed[int64] {
		invocations++
		return Lift[int64]()
	})

	value, err := seed.Deserialize(AnySource{Value: 42})
	require.NoError(t, err)
	require.NotNil(t, value)
	require.Equal(t, *value, int64(42))
	require.Equal(t, invocations, 1)
}

func TestOptionNilSource(t *testing.T) {
	seed := Option(struct{}{}, func(struct{}) Seed[int64] {
		return Lift[int64]()
	})

	value, err := seed.Deserialize(nil)
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestOptionSourceWithoutNullSupport(t *testing.T) {
	// StringSource can not represent null, so the value is always present
	seed := Option(struct{}{}, func(struct{}) Seed[int64] {
		return Lift[int64]()
	})

	value, err := seed.Deserialize(StringSource("7"))
	require.NoError(t, err)
	require.NotNil(t, value)
	require.Equal(t, *value, int64(7))
}

func TestOptionChildError(t *testing.T) {
	seed := Option(struct{}{}, func(struct{}) Seed[int64] {
		return Lift[int64]()
	})

	_, err := seed.Deserialize(AnySource{Value: "not a number"})
	require.ErrorIs(t, err, ErrNotSupported)
}
