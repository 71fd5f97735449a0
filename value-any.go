package seeded

import (
	"iter"
	"math"
)

// AnySource adapts an already decoded value tree to a Source. Objects and
// maps are expected as map[string]any or map[any]any, sequences as []any,
// scalars as bool, string or any numeric type, and an explicit null as nil.
// This matches what json or cbor packages produce when unmarshalling into
// a plain `any`.
//
// AnySource implements [SizedSource] for slices and maps and [NullSource]
// for nil values.
type AnySource struct {
	Value any
}

var _ Source = AnySource{}
var _ SizedSource = AnySource{}
var _ NullSource = AnySource{}

func (a AnySource) Bool() (bool, error) {
	if boolValue, ok := a.Value.(bool); ok {
		return boolValue, nil
	}

	return false, ErrNotSupported
}

func (a AnySource) Int() (int64, error) {
	switch value := a.Value.(type) {
	case int:
		return int64(value), nil
	case int64:
		return value, nil
	case uint64:
		if value > math.MaxInt64 {
			return 0, ErrNotSupported
		}
		return int64(value), nil
	case float64:
		// json numbers arrive as float64. only accept integral ones.
		if math.Trunc(value) != value || value < math.MinInt64 || value >= math.MaxInt64 {
			return 0, ErrNotSupported
		}
		return int64(value), nil
	}

	return 0, ErrNotSupported
}

func (a AnySource) Uint() (uint64, error) {
	intValue, err := a.Int()
	if err != nil {
		if value, ok := a.Value.(uint64); ok {
			return value, nil
		}
		return 0, err
	}

	if intValue < 0 {
		return 0, ErrNotSupported
	}

	return uint64(intValue), nil
}

func (a AnySource) Float() (float64, error) {
	switch value := a.Value.(type) {
	case float64:
		return value, nil
	case float32:
		return float64(value), nil
	case int:
		return float64(value), nil
	case int64:
		return float64(value), nil
	case uint64:
		return float64(value), nil
	}

	return 0, ErrNotSupported
}

func (a AnySource) String() (string, error) {
	if stringValue, ok := a.Value.(string); ok {
		return stringValue, nil
	}

	return "", ErrNotSupported
}

func (a AnySource) Get(key string) (Source, error) {
	switch value := a.Value.(type) {
	case map[string]any:
		child, ok := value[key]
		if !ok {
			return nil, ErrNoValue
		}
		return AnySource{Value: child}, nil

	case map[any]any:
		child, ok := value[key]
		if !ok {
			return nil, ErrNoValue
		}
		return AnySource{Value: child}, nil
	}

	return nil, ErrNotSupported
}

func (a AnySource) KeyValues() (iter.Seq2[Source, Source], error) {
	switch value := a.Value.(type) {
	case map[string]any:
		it := func(yield func(Source, Source) bool) {
			for key, child := range value {
				if !yield(AnySource{Value: key}, AnySource{Value: child}) {
					return
				}
			}
		}
		return it, nil

	case map[any]any:
		it := func(yield func(Source, Source) bool) {
			for key, child := range value {
				if !yield(AnySource{Value: key}, AnySource{Value: child}) {
					return
				}
			}
		}
		return it, nil
	}

	return nil, ErrNotSupported
}

func (a AnySource) Iter() (iter.Seq[Source], error) {
	sliceValue, ok := a.Value.([]any)
	if !ok {
		return nil, ErrNotSupported
	}

	it := func(yield func(Source) bool) {
		for _, child := range sliceValue {
			if !yield(AnySource{Value: child}) {
				return
			}
		}
	}

	return it, nil
}

func (a AnySource) Len() (int, error) {
	switch value := a.Value.(type) {
	case []any:
		return len(value), nil
	case map[string]any:
		return len(value), nil
	case map[any]any:
		return len(value), nil
	}

	return 0, ErrNotSupported
}

func (a AnySource) IsNull() (bool, error) {
	return a.Value == nil, nil
}
