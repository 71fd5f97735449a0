package seeded

import "iter"

// Source represents the abstract interface to a serialized data source. It defines
// a flexible data model for interpreting and accessing various types of serialized
// data independent of the wire format.
//
// A [Source] provides methods to interpret the underlying data in different forms:
//   - **Primitive types**: Supports conversion to basic Go types such as `bool`, `int`,
//     `uint`, `float`, and `string`.
//   - **Objects**: Accesses nested data structures using [Source.Get], which retrieves
//     a value corresponding to a specified key.
//   - **Slices**: Iterates over list-like structures using [Source.Iter], enabling
//     sequential processing of elements.
//   - **Maps**: Handles key-value pairs via [Source.KeyValues], facilitating traversal
//     of dictionary-like data.
//
// If converting the [Source] into a particular type isn't possible, the method must
// return [ErrNotSupported] as the error. This signals that the requested operation is
// not valid for the underlying data representation.
//
// Notably, there is no requirement for [Source] methods to be idempotent. This design
// choice enables creative implementations, such as a `FakerSource` that generates
// dynamic values on demand or a binary [Source] that streams data from an [io.Reader].
// In particular this means a [Source] behaves like a cursor: consumers must not
// assume they can read the same value twice.
//
// To facilitate the creation of custom [Source] implementations, the package includes
// ready-to-use implementations:
//
//  1. **[StringSource]**: Leverages the `strconv` package to parse strings into
//     various target types, such as integers, floats, and booleans.
//
//  2. **[EmptySource]**: A minimalist implementation that returns [ErrNotSupported]
//     for all methods. Ideal as an embedded base when developing new [Source]
//     implementations.
//
//  3. **[AnySource]**: Wraps an already decoded value tree (`map[string]any`,
//     `[]any`, scalars and `nil`), e.g. the output of a JSON or CBOR unmarshal
//     into `any`.
//
// Example:
//
//	type MySource struct {
//	    seeded.EmptySource // embed EmptySource as a fallback
//	}
//
//	func (m MySource) Get(key string) (seeded.Source, error) {
//	    // custom logic for handling object fields
//	}
type Source interface {
	// Bool returns the current value as a bool.
	// Returns error ErrNotSupported if the value can not be represented as such.
	Bool() (bool, error)

	// Int returns the current value as an int64.
	// Returns error ErrNotSupported if the value can not be represented as such.
	Int() (int64, error)

	// Uint returns the current value as an uint64.
	// Returns error ErrNotSupported if the value can not be represented as such.
	Uint() (uint64, error)

	// Float returns the current value as a float64.
	// Returns error ErrNotSupported if the value can not be represented as such.
	Float() (float64, error)

	// String returns the current value as a string.
	// Returns error ErrNotSupported if the value can not be represented as such.
	String() (string, error)

	// Get returns a child value of this [Source] if it exists.
	// Returns error [ErrNotSupported] if the current [Source] does not have any
	// child values. If the [Source] does have children, but just not the
	// requested child, [ErrNoValue] must be returned.
	Get(key string) (Source, error)

	// KeyValues interprets the [Source] as a map and iterates over the
	// elements within. It yields a pair of key and value [Source] instances.
	// Returns [ErrNotSupported] if the [Source] is not iterable.
	KeyValues() (iter.Seq2[Source, Source], error)

	// Iter interprets the [Source] as a slice and iterates over the
	// elements within.
	// Returns [ErrNotSupported] if the [Source] is not iterable.
	Iter() (iter.Seq[Source], error)
}

// BinarySource extends the [Source] interface by adding methods for extracting
// integer and floating-point values of specific bit sizes. This extension is
// particularly valuable for decoding binary formats where precise control over
// data size is essential.
//
// The [Decoder] and the scalar seeds prioritize these methods (e.g. `Int8`,
// `Uint16`, `Float32`) over the more generic [Source.Int] or [Source.Float]
// when the source implements them.
type BinarySource interface {
	Int8() (int8, error)
	Int16() (int16, error)
	Int32() (int32, error)
	Int64() (int64, error)

	Uint8() (uint8, error)
	Uint16() (uint16, error)
	Uint32() (uint32, error)
	Uint64() (uint64, error)

	Float32() (float32, error)
	Float64() (float64, error)
}

// SizedSource is implemented by sources that know in advance how many elements
// [Source.Iter] or [Source.KeyValues] will yield. The count is advisory: [Seq]
// forwards it as a capacity hint for the collection under construction, never
// as a bound on the actual number of elements.
type SizedSource interface {
	// Len returns the number of elements the source will yield,
	// or ErrNotSupported if the count is not known up front.
	Len() (int, error)
}

// NullSource is implemented by sources whose format can encode an explicit
// absent value (JSON null, CBOR null, ...). [Option] consults it to decide
// between the absent and the present case. Sources that do not implement
// NullSource are always treated as present.
type NullSource interface {
	// IsNull reports whether the current value is an explicit null.
	IsNull() (bool, error)
}
