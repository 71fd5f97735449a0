// Package seeded deserializes values that are not self-contained: part of
// their meaning comes from a runtime context object that is not present in
// the serialized data (the canonical example is an element of an algebraic
// structure, which is only meaningful relative to the structure it belongs
// to). Deserialization here is a function of (data, context), not of data
// alone.
//
// The package has two layers.
//
// The [Source] interface is the self-describing data model: an abstract
// "give me the next scalar / sequence / map" protocol that any format
// backend can implement. [StringSource], [EmptySource] and [AnySource] are
// ready-made implementations, and the reflection based [Decoder] can
// [Unmarshal] plain Go types (structs, slices, maps, scalars) from any
// Source, similar to [json.Unmarshal]. This layer carries no context.
//
// On top of it, a [Seed] couples a context with a rule that consumes a
// [Source] and produces a value. Combinators like [Seq], [Tuple2], [Map],
// [Option] and [Object] rebuild container shapes while threading a
// (possibly per-element) derived context to each nested seed: the caller
// supplies a derivation rule such as func(ctx C, index int) Seed[T], and
// the combinator invokes it once per element, in order. [Lift] embeds
// context-free leaf values into such a tree by delegating to the [Decoder].
//
// Deserialization is a single synchronous depth-first descent. Any error
// aborts the whole call; no partial container is ever returned.
package seeded
