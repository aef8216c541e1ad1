package flatkind

// Package flatkind compiles a schema of kinds (primitives, structs, arrays,
// enums, options) into deserializer source that reads values directly out of
// a shared little-endian byte buffer through fixed-width typed-array views.
//
// It provides:
//
// - A kind model: every kind knows its binary layout (size, alignment) and,
//   where applicable, a niche — a reserved range of raw values reusable to
//   encode out-of-band information such as an enum tag or an "absent" marker.
// - A category registry mapping definition categories to kind constructors.
// - A compiler that initializes kinds in dependency order, rejecting cycles
//   and unknown references up front.
// - Expression generation: each kind emits a source-level read expression for
//   a given buffer position, composed recursively for composite kinds.
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations
//   under internal/.
// - Place builder helpers under dsl/ and the CLI under cmd/flatkind.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	defs, err := flatkind.LoadYAML(doc)
//	schema, err := flatkind.Compile(defs)
//	g := flatkind.NewGenContext()
//	expr, err := kind.Deserializer("pos", g)
//
// Generated expressions assume one contiguous buffer exposed through
// same-origin little-endian views (uint8, uint16, uint32, float64, ...),
// all over the same storage and origin.
