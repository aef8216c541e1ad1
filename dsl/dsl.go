// Package dsl provides builder helpers for constructing schema definitions
// programmatically, mirroring what LoadJSON/LoadYAML produce from external
// documents. The helpers only build Def records; validation stays with each
// kind's Init, so a malformed builder call fails at Build time with the same
// SchemaError an external document would produce.
package dsl

import (
	flatkind "github.com/flatkind/flatkind"
)

// Struct declares a struct definition with ordered named members.
func Struct(name string, members ...flatkind.MemberDef) flatkind.Def {
	return flatkind.Def{Kind: flatkind.CategoryStruct, Name: name, Members: members}
}

// Field declares one struct member.
func Field(name, typ string) flatkind.MemberDef {
	return flatkind.MemberDef{Name: name, Type: typ}
}

// Array declares a fixed-count array definition.
func Array(name, elem string, count int) flatkind.Def {
	return flatkind.Def{Kind: flatkind.CategoryArray, Name: name, Elem: elem, Count: count}
}

// Enum declares an enum definition; variant order fixes the tag values.
func Enum(name string, variants ...flatkind.VariantDef) flatkind.Def {
	return flatkind.Def{Kind: flatkind.CategoryEnum, Name: name, Variants: variants}
}

// Variant declares a payload-free enum variant.
func Variant(name string) flatkind.VariantDef {
	return flatkind.VariantDef{Name: name}
}

// VariantOf declares an enum variant carrying a payload kind.
func VariantOf(name, payload string) flatkind.VariantDef {
	return flatkind.VariantDef{Name: name, Payload: payload}
}

// Option declares a nullable wrapper over an inner kind.
func Option(name, inner string) flatkind.Def {
	return flatkind.Def{Kind: flatkind.CategoryOption, Name: name, Inner: inner}
}

// Primitive declares a scalar outside the built-in table. Built-in names
// (U8, F64, Bool, ...) never need declaring; Compile seeds them.
func Primitive(name string, size int) flatkind.Def {
	return flatkind.Def{Kind: flatkind.CategoryPrimitive, Name: name, Size: size}
}

// PrimitiveWithNiche declares a scalar with an explicit reserved range,
// bypassing the name-convention derivation.
func PrimitiveWithNiche(name string, size int, n flatkind.NicheDef) flatkind.Def {
	return flatkind.Def{Kind: flatkind.CategoryPrimitive, Name: name, Size: size, Niche: &n}
}

// Build compiles the definitions against the default registry.
func Build(defs ...flatkind.Def) (*flatkind.Schema, error) {
	return flatkind.Compile(defs)
}
