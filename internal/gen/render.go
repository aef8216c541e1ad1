// Package gen assembles per-kind deserializer expressions into a complete
// JavaScript module: typed-array view bindings over one shared buffer, helper
// declarations registered during emission, and one deserialize function per
// exported kind. This package is internal and not part of the public API.
package gen

import (
	"fmt"
	"strings"

	flatkind "github.com/flatkind/flatkind"
)

// Options controls module rendering.
type Options struct {
	// Exports lists the kind names to emit deserialize functions for. Empty
	// means every user-defined kind in the schema.
	Exports []string
	// PosParam names the byte-position parameter of generated functions.
	// Defaults to "pos".
	PosParam string
}

// views lists every binding the generated module declares, in emission order.
// The names match what kind emissions reference.
var views = []struct{ name, ctor string }{
	{"uint8", "Uint8Array"},
	{"int8", "Int8Array"},
	{"uint16", "Uint16Array"},
	{"int16", "Int16Array"},
	{"uint32", "Uint32Array"},
	{"int32", "Int32Array"},
	{"float32", "Float32Array"},
	{"float64", "Float64Array"},
	{"biguint64", "BigUint64Array"},
	{"bigint64", "BigInt64Array"},
}

// RenderModule renders the deserializer module for a compiled schema. A
// generation failure in any kind aborts the whole render.
func RenderModule(s *flatkind.Schema, opt Options) ([]byte, error) {
	exports := opt.Exports
	if len(exports) == 0 {
		exports = s.Names()
	}
	pos := opt.PosParam
	if pos == "" {
		pos = "pos"
	}

	g := flatkind.NewGenContext()
	funcs := make([]string, 0, len(exports))
	for _, name := range exports {
		k, err := s.Lookup(name)
		if err != nil {
			return nil, err
		}
		expr, err := k.Deserializer(pos, g)
		if err != nil {
			return nil, err
		}
		funcs = append(funcs, fmt.Sprintf("function deserialize%s(%s) {\n  return %s;\n}", name, pos, expr))
	}

	var b strings.Builder
	b.WriteString("// Code generated by flatkind. DO NOT EDIT.\n")
	fmt.Fprintf(&b, "// Schema fingerprint: 0x%016x.\n\n", s.Fingerprint())
	b.WriteString("\"use strict\";\n\n")

	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.name
	}
	fmt.Fprintf(&b, "let %s;\n\n", strings.Join(names, ", "))

	b.WriteString("// bindBuffer points every view at the shared buffer. All views share the\n")
	b.WriteString("// same storage and origin; positions are byte offsets into that storage.\n")
	b.WriteString("function bindBuffer(buffer) {\n")
	for _, v := range views {
		fmt.Fprintf(&b, "  %s = new %s(buffer);\n", v.name, v.ctor)
	}
	b.WriteString("}\n")

	for _, h := range g.Helpers() {
		b.WriteString("\n")
		b.WriteString(h)
		b.WriteString("\n")
	}
	for _, f := range funcs {
		b.WriteString("\n")
		b.WriteString(f)
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}
