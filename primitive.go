package flatkind

import (
	"strconv"
	"strings"
)

func init() {
	mustRegister(CategoryPrimitive, func() Kind { return &PrimitiveKind{} })
}

// PrimitiveKind is the concrete kind for scalar types. Built-in names carry a
// fixed expression generator; definitions outside the built-in table declare
// their own size (and optionally a niche) but cannot be deserialized.
type PrimitiveKind struct {
	layout
}

// primitiveSpec fixes the layout and expression generator of one built-in
// scalar. The table is closed: extending it means adding an entry here, never
// falling through to an undefined generator.
type primitiveSpec struct {
	size int
	gen  func(pos string) (string, bool)
}

// viewGen reads one element of a fixed-width little-endian view. The second
// return is false when a literal position is not a multiple of the width.
func viewGen(view string, width int) func(pos string) (string, bool) {
	return func(pos string) (string, bool) {
		idx, ok := viewIndex(pos, width)
		if !ok {
			return "", false
		}
		return view + "[" + idx + "]", true
	}
}

func boolGen(pos string) (string, bool) {
	return "uint8[" + pos + "] === 1", true
}

// builtinPrimitives fixes a stable declaration order for the built-in table.
var builtinPrimitives = []string{
	"U8", "I8", "U16", "I16", "U32", "I32", "U64", "I64",
	"F32", "F64", "Bool",
	"NonZeroU8", "NonZeroU16", "NonZeroU32", "NonZeroU64",
}

var primitiveSpecs = map[string]primitiveSpec{
	"U8":   {1, viewGen("uint8", 1)},
	"I8":   {1, viewGen("int8", 1)},
	"U16":  {2, viewGen("uint16", 2)},
	"I16":  {2, viewGen("int16", 2)},
	"U32":  {4, viewGen("uint32", 4)},
	"I32":  {4, viewGen("int32", 4)},
	"U64":  {8, viewGen("biguint64", 8)},
	"I64":  {8, viewGen("bigint64", 8)},
	"F32":  {4, viewGen("float32", 4)},
	"F64":  {8, viewGen("float64", 8)},
	"Bool": {1, boolGen},

	"NonZeroU8":  {1, viewGen("uint8", 1)},
	"NonZeroU16": {2, viewGen("uint16", 2)},
	"NonZeroU32": {4, viewGen("uint32", 4)},
	"NonZeroU64": {8, viewGen("biguint64", 8)},
}

// Init establishes the layout and derives the niche. The niche falls out of
// the name for the built-in table ("Bool" reserves [2,255] in its single byte;
// the "NonZero" prefix reserves the all-zero pattern); an explicit niche on
// the definition takes precedence over the convention.
func (p *PrimitiveKind) Init(def Def, _ Resolver) error {
	if err := p.initBase(def); err != nil {
		return err
	}
	spec, builtin := primitiveSpecs[p.name]
	switch {
	case builtin:
		if def.Size != 0 && def.Size != spec.size {
			return schemaErrf(p.name, CodeBadField, "declared size %d conflicts with built-in size %d", def.Size, spec.size)
		}
		p.size = spec.size
	case def.Size > 0:
		p.size = def.Size
	default:
		return schemaErrf(p.name, CodeMissingField, "primitive outside the built-in table requires a size")
	}
	p.align = primitiveAlign(p.size)

	switch {
	case def.Niche != nil:
		n := Niche{Offset: def.Niche.Offset, Size: def.Niche.Size, Min: def.Niche.Min, Max: def.Niche.Max}
		if err := n.validate(p.name, p.size); err != nil {
			return err
		}
		p.niche = &n
	case p.name == "Bool":
		p.niche = &Niche{Offset: 0, Size: 1, Min: 2, Max: 255}
	case strings.HasPrefix(p.name, "NonZero"):
		p.niche = &Niche{Offset: 0, Size: p.size, Min: 0, Max: 0}
	}
	p.ready = true
	return nil
}

// Deserializer looks the generator up by exact name in the closed table.
func (p *PrimitiveKind) Deserializer(pos string, _ *GenContext) (string, error) {
	if err := p.requireReady(); err != nil {
		return "", err
	}
	spec, ok := primitiveSpecs[p.name]
	if !ok {
		return "", codegenErrf(p.name, CodeNoGenerator, "no deserializer generator for kind %s", p.name)
	}
	expr, ok := spec.gen(pos)
	if !ok {
		return "", codegenErrf(p.name, CodeMisaligned, "position %s is not a multiple of %d", pos, p.size)
	}
	return expr, nil
}

// primitiveAlign maps a scalar width to its natural alignment.
func primitiveAlign(size int) int {
	switch size {
	case 1, 2, 4, 8:
		return size
	}
	return 1
}

// unsignedView names the unsigned view matching a byte width. Callers pass
// validated niche widths only.
func unsignedView(width int) string {
	switch width {
	case 1:
		return "uint8"
	case 2:
		return "uint16"
	case 4:
		return "uint32"
	default:
		return "biguint64"
	}
}

// rawLiteral renders a raw value for comparison against an unsigned view
// element. Eight-byte views hold BigInt values, so their literals carry the
// BigInt suffix.
func rawLiteral(width int, v uint64) string {
	s := strconv.FormatUint(v, 10)
	if width == 8 {
		return s + "n"
	}
	return s
}
