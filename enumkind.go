package flatkind

func init() {
	mustRegister(CategoryEnum, func() Kind { return &EnumKind{} })
}

// EnumVariant is one tagged alternative of an enum kind. Payload is nil for
// payload-free variants.
type EnumVariant struct {
	Name    string
	Payload Kind
}

// EnumKind encodes a tagged union with an explicit one-byte discriminant at
// offset 0; the variant's declaration order is its tag value. Payloads share
// a union region starting at the payload alignment boundary. Spare tag values
// become the enum's own niche, so enums with fewer than 256 variants nest
// inside an Option for free.
type EnumKind struct {
	layout
	variants   []EnumVariant
	payloadOff int
}

const enumTagHelper = "enumTagOutOfRange"

const enumTagHelperSrc = `function enumTagOutOfRange(tag) {
  throw new RangeError("enum tag out of range: " + tag);
}`

func (e *EnumKind) Init(def Def, res Resolver) error {
	if err := e.initBase(def); err != nil {
		return err
	}
	if len(def.Variants) == 0 {
		return schemaErrf(e.name, CodeMissingField, "enum definition requires at least one variant")
	}
	if len(def.Variants) > 256 {
		return schemaErrf(e.name, CodeTooManyVariants, "%d variants exceed the one-byte tag", len(def.Variants))
	}
	seen := make(map[string]struct{}, len(def.Variants))
	payloadAlign := 1
	payloadSize := 0
	for _, v := range def.Variants {
		if v.Name == "" {
			return schemaErrf(e.name, CodeMissingField, "enum variant missing name")
		}
		if _, dup := seen[v.Name]; dup {
			return schemaErrf(e.name, CodeBadField, "duplicate variant %q", v.Name)
		}
		seen[v.Name] = struct{}{}
		var payload Kind
		if v.Payload != "" {
			k, err := res.Lookup(v.Payload)
			if err != nil {
				return err
			}
			payload = k
			payloadAlign = maxInt(payloadAlign, k.Alignment())
			payloadSize = maxInt(payloadSize, k.Size())
		}
		e.variants = append(e.variants, EnumVariant{Name: v.Name, Payload: payload})
	}
	e.align = payloadAlign
	e.payloadOff = alignUp(1, payloadAlign)
	e.size = alignUp(e.payloadOff+payloadSize, e.align)
	if payloadSize == 0 {
		// Tag-only enums collapse to a single byte.
		e.size = 1
		e.align = 1
		e.payloadOff = 1
	}
	if n := len(e.variants); n < 256 {
		e.niche = &Niche{Offset: 0, Size: 1, Min: uint64(n), Max: 255}
	}
	e.ready = true
	return nil
}

// Variants returns the variants in tag order.
func (e *EnumKind) Variants() []EnumVariant {
	out := make([]EnumVariant, len(e.variants))
	copy(out, e.variants)
	return out
}

// Deserializer emits a conditional chain over the tag byte, dispatching to
// each variant's payload deserializer at the shared payload offset. Tags past
// the declared range throw through a helper registered on the context.
func (e *EnumKind) Deserializer(pos string, g *GenContext) (string, error) {
	if err := e.requireReady(); err != nil {
		return "", err
	}
	g.RegisterHelper(enumTagHelper, enumTagHelperSrc)
	tag := "uint8[" + pos + "]"
	expr := enumTagHelper + "(" + tag + ")"
	for i := len(e.variants) - 1; i >= 0; i-- {
		v := e.variants[i]
		arm := `{tag: "` + v.Name + `"}`
		if v.Payload != nil {
			payload, err := v.Payload.Deserializer(AddPos(pos, e.payloadOff), g)
			if err != nil {
				return "", err
			}
			arm = `{tag: "` + v.Name + `", value: ` + payload + `}`
		}
		expr = "(" + tag + " === " + rawLiteral(1, uint64(i)) + " ? " + arm + " : " + expr + ")"
	}
	return expr, nil
}
