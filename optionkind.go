package flatkind

func init() {
	mustRegister(CategoryOption, func() Kind { return &OptionKind{} })
}

// OptionKind is a nullable wrapper over an inner kind. When the inner kind
// exposes a usable niche the option adds no storage at all: the niche's
// reserved range encodes "absent", so Option over NonZeroU32 stays four bytes
// with the all-zero word meaning null. Without a niche a presence byte is laid
// out ahead of the payload.
//
// An option consumes the inner niche, so it exposes none of its own.
type OptionKind struct {
	layout
	inner      Kind
	absent     *Niche // inner niche used for the absent encoding, nil when flagged
	payloadOff int    // payload offset in the flagged representation
}

func (o *OptionKind) Init(def Def, res Resolver) error {
	if err := o.initBase(def); err != nil {
		return err
	}
	if def.Inner == "" {
		return schemaErrf(o.name, CodeMissingField, "option definition missing inner")
	}
	inner, err := res.Lookup(def.Inner)
	if err != nil {
		return err
	}
	o.inner = inner
	if n := inner.Niche(); n != nil && nicheReadable(*n, inner.Alignment()) {
		o.absent = n
		o.size = inner.Size()
		o.align = inner.Alignment()
		o.ready = true
		return nil
	}
	o.payloadOff = alignUp(1, inner.Alignment())
	o.align = maxInt(1, inner.Alignment())
	o.size = alignUp(o.payloadOff+inner.Size(), o.align)
	o.ready = true
	return nil
}

// Inner returns the wrapped kind.
func (o *OptionKind) Inner() Kind { return o.inner }

// nicheReadable reports whether the niche region can be read through the view
// of its own width from any position aligned to the owner's alignment.
func nicheReadable(n Niche, ownerAlign int) bool {
	if n.Size == 1 {
		return true
	}
	return n.Offset%n.Size == 0 && ownerAlign%n.Size == 0
}

// Deserializer emits a conditional over the absent marker: the niche's lower
// bound in the niche representation, or the presence byte in the flagged one.
func (o *OptionKind) Deserializer(pos string, g *GenContext) (string, error) {
	if err := o.requireReady(); err != nil {
		return "", err
	}
	if n := o.absent; n != nil {
		idx, ok := viewIndex(AddPos(pos, n.Offset), n.Size)
		if !ok {
			return "", codegenErrf(o.name, CodeMisaligned, "position %s is not a multiple of %d", pos, n.Size)
		}
		probe := unsignedView(n.Size) + "[" + idx + "]"
		value, err := o.inner.Deserializer(pos, g)
		if err != nil {
			return "", err
		}
		return "(" + probe + " === " + rawLiteral(n.Size, n.Min) + " ? null : " + value + ")", nil
	}
	value, err := o.inner.Deserializer(AddPos(pos, o.payloadOff), g)
	if err != nil {
		return "", err
	}
	return "(uint8[" + pos + "] === 0 ? null : " + value + ")", nil
}
