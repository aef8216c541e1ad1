package flatkind

import "strings"

func init() {
	mustRegister(CategoryArray, func() Kind { return &ArrayKind{} })
}

// ArrayKind is a fixed-count sequence of one element kind, laid out back to
// back with the element's own alignment.
type ArrayKind struct {
	layout
	elem  Kind
	count int
}

func (a *ArrayKind) Init(def Def, res Resolver) error {
	if err := a.initBase(def); err != nil {
		return err
	}
	if def.Elem == "" {
		return schemaErrf(a.name, CodeMissingField, "array definition missing elem")
	}
	if def.Count < 0 {
		return schemaErrf(a.name, CodeBadField, "array count %d is negative", def.Count)
	}
	elem, err := res.Lookup(def.Elem)
	if err != nil {
		return err
	}
	a.elem = elem
	a.count = def.Count
	a.size = elem.Size() * a.count
	a.align = maxInt(1, elem.Alignment())
	if a.count > 0 {
		if n := elem.Niche(); n != nil {
			// The first element's niche is at offset 0 of the array itself.
			inherited := *n
			a.niche = &inherited
		}
	}
	a.ready = true
	return nil
}

// Elem returns the element kind.
func (a *ArrayKind) Elem() Kind { return a.elem }

// Count returns the fixed element count.
func (a *ArrayKind) Count() int { return a.count }

// Deserializer emits a sequence literal indexing count elements at
// pos + i*elem.Size.
func (a *ArrayKind) Deserializer(pos string, g *GenContext) (string, error) {
	if err := a.requireReady(); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < a.count; i++ {
		expr, err := a.elem.Deserializer(AddPos(pos, i*a.elem.Size()), g)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(expr)
	}
	b.WriteString("]")
	return b.String(), nil
}
