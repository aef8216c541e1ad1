package flatkind

import "strings"

func init() {
	mustRegister(CategoryStruct, func() Kind { return &StructKind{} })
}

// StructMember is one laid-out member of a struct kind.
type StructMember struct {
	Name   string
	Kind   Kind
	Offset int // byte offset within the struct representation
}

// StructKind lays its members out sequentially in C-like fashion: each member
// offset is rounded up to the member's own alignment, the struct alignment is
// the maximum member alignment, and the struct size is rounded up to that
// alignment.
type StructKind struct {
	layout
	members []StructMember
}

func (s *StructKind) Init(def Def, res Resolver) error {
	if err := s.initBase(def); err != nil {
		return err
	}
	offset := 0
	seen := make(map[string]struct{}, len(def.Members))
	for _, m := range def.Members {
		if m.Name == "" {
			return schemaErrf(s.name, CodeMissingField, "struct member missing name")
		}
		if m.Type == "" {
			return schemaErrf(s.name, CodeMissingField, "member %q missing type", m.Name)
		}
		if _, dup := seen[m.Name]; dup {
			return schemaErrf(s.name, CodeBadField, "duplicate member %q", m.Name)
		}
		seen[m.Name] = struct{}{}
		k, err := res.Lookup(m.Type)
		if err != nil {
			return err
		}
		offset = alignUp(offset, k.Alignment())
		s.members = append(s.members, StructMember{Name: m.Name, Kind: k, Offset: offset})
		offset += k.Size()
		s.align = maxInt(s.align, k.Alignment())
	}
	s.size = alignUp(offset, s.align)

	// The struct inherits the first member niche, translated to the member's
	// offset, so an enclosing Option can stay tag-free.
	for _, m := range s.members {
		if n := m.Kind.Niche(); n != nil {
			inherited := n.translated(m.Offset)
			s.niche = &inherited
			break
		}
	}
	s.ready = true
	return nil
}

// Members returns the laid-out members in declaration order.
func (s *StructKind) Members() []StructMember {
	out := make([]StructMember, len(s.members))
	copy(out, s.members)
	return out
}

// Deserializer emits a record literal whose fields read each member at the
// member's offset from pos.
func (s *StructKind) Deserializer(pos string, g *GenContext) (string, error) {
	if err := s.requireReady(); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("{")
	for i, m := range s.members {
		expr, err := m.Kind.Deserializer(AddPos(pos, m.Offset), g)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.Name)
		b.WriteString(": ")
		b.WriteString(expr)
	}
	b.WriteString("}")
	return b.String(), nil
}
