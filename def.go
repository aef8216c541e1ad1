package flatkind

// Category tags one schema definition with the kind implementation responsible
// for interpreting it.
type Category string

const (
	CategoryPrimitive Category = "primitive"
	CategoryStruct    Category = "struct"
	CategoryArray     Category = "array"
	CategoryEnum      Category = "enum"
	CategoryOption    Category = "option"
)

// Def is the external, collaborator-owned schema definition record. Name and
// Kind are required for every definition; the remaining fields are
// category-specific and validated by the concrete kind's Init.
type Def struct {
	Kind Category `json:"kind" yaml:"kind"`
	Name string   `json:"name" yaml:"name"`

	// Primitive definitions.
	Size  int       `json:"size,omitempty" yaml:"size,omitempty"`
	Niche *NicheDef `json:"niche,omitempty" yaml:"niche,omitempty"`

	// Struct definitions.
	Members []MemberDef `json:"members,omitempty" yaml:"members,omitempty"`

	// Array definitions.
	Elem  string `json:"elem,omitempty" yaml:"elem,omitempty"`
	Count int    `json:"count,omitempty" yaml:"count,omitempty"`

	// Enum definitions.
	Variants []VariantDef `json:"variants,omitempty" yaml:"variants,omitempty"`

	// Option definitions.
	Inner string `json:"inner,omitempty" yaml:"inner,omitempty"`
}

// MemberDef names one struct member and the kind it references.
type MemberDef struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// VariantDef names one enum variant. Payload references the payload kind and
// may be empty for payload-free variants.
type VariantDef struct {
	Name    string `json:"name" yaml:"name"`
	Payload string `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// NicheDef declares a niche explicitly on a primitive definition, overriding
// the built-in name-convention derivation.
type NicheDef struct {
	Offset int    `json:"offset" yaml:"offset"`
	Size   int    `json:"size" yaml:"size"`
	Min    uint64 `json:"min" yaml:"min"`
	Max    uint64 `json:"max" yaml:"max"`
}

// refs lists the kind names a definition depends on, in declaration order.
// The compiler walks these edges to order initialization and detect cycles.
func (d Def) refs() []string {
	var out []string
	for _, m := range d.Members {
		out = append(out, m.Type)
	}
	if d.Elem != "" {
		out = append(out, d.Elem)
	}
	for _, v := range d.Variants {
		if v.Payload != "" {
			out = append(out, v.Payload)
		}
	}
	if d.Inner != "" {
		out = append(out, d.Inner)
	}
	return out
}
