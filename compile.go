package flatkind

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Schema is a compiled, immutable set of kinds. Once Compile returns, every
// kind's layout is fixed and the schema may be read concurrently by any number
// of generation passes.
type Schema struct {
	kinds map[string]Kind
	order []string // user definitions in input order; built-ins excluded
}

// Lookup returns the kind with the given name, built-in primitives included.
func (s *Schema) Lookup(name string) (Kind, error) {
	k, ok := s.kinds[name]
	if !ok {
		return nil, schemaErrf(name, CodeUnknownKind, "schema has no kind named %q", name)
	}
	return k, nil
}

// Names returns the user-defined kind names in definition order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Fingerprint hashes the compiled layout — name, size, alignment and niche of
// every user-defined kind, in definition order — so generated output can be
// stamped with the schema it was produced from.
func (s *Schema) Fingerprint() uint64 {
	d := xxhash.New()
	for _, name := range s.order {
		k := s.kinds[name]
		fmt.Fprintf(d, "%s|%d|%d|", k.Name(), k.Size(), k.Alignment())
		if n := k.Niche(); n != nil {
			fmt.Fprintf(d, "%d:%d:%d:%d", n.Offset, n.Size, n.Min, n.Max)
		}
		d.Write([]byte{'\n'})
	}
	return d.Sum64()
}

// BuiltinDefs returns primitive definitions for the built-in scalar table.
// Compile seeds every schema with these, so user definitions may reference
// U32, Bool, NonZeroU64 and friends without declaring them.
func BuiltinDefs() []Def {
	out := make([]Def, 0, len(builtinPrimitives))
	for _, name := range builtinPrimitives {
		out = append(out, Def{Kind: CategoryPrimitive, Name: name})
	}
	return out
}

// Compile builds a schema from definitions using the default registry.
func Compile(defs []Def) (*Schema, error) {
	return CompileWith(DefaultRegistry(), defs)
}

// visit states for the dependency walk.
const (
	stateUnvisited = iota
	stateVisiting
	stateDone
)

// CompileWith initializes one kind per definition, in dependency order over
// the "refers to" relation. Built-in primitives are compiled first; duplicate
// names, unknown categories, unknown references and reference cycles all fail
// with a SchemaError before any generation can observe a half-built kind.
func CompileWith(reg *Registry, defs []Def) (*Schema, error) {
	s := &Schema{kinds: make(map[string]Kind, len(defs)+len(builtinPrimitives))}
	res := schemaResolver{s}

	for _, def := range BuiltinDefs() {
		k, err := reg.New(def.Kind)
		if err != nil {
			return nil, err
		}
		if err := k.Init(def, res); err != nil {
			return nil, err
		}
		s.kinds[def.Name] = k
	}

	byName := make(map[string]Def, len(defs))
	for _, def := range defs {
		if def.Name == "" {
			return nil, schemaErrf("", CodeMissingField, "%s definition missing name", def.Kind)
		}
		if _, exists := s.kinds[def.Name]; exists {
			return nil, schemaErrf(def.Name, CodeDuplicateKind, "name shadows a built-in primitive")
		}
		if _, dup := byName[def.Name]; dup {
			return nil, schemaErrf(def.Name, CodeDuplicateKind, "kind defined more than once")
		}
		byName[def.Name] = def
	}

	state := make(map[string]int, len(defs))
	var build func(name string) error
	build = func(name string) error {
		switch state[name] {
		case stateDone:
			return nil
		case stateVisiting:
			return schemaErrf(name, CodeCyclicReference, "kind participates in a reference cycle; recursive layouts without indirection have unbounded size")
		}
		state[name] = stateVisiting
		def := byName[name]
		for _, ref := range def.refs() {
			if _, ok := s.kinds[ref]; ok {
				continue // built-in or already compiled
			}
			if _, ok := byName[ref]; !ok {
				return schemaErrf(name, CodeUnknownKind, "references unknown kind %q", ref)
			}
			if err := build(ref); err != nil {
				return err
			}
		}
		k, err := reg.New(def.Kind)
		if err != nil {
			if se, ok := AsSchemaError(err); ok && se.Kind == "" {
				se.Kind = name
			}
			return err
		}
		if err := k.Init(def, res); err != nil {
			return err
		}
		s.kinds[name] = k
		state[name] = stateDone
		return nil
	}

	for _, def := range defs {
		if err := build(def.Name); err != nil {
			return nil, err
		}
		s.order = append(s.order, def.Name)
	}
	return s, nil
}

// schemaResolver resolves member references against the kinds compiled so far.
type schemaResolver struct {
	s *Schema
}

func (r schemaResolver) Lookup(name string) (Kind, error) {
	return r.s.Lookup(name)
}
