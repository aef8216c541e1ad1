package flatkind

// Kind is a type descriptor node in the schema graph. A kind is created
// uninitialized by its category's constructor, populated exactly once by Init,
// and immutable afterwards; Deserializer may then be called any number of
// times, concurrently.
type Kind interface {
	// Name returns the unique identifier of the kind within its schema.
	Name() string
	// Size returns the byte width of the representation. Valid only after Init.
	Size() int
	// Alignment returns the byte alignment requirement (a power of two, >= 1).
	Alignment() int
	// Niche returns the reserved raw-value range of the representation, or nil
	// when every bit pattern is in use.
	Niche() *Niche

	// Init populates the kind from its category-specific definition, resolving
	// member references through res. Member kinds must already be initialized
	// (the compiler guarantees dependency order). Returns a SchemaError when
	// the definition is malformed.
	Init(def Def, res Resolver) error

	// Deserializer returns a source-level expression that reads a value of
	// this kind at byte position pos (itself a source-level expression). The
	// emission is pure over buffer contents; it may register helper
	// declarations on g. Returns a CodeGenError when the kind is not yet
	// initialized or has no generator.
	Deserializer(pos string, g *GenContext) (string, error)
}

// Resolver resolves kind references by name during initialization.
type Resolver interface {
	Lookup(name string) (Kind, error)
}

// layout is the descriptor state shared by every kind implementation.
type layout struct {
	name  string
	size  int
	align int
	niche *Niche
	ready bool
}

func (l *layout) Name() string   { return l.name }
func (l *layout) Size() int      { return l.size }
func (l *layout) Alignment() int { return l.align }
func (l *layout) Niche() *Niche  { return l.niche }

// initBase establishes the fields common to all definitions.
func (l *layout) initBase(def Def) error {
	if def.Name == "" {
		return schemaErrf("", CodeMissingField, "%s definition missing name", def.Kind)
	}
	l.name = def.Name
	l.align = 1
	return nil
}

// requireReady guards generation entry points against uninitialized kinds.
func (l *layout) requireReady() error {
	if !l.ready {
		name := l.name
		if name == "" {
			name = "(uninitialized)"
		}
		return codegenErrf(name, CodeNotInitialized, "kind queried before initialization completed")
	}
	return nil
}

// alignUp rounds n up to the next multiple of align (align >= 1).
func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	rem := n % align
	if rem == 0 {
		return n
	}
	return n + align - rem
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
