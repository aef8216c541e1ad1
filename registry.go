package flatkind

import "sync"

// Ctor builds one uninitialized kind instance for a category.
type Ctor func() Kind

// Registry maps category tags to kind constructors. A Registry is populated at
// startup and read-only during schema compilation; the zero value is not
// usable, construct with NewRegistry.
type Registry struct {
	mu    sync.RWMutex
	ctors map[Category]Ctor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[Category]Ctor)}
}

// Register binds a category tag to a constructor. Re-registration is rejected
// with a SchemaError: silently replacing a constructor hides initialization
// order bugs, so each tag maps to exactly one constructor for the lifetime of
// the registry.
func (r *Registry) Register(cat Category, ctor Ctor) error {
	if cat == "" || ctor == nil {
		return schemaErrf("", CodeBadField, "registration requires a category tag and a constructor")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ctors[cat]; exists {
		return schemaErrf("", CodeDuplicateRegistration, "category %q is already registered", cat)
	}
	r.ctors[cat] = ctor
	return nil
}

// New instantiates an uninitialized kind for the category.
func (r *Registry) New(cat Category) (Kind, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[cat]
	r.mu.RUnlock()
	if !ok {
		return nil, schemaErrf("", CodeUnknownCategory, "no kind registered for category %q", cat)
	}
	return ctor(), nil
}

// Categories returns the registered category tags in unspecified order.
func (r *Registry) Categories() []Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Category, 0, len(r.ctors))
	for cat := range r.ctors {
		out = append(out, cat)
	}
	return out
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by Compile. Built-in
// kind variants register themselves here at init time.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register binds a category on the default registry.
func Register(cat Category, ctor Ctor) error {
	return defaultRegistry.Register(cat, ctor)
}

// mustRegister backs the init-time registration of built-in categories, where
// a duplicate is a programmer error rather than a recoverable condition.
func mustRegister(cat Category, ctor Ctor) {
	if err := defaultRegistry.Register(cat, ctor); err != nil {
		panic(err)
	}
}
