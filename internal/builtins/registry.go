// Package builtins implements BuiltinRegistry (spec.md §3.6/§4.E): the
// global compile-time context seeded with the built-in class/trait
// hierarchy that compteval.Registry queries.
//
// Grounded on internal/evaluator/builtins.go (a package-level
// table validated by an init() check, plus per-type builtin-method maps like
// builtins_option.go's OptionBuiltins()/builtins_result.go's
// ResultBuiltins()) — generalized here from "runtime Object-returning Go
// closures, one flat map" into "position-sensitive class registration, one
// ClassEntry per built-in type, assembled in register()'s fixed order"
// because later entries (e.g. Option) need earlier ones (e.g. Bool, for
// isSome's return type) already present.
package builtins

import (
	"github.com/vesperlang/vesperc/internal/compteval"
	"github.com/vesperlang/vesperc/internal/types"
	"github.com/vesperlang/vesperc/internal/values"
)

// ClassEntry is one built-in class/trait's compile-time surface: its own
// method table, the superclasses it was registered with, the traits it
// implements (each as its own tagged MethodsContext), and the mutable
// variant's type, if any (spec.md §4.E: "a mutable-variant pointer, e.g.
// Int! for Int").
type ClassEntry struct {
	Name           string
	T              types.Type
	Supers         []types.Type
	Methods        map[string]values.Value
	TraitImpls     []*traitBucket
	MutableVariant types.Type // non-nil: the registered mutable-variant type of this entry
}

func (c *ClassEntry) Get(name string) (values.Value, bool) {
	v, ok := c.Methods[name]
	return v, ok
}

func (c *ClassEntry) Trait() types.Type { return nil }

// traitBucket is a methods context tagged with the trait type it implements,
// so compteval.EvalProj can filter by trait when a name is ambiguous across
// multiple implemented traits (spec.md §4.E: "Trait implementations are
// attached as methods contexts tagged with the implementing trait type").
type traitBucket struct {
	trait   types.Type
	methods map[string]values.Value
}

func (t *traitBucket) Get(name string) (values.Value, bool) {
	v, ok := t.methods[name]
	return v, ok
}
func (t *traitBucket) Trait() types.Type { return t.trait }

// Registry is the process-wide built-in compile-time context. Registration
// is position-sensitive: register() populates classes in a fixed order so
// later classes (Option, Result) can reference earlier ones' trait
// implementations (spec.md §4.E).
type Registry struct {
	classes map[string]*ClassEntry
	consts  map[string]values.Value
}

var _ compteval.Registry = (*Registry)(nil)
var _ compteval.MethodsContext = (*ClassEntry)(nil)

// New builds and fully populates the built-in registry. Construction is the
// only time classes are registered; the returned Registry is read-only
// thereafter (spec.md §5's single-threaded core never mutates it concurrently).
func New() *Registry {
	r := &Registry{
		classes: make(map[string]*ClassEntry),
		consts:  make(map[string]values.Value),
	}
	r.register()
	return r
}

func (r *Registry) GetConstObj(qualName string) (values.Value, bool) {
	v, ok := r.consts[qualName]
	return v, ok
}

func (r *Registry) GetMod(typeName string) (compteval.MethodsContext, bool) {
	c, ok := r.classes[typeName]
	if !ok {
		return nil, false
	}
	return c, true
}

// GetNominalSuperTypeCtxs returns t's registered entry's superclass method
// contexts (in the MRO order they were registered), followed by its
// trait-impl buckets — the full projection fallback chain spec.md §4.D names.
func (r *Registry) GetNominalSuperTypeCtxs(t types.Type) []compteval.MethodsContext {
	entry := r.entryFor(t)
	if entry == nil {
		return nil
	}
	var out []compteval.MethodsContext
	for _, sup := range entry.Supers {
		if supEntry := r.entryFor(sup); supEntry != nil {
			out = append(out, supEntry)
		}
	}
	for _, tb := range entry.TraitImpls {
		out = append(out, tb)
	}
	return out
}

func (r *Registry) entryFor(t types.Type) *ClassEntry {
	c, ok := r.classes[types.QualName(t)]
	if !ok {
		return nil
	}
	return c
}

// MutableVariantOf returns the registered mutable-variant type for a
// built-in class name, if one was registered (spec.md §4.E).
func (r *Registry) MutableVariantOf(name string) (types.Type, bool) {
	c, ok := r.classes[name]
	if !ok || c.MutableVariant == nil {
		return nil, false
	}
	return c.MutableVariant, true
}
