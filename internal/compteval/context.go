package compteval

import (
	"github.com/vesperlang/vesperc/internal/types"
	"github.com/vesperlang/vesperc/internal/values"
)

// MethodsContext is one named bucket of compile-time members — a type's own
// body, a supertype's body in MRO order, or a trait-impl bucket (spec.md
// §4.D's three projection-resolution steps all return this shape).
type MethodsContext interface {
	Get(name string) (values.Value, bool)
	// Trait is the implemented trait type this bucket is tagged with, or nil
	// if this bucket is a plain (non-trait) methods context — spec.md §4.E:
	// "Trait implementations are attached as methods contexts tagged with
	// the implementing trait type, so projection resolution can filter by
	// trait."
	Trait() types.Type
}

// Registry is the narrow query surface Evaluator needs from BuiltinRegistry
// (spec.md §9: "Factor the context so the evaluator takes only the query
// surface it needs: get_const_obj, get_mod, get_nominal_super_type_ctxs").
// internal/builtins.Registry implements this; compteval never imports
// internal/builtins, avoiding a cycle since builtins' own const-fn bodies
// are themselves evaluated through this package.
type Registry interface {
	// GetConstObj resolves a top-level (module-scope) constant binding.
	GetConstObj(qualName string) (values.Value, bool)
	// GetMod returns the named type's own methods context.
	GetMod(typeName string) (MethodsContext, bool)
	// GetNominalSuperTypeCtxs returns t's supertypes' methods contexts, in
	// MRO order, followed by its trait-impl buckets.
	GetNominalSuperTypeCtxs(t types.Type) []MethodsContext
}

// Context is the transient, child-scoped evaluation environment spec.md
// §4.D describes in place of a runtime Environment: a chain of binding
// frames rooted at a Registry, with no mutable heap and no I/O.
type Context struct {
	parent   *Context
	registry Registry
	bindings map[string]values.Value
}

// NewRootContext builds the top-level Context for one compilation unit.
func NewRootContext(reg Registry) *Context {
	return &Context{registry: reg, bindings: make(map[string]values.Value)}
}

// Child builds a transient child context seeded with no bindings of its own
// — used for const-function call frames and record-literal evaluation
// (spec.md §4.D: "builds a transient child context").
func (c *Context) Child() *Context {
	return &Context{parent: c, registry: c.registry, bindings: make(map[string]values.Value)}
}

// Bind introduces a name in this context's own frame (never the parent's).
func (c *Context) Bind(name string, v values.Value) {
	c.bindings[name] = v
}

// Lookup walks the binding chain, then falls back to the Registry's
// top-level constants.
func (c *Context) Lookup(name string) (values.Value, bool) {
	for cur := c; cur != nil; cur = cur.parent {
		if v, ok := cur.bindings[name]; ok {
			return v, true
		}
	}
	if c.registry == nil {
		return nil, false
	}
	return c.registry.GetConstObj(name)
}

func (c *Context) Registry() Registry { return c.registry }
