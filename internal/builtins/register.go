package builtins

import (
	"github.com/vesperlang/vesperc/internal/config"
	"github.com/vesperlang/vesperc/internal/types"
	"github.com/vesperlang/vesperc/internal/values"
)

// register seeds the hierarchy in the fixed, position-sensitive order
// spec.md §4.E requires: Obj first (every class's implicit superclass), the
// numeric tower next (so later trait impls can reference Ord/Eq already
// attached to Int/Nat/Float), then Bool/Str, then the built-in generic
// containers, then Option/Result (which reference Bool's class entry in
// their isSome/isOk-style builtins).
func (r *Registry) register() {
	obj := r.newClass("Obj", types.BMono{B: types.Obj}, nil)

	num := func(b types.Builtin, name string) *ClassEntry {
		return r.newClass(name, types.BMono{B: b}, []types.Type{obj.T})
	}
	intC := num(types.Int, "Int")
	natC := num(types.Nat, "Nat")
	floatC := num(types.Float, "Float")
	r.addMutableVariant(intC, "Int!")
	r.addMutableVariant(natC, "Nat!")
	r.addMutableVariant(floatC, "Float!")

	r.addEqOrd(intC)
	r.addEqOrd(natC)
	r.addEqOrd(floatC)

	boolC := r.newClass("Bool", types.BMono{B: types.Bool}, []types.Type{obj.T})
	r.addEqOrd(boolC)

	strC := r.newClass("Str", types.BMono{B: types.Str}, []types.Type{obj.T})
	r.addEqOrd(strC)
	r.addMethod(strC, "len", builtinNative1(func(v values.Value) (values.Value, bool) {
		s, ok := v.(values.Str)
		if !ok {
			return values.Illegal{}, false
		}
		return values.Int32{V: int32(len(s.V))}, true
	}))

	arrayC := r.newClass(config.ArrayTypeName, types.Poly{Name: config.ArrayTypeName}, []types.Type{obj.T})
	r.addMethod(arrayC, config.LenFuncName, builtinNative1(func(v values.Value) (values.Value, bool) {
		a, ok := v.(values.Array)
		if !ok {
			return values.Illegal{}, false
		}
		return values.Int32{V: int32(len(a.Elems))}, true
	}))
	r.addIterTrait(arrayC)

	dictC := r.newClass(config.DictTypeName, types.Poly{Name: config.DictTypeName}, []types.Type{obj.T})
	r.addIterTrait(dictC)

	setC := r.newClass(config.SetTypeName, types.Poly{Name: config.SetTypeName}, []types.Type{obj.T})
	r.addIterTrait(setC)

	optionC := r.newClass(config.OptionTypeName, types.Poly{Name: config.OptionTypeName}, []types.Type{obj.T})
	r.addMethod(optionC, "isSome", builtinNative1(func(v values.Value) (values.Value, bool) {
		rec, ok := v.(values.Record)
		if !ok {
			return values.Illegal{}, false
		}
		_, hasSome := rec.Fields[config.SomeCtorName]
		return values.Bool{V: hasSome}, true
	}))
	r.addMethod(optionC, "isNone", builtinNative1(func(v values.Value) (values.Value, bool) {
		rec, ok := v.(values.Record)
		if !ok {
			return values.Illegal{}, false
		}
		_, hasSome := rec.Fields[config.SomeCtorName]
		return values.Bool{V: !hasSome}, true
	}))

	resultC := r.newClass(config.ResultTypeName, types.Poly{Name: config.ResultTypeName}, []types.Type{obj.T})
	r.addMethod(resultC, "isOk", builtinNative1(func(v values.Value) (values.Value, bool) {
		rec, ok := v.(values.Record)
		if !ok {
			return values.Illegal{}, false
		}
		_, hasOk := rec.Fields[config.OkCtorName]
		return values.Bool{V: hasOk}, true
	}))
}

func (r *Registry) newClass(name string, t types.Type, supers []types.Type) *ClassEntry {
	c := &ClassEntry{Name: name, T: t, Supers: supers, Methods: make(map[string]values.Value)}
	r.classes[name] = c
	return c
}

func (r *Registry) addMethod(c *ClassEntry, name string, subr *values.Subr) {
	c.Methods[name] = subr
}

func (r *Registry) addMutableVariant(c *ClassEntry, mutName string) {
	mc := r.newClass(mutName, types.BMono{B: classOfEntry(c)}, c.Supers)
	c.MutableVariant = mc.T
}

// classOfEntry recovers the Builtin tag a numeric ClassEntry was registered
// with, so its mutable variant can reuse the same BMono shape — every
// built-in numeric class is a BMono by construction in register().
func classOfEntry(c *ClassEntry) types.Builtin {
	if bm, ok := c.T.(types.BMono); ok {
		return bm.B
	}
	return types.Obj
}

// addEqOrd attaches the built-in Eq and Ord trait buckets every primitive
// scalar implements (spec.md §4.E: traits are attached as separately tagged
// methods-context buckets so projection can filter by trait).
func (r *Registry) addEqOrd(c *ClassEntry) {
	eqTrait := types.Mono{QualName: config.EqTraitName}
	ordTrait := types.Mono{QualName: config.OrdTraitName}
	c.TraitImpls = append(c.TraitImpls,
		&traitBucket{trait: eqTrait, methods: map[string]values.Value{
			"eq": builtinNative2(func(a, b values.Value) (values.Value, bool) { return values.TryEq(a, b) }),
			"ne": builtinNative2(func(a, b values.Value) (values.Value, bool) { return values.TryNe(a, b) }),
		}},
		&traitBucket{trait: ordTrait, methods: map[string]values.Value{
			"lt": builtinNative2(func(a, b values.Value) (values.Value, bool) { return values.TryLt(a, b) }),
			"le": builtinNative2(func(a, b values.Value) (values.Value, bool) { return values.TryLe(a, b) }),
			"gt": builtinNative2(func(a, b values.Value) (values.Value, bool) { return values.TryGt(a, b) }),
			"ge": builtinNative2(func(a, b values.Value) (values.Value, bool) { return values.TryGe(a, b) }),
		}},
	)
}

func (r *Registry) addIterTrait(c *ClassEntry) {
	iterTrait := types.Mono{QualName: config.IterTraitName}
	c.TraitImpls = append(c.TraitImpls, &traitBucket{trait: iterTrait, methods: map[string]values.Value{
		config.IterMethodName: builtinNative1(func(v values.Value) (values.Value, bool) { return v, true }),
	}})
}

func builtinNative1(fn func(values.Value) (values.Value, bool)) *values.Subr {
	return &values.Subr{
		SubrKind: values.SubrBuiltinConstFn,
		Builtin: func(args []values.Value) (values.Value, bool) {
			if len(args) != 1 {
				return values.Illegal{}, false
			}
			return fn(args[0])
		},
	}
}

func builtinNative2(fn func(values.Value, values.Value) (values.Value, bool)) *values.Subr {
	return &values.Subr{
		SubrKind: values.SubrBuiltinConstFn,
		Builtin: func(args []values.Value) (values.Value, bool) {
			if len(args) != 2 {
				return values.Illegal{}, false
			}
			return fn(args[0], args[1])
		},
	}
}
