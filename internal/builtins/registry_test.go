package builtins

import (
	"testing"

	"github.com/vesperlang/vesperc/internal/compteval"
	"github.com/vesperlang/vesperc/internal/types"
	"github.com/vesperlang/vesperc/internal/values"
)

func TestRegistryResolvesOwnMethod(t *testing.T) {
	r := New()
	ctx := compteval.NewRootContext(r)
	v, ok := compteval.EvalProj(ctx, types.BMono{B: types.Str}, "len", &compteval.Errors{})
	if !ok {
		t.Fatal("expected Str.len to resolve")
	}
	subr, ok := v.(*values.Subr)
	if !ok {
		t.Fatalf("want a Subr, got %#v", v)
	}
	result, errs := compteval.EvalCall(ctx, subr, []values.Value{values.Str{V: "hello"}})
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got, ok := result.(values.Int32); !ok || got.V != 5 {
		t.Fatalf("want Int32(5), got %#v", result)
	}
}

func TestRegistryResolvesTraitImplViaSupertypes(t *testing.T) {
	r := New()
	superCtxs := r.GetNominalSuperTypeCtxs(types.BMono{B: types.Int})
	found := false
	for _, ctx := range superCtxs {
		if v, ok := ctx.Get("eq"); ok {
			if _, ok := v.(*values.Subr); ok {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected Int's Eq trait bucket to expose eq")
	}
}

func TestMutableVariantRegistered(t *testing.T) {
	r := New()
	mv, ok := r.MutableVariantOf("Int")
	if !ok || mv == nil {
		t.Fatal("expected Int to have a registered mutable variant")
	}
}

func TestOptionIsSome(t *testing.T) {
	r := New()
	ctx := compteval.NewRootContext(r)
	var errs compteval.Errors
	v, ok := compteval.EvalProj(ctx, types.Poly{Name: "Option"}, "isSome", &errs)
	if !ok || errs.HasErrors() {
		t.Fatalf("expected Option.isSome to resolve, errs=%v", errs)
	}
	subr := v.(*values.Subr)
	some := values.Record{Fields: map[string]values.Value{"Some": values.Int32{V: 1}}}
	result, callErrs := compteval.EvalCall(ctx, subr, []values.Value{some})
	if callErrs.HasErrors() {
		t.Fatalf("unexpected errors: %v", callErrs)
	}
	if b, ok := result.(values.Bool); !ok || !b.V {
		t.Fatalf("want Bool(true), got %#v", result)
	}
}
