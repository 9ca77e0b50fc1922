package types

import (
	"testing"

	"github.com/vesperlang/vesperc/internal/tyvar"
)

func TestFreeVarEqualityUnresolvedComparesByCellIdentity(t *testing.T) {
	store := tyvar.NewStore()
	c1 := store.NewUnbound(0, tyvar.UninitedConstraint())
	c2 := store.NewUnbound(0, tyvar.UninitedConstraint())
	fv1 := FreeVar{Cell: c1}
	fv1Again := FreeVar{Cell: c1}
	fv2 := FreeVar{Cell: c2}
	if !fv1.Equal(fv1Again) {
		t.Fatal("same unresolved cell should be equal to itself")
	}
	if fv1.Equal(fv2) {
		t.Fatal("distinct unresolved cells should not be equal")
	}
}

func TestFreeVarEqualityChasesLinkedTarget(t *testing.T) {
	c := tyvar.NewStore().NewUnbound(0, tyvar.UninitedConstraint())
	c.Link(BMono{B: Int})
	fv := FreeVar{Cell: c}
	if !fv.Equal(BMono{B: Int}) {
		t.Fatal("a linked FreeVar should compare equal to its resolved target")
	}
	resolved, ok := ResolveFreeVar(fv)
	if !ok || !resolved.Equal(BMono{B: Int}) {
		t.Fatal("ResolveFreeVar should return the linked target")
	}
}

func TestFreeVarUnresolvedDoesNotResolve(t *testing.T) {
	c := tyvar.NewStore().NewUnbound(0, tyvar.UninitedConstraint())
	fv := FreeVar{Cell: c}
	if _, ok := ResolveFreeVar(fv); ok {
		t.Fatal("an Unbound cell should not resolve")
	}
}
