package compteval

import (
	"testing"

	"github.com/vesperlang/vesperc/internal/tyvar"
	"github.com/vesperlang/vesperc/internal/types"
)

func TestSubstituteTyparamsLinksQvarAndUndoesOnClose(t *testing.T) {
	store := tyvar.NewStore()
	cell := store.NewUnbound(0, tyvar.UninitedConstraint())
	qvar := types.FreeVar{Cell: cell}

	generic := types.Poly{Name: "Box", Params: []types.TypeParam{types.TPType{T: qvar}}}
	concrete := types.Poly{Name: "Box", Params: []types.TypeParam{types.TPType{T: types.BMono{B: types.Int}}}}

	s := NewSubstituter()
	if !s.SubstituteTyparams(generic, concrete) {
		t.Fatal("expected substitution to succeed")
	}
	resolved, ok := types.ResolveFreeVar(qvar)
	if !ok || !resolved.Equal(types.BMono{B: types.Int}) {
		t.Fatalf("want qvar linked to Int, got %#v (ok=%v)", resolved, ok)
	}

	s.Close()
	if _, ok := types.ResolveFreeVar(qvar); ok {
		t.Fatal("expected qvar to be Unbound again after Close")
	}
}

func TestSubstituteTyparamsCommutesOrArguments(t *testing.T) {
	store := tyvar.NewStore()
	cellA := store.NewUnbound(0, tyvar.UninitedConstraint())
	cellB := store.NewUnbound(0, tyvar.UninitedConstraint())
	fvA := types.FreeVar{Cell: cellA}
	fvB := types.FreeVar{Cell: cellB}

	generic := types.Or{L: types.Ref{Inner: fvA}, R: fvB}
	// The straight L-L pairing fails (Ref against Int), so the qvars can only
	// be bound through the crossed pairing.
	concrete := types.Or{L: types.BMono{B: types.Int}, R: types.Ref{Inner: types.BMono{B: types.Str}}}

	s := NewSubstituter()
	defer s.Close()
	if !s.substituteType(generic, concrete) {
		t.Fatal("expected commuted Or substitution to succeed")
	}
	rA, _ := types.ResolveFreeVar(fvA)
	rB, _ := types.ResolveFreeVar(fvB)
	if !rA.Equal(types.BMono{B: types.Str}) || !rB.Equal(types.BMono{B: types.Int}) {
		t.Fatalf("want fvA=Str fvB=Int, got fvA=%v fvB=%v", rA, rB)
	}
}

func TestSubstituteSelfLinksMatchingSandwichedFreeVars(t *testing.T) {
	store := tyvar.NewStore()
	selfTy := types.Mono{QualName: "Widget"}
	cell := store.NewUnbound(0, tyvar.SandwichedConstraint(nil, selfTy))
	fv := types.FreeVar{Cell: cell}

	wrapper := types.Ref{Inner: fv}
	s := NewSubstituter()
	defer s.Close()
	s.SubstituteSelf(wrapper, selfTy)

	resolved, ok := types.ResolveFreeVar(fv)
	if !ok || !resolved.Equal(selfTy) {
		t.Fatalf("want fv linked to Widget, got %#v (ok=%v)", resolved, ok)
	}
}
