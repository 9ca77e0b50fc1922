package types

import (
	"testing"

	"github.com/vesperlang/vesperc/internal/tyvar"
)

func TestIsSubtypeBuiltinPromotionLattice(t *testing.T) {
	if !IsSubtypeBuiltin(Bool, Float) {
		t.Fatal("Bool should be a subtype of Float via Bool<Nat<Int<Ratio<Float")
	}
	if IsSubtypeBuiltin(Float, Bool) {
		t.Fatal("Float should not be a subtype of Bool")
	}
	if !IsSubtypeBuiltin(Never, Str) {
		t.Fatal("Never is the universal subtype")
	}
	if !IsSubtypeBuiltin(Str, Obj) {
		t.Fatal("Obj is the universal supertype")
	}
}

func TestBMonoEquality(t *testing.T) {
	if !(BMono{B: Int}).Equal(BMono{B: Int}) {
		t.Fatal("identical builtins should be equal")
	}
	if (BMono{B: Int}).Equal(BMono{B: Nat}) {
		t.Fatal("distinct builtins should not be equal")
	}
}

func TestAndOrCommutativeEquality(t *testing.T) {
	a := And{L: BMono{B: Int}, R: BMono{B: Str}}
	b := And{L: BMono{B: Str}, R: BMono{B: Int}}
	if !a.Equal(b) {
		t.Fatal("And should be commutative for equality")
	}
	o := Or{L: BMono{B: Int}, R: BMono{B: Str}}
	ob := Or{L: BMono{B: Str}, R: BMono{B: Int}}
	if !o.Equal(ob) {
		t.Fatal("Or should be commutative for equality")
	}
}

func TestRefinementConstructionMergesNesting(t *testing.T) {
	inner := NewRefinement("x", BMono{B: Int}, PredConst{Name: "x"})
	outer := NewRefinement("y", inner, NewPredGreaterEqual(TPValue{}))
	if _, nested := outer.Base.(Refinement); nested {
		t.Fatal("NewRefinement must not produce a nested Refinement(Refinement(...))")
	}
	if outer.Var != "x" {
		t.Fatalf("merged refinement should retain the inner variable name, got %q", outer.Var)
	}
	if _, ok := outer.Pred.(PredOr); !ok {
		t.Fatal("merged refinement's predicate should be an Or of the two predicates")
	}
}

func TestQuantifyDistributesOverAnd(t *testing.T) {
	s1 := Subr{Kind: SubrFunc, Return: BMono{B: Int}}
	s2 := Subr{Kind: SubrFunc, Return: BMono{B: Str}}
	q := Quantify(And{L: s1, R: s2})
	a, ok := q.(And)
	if !ok {
		t.Fatalf("Quantify(And(...)) should distribute into an And of Quantified, got %T", q)
	}
	if _, ok := a.L.(Quantified); !ok {
		t.Fatal("left branch should be individually quantified")
	}
	if _, ok := a.R.(Quantified); !ok {
		t.Fatal("right branch should be individually quantified")
	}
}

func TestNormalizeCollapsesDoubleNot(t *testing.T) {
	n := Not{Inner: Not{Inner: BMono{B: Bool}}}
	got := Normalize(n)
	if !got.Equal(BMono{B: Bool}) {
		t.Fatalf("double negation should collapse, got %s", got.String())
	}
}

func TestReplaceFailureCovariantVsContravariant(t *testing.T) {
	f := BMono{B: Failure}
	if !ReplaceFailure(f, true).Equal(BMono{B: Never}) {
		t.Fatal("covariant position should replace Failure with Never")
	}
	if !ReplaceFailure(f, false).Equal(BMono{B: Obj}) {
		t.Fatal("contravariant position should replace Failure with Obj")
	}
}

func TestContainsTVarFindsNestedCell(t *testing.T) {
	cell := tyvar.NewStore().NewUnbound(0, tyvar.UninitedConstraint())
	fv := FreeVar{Cell: cell}
	refTy := Ref{Inner: fv}
	if !ContainsTVar(refTy, cell.ID()) {
		t.Fatal("ContainsTVar should find the cell nested inside a Ref")
	}
	if ContainsTVar(BMono{B: Int}, cell.ID()) {
		t.Fatal("ContainsTVar should not find an unrelated cell id in an unrelated type")
	}
}
