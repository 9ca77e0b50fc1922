package types

import "testing"

func TestMergeRefinementPredicateRetainsInnerVarAndOrsPredicates(t *testing.T) {
	inner := Refinement{Var: "x", Base: BMono{B: Int}, Pred: PredConst{Name: "x"}}
	outer := Refinement{Var: "y", Base: inner, Pred: NewPredGreaterEqual(TPMono{Name: "x"})}

	merged := MergeRefinementPredicate(outer)
	if merged.Var != "x" {
		t.Fatalf("merged Var = %q, want %q", merged.Var, "x")
	}
	if !merged.Base.Equal(BMono{B: Int}) {
		t.Fatal("merged Base should be the innermost base type")
	}
	or, ok := merged.Pred.(PredOr)
	if !ok {
		t.Fatalf("merged predicate should be a PredOr, got %T", merged.Pred)
	}
	if !or.L.Equal(inner.Pred) || !or.R.Equal(outer.Pred) {
		t.Fatal("PredOr should combine inner then outer predicate")
	}
}

func TestMergeRefinementPredicateNoOpWhenBaseNotRefinement(t *testing.T) {
	r := Refinement{Var: "x", Base: BMono{B: Int}, Pred: PredConst{Name: "x"}}
	got := MergeRefinementPredicate(r)
	if !got.Pred.Equal(r.Pred) || got.Var != r.Var {
		t.Fatal("MergeRefinementPredicate should be a no-op when Base isn't itself a Refinement")
	}
}

func TestPredAndOrCommutativeEquality(t *testing.T) {
	a := PredAnd{L: PredConst{Name: "x"}, R: PredConst{Name: "y"}}
	b := PredAnd{L: PredConst{Name: "y"}, R: PredConst{Name: "x"}}
	if !a.Equal(b) {
		t.Fatal("PredAnd should be commutative for equality")
	}
}

func TestPredCallReceiverNilHandling(t *testing.T) {
	a := PredCall{Name: "is_even", Args: nil}
	b := PredCall{Name: "is_even", Args: nil}
	if !a.Equal(b) {
		t.Fatal("two nil-receiver PredCalls with the same name should be equal")
	}
	c := PredCall{Receiver: TPMono{Name: "x"}, Name: "is_even"}
	if a.Equal(c) {
		t.Fatal("a nil-receiver and a non-nil-receiver PredCall should not be equal")
	}
}
