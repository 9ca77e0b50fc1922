package values

import "testing"

func TestTryAddCorrectedAlgebra(t *testing.T) {
	// original_source's try_add subtracts in the (Float, Int) and (Float, Nat)
	// branches; this implementation must add.
	got, ok := TryAdd(Float{V: 2.5}, Int32{V: 3})
	if !ok || got.(Float).V != 5.5 {
		t.Fatalf("Float+Int32 = %v, %v; want 5.5, true", got, ok)
	}
	got, ok = TryAdd(Float{V: 2.5}, Nat{V: 3})
	if !ok || got.(Float).V != 5.5 {
		t.Fatalf("Float+Nat = %v, %v; want 5.5, true", got, ok)
	}
	got, ok = TryAdd(Nat{V: 3}, Float{V: 2.5})
	if !ok || got.(Float).V != 5.5 {
		t.Fatalf("Nat+Float = %v, %v; want 5.5, true", got, ok)
	}
}

func TestTrySubNatNatSignedWiden(t *testing.T) {
	got, ok := TrySub(Nat{V: 3}, Nat{V: 5})
	if !ok {
		t.Fatalf("Nat-Nat should succeed")
	}
	i, ok := got.(Int32)
	if !ok || i.V != -2 {
		t.Fatalf("Nat(3)-Nat(5) = %v; want Int32(-2)", got)
	}
}

func TestTryAddStrConcat(t *testing.T) {
	got, ok := TryAdd(Str{V: "foo"}, Str{V: "bar"})
	if !ok || got.(Str).V != "foobar" {
		t.Fatalf("Str+Str = %v, %v; want foobar, true", got, ok)
	}
}

func TestTryDivAlwaysFloat(t *testing.T) {
	got, ok := TryDiv(Int32{V: 7}, Int32{V: 2})
	if !ok {
		t.Fatal("TryDiv should succeed")
	}
	if _, isFloat := got.(Float); !isFloat {
		t.Fatalf("TryDiv(7,2) = %T; want Float", got)
	}
	if got.(Float).V != 3.5 {
		t.Fatalf("TryDiv(7,2) = %v; want 3.5", got.(Float).V)
	}
}

func TestTryFloorDivNegativeRounding(t *testing.T) {
	got, ok := TryFloorDiv(Int32{V: -7}, Int32{V: 2})
	if !ok || got.(Int32).V != -4 {
		t.Fatalf("floordiv(-7,2) = %v, %v; want -4, true", got, ok)
	}
}

func TestTryModSignMatchesDivisor(t *testing.T) {
	got, ok := TryMod(Int32{V: -7}, Int32{V: 2})
	if !ok || got.(Int32).V != 1 {
		t.Fatalf("mod(-7,2) = %v, %v; want 1, true", got, ok)
	}
}

func TestCellMutatingArithmeticReturnsSelf(t *testing.T) {
	c := NewCell(Int32{V: 10})
	result, ok := TryAdd(c, Int32{V: 5})
	if !ok {
		t.Fatal("cell add should succeed")
	}
	rc, ok := result.(*Cell)
	if !ok || rc != c {
		t.Fatalf("TryAdd on *Cell should return the same cell, got %v", result)
	}
	if got := c.Get().(Int32).V; got != 15 {
		t.Fatalf("cell contents after add = %d; want 15", got)
	}
}

func TestAbsorbInfOppositeSignsNotOk(t *testing.T) {
	if _, ok := TryAdd(Inf{}, NegInf{}); ok {
		t.Fatal("Inf + -Inf must not be ok")
	}
	got, ok := TryAdd(Inf{}, Int32{V: 5})
	if !ok {
		t.Fatal("Inf + finite should be ok")
	}
	if _, isInf := got.(Inf); !isInf {
		t.Fatalf("Inf + finite = %v; want Inf", got)
	}
}

func TestIllegalNeverEqualsItself(t *testing.T) {
	if (Illegal{}).Equals(Illegal{}) {
		t.Fatal("Illegal must never compare equal, even to itself")
	}
}

func TestFloatBitPatternEquality(t *testing.T) {
	nan1 := Float{V: nan()}
	nan2 := Float{V: nan()}
	if !nan1.Equals(nan2) {
		t.Fatal("two NaN Values with identical bit patterns must compare equal")
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestTryCmpAgreesWithTryEq(t *testing.T) {
	a, b := Int32{V: 3}, Int32{V: 3}
	o, ok := TryCmp(a, b)
	if !ok || o != Equal {
		t.Fatalf("TryCmp(3,3) = %v, %v; want Equal, true", o, ok)
	}
	eq, _ := TryEq(a, b)
	if !eq.(Bool).V {
		t.Fatal("TryEq(3,3) must be true when TryCmp is Equal")
	}
}
