package types

import "testing"

func TestKindWildcardMatchesAnything(t *testing.T) {
	if !Star.Equal(AnyKind) {
		t.Fatal("KWildcard should match KStar")
	}
	arrow := MakeArrow(Star, Star, Star)
	if !arrow.Equal(AnyKind) {
		t.Fatal("KWildcard should match a KArrow too")
	}
}

func TestMakeArrowNesting(t *testing.T) {
	arrow := MakeArrow(Star, Star, Star)
	ka, ok := arrow.(KArrow)
	if !ok {
		t.Fatalf("MakeArrow with 3 args should produce a KArrow, got %T", arrow)
	}
	if !ka.Left.Equal(Star) {
		t.Fatal("first arg should be the arrow's Left")
	}
	inner, ok := ka.Right.(KArrow)
	if !ok {
		t.Fatal("MakeArrow should right-nest remaining args")
	}
	if !inner.Left.Equal(Star) || !inner.Right.Equal(Star) {
		t.Fatal("nested arrow should chain the remaining Star args")
	}
}

func TestMakeArrowSingleArgIsIdentity(t *testing.T) {
	if MakeArrow(Star) != Star {
		t.Fatal("MakeArrow with a single arg should return it unchanged")
	}
}

func TestKVarEqualityByName(t *testing.T) {
	a := KVar{Name: "k1"}
	b := KVar{Name: "k1"}
	c := KVar{Name: "k2"}
	if !a.Equal(b) {
		t.Fatal("KVars with the same name should be equal")
	}
	if a.Equal(c) {
		t.Fatal("KVars with different names should not be equal")
	}
}
