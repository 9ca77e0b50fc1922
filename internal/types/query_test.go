package types

import (
	"testing"

	"github.com/vesperlang/vesperc/internal/values"
)

func TestQualNameLocalNameNamespace(t *testing.T) {
	m := Mono{QualName: "collections.List"}
	if QualName(m) != "collections.List" {
		t.Fatalf("QualName = %q", QualName(m))
	}
	if LocalName(m) != "List" {
		t.Fatalf("LocalName = %q", LocalName(m))
	}
	if Namespace(m) != "collections" {
		t.Fatalf("Namespace = %q", Namespace(m))
	}
	if QualName(BMono{B: Int}) != "Int" {
		t.Fatalf("QualName of a builtin should be its builtin name")
	}
	if QualName(Ref{Inner: BMono{B: Int}}) != "" {
		t.Fatal("a Ref has no intrinsic qualified name")
	}
}

func TestReturnTAndParamsDistributeOverQuantified(t *testing.T) {
	s := Subr{
		Kind:             SubrFunc,
		NonDefaultParams: []Param{{Name: "self", ParamType: BMono{B: Obj}}, {Name: "n", ParamType: BMono{B: Int}}},
		DefaultParams:    []Param{{Name: "step", ParamType: BMono{B: Int}, Default: BMono{B: Int}}},
		Return:           BMono{B: Bool},
	}
	q := Quantified{Inner: s}
	ret, ok := ReturnT(q)
	if !ok || !ret.Equal(BMono{B: Bool}) {
		t.Fatal("ReturnT should see through a Quantified wrapper")
	}
	params, ok := NonDefaultParams(q)
	if !ok || len(params) != 2 {
		t.Fatalf("NonDefaultParams through Quantified, got %v", params)
	}
	self, ok := SelfT(q)
	if !ok || !self.Equal(BMono{B: Obj}) {
		t.Fatal("SelfT should extract the first param named self")
	}
	defaults, ok := DefaultParams(q)
	if !ok || len(defaults) != 1 {
		t.Fatal("DefaultParams should pass through Quantified")
	}
}

func TestSelfTAbsentWhenFirstParamIsNotSelf(t *testing.T) {
	s := Subr{Kind: SubrFunc, NonDefaultParams: []Param{{Name: "n", ParamType: BMono{B: Int}}}, Return: BMono{B: Int}}
	if _, ok := SelfT(s); ok {
		t.Fatal("SelfT should be absent when the first param isn't named self")
	}
}

func TestUnionAndIntersectionTypesFlatten(t *testing.T) {
	u := Or{L: Or{L: BMono{B: Int}, R: BMono{B: Str}}, R: BMono{B: Bool}}
	leaves := UnionTypes(u)
	if len(leaves) != 3 {
		t.Fatalf("expected 3 flattened union leaves, got %d", len(leaves))
	}
	i := And{L: BMono{B: Int}, R: And{L: BMono{B: Str}, R: BMono{B: Bool}}}
	ileaves := IntersectionTypes(i)
	if len(ileaves) != 3 {
		t.Fatalf("expected 3 flattened intersection leaves, got %d", len(ileaves))
	}
}

func TestContainerLenFromTrailingTPValue(t *testing.T) {
	arr := Poly{Name: "Array", Params: []TypeParam{TPType{T: BMono{B: Int}}, TPValue{V: values.Nat{V: 3}}}}
	n, ok := ContainerLen(arr)
	if !ok || n != 3 {
		t.Fatalf("ContainerLen = (%d, %v), want (3, true)", n, ok)
	}
	if _, ok := ContainerLen(Poly{Name: "List", Params: []TypeParam{TPType{T: BMono{B: Int}}}}); ok {
		t.Fatal("ContainerLen should be false when the trailing param isn't a TPValue")
	}
}

func TestIsPredicateFamily(t *testing.T) {
	if !IsRef(Ref{Inner: BMono{B: Int}}) {
		t.Fatal("IsRef should be true for a Ref")
	}
	if IsRef(BMono{B: Int}) {
		t.Fatal("IsRef should be false for a BMono")
	}
	if !IsNever(BMono{B: Never}) {
		t.Fatal("IsNever should recognize BMono{Never}")
	}
	if !IsFailure(BMono{B: Failure}) {
		t.Fatal("IsFailure should recognize BMono{Failure}")
	}
	if !IsAnd(And{L: BMono{B: Int}, R: BMono{B: Str}}) {
		t.Fatal("IsAnd should recognize And")
	}
}
