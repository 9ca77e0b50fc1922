package types

import (
	"testing"

	"github.com/vesperlang/vesperc/internal/values"
)

func TestTPValueEqualityDelegatesToValue(t *testing.T) {
	a := TPValue{V: values.Int32{V: 3}}
	b := TPValue{V: values.Int32{V: 3}}
	c := TPValue{V: values.Int32{V: 4}}
	if !a.Equal(b) {
		t.Fatal("TPValues wrapping equal Values should be equal")
	}
	if a.Equal(c) {
		t.Fatal("TPValues wrapping distinct Values should not be equal")
	}
}

func TestTPSetEqualityIsOrderIndependent(t *testing.T) {
	a := TPSet{Elems: []TypeParam{TPMono{Name: "x"}, TPMono{Name: "y"}}}
	b := TPSet{Elems: []TypeParam{TPMono{Name: "y"}, TPMono{Name: "x"}}}
	if !a.Equal(b) {
		t.Fatal("TPSet equality should be order-independent")
	}
}

func TestTPAppEquality(t *testing.T) {
	a := TPApp{Name: "succ", Args: []TypeParam{TPMono{Name: "N"}}}
	b := TPApp{Name: "succ", Args: []TypeParam{TPMono{Name: "N"}}}
	c := TPApp{Name: "succ", Args: []TypeParam{TPMono{Name: "M"}}}
	if !a.Equal(b) {
		t.Fatal("identical TPApp should be equal")
	}
	if a.Equal(c) {
		t.Fatal("TPApp with different args should not be equal")
	}
}

func TestTPFreeVarEqualityByCellIdentity(t *testing.T) {
	c1 := &valueCell{ID: 1}
	c2 := &valueCell{ID: 2}
	a := TPFreeVar{Cell: c1}
	b := TPFreeVar{Cell: c1}
	other := TPFreeVar{Cell: c2}
	if !a.Equal(b) {
		t.Fatal("same cell pointer should be equal")
	}
	if a.Equal(other) {
		t.Fatal("distinct cells should not be equal")
	}
}

func TestTPRecordLitEquality(t *testing.T) {
	a := TPRecordLit{Fields: map[string]TypeParam{"x": TPMono{Name: "Int"}}}
	b := TPRecordLit{Fields: map[string]TypeParam{"x": TPMono{Name: "Int"}}}
	c := TPRecordLit{Fields: map[string]TypeParam{"x": TPMono{Name: "Str"}}}
	if !a.Equal(b) {
		t.Fatal("identical field maps should be equal")
	}
	if a.Equal(c) {
		t.Fatal("differing field values should not be equal")
	}
}

func TestTPFailureAbsorbing(t *testing.T) {
	if !(TPFailure{}).Equal(TPFailure{}) {
		t.Fatal("TPFailure should equal itself")
	}
	if (TPFailure{}).Equal(TPMono{Name: "x"}) {
		t.Fatal("TPFailure should not equal an unrelated TypeParam")
	}
}
