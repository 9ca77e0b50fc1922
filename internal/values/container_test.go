package values

import "testing"

func TestSetDedup(t *testing.T) {
	s := NewSet(Int32{V: 1}, Int32{V: 2}, Int32{V: 1})
	if s.Len() != 2 {
		t.Fatalf("set len = %d; want 2", s.Len())
	}
	if !s.Contains(Int32{V: 2}) {
		t.Fatal("set should contain 2")
	}
}

func TestDictOverwrite(t *testing.T) {
	d := NewDict()
	d.Set(Str{V: "x"}, Int32{V: 1})
	d.Set(Str{V: "x"}, Int32{V: 2})
	v, ok := d.Get(Str{V: "x"})
	if !ok || v.(Int32).V != 2 {
		t.Fatalf("dict[x] = %v, %v; want 2, true", v, ok)
	}
	if d.Len() != 1 {
		t.Fatalf("dict len = %d; want 1", d.Len())
	}
}

func TestRecordEqualityIgnoresOrder(t *testing.T) {
	r1 := Record{Fields: map[string]Value{"a": Int32{V: 1}, "b": Int32{V: 2}}}
	r2 := Record{Fields: map[string]Value{"b": Int32{V: 2}, "a": Int32{V: 1}}}
	if !r1.Equals(r2) {
		t.Fatal("records with the same fields should be equal regardless of insertion order")
	}
}

func TestDataClassNominalInequality(t *testing.T) {
	fields := map[string]Value{"x": Int32{V: 1}}
	d1 := DataClass{ClassName: "Point", Fields: fields}
	d2 := DataClass{ClassName: "Vec", Fields: fields}
	if d1.Equals(d2) {
		t.Fatal("DataClasses with different declared class names must not be equal")
	}
}

func TestArrayHashStable(t *testing.T) {
	a1 := Array{Elems: []Value{Int32{V: 1}, Str{V: "x"}}}
	a2 := Array{Elems: []Value{Int32{V: 1}, Str{V: "x"}}}
	if a1.Hash() != a2.Hash() {
		t.Fatal("structurally-equal arrays must hash equal")
	}
	if !a1.Equals(a2) {
		t.Fatal("structurally-equal arrays must be Equals")
	}
}
