package values

import "strings"

// Array is an ordered, growable sequence (spec.md §3.1). Hash folds element
// hashes so two structurally-equal arrays hash equal without requiring a
// canonical serialization pass.
type Array struct {
	Elems []Value
}

func (a Array) Kind() Kind { return KindArray }

func (a Array) String() string {
	parts := make([]string, len(a.Elems))
	for i, e := range a.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (a Array) Hash() uint64 {
	h := uint64(0x9E3779B97F4A7C15)
	for _, e := range a.Elems {
		h = (h ^ e.Hash()) * 1099511628211
	}
	return h
}

func (a Array) Equals(o Value) bool {
	oa, ok := o.(Array)
	if !ok || len(oa.Elems) != len(a.Elems) {
		return false
	}
	for i := range a.Elems {
		if !a.Elems[i].Equals(oa.Elems[i]) {
			return false
		}
	}
	return true
}

// Tuple is a fixed-arity heterogeneous product.
type Tuple struct {
	Elems []Value
}

func (t Tuple) Kind() Kind { return KindTuple }

func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t Tuple) Hash() uint64 {
	h := uint64(0xC2B2AE3D27D4EB4F)
	for _, e := range t.Elems {
		h = (h ^ e.Hash()) * 1099511628211
	}
	return h
}

func (t Tuple) Equals(o Value) bool {
	ot, ok := o.(Tuple)
	if !ok || len(ot.Elems) != len(t.Elems) {
		return false
	}
	for i := range t.Elems {
		if !t.Elems[i].Equals(ot.Elems[i]) {
			return false
		}
	}
	return true
}

// Set is an unordered collection of distinct Values, keyed by Hash with an
// Equals-based collision check — the same scheme a Go map[uint64][]Value
// bucket gives us without requiring Value to be a comparable Go type (Array
// and Dict, containing slices/maps, are not).
type Set struct {
	buckets map[uint64][]Value
}

// NewSet builds a Set from elems, deduplicating as it inserts.
func NewSet(elems ...Value) *Set {
	s := &Set{buckets: make(map[uint64][]Value)}
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

func (s *Set) Kind() Kind { return KindSet }

func (s *Set) String() string {
	parts := make([]string, 0, len(s.buckets))
	for _, bucket := range s.buckets {
		for _, v := range bucket {
			parts = append(parts, v.String())
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (s *Set) Hash() uint64 {
	var h uint64
	for k, bucket := range s.buckets {
		h ^= k * uint64(len(bucket)+1)
	}
	return h
}

func (s *Set) Equals(o Value) bool {
	os, ok := o.(*Set)
	if !ok || os.Len() != s.Len() {
		return false
	}
	for _, bucket := range s.buckets {
		for _, v := range bucket {
			if !os.Contains(v) {
				return false
			}
		}
	}
	return true
}

// Add inserts v, returning false if an equal element was already present.
func (s *Set) Add(v Value) bool {
	h := v.Hash()
	for _, existing := range s.buckets[h] {
		if existing.Equals(v) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], v)
	return true
}

func (s *Set) Contains(v Value) bool {
	for _, existing := range s.buckets[v.Hash()] {
		if existing.Equals(v) {
			return true
		}
	}
	return false
}

func (s *Set) Len() int {
	n := 0
	for _, b := range s.buckets {
		n += len(b)
	}
	return n
}

// Dict is a hash map keyed by Value identity (via Hash+Equals, same scheme
// as Set).
type Dict struct {
	buckets map[uint64][]dictEntry
}

type dictEntry struct {
	key, val Value
}

func NewDict() *Dict {
	return &Dict{buckets: make(map[uint64][]dictEntry)}
}

func (d *Dict) Kind() Kind { return KindDict }

func (d *Dict) String() string {
	parts := make([]string, 0)
	for _, bucket := range d.buckets {
		for _, e := range bucket {
			parts = append(parts, e.key.String()+": "+e.val.String())
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (d *Dict) Hash() uint64 {
	var h uint64
	for k, bucket := range d.buckets {
		h ^= k * uint64(len(bucket)+1)
	}
	return h
}

func (d *Dict) Equals(o Value) bool {
	od, ok := o.(*Dict)
	if !ok || od.Len() != d.Len() {
		return false
	}
	for _, bucket := range d.buckets {
		for _, e := range bucket {
			v, ok := od.Get(e.key)
			if !ok || !v.Equals(e.val) {
				return false
			}
		}
	}
	return true
}

func (d *Dict) Set(key, val Value) {
	h := key.Hash()
	bucket := d.buckets[h]
	for i, e := range bucket {
		if e.key.Equals(key) {
			bucket[i].val = val
			return
		}
	}
	d.buckets[h] = append(bucket, dictEntry{key, val})
}

func (d *Dict) Get(key Value) (Value, bool) {
	for _, e := range d.buckets[key.Hash()] {
		if e.key.Equals(key) {
			return e.val, true
		}
	}
	return nil, false
}

func (d *Dict) Len() int {
	n := 0
	for _, b := range d.buckets {
		n += len(b)
	}
	return n
}

// Record is a closed collection of named fields (spec.md §3.1) — the value-
// level counterpart of TypeModel's types.Record.
type Record struct {
	Fields map[string]Value
}

func (r Record) Kind() Kind { return KindRecord }

func (r Record) String() string {
	parts := make([]string, 0, len(r.Fields))
	for k, v := range r.Fields {
		parts = append(parts, k+" = "+v.String())
	}
	return "{" + strings.Join(parts, "; ") + "}"
}

func (r Record) Hash() uint64 {
	var h uint64
	for k, v := range r.Fields {
		h ^= (fnv64(k) ^ v.Hash()) * 1099511628211
	}
	return h
}

func (r Record) Equals(o Value) bool {
	or, ok := o.(Record)
	if !ok || len(or.Fields) != len(r.Fields) {
		return false
	}
	for k, v := range r.Fields {
		ov, ok := or.Fields[k]
		if !ok || !v.Equals(ov) {
			return false
		}
	}
	return true
}

// DataClass is a named product type instance — distinguished from
// Record by carrying a nominal ClassName in addition to its fields, so
// two DataClasses with identical field sets but different declared classes
// are unequal (nominal typing, matching spec.md §3.1's "class() reflects the
// declared nominal type, not merely its structural shape").
type DataClass struct {
	ClassName string
	Fields    map[string]Value
}

func (d DataClass) Kind() Kind { return KindDataClass }

func (d DataClass) String() string {
	parts := make([]string, 0, len(d.Fields))
	for k, v := range d.Fields {
		parts = append(parts, k+" = "+v.String())
	}
	return d.ClassName + "{" + strings.Join(parts, "; ") + "}"
}

func (d DataClass) Hash() uint64 {
	h := fnv64(d.ClassName)
	for k, v := range d.Fields {
		h ^= (fnv64(k) ^ v.Hash()) * 1099511628211
	}
	return h
}

func (d DataClass) Equals(o Value) bool {
	od, ok := o.(DataClass)
	if !ok || od.ClassName != d.ClassName || len(od.Fields) != len(d.Fields) {
		return false
	}
	for k, v := range d.Fields {
		ov, ok := od.Fields[k]
		if !ok || !v.Equals(ov) {
			return false
		}
	}
	return true
}
