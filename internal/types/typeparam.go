package types

import (
	"strings"

	"github.com/vesperlang/vesperc/internal/values"
)

// TypeParam is the closed sum spec.md §3.3 lists: the vocabulary that fills
// a Poly type's parameter slots and a const-generic's argument position.
//
// Contains-checking (containsTVarInParam, in transform.go) is total; equality
// is structural modulo link-chasing through any embedded FreeVar.
type TypeParam interface {
	String() string
	Equal(TypeParam) bool
}

// TPValue wraps a concrete compile-time Value (spec.md §3.3's `Value`
// variant) — e.g. the `3` in `Array(Int, 3)`.
type TPValue struct{ V values.Value }

func (t TPValue) String() string { return t.V.String() }
func (t TPValue) Equal(o TypeParam) bool {
	ot, ok := o.(TPValue)
	return ok && t.V.Equals(ot.V)
}

// TPType wraps a Type used in a type-parameter position (spec.md §3.3's
// `Type` variant — distinct from TPErased, which means "any value of this
// type" rather than "this type itself").
type TPType struct{ T Type }

func (t TPType) String() string { return t.T.String() }
func (t TPType) Equal(o TypeParam) bool {
	ot, ok := o.(TPType)
	return ok && t.T.Equal(ot.T)
}

// TPErased means "any value of T" — used where a generic parameter is
// known to range over a type without pinning a specific value.
type TPErased struct{ T Type }

func (t TPErased) String() string { return "erased(" + t.T.String() + ")" }
func (t TPErased) Equal(o TypeParam) bool {
	ot, ok := o.(TPErased)
	return ok && t.T.Equal(ot.T)
}

// TPMono is a bare name reference inside a type-parameter position.
type TPMono struct{ Name string }

func (t TPMono) String() string { return t.Name }
func (t TPMono) Equal(o TypeParam) bool {
	ot, ok := o.(TPMono)
	return ok && t.Name == ot.Name
}

// TPApp is a named application of type-parameters to type-parameters
// (spec.md §3.3's `App{name, args}`), e.g. a const-generic function call
// appearing in a type position before it is evaluated down to a TPValue.
type TPApp struct {
	Name string
	Args []TypeParam
}

func (t TPApp) String() string {
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Name + "(" + strings.Join(parts, ", ") + ")"
}
func (t TPApp) Equal(o TypeParam) bool {
	ot, ok := o.(TPApp)
	if !ok || t.Name != ot.Name || len(t.Args) != len(ot.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(ot.Args[i]) {
			return false
		}
	}
	return true
}

// TPFreeVar is an unresolved type-parameter-level variable (distinct from
// types.FreeVar, which lives at the Type level — a const-generic parameter
// like `N` in `Array(T, N)` is a TPFreeVar until eval_const_expr resolves it
// to a TPValue).
type TPFreeVar struct{ Cell *valueCell }

// valueCell is a minimal placeholder identity for a const-generic free
// variable; TPFreeVar equality only needs the identity of this cell.
type valueCell struct{ ID int }

// tpFreeVarSeq is the identity source for fresh TPFreeVar cells. NewTPFreeVar
// is the only way to allocate one from outside this package, since
// valueCell stays unexported here.
var tpFreeVarSeq int

// NewTPFreeVar allocates a fresh, identity-distinct const-generic variable.
func NewTPFreeVar() TPFreeVar {
	tpFreeVarSeq++
	return TPFreeVar{Cell: &valueCell{ID: tpFreeVarSeq}}
}

func (t TPFreeVar) String() string {
	if t.Cell == nil {
		return "?"
	}
	return "?cg"
}
func (t TPFreeVar) Equal(o TypeParam) bool {
	ot, ok := o.(TPFreeVar)
	return ok && t.Cell == ot.Cell
}

// TPBinOp and TPUnaryOp represent not-yet-evaluated const-expression
// arithmetic inside a type parameter (spec.md §8 S1: `1 + 2 * 3` folds to
// TPValue(Int(7)) via compteval, but the unevaluated tree is itself a
// TypeParam shape).
type TPBinOp struct {
	Op   string
	L, R TypeParam
}

func (t TPBinOp) String() string { return "(" + t.L.String() + " " + t.Op + " " + t.R.String() + ")" }
func (t TPBinOp) Equal(o TypeParam) bool {
	ot, ok := o.(TPBinOp)
	return ok && t.Op == ot.Op && t.L.Equal(ot.L) && t.R.Equal(ot.R)
}

type TPUnaryOp struct {
	Op string
	X  TypeParam
}

func (t TPUnaryOp) String() string { return t.Op + t.X.String() }
func (t TPUnaryOp) Equal(o TypeParam) bool {
	ot, ok := o.(TPUnaryOp)
	return ok && t.Op == ot.Op && t.X.Equal(ot.X)
}

// TPList, TPTuple, TPSet, TPDict, TPRecordLit are the container-literal
// type-parameter shapes.
type TPList struct{ Elems []TypeParam }

func (t TPList) String() string { return "[" + joinTP(t.Elems) + "]" }
func (t TPList) Equal(o TypeParam) bool {
	ot, ok := o.(TPList)
	return ok && tpSliceEqual(t.Elems, ot.Elems)
}

type TPTuple struct{ Elems []TypeParam }

func (t TPTuple) String() string { return "(" + joinTP(t.Elems) + ")" }
func (t TPTuple) Equal(o TypeParam) bool {
	ot, ok := o.(TPTuple)
	return ok && tpSliceEqual(t.Elems, ot.Elems)
}

type TPSet struct{ Elems []TypeParam }

func (t TPSet) String() string { return "{" + joinTP(t.Elems) + "}" }
func (t TPSet) Equal(o TypeParam) bool {
	ot, ok := o.(TPSet)
	if !ok || len(t.Elems) != len(ot.Elems) {
		return false
	}
	used := make([]bool, len(ot.Elems))
	for _, e := range t.Elems {
		found := false
		for i, oe := range ot.Elems {
			if !used[i] && e.Equal(oe) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

type TPDict struct {
	Keys, Vals []TypeParam
}

func (t TPDict) String() string {
	parts := make([]string, len(t.Keys))
	for i := range t.Keys {
		parts[i] = t.Keys[i].String() + ": " + t.Vals[i].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (t TPDict) Equal(o TypeParam) bool {
	ot, ok := o.(TPDict)
	return ok && tpSliceEqual(t.Keys, ot.Keys) && tpSliceEqual(t.Vals, ot.Vals)
}

type TPRecordLit struct {
	Fields map[string]TypeParam
}

func (t TPRecordLit) String() string {
	parts := make([]string, 0, len(t.Fields))
	for k, v := range t.Fields {
		parts = append(parts, k+"="+v.String())
	}
	return "{" + strings.Join(parts, "; ") + "}"
}
func (t TPRecordLit) Equal(o TypeParam) bool {
	ot, ok := o.(TPRecordLit)
	if !ok || len(t.Fields) != len(ot.Fields) {
		return false
	}
	for k, v := range t.Fields {
		ov, ok := ot.Fields[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// TPProj and TPProjCall mirror Type's Proj/ProjCall at the type-parameter
// level (a const-generic projection, e.g. `N.succ()`).
type TPProj struct {
	Lhs  TypeParam
	Name string
}

func (t TPProj) String() string { return t.Lhs.String() + "." + t.Name }
func (t TPProj) Equal(o TypeParam) bool {
	ot, ok := o.(TPProj)
	return ok && t.Name == ot.Name && t.Lhs.Equal(ot.Lhs)
}

type TPProjCall struct {
	Lhs  TypeParam
	Name string
	Args []TypeParam
}

func (t TPProjCall) String() string {
	return t.Lhs.String() + "." + t.Name + "(" + joinTP(t.Args) + ")"
}
func (t TPProjCall) Equal(o TypeParam) bool {
	ot, ok := o.(TPProjCall)
	return ok && t.Name == ot.Name && t.Lhs.Equal(ot.Lhs) && tpSliceEqual(t.Args, ot.Args)
}

// TPLambda is a lambda literal appearing in a type-parameter position
// (used by const predicates that quantify over a function, e.g. a custom
// comparator passed as a const-generic).
type TPLambda struct {
	Params []string
	Body   TypeParam
}

func (t TPLambda) String() string {
	return "(" + strings.Join(t.Params, ", ") + ") => " + t.Body.String()
}
func (t TPLambda) Equal(o TypeParam) bool {
	ot, ok := o.(TPLambda)
	if !ok || len(t.Params) != len(ot.Params) {
		return false
	}
	for i := range t.Params {
		if t.Params[i] != ot.Params[i] {
			return false
		}
	}
	return t.Body.Equal(ot.Body)
}

// TPDataClassLit is a data-class literal appearing in a type-parameter
// position.
type TPDataClassLit struct {
	ClassName string
	Fields    map[string]TypeParam
}

func (t TPDataClassLit) String() string {
	parts := make([]string, 0, len(t.Fields))
	for k, v := range t.Fields {
		parts = append(parts, k+"="+v.String())
	}
	return t.ClassName + "{" + strings.Join(parts, "; ") + "}"
}
func (t TPDataClassLit) Equal(o TypeParam) bool {
	ot, ok := o.(TPDataClassLit)
	if !ok || t.ClassName != ot.ClassName || len(t.Fields) != len(ot.Fields) {
		return false
	}
	for k, v := range t.Fields {
		ov, ok := ot.Fields[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// TPFailure is the absorbing "evaluation failed" sentinel at the
// type-parameter level — spec.md §4.B: absorbing for queries, replaced by
// replace_failure() before sign-sensitive usage.
type TPFailure struct{}

func (TPFailure) String() string           { return "<failure>" }
func (TPFailure) Equal(o TypeParam) bool   { _, ok := o.(TPFailure); return ok }

func joinTP(ps []TypeParam) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

func tpSliceEqual(a, b []TypeParam) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
