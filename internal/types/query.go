package types

import (
	"strings"

	"github.com/vesperlang/vesperc/internal/values"
)

// qualNamer/localNamer are satisfied by the type variants that carry an
// intrinsic name, letting QualName/LocalName stay a single switch below
// rather than a method on every variant (most variants have no name at all).

// QualName returns a type's fully-qualified name where one exists (Mono's
// nominal name, a BMono's builtin name, Poly's constructor name) — spec.md
// §4.B's `qual_name()`. Returns "" for shapes with no intrinsic name.
func QualName(t Type) string {
	switch x := t.(type) {
	case Mono:
		return x.QualName
	case BMono:
		return builtinNames[x.B]
	case Poly:
		return x.Name
	default:
		return ""
	}
}

// LocalName is qual_name()'s last path segment, split on ".".
func LocalName(t Type) string {
	q := QualName(t)
	if i := strings.LastIndex(q, "."); i >= 0 {
		return q[i+1:]
	}
	return q
}

// Namespace is qual_name() with its last path segment removed.
func Namespace(t Type) string {
	q := QualName(t)
	i := strings.LastIndex(q, ".")
	if i < 0 {
		return ""
	}
	return q[:i]
}

// Typarams returns a Poly's parameter list, or nil for any other shape.
func Typarams(t Type) []TypeParam {
	if p, ok := t.(Poly); ok {
		return p.Params
	}
	return nil
}

// ReturnT returns a Subr/Callable/Quantified-over-Subr's return type.
// ok is false for any shape with no return position.
func ReturnT(t Type) (Type, bool) {
	switch x := t.(type) {
	case Subr:
		return x.Return, true
	case Callable:
		return x.Return, true
	case Quantified:
		return ReturnT(x.Inner)
	default:
		return nil, false
	}
}

// NonDefaultParams returns a Subr's required positional parameters.
func NonDefaultParams(t Type) ([]Param, bool) {
	switch x := t.(type) {
	case Subr:
		return x.NonDefaultParams, true
	case Quantified:
		return NonDefaultParams(x.Inner)
	default:
		return nil, false
	}
}

// VarParams returns a Subr's variadic tail parameter, if any.
func VarParams(t Type) (*Param, bool) {
	switch x := t.(type) {
	case Subr:
		return x.VarParams, true
	case Quantified:
		return VarParams(x.Inner)
	default:
		return nil, false
	}
}

// DefaultParams returns a Subr's defaulted parameters.
func DefaultParams(t Type) ([]Param, bool) {
	switch x := t.(type) {
	case Subr:
		return x.DefaultParams, true
	case Quantified:
		return DefaultParams(x.Inner)
	default:
		return nil, false
	}
}

// SelfT returns the receiver type implied by a Subr's first non-default
// parameter when that parameter is named "self" — the method-vs-plain-
// subroutine distinction spec.md §4.B's `self_t()` surfaces.
func SelfT(t Type) (Type, bool) {
	params, ok := NonDefaultParams(t)
	if !ok || len(params) == 0 || params[0].Name != "self" {
		return nil, false
	}
	return params[0].ParamType, true
}

// UnionTypes flattens a (possibly nested) Or into its leaf disjuncts,
// left-to-right.
func UnionTypes(t Type) []Type {
	if o, ok := t.(Or); ok {
		return append(UnionTypes(o.L), UnionTypes(o.R)...)
	}
	return []Type{t}
}

// IntersectionTypes flattens a (possibly nested) And into its leaf
// conjuncts, left-to-right.
func IntersectionTypes(t Type) []Type {
	if a, ok := t.(And); ok {
		return append(IntersectionTypes(a.L), IntersectionTypes(a.R)...)
	}
	return []Type{t}
}

// ContainerLen reports a fixed-arity container Poly's declared length —
// e.g. the 3 in Array(Int, 3) — when its last parameter is a TPValue
// wrapping a values.Nat/Int32. ok is false for variable-length or
// non-container shapes.
func ContainerLen(t Type) (int, bool) {
	p, ok := t.(Poly)
	if !ok || len(p.Params) == 0 {
		return 0, false
	}
	last := p.Params[len(p.Params)-1]
	tv, ok := last.(TPValue)
	if !ok {
		return 0, false
	}
	switch n := tv.V.(type) {
	case values.Nat:
		return int(n.V), true
	case values.Int32:
		return int(n.V), true
	default:
		return 0, false
	}
}

// is_* predicate family (spec.md §4.B): one predicate per variant, used
// pervasively by codegen's dispatch and compteval's convert_* family to
// avoid repeating type switches inline.

func IsRef(t Type) bool         { _, ok := t.(Ref); return ok }
func IsRefMut(t Type) bool      { _, ok := t.(RefMut); return ok }
func IsSubr(t Type) bool        { _, ok := t.(Subr); return ok }
func IsCallable(t Type) bool    { _, ok := t.(Callable); return ok }
func IsRecord(t Type) bool      { _, ok := t.(Record); return ok }
func IsRefinement(t Type) bool  { _, ok := t.(Refinement); return ok }
func IsQuantified(t Type) bool  { _, ok := t.(Quantified); return ok }
func IsAnd(t Type) bool         { _, ok := t.(And); return ok }
func IsOr(t Type) bool          { _, ok := t.(Or); return ok }
func IsNot(t Type) bool         { _, ok := t.(Not); return ok }
func IsPoly(t Type) bool        { _, ok := t.(Poly); return ok }
func IsProj(t Type) bool        { _, ok := t.(Proj); return ok }
func IsProjCall(t Type) bool    { _, ok := t.(ProjCall); return ok }
func IsStructural(t Type) bool  { _, ok := t.(Structural); return ok }
func IsGuard(t Type) bool       { _, ok := t.(Guard); return ok }
func IsBounded(t Type) bool     { _, ok := t.(Bounded); return ok }
func IsFreeVar(t Type) bool     { _, ok := t.(FreeVar); return ok }
func IsMono(t Type) bool        { _, ok := t.(Mono); return ok }

// IsBuiltin reports whether t is the given BMono builtin (e.g.
// IsBuiltin(t, Never), IsBuiltin(t, Failure)).
func IsBuiltin(t Type, b Builtin) bool {
	bm, ok := t.(BMono)
	return ok && bm.B == b
}

// IsNever/IsFailure/IsUninited/IsObj are the frequently-tested absorbing/
// universal builtins, named directly per spec.md §4.B's invariant list
// ("Uninited never escapes construction; Failure is absorbing...").
func IsNever(t Type) bool    { return IsBuiltin(t, Never) }
func IsFailure(t Type) bool  { return IsBuiltin(t, Failure) }
func IsUninited(t Type) bool { return IsBuiltin(t, Uninited) }
func IsObj(t Type) bool      { return IsBuiltin(t, Obj) }
