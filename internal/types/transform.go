package types

import "github.com/vesperlang/vesperc/internal/tyvar"

// NewRefinement constructs a Refinement, enforcing spec.md §3.2's
// non-nesting invariant: if base is itself a Refinement, the two are merged
// (predicates OR-composed, inner variable name retained) rather than
// producing a nested Refinement(Refinement(...)) — the S2 scenario of
// spec.md §8.
func NewRefinement(v string, base Type, pred Predicate) Refinement {
	r := Refinement{Var: v, Base: base, Pred: pred}
	if _, nested := base.(Refinement); nested {
		return MergeRefinementPredicate(r)
	}
	return r
}

// Derefine strips outer refinements and descends into polymorphic
// parameters, returning only the base type — used for runtime class
// queries (spec.md §4.B).
func Derefine(t Type) Type {
	switch x := t.(type) {
	case Refinement:
		return Derefine(x.Base)
	case Poly:
		params := make([]TypeParam, len(x.Params))
		for i, p := range x.Params {
			params[i] = derefineTypeParam(p)
		}
		return Poly{Name: x.Name, Params: params}
	default:
		return t
	}
}

func derefineTypeParam(tp TypeParam) TypeParam {
	switch x := tp.(type) {
	case TPType:
		return TPType{T: Derefine(x.T)}
	case TPErased:
		return TPErased{T: Derefine(x.T)}
	default:
		return tp
	}
}

// Quantify wraps inner (expected to be a Subr, or an And of Subrs) in a
// Quantified type. An And of two subroutine types quantifies distributively
// — each side is wrapped individually rather than the And as a whole —
// matching spec.md §4.B ("An And of two subroutine types quantifies
// distributively").
func Quantify(inner Type) Type {
	if a, ok := inner.(And); ok {
		return And{L: Quantify(a.L), R: Quantify(a.R)}
	}
	return Quantified{Inner: inner}
}

// Proj builds a type-level projection `lhs.name`.
func Proj_(lhs Type, name string) Type {
	return Proj{Lhs: lhs, Name: name}
}

// Structuralize wraps t so only its structural shape is visible.
func Structuralize(t Type) Type {
	if s, ok := t.(Structural); ok {
		return s
	}
	return Structural{Inner: t}
}

// IntoRefinement promotes a plain type into a trivially-true refinement
// over a synthesized variable — the identity injection used when a
// refinement is required but none was written.
func IntoRefinement(t Type, synthVar string) Refinement {
	if r, ok := t.(Refinement); ok {
		return r
	}
	return Refinement{Var: synthVar, Base: t, Pred: PredConst{Name: synthVar}}
}

// DeconstructRefinement is IntoRefinement's inverse view: given a
// Refinement, return its (var, base, predicate) triple.
func DeconstructRefinement(r Refinement) (string, Type, Predicate) {
	return r.Var, r.Base, r.Pred
}

// Normalize applies a small fixed set of simplifications: collapsing a
// doubly-negated Not, flattening a Refinement-over-Refinement via
// NewRefinement's merge rule, and resolving any top-level FreeVar that has
// already been linked.
func Normalize(t Type) Type {
	switch x := t.(type) {
	case Not:
		if inner, ok := x.Inner.(Not); ok {
			return Normalize(inner.Inner)
		}
		return Not{Inner: Normalize(x.Inner)}
	case Refinement:
		merged := NewRefinement(x.Var, Normalize(x.Base), x.Pred)
		return merged
	case FreeVar:
		if resolved, ok := ResolveFreeVar(x); ok {
			return Normalize(resolved)
		}
		return x
	default:
		return t
	}
}

// ReplaceFailure replaces an absorbing Failure-shaped type with Never
// (covariant position) or Obj (contravariant position) before sign-sensitive
// usage, per spec.md §4.B's invariant that "Uninited never escapes
// construction; Failure is absorbing for type queries but replaced by
// replace_failure() before sign-sensitive usage".
func ReplaceFailure(t Type, covariant bool) Type {
	if _, ok := t.(BMono); ok {
		if bm := t.(BMono); bm.B == Failure {
			if covariant {
				return BMono{B: Never}
			}
			return BMono{B: Obj}
		}
	}
	return t
}

// ContainsTVar reports whether t contains the given cell anywhere in its
// structure, guarding against infinite recursion on self-referential
// constraints (`?T <: Container(?T)`) via tyvar.DoAvoidingRecursion on each
// linked cell it descends through (spec.md §4.B "contains_tvar ...
// short-circuit via a recursion guard").
func ContainsTVar(t Type, cellID int) bool {
	switch x := t.(type) {
	case FreeVar:
		if x.Cell.ID() == cellID {
			return true
		}
		if resolved, ok := ResolveFreeVar(x); ok {
			return tyvar.DoAvoidingRecursion(x.Cell, false, func() bool {
				return ContainsTVar(resolved, cellID)
			})
		}
		return false
	case Ref:
		return ContainsTVar(x.Inner, cellID)
	case RefMut:
		if ContainsTVar(x.Before, cellID) {
			return true
		}
		return x.After != nil && ContainsTVar(x.After, cellID)
	case Subr:
		for _, p := range x.NonDefaultParams {
			if ContainsTVar(p.ParamType, cellID) {
				return true
			}
		}
		for _, p := range x.DefaultParams {
			if ContainsTVar(p.ParamType, cellID) {
				return true
			}
		}
		if x.VarParams != nil && ContainsTVar(x.VarParams.ParamType, cellID) {
			return true
		}
		return ContainsTVar(x.Return, cellID)
	case Callable:
		for _, p := range x.Params {
			if ContainsTVar(p, cellID) {
				return true
			}
		}
		return ContainsTVar(x.Return, cellID)
	case Record:
		for _, f := range x.Fields {
			if ContainsTVar(f, cellID) {
				return true
			}
		}
		return false
	case Refinement:
		return ContainsTVar(x.Base, cellID)
	case Quantified:
		return ContainsTVar(x.Inner, cellID)
	case And:
		return ContainsTVar(x.L, cellID) || ContainsTVar(x.R, cellID)
	case Or:
		return ContainsTVar(x.L, cellID) || ContainsTVar(x.R, cellID)
	case Not:
		return ContainsTVar(x.Inner, cellID)
	case Poly:
		for _, p := range x.Params {
			if containsTVarInParam(p, cellID) {
				return true
			}
		}
		return false
	case Proj:
		return ContainsTVar(x.Lhs, cellID)
	case ProjCall:
		if ContainsTVar(x.Lhs, cellID) {
			return true
		}
		for _, a := range x.Args {
			if containsTVarInParam(a, cellID) {
				return true
			}
		}
		return false
	case Structural:
		return ContainsTVar(x.Inner, cellID)
	case Bounded:
		return ContainsTVar(x.Sub, cellID) || ContainsTVar(x.Sup, cellID)
	default:
		return false
	}
}

func containsTVarInParam(tp TypeParam, cellID int) bool {
	switch x := tp.(type) {
	case TPType:
		return ContainsTVar(x.T, cellID)
	case TPErased:
		return ContainsTVar(x.T, cellID)
	case TPApp:
		for _, a := range x.Args {
			if containsTVarInParam(a, cellID) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ContainsType reports whether t contains needle anywhere, by structural
// equality.
func ContainsType(t, needle Type) bool {
	if t.Equal(needle) {
		return true
	}
	switch x := t.(type) {
	case Ref:
		return ContainsType(x.Inner, needle)
	case RefMut:
		return ContainsType(x.Before, needle) || (x.After != nil && ContainsType(x.After, needle))
	case Subr:
		for _, p := range x.NonDefaultParams {
			if ContainsType(p.ParamType, needle) {
				return true
			}
		}
		return ContainsType(x.Return, needle)
	case Refinement:
		return ContainsType(x.Base, needle)
	case Quantified:
		return ContainsType(x.Inner, needle)
	case And:
		return ContainsType(x.L, needle) || ContainsType(x.R, needle)
	case Or:
		return ContainsType(x.L, needle) || ContainsType(x.R, needle)
	case Not:
		return ContainsType(x.Inner, needle)
	case Structural:
		return ContainsType(x.Inner, needle)
	default:
		return false
	}
}
