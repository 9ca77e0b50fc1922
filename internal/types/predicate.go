package types

import "strings"

// Predicate is the closed sum spec.md §3.4 lists: boolean combinations over
// TypeParam comparisons, used as Refinement's guard.
type Predicate interface {
	String() string
	Equal(Predicate) bool
}

// PredValue is a bare boolean TypeParam used directly as a predicate (e.g.
// a const-fn call returning Bool).
type PredValue struct{ V TypeParam }

func (p PredValue) String() string { return p.V.String() }
func (p PredValue) Equal(o Predicate) bool {
	op, ok := o.(PredValue)
	return ok && p.V.Equal(op.V)
}

// PredConst names the refined variable itself (e.g. the bare `x` inside
// `{x: Bool | x}`).
type PredConst struct{ Name string }

func (p PredConst) String() string { return p.Name }
func (p PredConst) Equal(o Predicate) bool {
	op, ok := o.(PredConst)
	return ok && p.Name == op.Name
}

// cmpPredicate is the shared shape of Equal/NotEqual/LessEqual/GreaterEqual:
// `<refined-var> <op> <rhs>`.
type cmpPredicate struct {
	Op  string
	Rhs TypeParam
}

func (p cmpPredicate) String() string { return p.Op + " " + p.Rhs.String() }

type PredEqual struct{ cmpPredicate }
type PredNotEqual struct{ cmpPredicate }
type PredLessEqual struct{ cmpPredicate }
type PredGreaterEqual struct{ cmpPredicate }

func NewPredEqual(rhs TypeParam) PredEqual { return PredEqual{cmpPredicate{"==", rhs}} }
func NewPredNotEqual(rhs TypeParam) PredNotEqual { return PredNotEqual{cmpPredicate{"!=", rhs}} }
func NewPredLessEqual(rhs TypeParam) PredLessEqual { return PredLessEqual{cmpPredicate{"<=", rhs}} }
func NewPredGreaterEqual(rhs TypeParam) PredGreaterEqual {
	return PredGreaterEqual{cmpPredicate{">=", rhs}}
}

func (p PredEqual) Equal(o Predicate) bool {
	op, ok := o.(PredEqual)
	return ok && p.Rhs.Equal(op.Rhs)
}
func (p PredNotEqual) Equal(o Predicate) bool {
	op, ok := o.(PredNotEqual)
	return ok && p.Rhs.Equal(op.Rhs)
}
func (p PredLessEqual) Equal(o Predicate) bool {
	op, ok := o.(PredLessEqual)
	return ok && p.Rhs.Equal(op.Rhs)
}
func (p PredGreaterEqual) Equal(o Predicate) bool {
	op, ok := o.(PredGreaterEqual)
	return ok && p.Rhs.Equal(op.Rhs)
}

// PredCall is a const method-call used as a predicate: `<receiver>.<name>?(args)`.
type PredCall struct {
	Receiver TypeParam
	Name     string // "" for a bare call on the refined variable itself
	Args     []TypeParam
}

func (p PredCall) String() string {
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		parts[i] = a.String()
	}
	recv := ""
	if p.Receiver != nil {
		recv = p.Receiver.String() + "."
	}
	return recv + p.Name + "(" + strings.Join(parts, ", ") + ")"
}
func (p PredCall) Equal(o Predicate) bool {
	op, ok := o.(PredCall)
	if !ok || p.Name != op.Name || len(p.Args) != len(op.Args) {
		return false
	}
	if (p.Receiver == nil) != (op.Receiver == nil) {
		return false
	}
	if p.Receiver != nil && !p.Receiver.Equal(op.Receiver) {
		return false
	}
	for i := range p.Args {
		if !p.Args[i].Equal(op.Args[i]) {
			return false
		}
	}
	return true
}

// PredAttr is an attribute-access predicate: `<receiver>.<name>`.
type PredAttr struct {
	Receiver TypeParam
	Name     string
}

func (p PredAttr) String() string { return p.Receiver.String() + "." + p.Name }
func (p PredAttr) Equal(o Predicate) bool {
	op, ok := o.(PredAttr)
	return ok && p.Name == op.Name && p.Receiver.Equal(op.Receiver)
}

// general{Eq,NotEq,GreaterEq,LessEq} compare two arbitrary predicates
// (rather than a variable to a TypeParam) — spec.md §3.4's
// `GeneralEqual/NotEqual/GreaterEqual/LessEqual`.
type generalCmp struct {
	Op   string
	L, R Predicate
}

func (g generalCmp) String() string { return g.L.String() + " " + g.Op + " " + g.R.String() }

type PredGeneralEqual struct{ generalCmp }
type PredGeneralNotEqual struct{ generalCmp }
type PredGeneralGreaterEqual struct{ generalCmp }
type PredGeneralLessEqual struct{ generalCmp }

func NewPredGeneralEqual(l, r Predicate) PredGeneralEqual {
	return PredGeneralEqual{generalCmp{"==", l, r}}
}
func NewPredGeneralNotEqual(l, r Predicate) PredGeneralNotEqual {
	return PredGeneralNotEqual{generalCmp{"!=", l, r}}
}
func NewPredGeneralGreaterEqual(l, r Predicate) PredGeneralGreaterEqual {
	return PredGeneralGreaterEqual{generalCmp{">=", l, r}}
}
func NewPredGeneralLessEqual(l, r Predicate) PredGeneralLessEqual {
	return PredGeneralLessEqual{generalCmp{"<=", l, r}}
}

func (p PredGeneralEqual) Equal(o Predicate) bool {
	op, ok := o.(PredGeneralEqual)
	return ok && p.L.Equal(op.L) && p.R.Equal(op.R)
}
func (p PredGeneralNotEqual) Equal(o Predicate) bool {
	op, ok := o.(PredGeneralNotEqual)
	return ok && p.L.Equal(op.L) && p.R.Equal(op.R)
}
func (p PredGeneralGreaterEqual) Equal(o Predicate) bool {
	op, ok := o.(PredGeneralGreaterEqual)
	return ok && p.L.Equal(op.L) && p.R.Equal(op.R)
}
func (p PredGeneralLessEqual) Equal(o Predicate) bool {
	op, ok := o.(PredGeneralLessEqual)
	return ok && p.L.Equal(op.L) && p.R.Equal(op.R)
}

// PredAnd/PredOr/PredNot are the boolean combinators. Or merging is how
// Refinement construction implements the S2 scenario (spec.md §8): merging
// two nested refinements ORs their predicates together.
type PredAnd struct{ L, R Predicate }

func (p PredAnd) String() string { return p.L.String() + " and " + p.R.String() }
func (p PredAnd) Equal(o Predicate) bool {
	op, ok := o.(PredAnd)
	return ok && ((p.L.Equal(op.L) && p.R.Equal(op.R)) || (p.L.Equal(op.R) && p.R.Equal(op.L)))
}

type PredOr struct{ L, R Predicate }

func (p PredOr) String() string { return p.L.String() + " or " + p.R.String() }
func (p PredOr) Equal(o Predicate) bool {
	op, ok := o.(PredOr)
	return ok && ((p.L.Equal(op.L) && p.R.Equal(op.R)) || (p.L.Equal(op.R) && p.R.Equal(op.L)))
}

type PredNot struct{ Inner Predicate }

func (p PredNot) String() string { return "not " + p.Inner.String() }
func (p PredNot) Equal(o Predicate) bool {
	op, ok := o.(PredNot)
	return ok && p.Inner.Equal(op.Inner)
}

// PredFailure is the absorbing "evaluation failed" sentinel.
type PredFailure struct{}

func (PredFailure) String() string         { return "<failure>" }
func (PredFailure) Equal(o Predicate) bool { _, ok := o.(PredFailure); return ok }

// MergeRefinementPredicate implements spec.md §8's S2 merge rule: folding a
// Refinement whose Base is itself a Refinement into one flat Refinement,
// retaining the inner variable's name and OR-composing the two predicates.
func MergeRefinementPredicate(outer Refinement) Refinement {
	inner, ok := outer.Base.(Refinement)
	if !ok {
		return outer
	}
	return Refinement{
		Var:  inner.Var,
		Base: inner.Base,
		Pred: PredOr{L: inner.Pred, R: outer.Pred},
	}
}
