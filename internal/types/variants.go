package types

import (
	"fmt"
	"strings"
)

// Ref and RefMut are the ownership qualifiers spec.md §3.2 lists alongside
// the rest of the type sum.
type Ref struct{ Inner Type }

func (r Ref) String() string { return "Ref(" + r.Inner.String() + ")" }
func (r Ref) KindOf() Kind   { return r.Inner.KindOf() }
func (r Ref) Equal(o TypeLike) bool {
	or, ok := o.(Ref)
	return ok && r.Inner.Equal(or.Inner)
}

// RefMut carries the type before mutation and, once known, the type after —
// spec.md §3.2's `RefMut{before, after?}`.
type RefMut struct {
	Before Type
	After  Type // nil until the mutation's post-state is known
}

func (r RefMut) String() string {
	if r.After == nil {
		return "RefMut(" + r.Before.String() + ")"
	}
	return fmt.Sprintf("RefMut(%s => %s)", r.Before.String(), r.After.String())
}
func (r RefMut) KindOf() Kind { return r.Before.KindOf() }
func (r RefMut) Equal(o TypeLike) bool {
	or, ok := o.(RefMut)
	if !ok || !r.Before.Equal(or.Before) {
		return false
	}
	if r.After == nil || or.After == nil {
		return r.After == nil && or.After == nil
	}
	return r.After.Equal(or.After)
}

// SubrKind distinguishes function- from procedure-shaped subroutine types.
type SubrKind int

const (
	SubrFunc SubrKind = iota
	SubrProc
)

// Param is a single subroutine parameter: named or anonymous, with an
// optional default type (non-nil only for default params).
type Param struct {
	Name      string // "" for an anonymous/positional-only parameter
	ParamType Type
	Default   Type // non-nil for a parameter carrying a default value's type
}

func (p Param) String() string {
	if p.Name == "" {
		return p.ParamType.String()
	}
	if p.Default != nil {
		return fmt.Sprintf("%s: %s := %s", p.Name, p.ParamType.String(), p.Default.String())
	}
	return p.Name + ": " + p.ParamType.String()
}

// Subr is a subroutine type — spec.md §3.2's
// `Subr{kind, non_default_params, var_params?, default_params, return}`.
type Subr struct {
	Kind              SubrKind
	NonDefaultParams  []Param
	VarParams         *Param // nil if the subroutine has no variadic tail
	DefaultParams     []Param
	Return            Type
}

func (s Subr) String() string {
	var b strings.Builder
	b.WriteString("(")
	parts := make([]string, 0, len(s.NonDefaultParams)+len(s.DefaultParams)+1)
	for _, p := range s.NonDefaultParams {
		parts = append(parts, p.String())
	}
	if s.VarParams != nil {
		parts = append(parts, "*"+s.VarParams.String())
	}
	for _, p := range s.DefaultParams {
		parts = append(parts, p.String())
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(") -> ")
	b.WriteString(s.Return.String())
	return b.String()
}

func (s Subr) KindOf() Kind { return Star }

func (s Subr) Equal(o TypeLike) bool {
	os, ok := o.(Subr)
	if !ok || s.Kind != os.Kind {
		return false
	}
	if !paramsEqual(s.NonDefaultParams, os.NonDefaultParams) {
		return false
	}
	if !defaultParamsEqualByName(s.DefaultParams, os.DefaultParams) {
		return false
	}
	if (s.VarParams == nil) != (os.VarParams == nil) {
		return false
	}
	if s.VarParams != nil && !s.VarParams.ParamType.Equal(os.VarParams.ParamType) {
		return false
	}
	return s.Return.Equal(os.Return)
}

func paramsEqual(a, b []Param) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].ParamType.Equal(b[i].ParamType) {
			return false
		}
	}
	return true
}

// defaultParamsEqualByName compares default params by name rather than
// position — spec.md §4.B: "defaults by name".
func defaultParamsEqualByName(a, b []Param) bool {
	if len(a) != len(b) {
		return false
	}
	byName := make(map[string]Param, len(b))
	for _, p := range b {
		byName[p.Name] = p
	}
	for _, p := range a {
		ob, ok := byName[p.Name]
		if !ok || !p.ParamType.Equal(ob.ParamType) {
			return false
		}
	}
	return true
}

// Callable is a structural function-shape constraint (weaker than Subr: no
// kind/default-parameter distinction, just "callable with these params
// returning this type").
type Callable struct {
	Params []Type
	Return Type
}

func (c Callable) String() string {
	parts := make([]string, len(c.Params))
	for i, p := range c.Params {
		parts[i] = p.String()
	}
	return "Callable(" + strings.Join(parts, ", ") + ") -> " + c.Return.String()
}
func (c Callable) KindOf() Kind { return Star }
func (c Callable) Equal(o TypeLike) bool {
	oc, ok := o.(Callable)
	if !ok || len(c.Params) != len(oc.Params) {
		return false
	}
	for i := range c.Params {
		if !c.Params[i].Equal(oc.Params[i]) {
			return false
		}
	}
	return c.Return.Equal(oc.Return)
}

// Record is a closed field->Type mapping — the type-level counterpart of
// values.Record.
type Record struct {
	Fields map[string]Type
}

func (r Record) String() string {
	parts := make([]string, 0, len(r.Fields))
	for k, v := range r.Fields {
		parts = append(parts, k+": "+v.String())
	}
	return "{" + strings.Join(parts, "; ") + "}"
}
func (r Record) KindOf() Kind { return Star }
func (r Record) Equal(o TypeLike) bool {
	or, ok := o.(Record)
	if !ok || len(or.Fields) != len(r.Fields) {
		return false
	}
	for k, v := range r.Fields {
		ov, ok := or.Fields[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Refinement is `{Var: Base | Pred}` — spec.md §3.2/§4.B. Construction
// (see transform.go's NewRefinement) enforces the non-nesting invariant by
// merging nested refinements' predicates with Or, keeping the inner
// variable's name, per the S2 scenario (spec.md §8).
type Refinement struct {
	Var  string
	Base Type
	Pred Predicate
}

func (r Refinement) String() string {
	return fmt.Sprintf("{%s: %s | %s}", r.Var, r.Base.String(), r.Pred.String())
}
func (r Refinement) KindOf() Kind { return r.Base.KindOf() }
func (r Refinement) Equal(o TypeLike) bool {
	or, ok := o.(Refinement)
	return ok && r.Var == or.Var && r.Base.Equal(or.Base) && r.Pred.Equal(or.Pred)
}

// Quantified wraps a subroutine type, marking its free variables as generic
// (spec.md §4.B: "appears only over subroutine types").
type Quantified struct {
	Inner Type // always a Subr (or an And of Subrs, per §4.B distributive quantification)
}

func (q Quantified) String() string { return "∀" + q.Inner.String() }
func (q Quantified) KindOf() Kind   { return q.Inner.KindOf() }
func (q Quantified) Equal(o TypeLike) bool {
	oq, ok := o.(Quantified)
	return ok && q.Inner.Equal(oq.Inner)
}

// And, Or, Not are the boolean type combinators (§3.2). And/Or are
// commutative for equality purposes (see equalCommutative below).
type And struct{ L, R Type }

func (a And) String() string { return a.L.String() + " and " + a.R.String() }
func (a And) KindOf() Kind   { return Star }
func (a And) Equal(o TypeLike) bool { return equalCommutative(a.L, a.R, o) }

type Or struct{ L, R Type }

func (a Or) String() string { return a.L.String() + " or " + a.R.String() }
func (a Or) KindOf() Kind   { return Star }
func (a Or) Equal(o TypeLike) bool {
	oo, ok := o.(Or)
	if !ok {
		return false
	}
	return equalCommutative(a.L, a.R, oo) || equalCommutative(a.L, a.R, And{oo.L, oo.R})
}

func equalCommutative(l, r Type, o TypeLike) bool {
	switch x := o.(type) {
	case And:
		return (l.Equal(x.L) && r.Equal(x.R)) || (l.Equal(x.R) && r.Equal(x.L))
	case Or:
		return (l.Equal(x.L) && r.Equal(x.R)) || (l.Equal(x.R) && r.Equal(x.L))
	default:
		return false
	}
}

type Not struct{ Inner Type }

func (n Not) String() string { return "not " + n.Inner.String() }
func (n Not) KindOf() Kind   { return Star }
func (n Not) Equal(o TypeLike) bool {
	on, ok := o.(Not)
	return ok && n.Inner.Equal(on.Inner)
}

// Poly is a polymorphic/parameterized type application — spec.md §3.2's
// `Poly{name, params: [TypeParam]}` (e.g. `Array(Int, 3)`).
type Poly struct {
	Name   string
	Params []TypeParam
}

func (p Poly) String() string {
	parts := make([]string, len(p.Params))
	for i, tp := range p.Params {
		parts[i] = tp.String()
	}
	return p.Name + "(" + strings.Join(parts, ", ") + ")"
}
func (p Poly) KindOf() Kind {
	if len(p.Params) == 0 {
		return Star
	}
	return Star
}
func (p Poly) Equal(o TypeLike) bool {
	op, ok := o.(Poly)
	if !ok || p.Name != op.Name || len(p.Params) != len(op.Params) {
		return false
	}
	for i := range p.Params {
		if !p.Params[i].Equal(op.Params[i]) {
			return false
		}
	}
	return true
}

// Proj is a type-level projection `lhs.name` (e.g. `Iterator.Item`).
type Proj struct {
	Lhs  Type
	Name string
}

func (p Proj) String() string { return p.Lhs.String() + "." + p.Name }
func (p Proj) KindOf() Kind   { return AnyKind }
func (p Proj) Equal(o TypeLike) bool {
	op, ok := o.(Proj)
	return ok && p.Name == op.Name && p.Lhs.Equal(op.Lhs)
}

// ProjCall is a projected method call used at the type level (`lhs.name(args)`).
type ProjCall struct {
	Lhs  Type
	Name string
	Args []TypeParam
}

func (p ProjCall) String() string {
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		parts[i] = a.String()
	}
	return p.Lhs.String() + "." + p.Name + "(" + strings.Join(parts, ", ") + ")"
}
func (p ProjCall) KindOf() Kind { return AnyKind }
func (p ProjCall) Equal(o TypeLike) bool {
	op, ok := o.(ProjCall)
	if !ok || p.Name != op.Name || !p.Lhs.Equal(op.Lhs) || len(p.Args) != len(op.Args) {
		return false
	}
	for i := range p.Args {
		if !p.Args[i].Equal(op.Args[i]) {
			return false
		}
	}
	return true
}

// Structural wraps a type, exposing only its structural shape (fields/
// methods) rather than its nominal identity — used by `structuralize()`.
type Structural struct{ Inner Type }

func (s Structural) String() string { return "Structural(" + s.Inner.String() + ")" }
func (s Structural) KindOf() Kind   { return s.Inner.KindOf() }
func (s Structural) Equal(o TypeLike) bool {
	os, ok := o.(Structural)
	return ok && s.Inner.Equal(os.Inner)
}

// Guard narrows a variable to a refined type inside a conditional branch —
// spec.md §3.2's `Guard{variable, refined-to}`.
type Guard struct {
	Variable  string
	RefinedTo Type
}

func (g Guard) String() string { return g.Variable + " is " + g.RefinedTo.String() }
func (g Guard) KindOf() Kind   { return Star }
func (g Guard) Equal(o TypeLike) bool {
	og, ok := o.(Guard)
	return ok && g.Variable == og.Variable && g.RefinedTo.Equal(og.RefinedTo)
}

// Bounded is a (sub, sup) interval constraint occurring as its own type
// position (distinct from a FreeVar cell's Sandwiched constraint, which
// bounds an unresolved variable rather than naming a bounded type value).
type Bounded struct{ Sub, Sup Type }

func (b Bounded) String() string { return b.Sub.String() + ".." + b.Sup.String() }
func (b Bounded) KindOf() Kind   { return Star }
func (b Bounded) Equal(o TypeLike) bool {
	ob, ok := o.(Bounded)
	return ok && b.Sub.Equal(ob.Sub) && b.Sup.Equal(ob.Sup)
}
