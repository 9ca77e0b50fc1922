// Package types implements TypeModel (spec.md §3.2/§4.B): the algebraic type
// language — refinement types, subtyping via And/Or/Not, structural types,
// projections, quantified types, and ownership qualifiers.
//
// Grounded on internal/typesystem/types.go (Type interface,
// TCon/TApp/TTuple/TRecord), kinds.go, replace.go, and enriched at the row-
// polymorphism edges (TRecord+open-row handling) by sunholo-data-ailang's
// internal/types/types_v2.go — named explicitly since it is a borrowed
// file, per the grounding ledger in DESIGN.md.
//
// types imports internal/tyvar (FreeVar wraps a *tyvar.Cell) and
// internal/values (TypeParam's Value variant, and ClassOf). It never is
// imported back by either package — see those packages' doc comments for
// why the dependency only runs one way.
package types

import "github.com/vesperlang/vesperc/internal/tyvar"

// Type is the sum every TYCORE type variant implements (spec.md §3.2).
type Type interface {
	String() string
	KindOf() Kind
	// Equal is structural equality (each variant's Equal method in type.go,
	// variants.go and freevar.go, including And/Or's both-orderings fallback
	// and FreeVar's cell-identity comparison with transparent link-chasing).
	Equal(TypeLike) bool
}

// TypeLike lets Type satisfy tyvar.TypeLike without tyvar importing types.
type TypeLike = tyvar.TypeLike

// Builtin is the closed set of monomorphic built-in types spec.md §3.2 lists.
type Builtin int

const (
	Obj Builtin = iota
	Int
	Nat
	Ratio
	Float
	Complex
	Bool
	Str
	NoneType
	Code
	Frame
	Error
	Inf
	NegInf
	TypeKind
	ClassType
	TraitType
	Patch
	NotImplementedType
	Ellipsis
	Never
	Failure
	Uninited
)

var builtinNames = map[Builtin]string{
	Obj: "Obj", Int: "Int", Nat: "Nat", Ratio: "Ratio", Float: "Float",
	Complex: "Complex", Bool: "Bool", Str: "Str", NoneType: "NoneType",
	Code: "Code", Frame: "Frame", Error: "Error", Inf: "Inf", NegInf: "NegInf",
	TypeKind: "Type", ClassType: "ClassType", TraitType: "TraitType",
	Patch: "Patch", NotImplementedType: "NotImplementedType",
	Ellipsis: "Ellipsis", Never: "Never", Failure: "Failure",
	Uninited: "Uninited",
}

// builtinSuperclasses encodes the promotion/subtype lattice BuiltinRegistry
// seeds (spec.md §4.A's Bool ⊂ Nat ⊂ Int ⊂ Ratio ⊂ Float ⊂ Complex, plus the
// other built-ins' direct superclass edges). Consulted by IsSubtype for the
// monomorphic-built-in fast path; class registration in internal/builtins
// is the authoritative source BuiltinRegistry seeds from.
var builtinSuperclasses = map[Builtin]Builtin{
	Bool: Nat, Nat: Int, Int: Ratio, Ratio: Float, Float: Complex,
}

// BMono is a monomorphic built-in type value.
type BMono struct{ B Builtin }

func (b BMono) String() string  { return builtinNames[b.B] }
func (b BMono) KindOf() Kind    { return Star }
func (b BMono) Equal(o TypeLike) bool {
	ob, ok := o.(BMono)
	return ok && ob.B == b.B
}

// IsSubtypeBuiltin reports whether sub is a (possibly indirect) builtin
// ancestor of sup along the registered superclass edges, per spec.md §4.A's
// promotion lattice. Obj is the universal supertype; Never is the universal
// subtype.
func IsSubtypeBuiltin(sub, sup Builtin) bool {
	if sub == sup || sup == Obj || sub == Never {
		return true
	}
	cur := sub
	for {
		next, ok := builtinSuperclasses[cur]
		if !ok {
			return false
		}
		if next == sup {
			return true
		}
		cur = next
	}
}

// Mono is a nominal, named (possibly user-defined) monomorphic type —
// spec.md §3.2's `Mono(qualified-name)`.
type Mono struct {
	QualName string
}

func (m Mono) String() string { return m.QualName }
func (m Mono) KindOf() Kind   { return Star }
func (m Mono) Equal(o TypeLike) bool {
	om, ok := o.(Mono)
	return ok && om.QualName == m.QualName
}
