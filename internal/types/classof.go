package types

import "github.com/vesperlang/vesperc/internal/values"

// ClassOf infers the Type a Value inhabits — spec.md §4.A's `class()`,
// moved out of the Value interface into a free function here (rather than a
// method on values.Value) specifically to avoid the import cycle documented
// in internal/values's package doc comment: TypeParam (TPValue) must embed a
// Value, so Value cannot in turn import types.
func ClassOf(v values.Value) Type {
	switch v.(type) {
	case values.Int32:
		return BMono{B: Int}
	case values.Nat:
		return BMono{B: Nat}
	case values.Float:
		return BMono{B: Float}
	case values.Bool:
		return BMono{B: Bool}
	case values.Inf:
		return BMono{B: Inf}
	case values.NegInf:
		return BMono{B: NegInf}
	case values.Str:
		return BMono{B: Str}
	case values.None:
		return BMono{B: NoneType}
	case values.Ellipsis:
		return BMono{B: Ellipsis}
	case values.NotImplemented:
		return BMono{B: NotImplementedType}
	case values.Illegal:
		return BMono{B: Failure}
	case *values.Code:
		return BMono{B: Code}
	case *values.Subr:
		return Mono{QualName: "Subr"}
	case values.Array:
		return Poly{Name: "Array", Params: nil}
	case values.Tuple:
		return Poly{Name: "Tuple", Params: nil}
	case *values.Set:
		return Poly{Name: "Set", Params: nil}
	case *values.Dict:
		return Poly{Name: "Dict", Params: nil}
	case values.Record:
		return classOfRecord(v.(values.Record))
	case values.DataClass:
		// Nominal: class() reflects the declared class, not merely the
		// structural field shape (spec.md §3.1).
		return Mono{QualName: v.(values.DataClass).ClassName}
	case values.TypeObj:
		return BMono{B: TypeKind}
	case *values.Cell:
		return ClassOf(v.(*values.Cell).Get())
	default:
		return BMono{B: Obj}
	}
}

func classOfRecord(r values.Record) Type {
	fields := make(map[string]Type, len(r.Fields))
	for k, fv := range r.Fields {
		fields[k] = ClassOf(fv)
	}
	return Record{Fields: fields}
}

// Type satisfies values.TypeLike (== tyvar.TypeLike) directly, since both
// values and types build their narrow interface on top of tyvar.TypeLike —
// this line only pins that satisfaction at compile time so a signature
// change to Type.Equal fails the build here rather than surfacing as a
// confusing error deep in compteval.
var _ values.TypeLike = (Type)(nil)
