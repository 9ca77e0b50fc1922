// Package values implements ValueModel (spec.md §3.1, §4.A): the compile-time
// value representation shared by constant folding, the constant pool CodeGen
// emits into code objects, and predicate literals inside TypeModel.
//
// Grounded on internal/evaluator/object*.go's Object interface
// (Type()/Inspect()/RuntimeType()/Hash()), trimmed to the variants spec.md
// §3.1 lists: no runtime control-flow signals (BREAK/CONTINUE/TAIL_CALL),
// no host objects, no mutable-environment closures — those belong to the
// runtime execution this module does not implement.
//
// Value deliberately does NOT import internal/types, even though spec.md's
// class() operation conceptually returns a types.Type: types.TypeParam must
// in turn embed a Value (the "Value(Value)" variant of spec.md §3.3), which
// would make values and types mutually dependent. The cycle is broken by
// keeping Value's own vocabulary (Kind, String, Hash, Equals) self-contained
// and letting package types provide the Type-producing half via
// types.ClassOf(Value) — see internal/types/classof.go.
package values

import "fmt"

// Kind tags which variant of the Value sum a Value holds.
type Kind int

const (
	KindInt32 Kind = iota
	KindNat
	KindFloat
	KindBool
	KindInf
	KindNegInf
	KindStr
	KindArray
	KindTuple
	KindSet
	KindDict
	KindRecord
	KindDataClass
	KindCode
	KindSubr
	KindTypeObj
	KindNone
	KindEllipsis
	KindNotImplemented
	KindCell
	KindIllegal
)

func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "Int32"
	case KindNat:
		return "Nat"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	case KindInf:
		return "Inf"
	case KindNegInf:
		return "NegInf"
	case KindStr:
		return "Str"
	case KindArray:
		return "Array"
	case KindTuple:
		return "Tuple"
	case KindSet:
		return "Set"
	case KindDict:
		return "Dict"
	case KindRecord:
		return "Record"
	case KindDataClass:
		return "DataClass"
	case KindCode:
		return "Code"
	case KindSubr:
		return "Subr"
	case KindTypeObj:
		return "Type"
	case KindNone:
		return "NoneType"
	case KindEllipsis:
		return "Ellipsis"
	case KindNotImplemented:
		return "NotImplementedType"
	case KindCell:
		return "Cell"
	default:
		return "Illegal"
	}
}

// Value is the tagged variant every compile-time value implements.
//
// Equals must agree with Hash (equal values hash equal) and, for floats
// participating in compound containers, compares by bit pattern rather
// than IEEE equality — spec.md §3.1's invariant that NaN can live in a Set
// or Dict key position without violating its own reflexivity there.
type Value interface {
	Kind() Kind
	String() string
	Hash() uint64
	Equals(Value) bool
}

// Illegal is the sentinel for failed evaluation (spec.md §3.1). It never
// compares equal to a legitimate value — including another Illegal, since
// two independently-failed evaluations carry no shared identity — and is
// never serialized (values.Serialize rejects it).
type Illegal struct{}

func (Illegal) Kind() Kind          { return KindIllegal }
func (Illegal) String() string      { return "<illegal>" }
func (Illegal) Hash() uint64        { return 0 }
func (Illegal) Equals(Value) bool   { return false }

// None is the unit/nil sentinel.
type None struct{}

func (None) Kind() Kind     { return KindNone }
func (None) String() string { return "None" }
func (None) Hash() uint64   { return 0xA17F00D }
func (n None) Equals(o Value) bool {
	_, ok := o.(None)
	return ok
}

// Ellipsis is the `...` sentinel.
type Ellipsis struct{}

func (Ellipsis) Kind() Kind     { return KindEllipsis }
func (Ellipsis) String() string { return "..." }
func (Ellipsis) Hash() uint64   { return 0xE11E }
func (e Ellipsis) Equals(o Value) bool {
	_, ok := o.(Ellipsis)
	return ok
}

// NotImplemented is the sentinel operator dispatch returns when an
// operation has no applicable overload.
type NotImplemented struct{}

func (NotImplemented) Kind() Kind     { return KindNotImplemented }
func (NotImplemented) String() string { return "NotImplemented" }
func (NotImplemented) Hash() uint64   { return 0x017123 }
func (n NotImplemented) Equals(o Value) bool {
	_, ok := o.(NotImplemented)
	return ok
}

// Str is an interned, ref-counted-in-spirit string (Go's GC'd string type
// already gives us structural sharing; no explicit refcount is needed).
type Str struct {
	V string
}

func (s Str) Kind() Kind     { return KindStr }
func (s Str) String() string { return fmt.Sprintf("%q", s.V) }
func (s Str) Hash() uint64   { return fnv64(s.V) }
func (s Str) Equals(o Value) bool {
	os, ok := o.(Str)
	return ok && os.V == s.V
}

func fnv64(s string) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}
