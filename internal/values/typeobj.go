package values

import "github.com/vesperlang/vesperc/internal/tyvar"

// TypeLike is the narrow interface a compile-time "type object" Value wraps.
// It is the same named interface internal/types.Type satisfies to act as
// internal/tyvar's FreeVar target (tyvar.TypeLike) — reusing it here means
// internal/types.Type automatically satisfies TypeLike too, without values
// importing types directly (see value.go's package doc comment for why that
// import must stay one-directional) and without values and types needing
// two structurally-identical but nominally-distinct interfaces.
type TypeLike = tyvar.TypeLike

// TypeObj is the Value variant wrapping a "type used as a first-class
// value" — e.g. a type literal passed to a generic function, or the result
// of `class()`/`as_type()`.
type TypeObj struct {
	T TypeLike
}

func (t TypeObj) Kind() Kind     { return KindTypeObj }
func (t TypeObj) String() string { return t.T.String() }
func (t TypeObj) Hash() uint64   { return fnv64(t.T.String()) }
func (t TypeObj) Equals(o Value) bool {
	ot, ok := o.(TypeObj)
	return ok && t.T.Equal(ot.T)
}

// AsType extracts the wrapped TypeLike, for callers (e.g. compteval) that
// need to hand a Value back into type-level computation. ok is false unless
// v is a TypeObj.
func AsType(v Value) (TypeLike, bool) {
	t, ok := v.(TypeObj)
	if !ok {
		return nil, false
	}
	return t.T, true
}

// TryGetAttr looks up a field on the Value variants that carry named
// members (Record, DataClass); every other variant has no attributes at the
// value level (method dispatch on e.g. Int32 is resolved by BuiltinRegistry
// against its class, not stored on the Value itself).
func TryGetAttr(v Value, name string) (Value, bool) {
	switch x := v.(type) {
	case Record:
		f, ok := x.Fields[name]
		return f, ok
	case DataClass:
		f, ok := x.Fields[name]
		return f, ok
	case *Cell:
		return TryGetAttr(x.Get(), name)
	default:
		return nil, false
	}
}
