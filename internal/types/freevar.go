package types

import "github.com/vesperlang/vesperc/internal/tyvar"

// FreeVar is a type-level reference to a tyvar.Cell — spec.md §3.2's
// `FreeVar(cell-id)`. Equality compares by cell identity, transparently
// chasing through Linked/UndoableLinked cells to their current target, per
// spec.md §4.B ("For free variables, compares by cell identity; resolves
// linked variables transparently").
type FreeVar struct {
	Cell *tyvar.Cell
}

func (f FreeVar) String() string { return f.Cell.String() }

func (f FreeVar) KindOf() Kind {
	if t, resolved := ResolveFreeVar(f); resolved {
		return t.KindOf()
	}
	return AnyKind
}

func (f FreeVar) Equal(o TypeLike) bool {
	if resolved, ok := ResolveFreeVar(f); ok {
		return resolved.Equal(o)
	}
	of, ok := o.(FreeVar)
	if !ok {
		return false
	}
	if resolvedOther, ok := ResolveFreeVar(of); ok {
		return f.Equal(resolvedOther)
	}
	return f.Cell.ID() == of.Cell.ID()
}

// ResolveFreeVar chases a FreeVar's cell through Linked/UndoableLinked
// states to the Type it currently targets, returning (nil, false) while the
// cell remains Unbound.
func ResolveFreeVar(f FreeVar) (Type, bool) {
	if f.Cell.State == tyvar.Unbound {
		return nil, false
	}
	t, ok := f.Cell.Target.(Type)
	return t, ok
}
