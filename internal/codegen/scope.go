package codegen

import "github.com/vesperlang/vesperc/internal/ir"

// scopeTable holds one unit's four symbol tables (spec.md §3.6/§4.F.2).
// Generalizes flat Local/Upvalue slices (internal/vm/compiler.go)
// into the destination VM's four named tables.
type scopeTable struct {
	varNames []string
	cellVars []string
	freeVars []string
	names    []string

	// captured marks a varnames entry that has been promoted to a cellvar:
	// step 3 of name resolution must then fall through past it rather than
	// emitting a Fast load against a slot a closure also addresses by cell.
	captured map[string]bool
}

func newScopeTable() *scopeTable {
	return &scopeTable{}
}

func indexOf(list []string, name string) (int, bool) {
	for i, n := range list {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// RegisterParam declares name as a positional/keyword parameter, adding it
// to varnames in declaration order (varnames[:argcount] are the parameters).
func (u *CodeGenUnit) RegisterParam(name string) {
	addUnique(&u.scope.varNames, name)
	u.argCount++
}

// RegisterLocal declares name as an ordinary local, adding it to varnames if
// not already a parameter.
func (u *CodeGenUnit) RegisterLocal(name string) int {
	return addUnique(&u.scope.varNames, name)
}

// ResolveName implements spec.md §4.F.2's five-step search for a reference
// to name in this unit, returning the VarKind the caller should emit a
// Load/Store against and its table index. name must already be mangled
// (mangle.go) by the caller, since mangling determines cross-scope identity.
func (u *CodeGenUnit) ResolveName(name string) (ir.VarKind, int) {
	if idx, ok := indexOf(u.scope.cellVars, name); ok {
		return ir.VarCell, idx
	}
	if idx, ok := indexOf(u.scope.freeVars, name); ok {
		return ir.VarFree, idx
	}
	if idx, ok := indexOf(u.scope.varNames, name); ok && !u.scope.captured[name] {
		return ir.VarLocal, idx
	}
	if u.enclosing == nil {
		return ir.VarGlobal, u.addName(name)
	}
	if u.enclosing.resolveForCapture(name) {
		idx := addUnique(&u.scope.freeVars, name)
		return ir.VarFree, idx
	}
	return ir.VarGlobal, u.addName(name)
}

// resolveForCapture is step 5's recursive walk: it finds name as a local
// (promoting it to a cellvar in the unit that owns it) or an
// already-captured cell/free variable, propagating a freevar entry through
// every intermediate unit on the way back down. Generalizes 's
// addUpvalue dedup-by-(index,isLocal) into dedup-by-(kind,name), since this
// module's cellvars/freevars are keyed by mangled name, not by frame slot.
func (u *CodeGenUnit) resolveForCapture(name string) bool {
	if _, ok := indexOf(u.scope.varNames, name); ok {
		addUnique(&u.scope.cellVars, name)
		if u.scope.captured == nil {
			u.scope.captured = make(map[string]bool)
		}
		u.scope.captured[name] = true
		return true
	}
	if _, ok := indexOf(u.scope.cellVars, name); ok {
		return true
	}
	if _, ok := indexOf(u.scope.freeVars, name); ok {
		return true
	}
	if u.enclosing == nil {
		return false
	}
	if !u.enclosing.resolveForCapture(name) {
		return false
	}
	addUnique(&u.scope.freeVars, name)
	return true
}
