package codegen

import (
	"fmt"

	"github.com/vesperlang/vesperc/internal/config"
	"github.com/vesperlang/vesperc/internal/values"
)

// loopCtx tracks an enclosing for/while loop's patch points, generalizing
// LoopContext (internal/vm/compiler.go) to this package's
// jump-reservation scheme (see emit.go).
type loopCtx struct {
	continueTarget int
	breakPatches   []int
}

// CodeGenUnit is one function/module/class body under construction. It
// generalizes Compiler struct: slotCount becomes stack-depth
// bookkeeping against a dialect-selected opcode table, and locals/upvalues
// become the five-step cellvars/freevars/varnames/names resolution scope.go
// implements.
type CodeGenUnit struct {
	dialect   *Dialect
	enclosing *CodeGenUnit

	filename    string
	name        string
	firstLineNo int
	argCount    int
	posOnly     int
	kwOnly      int
	flags       values.CodeFlag

	bytes  []byte
	consts []values.Value
	// constIndex de-duplicates the constant pool by structural equality
	// (spec.md §3.6: "insertion-order de-duplicated by structural equality").
	constIndex []constEntry

	scope *scopeTable

	stackDepth    int
	maxStackDepth int

	lastLine    int
	lineSamples [][2]int

	loops []loopCtx

	// seq is a per-unit deterministic sequence counter for generated names
	// (e.g. the %match temporaries CompileMatch synthesizes), replacing the
	// ad hoc string building in compiler_expressions.go with a
	// uuid-free, reproducible counter.
	seq int

	debug bool
}

type constEntry struct {
	v   values.Value
	idx int
}

// NewUnit starts a CodeGenUnit for a top-level module or function body.
// enclosing is nil for the outermost unit; nested function/class bodies pass
// their defining unit so scope resolution can promote free variables.
func NewUnit(dialect *Dialect, enclosing *CodeGenUnit, filename, name string, firstLineNo int) *CodeGenUnit {
	return &CodeGenUnit{
		dialect:     dialect,
		enclosing:   enclosing,
		filename:    filename,
		name:        name,
		firstLineNo: firstLineNo,
		scope:       newScopeTable(),
		lastLine:    firstLineNo,
		debug:       config.Debug,
	}
}

// push records n values pushed onto the operand stack, updating the
// max-depth high-water mark CodeGenUnit.Finish reports as Code.StackSize
// (spec.md §4.F.1).
func (u *CodeGenUnit) push(n int) {
	u.stackDepth += n
	if u.stackDepth > u.maxStackDepth {
		u.maxStackDepth = u.stackDepth
	}
}

// pop records n values popped from the operand stack. A negative resulting
// depth is a stack-discipline bug in this package, not in emitted input, and
// panics immediately rather than silently producing a corrupt stacksize.
func (u *CodeGenUnit) pop(n int) {
	u.stackDepth -= n
	if u.stackDepth < 0 {
		panic(fmt.Sprintf("codegen: stack underflow in %s (depth %d after pop %d)", u.name, u.stackDepth, n))
	}
}

func (u *CodeGenUnit) nextSeq() int {
	u.seq++
	return u.seq
}

// addConst interns v into the constant pool, de-duplicating by structural
// equality (Value.Equals) in insertion order.
func (u *CodeGenUnit) addConst(v values.Value) int {
	for _, e := range u.constIndex {
		if e.v.Equals(v) {
			return e.idx
		}
	}
	idx := len(u.consts)
	u.consts = append(u.consts, v)
	u.constIndex = append(u.constIndex, constEntry{v: v, idx: idx})
	return idx
}

func (u *CodeGenUnit) addName(name string) int {
	return addUnique(&u.scope.names, name)
}

// Finish closes the unit and returns the completed code object. When
// config.Debug is set it asserts the operand stack returned to its initial
// depth (spec.md §4.F.1's init_stack_len assertion), matching 's
// own debug-gated invariants (e.g. not_bug_test.go).
func (u *CodeGenUnit) Finish() *values.Code {
	if u.debug && u.stackDepth != 0 {
		panic(fmt.Sprintf("codegen: unit %s finished with non-zero stack depth %d (init_stack_len violated)", u.name, u.stackDepth))
	}
	return &values.Code{
		ArgCount:        u.argCount,
		PosOnlyArgCount: u.posOnly,
		KwOnlyArgCount:  u.kwOnly,
		StackSize:       u.maxStackDepth,
		Flags:           u.flags,
		Bytes:           u.bytes,
		Consts:          u.consts,
		Names:           u.scope.names,
		VarNames:        u.scope.varNames,
		FreeVars:        u.scope.freeVars,
		CellVars:        u.scope.cellVars,
		Filename:        u.filename,
		Name:            u.name,
		FirstLineNo:     u.firstLineNo,
		LineTable:       values.EncodeLineTable(u.lineSamples),
	}
}

// addUnique appends name to list if absent and returns its index either way
// (the dedup-by-name primitive scope.go's cellvars/freevars/varnames/names
// bookkeeping is built from).
func addUnique(list *[]string, name string) int {
	for i, n := range *list {
		if n == name {
			return i
		}
	}
	*list = append(*list, name)
	return len(*list) - 1
}
