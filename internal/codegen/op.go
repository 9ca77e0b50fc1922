// Package codegen lowers a typed internal/ir tree into values.Code objects
// targeting one of four destination-VM instruction dialects (V7, V9, V10,
// V11). It is the stack-discipline bytecode emitter: operand-stack depth
// bookkeeping, scope resolution, name mangling, version-adaptive emission,
// control-flow synthesis, class/trait emission, and the line-number table.
//
// Grounded on internal/vm/{compiler,compiler_expressions,
// compiler_loops,compiler_statements,compiler_scope,chunk,opcodes,disasm}.go
// (see DESIGN.md): a single-dialect stack VM with
// Local/Upvalue/LoopContext, beginScope/endScope, resolveLocal/resolveUpvalue,
// emitJump/patchJump. This package generalizes the same mechanisms to lower
// into CPython-family-shaped code objects across four dialects, which never
// run here — the destination VM is external, this package only emits for it.
package codegen

// Op is an abstract instruction mnemonic. Each dialect maps a subset of Ops
// to its own opcode byte (see dialect_v*.go); an Op absent from a dialect's
// table is never emitted while that dialect is selected.
type Op int

const (
	OpLoadConst Op = iota
	OpLoadFast
	OpStoreFast
	OpLoadGlobal
	OpStoreGlobal
	OpLoadDeref
	OpStoreDeref
	OpLoadClosure
	OpLoadName
	OpStoreName
	OpLoadAttr
	OpLoadMethod
	OpCallMethod
	OpStoreAttr
	OpBinarySubscr
	OpStoreSubscr

	OpUnaryNegative
	OpUnaryNot
	OpUnaryInvert

	// Fixed binary families (V7/V9/V10): one opcode per operator.
	OpBinaryAdd
	OpBinarySub
	OpBinaryMul
	OpBinaryDiv
	OpBinaryMod
	OpBinaryPow
	OpBinaryAnd
	OpBinaryOr
	OpBinaryXor
	OpBinaryLshift
	OpBinaryRshift

	// Fused binary family (V11 only): BinaryOp + a subcode byte.
	OpBinaryOp

	OpCompareOp
	OpIsOp
	OpContainsOp

	OpJumpForward
	OpJumpAbsolute
	OpJumpBackward // V11 loop-closing jump; replaces JumpAbsolute
	OpPopJumpIfFalse
	OpPopJumpIfTrue
	OpJumpIfFalseOrPop
	OpJumpIfTrueOrPop
	OpGetIter
	OpForIter

	OpSetupWith
	OpWithExceptStart
	OpBeforeWith
	OpPopBlock

	OpCallFunction
	OpMakeFunction
	OpReturnValue
	OpPopTop
	OpDupTop
	OpRotTwo

	OpBuildTuple
	OpBuildList
	OpBuildMap
	OpBuildRecord // Vesper-specific: n keys (consts) + n values -> Record

	OpLoadBuildClass
	OpCallFunctionEx // in every dialect table; class emission calls through OpCallFunction instead

	OpExtendedArg

	OpRaiseVarargs
	OpMatchCheckTag // Vesper-specific: pattern-tag test for match arms
)

// fixedBinaryOps maps a surface operator string to its V7/V9/V10 dedicated
// opcode. V11 instead fuses all of these under OpBinaryOp with a subcode
// (see dialect_v11.go's BinarySubcode table).
var fixedBinaryOps = map[string]Op{
	"+":  OpBinaryAdd,
	"-":  OpBinarySub,
	"*":  OpBinaryMul,
	"/":  OpBinaryDiv,
	"%":  OpBinaryMod,
	"**": OpBinaryPow,
	"&":  OpBinaryAnd,
	"|":  OpBinaryOr,
	"^":  OpBinaryXor,
	"<<": OpBinaryLshift,
	">>": OpBinaryRshift,
}

// compareOps is the set of operators lowered through OpCompareOp/OpIsOp/
// OpContainsOp rather than a dedicated binary opcode.
var compareOps = map[string]bool{
	"<": true, "<=": true, "==": true, "!=": true, ">": true, ">=": true,
	"is": true, "is not": true, "in": true, "not in": true,
}
