package codegen

import "github.com/vesperlang/vesperc/internal/config"

// WithStyle selects the with-block cleanup shape spec.md §4.F.4's dialect
// table names: each generation wires SetupWith to a different exception-exit
// protocol.
type WithStyle int

const (
	WithCleanupChain     WithStyle = iota // V7: SetupWith + explicit cleanup chain
	WithExceptStartStyle                  // V9: SetupWith + WithExceptStart
	WithV10Cleanup                        // V10: SetupWith + V10-shaped cleanup
	WithExceptionTable                    // V11: BeforeWith + exception-table cleanup
)

// Dialect is one destination-VM instruction-set generation's fixed opcode
// table. Selected once at CodeGenUnit construction (config.TargetVersion)
// and never switched on at runtime (spec.md §9: "dispatch by a
// compile-time-selected VM-version enum, never by runtime introspection") —
// generalizes single internal/vm/opcodes.go OpcodeNames table
// into one such table per generation.
type Dialect struct {
	Version config.TargetVersion

	// Ops maps every abstract Op this dialect supports to its opcode byte.
	// An Op absent here must never be emitted while this dialect is active.
	Ops map[Op]byte

	// FusedBinaryOp is true only for V11, whose single OpBinaryOp carries a
	// per-operator subcode byte instead of a dedicated opcode per operator.
	FusedBinaryOp bool
	BinarySubcode map[Op]byte

	// LoopOp is the backward-edge jump a for/while loop closes with:
	// OpJumpAbsolute for V7/V9/V10, OpJumpBackward for V11.
	LoopOp Op

	With WithStyle
}

// DialectFor resolves a concrete Dialect for the given target. The driver
// resolves VUnknown (config.DetectTargetVersion) before calling this; any
// value other than V7/V9/V10/V11, VUnknown included, yields the V11 dialect.
func DialectFor(v config.TargetVersion) *Dialect {
	switch v {
	case config.V7:
		return dialectV7
	case config.V9:
		return dialectV9
	case config.V10:
		return dialectV10
	case config.V11:
		return dialectV11
	default:
		return dialectV11
	}
}
