package codegen

// maxExtendedArgs bounds how many EXTENDED_ARG pairs precede a primary
// instruction, giving a 4-byte (32-bit) operand ceiling — comfortably above
// any code object this package emits. Jump reservations always allocate the
// full chain up front (see emitJump) and pad unused leading pairs with
// EXTENDED_ARG 0, which composes as a no-op high byte; this turns "measure
// then patch" into a single pass with a fixed-width reservation instead of
// fixed 2-byte emitJump/patchJump (whose destination VM never
// needed extension).
const maxExtendedArgs = 3

func (u *CodeGenUnit) writeByte(b byte, line int) {
	u.bytes = append(u.bytes, b)
	u.recordLine(line)
}

func (u *CodeGenUnit) recordLine(line int) {
	u.lineSamples = append(u.lineSamples, [2]int{len(u.bytes) - 1, line})
	u.lastLine = line
}

// emit0 writes a zero-operand instruction.
func (u *CodeGenUnit) emit0(op Op, line int) {
	u.writeByte(u.dialect.Ops[op], line)
}

// emitArg writes op with a known, immediate argument, extending with
// EXTENDED_ARG only as far as arg actually requires (no reservation: the
// value is already known, unlike a forward jump target).
func (u *CodeGenUnit) emitArg(op Op, arg int, line int) {
	bs := argBytes(arg)
	for _, hi := range bs[:len(bs)-1] {
		u.writeByte(u.dialect.Ops[OpExtendedArg], line)
		u.writeByte(hi, line)
	}
	u.writeByte(u.dialect.Ops[op], line)
	u.writeByte(bs[len(bs)-1], line)
}

// emitCompareOp emits the fused comparison/identity/membership family,
// using the sub-code ordering original_source/codegen.rs pins (compare.go).
func (u *CodeGenUnit) emitCompareOp(operator string, line int) {
	if sub, ok := compareSubcode[operator]; ok {
		u.emitArg(OpCompareOp, int(sub), line)
		return
	}
	sub := identitySubcode[operator]
	switch operator {
	case "is", "is not":
		u.emitArg(OpIsOp, int(sub), line)
	default:
		u.emitArg(OpContainsOp, int(sub), line)
	}
}

// emitBinary emits a binary arithmetic/bitwise operator, dispatching to the
// dialect's fused BinaryOp+subcode form (V11) or its dedicated per-operator
// opcode (V7/V9/V10) — spec.md §9 S6.
func (u *CodeGenUnit) emitBinary(operator string, line int) {
	op := fixedBinaryOps[operator]
	if u.dialect.FusedBinaryOp {
		u.emitArg(OpBinaryOp, int(u.dialect.BinarySubcode[op]), line)
		return
	}
	u.emit0(op, line)
}

// argBytes splits a non-negative int into the minimal big-endian byte chain
// (at least one byte) argBytes[:-1] drive EXTENDED_ARG, the last byte is the
// primary instruction's operand.
func argBytes(arg int) []byte {
	if arg < 0 {
		arg = 0
	}
	var rev []byte
	for {
		rev = append(rev, byte(arg&0xff))
		arg >>= 8
		if arg == 0 {
			break
		}
	}
	out := make([]byte, len(rev))
	for i, b := range rev {
		out[len(rev)-1-i] = b
	}
	return out
}

// emitJump reserves a full-width jump instruction (maxExtendedArgs
// EXTENDED_ARG pairs followed by the primary op) before the target offset
// is known, returning the byte offset to later pass to patchJump.
func (u *CodeGenUnit) emitJump(op Op, line int) int {
	start := len(u.bytes)
	for i := 0; i < maxExtendedArgs; i++ {
		u.writeByte(u.dialect.Ops[OpExtendedArg], line)
		u.writeByte(0, line)
	}
	u.writeByte(u.dialect.Ops[op], line)
	u.writeByte(0, line)
	return start
}

// patchJump backfills a reservation emitJump made at reservedStart with the
// given absolute/relative argument value (the caller decides which:
// pre-V11's JumpAbsolute addresses the loop head directly, V11's
// JumpBackward takes a backward relative delta, and JumpForward/
// PopJumpIfFalse take a forward relative delta).
func (u *CodeGenUnit) patchJump(reservedStart, value int) {
	bs := argBytes(value)
	if len(bs) > maxExtendedArgs+1 {
		panic("codegen: jump argument exceeds reserved EXTENDED_ARG width")
	}
	padded := make([]byte, maxExtendedArgs+1)
	copy(padded[maxExtendedArgs+1-len(bs):], bs)
	for i, b := range padded {
		u.bytes[reservedStart+i*2+1] = b
	}
}

// here returns the current end-of-code byte offset, used as a jump target
// or as the base a forward jump's relative delta is measured from.
func (u *CodeGenUnit) here() int {
	return len(u.bytes)
}

// jumpEnd returns the byte offset immediately after a reservation made by
// emitJump, i.e. where execution falls through once the jump is not taken,
// and the base a forward-relative delta is measured from.
func jumpEnd(reservedStart int) int {
	return reservedStart + (maxExtendedArgs+1)*2
}
