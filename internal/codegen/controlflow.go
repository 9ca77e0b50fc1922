package codegen

import (
	"github.com/vesperlang/vesperc/internal/ir"
	"github.com/vesperlang/vesperc/internal/values"
)

// Control-flow synthesis (spec.md §4.F.5): if/for/while/with/match, none of
// which the destination VM provides natively. Generalizes 's
// compiler_loops.go/compiler_statements.go backward/forward jump patching
// (emitJump, patchJump, OP_LOOP) — with and match have no
// counterpart and are built from the same jump-patching primitives.

// relDelta computes the relative forward argument a jump instruction
// reserved at reservedStart should carry to land on target.
func relDelta(reservedStart, target int) int {
	return target - jumpEnd(reservedStart)
}

// emitLoopBack closes a for/while loop's body, jumping back to loopStart.
// Pre-V11 dialects address the loop head absolutely (JumpAbsolute); V11
// closes it with a relative backward delta (JumpBackward).
func (u *CodeGenUnit) emitLoopBack(loopStart int, line int) {
	start := u.emitJump(u.dialect.LoopOp, line)
	if u.dialect.LoopOp == OpJumpBackward {
		u.patchJump(start, jumpEnd(start)-loopStart)
	} else {
		u.patchJump(start, loopStart)
	}
}

// CompileIf compiles if cond { then } [else { ... }].
func CompileIf(u *CodeGenUnit, n *ir.Node) {
	line := n.Pos.Line
	cond, thenBlk := n.Children[0], n.Children[1]
	var elseBlk *ir.Node
	if len(n.Children) > 2 {
		elseBlk = n.Children[2]
	}
	CompileExpr(u, cond)
	elseJump := u.emitJump(OpPopJumpIfFalse, line)
	u.pop(1)
	CompileBlockStmts(u, thenBlk)
	if elseBlk != nil {
		endJump := u.emitJump(OpJumpForward, line)
		u.patchJump(elseJump, relDelta(elseJump, u.here()))
		CompileBlockStmts(u, elseBlk)
		u.patchJump(endJump, relDelta(endJump, u.here()))
	} else {
		u.patchJump(elseJump, relDelta(elseJump, u.here()))
	}
}

// CompileWhile compiles while cond { body }.
func CompileWhile(u *CodeGenUnit, n *ir.Node) {
	line := n.Pos.Line
	cond, body := n.Children[0], n.Children[1]
	loopStart := u.here()
	CompileExpr(u, cond)
	exitJump := u.emitJump(OpPopJumpIfFalse, line)
	u.pop(1)
	u.loops = append(u.loops, loopCtx{continueTarget: loopStart})
	CompileBlockStmts(u, body)
	lc := u.loops[len(u.loops)-1]
	u.loops = u.loops[:len(u.loops)-1]
	u.emitLoopBack(loopStart, line)
	end := u.here()
	u.patchJump(exitJump, relDelta(exitJump, end))
	for _, bp := range lc.breakPatches {
		u.patchJump(bp, relDelta(bp, end))
	}
}

// CompileFor compiles for Name in iterable { body }: evaluate iterable,
// GetIter, label A: ForIter (target B), body binding the loop variable,
// JumpBackward/JumpAbsolute to A, label B (spec.md §4.F.5).
func CompileFor(u *CodeGenUnit, n *ir.Node) {
	line := n.Pos.Line
	iterable, body := n.Children[0], n.Children[1]
	CompileExpr(u, iterable)
	u.emit0(OpGetIter, line)

	loopStart := u.here()
	exhausted := u.emitJump(OpForIter, line)
	u.push(1) // the next element, pushed when the iterator is not exhausted

	mangled := Mangle(n.Name, n.Info)
	u.RegisterLocal(mangled)
	compileStoreIdentByName(u, mangled, line)

	u.loops = append(u.loops, loopCtx{continueTarget: loopStart})
	CompileBlockStmts(u, body)
	lc := u.loops[len(u.loops)-1]
	u.loops = u.loops[:len(u.loops)-1]

	u.emitLoopBack(loopStart, line)
	end := u.here()
	u.patchJump(exhausted, relDelta(exhausted, end))
	for _, bp := range lc.breakPatches {
		u.patchJump(bp, relDelta(bp, end))
	}
	u.pop(1) // the iterator itself, dropped on the exhausted path
	u.emitArg(OpLoadConst, u.addConst(values.None{}), line)
	u.push(1)
}

// CompileWith compiles with ctx { body }, wiring SetupWith/BeforeWith to
// the dialect's cleanup protocol (spec.md §4.F.4's dialect table).
func CompileWith(u *CodeGenUnit, n *ir.Node) {
	line := n.Pos.Line
	CompileExpr(u, n.Children[0])
	if u.dialect.With == WithExceptionTable {
		u.emit0(OpBeforeWith, line)
	} else {
		u.emit0(OpSetupWith, line)
	}
	CompileBlockStmts(u, n.Children[1])
	if u.dialect.With == WithExceptStartStyle {
		u.emit0(OpWithExceptStart, line)
	}
	u.emit0(OpPopBlock, line)
	u.pop(1) // the context-manager's __exit__/cleanup bookkeeping value
}

// CompileMatch compiles match scrutinee { arms }: the scrutinee is bound
// into a synthesized local once (u.GenSym), then each arm's guard (if any)
// is tested in turn with PopJumpIfFalse to the next arm, an irrefutable
// Bind arm reloads the scrutinee to bind its capture name, and every arm
// jumps to a shared end label once compiled (spec.md §4.F.5/§4.F.6).
func CompileMatch(u *CodeGenUnit, n *ir.Node) {
	line := n.Pos.Line
	CompileExpr(u, n.Children[0])
	scrutinee := u.GenSym("match")
	u.RegisterLocal(scrutinee)
	compileStoreIdentByName(u, scrutinee, line)

	var endPatches []int
	for _, arm := range n.Children[1:] {
		var nextArmPatch int
		guarded := arm.GuardKind == ir.GuardCondition
		switch arm.GuardKind {
		case ir.GuardCondition:
			CompileExpr(u, arm.Children[0])
			nextArmPatch = u.emitJump(OpPopJumpIfFalse, line)
			u.pop(1)
		case ir.GuardBind:
			kind, idx := u.ResolveName(scrutinee)
			emitLoadByKind(u, kind, idx, line)
			u.push(1)
			bindName := Mangle(arm.GuardBindTo, arm.Info)
			u.RegisterLocal(bindName)
			compileStoreIdentByName(u, bindName, line)
		}
		CompileBlockStmts(u, arm)
		endPatches = append(endPatches, u.emitJump(OpJumpForward, line))
		if guarded {
			u.patchJump(nextArmPatch, relDelta(nextArmPatch, u.here()))
		}
	}
	end := u.here()
	for _, p := range endPatches {
		u.patchJump(p, relDelta(p, end))
	}
}

// CompileBreak/CompileContinue resolve against the innermost enclosing loop
// context this unit is compiling; there is no cross-unit break/continue
// (a function body always starts a fresh, empty loop stack).
func CompileBreak(u *CodeGenUnit, n *ir.Node) {
	if len(u.loops) == 0 {
		panic("codegen: break outside a loop")
	}
	p := u.emitJump(OpJumpForward, n.Pos.Line)
	top := len(u.loops) - 1
	u.loops[top].breakPatches = append(u.loops[top].breakPatches, p)
}

func CompileContinue(u *CodeGenUnit, n *ir.Node) {
	if len(u.loops) == 0 {
		panic("codegen: continue outside a loop")
	}
	target := u.loops[len(u.loops)-1].continueTarget
	u.emitLoopBack(target, n.Pos.Line)
}
