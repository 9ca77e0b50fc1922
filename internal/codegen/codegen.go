package codegen

import (
	"fmt"

	"github.com/vesperlang/vesperc/internal/ir"
	"github.com/vesperlang/vesperc/internal/values"
)

// Gen lowers a single top-level IR tree (a module/script body) into a
// completed code object for the given dialect. Grounded on 's
// NewCompiler + top-level Compile entry point (internal/vm/compiler.go).
func Gen(root *ir.Node, dialect *Dialect, filename string) (*values.Code, error) {
	u := NewUnit(dialect, nil, filename, "<module>", posLine(root))
	u.flags |= values.FlagNewLocals
	CompileBlockStmts(u, root)
	u.emitArg(OpLoadConst, u.addConst(values.None{}), u.lastLine)
	u.push(1)
	u.emit0(OpReturnValue, u.lastLine)
	u.pop(1)
	return u.Finish(), nil
}

func posLine(n *ir.Node) int {
	if n == nil {
		return 0
	}
	return n.Pos.Line
}

// CompileBlockStmts compiles block's children as a statement sequence: each
// child is compiled, and any residual expression value is discarded with a
// Pop (module/function bodies don't implicitly return their last statement's
// value the way EvalConstBlock's compile-time counterpart does).
func CompileBlockStmts(u *CodeGenUnit, block *ir.Node) {
	if block == nil {
		return
	}
	for _, stmt := range block.Children {
		producesValue := CompileStmt(u, stmt)
		if producesValue {
			u.emit0(OpPopTop, stmt.Pos.Line)
			u.pop(1)
		}
	}
}

// CompileStmt compiles one statement-position node, returning true if it
// left a value on the stack the caller must discard (an expression used in
// statement position), false for statements whose net stack effect is
// already zero (control flow, assignment, return, named def).
func CompileStmt(u *CodeGenUnit, n *ir.Node) bool {
	switch n.Kind {
	case ir.KindIf:
		CompileIf(u, n)
		return false
	case ir.KindFor:
		CompileFor(u, n)
		return true // spec.md §4.F.5: the loop's label-B LoadConst None is its statement value
	case ir.KindWhile:
		CompileWhile(u, n)
		return false
	case ir.KindWith:
		CompileWith(u, n)
		return false
	case ir.KindMatch:
		CompileMatch(u, n)
		return false
	case ir.KindBlock:
		// Scopes are function-granular, not block-granular: a nested block
		// shares its enclosing unit's varnames/cellvars/freevars tables.
		CompileBlockStmts(u, n)
		return false
	case ir.KindFuncDef:
		CompileFuncDef(u, n)
		// A named def stores its function; an anonymous literal leaves it
		// on the stack.
		return n.Name == ""
	case ir.KindClassDef:
		CompileClassDef(u, n)
		return false
	case ir.KindTraitDef:
		CompileTraitDef(u, n)
		return false
	case ir.KindReturn:
		CompileReturn(u, n)
		return false
	case ir.KindAssign:
		CompileAssign(u, n)
		return false
	case ir.KindBreak:
		CompileBreak(u, n)
		return false
	case ir.KindContinue:
		CompileContinue(u, n)
		return false
	default:
		CompileExpr(u, n)
		return true
	}
}

// CompileExpr compiles n in expression position, leaving exactly one value
// on the operand stack.
func CompileExpr(u *CodeGenUnit, n *ir.Node) {
	line := n.Pos.Line
	switch n.Kind {
	case ir.KindLit:
		v, _ := n.Lit.(values.Value)
		if v == nil {
			v = values.None{}
		}
		u.emitArg(OpLoadConst, u.addConst(v), line)
		u.push(1)

	case ir.KindIdent:
		compileLoadIdent(u, n)

	case ir.KindBinOp:
		CompileExpr(u, n.Children[0])
		CompileExpr(u, n.Children[1])
		if compareOps[n.Op] {
			u.emitCompareOp(n.Op, line)
		} else {
			u.emitBinary(n.Op, line)
		}
		u.pop(2)
		u.push(1)

	case ir.KindUnaryOp:
		CompileExpr(u, n.Children[0])
		switch n.Op {
		case "-":
			u.emit0(OpUnaryNegative, line)
		case "!":
			u.emit0(OpUnaryNot, line)
		case "~":
			u.emit0(OpUnaryInvert, line)
		default:
			panic(fmt.Sprintf("codegen: unknown unary operator %q", n.Op))
		}
		u.pop(1)
		u.push(1)

	case ir.KindAttr:
		CompileExpr(u, n.Recv)
		name := Mangle(n.Name, n.Info)
		idx := u.addName(name)
		if n.Bound {
			u.emitArg(OpLoadMethod, idx, line)
		} else {
			u.emitArg(OpLoadAttr, idx, line)
		}
		u.pop(1)
		u.push(1)

	case ir.KindIndex:
		CompileExpr(u, n.Children[0])
		CompileExpr(u, n.Children[1])
		u.emit0(OpBinarySubscr, line)
		u.pop(2)
		u.push(1)

	case ir.KindCall:
		compileCall(u, n)

	case ir.KindTuple:
		for _, c := range n.Children {
			CompileExpr(u, c)
		}
		u.emitArg(OpBuildTuple, len(n.Children), line)
		u.pop(len(n.Children))
		u.push(1)

	case ir.KindList:
		for _, c := range n.Children {
			CompileExpr(u, c)
		}
		u.emitArg(OpBuildList, len(n.Children), line)
		u.pop(len(n.Children))
		u.push(1)

	case ir.KindRecord:
		for i, c := range n.Children {
			u.emitArg(OpLoadConst, u.addConst(values.Str{V: n.Params[i]}), line)
			u.push(1)
			CompileExpr(u, c)
		}
		u.emitArg(OpBuildRecord, len(n.Children), line)
		u.pop(2 * len(n.Children))
		u.push(1)

	case ir.KindFuncDef:
		// An anonymous function literal (n.Name == "") leaves its
		// MakeFunction result on the stack; a named one stores it instead,
		// but CompileFuncDef is only reached here in expression position,
		// where the IR guarantees an anonymous literal.
		CompileFuncDef(u, n)

	default:
		panic(fmt.Sprintf("codegen: %v is not valid in expression position", n.Kind))
	}
}

func compileLoadIdent(u *CodeGenUnit, n *ir.Node) {
	mangled := Mangle(n.Name, n.Info)
	kind, idx := u.ResolveName(mangled)
	emitLoadByKind(u, kind, idx, n.Pos.Line)
	u.push(1)
}

// emitLoadByKind emits the Load opcode spec.md §4.F.2's five-step search
// selects for a resolved name, given its VarKind and table index.
func emitLoadByKind(u *CodeGenUnit, kind ir.VarKind, idx int, line int) {
	switch kind {
	case ir.VarLocal:
		u.emitArg(OpLoadFast, idx, line)
	case ir.VarCell:
		u.emitArg(OpLoadDeref, idx, line)
	case ir.VarFree:
		u.emitArg(OpLoadDeref, len(u.scope.cellVars)+idx, line)
	case ir.VarGlobal:
		if u.enclosing == nil {
			u.emitArg(OpLoadName, idx, line)
		} else {
			u.emitArg(OpLoadGlobal, idx, line)
		}
	default:
		panic(fmt.Sprintf("codegen: unresolved identifier kind %v", kind))
	}
}

func compileStoreIdent(u *CodeGenUnit, n *ir.Node) {
	line := n.Pos.Line
	mangled := Mangle(n.Name, n.Info)
	kind, idx := u.ResolveName(mangled)
	switch kind {
	case ir.VarLocal:
		u.emitArg(OpStoreFast, idx, line)
	case ir.VarCell:
		u.emitArg(OpStoreDeref, idx, line)
	case ir.VarFree:
		u.emitArg(OpStoreDeref, len(u.scope.cellVars)+idx, line)
	case ir.VarGlobal:
		if u.enclosing == nil {
			u.emitArg(OpStoreName, idx, line)
		} else {
			u.emitArg(OpStoreGlobal, idx, line)
		}
	default:
		panic(fmt.Sprintf("codegen: unresolved identifier kind %v for %q", kind, n.Name))
	}
	u.pop(1)
}

func compileCall(u *CodeGenUnit, n *ir.Node) {
	line := n.Pos.Line
	callee := n.Children[0]
	args := n.Children[1:]
	if callee.Kind == ir.KindAttr && callee.Bound {
		CompileExpr(u, callee)
		for _, a := range args {
			CompileExpr(u, a)
		}
		u.emitArg(OpCallMethod, len(args), line)
		u.pop(len(args))
		return
	}
	CompileExpr(u, callee)
	for _, a := range args {
		CompileExpr(u, a)
	}
	u.emitArg(OpCallFunction, len(args), line)
	u.pop(len(args))
}

// CompileAssign compiles `target = value`.
func CompileAssign(u *CodeGenUnit, n *ir.Node) {
	target, value := n.Children[0], n.Children[1]
	CompileExpr(u, value)
	switch target.Kind {
	case ir.KindIdent:
		if target.Info != nil && target.Info.Kind == ir.VarLocal {
			u.RegisterLocal(Mangle(target.Name, target.Info))
		}
		compileStoreIdent(u, target)
	case ir.KindAttr:
		CompileExpr(u, target.Recv)
		idx := u.addName(Mangle(target.Name, target.Info))
		u.emitArg(OpStoreAttr, idx, n.Pos.Line)
		u.pop(2)
	case ir.KindIndex:
		CompileExpr(u, target.Children[0])
		CompileExpr(u, target.Children[1])
		u.emit0(OpStoreSubscr, n.Pos.Line)
		u.pop(3)
	default:
		panic(fmt.Sprintf("codegen: %v is not assignable", target.Kind))
	}
}

// CompileReturn compiles `return expr?`.
func CompileReturn(u *CodeGenUnit, n *ir.Node) {
	line := n.Pos.Line
	if len(n.Children) > 0 {
		CompileExpr(u, n.Children[0])
	} else {
		u.emitArg(OpLoadConst, u.addConst(values.None{}), line)
		u.push(1)
	}
	u.emit0(OpReturnValue, line)
	u.pop(1)
}

// CompileFuncDef builds a nested CodeGenUnit for the function body and
// emits MakeFunction, carrying a closure over the enclosing unit's cellvars
// the body captured as freevars (spec.md §9 S4).
func CompileFuncDef(u *CodeGenUnit, n *ir.Node) {
	line := n.Pos.Line
	body := n.Children[0]
	sub := NewUnit(u.dialect, u, u.filename, n.Name, line)
	sub.flags |= values.FlagNewLocals | values.FlagNested
	// Parameters carry no individual VarInfo of their own; they are mangled
	// as private identifiers defined at the function's own position, which
	// any ir.KindIdent reference inside the body must match by using the
	// same DefPos (spec.md §9 S4).
	paramInfo := &ir.VarInfo{Visibility: ir.Private, DefPos: n.Pos}
	for _, p := range n.Params {
		sub.RegisterParam(Mangle(p, paramInfo))
	}
	CompileBlockStmts(sub, body)
	sub.emitArg(OpLoadConst, sub.addConst(values.None{}), sub.lastLine)
	sub.push(1)
	sub.emit0(OpReturnValue, sub.lastLine)
	sub.pop(1)
	code := sub.Finish()

	for _, fv := range code.FreeVars {
		kind, idx := u.ResolveName(fv)
		switch kind {
		case ir.VarCell:
			u.emitArg(OpLoadClosure, idx, line)
		case ir.VarFree:
			u.emitArg(OpLoadClosure, len(u.scope.cellVars)+idx, line)
		default:
			panic("codegen: free variable not resolvable as a cell in enclosing unit")
		}
		u.push(1)
	}
	if len(code.FreeVars) > 0 {
		u.emitArg(OpBuildTuple, len(code.FreeVars), line)
		u.pop(len(code.FreeVars))
		u.push(1)
	}
	u.emitArg(OpLoadConst, u.addConst(code), line)
	u.push(1)
	flag := 0
	if len(code.FreeVars) > 0 {
		flag = 1
	}
	u.emitArg(OpMakeFunction, flag, line)
	u.pop(1 + flag)
	u.push(1)

	if n.Name != "" {
		mangled := Mangle(n.Name, n.Info)
		u.RegisterLocal(mangled)
		compileStoreIdentByName(u, mangled, line)
	}
}

func compileStoreIdentByName(u *CodeGenUnit, mangled string, line int) {
	kind, idx := u.ResolveName(mangled)
	switch kind {
	case ir.VarLocal:
		u.emitArg(OpStoreFast, idx, line)
	case ir.VarGlobal:
		if u.enclosing == nil {
			u.emitArg(OpStoreName, idx, line)
		} else {
			u.emitArg(OpStoreGlobal, idx, line)
		}
	default:
		u.emitArg(OpStoreDeref, idx, line)
	}
	u.pop(1)
}
