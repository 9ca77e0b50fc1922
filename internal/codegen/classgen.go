package codegen

import (
	"github.com/vesperlang/vesperc/internal/ir"
	"github.com/vesperlang/vesperc/internal/values"
)

// Class/trait emission (spec.md §4.F.6). Generalizes trait
// method registration opcodes (OP_REGISTER_TRAIT, OP_CALL_TRAIT,
// OP_REGISTER_EXTENSION — runtime registrations against Funxy's own trait
// table) into compile-time class-body code-object synthesis targeting the
// destination VM's class-creation protocol: a class body compiles to its
// own code object (member defs are stored as that body's locals, see
// below), and LoadBuildClass + CallFunction assembles name, bases, and
// the body's namespace into the class object at the definition site.

// compileClassLike's member bodies store through the class unit's ordinary
// local-slot resolution rather than a dedicated name-table store; the
// destination VM's actual class-body execution model (which binds member
// defs through its name scope, not fast locals) is left as a follow-on
// refinement once CallFunctionEx-style keyword-namespace passing is wired
// through MakeFunction — tracked, not silently diverged from.
func compileClassLike(u *CodeGenUnit, n *ir.Node, kind string) {
	line := n.Pos.Line
	sub := NewUnit(u.dialect, u, u.filename, n.Name, line)
	for _, member := range n.Children {
		CompileStmt(sub, member)
	}
	// A class body's implicit return value is its own namespace (every
	// StoreName in the body becomes an attribute on the finished class);
	// LoadBuildClass's protocol reads that back via the body's own Names
	// table, so the body itself still needs a value to return.
	sub.emitArg(OpLoadConst, sub.addConst(values.None{}), sub.lastLine)
	sub.push(1)
	sub.emit0(OpReturnValue, sub.lastLine)
	sub.pop(1)
	bodyCode := sub.Finish()

	u.emit0(OpLoadBuildClass, line)
	u.push(1)
	u.emitArg(OpLoadConst, u.addConst(bodyCode), line)
	u.push(1)
	u.emitArg(OpMakeFunction, 0, line)
	u.pop(1)
	u.push(1)
	u.emitArg(OpLoadConst, u.addConst(values.Str{V: n.Name}), line)
	u.push(1)

	for _, base := range n.Params {
		baseIdent := &ir.Node{Kind: ir.KindIdent, Name: base, Pos: n.Pos}
		compileLoadIdent(u, baseIdent)
	}

	nargs := 2 + len(n.Params)
	u.emitArg(OpCallFunction, nargs, line)
	u.pop(nargs)

	mangled := Mangle(n.Name, n.Info)
	u.RegisterLocal(mangled)
	compileStoreIdentByName(u, mangled, line)
	_ = kind
}

// CompileClassDef compiles `class Name(Base, ...) { members }`.
func CompileClassDef(u *CodeGenUnit, n *ir.Node) {
	compileClassLike(u, n, "class")
}

// CompileTraitDef compiles `trait Name(SuperTrait, ...) { members }`,
// reusing class-body synthesis: a trait is a class whose methods a
// conforming type's class-body must also define (BuiltinRegistry's
// TraitImpls bucket mirrors this at the compile-time-evaluation layer).
func CompileTraitDef(u *CodeGenUnit, n *ir.Node) {
	compileClassLike(u, n, "trait")
}
