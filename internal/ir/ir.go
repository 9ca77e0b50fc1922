// Package ir defines the typed intermediate representation CodeGen consumes.
//
// The IR itself is produced by an external collaborator (lexing, parsing,
// and name resolution are out of this module's scope — spec.md §1/§6.3).
// This package only carries the shapes CodeGen needs to query: expression
// nodes annotated with resolved VarInfo. CodeGen never mutates a Node.
package ir

// Pos is a source location. It is deliberately minimal: this module never
// renders diagnostics itself (that belongs to an external, localized error
// renderer — spec.md §1), it only forwards positions into the line-number
// table and into ErrorCore values it receives, unchanged.
type Pos struct {
	Line   int
	Column int
}

// Visibility tags a name as private (mangled) or public (left bare so
// host-level reflection, e.g. hasattr, keeps working against it).
type Visibility int

const (
	Private Visibility = iota
	Public
)

// VarKind distinguishes how a name resolves once scope analysis has run.
type VarKind int

const (
	VarLocal VarKind = iota
	VarGlobal
	VarCell
	VarFree
	VarAttr
)

// VarInfo is the resolved identity of a name reference, as produced by the
// external name-resolution pass and consumed (never modified) by CodeGen.
type VarInfo struct {
	AbsLocation Pos
	Visibility  Visibility
	Kind        VarKind
	// PyNameOverride lets a built-in declare the literal target-VM attribute
	// name it should lower to (e.g. a method whose Vesper name differs from
	// the name the destination VM's runtime object exposes it under).
	PyNameOverride string
	DefPos         Pos // the position the binding was introduced at; used for mangling
}

// NodeKind enumerates the expression/statement shapes CodeGen lowers.
// This is intentionally flat (a closed sum via a kind tag plus a generic
// payload) rather than one Go type per shape, because the IR itself is an
// external interface this module only reads — a provider-defined AST is
// free to carry additional node kinds this module ignores.
type NodeKind int

const (
	KindLit NodeKind = iota
	KindIdent
	KindBinOp
	KindUnaryOp
	KindCall
	KindAttr
	KindIndex
	KindIf
	KindFor
	KindWhile
	KindWith
	KindMatch
	KindBlock
	KindFuncDef
	KindClassDef
	KindTraitDef
	KindReturn
	KindAssign
	KindTuple
	KindList
	KindRecord
	KindBreak
	KindContinue
)

// Node is a single IR tree node. CodeGen switches on Kind and reads the
// fields relevant to that kind; fields irrelevant to a given Kind are zero.
type Node struct {
	Kind NodeKind
	Pos  Pos

	// Identifier / attribute access.
	Name string
	Info *VarInfo
	Recv *Node // for KindAttr/KindCall-as-method, the receiver expression
	Bound bool  // KindAttr: true if this is a bound method-call site

	// Literal payload (compile-time Value — see internal/values).
	Lit any

	// Structural children, reused across kinds with kind-specific meaning:
	//   BinOp:      Children[0] op Children[1], Op names the operator
	//   UnaryOp:    Children[0], Op names the operator
	//   Call:       Children[0] is callee, Children[1:] are args
	//   If:         Children[0] cond, Children[1] then-block, Children[2]? else-block
	//   For:        Children[0] iterable, Children[1] body, Name is the loop variable
	//   While:      Children[0] cond, Children[1] body
	//   With:       Children[0] context-manager expr, Children[1] body
	//   Match:      Children[0] scrutinee, Children[1:] are MatchArm-shaped Block nodes
	//   Block:      Children are statements in order
	//   FuncDef:    Children[0] body block; Params names the parameter list
	//   ClassDef:   Children are member defs; Params names base classes
	//   Assign:     Children[0] target, Children[1] value
	//   Tuple/List: Children are elements
	//   Record:     Children are values, Params are field names (same index)
	Children []*Node
	Op       string
	Params   []string

	// Guard payload for match arms: either a Bind (irrefutable capture,
	// GuardBindTo holds the bound identifier) or a Condition (Children[0] is the
	// boolean test).
	GuardKind   GuardKind
	GuardBindTo string
}

// GuardKind distinguishes a match arm's pattern guard.
type GuardKind int

const (
	GuardNone GuardKind = iota
	GuardBind
	GuardCondition
)
