package codegen

import (
	"testing"

	"github.com/vesperlang/vesperc/internal/config"
	"github.com/vesperlang/vesperc/internal/ir"
	"github.com/vesperlang/vesperc/internal/values"
)

func TestClosureCaptureMangledCellvarsAndStacksize(t *testing.T) {
	defPos := ir.Pos{Line: 1, Column: 1}
	identInfo := &ir.VarInfo{Visibility: ir.Private, DefPos: defPos}

	innerBody := &ir.Node{Kind: ir.KindBlock, Children: []*ir.Node{
		{Kind: ir.KindIdent, Name: "i", Info: identInfo, Pos: defPos},
	}}
	inner := &ir.Node{Kind: ir.KindFuncDef, Name: "", Children: []*ir.Node{innerBody}, Pos: defPos}
	outerBody := &ir.Node{Kind: ir.KindBlock, Children: []*ir.Node{inner}}
	outer := &ir.Node{Kind: ir.KindFuncDef, Name: "f", Params: []string{"i"}, Children: []*ir.Node{outerBody}, Pos: defPos}
	root := &ir.Node{Kind: ir.KindBlock, Children: []*ir.Node{outer}}

	code, err := Gen(root, DialectFor(config.V11), "closure.vsp")
	if err != nil {
		t.Fatalf("Gen: %v", err)
	}
	// Gen returns the module's code object; f's own code is in its constant pool.
	var outerCode *values.Code
	for _, c := range code.Consts {
		if cc, ok := c.(*values.Code); ok {
			outerCode = cc
		}
	}
	if outerCode == nil {
		t.Fatal("expected f's code object in the module's constant pool")
	}
	if len(outerCode.CellVars) != 1 || outerCode.CellVars[0] != "::i_L1_C1" {
		t.Fatalf("want outer cellvars [::i_L1_C1], got %v", outerCode.CellVars)
	}
	if outerCode.StackSize != 2 {
		t.Fatalf("want outer stacksize 2 (closure tuple + inner code), got %d", outerCode.StackSize)
	}

	var innerCode *values.Code
	for _, c := range outerCode.Consts {
		if cc, ok := c.(*values.Code); ok {
			innerCode = cc
		}
	}
	if innerCode == nil {
		t.Fatal("expected inner function's code object in outer's constant pool")
	}
	if len(innerCode.FreeVars) != 1 || innerCode.FreeVars[0] != "::i_L1_C1" {
		t.Fatalf("want inner freevars [::i_L1_C1], got %v", innerCode.FreeVars)
	}
}

func TestVersionDispatchBinaryAddVsBinaryOp(t *testing.T) {
	line := ir.Pos{Line: 1}
	expr := &ir.Node{
		Kind: ir.KindBinOp, Op: "+", Pos: line,
		Children: []*ir.Node{
			{Kind: ir.KindLit, Lit: values.Int32{V: 1}, Pos: line},
			{Kind: ir.KindLit, Lit: values.Int32{V: 2}, Pos: line},
		},
	}
	root := &ir.Node{Kind: ir.KindBlock, Children: []*ir.Node{expr}}

	v10, err := Gen(root, DialectFor(config.V10), "add.vsp")
	if err != nil {
		t.Fatalf("Gen v10: %v", err)
	}
	v11, err := Gen(root, DialectFor(config.V11), "add.vsp")
	if err != nil {
		t.Fatalf("Gen v11: %v", err)
	}
	if !containsByte(v10.Bytes, dialectV10.Ops[OpBinaryAdd]) {
		t.Fatal("expected V10 to emit a dedicated BinaryAdd opcode")
	}
	if !containsByte(v11.Bytes, dialectV11.Ops[OpBinaryOp]) {
		t.Fatal("expected V11 to emit the fused BinaryOp opcode")
	}
}

func containsByte(bs []byte, b byte) bool {
	for _, x := range bs {
		if x == b {
			return true
		}
	}
	return false
}

func TestIfElseRecordsNonZeroStacksize(t *testing.T) {
	line := ir.Pos{Line: 1}
	cond := &ir.Node{Kind: ir.KindLit, Lit: values.Bool{V: true}, Pos: line}
	thenBlk := &ir.Node{Kind: ir.KindBlock, Children: []*ir.Node{
		{Kind: ir.KindLit, Lit: values.Int32{V: 1}, Pos: line},
	}}
	elseBlk := &ir.Node{Kind: ir.KindBlock, Children: []*ir.Node{
		{Kind: ir.KindLit, Lit: values.Int32{V: 2}, Pos: line},
	}}
	ifNode := &ir.Node{Kind: ir.KindIf, Children: []*ir.Node{cond, thenBlk, elseBlk}, Pos: line}
	root := &ir.Node{Kind: ir.KindBlock, Children: []*ir.Node{ifNode}}

	code, err := Gen(root, DialectFor(config.V11), "if.vsp")
	if err != nil {
		t.Fatalf("Gen: %v", err)
	}
	if code.StackSize < 1 {
		t.Fatalf("want non-zero stacksize, got %d", code.StackSize)
	}
}

func TestMangleLeavesPublicIdentifiersBare(t *testing.T) {
	info := &ir.VarInfo{Visibility: ir.Public, DefPos: ir.Pos{Line: 3, Column: 4}}
	if got := Mangle("name", info); got != "name" {
		t.Fatalf("want public identifier left bare, got %q", got)
	}
}

func TestMangleRewritesBangAndDollar(t *testing.T) {
	info := &ir.VarInfo{Visibility: ir.Private, DefPos: ir.Pos{Line: 1, Column: 1}}
	got := Mangle("x!", info)
	want := "::x__erg_proc___L1_C1"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestMangleCompilerGeneratedNamesUnchanged(t *testing.T) {
	if got := Mangle("%stash1", nil); got != "%stash1" {
		t.Fatalf("want compiler-generated name left unchanged, got %q", got)
	}
}
