package driver

import (
	"testing"

	"github.com/vesperlang/vesperc/internal/compteval"
	"github.com/vesperlang/vesperc/internal/config"
	"github.com/vesperlang/vesperc/internal/ir"
	"github.com/vesperlang/vesperc/internal/values"
)

func TestRunCompilesEachUnitIndependently(t *testing.T) {
	d := New(&config.Config{TargetVersion: "v11"})
	line := ir.Pos{Line: 1, Column: 1}
	root := &ir.Node{Kind: ir.KindBlock, Children: []*ir.Node{
		{Kind: ir.KindLit, Lit: values.Int32{V: 1}, Pos: line},
	}}
	units := []Unit{
		{Filename: "a.vsp", Root: root},
		{Filename: "b.vsp", Root: root},
	}
	results := d.Run(units)
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Code == nil {
			t.Fatalf("unit %s: want compiled code, got diagnostics %v", r.Unit.Filename, r.Diagnostics)
		}
	}
}

func TestRunRecoversCodeGenPanicAsCompilerBug(t *testing.T) {
	d := New(&config.Config{TargetVersion: "v11"})
	// An unrecognized unary operator triggers CompileExpr's explicit
	// "unknown unary operator" panic — an internal-bug condition, never a
	// user-facing one, exercising the recover path here.
	badRoot := &ir.Node{Kind: ir.KindBlock, Children: []*ir.Node{
		{Kind: ir.KindUnaryOp, Op: "?", Pos: ir.Pos{Line: 2, Column: 3}, Children: []*ir.Node{
			{Kind: ir.KindLit, Lit: values.Int32{V: 1}, Pos: ir.Pos{Line: 2, Column: 3}},
		}},
	}}
	results := d.Run([]Unit{{Filename: "bad.vsp", Root: badRoot}})
	if len(results) != 1 {
		t.Fatalf("want 1 result, got %d", len(results))
	}
	res := results[0]
	if res.Code != nil {
		t.Fatal("want no code object for a unit that panicked")
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Kind != compteval.CompilerBug {
		t.Fatalf("want one CompilerBug diagnostic, got %v", res.Diagnostics)
	}
}
