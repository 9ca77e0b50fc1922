package compteval

import (
	"testing"

	"github.com/vesperlang/vesperc/internal/ir"
	"github.com/vesperlang/vesperc/internal/types"
	"github.com/vesperlang/vesperc/internal/values"
)

func lit(v values.Value) *ir.Node { return &ir.Node{Kind: ir.KindLit, Lit: v} }

func binOp(op string, l, r *ir.Node) *ir.Node {
	return &ir.Node{Kind: ir.KindBinOp, Op: op, Children: []*ir.Node{l, r}}
}

// TestArithmeticFolding covers spec §8's S1 scenario: `1 + 2 * 3` folds to
// the value 7 via nested BinOp evaluation.
func TestArithmeticFolding(t *testing.T) {
	expr := binOp("+", lit(values.Int32{V: 1}), binOp("*", lit(values.Int32{V: 2}), lit(values.Int32{V: 3})))
	ctx := NewRootContext(nil)
	v, errs := EvalConstExpr(ctx, expr)
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	got, ok := v.(values.Int32)
	if !ok || got.V != 7 {
		t.Fatalf("want Int32(7), got %#v", v)
	}
}

func TestUnboundIdentProducesNoVarDiagnostic(t *testing.T) {
	ctx := NewRootContext(nil)
	_, errs := EvalConstExpr(ctx, &ir.Node{Kind: ir.KindIdent, Name: "missing"})
	if !errs.HasErrors() || errs[0].Kind != NoVar {
		t.Fatalf("want a NoVar diagnostic, got %v", errs)
	}
}

func TestBoundIdentResolvesThroughChildContext(t *testing.T) {
	root := NewRootContext(nil)
	root.Bind("x", values.Int32{V: 41})
	child := root.Child()
	v, errs := EvalConstExpr(child, &ir.Node{Kind: ir.KindIdent, Name: "x"})
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got, ok := v.(values.Int32); !ok || got.V != 41 {
		t.Fatalf("want Int32(41) resolved from parent, got %#v", v)
	}
}

func TestRecordLiteralFieldsSeeEarlierFieldsByName(t *testing.T) {
	// { a = 1, b = a + 1 }
	recordNode := &ir.Node{
		Kind:   ir.KindRecord,
		Params: []string{"a", "b"},
		Children: []*ir.Node{
			lit(values.Int32{V: 1}),
			binOp("+", &ir.Node{Kind: ir.KindIdent, Name: "a"}, lit(values.Int32{V: 1})),
		},
	}
	ctx := NewRootContext(nil)
	v, errs := EvalConstExpr(ctx, recordNode)
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	rec, ok := v.(values.Record)
	if !ok {
		t.Fatalf("want a Record, got %#v", v)
	}
	if b, ok := rec.Fields["b"].(values.Int32); !ok || b.V != 2 {
		t.Fatalf("want field b == 2, got %#v", rec.Fields["b"])
	}
}

func TestTypeMismatchAccumulatesAndReturnsIllegal(t *testing.T) {
	ctx := NewRootContext(nil)
	expr := binOp("+", lit(values.Int32{V: 1}), lit(values.Str{V: "x"}))
	v, errs := EvalConstExpr(ctx, expr)
	if !errs.HasErrors() || errs[0].Kind != TypeMismatch {
		t.Fatalf("want a TypeMismatch diagnostic, got %v", errs)
	}
	if _, ok := v.(values.Illegal); !ok {
		t.Fatalf("want Illegal sentinel on failure, got %#v", v)
	}
}

func TestEvalCallBuiltinConstFn(t *testing.T) {
	double := &values.Subr{
		SubrName: "double",
		SubrKind: values.SubrBuiltinConstFn,
		Builtin: func(args []values.Value) (values.Value, bool) {
			n, ok := args[0].(values.Int32)
			if !ok {
				return values.Illegal{}, false
			}
			return values.Int32{V: n.V * 2}, true
		},
	}
	ctx := NewRootContext(nil)
	v, errs := EvalCall(ctx, double, []values.Value{values.Int32{V: 21}})
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got, ok := v.(values.Int32); !ok || got.V != 42 {
		t.Fatalf("want Int32(42), got %#v", v)
	}
}

// stubRegistry is a minimal Registry/MethodsContext pair for projection tests.
type stubMethodsCtx struct {
	members map[string]values.Value
	trait   types.Type
}

func (m *stubMethodsCtx) Get(name string) (values.Value, bool) { v, ok := m.members[name]; return v, ok }
func (m *stubMethodsCtx) Trait() types.Type                    { return m.trait }

type stubRegistry struct {
	consts map[string]values.Value
	mods   map[string]MethodsContext
}

func (r *stubRegistry) GetConstObj(qualName string) (values.Value, bool) {
	v, ok := r.consts[qualName]
	return v, ok
}
func (r *stubRegistry) GetMod(typeName string) (MethodsContext, bool) {
	m, ok := r.mods[typeName]
	return m, ok
}
func (r *stubRegistry) GetNominalSuperTypeCtxs(t types.Type) []MethodsContext { return nil }

func TestEvalProjResolvesOwnMethodsContext(t *testing.T) {
	reg := &stubRegistry{
		mods: map[string]MethodsContext{
			"Point": &stubMethodsCtx{members: map[string]values.Value{"origin": values.Int32{V: 0}}},
		},
	}
	ctx := NewRootContext(reg)
	pointT := types.Mono{QualName: "Point"}
	var errs Errors
	v, ok := EvalProj(ctx, pointT, "origin", &errs)
	if !ok || errs.HasErrors() {
		t.Fatalf("want successful projection, got ok=%v errs=%v", ok, errs)
	}
	if got, ok := v.(values.Int32); !ok || got.V != 0 {
		t.Fatalf("want Int32(0), got %#v", v)
	}
}

func TestEvalProjNoCandidateProducesDiagnostic(t *testing.T) {
	reg := &stubRegistry{mods: map[string]MethodsContext{}}
	ctx := NewRootContext(reg)
	var errs Errors
	_, ok := EvalProj(ctx, types.Mono{QualName: "Missing"}, "x", &errs)
	if ok || !errs.HasErrors() || errs[0].Kind != NoCandidate {
		t.Fatalf("want a NoCandidate diagnostic, got ok=%v errs=%v", ok, errs)
	}
}
