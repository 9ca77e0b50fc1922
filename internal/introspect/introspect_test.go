package introspect

import (
	"testing"

	"github.com/jhump/protoreflect/dynamic"

	"github.com/vesperlang/vesperc/internal/codegen"
	"github.com/vesperlang/vesperc/internal/config"
	"github.com/vesperlang/vesperc/internal/ir"
	"github.com/vesperlang/vesperc/internal/values"
)

func TestToDynamicMessageRoundTripsCodeFields(t *testing.T) {
	root := &ir.Node{Kind: ir.KindBlock, Children: []*ir.Node{
		{Kind: ir.KindLit, Lit: values.Int32{V: 7}, Pos: ir.Pos{Line: 1, Column: 1}},
	}}
	dialect := codegen.DialectFor(config.V11)
	code, err := codegen.Gen(root, dialect, "intro.vsp")
	if err != nil {
		t.Fatalf("Gen: %v", err)
	}

	msg, err := ToDynamicMessage(code, dialect)
	if err != nil {
		t.Fatalf("ToDynamicMessage: %v", err)
	}
	name, err := msg.TryGetFieldByName("filename")
	if err != nil {
		t.Fatalf("reading filename: %v", err)
	}
	if name != "intro.vsp" {
		t.Fatalf("want filename intro.vsp, got %v", name)
	}
	fused, err := msg.TryGetFieldByName("fused_binary_ops")
	if err != nil {
		t.Fatalf("reading fused_binary_ops: %v", err)
	}
	if fused != true {
		t.Fatalf("want fused_binary_ops true for V11, got %v", fused)
	}
}

func TestServiceGetCodeRoundTripsThroughRegistry(t *testing.T) {
	root := &ir.Node{Kind: ir.KindBlock}
	dialect := codegen.DialectFor(config.V10)
	code, err := codegen.Gen(root, dialect, "svc.vsp")
	if err != nil {
		t.Fatalf("Gen: %v", err)
	}

	svc := NewService()
	svc.Register("svc.vsp", code, dialect)

	reqMD, err := messageDescriptor("CodeRequest")
	if err != nil {
		t.Fatalf("messageDescriptor: %v", err)
	}
	req := newMessage(reqMD)
	if err := req.TrySetFieldByName("name", "svc.vsp"); err != nil {
		t.Fatalf("setting request name: %v", err)
	}

	wire, err := req.Marshal()
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}

	out, err := svc.handleGetCode(func(v interface{}) error {
		return v.(*dynamic.Message).Unmarshal(wire)
	})
	if err != nil {
		t.Fatalf("handleGetCode: %v", err)
	}
	if out == nil {
		t.Fatal("want a non-nil CodeObject message")
	}
}
