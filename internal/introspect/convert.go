package introspect

import (
	"fmt"

	"github.com/jhump/protoreflect/dynamic"

	"github.com/vesperlang/vesperc/internal/codegen"
	"github.com/vesperlang/vesperc/internal/values"
)

// ToDynamicMessage builds a CodeObject dynamic message from a compiled code
// object, given the dialect it was compiled against (for the dialect-name
// and fused-binary-ops presence fields — §4.F.4's per-dialect emission
// shape is otherwise invisible once lowered into bytes). Field population
// mirrors objectToDynamicMessage direction (builtins_grpc.go)
// but in reverse: there, a Funxy runtime Object becomes a proto message for
// an outgoing gRPC response; here, an already-compiled Code becomes one.
func ToDynamicMessage(code *values.Code, dialect *codegen.Dialect) (*dynamic.Message, error) {
	md, err := messageDescriptor("CodeObject")
	if err != nil {
		return nil, err
	}
	msg := dynamic.NewMessage(md)

	scalars := map[string]interface{}{
		"arg_count":           int32(code.ArgCount),
		"pos_only_arg_count":  int32(code.PosOnlyArgCount),
		"kw_only_arg_count":   int32(code.KwOnlyArgCount),
		"stack_size":          int32(code.StackSize),
		"flags":               uint32(code.Flags),
		"code":                code.Bytes,
		"filename":            code.Filename,
		"name":                code.Name,
		"first_line_no":       int32(code.FirstLineNo),
		"line_table":          code.LineTable,
		"dialect":             dialect.Version.String(),
		"fused_binary_ops":    dialect.FusedBinaryOp,
	}
	for field, v := range scalars {
		if err := msg.TrySetFieldByName(field, v); err != nil {
			return nil, fmt.Errorf("introspect: setting %s: %w", field, err)
		}
	}

	repeated := map[string][]string{
		"names":    code.Names,
		"varnames": code.VarNames,
		"freevars": code.FreeVars,
		"cellvars": code.CellVars,
	}
	for field, values := range repeated {
		for _, v := range values {
			if err := msg.TryAddRepeatedFieldByName(field, v); err != nil {
				return nil, fmt.Errorf("introspect: appending %s: %w", field, err)
			}
		}
	}
	return msg, nil
}

// NewCodeList builds an Empty-response CodeList dynamic message enumerating
// names.
func NewCodeList(names []string) (*dynamic.Message, error) {
	md, err := messageDescriptor("CodeList")
	if err != nil {
		return nil, err
	}
	msg := dynamic.NewMessage(md)
	for _, n := range names {
		if err := msg.TryAddRepeatedFieldByName("names", n); err != nil {
			return nil, fmt.Errorf("introspect: appending names: %w", err)
		}
	}
	return msg, nil
}

// RequestedName extracts the "name" field out of an incoming CodeRequest
// dynamic message.
func RequestedName(req *dynamic.Message) (string, error) {
	v, err := req.TryGetFieldByName("name")
	if err != nil {
		return "", fmt.Errorf("introspect: reading request name: %w", err)
	}
	name, _ := v.(string)
	return name, nil
}

// CodeListNames reads the "names" field back out of a CodeList response
// message, the client-side mirror of NewCodeList.
func CodeListNames(list *dynamic.Message) ([]string, error) {
	raw, err := list.TryGetFieldByName("names")
	if err != nil {
		return nil, fmt.Errorf("introspect: reading names: %w", err)
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, nil
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			names = append(names, s)
		}
	}
	return names, nil
}

// NewEmptyMessage builds an empty request message for RPCs taking no
// arguments (ListCode).
func NewEmptyMessage() (*dynamic.Message, error) {
	md, err := messageDescriptor("Empty")
	if err != nil {
		return nil, err
	}
	return newMessage(md), nil
}

// NewCodeRequest builds a CodeRequest message for the given lookup name.
func NewCodeRequest(name string) (*dynamic.Message, error) {
	md, err := messageDescriptor("CodeRequest")
	if err != nil {
		return nil, err
	}
	msg := newMessage(md)
	if err := msg.TrySetFieldByName("name", name); err != nil {
		return nil, fmt.Errorf("introspect: setting request name: %w", err)
	}
	return msg, nil
}

// NewEmptyCodeObject builds a zero-valued CodeObject message, suitable as
// the response destination for a client-side conn.Invoke call.
func NewEmptyCodeObject() (*dynamic.Message, error) {
	md, err := messageDescriptor("CodeObject")
	if err != nil {
		return nil, err
	}
	return newMessage(md), nil
}
