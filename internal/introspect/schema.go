// Package introspect exports compiled CodeObjects over a debug-only gRPC
// service (SPEC_FULL.md §2). The destination VM's four dialects populate
// different subsets of a code object's fields (V11's fused BinaryOp carries
// no per-operator opcode list the way V7/V9/V10 do), so rather than hand
// writing four `.proto` messages this package builds ONE schema at runtime
// via github.com/jhump/protoreflect/desc/protoparse and relies on dynamic
// per-message field presence (unset fields simply aren't serialized) to
// represent the difference — the same dynamic-descriptor approach the
// internal/evaluator/builtins_grpc.go uses to decode protobuf
// payloads it has never seen a generated Go struct for.
//
// This package performs no VM execution: it serves static metadata
// (argcount, stacksize, names, varnames, freevars, cellvars, lnotab; the
// constant pool is not exported) about already-compiled code objects, matching spec.md's
// Non-goal that runtime execution is out of scope.
package introspect

import (
	"fmt"
	"sync"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/jhump/protoreflect/dynamic"
)

// newMessage is a thin wrapper kept alongside the schema helpers so callers
// never need to import the dynamic package just to construct an empty
// message by descriptor.
func newMessage(md *desc.MessageDescriptor) *dynamic.Message {
	return dynamic.NewMessage(md)
}

// schemaSource is the single schema this package ever parses. CodeObject's
// field set is deliberately a superset of every dialect's emitted code
// object; its one dialect-specific field, fused_binary_ops, is true only
// for V11 and otherwise stays at its unset default.
const schemaSource = `
syntax = "proto3";
package vesperc.introspect;

message CodeObject {
  int32 arg_count = 1;
  int32 pos_only_arg_count = 2;
  int32 kw_only_arg_count = 3;
  int32 stack_size = 4;
  uint32 flags = 5;
  bytes code = 6;
  repeated string names = 7;
  repeated string varnames = 8;
  repeated string freevars = 9;
  repeated string cellvars = 10;
  string filename = 11;
  string name = 12;
  int32 first_line_no = 13;
  bytes line_table = 14;
  string dialect = 15;
  // fused_binary_ops is set only for dialects whose binary operators share a
  // single opcode plus subcode byte (V11) rather than one opcode per
  // operator (V7/V9/V10).
  bool fused_binary_ops = 16;
}

message CodeRequest {
  string name = 1;
}

message Empty {}

message CodeList {
  repeated string names = 1;
}

service Introspect {
  // GetCode looks up one previously registered code object by name.
  rpc GetCode(CodeRequest) returns (CodeObject);
  // ListCode enumerates every code object name currently registered.
  rpc ListCode(Empty) returns (CodeList);
}
`

var (
	schemaOnce sync.Once
	schemaFile *desc.FileDescriptor
	schemaErr  error
)

// Schema parses schemaSource exactly once and caches the resulting file
// descriptor — grounded on protoRegistry pattern
// (builtins_grpc.go), simplified from a dynamic load-many-files registry to
// this package's single fixed schema.
func Schema() (*desc.FileDescriptor, error) {
	schemaOnce.Do(func() {
		parser := protoparse.Parser{
			Accessor: protoparse.FileContentsFromMap(map[string]string{
				"introspect.proto": schemaSource,
			}),
		}
		fds, err := parser.ParseFiles("introspect.proto")
		if err != nil {
			schemaErr = fmt.Errorf("introspect: parsing embedded schema: %w", err)
			return
		}
		schemaFile = fds[0]
	})
	return schemaFile, schemaErr
}

// messageDescriptor finds one of Schema()'s top-level messages by its short
// name (e.g. "CodeObject").
func messageDescriptor(name string) (*desc.MessageDescriptor, error) {
	fd, err := Schema()
	if err != nil {
		return nil, err
	}
	md := fd.FindMessage("vesperc.introspect." + name)
	if md == nil {
		return nil, fmt.Errorf("introspect: message %q not found in schema", name)
	}
	return md, nil
}

// serviceDescriptor resolves the Introspect service descriptor.
func serviceDescriptor() (*desc.ServiceDescriptor, error) {
	fd, err := Schema()
	if err != nil {
		return nil, err
	}
	sd := fd.FindService("vesperc.introspect.Introspect")
	if sd == nil {
		return nil, fmt.Errorf("introspect: service Introspect not found in schema")
	}
	return sd, nil
}
