package introspect

import (
	"context"
	"fmt"
	"net"
	"sort"
	"sync"

	"google.golang.org/grpc"

	"github.com/vesperlang/vesperc/internal/codegen"
	"github.com/vesperlang/vesperc/internal/values"
)

// entry pairs a compiled code object with the dialect it was built for, so
// ToDynamicMessage can populate the dialect-name and fused-binary-ops
// presence fields on lookup.
type entry struct {
	code    *values.Code
	dialect *codegen.Dialect
}

// Service is a debug-only gRPC server exposing every code object a driver
// run has compiled, keyed by name. Safe for concurrent registration and
// lookup (a driver may register units from CodeGen while the server answers
// codegenctl's queries for previously-registered ones).
//
// Grounded on GrpcServerObject/builtinGrpcRegister
// (builtins_grpc.go): a *grpc.Server plus a hand-built grpc.ServiceDesc
// whose MethodDesc.Handler decodes into a dynamic.Message and returns one,
// the same shape as FunxyGrpcHandler.HandleUnary.
type Service struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewService constructs an empty registry.
func NewService() *Service {
	return &Service{entries: make(map[string]entry)}
}

// Register makes code available for introspection under name, associated
// with the dialect it was compiled against.
func (s *Service) Register(name string, code *values.Code, dialect *codegen.Dialect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[name] = entry{code: code, dialect: dialect}
}

func (s *Service) lookup(name string) (entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[name]
	return e, ok
}

func (s *Service) names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.entries))
	for n := range s.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// grpcDesc builds the generic grpc.ServiceDesc backing this service's two
// RPCs, resolving method input/output types from Schema() rather than
// generated Go structs.
func (s *Service) grpcDesc() (*grpc.ServiceDesc, error) {
	sd, err := serviceDescriptor()
	if err != nil {
		return nil, err
	}

	desc := &grpc.ServiceDesc{
		ServiceName: sd.GetFullyQualifiedName(),
		HandlerType: (*interface{})(nil),
		Metadata:    sd.GetFile().GetName(),
	}

	desc.Methods = append(desc.Methods, grpc.MethodDesc{
		MethodName: "GetCode",
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
			return srv.(*Service).handleGetCode(dec)
		},
	}, grpc.MethodDesc{
		MethodName: "ListCode",
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
			return srv.(*Service).handleListCode(dec)
		},
	})
	return desc, nil
}

func (s *Service) handleGetCode(dec func(interface{}) error) (interface{}, error) {
	reqMD, err := messageDescriptor("CodeRequest")
	if err != nil {
		return nil, err
	}
	req := newMessage(reqMD)
	if err := dec(req); err != nil {
		return nil, err
	}
	name, err := RequestedName(req)
	if err != nil {
		return nil, err
	}
	e, ok := s.lookup(name)
	if !ok {
		return nil, fmt.Errorf("introspect: no code object registered as %q", name)
	}
	return ToDynamicMessage(e.code, e.dialect)
}

func (s *Service) handleListCode(dec func(interface{}) error) (interface{}, error) {
	emptyMD, err := messageDescriptor("Empty")
	if err != nil {
		return nil, err
	}
	req := newMessage(emptyMD)
	if err := dec(req); err != nil {
		return nil, err
	}
	return NewCodeList(s.names())
}

// Serve blocks, accepting connections on addr until the listener or server
// errors — same direct net.Listen + Server.Serve pairing as 's
// builtinGrpcServe.
func (s *Service) Serve(addr string) error {
	desc, err := s.grpcDesc()
	if err != nil {
		return err
	}
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("introspect: listening on %s: %w", addr, err)
	}
	server := grpc.NewServer()
	server.RegisterService(desc, s)
	return server.Serve(lis)
}
