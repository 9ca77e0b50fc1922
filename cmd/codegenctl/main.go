// Command codegenctl is the client-side counterpart to vesperc's
// introspection server: it dials a running Introspect service and issues
// GetCode/ListCode RPCs against dynamic messages, without ever generating a
// _grpc.pb.go stub — the same dynamic-invoke style as 's
// grpcInvoke (internal/evaluator/builtins_grpc.go), aimed here at this
// module's own CodeObject schema instead of a user-supplied .proto.
package main

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/vesperlang/vesperc/internal/introspect"
)

func main() {
	args := os.Args[1:]
	if len(args) < 2 {
		usage()
		os.Exit(1)
	}
	addr, cmd := args[0], args[1]

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "codegenctl: dialing %s: %v\n", addr, err)
		os.Exit(1)
	}
	defer conn.Close()

	ctx := context.Background()
	switch cmd {
	case "list":
		if err := listCode(ctx, conn); err != nil {
			fmt.Fprintf(os.Stderr, "codegenctl: %v\n", err)
			os.Exit(1)
		}
	case "get":
		if len(args) < 3 {
			usage()
			os.Exit(1)
		}
		if err := getCode(ctx, conn, args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "codegenctl: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: codegenctl <addr> list")
	fmt.Fprintln(os.Stderr, "       codegenctl <addr> get <name>")
}

func listCode(ctx context.Context, conn *grpc.ClientConn) error {
	req, err := introspect.NewEmptyMessage()
	if err != nil {
		return err
	}
	resp, err := introspect.NewCodeList(nil)
	if err != nil {
		return err
	}
	if err := conn.Invoke(ctx, "/vesperc.introspect.Introspect/ListCode", req, resp); err != nil {
		return fmt.Errorf("ListCode RPC: %w", err)
	}
	names, err := introspect.CodeListNames(resp)
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}

func getCode(ctx context.Context, conn *grpc.ClientConn, name string) error {
	req, err := introspect.NewCodeRequest(name)
	if err != nil {
		return err
	}
	resp, err := introspect.NewEmptyCodeObject()
	if err != nil {
		return err
	}
	if err := conn.Invoke(ctx, "/vesperc.introspect.Introspect/GetCode", req, resp); err != nil {
		return fmt.Errorf("GetCode RPC: %w", err)
	}
	fmt.Println(resp.String())
	return nil
}
