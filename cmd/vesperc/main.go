// Command vesperc is the compiler driver CLI: it resolves project
// configuration, compiles one or more source units through TYCORE+CODEGEN,
// and reports diagnostics in source order (spec.md §7).
//
// Flag parsing uses a manual os.Args scan rather than the standard
// library's flag package or a third-party CLI library, matching how the
// rest of this codebase handles its own argument parsing.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vesperlang/vesperc/internal/config"
	"github.com/vesperlang/vesperc/internal/driver"
	"github.com/vesperlang/vesperc/internal/introspect"
	"github.com/vesperlang/vesperc/internal/ir"
)

// parseSource is the integration seam spec.md §1/§6.3 describes: lexing,
// parsing, and name resolution belong to an external frontend this module
// never implements. A real deployment links a frontend that sets this
// before main runs (e.g. via a build-tag-guarded init in a sibling
// package); left unset, vesperc reports the gap explicitly rather than
// pretending to parse Vesper source itself.
var parseSource func(filename string) (*ir.Node, error)

func main() {
	debugMode := false
	var configPath, protoAddr, targetFlag string
	var files []string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-debug", "--debug":
			debugMode = true
		case "-config", "--config":
			i++
			if i < len(args) {
				configPath = args[i]
			}
		case "-target", "--target":
			i++
			if i < len(args) {
				targetFlag = args[i]
			}
		case "-proto-export-addr", "--proto-export-addr":
			i++
			if i < len(args) {
				protoAddr = args[i]
			}
		default:
			files = append(files, arg)
		}
	}

	cfg := loadConfig(configPath)
	if debugMode {
		cfg.Debug = true
	}
	if targetFlag != "" {
		cfg.TargetVersion = targetFlag
	}
	if protoAddr != "" {
		cfg.ProtoExportAddr = protoAddr
	}

	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: vesperc [-debug] [-config path] [-target v7|v9|v10|v11] file...")
		os.Exit(1)
	}

	if parseSource == nil {
		fmt.Fprintln(os.Stderr, "vesperc: no frontend registered — link a parser that sets main.parseSource before compiling source files")
		os.Exit(1)
	}

	d := driver.New(cfg)

	units := make([]driver.Unit, 0, len(files))
	for _, f := range files {
		root, err := parseSource(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "vesperc: %s: %v\n", f, err)
			os.Exit(1)
		}
		units = append(units, driver.Unit{Filename: f, Root: root})
	}

	results := d.Run(units)
	hadErrors := d.Report(os.Stderr, results)

	if cfg.ProtoExportAddr != "" {
		svc := introspect.NewService()
		for _, res := range results {
			if res.Code != nil {
				svc.Register(filepath.Base(res.Unit.Filename), res.Code, d.Dialect)
			}
		}
		fmt.Fprintf(os.Stderr, "vesperc: serving introspection on %s\n", cfg.ProtoExportAddr)
		if err := svc.Serve(cfg.ProtoExportAddr); err != nil {
			fmt.Fprintf(os.Stderr, "vesperc: introspection server: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if hadErrors {
		os.Exit(1)
	}
}

func loadConfig(explicitPath string) *config.Config {
	if explicitPath != "" {
		cfg, err := config.LoadProjectConfig(explicitPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "vesperc: %v\n", err)
			os.Exit(1)
		}
		return cfg
	}
	dir, err := os.Getwd()
	if err != nil {
		return &config.Config{}
	}
	found, err := config.FindProjectConfig(dir)
	if err != nil || found == "" {
		return &config.Config{}
	}
	cfg, err := config.LoadProjectConfig(found)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vesperc: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
