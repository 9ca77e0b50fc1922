// Package driver sequences one or more compilation units through CodeGen,
// accumulates diagnostics across the whole run, and renders the end-of-compile
// report (spec.md §7's "User-visible behavior": "errors accumulate across a
// compile; the driver surfaces them in source-order at end of compile; fatal
// bugs write a formatted dump to stderr and exit the process with a non-zero
// status").
//
// Grounded on cmd/funxy/main.go (the pipeline.New(...).Run
// sequencing, the top-level recover-and-report defer, the
// len(finalContext.Errors) > 0 / os.Exit(1) convention) and
// internal/pipeline/pipeline.go ("Continue on errors to collect diagnostics
// from all stages" — carried here as "continue to the next unit on error").
package driver

import (
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/vesperlang/vesperc/internal/codegen"
	"github.com/vesperlang/vesperc/internal/compteval"
	"github.com/vesperlang/vesperc/internal/config"
	"github.com/vesperlang/vesperc/internal/ir"
	"github.com/vesperlang/vesperc/internal/values"
)

// Unit is one source file's already-resolved IR tree (name resolution and
// parsing are an external collaborator's responsibility — spec.md §1/§6.3).
type Unit struct {
	Filename string
	Root     *ir.Node
}

// Result is one unit's outcome: either a completed Code object, or the
// diagnostics that prevented one. Both may be non-empty simultaneously is
// not modeled here — CodeGen either finishes a unit or aborts it entirely, so
// Code is nil whenever Diagnostics is non-empty.
type Result struct {
	Unit        Unit
	Code        *values.Code
	Diagnostics compteval.Errors
}

// Driver runs a sequence of units against one resolved target dialect,
// accumulating diagnostics across the whole run (spec.md §5: "a compilation
// driver may run multiple units sequentially"). Not safe for concurrent use
// from multiple goroutines — the core this wraps is single-threaded (§5).
type Driver struct {
	Dialect *codegen.Dialect
	RunID   string
	Color   bool
}

// New resolves a Driver from project configuration: the target dialect
// (falling back to config.DetectTargetVersion's query-the-VM stub when
// unset), a fresh per-run correlation id, and whether stderr is a real
// terminal (gates ANSI coloring of the diagnostic listing and the
// CompilerBug dump — matches builtins_term.go NO_COLOR +
// isatty.IsTerminal gate, reused here for the driver's own output instead of
// a runtime `term` builtin).
func New(cfg *config.Config) *Driver {
	config.Debug = cfg.Debug
	v := cfg.ResolvedTargetVersion()
	if v == config.VUnknown {
		v = config.DetectTargetVersion()
	}
	return &Driver{
		Dialect: codegen.DialectFor(v),
		RunID:   uuid.New().String(),
		Color:   colorEnabled(),
	}
}

// Run compiles every unit in order, continuing past a unit that fails so
// diagnostics from later units are still collected in the same report
// (internal/pipeline.Run's "continue on errors" discipline, generalized
// across whole units rather than pipeline stages). A CodeGen-internal panic
// (a stack-discipline assertion, an unresolved name — a compiler bug, never
// a user-facing condition) is recovered per-unit and reported as a
// CompilerBug diagnostic rather than crashing the whole run.
func (d *Driver) Run(units []Unit) []*Result {
	results := make([]*Result, 0, len(units))
	for _, u := range units {
		results = append(results, d.runOne(u))
	}
	return results
}

func (d *Driver) runOne(u Unit) (res *Result) {
	res = &Result{Unit: u}
	defer func() {
		if r := recover(); r != nil {
			res.Code = nil
			res.Diagnostics = append(res.Diagnostics, &compteval.Diagnostic{
				Kind:    compteval.CompilerBug,
				Message: fmt.Sprintf("%v", r),
			})
		}
	}()
	code, err := codegen.Gen(u.Root, d.Dialect, u.Filename)
	if err != nil {
		res.Diagnostics = append(res.Diagnostics, &compteval.Diagnostic{
			Kind:    compteval.CompilerBug,
			Message: err.Error(),
		})
		return res
	}
	res.Code = code
	return res
}

// Report sorts every result's diagnostics in source order and writes the
// end-of-compile listing to w (spec.md §7: "the driver surfaces them in
// source-order at end of compile"). It returns true if any unit produced a
// diagnostic, matching len(finalContext.Errors) > 0 check.
func (d *Driver) Report(w *os.File, results []*Result) bool {
	any := false
	for _, res := range results {
		if len(res.Diagnostics) == 0 {
			continue
		}
		any = true
		sorted := append(compteval.Errors(nil), res.Diagnostics...)
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Line != sorted[j].Line {
				return sorted[i].Line < sorted[j].Line
			}
			return sorted[i].Column < sorted[j].Column
		})
		for _, diag := range sorted {
			if diag.Kind == compteval.CompilerBug {
				DumpBug(w, d.RunID, res.Unit.Filename, diag, d.Color)
				continue
			}
			fmt.Fprintf(w, "%s: %s\n", res.Unit.Filename, formatDiagnostic(diag, d.Color))
		}
	}
	return any
}

func formatDiagnostic(d *compteval.Diagnostic, color bool) string {
	loc := fmt.Sprintf("%d:%d", d.Line, d.Column)
	if !color {
		return fmt.Sprintf("%s: %s: %s", loc, d.Kind, d.Message)
	}
	return fmt.Sprintf("\x1b[2m%s\x1b[0m \x1b[31m%s\x1b[0m: %s", loc, d.Kind, d.Message)
}
