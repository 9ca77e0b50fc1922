package driver

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/vesperlang/vesperc/internal/compteval"
)

// colorEnabled mirrors builtins_term.go detectColorLevel gate
// (NO_COLOR convention, then isatty.IsTerminal/IsCygwinTerminal) but decides
// a single on/off switch for the driver's own stderr output rather than a
// 0/1/256/16777216 color-depth ladder — the diagnostic listing never needs
// more than one level of emphasis.
func colorEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// DumpBug writes a formatted CompilerBug block to w and stamps it with the
// driver's run correlation id, so output from multiple sequential units
// (spec.md §5) can be tied back to one process invocation in captured logs.
// Grounded on cmd/funxy/main.go top-level recover: "Internal
// error: %v" / "This is a bug. Please report it.", extended with a
// timestamp and run id since this module's driver may process many units
// per invocation where CLI processes exactly one program.
func DumpBug(w *os.File, runID, filename string, d *compteval.Diagnostic, color bool) {
	ts := time.Now().UTC().Format(time.RFC3339)
	header := fmt.Sprintf("compiler bug [run=%s] at %s", runID, ts)
	if color {
		header = "\x1b[1;31m" + header + "\x1b[0m"
	}
	fmt.Fprintln(w, header)
	fmt.Fprintf(w, "  file: %s\n", filename)
	fmt.Fprintf(w, "  location: %d:%d\n", d.Line, d.Column)
	fmt.Fprintf(w, "  %s\n", d.Message)
	fmt.Fprintln(w, "This is a compiler bug. Please report it.")
}
