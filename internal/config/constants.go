// Package config holds compile-time options recognized by this module (§6.4):
// target dialect selection, standard-library suppression, input mode, and
// debug assertions, plus a YAML-backed project config file reader.
//
// Grounded on internal/config/constants.go (package-level
// Version/IsTestMode vars, small string-constant helpers) and
// internal/ext/config.go (gopkg.in/yaml.v3-backed project file parsing, see
// project.go in this package).
package config

// Version is this module's version. Set at build time via -ldflags, same
// convention.
var Version = "0.1.0"

const SourceFileExt = ".vsp"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".vsp", ".vesper"}

// TrimSourceExt removes any recognized source extension from a filename.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if path ends with any recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsTestMode indicates the program is running under `go test`. Set once at
// startup; consulted by internal/types.KVar.String() to normalize
// auto-generated kind-variable names in test/LSP output.
var IsTestMode = false

// IsLSPMode indicates the program is running as a language-server backend.
var IsLSPMode = false

// Debug gates CodeGen's extra stack-discipline assertions (spec.md §4.F.1's
// init_stack_len check), set from Config.Debug by the driver at startup —
// same debug-gated-invariant convention as not_bug_test.go.
var Debug = false

// TargetVersion selects which of the four destination-VM dialects (§6.2)
// CodeGen emits.
type TargetVersion int

const (
	// VUnknown means "query the VM at startup" (§6.4 default). The driver's
	// external VM collaborator resolves this before CodeGen starts; it is
	// never passed into a CodeGenUnit directly.
	VUnknown TargetVersion = iota
	V7
	V9
	V10
	V11
)

func (v TargetVersion) String() string {
	switch v {
	case V7:
		return "v7"
	case V9:
		return "v9"
	case V10:
		return "v10"
	case V11:
		return "v11"
	default:
		return "unknown"
	}
}

// DetectTargetVersion resolves VUnknown to a concrete dialect. Querying the
// live destination VM is an external collaborator's responsibility (§1);
// this stub queries nothing and always returns the newest dialect, V11, in
// test mode and otherwise.
func DetectTargetVersion() TargetVersion {
	return V11
}

// InputMode distinguishes compiling a file from a REPL session (§6.4).
// codegen.Gen takes no input mode, so a REPL unit compiles exactly like a
// file: no print-expression instruction is emitted for its top-level
// expression.
type InputMode int

const (
	File InputMode = iota
	REPL
)

// Built-in trait and method names (§4.E PY-name aliases for BuiltinRegistry).
const (
	IterTraitName  = "Iter"
	IterMethodName = "iter"
	EqTraitName    = "Eq"
	OrdTraitName   = "Ord"
	HashTraitName  = "Hash"
)

// Built-in function names.
const (
	PrintFuncName   = "print"
	WriteFuncName   = "write"
	PanicFuncName   = "panic"
	LenFuncName     = "len"
	TypeOfFuncName  = "typeOf"
	DefaultFuncName = "default"
)

// Built-in type names.
const (
	ArrayTypeName  = "Array"
	DictTypeName   = "Dict"
	SetTypeName    = "Set"
	OptionTypeName = "Option"
	ResultTypeName = "Result"
	SomeCtorName   = "Some"
	NoneCtorName   = "None"
	OkCtorName     = "Ok"
	ErrCtorName    = "Err"
)
