package values

import "fmt"

// CodeFlag is a bit in a CodeObject's flags bitset (spec.md §3.6).
type CodeFlag uint32

const (
	FlagNewLocals CodeFlag = 1 << iota
	FlagNested
	FlagVarArgs
	FlagVarKeywords
)

// Code is the compile-time Value wrapper around a compiled CodeObject
// (spec.md §3.6). CodeGen builds one per function/class body; the Evaluator
// treats it as an opaque, hashable, comparable-by-identity-of-contents
// constant-pool entry (e.g. for nested function literals referenced from an
// enclosing constant pool).
type Code struct {
	ArgCount         int
	PosOnlyArgCount  int
	KwOnlyArgCount   int
	StackSize        int
	Flags            CodeFlag
	Bytes            []byte
	Consts           []Value
	Names            []string
	VarNames         []string
	FreeVars         []string
	CellVars         []string
	Filename         string
	Name             string
	FirstLineNo      int
	LineTable        []byte // run-length-encoded (sd, ld) pairs, see §6.1
}

func (c *Code) Kind() Kind { return KindCode }

func (c *Code) String() string {
	return fmt.Sprintf("<code %s at %s:%d>", c.Name, c.Filename, c.FirstLineNo)
}

// Hash folds the name, bytecode and constant pool; two code objects with the
// same name, byte-identical bodies and structurally-equal constants hash
// equal.
func (c *Code) Hash() uint64 {
	h := fnv64(c.Name) ^ fnv64(string(c.Bytes))
	for _, v := range c.Consts {
		h = (h ^ v.Hash()) * 1099511628211
	}
	return h
}

func (c *Code) Equals(o Value) bool {
	oc, ok := o.(*Code)
	if !ok {
		return false
	}
	if c.Name != oc.Name || c.Filename != oc.Filename || string(c.Bytes) != string(oc.Bytes) {
		return false
	}
	if len(c.Consts) != len(oc.Consts) {
		return false
	}
	for i := range c.Consts {
		if !c.Consts[i].Equals(oc.Consts[i]) {
			return false
		}
	}
	return true
}

// SubrKind distinguishes the three subroutine-descriptor shapes spec.md §3.6
// lists alongside CodeObject.
type SubrKind int

const (
	SubrUserConstFn SubrKind = iota
	SubrBuiltinConstFn
	SubrGeneratorConstFn
)

// Subr is a compile-time subroutine descriptor: either a user-written
// const-evaluable function (backed by a Code body), a built-in const-fn
// (backed by a Go closure registered by BuiltinRegistry), or a generator
// const-fn (a Code body CodeGen marks to be driven incrementally by the
// Evaluator rather than run to completion in one call).
type Subr struct {
	SubrName string
	SubrKind SubrKind
	Body     *Code                       // nil for SubrBuiltinConstFn
	Builtin  func(args []Value) (Value, bool) // non-nil only for SubrBuiltinConstFn
}

func (s *Subr) Kind() Kind { return KindSubr }

func (s *Subr) String() string { return fmt.Sprintf("<subr %s>", s.SubrName) }

func (s *Subr) Hash() uint64 { return fnv64(s.SubrName) }

// Equals compares subroutine descriptors by name and kind, and by Code body
// when both carry one (a descriptor with a body never equals one without).
// The Builtin closure is never compared, since a Go closure cannot be
// compared structurally: two registrations of "the same" built-in are
// considered the same Value.
func (s *Subr) Equals(o Value) bool {
	os, ok := o.(*Subr)
	if !ok {
		return false
	}
	if s.SubrKind != os.SubrKind || s.SubrName != os.SubrName {
		return false
	}
	if s.Body != nil && os.Body != nil {
		return s.Body.Equals(os.Body)
	}
	return s.Body == nil && os.Body == nil
}
