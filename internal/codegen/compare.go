package codegen

// Comparison sub-codes, shared by every dialect's CompareOp argument byte.
// This exact ordering is pinned by original_source/codegen.rs (~L1916-2082)
// and carried verbatim rather than invented (see SPEC_FULL.md §5).
const (
	cmpLess byte = iota
	cmpLessEq
	cmpEq
	cmpNotEq
	cmpGreater
	cmpGreaterEq
)

// Identity/membership tests get their own small integer codes, separate
// from the CompareOp family, in every dialect.
const (
	codeIsOp byte = iota
	codeIsNotOp
	codeInOp
	codeNotInOp
)

var compareSubcode = map[string]byte{
	"<":  cmpLess,
	"<=": cmpLessEq,
	"==": cmpEq,
	"!=": cmpNotEq,
	">":  cmpGreater,
	">=": cmpGreaterEq,
}

var identitySubcode = map[string]byte{
	"is":     codeIsOp,
	"is not": codeIsNotOp,
	"in":     codeInOp,
	"not in": codeNotInOp,
}
