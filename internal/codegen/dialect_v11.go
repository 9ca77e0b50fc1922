package codegen

import "github.com/vesperlang/vesperc/internal/config"

// V11 fuses every fixed binary opcode into a single BinaryOp whose argument
// byte is the operator's subcode (emitBinary writes no padding bytes after
// it, and CompareOp/CallFunction are likewise emitted without padding),
// closes loops with JumpBackward instead of JumpAbsolute, and replaces
// SetupWith with BeforeWith + exception-table cleanup (§4.F.4).
const (
	v11LoadConst byte = iota
	v11LoadFast
	v11StoreFast
	v11LoadGlobal
	v11StoreGlobal
	v11LoadDeref
	v11StoreDeref
	v11LoadClosure
	v11LoadName
	v11StoreName
	v11LoadAttr
	v11LoadMethod
	v11CallMethod
	v11StoreAttr
	v11BinarySubscr
	v11StoreSubscr
	v11UnaryNegative
	v11UnaryNot
	v11UnaryInvert
	v11BinaryOp
	v11CompareOp
	v11IsOp
	v11ContainsOp
	v11JumpForward
	v11JumpBackward
	v11PopJumpIfFalse
	v11PopJumpIfTrue
	v11JumpIfFalseOrPop
	v11JumpIfTrueOrPop
	v11GetIter
	v11ForIter
	v11BeforeWith
	v11PopBlock
	v11CallFunction
	v11MakeFunction
	v11ReturnValue
	v11PopTop
	v11DupTop
	v11RotTwo
	v11BuildTuple
	v11BuildList
	v11BuildMap
	v11BuildRecord
	v11LoadBuildClass
	v11CallFunctionEx
	v11ExtendedArg
	v11RaiseVarargs
	v11MatchCheckTag
)

// V11's BinarySubcode argument byte, carried after OpBinaryOp. Order is
// arbitrary (unlike the comparison sub-codes, original_source does not pin
// this one) but fixed once and for all at this table.
const (
	binSubAdd byte = iota
	binSubSub
	binSubMul
	binSubDiv
	binSubMod
	binSubPow
	binSubAnd
	binSubOr
	binSubXor
	binSubLshift
	binSubRshift
)

var dialectV11 = &Dialect{
	Version:       config.V11,
	With:          WithExceptionTable,
	LoopOp:        OpJumpBackward,
	FusedBinaryOp: true,
	BinarySubcode: map[Op]byte{
		OpBinaryAdd:    binSubAdd,
		OpBinarySub:    binSubSub,
		OpBinaryMul:    binSubMul,
		OpBinaryDiv:    binSubDiv,
		OpBinaryMod:    binSubMod,
		OpBinaryPow:    binSubPow,
		OpBinaryAnd:    binSubAnd,
		OpBinaryOr:     binSubOr,
		OpBinaryXor:    binSubXor,
		OpBinaryLshift: binSubLshift,
		OpBinaryRshift: binSubRshift,
	},
	Ops: map[Op]byte{
		OpLoadConst:        v11LoadConst,
		OpLoadFast:         v11LoadFast,
		OpStoreFast:        v11StoreFast,
		OpLoadGlobal:       v11LoadGlobal,
		OpStoreGlobal:      v11StoreGlobal,
		OpLoadDeref:        v11LoadDeref,
		OpStoreDeref:       v11StoreDeref,
		OpLoadClosure:      v11LoadClosure,
		OpLoadName:         v11LoadName,
		OpStoreName:        v11StoreName,
		OpLoadAttr:         v11LoadAttr,
		OpLoadMethod:       v11LoadMethod,
		OpCallMethod:       v11CallMethod,
		OpStoreAttr:        v11StoreAttr,
		OpBinarySubscr:     v11BinarySubscr,
		OpStoreSubscr:      v11StoreSubscr,
		OpUnaryNegative:    v11UnaryNegative,
		OpUnaryNot:         v11UnaryNot,
		OpUnaryInvert:      v11UnaryInvert,
		OpBinaryOp:         v11BinaryOp,
		OpCompareOp:        v11CompareOp,
		OpIsOp:             v11IsOp,
		OpContainsOp:       v11ContainsOp,
		OpJumpForward:      v11JumpForward,
		OpJumpBackward:     v11JumpBackward,
		OpPopJumpIfFalse:   v11PopJumpIfFalse,
		OpPopJumpIfTrue:    v11PopJumpIfTrue,
		OpJumpIfFalseOrPop: v11JumpIfFalseOrPop,
		OpJumpIfTrueOrPop:  v11JumpIfTrueOrPop,
		OpGetIter:          v11GetIter,
		OpForIter:          v11ForIter,
		OpBeforeWith:       v11BeforeWith,
		OpPopBlock:         v11PopBlock,
		OpCallFunction:     v11CallFunction,
		OpMakeFunction:     v11MakeFunction,
		OpReturnValue:      v11ReturnValue,
		OpPopTop:           v11PopTop,
		OpDupTop:           v11DupTop,
		OpRotTwo:           v11RotTwo,
		OpBuildTuple:       v11BuildTuple,
		OpBuildList:        v11BuildList,
		OpBuildMap:         v11BuildMap,
		OpBuildRecord:      v11BuildRecord,
		OpLoadBuildClass:   v11LoadBuildClass,
		OpCallFunctionEx:   v11CallFunctionEx,
		OpExtendedArg:      v11ExtendedArg,
		OpRaiseVarargs:     v11RaiseVarargs,
		OpMatchCheckTag:    v11MatchCheckTag,
	},
}
