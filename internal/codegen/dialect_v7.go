package codegen

import "github.com/vesperlang/vesperc/internal/config"

// V7 opcode byte assignments. Each dialect generation renumbers its opcode
// bytes independently of the others (spec.md §6.2: "fixed tables-of-constants
// ... no decoding"), exactly like internal/vm/opcodes.go
// const-iota block, just one such block per generation instead of one total.
const (
	v7LoadConst byte = iota
	v7LoadFast
	v7StoreFast
	v7LoadGlobal
	v7StoreGlobal
	v7LoadDeref
	v7StoreDeref
	v7LoadClosure
	v7LoadName
	v7StoreName
	v7LoadAttr
	v7LoadMethod
	v7CallMethod
	v7StoreAttr
	v7BinarySubscr
	v7StoreSubscr
	v7UnaryNegative
	v7UnaryNot
	v7UnaryInvert
	v7BinaryAdd
	v7BinarySub
	v7BinaryMul
	v7BinaryDiv
	v7BinaryMod
	v7BinaryPow
	v7BinaryAnd
	v7BinaryOr
	v7BinaryXor
	v7BinaryLshift
	v7BinaryRshift
	v7CompareOp
	v7IsOp
	v7ContainsOp
	v7JumpForward
	v7JumpAbsolute
	v7PopJumpIfFalse
	v7PopJumpIfTrue
	v7JumpIfFalseOrPop
	v7JumpIfTrueOrPop
	v7GetIter
	v7ForIter
	v7SetupWith
	v7PopBlock
	v7CallFunction
	v7MakeFunction
	v7ReturnValue
	v7PopTop
	v7DupTop
	v7RotTwo
	v7BuildTuple
	v7BuildList
	v7BuildMap
	v7BuildRecord
	v7LoadBuildClass
	v7CallFunctionEx
	v7ExtendedArg
	v7RaiseVarargs
	v7MatchCheckTag
)

var dialectV7 = &Dialect{
	Version: config.V7,
	With:    WithCleanupChain,
	LoopOp:  OpJumpAbsolute,
	Ops: map[Op]byte{
		OpLoadConst:        v7LoadConst,
		OpLoadFast:         v7LoadFast,
		OpStoreFast:        v7StoreFast,
		OpLoadGlobal:       v7LoadGlobal,
		OpStoreGlobal:      v7StoreGlobal,
		OpLoadDeref:        v7LoadDeref,
		OpStoreDeref:       v7StoreDeref,
		OpLoadClosure:      v7LoadClosure,
		OpLoadName:         v7LoadName,
		OpStoreName:        v7StoreName,
		OpLoadAttr:         v7LoadAttr,
		OpLoadMethod:       v7LoadMethod,
		OpCallMethod:       v7CallMethod,
		OpStoreAttr:        v7StoreAttr,
		OpBinarySubscr:     v7BinarySubscr,
		OpStoreSubscr:      v7StoreSubscr,
		OpUnaryNegative:    v7UnaryNegative,
		OpUnaryNot:         v7UnaryNot,
		OpUnaryInvert:      v7UnaryInvert,
		OpBinaryAdd:        v7BinaryAdd,
		OpBinarySub:        v7BinarySub,
		OpBinaryMul:        v7BinaryMul,
		OpBinaryDiv:        v7BinaryDiv,
		OpBinaryMod:        v7BinaryMod,
		OpBinaryPow:        v7BinaryPow,
		OpBinaryAnd:        v7BinaryAnd,
		OpBinaryOr:         v7BinaryOr,
		OpBinaryXor:        v7BinaryXor,
		OpBinaryLshift:     v7BinaryLshift,
		OpBinaryRshift:     v7BinaryRshift,
		OpCompareOp:        v7CompareOp,
		OpIsOp:             v7IsOp,
		OpContainsOp:       v7ContainsOp,
		OpJumpForward:      v7JumpForward,
		OpJumpAbsolute:     v7JumpAbsolute,
		OpPopJumpIfFalse:   v7PopJumpIfFalse,
		OpPopJumpIfTrue:    v7PopJumpIfTrue,
		OpJumpIfFalseOrPop: v7JumpIfFalseOrPop,
		OpJumpIfTrueOrPop:  v7JumpIfTrueOrPop,
		OpGetIter:          v7GetIter,
		OpForIter:          v7ForIter,
		OpSetupWith:        v7SetupWith,
		OpPopBlock:         v7PopBlock,
		OpCallFunction:     v7CallFunction,
		OpMakeFunction:     v7MakeFunction,
		OpReturnValue:      v7ReturnValue,
		OpPopTop:           v7PopTop,
		OpDupTop:           v7DupTop,
		OpRotTwo:           v7RotTwo,
		OpBuildTuple:       v7BuildTuple,
		OpBuildList:        v7BuildList,
		OpBuildMap:         v7BuildMap,
		OpBuildRecord:      v7BuildRecord,
		OpLoadBuildClass:   v7LoadBuildClass,
		OpCallFunctionEx:   v7CallFunctionEx,
		OpExtendedArg:      v7ExtendedArg,
		OpRaiseVarargs:     v7RaiseVarargs,
		OpMatchCheckTag:    v7MatchCheckTag,
	},
}
