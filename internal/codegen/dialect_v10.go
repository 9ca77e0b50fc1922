package codegen

import "github.com/vesperlang/vesperc/internal/config"

// V10 drops V9's WithExceptStart step from the with-block shape (SetupWith
// then PopBlock; §4.F.4's "V10 cleanup"); renumbered again relative to V9.
const (
	v10LoadConst byte = iota
	v10LoadFast
	v10StoreFast
	v10LoadGlobal
	v10StoreGlobal
	v10LoadDeref
	v10StoreDeref
	v10LoadClosure
	v10LoadName
	v10StoreName
	v10LoadAttr
	v10LoadMethod
	v10CallMethod
	v10StoreAttr
	v10BinarySubscr
	v10StoreSubscr
	v10UnaryNegative
	v10UnaryNot
	v10UnaryInvert
	v10BinaryAdd
	v10BinarySub
	v10BinaryMul
	v10BinaryDiv
	v10BinaryMod
	v10BinaryPow
	v10BinaryAnd
	v10BinaryOr
	v10BinaryXor
	v10BinaryLshift
	v10BinaryRshift
	v10CompareOp
	v10IsOp
	v10ContainsOp
	v10JumpForward
	v10JumpAbsolute
	v10PopJumpIfFalse
	v10PopJumpIfTrue
	v10JumpIfFalseOrPop
	v10JumpIfTrueOrPop
	v10GetIter
	v10ForIter
	v10SetupWith
	v10PopBlock
	v10CallFunction
	v10MakeFunction
	v10ReturnValue
	v10PopTop
	v10DupTop
	v10RotTwo
	v10BuildTuple
	v10BuildList
	v10BuildMap
	v10BuildRecord
	v10LoadBuildClass
	v10CallFunctionEx
	v10ExtendedArg
	v10RaiseVarargs
	v10MatchCheckTag
)

var dialectV10 = &Dialect{
	Version: config.V10,
	With:    WithV10Cleanup,
	LoopOp:  OpJumpAbsolute,
	Ops: map[Op]byte{
		OpLoadConst:        v10LoadConst,
		OpLoadFast:         v10LoadFast,
		OpStoreFast:        v10StoreFast,
		OpLoadGlobal:       v10LoadGlobal,
		OpStoreGlobal:      v10StoreGlobal,
		OpLoadDeref:        v10LoadDeref,
		OpStoreDeref:       v10StoreDeref,
		OpLoadClosure:      v10LoadClosure,
		OpLoadName:         v10LoadName,
		OpStoreName:        v10StoreName,
		OpLoadAttr:         v10LoadAttr,
		OpLoadMethod:       v10LoadMethod,
		OpCallMethod:       v10CallMethod,
		OpStoreAttr:        v10StoreAttr,
		OpBinarySubscr:     v10BinarySubscr,
		OpStoreSubscr:      v10StoreSubscr,
		OpUnaryNegative:    v10UnaryNegative,
		OpUnaryNot:         v10UnaryNot,
		OpUnaryInvert:      v10UnaryInvert,
		OpBinaryAdd:        v10BinaryAdd,
		OpBinarySub:        v10BinarySub,
		OpBinaryMul:        v10BinaryMul,
		OpBinaryDiv:        v10BinaryDiv,
		OpBinaryMod:        v10BinaryMod,
		OpBinaryPow:        v10BinaryPow,
		OpBinaryAnd:        v10BinaryAnd,
		OpBinaryOr:         v10BinaryOr,
		OpBinaryXor:        v10BinaryXor,
		OpBinaryLshift:     v10BinaryLshift,
		OpBinaryRshift:     v10BinaryRshift,
		OpCompareOp:        v10CompareOp,
		OpIsOp:             v10IsOp,
		OpContainsOp:       v10ContainsOp,
		OpJumpForward:      v10JumpForward,
		OpJumpAbsolute:     v10JumpAbsolute,
		OpPopJumpIfFalse:   v10PopJumpIfFalse,
		OpPopJumpIfTrue:    v10PopJumpIfTrue,
		OpJumpIfFalseOrPop: v10JumpIfFalseOrPop,
		OpJumpIfTrueOrPop:  v10JumpIfTrueOrPop,
		OpGetIter:          v10GetIter,
		OpForIter:          v10ForIter,
		OpSetupWith:        v10SetupWith,
		OpPopBlock:         v10PopBlock,
		OpCallFunction:     v10CallFunction,
		OpMakeFunction:     v10MakeFunction,
		OpReturnValue:      v10ReturnValue,
		OpPopTop:           v10PopTop,
		OpDupTop:           v10DupTop,
		OpRotTwo:           v10RotTwo,
		OpBuildTuple:       v10BuildTuple,
		OpBuildList:        v10BuildList,
		OpBuildMap:         v10BuildMap,
		OpBuildRecord:      v10BuildRecord,
		OpLoadBuildClass:   v10LoadBuildClass,
		OpCallFunctionEx:   v10CallFunctionEx,
		OpExtendedArg:      v10ExtendedArg,
		OpRaiseVarargs:     v10RaiseVarargs,
		OpMatchCheckTag:    v10MatchCheckTag,
	},
}
