package codegen

import "github.com/vesperlang/vesperc/internal/config"

// V9 renumbers every opcode relative to V7 and adds WithExceptStart to the
// with-block cleanup protocol (spec.md §4.F.4's dialect table).
const (
	v9ExtendedArg byte = iota
	v9LoadConst
	v9LoadFast
	v9StoreFast
	v9LoadGlobal
	v9StoreGlobal
	v9LoadDeref
	v9StoreDeref
	v9LoadClosure
	v9LoadName
	v9StoreName
	v9LoadAttr
	v9LoadMethod
	v9CallMethod
	v9StoreAttr
	v9BinarySubscr
	v9StoreSubscr
	v9UnaryNegative
	v9UnaryNot
	v9UnaryInvert
	v9BinaryAdd
	v9BinarySub
	v9BinaryMul
	v9BinaryDiv
	v9BinaryMod
	v9BinaryPow
	v9BinaryAnd
	v9BinaryOr
	v9BinaryXor
	v9BinaryLshift
	v9BinaryRshift
	v9CompareOp
	v9IsOp
	v9ContainsOp
	v9JumpForward
	v9JumpAbsolute
	v9PopJumpIfFalse
	v9PopJumpIfTrue
	v9JumpIfFalseOrPop
	v9JumpIfTrueOrPop
	v9GetIter
	v9ForIter
	v9SetupWith
	v9WithExceptStart
	v9PopBlock
	v9CallFunction
	v9MakeFunction
	v9ReturnValue
	v9PopTop
	v9DupTop
	v9RotTwo
	v9BuildTuple
	v9BuildList
	v9BuildMap
	v9BuildRecord
	v9LoadBuildClass
	v9CallFunctionEx
	v9RaiseVarargs
	v9MatchCheckTag
)

var dialectV9 = &Dialect{
	Version: config.V9,
	With:    WithExceptStartStyle,
	LoopOp:  OpJumpAbsolute,
	Ops: map[Op]byte{
		OpLoadConst:        v9LoadConst,
		OpLoadFast:         v9LoadFast,
		OpStoreFast:        v9StoreFast,
		OpLoadGlobal:       v9LoadGlobal,
		OpStoreGlobal:      v9StoreGlobal,
		OpLoadDeref:        v9LoadDeref,
		OpStoreDeref:       v9StoreDeref,
		OpLoadClosure:      v9LoadClosure,
		OpLoadName:         v9LoadName,
		OpStoreName:        v9StoreName,
		OpLoadAttr:         v9LoadAttr,
		OpLoadMethod:       v9LoadMethod,
		OpCallMethod:       v9CallMethod,
		OpStoreAttr:        v9StoreAttr,
		OpBinarySubscr:     v9BinarySubscr,
		OpStoreSubscr:      v9StoreSubscr,
		OpUnaryNegative:    v9UnaryNegative,
		OpUnaryNot:         v9UnaryNot,
		OpUnaryInvert:      v9UnaryInvert,
		OpBinaryAdd:        v9BinaryAdd,
		OpBinarySub:        v9BinarySub,
		OpBinaryMul:        v9BinaryMul,
		OpBinaryDiv:        v9BinaryDiv,
		OpBinaryMod:        v9BinaryMod,
		OpBinaryPow:        v9BinaryPow,
		OpBinaryAnd:        v9BinaryAnd,
		OpBinaryOr:         v9BinaryOr,
		OpBinaryXor:        v9BinaryXor,
		OpBinaryLshift:     v9BinaryLshift,
		OpBinaryRshift:     v9BinaryRshift,
		OpCompareOp:        v9CompareOp,
		OpIsOp:             v9IsOp,
		OpContainsOp:       v9ContainsOp,
		OpJumpForward:      v9JumpForward,
		OpJumpAbsolute:     v9JumpAbsolute,
		OpPopJumpIfFalse:   v9PopJumpIfFalse,
		OpPopJumpIfTrue:    v9PopJumpIfTrue,
		OpJumpIfFalseOrPop: v9JumpIfFalseOrPop,
		OpJumpIfTrueOrPop:  v9JumpIfTrueOrPop,
		OpGetIter:          v9GetIter,
		OpForIter:          v9ForIter,
		OpSetupWith:        v9SetupWith,
		OpWithExceptStart:  v9WithExceptStart,
		OpPopBlock:         v9PopBlock,
		OpCallFunction:     v9CallFunction,
		OpMakeFunction:     v9MakeFunction,
		OpReturnValue:      v9ReturnValue,
		OpPopTop:           v9PopTop,
		OpDupTop:           v9DupTop,
		OpRotTwo:           v9RotTwo,
		OpBuildTuple:       v9BuildTuple,
		OpBuildList:        v9BuildList,
		OpBuildMap:         v9BuildMap,
		OpBuildRecord:      v9BuildRecord,
		OpLoadBuildClass:   v9LoadBuildClass,
		OpCallFunctionEx:   v9CallFunctionEx,
		OpExtendedArg:      v9ExtendedArg,
		OpRaiseVarargs:     v9RaiseVarargs,
		OpMatchCheckTag:    v9MatchCheckTag,
	},
}
