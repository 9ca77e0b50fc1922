package compteval

import (
	"github.com/vesperlang/vesperc/internal/types"
	"github.com/vesperlang/vesperc/internal/values"
)

// ConvertValueIntoType lifts a compile-time Value into a Type, for the
// places a type-level position is filled by something that evaluated to a
// plain Value rather than a type literal (e.g. `Array(Int, 3)`'s `3`).
// A TypeObj converts to the type it wraps; any other Value becomes the
// singleton refinement type of its own literal (spec.md §4.D: ConvertValueIntoType).
func ConvertValueIntoType(v values.Value) (types.Type, bool) {
	if t, ok := values.AsType(v); ok {
		if tt, ok := t.(types.Type); ok {
			return tt, true
		}
		return nil, false
	}
	base := types.ClassOf(v)
	pred := types.NewPredEqual(types.TPValue{V: v})
	return types.NewRefinement("_", base, pred), true
}

// ConvertTPIntoType lifts a TypeParam into a Type: TPType unwraps directly,
// TPValue defers to ConvertValueIntoType, TPErased unwraps its erased Type
// as-is, and anything still unevaluated (TPFreeVar, TPBinOp, an unresolved
// TPApp/TPProj/TPProjCall) is not yet convertible.
func ConvertTPIntoType(tp types.TypeParam) (types.Type, bool) {
	switch x := tp.(type) {
	case types.TPType:
		return x.T, true
	case types.TPErased:
		return x.T, true
	case types.TPValue:
		return ConvertValueIntoType(x.V)
	default:
		return nil, false
	}
}

// ConvertValueIntoTP is the inverse direction, wrapping a Value for a
// type-parameter position: a TypeObj becomes TPType, everything else TPValue.
func ConvertValueIntoTP(v values.Value) types.TypeParam {
	if t, ok := values.AsType(v); ok {
		if tt, ok := t.(types.Type); ok {
			return types.TPType{T: tt}
		}
	}
	return types.TPValue{V: v}
}

// ConvertTypeToList flattens a type into its constituent list the way
// union/intersection flattening already works at the Type level —
// Or flattens via UnionTypes, And via IntersectionTypes, anything else is a
// singleton list (spec.md §4.D: convert_type_to_list).
func ConvertTypeToList(t types.Type) []types.Type {
	switch t.(type) {
	case types.Or:
		return types.UnionTypes(t)
	case types.And:
		return types.IntersectionTypes(t)
	default:
		return []types.Type{t}
	}
}
