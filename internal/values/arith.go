package values

import "math"

// TryAdd, TrySub, ... implement spec.md §4.A's arithmetic. Rust's
// `Option<Self>` return convention becomes Go's `(Value, bool)`: ok=false is
// "operation not defined for these operands", never a panic.
//
// original_source/compiler/erg_compiler/ty/value.rs's try_add has two
// branches (Float,Int) and (Float,Nat) that subtract instead of add —
// spec.md §9 flags these as "apparent typos" and instructs implementations
// to follow the stated algebra rather than reproduce them. This
// implementation adds in both branches.
func TryAdd(a, b Value) (Value, bool) {
	if mc, ok := a.(*Cell); ok {
		return mc.combine(b, TryAdd)
	}
	if mc, ok := b.(*Cell); ok {
		return TryAdd(a, mc.Get())
	}
	if s, ok := bothStr(a, b); ok {
		return Str{V: s[0] + s[1]}, true
	}
	if inf, ok := absorbInf(a, b, opAdd); ok {
		return inf, true
	}
	ra, rb := rank(a), rank(b)
	if ra < 0 || rb < 0 {
		return nil, false
	}
	if ra == rankNat && rb == rankNat {
		return Nat{V: a.(Nat).V + b.(Nat).V}, true
	}
	if ra <= rankInt32 && rb <= rankInt32 {
		ia, _ := asInt(a)
		ib, _ := asInt(b)
		return Int32{V: int32(ia + ib)}, true
	}
	fa, oka := asFloat(a)
	fb, okb := asFloat(b)
	if oka && okb {
		return Float{V: fa + fb}, true
	}
	return nil, false
}

func TrySub(a, b Value) (Value, bool) {
	if mc, ok := a.(*Cell); ok {
		return mc.combine(b, TrySub)
	}
	if mc, ok := b.(*Cell); ok {
		return TrySub(a, mc.Get())
	}
	if inf, ok := absorbInf(a, b, opSub); ok {
		return inf, true
	}
	ra, rb := rank(a), rank(b)
	if ra < 0 || rb < 0 {
		return nil, false
	}
	// Nat - Nat may go negative: spec.md §9 leaves the 32-bit sign-preservation
	// behavior at this boundary explicitly ill-defined; we follow
	// original_source's literal choice of widening into Int32 via a plain
	// truncating conversion, matching `Self::Int((l - r) as i32)`.
	if ra == rankNat && rb == rankNat {
		l, r := a.(Nat).V, b.(Nat).V
		return Int32{V: int32(int64(l) - int64(r))}, true
	}
	if ra <= rankInt32 && rb <= rankInt32 {
		ia, _ := asInt(a)
		ib, _ := asInt(b)
		return Int32{V: int32(ia - ib)}, true
	}
	fa, oka := asFloat(a)
	fb, okb := asFloat(b)
	if oka && okb {
		return Float{V: fa - fb}, true
	}
	return nil, false
}

func TryMul(a, b Value) (Value, bool) {
	if mc, ok := a.(*Cell); ok {
		return mc.combine(b, TryMul)
	}
	if mc, ok := b.(*Cell); ok {
		return TryMul(a, mc.Get())
	}
	ra, rb := rank(a), rank(b)
	if ra < 0 || rb < 0 {
		return nil, false
	}
	if ra == rankNat && rb == rankNat {
		return Nat{V: a.(Nat).V * b.(Nat).V}, true
	}
	if ra <= rankInt32 && rb <= rankInt32 {
		ia, _ := asInt(a)
		ib, _ := asInt(b)
		return Int32{V: int32(ia * ib)}, true
	}
	fa, oka := asFloat(a)
	fb, okb := asFloat(b)
	if oka && okb {
		return Float{V: fa * fb}, true
	}
	return nil, false
}

// TryDiv always lifts to Float, per spec.md §4.A.
func TryDiv(a, b Value) (Value, bool) {
	if mc, ok := a.(*Cell); ok {
		return mc.combine(b, TryDiv)
	}
	if mc, ok := b.(*Cell); ok {
		return TryDiv(a, mc.Get())
	}
	fa, oka := asFloat(a)
	fb, okb := asFloat(b)
	if !oka || !okb {
		return nil, false
	}
	return Float{V: fa / fb}, true
}

// TryFloorDiv preserves the integer class when both operands are integers.
func TryFloorDiv(a, b Value) (Value, bool) {
	if mc, ok := a.(*Cell); ok {
		return mc.combine(b, TryFloorDiv)
	}
	if mc, ok := b.(*Cell); ok {
		return TryFloorDiv(a, mc.Get())
	}
	ra, rb := rank(a), rank(b)
	if ra >= 0 && rb >= 0 && ra <= rankInt32 && rb <= rankInt32 {
		ia, _ := asInt(a)
		ib, _ := asInt(b)
		if ib == 0 {
			return nil, false
		}
		q := ia / ib
		if (ia%ib != 0) && ((ia < 0) != (ib < 0)) {
			q--
		}
		if ra == rankNat && rb == rankNat {
			return Nat{V: uint64(q)}, true
		}
		return Int32{V: int32(q)}, true
	}
	fa, oka := asFloat(a)
	fb, okb := asFloat(b)
	if oka && okb {
		return Float{V: math.Floor(fa / fb)}, true
	}
	return nil, false
}

func TryMod(a, b Value) (Value, bool) {
	if mc, ok := a.(*Cell); ok {
		return mc.combine(b, TryMod)
	}
	if mc, ok := b.(*Cell); ok {
		return TryMod(a, mc.Get())
	}
	ra, rb := rank(a), rank(b)
	if ra >= 0 && rb >= 0 && ra <= rankInt32 && rb <= rankInt32 {
		ia, _ := asInt(a)
		ib, _ := asInt(b)
		if ib == 0 {
			return nil, false
		}
		m := ia % ib
		if m != 0 && (m < 0) != (ib < 0) {
			m += ib
		}
		if ra == rankNat && rb == rankNat {
			return Nat{V: uint64(m)}, true
		}
		return Int32{V: int32(m)}, true
	}
	fa, oka := asFloat(a)
	fb, okb := asFloat(b)
	if oka && okb {
		return Float{V: math.Mod(fa, fb)}, true
	}
	return nil, false
}

func TryPow(a, b Value) (Value, bool) {
	if mc, ok := a.(*Cell); ok {
		return mc.combine(b, TryPow)
	}
	if mc, ok := b.(*Cell); ok {
		return TryPow(a, mc.Get())
	}
	fa, oka := asFloat(a)
	fb, okb := asFloat(b)
	if !oka || !okb {
		return nil, false
	}
	return Float{V: math.Pow(fa, fb)}, true
}

func TryOr(a, b Value) (Value, bool) {
	ba, oka := a.(Bool)
	bb, okb := b.(Bool)
	if !oka || !okb {
		return nil, false
	}
	return Bool{V: ba.V || bb.V}, true
}

func TryAnd(a, b Value) (Value, bool) {
	ba, oka := a.(Bool)
	bb, okb := b.(Bool)
	if !oka || !okb {
		return nil, false
	}
	return Bool{V: ba.V && bb.V}, true
}

const (
	rankNat    = 1
	rankInt32  = 2
)

type infOp int

const (
	opAdd infOp = iota
	opSub
)

func bothStr(a, b Value) ([2]string, bool) {
	sa, oka := a.(Str)
	sb, okb := b.(Str)
	if oka && okb {
		return [2]string{sa.V, sb.V}, true
	}
	return [2]string{}, false
}

// absorbInf implements IEEE-style absorption of the Inf/NegInf sentinels in
// additive contexts (TryAdd, TrySub), with Inf + (-Inf) defined as "not ok"
// (incomparable), per spec.md §4.A. TryMul does not call it: a product with
// an Inf or NegInf operand is not ok.
func absorbInf(a, b Value, op infOp) (Value, bool) {
	_, aInf := a.(Inf)
	_, aNeg := a.(NegInf)
	_, bInf := b.(Inf)
	_, bNeg := b.(NegInf)
	if !aInf && !aNeg && !bInf && !bNeg {
		return nil, false
	}
	switch op {
	case opAdd:
		if (aInf && bNeg) || (aNeg && bInf) {
			return nil, false
		}
	case opSub:
		if (aInf && bInf) || (aNeg && bNeg) {
			return nil, false
		}
	}
	if aInf || aNeg {
		if aInf {
			return Inf{}, true
		}
		return NegInf{}, true
	}
	if op == opSub {
		if bInf {
			return NegInf{}, true
		}
		return Inf{}, true
	}
	if bInf {
		return Inf{}, true
	}
	return NegInf{}, true
}
