package values

// Ordering is the three-way comparison result TryCmp produces.
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
)

// TryEq reports structural equality, delegating to Value.Equals. It exists
// alongside Equals so operator dispatch (TryAdd-shaped callers) can treat
// equality uniformly with the other try_* operations.
func TryEq(a, b Value) (Value, bool) {
	if mc, ok := a.(*Cell); ok {
		a = mc.Get()
	}
	if mc, ok := b.(*Cell); ok {
		b = mc.Get()
	}
	return Bool{V: a.Equals(b)}, true
}

func TryNe(a, b Value) (Value, bool) {
	eq, _ := TryEq(a, b)
	return Bool{V: !eq.(Bool).V}, true
}

// TryCmp returns a three-way Ordering when a and b are comparable. It
// returns Equal whenever TryEq is true (spec.md §8); the converse does not
// hold for numerics, which compare by value: Int32(3) against Float(3.0), or
// -0.0 against +0.0, is Equal here although TryEq reports them unequal.
func TryCmp(a, b Value) (Ordering, bool) {
	if mc, ok := a.(*Cell); ok {
		a = mc.Get()
	}
	if mc, ok := b.(*Cell); ok {
		b = mc.Get()
	}
	if a.Equals(b) {
		return Equal, true
	}
	if sa, ok := a.(Str); ok {
		if sb, ok := b.(Str); ok {
			switch {
			case sa.V < sb.V:
				return Less, true
			case sa.V > sb.V:
				return Greater, true
			default:
				return Equal, true
			}
		}
		return 0, false
	}
	if _, ok := a.(Inf); ok {
		if _, ok := b.(NegInf); ok {
			return Greater, true
		}
		if isNumeric(b) {
			return Greater, true
		}
		return 0, false
	}
	if _, ok := a.(NegInf); ok {
		if isNumeric(b) || isInfVariant(b) {
			return Less, true
		}
		return 0, false
	}
	if _, ok := b.(Inf); ok && isNumeric(a) {
		return Less, true
	}
	if _, ok := b.(NegInf); ok && isNumeric(a) {
		return Greater, true
	}
	fa, oka := asFloat(a)
	fb, okb := asFloat(b)
	if !oka || !okb {
		return 0, false
	}
	switch {
	case fa < fb:
		return Less, true
	case fa > fb:
		return Greater, true
	default:
		return Equal, true
	}
}

func isNumeric(v Value) bool {
	return rank(v) >= 0
}

func isInfVariant(v Value) bool {
	switch v.(type) {
	case Inf, NegInf:
		return true
	default:
		return false
	}
}

func TryLt(a, b Value) (Value, bool) {
	o, ok := TryCmp(a, b)
	if !ok {
		return nil, false
	}
	return Bool{V: o == Less}, true
}

func TryLe(a, b Value) (Value, bool) {
	o, ok := TryCmp(a, b)
	if !ok {
		return nil, false
	}
	return Bool{V: o != Greater}, true
}

func TryGt(a, b Value) (Value, bool) {
	o, ok := TryCmp(a, b)
	if !ok {
		return nil, false
	}
	return Bool{V: o == Greater}, true
}

func TryGe(a, b Value) (Value, bool) {
	o, ok := TryCmp(a, b)
	if !ok {
		return nil, false
	}
	return Bool{V: o != Less}, true
}
