package compteval

import (
	"github.com/vesperlang/vesperc/internal/tyvar"
	"github.com/vesperlang/vesperc/internal/types"
)

// Substituter matches a generic type's parameter tree to a concrete type's
// parameter tree and records (qvar, concrete) pairs as undoable links
// (spec.md §4.D). Every link it makes is pushed onto its own journal, so
// Close reverses the whole substitution in one call — callers evaluating a
// projection bind, use, then detach in the same call (spec.md §4.D:
// "evaluates the found value, detaches bound variables, returns").
type Substituter struct {
	journal *tyvar.UndoableLinkedList
	// SupertypesOf optionally supplies t's immediate supertypes, in MRO
	// order, for the "descend into super-types when the immediate shapes
	// mismatch" step. Nil means that step is skipped — callers wire this to
	// BuiltinRegistry's hierarchy when one is available.
	SupertypesOf func(types.Type) []types.Type
}

// NewSubstituter opens a fresh undo journal.
func NewSubstituter() *Substituter {
	return &Substituter{journal: tyvar.NewJournal()}
}

// Close reverses every link this Substituter made, restoring every touched
// cell to its prior constraint and link state exactly (spec.md §5's
// invariant 3: "after Substituter::substitute_typarams is dropped, every
// free variable in t returns to its prior state").
func (s *Substituter) Close() { s.journal.Close() }

// SubstituteTyparams walks generic's and concrete's Poly parameter trees in
// lockstep, linking every qvar (a FreeVar found in a generic TPType slot) to
// the corresponding concrete slot. Returns false without linking anything if
// the two trees' shapes cannot be reconciled even after commuting Or/And
// arguments and descending into supertypes.
func (s *Substituter) SubstituteTyparams(generic, concrete types.Type) bool {
	gp, gok := generic.(types.Poly)
	cp, cok := concrete.(types.Poly)
	if !gok || !cok || gp.Name != cp.Name || len(gp.Params) != len(cp.Params) {
		return s.substituteViaSupertype(generic, concrete)
	}
	for i := range gp.Params {
		if !s.substituteParam(gp.Params[i], cp.Params[i]) {
			return false
		}
	}
	return true
}

func (s *Substituter) substituteViaSupertype(generic, concrete types.Type) bool {
	if s.SupertypesOf == nil {
		return false
	}
	for _, sup := range s.SupertypesOf(concrete) {
		if s.SubstituteTyparams(generic, sup) {
			return true
		}
	}
	return false
}

func (s *Substituter) substituteParam(gp, cp types.TypeParam) bool {
	switch g := gp.(type) {
	case types.TPType:
		return s.substituteTypeSlot(g.T, cp)
	case types.TPErased:
		return s.substituteTypeSlot(g.T, cp)
	default:
		// Already-concrete parameter slots (TPValue, TPMono, ...) need no
		// substitution; treat a structural mismatch here as acceptable
		// since qvar binding, not verification, is this method's job.
		return true
	}
}

func (s *Substituter) substituteTypeSlot(g types.Type, cp types.TypeParam) bool {
	ct, ok := ConvertTPIntoType(cp)
	if !ok {
		return false
	}
	return s.substituteType(g, ct)
}

// substituteType binds any FreeVar directly at this position, commuting
// Or/And arguments when the obvious orientation would violate covariance
// (spec.md §4.D), and recursing structurally otherwise.
func (s *Substituter) substituteType(g, c types.Type) bool {
	if fv, ok := g.(types.FreeVar); ok {
		s.link(fv, c)
		return true
	}
	switch gx := g.(type) {
	case types.Or:
		cx, ok := c.(types.Or)
		if !ok {
			return s.SubstituteTyparams(g, c)
		}
		if s.substituteType(gx.L, cx.L) && s.substituteType(gx.R, cx.R) {
			return true
		}
		// The obvious L-L/R-R orientation would violate covariance here;
		// commute and try the crossed pairing instead.
		return s.substituteType(gx.L, cx.R) && s.substituteType(gx.R, cx.L)
	case types.And:
		cx, ok := c.(types.And)
		if !ok {
			return s.SubstituteTyparams(g, c)
		}
		if s.substituteType(gx.L, cx.L) && s.substituteType(gx.R, cx.R) {
			return true
		}
		return s.substituteType(gx.L, cx.R) && s.substituteType(gx.R, cx.L)
	case types.Poly:
		return s.SubstituteTyparams(gx, c)
	case types.Ref:
		cx, ok := c.(types.Ref)
		if !ok {
			return false
		}
		return s.substituteType(gx.Inner, cx.Inner)
	default:
		// A concrete, non-generic leaf: nothing to bind, accept as-is.
		return true
	}
}

func (s *Substituter) link(fv types.FreeVar, target types.Type) {
	fv.Cell.UndoableLink(target, s.journal)
}

// SubstituteSelf walks every free variable reachable inside t whose
// super-type constraint matches self and links it to self (spec.md §4.D:
// "Substituting Self: walks all contained free variables whose super-type
// matches the substituent and links them to it").
func (s *Substituter) SubstituteSelf(t types.Type, self types.Type) {
	for _, fv := range collectFreeVars(t) {
		if sup, ok := matchesSelfConstraint(fv, self); ok && sup {
			s.link(fv, self)
		}
	}
}

func matchesSelfConstraint(fv types.FreeVar, self types.Type) (matched bool, ok bool) {
	_, sup, hasSandwich := fv.Cell.GetSubSup()
	if hasSandwich && sup != nil {
		if supT, ok := sup.(types.Type); ok {
			return supT.Equal(self), true
		}
	}
	if of, ok := fv.Cell.GetType(); ok {
		if ofT, ok := of.(types.Type); ok {
			return ofT.Equal(self), true
		}
	}
	return false, false
}

// collectFreeVars gathers every FreeVar reachable inside t, mirroring
// ContainsTVar's traversal shape (transform.go) but accumulating instead of
// short-circuiting on a single target id.
func collectFreeVars(t types.Type) []types.FreeVar {
	var out []types.FreeVar
	var walk func(types.Type)
	walk = func(x types.Type) {
		switch v := x.(type) {
		case types.FreeVar:
			out = append(out, v)
		case types.Ref:
			walk(v.Inner)
		case types.RefMut:
			walk(v.Before)
			if v.After != nil {
				walk(v.After)
			}
		case types.Subr:
			for _, p := range v.NonDefaultParams {
				walk(p.ParamType)
			}
			for _, p := range v.DefaultParams {
				walk(p.ParamType)
			}
			if v.VarParams != nil {
				walk(v.VarParams.ParamType)
			}
			walk(v.Return)
		case types.Callable:
			for _, p := range v.Params {
				walk(p)
			}
			walk(v.Return)
		case types.Record:
			for _, f := range v.Fields {
				walk(f)
			}
		case types.Refinement:
			walk(v.Base)
		case types.Quantified:
			walk(v.Inner)
		case types.And:
			walk(v.L)
			walk(v.R)
		case types.Or:
			walk(v.L)
			walk(v.R)
		case types.Not:
			walk(v.Inner)
		case types.Poly:
			for _, p := range v.Params {
				if tt, ok := p.(types.TPType); ok {
					walk(tt.T)
				}
			}
		case types.Structural:
			walk(v.Inner)
		case types.Bounded:
			walk(v.Sub)
			walk(v.Sup)
		}
	}
	walk(t)
	return out
}
