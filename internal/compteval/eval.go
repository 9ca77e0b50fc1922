package compteval

import (
	"github.com/vesperlang/vesperc/internal/ir"
	"github.com/vesperlang/vesperc/internal/types"
	"github.com/vesperlang/vesperc/internal/values"
)

// binOps maps an IR operator name to the values.Try* primitive it folds to.
var binOps = map[string]func(values.Value, values.Value) (values.Value, bool){
	"+": values.TryAdd, "-": values.TrySub, "*": values.TryMul,
	"/": values.TryDiv, "//": values.TryFloorDiv, "%": values.TryMod,
	"**": values.TryPow, "||": values.TryOr, "&&": values.TryAnd,
	"==": values.TryEq, "!=": values.TryNe,
	"<": values.TryLt, "<=": values.TryLe, ">": values.TryGt, ">=": values.TryGe,
}

// EvalConstExpr reduces a single IR node to a compile-time Value. Errors
// accumulate into errs rather than aborting — the returned Value is always
// the best partial result available (values.Illegal when nothing usable
// could be produced), per spec.md §4.D/§7.
func EvalConstExpr(ctx *Context, n *ir.Node) (values.Value, Errors) {
	var errs Errors
	v := evalConstExpr(ctx, n, &errs)
	return v, errs
}

func evalConstExpr(ctx *Context, n *ir.Node, errs *Errors) values.Value {
	if n == nil {
		return values.Illegal{}
	}
	switch n.Kind {
	case ir.KindLit:
		if v, ok := n.Lit.(values.Value); ok {
			return v
		}
		errs.Add(InvalidLiteral, n.Pos.Line, n.Pos.Column, "literal payload is not a compile-time Value")
		return values.Illegal{}

	case ir.KindIdent:
		if v, ok := ctx.Lookup(n.Name); ok {
			return v
		}
		errs.AddSuggestion(NoVar, n.Pos.Line, n.Pos.Column, suggestName(ctx, n.Name),
			"expression appeared in a compile-time context but %q is not bound there", n.Name)
		return values.Illegal{}

	case ir.KindBinOp:
		if len(n.Children) != 2 {
			errs.Add(CompilerBug, n.Pos.Line, n.Pos.Column, "BinOp node without exactly two children")
			return values.Illegal{}
		}
		l := evalConstExpr(ctx, n.Children[0], errs)
		r := evalConstExpr(ctx, n.Children[1], errs)
		fn, ok := binOps[n.Op]
		if !ok {
			errs.Add(Feature, n.Pos.Line, n.Pos.Column, "operator %q has no compile-time evaluation path", n.Op)
			return values.Illegal{}
		}
		if result, ok := fn(l, r); ok {
			return result
		}
		errs.Add(TypeMismatch, n.Pos.Line, n.Pos.Column, "operator %q is not defined for %s and %s", n.Op, l.String(), r.String())
		return values.Illegal{}

	case ir.KindUnaryOp:
		if len(n.Children) != 1 {
			errs.Add(CompilerBug, n.Pos.Line, n.Pos.Column, "UnaryOp node without exactly one child")
			return values.Illegal{}
		}
		x := evalConstExpr(ctx, n.Children[0], errs)
		return evalUnaryConst(n.Op, x, n, errs)

	case ir.KindAttr:
		recv := evalConstExpr(ctx, n.Recv, errs)
		if v, ok := values.TryGetAttr(recv, n.Name); ok {
			return v
		}
		if t, ok := values.AsType(recv); ok {
			if v, ok := EvalProj(ctx, t, n.Name, errs); ok {
				return v
			}
		}
		errs.AddSuggestion(NoAttr, n.Pos.Line, n.Pos.Column, suggestName(ctx, n.Name),
			"no attribute %q on %s", n.Name, recv.String())
		return values.Illegal{}

	case ir.KindCall:
		return evalConstCall(ctx, n, errs)

	case ir.KindTuple:
		elems := make([]values.Value, len(n.Children))
		for i, c := range n.Children {
			elems[i] = evalConstExpr(ctx, c, errs)
		}
		return values.Tuple{Elems: elems}

	case ir.KindList:
		elems := make([]values.Value, len(n.Children))
		for i, c := range n.Children {
			elems[i] = evalConstExpr(ctx, c, errs)
		}
		return values.Array{Elems: elems}

	case ir.KindRecord:
		// Evaluated in a fresh transient context so later fields can
		// reference earlier ones by name (spec.md §4.D).
		child := ctx.Child()
		fields := make(map[string]values.Value, len(n.Children))
		for i, c := range n.Children {
			v := evalConstExpr(child, c, errs)
			name := n.Params[i]
			fields[name] = v
			child.Bind(name, v)
		}
		return values.Record{Fields: fields}

	case ir.KindBlock:
		return evalConstBlockInner(ctx, n, errs)

	default:
		errs.Add(NotConstExpr, n.Pos.Line, n.Pos.Column, "node kind %d cannot appear in a compile-time context", n.Kind)
		return values.Illegal{}
	}
}

func evalUnaryConst(op string, x values.Value, n *ir.Node, errs *Errors) values.Value {
	switch op {
	case "-":
		if zero, ok := values.TrySub(values.Int32{V: 0}, x); ok {
			return zero
		}
	case "!":
		if b, ok := x.(values.Bool); ok {
			return values.Bool{V: !b.V}
		}
	}
	errs.Add(TypeMismatch, n.Pos.Line, n.Pos.Column, "unary operator %q is not defined for %s", op, x.String())
	return values.Illegal{}
}

// EvalConstBlock evaluates a Block node's statements in order, returning the
// last statement's value (spec.md §4.D surface: eval_const_block).
func EvalConstBlock(ctx *Context, block *ir.Node) (values.Value, Errors) {
	var errs Errors
	v := evalConstBlockInner(ctx, block, &errs)
	return v, errs
}

func evalConstBlockInner(ctx *Context, block *ir.Node, errs *Errors) values.Value {
	var last values.Value = values.None{}
	for _, stmt := range block.Children {
		last = evalConstExpr(ctx, stmt, errs)
	}
	return last
}

// evalConstCall dispatches a KindCall node: if the callee resolves to a
// Subr, invoke it through EvalCall; otherwise treat the call as
// EvalProjCall against an attribute-call receiver.
func evalConstCall(ctx *Context, n *ir.Node, errs *Errors) values.Value {
	if len(n.Children) == 0 {
		errs.Add(CompilerBug, n.Pos.Line, n.Pos.Column, "Call node with no callee child")
		return values.Illegal{}
	}
	callee := n.Children[0]
	args := make([]values.Value, 0, len(n.Children)-1)
	for _, a := range n.Children[1:] {
		args = append(args, evalConstExpr(ctx, a, errs))
	}

	if callee.Kind == ir.KindAttr {
		recv := evalConstExpr(ctx, callee.Recv, errs)
		if t, ok := values.AsType(recv); ok {
			v, ok := EvalProjCall(ctx, t, callee.Name, args, errs)
			if ok {
				return v
			}
			errs.Add(NoAttr, n.Pos.Line, n.Pos.Column, "no callable %q on %s", callee.Name, t.String())
			return values.Illegal{}
		}
	}

	calleeVal := evalConstExpr(ctx, callee, errs)
	subr, ok := calleeVal.(*values.Subr)
	if !ok {
		errs.Add(NotConstExpr, n.Pos.Line, n.Pos.Column, "callee does not evaluate to a const-callable subroutine")
		return values.Illegal{}
	}
	v, callErrs := EvalCall(ctx, subr, args)
	*errs = append(*errs, callErrs...)
	return v
}

// EvalCall builds a transient child context seeded with argument bindings
// (positional only, matched against the subroutine's own VarNames — kwargs
// are an external name-resolution concern already flattened into positional
// order by the time CodeGen/compteval sees a Call node), evaluates the body
// as a constant block, and returns the result. A built-in const-subroutine
// (Builtin non-nil) receives the argument vector directly and may return an
// Illegal sentinel on failure, matching "built-in const-subroutines receive
// the argument vector verbatim" (spec.md §4.D).
func EvalCall(ctx *Context, subr *values.Subr, args []values.Value) (values.Value, Errors) {
	var errs Errors
	if subr.Builtin != nil {
		v, ok := subr.Builtin(args)
		if !ok {
			errs.Add(NotConstExpr, 0, 0, "built-in const-subroutine %q failed", subr.SubrName)
			return values.Illegal{}, errs
		}
		return v, errs
	}
	if subr.Body == nil {
		errs.Add(CompilerBug, 0, 0, "user const-subroutine %q has no body", subr.SubrName)
		return values.Illegal{}, errs
	}
	child := ctx.Child()
	for i, name := range subr.Body.VarNames {
		if i < len(args) {
			child.Bind(name, args[i])
		}
	}
	// The body's own Code.Consts/Bytes are a CodeGen-side representation;
	// compteval's const-fn bodies are evaluated from the original IR block
	// attached to the Subr at const-fn registration time, carried in
	// Builtin-less Subr values via the zeroth constant slot by convention.
	if len(subr.Body.Consts) > 0 {
		if block, ok := subr.Body.Consts[0].(*ir.Node); ok {
			v := evalConstBlockInner(child, block, &errs)
			return v, errs
		}
	}
	errs.Add(CompilerBug, 0, 0, "user const-subroutine %q has no evaluable body block", subr.SubrName)
	return values.Illegal{}, errs
}

// EvalProj resolves T.name in three steps: (i) T's own methods context,
// (ii) each supertype context in MRO order, (iii) each impl-Trait bucket,
// in the order GetNominalSuperTypeCtxs returns them. Buckets are not
// filtered by trait, and the first match is returned as found: no generic
// parameters of T are bound through a Substituter.
func EvalProj(ctx *Context, t types.TypeLike, name string, errs *Errors) (values.Value, bool) {
	reg := ctx.Registry()
	if reg == nil {
		errs.Add(CompilerBug, 0, 0, "projection requires a Registry but Context has none")
		return values.Illegal{}, false
	}
	qn := ""
	if tt, ok := t.(types.Type); ok {
		qn = types.QualName(tt)
	}
	if own, ok := reg.GetMod(qn); ok {
		if v, ok := own.Get(name); ok {
			return v, true
		}
	}
	if tt, ok := t.(types.Type); ok {
		for _, sup := range reg.GetNominalSuperTypeCtxs(tt) {
			if v, ok := sup.Get(name); ok {
				return v, true
			}
		}
	}
	errs.Add(NoCandidate, 0, 0, "projection %s.%s resolves to no candidate", qn, name)
	return values.Illegal{}, false
}

// EvalProjCall resolves name as above; if it is a subroutine, invokes it
// with the projected receiver prepended as the first argument (spec.md
// §4.D: "invokes it with the projected receiver prepended").
func EvalProjCall(ctx *Context, t types.TypeLike, name string, args []values.Value, errs *Errors) (values.Value, bool) {
	member, ok := EvalProj(ctx, t, name, errs)
	if !ok {
		return values.Illegal{}, false
	}
	subr, ok := member.(*values.Subr)
	if !ok {
		qn := ""
		if tt, ok := t.(types.Type); ok {
			qn = types.QualName(tt)
		}
		errs.Add(NoCandidate, 0, 0, "projection %s.%s is not callable", qn, name)
		return values.Illegal{}, false
	}
	callArgs := append([]values.Value{values.TypeObj{T: t}}, args...)
	v, callErrs := EvalCall(ctx, subr, callArgs)
	*errs = append(*errs, callErrs...)
	return v, !callErrs.HasErrors()
}

// suggestName is a best-effort similar-name hint for NoVar/NoAttr
// diagnostics — a simple prefix match over the current binding chain, since
// this module owns no spellchecking dependency of its own.
func suggestName(ctx *Context, want string) string {
	for cur := ctx; cur != nil; cur = cur.parent {
		for name := range cur.bindings {
			if len(name) > 0 && len(want) > 0 && name[0] == want[0] && name != want {
				return name
			}
		}
	}
	return ""
}
