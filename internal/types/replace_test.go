package types

import "testing"

func TestReplaceTableSubstitutesMonoLeaf(t *testing.T) {
	target := Mono{QualName: "T"}
	to := BMono{B: Int}
	rt := MakeReplaceTable(target, to)

	subr := Subr{Kind: SubrFunc, NonDefaultParams: []Param{{Name: "x", ParamType: target}}, Return: target}
	got := rt.Replace(subr)

	gs, ok := got.(Subr)
	if !ok {
		t.Fatalf("Replace should preserve the Subr shape, got %T", got)
	}
	if !gs.NonDefaultParams[0].ParamType.Equal(to) {
		t.Fatal("parameter type should be substituted")
	}
	if !gs.Return.Equal(to) {
		t.Fatal("return type should be substituted")
	}
}

func TestReplaceTableNoOpOnUnrelatedSubtree(t *testing.T) {
	target := Mono{QualName: "T"}
	to := BMono{B: Int}
	rt := MakeReplaceTable(target, to)

	unrelated := Ref{Inner: BMono{B: Str}}
	got := rt.Replace(unrelated)
	if !got.Equal(unrelated) {
		t.Fatal("Replace should leave a subtree untouched when the target never appears in it")
	}
}

func TestReplaceTableWalksRefInLockstep(t *testing.T) {
	target := Ref{Inner: Mono{QualName: "T"}}
	to := Ref{Inner: BMono{B: Int}}
	rt := MakeReplaceTable(target, to)

	got := rt.Replace(Ref{Inner: Mono{QualName: "T"}})
	if !got.Equal(to) {
		t.Fatalf("expected %s, got %s", to.String(), got.String())
	}
}
