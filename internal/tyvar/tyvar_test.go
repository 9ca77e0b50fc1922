package tyvar

import "testing"

type fakeType struct{ name string }

func (f fakeType) String() string            { return f.name }
func (f fakeType) Equal(o TypeLike) bool     { ot, ok := o.(fakeType); return ok && ot.name == f.name }

func TestUndoableLinkRollbackRestoresPriorState(t *testing.T) {
	s := NewStore()
	c := s.NewNamedUnbound("T", 0, UninitedConstraint())
	before := *c // shallow copy of the cell's value fields before linking

	j := NewJournal()
	c.UndoableLink(fakeType{name: "Int"}, j)
	if c.State != UndoableLinked {
		t.Fatalf("state = %v; want UndoableLinked", c.State)
	}
	if c.String() != "Int" {
		t.Fatalf("String() = %q; want Int", c.String())
	}
	j.Close()

	if c.State != before.State || c.Name != before.Name || c.Level != before.Level {
		t.Fatalf("cell not restored to prior state: got %+v, want %+v", c, before)
	}
	if c.UndoCount != 0 {
		t.Fatalf("undo count = %d; want 0", c.UndoCount)
	}
}

func TestRepeatedUndoableLinkSymmetricUnwind(t *testing.T) {
	s := NewStore()
	c := s.NewUnbound(0, UninitedConstraint())
	j1 := NewJournal()
	j2 := NewJournal()

	c.UndoableLink(fakeType{name: "A"}, j1)
	c.UndoableLink(fakeType{name: "B"}, j2)
	if c.UndoCount != 2 {
		t.Fatalf("undo count = %d; want 2", c.UndoCount)
	}
	if c.String() != "B" {
		t.Fatalf("cell should reflect the most recent link, got %q", c.String())
	}

	j2.Close()
	if c.UndoCount != 1 {
		t.Fatalf("undo count after one close = %d; want 1", c.UndoCount)
	}
	if c.String() != "A" {
		t.Fatalf("cell should revert to the first link, got %q", c.String())
	}

	j1.Close()
	if c.UndoCount != 0 || c.State != Unbound {
		t.Fatalf("cell should be fully unlinked, got state=%v count=%d", c.State, c.UndoCount)
	}
}

func TestDoAvoidingRecursionShortCircuits(t *testing.T) {
	s := NewStore()
	c := s.NewUnbound(0, UninitedConstraint())

	var calls int
	var inner func() bool
	inner = func() bool {
		calls++
		return DoAvoidingRecursion(c, false, func() bool {
			return inner()
		})
	}
	result := DoAvoidingRecursion(c, false, func() bool {
		return inner()
	})
	if result != false {
		t.Fatalf("re-entrant call should see the recursion default, got %v", result)
	}
	if calls != 1 {
		t.Fatalf("inner should run exactly once before the guard trips, got %d calls", calls)
	}
}

func TestGeneralizeSetsGenericLevel(t *testing.T) {
	s := NewStore()
	c := s.NewUnbound(3, UninitedConstraint())
	c.Generalize()
	if !c.IsGeneralized() {
		t.Fatal("cell should be generalized after Generalize()")
	}
}
