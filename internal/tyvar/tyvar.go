// Package tyvar implements FreeVarStore (spec.md §3.5/§4.C): the
// interior-mutable, three-state free-type-variable cell and its undo
// journal.
//
// No reference package carries a separable free-variable-store of its own
// — a flat map[string]Type substitution isn't a cell arena. This package
// is built fresh, in the surrounding idiom (small structs, cheap interior
// mutability via *Cell pointers, no channels or locks — spec.md §5 is
// explicitly single-threaded), generalizing a Bind-style unification step
// into an explicit, reversible cell.
//
// Cell deliberately does not import internal/types, to avoid a cycle
// symmetric to the one documented in internal/values: types.FreeVar wraps a
// *Cell, and a Cell's Constraint may need to refer to a concrete Type. The
// cycle is broken the same way — a narrow TypeLike interface here, which
// internal/types.Type satisfies without tyvar needing to import types.
package tyvar

import "fmt"

// TypeLike is the narrow interface a constraint's type payload is held
// through. internal/types.Type satisfies this without tyvar importing types.
type TypeLike interface {
	String() string
	Equal(TypeLike) bool
}

// State tags a Cell's current lifecycle stage (spec.md §3.5).
type State int

const (
	Unbound State = iota
	Linked
	UndoableLinked
)

// ConstraintKind tags a Constraint's variant.
type ConstraintKind int

const (
	Uninited ConstraintKind = iota
	TypeOfConstraint
	Sandwiched
)

// Constraint restricts what an Unbound cell may eventually link to.
type Constraint struct {
	Kind ConstraintKind
	// TypeOfConstraint: Of holds "the variable is a value of this type".
	Of TypeLike
	// Sandwiched: Sub..Sup is the admissible type range.
	Sub, Sup TypeLike
}

func UninitedConstraint() Constraint { return Constraint{Kind: Uninited} }

func TypeOf(t TypeLike) Constraint {
	return Constraint{Kind: TypeOfConstraint, Of: t}
}

func SandwichedConstraint(sub, sup TypeLike) Constraint {
	return Constraint{Kind: Sandwiched, Sub: sub, Sup: sup}
}

// Cell is a single free-type-variable cell. Exactly one of its fields is
// meaningful depending on State:
//   Unbound:        Name/Level/Cons
//   Linked:         Target
//   UndoableLinked: Target, with Prev holding the state to restore on Undo
type Cell struct {
	id    int
	Name  string // empty for an anonymous (non-named) unbound variable
	Level int
	Cons  Constraint

	State  State
	Target TypeLike

	// UndoCount tracks how many undoable_link calls have been made against
	// this cell since it last fully unlinked; undo() only restores Unbound
	// once the count reaches zero (spec.md §4.C).
	UndoCount int
	prev      *savedState // state to restore on the next Undo

	// recursing guards do_avoiding_recursion traversals (spec.md §9: a
	// process-wide recursion bit per cell; spec.md's own Open Questions
	// flag this as needing a redesign for parallel compilation, which is
	// out of scope here since §5 fixes single-threaded compilation).
	recursing bool
}

type savedState struct {
	state  State
	target TypeLike
	name   string
	level  int
	cons   Constraint
	next   *savedState
}

// Store is an arena of cells, handing out monotonically increasing ids so
// structural-equality-by-identity (types.FreeVar comparison) is cheap and
// deterministic within one compile.
type Store struct {
	cells []*Cell
}

// NewStore returns an empty arena.
func NewStore() *Store {
	return &Store{}
}

// NewUnbound allocates an anonymous unbound cell at the given level with the
// given constraint.
func (s *Store) NewUnbound(level int, cons Constraint) *Cell {
	c := &Cell{id: len(s.cells), Level: level, Cons: cons, State: Unbound}
	s.cells = append(s.cells, c)
	return c
}

// NewNamedUnbound allocates a named unbound cell (surfaces in error messages
// and in derived type-parameter names).
func (s *Store) NewNamedUnbound(name string, level int, cons Constraint) *Cell {
	c := &Cell{id: len(s.cells), Name: name, Level: level, Cons: cons, State: Unbound}
	s.cells = append(s.cells, c)
	return c
}

// ID returns the cell's arena index — used for structural-equality-by-
// identity and for deterministic display (`?1`, `?2`, ...).
func (c *Cell) ID() int { return c.id }

func (c *Cell) String() string {
	switch c.State {
	case Linked, UndoableLinked:
		return c.Target.String()
	default:
		if c.Name != "" {
			return "?" + c.Name
		}
		return fmt.Sprintf("?%d", c.id)
	}
}

// Link destructively links the cell to target. No undo record is kept —
// callers that might need to roll this back should use UndoableLink instead.
func (c *Cell) Link(target TypeLike) {
	c.State = Linked
	c.Target = target
}

// UndoableLink links the cell to target, pushing the prior state onto j so
// it can be restored later. May be called repeatedly against the same cell;
// each call bumps UndoCount, and Undo only fully unlinks once the count
// returns to zero (spec.md §4.C).
func (c *Cell) UndoableLink(target TypeLike, j *UndoableLinkedList) {
	c.prev = &savedState{
		state: c.State, target: c.Target, name: c.Name, level: c.Level,
		cons: c.Cons, next: c.prev,
	}
	c.UndoCount++
	c.State = UndoableLinked
	c.Target = target
	j.push(c)
}

// undo restores the cell's immediately-prior saved state and decrements
// UndoCount. Called only by UndoableLinkedList, in LIFO order.
func (c *Cell) undo() {
	if c.prev == nil {
		return
	}
	saved := c.prev
	c.State = saved.state
	c.Target = saved.target
	c.Name = saved.name
	c.Level = saved.level
	c.Cons = saved.cons
	c.prev = saved.next
	if c.UndoCount > 0 {
		c.UndoCount--
	}
}

// GetType returns the cell's TypeOf-constraint type, if any.
func (c *Cell) GetType() (TypeLike, bool) {
	if c.Cons.Kind == TypeOfConstraint {
		return c.Cons.Of, true
	}
	return nil, false
}

// GetSubSup returns the cell's Sandwiched bounds, if any.
func (c *Cell) GetSubSup() (sub, sup TypeLike, ok bool) {
	if c.Cons.Kind == Sandwiched {
		return c.Cons.Sub, c.Cons.Sup, true
	}
	return nil, nil, false
}

func (c *Cell) UpdateConstraint(newCons Constraint) {
	c.Cons = newCons
}

// GenericLevel marks a cell as fully generalized (quantified) — spec.md
// §4.C's "generalize() lowers all reachable variables to the sentinel
// generic level, making them qvars".
const GenericLevel = -1

func (c *Cell) Generalize() {
	c.Level = GenericLevel
}

func (c *Cell) IsGeneralized() bool { return c.Level == GenericLevel }

// DoAvoidingRecursion runs f with the cell's recursion bit set, returning
// def (the recursion-default value) immediately without calling f if the
// bit was already set — the mechanism spec.md §9 describes for
// self-referential constraints like `?T <: Container(?T)`.
func DoAvoidingRecursion[T any](c *Cell, def T, f func() T) T {
	if c.recursing {
		return def
	}
	c.recursing = true
	defer func() { c.recursing = false }()
	return f()
}

// UndoableLinkedList is a scoped journal of cells linked via UndoableLink.
// Close reverses every push in LIFO order, restoring each cell's prior
// state exactly — spec.md §4.C / §9's "dropping the journal reverses all
// pushed links in reverse order".
type UndoableLinkedList struct {
	cells []*Cell
}

// NewJournal opens a fresh, empty undo journal.
func NewJournal() *UndoableLinkedList {
	return &UndoableLinkedList{}
}

func (j *UndoableLinkedList) push(c *Cell) {
	j.cells = append(j.cells, c)
}

// Close reverses every link this journal recorded, in LIFO order, then
// discards the journal's record (it must not be reused after Close).
func (j *UndoableLinkedList) Close() {
	for i := len(j.cells) - 1; i >= 0; i-- {
		j.cells[i].undo()
	}
	j.cells = nil
}

// Len reports how many links this journal currently holds.
func (j *UndoableLinkedList) Len() int { return len(j.cells) }
