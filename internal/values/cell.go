package values

import "sync"

// Cell is the mutable-variable Value variant (spec.md §3.1: "a mutable cell
// wrapping another Value"). Arithmetic operations applied to a Cell receiver
// overwrite the cell in place and return the cell itself, rather than
// returning a fresh immutable Value — mirroring `!`-suffixed mutating
// methods in the source language's standard library. Comparisons read the
// cell's current contents and leave it unchanged.
type Cell struct {
	mu sync.Mutex
	v  Value
}

// NewCell wraps v in a fresh mutable cell.
func NewCell(v Value) *Cell {
	return &Cell{v: v}
}

func (c *Cell) Kind() Kind { return KindCell }

func (c *Cell) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return "!" + c.v.String()
}

func (c *Cell) Hash() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v.Hash()
}

// Equals compares a Cell by its current contents, not by identity — two
// distinct cells holding equal values are equal Values, even though mutating
// one afterward will not mutate the other.
func (c *Cell) Equals(o Value) bool {
	oc, ok := o.(*Cell)
	if !ok {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return c.v.Equals(oc.v)
}

// Get reads the cell's current contents.
func (c *Cell) Get() Value {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}

// Set overwrites the cell's contents.
func (c *Cell) Set(v Value) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

// combine applies op(cell.Get(), other) and, on success, stores the result
// back into the cell before returning it — the "overwrite and return self"
// semantics spec.md §4.A requires of mutable-receiver arithmetic.
func (c *Cell) combine(other Value, op func(a, b Value) (Value, bool)) (Value, bool) {
	c.mu.Lock()
	cur := c.v
	c.mu.Unlock()
	result, ok := op(cur, other)
	if !ok {
		return nil, false
	}
	c.Set(result)
	return c, true
}
